package domain

import (
	"encoding/json"

	"github.com/lupamkt/backoffice-api/pkg/utils"
)

// Metric é um valor derivado que pode ser indefinido (denominador
// zero). Indefinido é distinto de zero: "nenhum lead ainda" não é
// "leads de graça". A camada de exibição renderiza indefinido como "-".
type Metric struct {
	Value   float64
	Defined bool
}

func DefinedMetric(v float64) Metric {
	return Metric{Value: utils.RoundWithTwoDecimalPlace(v), Defined: true}
}

func UndefinedMetric() Metric {
	return Metric{}
}

// MarshalJSON serializa métricas indefinidas como null, nunca como 0
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.Defined {
		return []byte("null"), nil
	}
	return json.Marshal(m.Value)
}

// CTR devolve clicks/impressions em pontos percentuais (2.35 significa
// 2,35%). Por convenção do painel, impressões zero resultam em 0, não
// em indefinido.
func CTR(clicks, impressions int) float64 {
	if impressions == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(float64(clicks) / float64(impressions) * 100)
}

// Hookrate hoje é a mesma fórmula do CTR sob outro nome nas telas de
// criativos. Mantido como alias fino: se um dia ganhar fonte própria
// (visualizações de 3s de vídeo), muda apenas aqui.
func Hookrate(clicks, impressions int) float64 {
	return CTR(clicks, impressions)
}

// CPC deriva custo por clique. Indefinido sem cliques; o chamador deve
// preferir o valor vindo da plataforma quando disponível.
func CPC(spend float64, clicks int) Metric {
	if clicks == 0 {
		return UndefinedMetric()
	}
	return DefinedMetric(spend / float64(clicks))
}

// CPM deriva custo por mil impressões
func CPM(spend float64, impressions int) Metric {
	if impressions == 0 {
		return UndefinedMetric()
	}
	return DefinedMetric(spend / float64(impressions) * 1000)
}

// CPL deriva custo por lead. Com zero conversões o resultado é
// indefinido, nunca zero.
func CPL(spend float64, conversions int) Metric {
	if conversions == 0 {
		return UndefinedMetric()
	}
	return DefinedMetric(spend / float64(conversions))
}

// ConversionRate devolve conversões/impressões em pontos percentuais
func ConversionRate(conversions, impressions int) Metric {
	if impressions == 0 {
		return UndefinedMetric()
	}
	return DefinedMetric(float64(conversions) / float64(impressions) * 100)
}

// Frequency devolve impressões/alcance
func Frequency(impressions, reach int) Metric {
	if reach == 0 {
		return UndefinedMetric()
	}
	return DefinedMetric(float64(impressions) / float64(reach))
}

// ReachRatio devolve alcance/impressões em pontos percentuais
func ReachRatio(reach, impressions int) Metric {
	if impressions == 0 {
		return UndefinedMetric()
	}
	return DefinedMetric(float64(reach) / float64(impressions) * 100)
}

const (
	TierExcelente       = "Excelente"
	TierBom             = "Bom"
	TierPrecisaMelhorar = "Precisa Melhorar"
)

// PerformanceTier classifica o CTR (em pontos percentuais) nas faixas
// do painel. Limites inclusivos no piso de cada faixa.
func PerformanceTier(ctr float64) string {
	switch {
	case ctr >= 2:
		return TierExcelente
	case ctr >= 1:
		return TierBom
	default:
		return TierPrecisaMelhorar
	}
}
