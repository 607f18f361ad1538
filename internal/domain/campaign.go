package domain

// CampaignInsights são os contadores brutos de uma campanha já tipados
// (a API do Graph devolve tudo como string; o integrador converte).
// Spend e os custos estão em reais: a conversão de centavos acontece na
// borda com o banco, nunca dentro das fórmulas de KPI.
type CampaignInsights struct {
	Spend       float64 `json:"spend"`
	Impressions int     `json:"impressions"`
	Reach       int     `json:"reach"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	CPM         float64 `json:"cpm"`
}

// CampaignKPIs é o bloco de métricas derivadas exibido por campanha
type CampaignKPIs struct {
	CTR            float64 `json:"ctr"`
	Hookrate       float64 `json:"hookrate"`
	CPC            Metric  `json:"cpc"`
	CPM            Metric  `json:"cpm"`
	CPL            Metric  `json:"cpl"`
	ConversionRate Metric  `json:"conversion_rate"`
	Frequency      Metric  `json:"frequency"`
	ReachRatio     Metric  `json:"reach_ratio"`
	Tier           string  `json:"tier"`
}

// MetaCampaign é a visão de uma campanha do Meta consumida pelo painel
type MetaCampaign struct {
	ID             string            `json:"id"`
	Nome           string            `json:"nome"`
	Objetivo       string            `json:"objetivo"`
	Status         string            `json:"status"`
	DailyBudget    float64           `json:"daily_budget"`
	LifetimeBudget float64           `json:"lifetime_budget"`
	Insights       *CampaignInsights `json:"insights,omitempty"`
	KPIs           *CampaignKPIs     `json:"kpis,omitempty"`
}

// DeriveCampaignKPIs calcula o bloco de KPIs a partir dos contadores
// brutos. CPC e CPM preferem o valor fornecido pela plataforma e só
// derivam localmente quando ele vier zerado e o denominador permitir.
func DeriveCampaignKPIs(ins *CampaignInsights) *CampaignKPIs {
	if ins == nil {
		return nil
	}

	ctr := ins.CTR
	if ctr == 0 {
		ctr = CTR(ins.Clicks, ins.Impressions)
	}

	cpc := CPC(ins.Spend, ins.Clicks)
	if ins.CPC > 0 {
		cpc = DefinedMetric(ins.CPC)
	}

	cpm := CPM(ins.Spend, ins.Impressions)
	if ins.CPM > 0 {
		cpm = DefinedMetric(ins.CPM)
	}

	return &CampaignKPIs{
		CTR:            ctr,
		Hookrate:       Hookrate(ins.Clicks, ins.Impressions),
		CPC:            cpc,
		CPM:            cpm,
		CPL:            CPL(ins.Spend, ins.Conversions),
		ConversionRate: ConversionRate(ins.Conversions, ins.Impressions),
		Frequency:      Frequency(ins.Impressions, ins.Reach),
		ReachRatio:     ReachRatio(ins.Reach, ins.Impressions),
		Tier:           PerformanceTier(ctr),
	}
}
