package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCTR(t *testing.T) {
	tests := []struct {
		name        string
		clicks      int
		impressions int
		expected    float64
	}{
		{
			name:        "Impressões zero - CTR é zero, não indefinido",
			clicks:      50,
			impressions: 0,
			expected:    0,
		},
		{
			name:        "CTR calculado em pontos percentuais",
			clicks:      235,
			impressions: 10000,
			expected:    2.35,
		},
		{
			name:        "CTR arredondado para duas casas",
			clicks:      1,
			impressions: 3,
			expected:    33.33,
		},
		{
			name:        "Sem cliques - CTR zero",
			clicks:      0,
			impressions: 1000,
			expected:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CTR(tt.clicks, tt.impressions))
		})
	}
}

func TestHookrateEqualsCTR(t *testing.T) {
	// Enquanto o hookrate não tiver fonte própria, as duas métricas
	// devem coincidir para qualquer entrada
	cases := [][2]int{{0, 0}, {10, 0}, {0, 100}, {235, 10000}, {1, 3}}

	for _, c := range cases {
		assert.Equal(t, CTR(c[0], c[1]), Hookrate(c[0], c[1]))
	}
}

func TestCPL(t *testing.T) {
	tests := []struct {
		name        string
		spend       float64
		conversions int
		expected    Metric
	}{
		{
			name:        "Zero conversões - indefinido, nunca zero",
			spend:       500.0,
			conversions: 0,
			expected:    UndefinedMetric(),
		},
		{
			name:        "CPL calculado e arredondado",
			spend:       500.0,
			conversions: 3,
			expected:    Metric{Value: 166.67, Defined: true},
		},
		{
			name:        "Gasto zero com conversões - zero definido",
			spend:       0,
			conversions: 10,
			expected:    Metric{Value: 0, Defined: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CPL(tt.spend, tt.conversions))
		})
	}
}

func TestMetricasComDenominadorZero(t *testing.T) {
	// Todas as derivadas com denominador zero degradam para indefinido
	assert.False(t, CPC(100, 0).Defined)
	assert.False(t, CPM(100, 0).Defined)
	assert.False(t, ConversionRate(10, 0).Defined)
	assert.False(t, Frequency(1000, 0).Defined)
	assert.False(t, ReachRatio(500, 0).Defined)
}

func TestMetricMarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		metric   Metric
		expected string
	}{
		{
			name:     "Indefinida serializa como null",
			metric:   UndefinedMetric(),
			expected: "null",
		},
		{
			name:     "Definida serializa o valor",
			metric:   DefinedMetric(12.5),
			expected: "12.5",
		},
		{
			name:     "Zero definido serializa como 0, não null",
			metric:   DefinedMetric(0),
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(tt.metric)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, string(out))
		})
	}
}

func TestPerformanceTier(t *testing.T) {
	tests := []struct {
		name     string
		ctr      float64
		expected string
	}{
		{name: "CTR 2.0 no piso - Excelente", ctr: 2.0, expected: TierExcelente},
		{name: "CTR acima de 2 - Excelente", ctr: 3.7, expected: TierExcelente},
		{name: "CTR 1.0 no piso - Bom", ctr: 1.0, expected: TierBom},
		{name: "CTR 1.99 - Bom", ctr: 1.99, expected: TierBom},
		{name: "CTR abaixo de 1 - Precisa Melhorar", ctr: 0.99, expected: TierPrecisaMelhorar},
		{name: "CTR zero - Precisa Melhorar", ctr: 0, expected: TierPrecisaMelhorar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PerformanceTier(tt.ctr))
		})
	}
}

func TestDeriveCampaignKPIs(t *testing.T) {
	t.Run("Insights nulos - sem KPIs", func(t *testing.T) {
		assert.Nil(t, DeriveCampaignKPIs(nil))
	})

	t.Run("CTR e CPC da plataforma são preferidos", func(t *testing.T) {
		kpis := DeriveCampaignKPIs(&CampaignInsights{
			Spend:       100,
			Impressions: 10000,
			Reach:       8000,
			Clicks:      200,
			Conversions: 10,
			CTR:         2.5,
			CPC:         0.55,
			CPM:         11.2,
		})

		assert.Equal(t, 2.5, kpis.CTR)
		assert.Equal(t, DefinedMetric(0.55), kpis.CPC)
		assert.Equal(t, DefinedMetric(11.2), kpis.CPM)
		assert.Equal(t, TierExcelente, kpis.Tier)
	})

	t.Run("Sem valores da plataforma - deriva localmente", func(t *testing.T) {
		kpis := DeriveCampaignKPIs(&CampaignInsights{
			Spend:       100,
			Impressions: 10000,
			Reach:       8000,
			Clicks:      150,
			Conversions: 4,
		})

		assert.Equal(t, 1.5, kpis.CTR)
		assert.Equal(t, DefinedMetric(100.0/150.0), kpis.CPC)
		assert.Equal(t, DefinedMetric(10), kpis.CPM)
		assert.Equal(t, DefinedMetric(25), kpis.CPL)
		assert.Equal(t, DefinedMetric(0.04), kpis.ConversionRate)
		assert.Equal(t, DefinedMetric(1.25), kpis.Frequency)
		assert.Equal(t, DefinedMetric(80), kpis.ReachRatio)
		assert.Equal(t, TierBom, kpis.Tier)
	})

	t.Run("Campanha sem entrega - derivadas indefinidas e tier mínimo", func(t *testing.T) {
		kpis := DeriveCampaignKPIs(&CampaignInsights{})

		assert.Equal(t, 0.0, kpis.CTR)
		assert.False(t, kpis.CPC.Defined)
		assert.False(t, kpis.CPM.Defined)
		assert.False(t, kpis.CPL.Defined)
		assert.False(t, kpis.Frequency.Defined)
		assert.Equal(t, TierPrecisaMelhorar, kpis.Tier)
	})
}
