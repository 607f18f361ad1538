package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRollupCreatives(t *testing.T) {
	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	creatives := []*CampaignCreative{
		{
			AccountID:   "ACC1",
			CampaignID:  "CAMP1",
			Spend:       50000, // R$ 500,00
			Impressions: 10000,
			Clicks:      200,
			Leads:       5,
			FirstSeen:   since.AddDate(0, 0, 3),
		},
		{
			AccountID:   "ACC1",
			CampaignID:  "CAMP2",
			Spend:       30000, // R$ 300,00
			Impressions: 5000,
			Clicks:      100,
			Leads:       3,
			FirstSeen:   since.AddDate(0, 0, 10),
		},
		{
			// Fora da janela: primeira aparição antes de since
			AccountID:   "ACC1",
			CampaignID:  "CAMP_ANTIGA",
			Spend:       999900,
			Impressions: 99999,
			Clicks:      9999,
			Leads:       99,
			FirstSeen:   since.AddDate(0, 0, -1),
		},
	}

	rollup := RollupCreatives("ACC1", creatives, since)

	assert.Equal(t, "ACC1", rollup.AccountID)
	assert.Equal(t, "2026-08-01", rollup.Since)
	assert.Equal(t, 2, rollup.Creatives)
	assert.Equal(t, 800.0, rollup.Spend)
	assert.Equal(t, 15000, rollup.Impressions)
	assert.Equal(t, 300, rollup.Clicks)
	assert.Equal(t, 8, rollup.Leads)
	assert.Equal(t, 2.0, rollup.CTR)
	assert.Equal(t, rollup.CTR, rollup.Hookrate)
	assert.Equal(t, DefinedMetric(100), rollup.CPL)
}

func TestRollupCreativesSemLeads(t *testing.T) {
	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	rollup := RollupCreatives("ACC1", []*CampaignCreative{
		{AccountID: "ACC1", Spend: 10000, Impressions: 1000, Clicks: 10, FirstSeen: since},
	}, since)

	// Sem leads o CPL é indefinido, nunca zero
	assert.False(t, rollup.CPL.Defined)
	assert.Equal(t, 1.0, rollup.CTR)
}

func TestRollupCreativesVazio(t *testing.T) {
	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	rollup := RollupCreatives("ACC1", nil, since)

	assert.Equal(t, 0, rollup.Creatives)
	assert.Equal(t, 0.0, rollup.Spend)
	assert.Equal(t, 0.0, rollup.CTR)
	assert.False(t, rollup.CPL.Defined)
}
