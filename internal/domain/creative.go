package domain

import (
	"time"

	"github.com/lupamkt/backoffice-api/pkg/utils"
)

// CampaignCreative é o registro de janela sincronizado diariamente a
// partir dos insights de campanha. Spend em centavos.
type CampaignCreative struct {
	ID           string    `json:"id"`
	AccountID    string    `json:"account_id"`
	CampaignID   string    `json:"campaign_id"`
	CampaignNome string    `json:"campaign_nome"`
	Spend        int64     `json:"spend"`
	Impressions  int       `json:"impressions"`
	Clicks       int       `json:"clicks"`
	Leads        int       `json:"leads"`
	FirstSeen    time.Time `json:"first_seen"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreativeRollup é o consolidado de uma janela de criativos (30 dias
// por padrão). Spend já em reais.
type CreativeRollup struct {
	AccountID   string  `json:"account_id"`
	Since       string  `json:"since"`
	Creatives   int     `json:"creatives"`
	Spend       float64 `json:"spend"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Leads       int     `json:"leads"`
	CTR         float64 `json:"ctr"`
	Hookrate    float64 `json:"hookrate"`
	CPL         Metric  `json:"cpl"`
}

// RollupCreatives consolida os registros cuja primeira aparição é
// posterior a since. Registros antigos ficam fora da janela, os demais
// contadores são somados e os KPIs derivados do total.
func RollupCreatives(accountID string, creatives []*CampaignCreative, since time.Time) *CreativeRollup {
	rollup := &CreativeRollup{
		AccountID: accountID,
		Since:     since.Format(time.DateOnly),
	}

	var spendCents int64

	for _, c := range creatives {
		if c.FirstSeen.Before(since) {
			continue
		}

		rollup.Creatives++
		spendCents += c.Spend
		rollup.Impressions += c.Impressions
		rollup.Clicks += c.Clicks
		rollup.Leads += c.Leads
	}

	rollup.Spend = utils.CentsToBRL(spendCents)
	rollup.CTR = CTR(rollup.Clicks, rollup.Impressions)
	rollup.Hookrate = Hookrate(rollup.Clicks, rollup.Impressions)
	rollup.CPL = CPL(rollup.Spend, rollup.Leads)

	return rollup
}
