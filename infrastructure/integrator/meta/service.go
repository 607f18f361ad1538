package meta

import (
	"github.com/pkg/errors"

	metadomain "github.com/lupamkt/backoffice-api/infrastructure/integrator/meta/domain"
	"github.com/lupamkt/backoffice-api/infrastructure/integrator/meta/metaclient"
	"github.com/lupamkt/backoffice-api/internal/config"
	"github.com/lupamkt/backoffice-api/internal/domain"
	"github.com/lupamkt/backoffice-api/pkg/metrics"
	"github.com/lupamkt/backoffice-api/pkg/utils"
)

// Integrator traduz as formas da Graph API para o domínio interno
type Integrator interface {
	ListCampaigns(metaAccountID string, datePreset string) ([]*domain.MetaCampaign, error)
}

type MetaIntegrator struct {
	cfg    *config.Config
	client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		client: client,
	}
}

// ListCampaigns busca as campanhas da conta com insights aninhados e
// converte os contadores string da API para os tipos do domínio.
// Budgets chegam em centavos e saem em reais.
func (m *MetaIntegrator) ListCampaigns(metaAccountID string, datePreset string) ([]*domain.MetaCampaign, error) {
	rawCampaigns, err := m.client.GetCampaignsWithInsightsByAccountID(metaAccountID, datePreset)
	if err != nil {
		metrics.DefaultMetrics.MetaAPIErrors.Inc()
		return nil, errors.Wrap(err, "erro ao buscar campanhas no Meta")
	}

	campaigns := make([]*domain.MetaCampaign, 0, len(rawCampaigns))

	for i := range rawCampaigns {
		raw := rawCampaigns[i]

		campaign := &domain.MetaCampaign{
			ID:             raw.ID,
			Nome:           raw.Name,
			Objetivo:       raw.Objective,
			Status:         raw.Status,
			DailyBudget:    budgetToBRL(raw.DailyBudget),
			LifetimeBudget: budgetToBRL(raw.LifetimeBudget),
		}

		if insights := parseInsights(raw.Insights); insights != nil {
			campaign.Insights = insights
			campaign.KPIs = domain.DeriveCampaignKPIs(insights)
		}

		campaigns = append(campaigns, campaign)
	}

	return campaigns, nil
}

// parseInsights converte a primeira entrada do envelope de insights.
// Envelope vazio vira nil: o painel distingue "sem dados" de zerado.
func parseInsights(envelope metadomain.InsightsEnvelope) *domain.CampaignInsights {
	if len(envelope.Data) == 0 {
		return nil
	}

	raw := envelope.Data[0]

	return &domain.CampaignInsights{
		Spend:       metadomain.ParseFloat(raw.Spend),
		Impressions: metadomain.ParseInt(raw.Impressions),
		Reach:       metadomain.ParseInt(raw.Reach),
		Clicks:      metadomain.ParseInt(raw.Clicks),
		Conversions: raw.GetLeads(),
		CTR:         metadomain.ParseFloat(raw.CTR),
		CPC:         metadomain.ParseFloat(raw.CPC),
		CPM:         metadomain.ParseFloat(raw.CPM),
	}
}

func budgetToBRL(raw string) float64 {
	if raw == "" {
		return 0
	}

	return utils.CentsToBRL(int64(metadomain.ParseInt(raw)))
}
