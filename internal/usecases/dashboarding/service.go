package dashboarding

import (
	"github.com/lupamkt/backoffice-api/internal/domain"
	"github.com/lupamkt/backoffice-api/internal/usecases/enriching"
	"github.com/lupamkt/backoffice-api/pkg/metrics"
)

// Dashboarder serve a listagem enriquecida e os escalares do painel
type Dashboarder interface {
	GetAccounts(filter domain.AccountFilter) ([]*domain.EnrichedAccount, error)
	GetSummary(filter domain.AccountFilter) (*domain.DashboardSummary, error)
}

type Service struct {
	enricher enriching.Enricher
}

func NewService(enricher enriching.Enricher) Dashboarder {
	return &Service{
		enricher: enricher,
	}
}

func (s *Service) GetAccounts(filter domain.AccountFilter) ([]*domain.EnrichedAccount, error) {
	return s.enricher.ListEnrichedAccounts(filter)
}

// GetSummary recomputa integralmente o resumo a cada chamada. Sem
// filtros o conjunto é a carteira completa, incluindo arquivadas no
// saldo total.
func (s *Service) GetSummary(filter domain.AccountFilter) (*domain.DashboardSummary, error) {
	accounts, err := s.enricher.ListEnrichedAccounts(filter)
	if err != nil {
		return nil, err
	}

	metrics.DefaultMetrics.DashboardRecomputes.Inc()

	return domain.Summarize(accounts), nil
}
