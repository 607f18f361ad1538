package dashboarding

import (
	"testing"

	"github.com/lupamkt/backoffice-api/internal/domain"
	"github.com/lupamkt/backoffice-api/internal/usecases/enriching/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	enricher := mocks.NewMockEnricher(ctrl)
	service := NewService(enricher)

	enricher.EXPECT().
		ListEnrichedAccounts(domain.AccountFilter{}).
		Return(domain.EnrichAccounts([]*domain.Account{
			{ID: "ACC1", Status: domain.AccountStatusAtivo, UsaMetaAds: true, SaldoMeta: 20000},
			{ID: "ACC2", Status: domain.AccountStatusPausado, UsaGoogleAds: true, SaldoMeta: 15000},
			{ID: "ACC3", Status: domain.AccountStatusArquivado, SaldoMeta: 0},
		}, nil, nil, []*domain.LeadsStats{
			{AccountID: "ACC1", TotalLeads: 30},
			{AccountID: "ACC2", TotalLeads: 12},
		}), nil)

	summary, err := service.GetSummary(domain.AccountFilter{})
	assert.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Ativas)
	assert.Equal(t, 1, summary.Pausadas)
	assert.Equal(t, 1, summary.Arquivadas)
	assert.Equal(t, 1, summary.ContasMeta)
	assert.Equal(t, 1, summary.ContasGoogle)
	// Saldo inclui contas arquivadas: 350,00
	assert.Equal(t, 350.0, summary.SaldoTotalMeta)
	assert.Equal(t, 42, summary.TotalLeads)
}

func TestGetSummaryPropagaErro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	enricher := mocks.NewMockEnricher(ctrl)
	service := NewService(enricher)

	enricher.EXPECT().
		ListEnrichedAccounts(gomock.Any()).
		Return(nil, errors.New("conexão recusada"))

	summary, err := service.GetSummary(domain.AccountFilter{})
	assert.Error(t, err)
	assert.Nil(t, summary)
}

func TestGetAccountsRepassaFiltro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	enricher := mocks.NewMockEnricher(ctrl)
	service := NewService(enricher)

	gestorID := "MGR1"
	filter := domain.AccountFilter{GestorID: &gestorID}

	enricher.EXPECT().
		ListEnrichedAccounts(filter).
		Return([]*domain.EnrichedAccount{}, nil)

	accounts, err := service.GetAccounts(filter)
	assert.NoError(t, err)
	assert.Empty(t, accounts)
}
