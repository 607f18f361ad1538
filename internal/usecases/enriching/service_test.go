package enriching

import (
	"testing"

	"github.com/lupamkt/backoffice-api/infrastructure/repository/mocks"
	"github.com/lupamkt/backoffice-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func newServiceWithMocks(ctrl *gomock.Controller) (
	Enricher,
	*mocks.MockAccountRepository,
	*mocks.MockManagerRepository,
	*mocks.MockClienteRepository,
	*mocks.MockLeadsStatsRepository,
) {
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	managerRepo := mocks.NewMockManagerRepository(ctrl)
	clienteRepo := mocks.NewMockClienteRepository(ctrl)
	leadsStatsRepo := mocks.NewMockLeadsStatsRepository(ctrl)

	service := NewService(accountRepo, managerRepo, clienteRepo, leadsStatsRepo)

	return service, accountRepo, managerRepo, clienteRepo, leadsStatsRepo
}

func TestListEnrichedAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, accountRepo, managerRepo, clienteRepo, leadsStatsRepo := newServiceWithMocks(ctrl)

	accountRepo.EXPECT().ListAccounts(nil).Return([]*domain.Account{
		{ID: "ACC1", Nome: "Clínica Sorriso", GestorID: stringPtr("MGR1"), ClienteID: stringPtr("CLI1")},
		{ID: "ACC2", Nome: "Academia Forte"},
	}, nil)
	managerRepo.EXPECT().ListManagers().Return([]*domain.Manager{
		{ID: "MGR1", Nome: "Ana"},
	}, nil)
	clienteRepo.EXPECT().ListClientes().Return([]*domain.Cliente{
		{ID: "CLI1", Nome: "Sorriso"},
	}, nil)
	leadsStatsRepo.EXPECT().ListLeadsStats().Return([]*domain.LeadsStats{
		{AccountID: "ACC1", TotalLeads: 10},
	}, nil)

	result, err := service.ListEnrichedAccounts(domain.AccountFilter{})
	assert.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "Ana", result[0].GestorNome)
	assert.Equal(t, "Sorriso", result[0].ClienteNome)
	require.NotNil(t, result[0].Stats)
	assert.Equal(t, 10, result[0].Stats.TotalLeads)

	assert.Equal(t, domain.GestorNaoEncontrado, result[1].GestorNome)
	assert.Equal(t, domain.ClienteNaoVinculado, result[1].ClienteNome)
	assert.Nil(t, result[1].Stats)
}

func TestListEnrichedAccountsComFiltro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, accountRepo, managerRepo, clienteRepo, leadsStatsRepo := newServiceWithMocks(ctrl)

	accountRepo.EXPECT().ListAccounts(nil).Return([]*domain.Account{
		{ID: "ACC1", Nome: "Clínica Sorriso", Status: domain.AccountStatusAtivo},
		{ID: "ACC2", Nome: "Academia Forte", Status: domain.AccountStatusPausado},
	}, nil)
	managerRepo.EXPECT().ListManagers().Return(nil, nil)
	clienteRepo.EXPECT().ListClientes().Return(nil, nil)
	leadsStatsRepo.EXPECT().ListLeadsStats().Return(nil, nil)

	status := domain.AccountStatusAtivo
	result, err := service.ListEnrichedAccounts(domain.AccountFilter{Status: &status})
	assert.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "ACC1", result[0].ID)
}

func TestListEnrichedAccountsErroEmContasDerrubaListagem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, accountRepo, managerRepo, clienteRepo, leadsStatsRepo := newServiceWithMocks(ctrl)

	accountRepo.EXPECT().ListAccounts(nil).Return(nil, errors.New("conexão recusada"))
	managerRepo.EXPECT().ListManagers().Return(nil, nil)
	clienteRepo.EXPECT().ListClientes().Return(nil, nil)
	leadsStatsRepo.EXPECT().ListLeadsStats().Return(nil, nil)

	result, err := service.ListEnrichedAccounts(domain.AccountFilter{})
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestListEnrichedAccountsColecoesAuxiliaresDegradam(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, accountRepo, managerRepo, clienteRepo, leadsStatsRepo := newServiceWithMocks(ctrl)

	accountRepo.EXPECT().ListAccounts(nil).Return([]*domain.Account{
		{ID: "ACC1", GestorID: stringPtr("MGR1"), ClienteID: stringPtr("CLI1")},
	}, nil)
	managerRepo.EXPECT().ListManagers().Return(nil, errors.New("timeout"))
	clienteRepo.EXPECT().ListClientes().Return(nil, errors.New("timeout"))
	leadsStatsRepo.EXPECT().ListLeadsStats().Return(nil, errors.New("timeout"))

	result, err := service.ListEnrichedAccounts(domain.AccountFilter{})
	assert.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, domain.GestorNaoEncontrado, result[0].GestorNome)
	assert.Equal(t, domain.ClienteNaoVinculado, result[0].ClienteNome)
	assert.Nil(t, result[0].Stats)
}
