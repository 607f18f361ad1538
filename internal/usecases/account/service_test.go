package account

import (
	"testing"
	"time"

	metamocks "github.com/lupamkt/backoffice-api/infrastructure/integrator/meta/mocks"
	"github.com/lupamkt/backoffice-api/infrastructure/repository/mocks"
	"github.com/lupamkt/backoffice-api/internal/config"
	"github.com/lupamkt/backoffice-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func testConfig() *config.Config {
	return &config.Config{
		CreativeSync: config.CreativeSync{
			WindowDays: 30,
		},
	}
}

func TestGetAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	service := NewService(accountRepo, nil, nil, testConfig())

	t.Run("Conta encontrada", func(t *testing.T) {
		accountRepo.EXPECT().
			GetAccountByID("ACC1").
			Return(&domain.Account{ID: "ACC1", Nome: "Clínica Sorriso"}, nil)

		acc, err := service.GetAccount("ACC1")
		assert.NoError(t, err)
		require.NotNil(t, acc)
		assert.Equal(t, "ACC1", acc.ID)
	})

	t.Run("Conta inexistente - ErrAccountNotFound", func(t *testing.T) {
		accountRepo.EXPECT().
			GetAccountByID("ACC_FANTASMA").
			Return(nil, nil)

		acc, err := service.GetAccount("ACC_FANTASMA")
		assert.ErrorIs(t, err, ErrAccountNotFound)
		assert.Nil(t, acc)
	})
}

func TestGetAccountCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	integrator := metamocks.NewMockIntegrator(ctrl)
	service := NewService(accountRepo, nil, integrator, testConfig())

	t.Run("Conta com vínculo - campanhas do integrador", func(t *testing.T) {
		accountRepo.EXPECT().
			GetAccountByID("ACC1").
			Return(&domain.Account{ID: "ACC1", MetaAccountID: stringPtr("9876")}, nil)

		integrator.EXPECT().
			ListCampaigns("9876", "last_30d").
			Return([]*domain.MetaCampaign{{ID: "CAMP1", Nome: "Leads Agosto"}}, nil)

		campaigns, err := service.GetAccountCampaigns("ACC1", "last_30d")
		assert.NoError(t, err)
		require.Len(t, campaigns, 1)
		assert.Equal(t, "CAMP1", campaigns[0].ID)
	})

	t.Run("Conta sem vínculo - ErrAccountWithoutMeta", func(t *testing.T) {
		accountRepo.EXPECT().
			GetAccountByID("ACC2").
			Return(&domain.Account{ID: "ACC2"}, nil)

		campaigns, err := service.GetAccountCampaigns("ACC2", "last_30d")
		assert.ErrorIs(t, err, ErrAccountWithoutMeta)
		assert.Nil(t, campaigns)
	})

	t.Run("Erro do integrador é propagado", func(t *testing.T) {
		accountRepo.EXPECT().
			GetAccountByID("ACC1").
			Return(&domain.Account{ID: "ACC1", MetaAccountID: stringPtr("9876")}, nil)

		integrator.EXPECT().
			ListCampaigns("9876", "last_7d").
			Return(nil, errors.New("limite de requisições atingido"))

		campaigns, err := service.GetAccountCampaigns("ACC1", "last_7d")
		assert.Error(t, err)
		assert.Nil(t, campaigns)
	})
}

func TestGetCreativeRollup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	creativeRepo := mocks.NewMockCampaignCreativeRepository(ctrl)
	service := NewService(accountRepo, creativeRepo, nil, testConfig())

	t.Run("Janela padrão quando days é zero", func(t *testing.T) {
		accountRepo.EXPECT().
			GetAccountByID("ACC1").
			Return(&domain.Account{ID: "ACC1"}, nil)

		var capturedSince time.Time
		creativeRepo.EXPECT().
			ListByAccountSince("ACC1", gomock.Any()).
			DoAndReturn(func(accountID string, since time.Time) ([]*domain.CampaignCreative, error) {
				capturedSince = since
				return []*domain.CampaignCreative{
					{AccountID: "ACC1", Spend: 10000, Impressions: 1000, Clicks: 20, Leads: 2, FirstSeen: since.AddDate(0, 0, 1)},
				}, nil
			})

		rollup, err := service.GetCreativeRollup("ACC1", 0)
		assert.NoError(t, err)
		require.NotNil(t, rollup)

		// Janela de 30 dias a partir da meia-noite UTC
		expectedDays := int(time.Since(capturedSince).Hours() / 24)
		assert.InDelta(t, 30, expectedDays, 1)

		assert.Equal(t, 1, rollup.Creatives)
		assert.Equal(t, 100.0, rollup.Spend)
		assert.Equal(t, 2.0, rollup.CTR)
		assert.Equal(t, domain.DefinedMetric(50), rollup.CPL)
	})

	t.Run("Janela maior que a configurada é limitada", func(t *testing.T) {
		accountRepo.EXPECT().
			GetAccountByID("ACC1").
			Return(&domain.Account{ID: "ACC1"}, nil)

		var capturedSince time.Time
		creativeRepo.EXPECT().
			ListByAccountSince("ACC1", gomock.Any()).
			DoAndReturn(func(accountID string, since time.Time) ([]*domain.CampaignCreative, error) {
				capturedSince = since
				return nil, nil
			})

		_, err := service.GetCreativeRollup("ACC1", 365)
		assert.NoError(t, err)

		days := int(time.Since(capturedSince).Hours() / 24)
		assert.InDelta(t, 30, days, 1)
	})

	t.Run("Conta inexistente - ErrAccountNotFound", func(t *testing.T) {
		accountRepo.EXPECT().
			GetAccountByID("ACC_FANTASMA").
			Return(nil, nil)

		rollup, err := service.GetCreativeRollup("ACC_FANTASMA", 7)
		assert.ErrorIs(t, err, ErrAccountNotFound)
		assert.Nil(t, rollup)
	})
}
