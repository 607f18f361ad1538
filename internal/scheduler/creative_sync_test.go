package scheduler

import (
	"testing"
	"time"

	metamocks "github.com/lupamkt/backoffice-api/infrastructure/integrator/meta/mocks"
	"github.com/lupamkt/backoffice-api/infrastructure/repository/mocks"
	"github.com/lupamkt/backoffice-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreativeSyncService_syncAccountCreatives(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		account  *domain.Account
		setup    func(integrator *metamocks.MockIntegrator, creativeRepo *mocks.MockCampaignCreativeRepository)
		expected int64
	}{
		{
			name:    "Campanhas com insights viram registros em centavos",
			account: &domain.Account{ID: "ACC1", Nome: "Clínica Sorriso", MetaAccountID: stringPtr("9876")},
			setup: func(integrator *metamocks.MockIntegrator, creativeRepo *mocks.MockCampaignCreativeRepository) {
				integrator.EXPECT().
					ListCampaigns("9876", "last_30d").
					Return([]*domain.MetaCampaign{
						{
							ID:   "CAMP1",
							Nome: "Leads Agosto",
							Insights: &domain.CampaignInsights{
								Spend:       349.90,
								Impressions: 10000,
								Clicks:      200,
								Conversions: 8,
							},
						},
						{
							// Sem insights: fica fora da janela
							ID:   "CAMP_SEM_ENTREGA",
							Nome: "Rascunho",
						},
					}, nil)

				creativeRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(creatives []*domain.CampaignCreative) error {
						require.Len(t, creatives, 1)
						assert.Equal(t, "ACC1", creatives[0].AccountID)
						assert.Equal(t, "CAMP1", creatives[0].CampaignID)
						assert.Equal(t, int64(34990), creatives[0].Spend)
						assert.Equal(t, 10000, creatives[0].Impressions)
						assert.Equal(t, 8, creatives[0].Leads)
						return nil
					})
			},
			expected: 1,
		},
		{
			name:    "Erro na Graph API não derruba o sync",
			account: &domain.Account{ID: "ACC1", MetaAccountID: stringPtr("9876")},
			setup: func(integrator *metamocks.MockIntegrator, creativeRepo *mocks.MockCampaignCreativeRepository) {
				integrator.EXPECT().
					ListCampaigns("9876", "last_30d").
					Return(nil, errors.New("limite de requisições atingido"))
			},
			expected: 0,
		},
		{
			name:    "Conta sem campanhas",
			account: &domain.Account{ID: "ACC1", MetaAccountID: stringPtr("9876")},
			setup: func(integrator *metamocks.MockIntegrator, creativeRepo *mocks.MockCampaignCreativeRepository) {
				integrator.EXPECT().
					ListCampaigns("9876", "last_30d").
					Return(nil, nil)
			},
			expected: 0,
		},
		{
			name:    "Erro ao persistir zera o contador da conta",
			account: &domain.Account{ID: "ACC1", MetaAccountID: stringPtr("9876")},
			setup: func(integrator *metamocks.MockIntegrator, creativeRepo *mocks.MockCampaignCreativeRepository) {
				integrator.EXPECT().
					ListCampaigns("9876", "last_30d").
					Return([]*domain.MetaCampaign{
						{ID: "CAMP1", Insights: &domain.CampaignInsights{Spend: 10}},
					}, nil)

				creativeRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					Return(errors.New("conexão recusada"))
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator := metamocks.NewMockIntegrator(ctrl)
			creativeRepo := mocks.NewMockCampaignCreativeRepository(ctrl)

			tt.setup(integrator, creativeRepo)

			service := &CreativeSyncService{
				creativeRepo:   creativeRepo,
				metaIntegrator: integrator,
			}

			assert.Equal(t, tt.expected, service.syncAccountCreatives(tt.account))
		})
	}
}

func TestBuildCreativeEntries(t *testing.T) {
	campaigns := []*domain.MetaCampaign{
		{ID: "CAMP1", Nome: "A", Insights: &domain.CampaignInsights{Spend: 100.50, Clicks: 10}},
		{ID: "CAMP2", Nome: "B"},
		{ID: "CAMP3", Nome: "C", Insights: &domain.CampaignInsights{Spend: 0}},
	}

	entries := buildCreativeEntries("ACC1", campaigns)

	require.Len(t, entries, 2)
	assert.Equal(t, "CAMP1", entries[0].CampaignID)
	assert.Equal(t, int64(10050), entries[0].Spend)
	assert.Equal(t, "CAMP3", entries[1].CampaignID)
	assert.WithinDuration(t, time.Now(), entries[0].FirstSeen, time.Minute)
}

func TestCreativeSyncService_processAccountsPulaContasSemVinculo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := metamocks.NewMockIntegrator(ctrl)
	creativeRepo := mocks.NewMockCampaignCreativeRepository(ctrl)

	// Nenhuma chamada à Graph API é esperada para contas sem vínculo
	service := &CreativeSyncService{
		creativeRepo:   creativeRepo,
		metaIntegrator: integrator,
		config: CreativeSyncConfig{
			MaxConcurrentJobs: 1,
		},
	}

	synced := service.processAccounts([]*domain.Account{
		{ID: "ACC_SEM_META"},
		{ID: "ACC_VAZIO", MetaAccountID: stringPtr("")},
	})

	assert.Equal(t, int64(0), synced)
}
