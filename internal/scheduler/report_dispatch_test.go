package scheduler

import (
	"testing"
	"time"

	"github.com/lupamkt/backoffice-api/infrastructure/repository/mocks"
	"github.com/lupamkt/backoffice-api/internal/domain"
	dashmocks "github.com/lupamkt/backoffice-api/internal/usecases/dashboarding/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func TestReportDispatchService_dispatchAllReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name  string
		setup func(dispatchRepo *mocks.MockReportDispatchRepository, dashboarder *dashmocks.MockDashboarder)
	}{
		{
			name: "Destinatário de carteira - resumo sem filtro de cliente",
			setup: func(dispatchRepo *mocks.MockReportDispatchRepository, dashboarder *dashmocks.MockDashboarder) {
				dispatchRepo.EXPECT().ListEnabled().Return([]*domain.ReportDispatchConfig{
					{ID: "CFG1", Email: "diretoria@lupamkt.com.br", Periodo: "semanal", Ativo: true},
				}, nil)

				dashboarder.EXPECT().
					GetSummary(domain.AccountFilter{}).
					Return(&domain.DashboardSummary{Total: 12, SaldoTotalMeta: 3500.0}, nil)

				dispatchRepo.EXPECT().UpdateLastSent("CFG1", gomock.Any()).Return(nil)
			},
		},
		{
			name: "Destinatário escopado por cliente",
			setup: func(dispatchRepo *mocks.MockReportDispatchRepository, dashboarder *dashmocks.MockDashboarder) {
				clienteID := stringPtr("CLI1")

				dispatchRepo.EXPECT().ListEnabled().Return([]*domain.ReportDispatchConfig{
					{ID: "CFG2", ClienteID: clienteID, Email: "cliente@exemplo.com.br", Periodo: "semanal", Ativo: true},
				}, nil)

				dashboarder.EXPECT().
					GetSummary(domain.AccountFilter{ClienteID: clienteID}).
					Return(&domain.DashboardSummary{Total: 2}, nil)

				dispatchRepo.EXPECT().UpdateLastSent("CFG2", gomock.Any()).Return(nil)
			},
		},
		{
			name: "Erro em um destinatário não interrompe os demais",
			setup: func(dispatchRepo *mocks.MockReportDispatchRepository, dashboarder *dashmocks.MockDashboarder) {
				dispatchRepo.EXPECT().ListEnabled().Return([]*domain.ReportDispatchConfig{
					{ID: "CFG_ERRO", Email: "a@exemplo.com.br", Periodo: "semanal", Ativo: true},
					{ID: "CFG_OK", Email: "b@exemplo.com.br", Periodo: "semanal", Ativo: true},
				}, nil)

				dashboarder.EXPECT().
					GetSummary(gomock.Any()).
					Return(nil, errors.New("conexão recusada"))

				dashboarder.EXPECT().
					GetSummary(gomock.Any()).
					Return(&domain.DashboardSummary{Total: 5}, nil)

				dispatchRepo.EXPECT().UpdateLastSent("CFG_OK", gomock.Any()).Return(nil)
			},
		},
		{
			name: "Nenhum destinatário ativo - nada a despachar",
			setup: func(dispatchRepo *mocks.MockReportDispatchRepository, dashboarder *dashmocks.MockDashboarder) {
				dispatchRepo.EXPECT().ListEnabled().Return(nil, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatchRepo := mocks.NewMockReportDispatchRepository(ctrl)
			dashboarder := dashmocks.NewMockDashboarder(ctrl)

			tt.setup(dispatchRepo, dashboarder)

			service := &ReportDispatchService{
				dispatchRepo: dispatchRepo,
				dashboarder:  dashboarder,
			}

			service.dispatchAllReports()
		})
	}
}

func TestReportDispatchService_dispatchReportRegistraEnvio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatchRepo := mocks.NewMockReportDispatchRepository(ctrl)
	dashboarder := dashmocks.NewMockDashboarder(ctrl)

	dashboarder.EXPECT().
		GetSummary(domain.AccountFilter{}).
		Return(&domain.DashboardSummary{Total: 3}, nil)

	var sentAt time.Time
	dispatchRepo.EXPECT().
		UpdateLastSent("CFG1", gomock.Any()).
		DoAndReturn(func(configID string, at time.Time) error {
			sentAt = at
			return nil
		})

	service := &ReportDispatchService{
		dispatchRepo: dispatchRepo,
		dashboarder:  dashboarder,
	}

	err := service.dispatchReport(&domain.ReportDispatchConfig{
		ID:      "CFG1",
		Email:   "diretoria@lupamkt.com.br",
		Periodo: "semanal",
		Ativo:   true,
	})
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now(), sentAt, time.Minute)
}

func TestReportDispatchService_GetStatus(t *testing.T) {
	service := &ReportDispatchService{
		config: ReportDispatchConfig{
			CronSchedule:    "0 7 * * 1",
			DispatchEnabled: true,
		},
	}

	status := service.GetStatus()
	assert.Equal(t, true, status["dispatch_enabled"])
	assert.Equal(t, "0 7 * * 1", status["dispatch_cron"])
}
