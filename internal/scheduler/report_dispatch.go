package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/lupamkt/backoffice-api/infrastructure/repository"
	"github.com/lupamkt/backoffice-api/internal/config"
	"github.com/lupamkt/backoffice-api/internal/domain"
	"github.com/lupamkt/backoffice-api/internal/usecases/dashboarding"
	"github.com/lupamkt/backoffice-api/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// ReportDispatchConfig representa a configuração do agendador de relatórios
type ReportDispatchConfig struct {
	CronSchedule    string
	DispatchEnabled bool
}

// ReportDispatchService despacha periodicamente o resumo do painel para
// os destinatários cadastrados
type ReportDispatchService struct {
	scheduler               *gocron.Scheduler
	config                  ReportDispatchConfig
	dispatchRepo            repository.ReportDispatchRepository
	dashboarder             dashboarding.Dashboarder
	dispatchRunning         bool
	dispatchMutex           sync.Mutex
	lastDispatchStartedAt   time.Time
	lastDispatchCompletedAt time.Time
}

// NewReportDispatchService cria uma nova instância do serviço de despacho de relatórios
func NewReportDispatchService(
	dispatchRepo repository.ReportDispatchRepository,
	dashboarder dashboarding.Dashboarder,
	appConfig *config.Config,
) *ReportDispatchService {
	dispatchConfig := ReportDispatchConfig{
		CronSchedule:    appConfig.ReportDispatch.CronSchedule,
		DispatchEnabled: appConfig.ReportDispatch.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":    dispatchConfig.CronSchedule,
		"dispatch_enabled": dispatchConfig.DispatchEnabled,
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportDispatchService{
		scheduler:       scheduler,
		config:          dispatchConfig,
		dispatchRepo:    dispatchRepo,
		dashboarder:     dashboarder,
		dispatchRunning: false,
	}
}

// Start inicia o agendador
func (s *ReportDispatchService) Start(ctx context.Context) error {
	if !s.config.DispatchEnabled {
		logrus.Info("Despacho de relatórios desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de despacho de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.dispatchAllReports()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar despacho de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de despacho de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// dispatchAllReports gera e despacha o resumo para todos os destinatários ativos
func (s *ReportDispatchService) dispatchAllReports() {
	s.dispatchMutex.Lock()
	if s.dispatchRunning {
		s.dispatchMutex.Unlock()
		logrus.Info("Despacho de relatórios já em andamento, ignorando")
		return
	}
	s.dispatchRunning = true
	s.dispatchMutex.Unlock()

	startTime := time.Now()
	s.lastDispatchStartedAt = startTime

	defer func() {
		s.dispatchMutex.Lock()
		s.dispatchRunning = false
		s.dispatchMutex.Unlock()
	}()

	logrus.Info("Iniciando despacho de relatórios periódicos")

	configs, err := s.dispatchRepo.ListEnabled()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar destinatários de relatórios")
		return
	}

	if len(configs) == 0 {
		logrus.Info("Nenhum destinatário ativo de relatórios encontrado")
		return
	}

	dispatched := 0

	for _, cfg := range configs {
		if err := s.dispatchReport(cfg); err != nil {
			logrus.WithFields(logrus.Fields{
				"config_id": cfg.ID,
				"email":     cfg.Email,
				"error":     err.Error(),
			}).Error("Erro ao despachar relatório")
			continue
		}
		dispatched++
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":   duration.String(),
		"recipients": len(configs),
		"dispatched": dispatched,
	}).Info("Despacho de relatórios concluído")

	s.lastDispatchCompletedAt = time.Now()
}

// dispatchReport gera o resumo do escopo do destinatário e registra o envio.
// ClienteID nulo significa o consolidado da carteira inteira.
func (s *ReportDispatchService) dispatchReport(cfg *domain.ReportDispatchConfig) error {
	filter := domain.AccountFilter{
		ClienteID: cfg.ClienteID,
	}

	summary, err := s.dashboarder.GetSummary(filter)
	if err != nil {
		return fmt.Errorf("erro ao gerar resumo do relatório: %w", err)
	}

	scope := "carteira"
	if cfg.ClienteID != nil {
		scope = *cfg.ClienteID
	}

	// TODO integrar com o provedor de e-mail; por enquanto o despacho é
	// registrado apenas no log e no banco
	logrus.WithFields(logrus.Fields{
		"config_id":      cfg.ID,
		"email":          cfg.Email,
		"periodo":        cfg.Periodo,
		"scope":          scope,
		"total_accounts": summary.Total,
		"total_balance":  summary.SaldoTotalMeta,
	}).Info("Relatório periódico despachado")

	if err := s.dispatchRepo.UpdateLastSent(cfg.ID, time.Now()); err != nil {
		return fmt.Errorf("erro ao registrar envio do relatório: %w", err)
	}

	metrics.DefaultMetrics.ReportsDispatched.Inc()

	return nil
}

// TriggerManualDispatch inicia manualmente um despacho de relatórios
func (s *ReportDispatchService) TriggerManualDispatch() {
	s.dispatchMutex.Lock()
	if s.dispatchRunning {
		s.dispatchMutex.Unlock()
		logrus.Info("Despacho de relatórios já em andamento, ignorando solicitação manual")
		return
	}
	s.dispatchMutex.Unlock()

	logrus.Info("Iniciando despacho manual de relatórios")
	go s.dispatchAllReports()
}

// GetStatus retorna o status atual do agendador
func (s *ReportDispatchService) GetStatus() map[string]any {
	return map[string]any{
		"dispatch_enabled":           s.config.DispatchEnabled,
		"dispatch_cron":              s.config.CronSchedule,
		"last_dispatch_started_at":   s.lastDispatchStartedAt,
		"last_dispatch_completed_at": s.lastDispatchCompletedAt,
	}
}
