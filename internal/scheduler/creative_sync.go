package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/lupamkt/backoffice-api/infrastructure/integrator/meta"
	"github.com/lupamkt/backoffice-api/infrastructure/repository"
	"github.com/lupamkt/backoffice-api/internal/config"
	"github.com/lupamkt/backoffice-api/internal/domain"
	"github.com/lupamkt/backoffice-api/pkg/metrics"
	"github.com/lupamkt/backoffice-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// CreativeSyncConfig representa a configuração do agendador de criativos
type CreativeSyncConfig struct {
	CronSchedule        string
	WindowDays          int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// CreativeSyncService gerencia o agendamento e execução da sincronização
// da janela de criativos a partir da Graph API
type CreativeSyncService struct {
	scheduler           *gocron.Scheduler
	config              CreativeSyncConfig
	accountRepo         repository.AccountRepository
	creativeRepo        repository.CampaignCreativeRepository
	metaIntegrator      meta.Integrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewCreativeSyncService cria uma nova instância do serviço de sincronização de criativos
func NewCreativeSyncService(
	accountRepo repository.AccountRepository,
	creativeRepo repository.CampaignCreativeRepository,
	metaIntegrator meta.Integrator,
	appConfig *config.Config,
) *CreativeSyncService {
	// Criar a configuração com base na config global
	syncConfig := CreativeSyncConfig{
		CronSchedule:        appConfig.CreativeSync.CronSchedule,
		WindowDays:          appConfig.CreativeSync.WindowDays,
		RequestDelaySeconds: appConfig.CreativeSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.CreativeSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.CreativeSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"window_days":           syncConfig.WindowDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de criativos carregada")

	return &CreativeSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		accountRepo:    accountRepo,
		creativeRepo:   creativeRepo,
		metaIntegrator: metaIntegrator,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *CreativeSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de criativos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de criativos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllCreatives()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de criativos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de criativos")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllCreatives sincroniza a janela de criativos de todas as contas ativas
func (s *CreativeSyncService) syncAllCreatives() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de criativos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de criativos para todas as contas ativas")

	activeAccounts, err := s.getActiveAccounts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para sincronização de criativos")
		metrics.DefaultMetrics.CreativeSyncRuns.WithLabelValues("error").Inc()
		return
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para sincronização de criativos")
		metrics.DefaultMetrics.CreativeSyncRuns.WithLabelValues("empty").Inc()
		return
	}

	synced := s.processAccounts(activeAccounts)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":    duration.String(),
		"accounts":    len(activeAccounts),
		"synced_rows": synced,
		"window_days": s.config.WindowDays,
	}).Info("Sincronização de criativos concluída")

	metrics.DefaultMetrics.CreativeSyncRuns.WithLabelValues("success").Inc()

	s.lastSyncCompletedAt = time.Now()
}

// getActiveAccounts busca e filtra contas ativas
func (s *CreativeSyncService) getActiveAccounts() ([]*domain.Account, error) {
	activeAccounts, err := s.accountRepo.ListAccounts([]domain.AccountStatus{domain.AccountStatusAtivo})
	if err != nil {
		return nil, err
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta encontrada para sincronização de criativos")
		return []*domain.Account{}, nil
	}

	logrus.WithFields(logrus.Fields{
		"active_accounts": len(activeAccounts),
	}).Info("Contas encontradas para sincronização de criativos")

	return activeAccounts, nil
}

// processAccounts processa as contas em paralelo respeitando o semáforo
// de concorrência e retorna o total de registros gravados
func (s *CreativeSyncService) processAccounts(accounts []*domain.Account) int64 {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	var totalSynced int64
	var totalMutex sync.Mutex

	for _, account := range accounts {
		// Contas sem vínculo com o Meta ficam fora da sincronização
		if account.MetaAccountID == nil || *account.MetaAccountID == "" {
			logrus.WithField("account_id", account.ID).Warn("Conta sem meta_account_id. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(acc *domain.Account) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			synced := s.syncAccountCreatives(acc)

			totalMutex.Lock()
			totalSynced += synced
			totalMutex.Unlock()

			// Aguardar antes da próxima requisição para evitar sobrecarga na API
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(account)
	}

	wg.Wait()

	return totalSynced
}

// syncAccountCreatives busca as campanhas da conta na Graph API e grava
// a janela de criativos no banco
func (s *CreativeSyncService) syncAccountCreatives(acc *domain.Account) int64 {
	logrus.WithFields(logrus.Fields{
		"account_id":      acc.ID,
		"meta_account_id": *acc.MetaAccountID,
		"account_name":    acc.Nome,
	}).Info("Sincronizando criativos da conta")

	campaigns, err := s.metaIntegrator.ListCampaigns(*acc.MetaAccountID, "last_30d")
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":      acc.ID,
			"meta_account_id": *acc.MetaAccountID,
			"error":           err.Error(),
		}).Error("Erro ao buscar campanhas no Meta para sincronização de criativos")
		return 0
	}

	if len(campaigns) == 0 {
		logrus.WithField("account_id", acc.ID).Info("Nenhuma campanha encontrada para a conta")
		return 0
	}

	creatives := buildCreativeEntries(acc.ID, campaigns)
	if len(creatives) == 0 {
		logrus.WithField("account_id", acc.ID).Info("Nenhuma campanha com insights para a conta")
		return 0
	}

	if err := s.creativeRepo.SaveOrUpdate(creatives); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": acc.ID,
			"error":      err.Error(),
		}).Error("Erro ao salvar criativos no banco de dados")
		return 0
	}

	metrics.DefaultMetrics.CreativeSyncedRows.Add(float64(len(creatives)))

	logrus.WithFields(logrus.Fields{
		"account_id": acc.ID,
		"creatives":  len(creatives),
	}).Info("Criativos salvos com sucesso para a conta")

	return int64(len(creatives))
}

// buildCreativeEntries converte as campanhas com insights em registros
// de janela. Spend chega em reais do integrador e é persistido em centavos.
func buildCreativeEntries(accountID string, campaigns []*domain.MetaCampaign) []*domain.CampaignCreative {
	now := time.Now()

	creatives := make([]*domain.CampaignCreative, 0, len(campaigns))

	for _, campaign := range campaigns {
		if campaign.Insights == nil {
			continue
		}

		creatives = append(creatives, &domain.CampaignCreative{
			AccountID:    accountID,
			CampaignID:   campaign.ID,
			CampaignNome: campaign.Nome,
			Spend:        utils.BRLToCents(campaign.Insights.Spend),
			Impressions:  campaign.Insights.Impressions,
			Clicks:       campaign.Insights.Clicks,
			Leads:        campaign.Insights.Conversions,
			FirstSeen:    now,
		})
	}

	return creatives
}

// TriggerManualSync inicia manualmente uma sincronização de criativos
func (s *CreativeSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de criativos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de criativos")
	go s.syncAllCreatives()
}

// GetStatus retorna o status atual do agendador
func (s *CreativeSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_window_days":       s.config.WindowDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
