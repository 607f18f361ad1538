package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/lupamkt/backoffice-api/infrastructure/database/postgres"
	"github.com/lupamkt/backoffice-api/infrastructure/integrator/meta"
	"github.com/lupamkt/backoffice-api/infrastructure/integrator/meta/metaclient"
	"github.com/lupamkt/backoffice-api/infrastructure/repository"
	"github.com/lupamkt/backoffice-api/internal/api"
	"github.com/lupamkt/backoffice-api/internal/config"
	"github.com/lupamkt/backoffice-api/internal/scheduler"
	"github.com/lupamkt/backoffice-api/internal/usecases/account"
	"github.com/lupamkt/backoffice-api/internal/usecases/dashboarding"
	"github.com/lupamkt/backoffice-api/internal/usecases/enriching"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	managerRepo := repository.NewManagerRepository(pgConn)
	clienteRepo := repository.NewClienteRepository(pgConn)
	leadsStatsRepo := repository.NewLeadsStatsRepository(pgConn)
	creativeRepo := repository.NewCampaignCreativeRepository(pgConn)
	reportDispatchRepo := repository.NewReportDispatchRepository(pgConn)

	tokenManager := metaclient.NewTokenManager(cfg)
	go tokenManager.StartAutoRefresh()
	defer tokenManager.StopAutoRefresh()

	metaClient := metaclient.NewClient(cfg, tokenManager)
	metaIntegrator := meta.New(cfg, metaClient)

	enricher := enriching.NewService(accountRepo, managerRepo, clienteRepo, leadsStatsRepo)
	dashboardService := dashboarding.NewService(enricher)
	accountService := account.NewService(accountRepo, creativeRepo, metaIntegrator, cfg)

	// Inicializa os agendadores
	creativeSyncService := scheduler.NewCreativeSyncService(
		accountRepo,
		creativeRepo,
		metaIntegrator,
		cfg,
	)

	reportDispatchService := scheduler.NewReportDispatchService(
		reportDispatchRepo,
		dashboardService,
		cfg,
	)

	// Inicia os agendadores em background
	if err := creativeSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de criativos")
	} else {
		logrus.Info("Agendador de sincronização de criativos iniciado com sucesso")
	}

	if err := reportDispatchService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de despacho de relatórios")
	} else {
		logrus.Info("Agendador de despacho de relatórios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		accountService,
		creativeSyncService,
		reportDispatchService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
