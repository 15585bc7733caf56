package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/realize-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/realize-report-api/infrastructure/integrator/realize/realizeclient"
	"github.com/vfg2006/realize-report-api/infrastructure/repository"
	"github.com/vfg2006/realize-report-api/internal/api"
	"github.com/vfg2006/realize-report-api/internal/config"
	"github.com/vfg2006/realize-report-api/internal/scheduler"
	"github.com/vfg2006/realize-report-api/internal/usecases/account"
	"github.com/vfg2006/realize-report-api/internal/usecases/exporting"
	"github.com/vfg2006/realize-report-api/internal/usecases/reporting"
	"github.com/vfg2006/realize-report-api/internal/usecases/rules"
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

	localStore := repository.NewLocalStoreRepository(pgConn)
	tokenRepo := repository.NewTokenRepository(localStore)
	primaryRuleRepo := repository.NewPrimaryRuleRepository(localStore)
	recentAccountRepo := repository.NewRecentAccountRepository(localStore)

	tokenManager := realizeclient.NewTokenManager(cfg, tokenRepo)
	realizeClient := realizeclient.NewClient(cfg, tokenManager)

	accountService := account.NewService(realizeClient, recentAccountRepo)
	ruleService := rules.NewService(realizeClient, primaryRuleRepo)
	reportService := reporting.NewService(realizeClient, cfg)
	exportService := exporting.NewService(reportService, cfg)

	// Inicializa o agendador de exportação periódica de relatórios
	exportSyncService := scheduler.NewReportExportSyncService(
		recentAccountRepo,
		ruleService,
		exportService,
		cfg,
	)

	if err := exportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de exportação de relatórios")
	} else {
		logrus.Info("Agendador de exportação de relatórios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		accountService,
		ruleService,
		reportService,
		exportService,
		exportSyncService,
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
