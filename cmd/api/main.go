package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-pricing-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-pricing-api/infrastructure/integrator/narrator"
	"github.com/vfg2006/creator-pricing-api/infrastructure/integrator/narrator/narratorclient"
	"github.com/vfg2006/creator-pricing-api/infrastructure/repository"
	"github.com/vfg2006/creator-pricing-api/internal/api"
	"github.com/vfg2006/creator-pricing-api/internal/config"
	"github.com/vfg2006/creator-pricing-api/internal/scheduler"
	"github.com/vfg2006/creator-pricing-api/internal/usecases/analytics"
	"github.com/vfg2006/creator-pricing-api/internal/usecases/authenticating"
	"github.com/vfg2006/creator-pricing-api/internal/usecases/community"
	"github.com/vfg2006/creator-pricing-api/internal/usecases/negotiating"
	"github.com/vfg2006/creator-pricing-api/internal/usecases/pricing"
	"github.com/vfg2006/creator-pricing-api/internal/usecases/profiling"
	"github.com/vfg2006/creator-pricing-api/internal/usecases/reporting"
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

	userRepo := repository.NewUserRepository(pgConn)
	profileRepo := repository.NewProfileRepository(pgConn)
	dealRepo := repository.NewDealRepository(pgConn)
	negotiationRepo := repository.NewNegotiationRepository(pgConn)
	calculationRepo := repository.NewCalculationRepository(pgConn)
	aiUsageRepo := repository.NewAIUsageRepository(pgConn)
	cohortSnapshotRepo := repository.NewCohortSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	narratorClient := narratorclient.NewClient(cfg)
	narratorIntegrator := narrator.New(cfg, narratorClient)

	rateModel := pricing.NewRateModel(pricing.DefaultRateTables())

	profiler := profiling.NewService(profileRepo)
	communityService := community.NewService(dealRepo, cfg)
	pricer := pricing.NewService(
		rateModel,
		communityService,
		calculationRepo,
		profileRepo,
		narratorIntegrator,
		aiUsageRepo,
		cfg,
	)
	negotiator := negotiating.NewService(rateModel, negotiationRepo, dealRepo)
	reporter := reporting.NewService(dealRepo, narratorIntegrator, aiUsageRepo, cfg)
	analyzer := analytics.NewService(
		dealRepo,
		negotiationRepo,
		calculationRepo,
		profileRepo,
		narratorIntegrator,
		aiUsageRepo,
		cfg,
	)

	// Inicializa o agendador de snapshots de cohort
	cohortSnapshotSyncService := scheduler.NewCohortSnapshotSyncService(
		communityService,
		cohortSnapshotRepo,
		cfg,
	)

	// Inicia o agendador em background
	if err := cohortSnapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de cohort")
	} else {
		logrus.Info("Agendador de snapshots de cohort iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		profiler,
		pricer,
		communityService,
		negotiator,
		reporter,
		analyzer,
		cohortSnapshotSyncService,
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
