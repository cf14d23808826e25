package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-target-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-target-api/infrastructure/repository"
	"github.com/vfg2006/sales-target-api/internal/api"
	"github.com/vfg2006/sales-target-api/internal/config"
	"github.com/vfg2006/sales-target-api/internal/scheduler"
	"github.com/vfg2006/sales-target-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-target-api/internal/usecases/directory"
	"github.com/vfg2006/sales-target-api/internal/usecases/performance"
	"github.com/vfg2006/sales-target-api/internal/usecases/periods"
	"github.com/vfg2006/sales-target-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-target-api/internal/usecases/targeting"
	"github.com/vfg2006/sales-target-api/pkg/log"
	"github.com/vfg2006/sales-target-api/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define formato e nível de log com base na configuração
	if err := log.Setup(cfg.App.LogLevel, cfg.App.Environment); err != nil {
		logrus.WithError(err).Warn("Nível de log inválido, usando 'info'")
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	metricsManager := metrics.NewManager(
		metrics.WithMetricsEnabled(cfg.Metrics.Enabled),
	)

	actorRepo := repository.NewActorRepository(pgConn)
	teamRepo := repository.NewTeamRepository(pgConn)
	targetRepo := repository.NewTargetRepository(pgConn)
	transactionRepo := repository.NewTransactionRepository(pgConn)

	authenticator := authenticating.NewService(cfg)
	directoryService := directory.NewService(actorRepo, teamRepo)
	targetService := targeting.NewService(actorRepo, teamRepo, targetRepo, metricsManager, cfg)
	performanceService := performance.NewService(transactionRepo, targetRepo, actorRepo, teamRepo, metricsManager)
	rankingService := ranking.NewActorRankingService(performanceService)
	discoveryService := periods.NewService(transactionRepo, targetRepo, metricsManager, cfg)

	periodDiscoverySyncService := scheduler.NewPeriodDiscoverySyncService(discoveryService, cfg)

	// Aquece o cache de anos antes de aceitar requisições
	if err := periodDiscoverySyncService.RefreshPeriods(ctx); err != nil {
		logrus.WithError(err).Warn("Erro ao carregar anos disponíveis na inicialização")
	}

	if err := periodDiscoverySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de descoberta de períodos")
	} else {
		logrus.Info("Agendador de descoberta de períodos iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator:       authenticator,
		TargetService:       targetService,
		PerformanceService:  performanceService,
		RankingService:      rankingService,
		DirectoryService:    directoryService,
		DiscoveryService:    discoveryService,
		PeriodDiscoverySync: periodDiscoverySyncService,
	}, metricsManager)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
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
