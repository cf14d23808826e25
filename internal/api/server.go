package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-target-api/internal/api/handler"
	"github.com/vfg2006/sales-target-api/internal/api/handler/router"
	"github.com/vfg2006/sales-target-api/internal/config"
	"github.com/vfg2006/sales-target-api/internal/scheduler"
	"github.com/vfg2006/sales-target-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-target-api/internal/usecases/directory"
	"github.com/vfg2006/sales-target-api/internal/usecases/performance"
	"github.com/vfg2006/sales-target-api/internal/usecases/periods"
	"github.com/vfg2006/sales-target-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-target-api/internal/usecases/targeting"
	"github.com/vfg2006/sales-target-api/pkg/metrics"
	"github.com/vfg2006/sales-target-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator       authenticating.Authenticator
	TargetService       targeting.TargetService
	PerformanceService  performance.PerformanceService
	RankingService      ranking.RankingService
	DirectoryService    directory.DirectoryService
	DiscoveryService    periods.DiscoveryService
	PeriodDiscoverySync *scheduler.PeriodDiscoverySyncService
}

func New(config *config.Config, services Services, metricsManager *metrics.Manager) (*Server, error) {
	cronServices := handler.CronJobServices{}
	if services.PeriodDiscoverySync != nil {
		cronServices.PeriodDiscoverySyncService = services.PeriodDiscoverySync
	}

	routes := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Me()...),
		router.WithRoutes(handler.Directory(services.DirectoryService)...),
		router.WithRoutes(handler.Targets(services.TargetService)...),
		router.WithRoutes(handler.Performance(services.PerformanceService)...),
		router.WithRoutes(handler.ActorRanking(services.RankingService)...),
		router.WithRoutes(handler.Periods(services.DiscoveryService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	}

	var publicPaths []string
	if config.Metrics.Enabled && metricsManager != nil {
		routes = append(routes, router.WithRoutes(handler.Metrics(config.Metrics.Path, metricsManager.Handler())...))
		publicPaths = append(publicPaths, config.Metrics.Path)
	}

	rt := router.New(routes...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(metricsManager),
		middleware.Cors(),
		middleware.AuthMiddleware(services.Authenticator, publicPaths...),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler devolve a cadeia HTTP completa, usada nos testes de ponta a ponta
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
