// Package scheduler contém os serviços de agendamento da API
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-target-api/internal/config"
	"github.com/vfg2006/sales-target-api/internal/usecases/periods"
)

type PeriodDiscoverySyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// PeriodDiscoverySyncService mantém atualizado o cache de anos disponíveis no filtro de período
type PeriodDiscoverySyncService struct {
	scheduler           *gocron.Scheduler
	discoveryService    periods.DiscoveryService
	config              PeriodDiscoverySyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastYears           []int
	lastFallback        bool
}

func NewPeriodDiscoverySyncService(
	discoveryService periods.DiscoveryService,
	cfg *config.Config,
) *PeriodDiscoverySyncService {
	syncConfig := PeriodDiscoverySyncConfig{
		CronSchedule: cfg.PeriodDiscovery.CronSchedule, // Default: 2h da manhã todos os dias
		SyncEnabled:  cfg.PeriodDiscovery.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de descoberta de períodos carregada")

	return &PeriodDiscoverySyncService{
		scheduler:        scheduler,
		discoveryService: discoveryService,
		config:           syncConfig,
	}
}

func (s *PeriodDiscoverySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de descoberta de períodos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de descoberta de períodos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshPeriods(ctx); err != nil {
			logrus.WithError(err).Error("Erro na descoberta de períodos")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar descoberta de períodos: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de descoberta de períodos")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshPeriods recalcula os anos disponíveis. Execuções simultâneas são ignoradas.
func (s *PeriodDiscoverySyncService) RefreshPeriods(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Descoberta de períodos já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.Info("Iniciando descoberta de períodos")

	available := s.discoveryService.Refresh(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if available != nil {
		s.lastYears = available.Years
		s.lastFallback = available.Fallback
	}
	s.syncMutex.Unlock()

	if available == nil {
		return fmt.Errorf("descoberta de períodos não retornou resultado")
	}

	logrus.WithFields(logrus.Fields{
		"years":    available.Years,
		"fallback": available.Fallback,
	}).Info("Descoberta de períodos concluída")

	return nil
}

// TriggerManualSync inicia manualmente a descoberta de períodos
func (s *PeriodDiscoverySyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Descoberta de períodos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando descoberta manual de períodos")
	go func() {
		if err := s.RefreshPeriods(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na descoberta manual de períodos")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *PeriodDiscoverySyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_years":             s.lastYears,
		"last_fallback":          s.lastFallback,
	}
}
