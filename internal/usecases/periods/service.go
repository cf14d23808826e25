package periods

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-target-api/infrastructure/repository"
	"github.com/vfg2006/sales-target-api/internal/config"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/pkg/metrics"
)

type DiscoveryService interface {
	AvailablePeriods(ctx context.Context) *domain.AvailablePeriods
	Refresh(ctx context.Context) *domain.AvailablePeriods
}

type Service struct {
	transactionRepository repository.TransactionRepository
	targetRepository      repository.TargetRepository
	metrics               *metrics.Manager
	fallbackYears         int
	now                   func() time.Time

	mu     sync.RWMutex
	cached *domain.AvailablePeriods
}

func NewService(
	transactionRepository repository.TransactionRepository,
	targetRepository repository.TargetRepository,
	metricsManager *metrics.Manager,
	cfg *config.Config,
) DiscoveryService {
	return &Service{
		transactionRepository: transactionRepository,
		targetRepository:      targetRepository,
		metrics:               metricsManager,
		fallbackYears:         cfg.PeriodDiscovery.FallbackYears,
		now:                   time.Now,
	}
}

// AvailablePeriods retorna os anos em cache, recalculando quando o cache é de outro ano
func (s *Service) AvailablePeriods(ctx context.Context) *domain.AvailablePeriods {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()

	if cached != nil && cached.CurrentYear == s.now().Year() && !cached.Fallback {
		return cached
	}

	return s.Refresh(ctx)
}

// Refresh lê os anos distintos de transações e metas, sem nenhum filtro aplicado.
// Qualquer falha de leitura resulta na janela fixa de anos.
func (s *Service) Refresh(ctx context.Context) *domain.AvailablePeriods {
	now := s.now()

	var (
		transactionYears []int
		targetYears      []int
		transactionErr   error
		targetErr        error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		transactionYears, transactionErr = s.transactionRepository.GetAllYears(ctx)
	}()

	go func() {
		defer wg.Done()
		targetYears, targetErr = s.targetRepository.GetAllYears(ctx)
	}()

	wg.Wait()

	periods := &domain.AvailablePeriods{
		CurrentYear: now.Year(),
		RefreshedAt: now,
	}

	if transactionErr != nil || targetErr != nil {
		logrus.WithFields(logrus.Fields{
			"transactions_error": transactionErr,
			"targets_error":      targetErr,
			"window":             s.fallbackYears,
		}).Warn("Falha ao descobrir anos disponíveis, usando janela fixa")

		s.metrics.RecordDiscoveryFallback()
		periods.Years = FallbackYears(now, s.fallbackYears)
		periods.Fallback = true
	} else {
		periods.Years = DiscoverYears(transactionYears, targetYears, now)
	}

	s.mu.Lock()
	s.cached = periods
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"years":    periods.Years,
		"fallback": periods.Fallback,
	}).Debug("Anos disponíveis atualizados")

	return periods
}
