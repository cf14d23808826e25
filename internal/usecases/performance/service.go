package performance

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-target-api/infrastructure/repository"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/internal/usecases/periods"
	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
	"github.com/vfg2006/sales-target-api/pkg/log"
	"github.com/vfg2006/sales-target-api/pkg/metrics"
)

// SummaryQuery é a consulta de desempenho de uma categoria em um período e escopo
type SummaryQuery struct {
	Category domain.Category
	Filter   domain.PeriodFilter
	Scope    Scope
}

type PerformanceService interface {
	GetSummary(ctx context.Context, query SummaryQuery) (*domain.PerformanceSummary, error)
	GetOverview(ctx context.Context, filter domain.PeriodFilter, scope Scope, categories []domain.Category) (*domain.PerformanceOverview, error)
}

type Service struct {
	transactionRepository repository.TransactionRepository
	targetRepository      repository.TargetRepository
	actorRepository       repository.ActorRepository
	teamRepository        repository.TeamRepository
	metrics               *metrics.Manager
}

func NewService(
	transactionRepository repository.TransactionRepository,
	targetRepository repository.TargetRepository,
	actorRepository repository.ActorRepository,
	teamRepository repository.TeamRepository,
	metricsManager *metrics.Manager,
) PerformanceService {
	return &Service{
		transactionRepository: transactionRepository,
		targetRepository:      targetRepository,
		actorRepository:       actorRepository,
		teamRepository:        teamRepository,
		metrics:               metricsManager,
	}
}

// GetSummary normaliza o período, busca transações e metas em paralelo e agrega.
// Uma fonte que falha é tratada como vazia e o resumo é marcado como parcial.
func (s *Service) GetSummary(ctx context.Context, query SummaryQuery) (*domain.PerformanceSummary, error) {
	startTime := time.Now()

	category, err := domain.ParseCategory(string(query.Category))
	if err != nil {
		return nil, NewPerformanceError(ErrInvalidCategory, apiErrors.ErrInvalidFormat, err.Error())
	}

	normalized, err := periods.Normalize(query.Filter)
	if err != nil {
		return nil, err
	}

	actorIDs, err := s.resolveScope(ctx, query.Scope)
	if err != nil {
		return nil, err
	}

	filter := domain.RecordFilter{
		Category: category,
		Interval: normalized.Interval,
		ActorIDs: actorIDs,
	}

	var (
		transactions    []*domain.Transaction
		targets         []*domain.TargetRecord
		actors          []*domain.Actor
		transactionsErr error
		targetsErr      error
		actorsErr       error
	)

	// Usar WaitGroup para esperar as goroutines terminarem
	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		transactions, transactionsErr = s.transactionRepository.List(ctx, filter)
	}()

	go func() {
		defer wg.Done()
		targets, targetsErr = s.targetRepository.List(ctx, filter)
	}()

	go func() {
		defer wg.Done()
		actors, actorsErr = s.actorRepository.ListActors(ctx, nil)
	}()

	wg.Wait()

	if transactionsErr != nil {
		log.ForContext(ctx).WithError(transactionsErr).WithField("category", category).Warn("Falha ao buscar transações, resumo será parcial")
		transactions = nil
	}

	if targetsErr != nil {
		log.ForContext(ctx).WithError(targetsErr).WithField("category", category).Warn("Falha ao buscar metas, resumo será parcial")
		targets = nil
	}

	if actorsErr != nil {
		log.ForContext(ctx).WithError(actorsErr).Warn("Falha ao buscar nomes dos colaboradores")
	}

	summary := Aggregate(normalized.Interval, category, scoped(transactions, actorIDs), scopedTargets(targets, actorIDs))
	summary.Status = normalized.Status

	if transactionsErr != nil {
		summary.MarkPartial(domain.SourceTransactions)
	}
	if targetsErr != nil {
		summary.MarkPartial(domain.SourceTargets)
	}

	fillActorNames(summary, actors)

	s.metrics.RecordSummary(string(category), summary.Partial, time.Since(startTime))

	logrus.WithFields(logrus.Fields{
		"category": category,
		"scope":    query.Scope.String(),
		"status":   summary.Status,
		"partial":  summary.Partial,
		"actors":   len(summary.ByActor),
	}).Debug("Resumo de desempenho calculado")

	return summary, nil
}

// GetOverview calcula em paralelo um resumo por categoria
func (s *Service) GetOverview(ctx context.Context, filter domain.PeriodFilter, scope Scope, categories []domain.Category) (*domain.PerformanceOverview, error) {
	normalized, err := periods.Normalize(filter)
	if err != nil {
		return nil, err
	}

	summaries := make([]*domain.PerformanceSummary, len(categories))
	errs := make([]error, len(categories))

	wg := sync.WaitGroup{}
	for i, category := range categories {
		wg.Add(1)
		go func(i int, category domain.Category) {
			defer wg.Done()
			summaries[i], errs[i] = s.GetSummary(ctx, SummaryQuery{
				Category: category,
				Filter:   filter,
				Scope:    scope,
			})
		}(i, category)
	}
	wg.Wait()

	overview := &domain.PerformanceOverview{
		Status:    normalized.Status,
		Summaries: make([]*domain.PerformanceSummary, 0, len(categories)),
	}

	for i, summary := range summaries {
		if errs[i] != nil {
			return nil, errs[i]
		}
		overview.Partial = overview.Partial || summary.Partial
		overview.Summaries = append(overview.Summaries, summary)
	}

	return overview, nil
}

// resolveScope retorna os colaboradores do escopo. nil significa a organização inteira.
func (s *Service) resolveScope(ctx context.Context, scope Scope) ([]string, error) {
	switch scope.Kind {
	case ScopeOrganization, "":
		return nil, nil

	case ScopeActor:
		return []string{scope.ID}, nil

	case ScopeTeam:
		team, err := s.teamRepository.GetTeamByID(ctx, scope.ID)
		if err != nil {
			log.ForContext(ctx).WithError(err).WithField("team_id", scope.ID).Error("Erro ao buscar time do escopo")
			return nil, NewPerformanceError(ErrScopeLookup, apiErrors.ErrDatabaseOperation, scope.String())
		}
		if team == nil {
			return nil, NewPerformanceError(ErrTeamNotFound, apiErrors.ErrInvalidRequest, scope.ID)
		}
		return team.MemberIDs(), nil
	}

	return nil, NewPerformanceError(ErrInvalidScope, apiErrors.ErrInvalidFormat, scope.String())
}

func scoped(transactions []*domain.Transaction, actorIDs []string) []*domain.Transaction {
	if actorIDs == nil {
		return transactions
	}

	allowed := toSet(actorIDs)
	result := make([]*domain.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if _, ok := allowed[transaction.ActorID]; ok {
			result = append(result, transaction)
		}
	}
	return result
}

func scopedTargets(targets []*domain.TargetRecord, actorIDs []string) []*domain.TargetRecord {
	if actorIDs == nil {
		return targets
	}

	allowed := toSet(actorIDs)
	result := make([]*domain.TargetRecord, 0, len(targets))
	for _, target := range targets {
		if _, ok := allowed[target.ActorID]; ok {
			result = append(result, target)
		}
	}
	return result
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func fillActorNames(summary *domain.PerformanceSummary, actors []*domain.Actor) {
	if len(actors) == 0 {
		return
	}

	names := make(map[string]string, len(actors))
	for _, actor := range actors {
		names[actor.ID] = actor.Name
	}

	for _, actor := range summary.ByActor {
		actor.ActorName = names[actor.ActorID]
	}
}
