package ranking

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/internal/usecases/performance"
)

type RankingService interface {
	GetActorRanking(ctx context.Context, query performance.SummaryQuery) (*domain.RankingResponse, error)
}

type ActorRankingService struct {
	performanceService performance.PerformanceService
	now                func() time.Time
}

func NewActorRankingService(performanceService performance.PerformanceService) RankingService {
	return &ActorRankingService{
		performanceService: performanceService,
		now:                time.Now,
	}
}

// GetActorRanking monta o ranking de colaboradores a partir do resumo de desempenho.
// Para filtros de mês único, compara as posições com o mês anterior.
func (s *ActorRankingService) GetActorRanking(ctx context.Context, query performance.SummaryQuery) (*domain.RankingResponse, error) {
	summary, err := s.performanceService.GetSummary(ctx, query)
	if err != nil {
		return nil, err
	}

	response := &domain.RankingResponse{
		Category:   summary.Category,
		Status:     summary.Status,
		Partial:    summary.Partial,
		LastUpdate: s.now(),
	}

	var previous *domain.PerformanceSummary
	if query.Filter.Kind == domain.FilterMonth && query.Filter.Year != nil && query.Filter.Month != nil {
		previousMonth := previousOf(*query.Filter.Year, *query.Filter.Month)

		previousQuery := query
		previousQuery.Filter = domain.MonthFilter(previousMonth.Year, int(previousMonth.Month))

		previous, err = s.performanceService.GetSummary(ctx, previousQuery)
		if err != nil {
			logrus.WithError(err).Warn("Erro ao calcular ranking do mês anterior, variação de posição ignorada")
			previous = nil
		} else {
			response.ComparedWith = &previousMonth
		}
	}

	response.Ranking = BuildRanking(summary, previous)

	return response, nil
}

// BuildRanking atribui posições a partir de 1, na ordem do resumo (realizado decrescente)
func BuildRanking(summary *domain.PerformanceSummary, previous *domain.PerformanceSummary) []*domain.RankingItem {
	ranking := make([]*domain.RankingItem, 0, len(summary.ByActor))

	previousPositions := make(map[string]int)
	if previous != nil {
		for i, actor := range previous.ByActor {
			previousPositions[actor.ActorID] = i + 1
		}
	}

	for i, actor := range summary.ByActor {
		item := &domain.RankingItem{
			Position:         i + 1,
			ActorPerformance: actor,
		}

		if before, exists := previousPositions[actor.ActorID]; exists {
			item.PositionChange = before - item.Position
			item.PreviousPosition = before
		}

		ranking = append(ranking, item)
	}

	return ranking
}

func previousOf(year, month int) domain.YearMonth {
	if month <= 1 {
		return domain.YearMonth{Year: year - 1, Month: time.December}
	}
	return domain.YearMonth{Year: year, Month: time.Month(month - 1)}
}
