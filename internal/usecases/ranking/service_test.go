package ranking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/internal/usecases/performance"
	"github.com/vfg2006/sales-target-api/internal/usecases/performance/mocks"
	"go.uber.org/mock/gomock"
)

func actorSummary(ids ...string) *domain.PerformanceSummary {
	summary := &domain.PerformanceSummary{Category: domain.CategorySales, Status: "ok"}
	for i, id := range ids {
		summary.ByActor = append(summary.ByActor, &domain.ActorPerformance{
			ActorID: id,
			PerformanceFigures: domain.PerformanceFigures{
				Actual: decimal.NewFromInt(int64(1000 - i*100)),
			},
		})
	}
	return summary
}

func TestBuildRanking(t *testing.T) {
	current := actorSummary("A", "B", "C")
	previous := actorSummary("B", "C", "A")

	ranking := BuildRanking(current, previous)

	require.Len(t, ranking, 3)

	assert.Equal(t, 1, ranking[0].Position)
	assert.Equal(t, "A", ranking[0].ActorID)
	assert.Equal(t, 3, ranking[0].PreviousPosition)
	assert.Equal(t, 2, ranking[0].PositionChange)

	assert.Equal(t, 2, ranking[1].Position)
	assert.Equal(t, -1, ranking[1].PositionChange)

	assert.Equal(t, 3, ranking[2].Position)
	assert.Equal(t, -1, ranking[2].PositionChange)
}

func TestBuildRanking_WithoutPrevious(t *testing.T) {
	ranking := BuildRanking(actorSummary("A", "B"), nil)

	require.Len(t, ranking, 2)
	assert.Equal(t, 0, ranking[1].PreviousPosition)
	assert.Equal(t, 0, ranking[1].PositionChange)
}

func TestActorRankingService_GetActorRanking(t *testing.T) {
	ctrl := gomock.NewController(t)
	performanceService := mocks.NewMockPerformanceService(ctrl)

	now := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
	service := &ActorRankingService{
		performanceService: performanceService,
		now:                func() time.Time { return now },
	}

	query := performance.SummaryQuery{
		Category: domain.CategorySales,
		Filter:   domain.MonthFilter(2025, 1),
		Scope:    performance.OrganizationScope(),
	}
	previousQuery := query
	previousQuery.Filter = domain.MonthFilter(2024, 12)

	performanceService.EXPECT().GetSummary(gomock.Any(), query).Return(actorSummary("A", "B"), nil)
	performanceService.EXPECT().GetSummary(gomock.Any(), previousQuery).Return(actorSummary("B", "A"), nil)

	response, err := service.GetActorRanking(context.Background(), query)

	require.NoError(t, err)
	require.NotNil(t, response.ComparedWith)
	assert.Equal(t, domain.YearMonth{Year: 2024, Month: time.December}, *response.ComparedWith)
	assert.Equal(t, now, response.LastUpdate)
	require.Len(t, response.Ranking, 2)
	assert.Equal(t, 1, response.Ranking[0].PositionChange)
}

func TestActorRankingService_RangeFilterSkipsComparison(t *testing.T) {
	ctrl := gomock.NewController(t)
	performanceService := mocks.NewMockPerformanceService(ctrl)
	service := &ActorRankingService{performanceService: performanceService, now: time.Now}

	query := performance.SummaryQuery{
		Category: domain.CategorySales,
		Filter:   domain.YearRangeFilter(2024, 2025),
	}

	performanceService.EXPECT().GetSummary(gomock.Any(), query).Return(actorSummary("A"), nil).Times(1)

	response, err := service.GetActorRanking(context.Background(), query)

	require.NoError(t, err)
	assert.Nil(t, response.ComparedWith)
	assert.Len(t, response.Ranking, 1)
}

func TestActorRankingService_PropagatesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	performanceService := mocks.NewMockPerformanceService(ctrl)
	service := &ActorRankingService{performanceService: performanceService, now: time.Now}

	performanceService.EXPECT().GetSummary(gomock.Any(), gomock.Any()).Return(nil, performance.ErrInvalidCategory)

	_, err := service.GetActorRanking(context.Background(), performance.SummaryQuery{Category: "x"})

	assert.True(t, errors.Is(err, performance.ErrInvalidCategory))
}
