package performance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-target-api/internal/domain"
)

func sale(actorID string, year int, month time.Month, amount int64) *domain.Transaction {
	return &domain.Transaction{
		ID:         actorID + month.String(),
		Category:   domain.CategorySales,
		ActorID:    actorID,
		Amount:     decimal.NewFromInt(amount),
		Quantity:   decimal.NewFromInt(1),
		OccurredAt: time.Date(year, month, 15, 10, 0, 0, 0, time.UTC),
	}
}

func target(actorID string, year int, month time.Month, amount int64, quantity int64) *domain.TargetRecord {
	return &domain.TargetRecord{
		ActorID:  actorID,
		Category: domain.CategorySales,
		Year:     year,
		Month:    int(month),
		Amount:   decimal.NewFromInt(amount),
		Quantity: decimal.NewFromInt(quantity),
	}
}

func marchToApril2025() domain.PeriodInterval {
	return domain.PeriodInterval{
		Start: domain.YearMonth{Year: 2025, Month: time.March},
		End:   domain.YearMonth{Year: 2025, Month: time.April},
	}
}

func TestAggregate_MonthlyAndActorTotals(t *testing.T) {
	transactions := []*domain.Transaction{
		sale("X", 2025, time.March, 2000),
		sale("X", 2025, time.April, 3000),
	}
	targets := []*domain.TargetRecord{
		target("X", 2025, time.March, 4000, 10),
		target("X", 2025, time.April, 2000, 10),
	}

	summary := Aggregate(marchToApril2025(), domain.CategorySales, transactions, targets)

	require.Len(t, summary.ByActor, 1)
	actor := summary.ByActor[0]
	assert.Equal(t, "X", actor.ActorID)
	assert.Equal(t, "5000", actor.Actual.String())
	assert.Equal(t, "6000", actor.Target.String())
	assert.Equal(t, int64(83), actor.Percentage)

	require.Len(t, actor.Months, 2)
	assert.Equal(t, time.March, actor.Months[0].Period.Month)
	assert.Equal(t, int64(50), actor.Months[0].Percentage)
	assert.Equal(t, time.April, actor.Months[1].Period.Month)
	assert.Equal(t, int64(150), actor.Months[1].Percentage)

	require.Len(t, summary.ByMonth, 2)
	assert.Equal(t, int64(50), summary.ByMonth[0].Percentage)
	assert.Equal(t, int64(150), summary.ByMonth[1].Percentage)
	assert.Equal(t, int64(83), summary.Percentage)
}

func TestAggregate_ZeroTargetGivesZeroPercentage(t *testing.T) {
	summary := Aggregate(marchToApril2025(), domain.CategorySales, []*domain.Transaction{
		sale("X", 2025, time.March, 1500),
	}, nil)

	require.Len(t, summary.ByActor, 1)
	assert.Equal(t, int64(0), summary.ByActor[0].Percentage)
	assert.Equal(t, int64(0), summary.Percentage)
	assert.True(t, summary.Target.IsZero())
}

func TestAggregate_DuplicateTargetsSumAmountKeepQuantity(t *testing.T) {
	targets := []*domain.TargetRecord{
		target("X", 2025, time.March, 1000, 7),
		target("X", 2025, time.March, 500, 7),
	}

	summary := Aggregate(marchToApril2025(), domain.CategorySales, nil, targets)

	require.Len(t, summary.ByMonth, 1)
	assert.Equal(t, "1500", summary.ByMonth[0].Target.String())
	assert.Equal(t, "7", summary.ByMonth[0].TargetQuantity.String())
}

func TestAggregate_FiltersIntervalAndCategory(t *testing.T) {
	order := sale("X", 2025, time.March, 999)
	order.Category = domain.CategoryOrders

	transactions := []*domain.Transaction{
		sale("X", 2025, time.February, 700),
		sale("X", 2025, time.March, 100),
		order,
	}

	summary := Aggregate(marchToApril2025(), domain.CategorySales, transactions, nil)

	assert.Equal(t, "100", summary.Actual.String())
	require.Len(t, summary.ByMonth, 1)
	assert.Equal(t, time.March, summary.ByMonth[0].Period.Month)
}

func TestAggregate_BucketsInUTC(t *testing.T) {
	// 2025-04-01T01:00Z lida pelo driver no fuso -03:00 ainda é 31/03 no horário local
	local := time.FixedZone("BRT", -3*60*60)
	boundary := sale("X", 2025, time.April, 1000)
	boundary.OccurredAt = time.Date(2025, time.April, 1, 1, 0, 0, 0, time.UTC).In(local)

	april := domain.PeriodInterval{
		Start: domain.YearMonth{Year: 2025, Month: time.April},
		End:   domain.YearMonth{Year: 2025, Month: time.April},
	}

	summary := Aggregate(april, domain.CategorySales, []*domain.Transaction{boundary}, nil)

	assert.Equal(t, "1000", summary.Actual.String())
	require.Len(t, summary.ByMonth, 1)
	assert.Equal(t, time.April, summary.ByMonth[0].Period.Month)
}

func TestAggregate_ActorOrdering(t *testing.T) {
	transactions := []*domain.Transaction{
		sale("B", 2025, time.March, 100),
		sale("A", 2025, time.March, 100),
		sale("C", 2025, time.April, 900),
	}
	targets := []*domain.TargetRecord{
		target("D", 2025, time.April, 300, 1),
	}

	summary := Aggregate(domain.AllTimeInterval(), domain.CategorySales, transactions, targets)

	ids := make([]string, 0, len(summary.ByActor))
	for _, actor := range summary.ByActor {
		ids = append(ids, actor.ActorID)
	}
	assert.Equal(t, []string{"C", "A", "B", "D"}, ids)
}

func TestAggregate_Empty(t *testing.T) {
	summary := Aggregate(domain.AllTimeInterval(), domain.CategoryOrders, nil, nil)

	assert.NotNil(t, summary.ByActor)
	assert.NotNil(t, summary.ByMonth)
	assert.Equal(t, int64(0), summary.Percentage)
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		actual   string
		target   string
		expected int64
	}{
		{"5000", "6000", 83},
		{"1", "8", 13},
		{"1", "200", 1},
		{"1", "400", 0},
		{"300", "100", 300},
		{"100", "0", 0},
		{"100", "-5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.actual+"/"+tt.target, func(t *testing.T) {
			assert.Equal(t, tt.expected, Percentage(decimal.RequireFromString(tt.actual), decimal.RequireFromString(tt.target)))
		})
	}
}
