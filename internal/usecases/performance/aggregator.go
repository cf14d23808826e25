package performance

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-target-api/internal/domain"
)

var hundred = decimal.NewFromInt(100)

type bucketKey struct {
	actorID string
	period  domain.YearMonth
}

type bucket struct {
	actual         decimal.Decimal
	actualQuantity decimal.Decimal
	target         decimal.Decimal
	targetQuantity decimal.Decimal
	hasTarget      bool
}

// Percentage calcula round(realizado / meta * 100). Meta zero ou negativa resulta em 0.
// O valor não é limitado: 150% é reportado como 150.
func Percentage(actual, target decimal.Decimal) int64 {
	if !target.IsPositive() {
		return 0
	}
	return actual.Mul(hundred).DivRound(target, 0).IntPart()
}

func newFigures(actual, target, actualQuantity, targetQuantity decimal.Decimal) domain.PerformanceFigures {
	return domain.PerformanceFigures{
		Actual:         actual,
		Target:         target,
		Percentage:     Percentage(actual, target),
		ActualQuantity: actualQuantity,
		TargetQuantity: targetQuantity,
	}
}

// Aggregate compara realizado e meta por colaborador e por mês dentro do intervalo.
// Regras:
//  1. Transações e metas são agrupadas por (colaborador, ano, mês)
//  2. Metas repetidas no mesmo grupo somam o valor; a quantidade vem de uma delas
//  3. Totais por colaborador e por mês têm o próprio percentual
//  4. Colaboradores ordenados pelo realizado decrescente; meses em ordem cronológica
func Aggregate(
	interval domain.PeriodInterval,
	category domain.Category,
	transactions []*domain.Transaction,
	targets []*domain.TargetRecord,
) *domain.PerformanceSummary {
	buckets := make(map[bucketKey]*bucket)

	get := func(key bucketKey) *bucket {
		b, exists := buckets[key]
		if !exists {
			b = &bucket{}
			buckets[key] = b
		}
		return b
	}

	for _, transaction := range transactions {
		if transaction == nil || (transaction.Category != "" && transaction.Category != category) {
			continue
		}

		period := transaction.Period()
		if !interval.Contains(period) {
			continue
		}

		b := get(bucketKey{actorID: transaction.ActorID, period: period})
		b.actual = b.actual.Add(transaction.Amount)
		b.actualQuantity = b.actualQuantity.Add(transaction.Quantity)
	}

	for _, target := range targets {
		if target == nil || (target.Category != "" && target.Category != category) {
			continue
		}

		period := target.Period()
		if !interval.Contains(period) {
			continue
		}

		b := get(bucketKey{actorID: target.ActorID, period: period})
		b.target = b.target.Add(target.Amount)
		if !b.hasTarget {
			b.targetQuantity = target.Quantity
			b.hasTarget = true
		}
	}

	summary := &domain.PerformanceSummary{
		Category: category,
		Interval: interval,
		ByMonth:  make([]*domain.MonthPerformance, 0),
		ByActor:  make([]*domain.ActorPerformance, 0),
	}

	actors := make(map[string]*domain.ActorPerformance)
	months := make(map[domain.YearMonth]*domain.MonthPerformance)

	for key, b := range buckets {
		actor, exists := actors[key.actorID]
		if !exists {
			actor = &domain.ActorPerformance{
				ActorID: key.actorID,
				Months:  make([]*domain.MonthPerformance, 0),
			}
			actors[key.actorID] = actor
		}

		actor.Months = append(actor.Months, &domain.MonthPerformance{
			Period:             key.period,
			PerformanceFigures: newFigures(b.actual, b.target, b.actualQuantity, b.targetQuantity),
		})
		addFigures(&actor.PerformanceFigures, b)

		month, exists := months[key.period]
		if !exists {
			month = &domain.MonthPerformance{Period: key.period}
			months[key.period] = month
		}
		addFigures(&month.PerformanceFigures, b)

		addFigures(&summary.PerformanceFigures, b)
	}

	for _, actor := range actors {
		sortMonths(actor.Months)
		actor.Percentage = Percentage(actor.Actual, actor.Target)
		summary.ByActor = append(summary.ByActor, actor)
	}

	for _, month := range months {
		month.Percentage = Percentage(month.Actual, month.Target)
		summary.ByMonth = append(summary.ByMonth, month)
	}

	sortMonths(summary.ByMonth)
	SortByActual(summary.ByActor)

	summary.Percentage = Percentage(summary.Actual, summary.Target)

	return summary
}

func addFigures(figures *domain.PerformanceFigures, b *bucket) {
	figures.Actual = figures.Actual.Add(b.actual)
	figures.Target = figures.Target.Add(b.target)
	figures.ActualQuantity = figures.ActualQuantity.Add(b.actualQuantity)
	figures.TargetQuantity = figures.TargetQuantity.Add(b.targetQuantity)
}

func sortMonths(months []*domain.MonthPerformance) {
	sort.Slice(months, func(i, j int) bool {
		return months[i].Period.Before(months[j].Period)
	})
}

// SortByActual ordena pelo realizado decrescente, desempatando pelo ID do colaborador
func SortByActual(actors []*domain.ActorPerformance) {
	sort.SliceStable(actors, func(i, j int) bool {
		if !actors[i].Actual.Equal(actors[j].Actual) {
			return actors[i].Actual.GreaterThan(actors[j].Actual)
		}
		return actors[i].ActorID < actors[j].ActorID
	})
}
