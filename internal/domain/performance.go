package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fontes de dados que podem falhar durante a montagem de um resumo
const (
	SourceTransactions = "transactions"
	SourceTargets      = "targets"
)

// PerformanceFigures são os três números de comparação realizado vs. meta
type PerformanceFigures struct {
	Actual         decimal.Decimal `json:"actual"`
	Target         decimal.Decimal `json:"target"`
	Percentage     int64           `json:"percentage"`
	ActualQuantity decimal.Decimal `json:"actual_quantity"`
	TargetQuantity decimal.Decimal `json:"target_quantity"`
}

// MonthPerformance é o desempenho consolidado de um mês
type MonthPerformance struct {
	Period YearMonth `json:"period"`
	PerformanceFigures
}

// ActorPerformance é o desempenho de um colaborador no intervalo, com quebra mensal
type ActorPerformance struct {
	ActorID   string              `json:"actor_id"`
	ActorName string              `json:"actor_name,omitempty"`
	Months    []*MonthPerformance `json:"months"`
	PerformanceFigures
}

// PerformanceSummary é derivado sob demanda e nunca persistido
type PerformanceSummary struct {
	Category       Category            `json:"category"`
	Interval       PeriodInterval      `json:"interval"`
	Status         string              `json:"status,omitempty"`
	ByMonth        []*MonthPerformance `json:"by_month"`
	ByActor        []*ActorPerformance `json:"by_actor"`
	Partial        bool                `json:"partial"`
	PartialSources []string            `json:"partial_sources,omitempty"`
	PerformanceFigures
}

// MarkPartial sinaliza que uma fonte falhou e foi tratada como vazia
func (s *PerformanceSummary) MarkPartial(source string) {
	s.Partial = true
	for _, existing := range s.PartialSources {
		if existing == source {
			return
		}
	}
	s.PartialSources = append(s.PartialSources, source)
}

// RankingItem é uma posição no ranking de colaboradores
type RankingItem struct {
	Position         int `json:"position"`
	PositionChange   int `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int `json:"previous_position,omitempty"`
	*ActorPerformance
}

// RankingResponse é o ranking calculado sob demanda para um período
type RankingResponse struct {
	Category     Category       `json:"category"`
	Status       string         `json:"status"`
	Partial      bool           `json:"partial"`
	ComparedWith *YearMonth     `json:"compared_with,omitempty"`
	Ranking      []*RankingItem `json:"ranking"`
	LastUpdate   time.Time      `json:"last_update"`
}

// PerformanceOverview reúne os resumos de todas as categorias visíveis ao usuário
type PerformanceOverview struct {
	Status    string                `json:"status"`
	Partial   bool                  `json:"partial"`
	Summaries []*PerformanceSummary `json:"summaries"`
}
