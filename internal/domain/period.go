package domain

import (
	"fmt"
	"time"
)

// YearMonth identifica um mês específico de um ano
type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func NewYearMonth(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// index converte o par ano/mês em um inteiro monotônico para comparações
func (ym YearMonth) index() int {
	return ym.Year*12 + int(ym.Month) - 1
}

func (ym YearMonth) Before(other YearMonth) bool {
	return ym.index() < other.index()
}

func (ym YearMonth) After(other YearMonth) bool {
	return ym.index() > other.index()
}

func (ym YearMonth) IsZero() bool {
	return ym.Year == 0 && ym.Month == 0
}

// Compare retorna -1, 0 ou 1, no formato esperado por slices.SortFunc
func (ym YearMonth) Compare(other YearMonth) int {
	switch {
	case ym.Before(other):
		return -1
	case ym.After(other):
		return 1
	}
	return 0
}

// Next retorna o mês seguinte
func (ym YearMonth) Next() YearMonth {
	if ym.Month == time.December {
		return YearMonth{Year: ym.Year + 1, Month: time.January}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month + 1}
}

// String formata no padrão mm-yyyy usado pela API
func (ym YearMonth) String() string {
	return fmt.Sprintf("%02d-%04d", int(ym.Month), ym.Year)
}

// Label formata para exibição, ex: "March 2025"
func (ym YearMonth) Label() string {
	return fmt.Sprintf("%s %d", ym.Month.String(), ym.Year)
}

// FirstDay retorna o primeiro instante do mês em UTC
func (ym YearMonth) FirstDay() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
}

// PeriodInterval é um intervalo fechado [Start, End] de meses.
// Quando AllTime é verdadeiro o intervalo não tem limites.
type PeriodInterval struct {
	Start   YearMonth `json:"start"`
	End     YearMonth `json:"end"`
	AllTime bool      `json:"all_time"`
}

// AllTimeInterval retorna o intervalo sem limites
func AllTimeInterval() PeriodInterval {
	return PeriodInterval{AllTime: true}
}

func (p PeriodInterval) Contains(ym YearMonth) bool {
	if p.AllTime {
		return true
	}
	return !ym.Before(p.Start) && !ym.After(p.End)
}

// ContainsTime verifica se o instante cai em algum mês do intervalo
func (p PeriodInterval) ContainsTime(t time.Time) bool {
	return p.Contains(NewYearMonth(t))
}

// Months lista os meses do intervalo em ordem cronológica. Intervalos sem limite retornam nil.
func (p PeriodInterval) Months() []YearMonth {
	if p.AllTime || p.End.Before(p.Start) {
		return nil
	}

	months := make([]YearMonth, 0, p.End.index()-p.Start.index()+1)
	for current := p.Start; !current.After(p.End); current = current.Next() {
		months = append(months, current)
	}
	return months
}

// Bounds retorna o primeiro instante do intervalo e o primeiro instante após o fim, para consultas [start, end)
func (p PeriodInterval) Bounds() (time.Time, time.Time) {
	return p.Start.FirstDay(), p.End.Next().FirstDay()
}

// FilterKind é o discriminador do filtro de período escolhido pelo usuário
type FilterKind string

const (
	FilterAllTime    FilterKind = "all_time"
	FilterMonth      FilterKind = "month"
	FilterMonthRange FilterKind = "month_range"
	FilterYearRange  FilterKind = "year_range"
)

// PeriodFilter é a escolha de período feita pelo usuário. Campos nil indicam valor não informado.
type PeriodFilter struct {
	Kind       FilterKind `json:"kind"`
	Year       *int       `json:"year,omitempty"`
	Month      *int       `json:"month,omitempty"`
	StartYear  *int       `json:"start_year,omitempty"`
	StartMonth *int       `json:"start_month,omitempty"`
	EndYear    *int       `json:"end_year,omitempty"`
	EndMonth   *int       `json:"end_month,omitempty"`
}

// AllTimeFilter cria um filtro de todo o período
func AllTimeFilter() PeriodFilter {
	return PeriodFilter{Kind: FilterAllTime}
}

// MonthFilter cria um filtro de mês único
func MonthFilter(year, month int) PeriodFilter {
	return PeriodFilter{Kind: FilterMonth, Year: &year, Month: &month}
}

// MonthRangeFilter cria um filtro de intervalo de meses
func MonthRangeFilter(startYear, startMonth, endYear, endMonth int) PeriodFilter {
	return PeriodFilter{
		Kind:       FilterMonthRange,
		StartYear:  &startYear,
		StartMonth: &startMonth,
		EndYear:    &endYear,
		EndMonth:   &endMonth,
	}
}

// YearRangeFilter cria um filtro de intervalo de anos
func YearRangeFilter(startYear, endYear int) PeriodFilter {
	return PeriodFilter{Kind: FilterYearRange, StartYear: &startYear, EndYear: &endYear}
}

// NormalizedPeriod é o resultado do normalizador: intervalo canônico e texto de status
type NormalizedPeriod struct {
	Filter   PeriodFilter   `json:"filter"`
	Interval PeriodInterval `json:"interval"`
	Status   string         `json:"status"`
}
