package periods

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-target-api/internal/domain"
)

func intPtr(v int) *int {
	return &v
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		filter   domain.PeriodFilter
		interval domain.PeriodInterval
		status   string
	}{
		{
			name:     "Todo o período",
			filter:   domain.AllTimeFilter(),
			interval: domain.AllTimeInterval(),
			status:   "Showing all data till today",
		},
		{
			name:   "Mês único",
			filter: domain.MonthFilter(2025, 3),
			interval: domain.PeriodInterval{
				Start: domain.YearMonth{Year: 2025, Month: time.March},
				End:   domain.YearMonth{Year: 2025, Month: time.March},
			},
			status: "Showing from March 2025 to March 2025",
		},
		{
			name:   "Intervalo de meses atravessando o ano",
			filter: domain.MonthRangeFilter(2024, 1, 2025, 12),
			interval: domain.PeriodInterval{
				Start: domain.YearMonth{Year: 2024, Month: time.January},
				End:   domain.YearMonth{Year: 2025, Month: time.December},
			},
			status: "Showing from January 2024 to December 2025",
		},
		{
			name:   "Intervalo de anos",
			filter: domain.YearRangeFilter(2023, 2024),
			interval: domain.PeriodInterval{
				Start: domain.YearMonth{Year: 2023, Month: time.January},
				End:   domain.YearMonth{Year: 2024, Month: time.December},
			},
			status: "Showing from January 2023 to December 2024",
		},
		{
			name:   "Período futuro é permitido",
			filter: domain.MonthFilter(2099, 7),
			interval: domain.PeriodInterval{
				Start: domain.YearMonth{Year: 2099, Month: time.July},
				End:   domain.YearMonth{Year: 2099, Month: time.July},
			},
			status: "Showing from July 2099 to July 2099",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, err := Normalize(tt.filter)

			require.NoError(t, err)
			assert.Equal(t, tt.interval, normalized.Interval)
			assert.Equal(t, tt.status, normalized.Status)
		})
	}
}

func TestNormalize_Errors(t *testing.T) {
	tests := []struct {
		name     string
		filter   domain.PeriodFilter
		expected error
		field    string
	}{
		{
			name:     "Intervalo de meses invertido",
			filter:   domain.MonthRangeFilter(2025, 6, 2025, 3),
			expected: ErrInvertedRange,
			field:    "end_month",
		},
		{
			name:     "Intervalo com ano final anterior",
			filter:   domain.MonthRangeFilter(2025, 1, 2024, 12),
			expected: ErrInvertedRange,
			field:    "end_year",
		},
		{
			name:     "Intervalo de anos invertido",
			filter:   domain.YearRangeFilter(2025, 2020),
			expected: ErrInvertedRange,
			field:    "end_year",
		},
		{
			name:     "Mês sem ano",
			filter:   domain.PeriodFilter{Kind: domain.FilterMonth, Month: intPtr(3)},
			expected: ErrMissingValue,
			field:    "year",
		},
		{
			name:     "Intervalo sem fim",
			filter:   domain.PeriodFilter{Kind: domain.FilterMonthRange, StartYear: intPtr(2025), StartMonth: intPtr(1)},
			expected: ErrMissingValue,
			field:    "end_year",
		},
		{
			name:     "Mês fora do intervalo",
			filter:   domain.MonthFilter(2025, 13),
			expected: ErrInvalidMonth,
			field:    "month",
		},
		{
			name:     "Filtro desconhecido",
			filter:   domain.PeriodFilter{Kind: "week"},
			expected: ErrUnknownFilter,
			field:    "filter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, err := Normalize(tt.filter)

			assert.Nil(t, normalized)
			require.ErrorIs(t, err, tt.expected)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestParsePeriodFilter(t *testing.T) {
	values := url.Values{}
	values.Set("filter", "month_range")
	values.Set("start_year", "2024")
	values.Set("start_month", "1")
	values.Set("end_year", "2025")
	values.Set("end_month", "12")

	filter, err := ParsePeriodFilter(values)

	require.NoError(t, err)
	assert.Equal(t, domain.MonthRangeFilter(2024, 1, 2025, 12), filter)

	empty, err := ParsePeriodFilter(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, domain.FilterAllTime, empty.Kind)

	_, err = ParsePeriodFilter(url.Values{"filter": {"month"}, "year": {"dois mil"}})
	assert.ErrorIs(t, err, ErrInvalidNumber)
}
