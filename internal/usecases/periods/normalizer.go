package periods

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
)

const (
	StatusAllTime     = "Showing all data till today"
	statusRangeFormat = "Showing from %s to %s"
)

// Normalize traduz a escolha de período do usuário em um intervalo fechado de meses.
// Não há restrição para períodos futuros; a única regra de ordem é fim >= início.
func Normalize(filter domain.PeriodFilter) (*domain.NormalizedPeriod, error) {
	var interval domain.PeriodInterval

	switch filter.Kind {
	case domain.FilterAllTime, "":
		filter = domain.AllTimeFilter()
		return &domain.NormalizedPeriod{
			Filter:   filter,
			Interval: domain.AllTimeInterval(),
			Status:   StatusAllTime,
		}, nil

	case domain.FilterMonth:
		month, err := requireMonth(filter.Year, filter.Month, "year", "month")
		if err != nil {
			return nil, err
		}
		interval = domain.PeriodInterval{Start: month, End: month}

	case domain.FilterMonthRange:
		start, err := requireMonth(filter.StartYear, filter.StartMonth, "start_year", "start_month")
		if err != nil {
			return nil, err
		}
		end, err := requireMonth(filter.EndYear, filter.EndMonth, "end_year", "end_month")
		if err != nil {
			return nil, err
		}

		if end.Before(start) {
			field := "end_month"
			if end.Year < start.Year {
				field = "end_year"
			}
			return nil, NewValidationError(ErrInvertedRange, apiErrors.ErrInvertedRange, field,
				fmt.Sprintf("%s é anterior a %s", end.Label(), start.Label()))
		}
		interval = domain.PeriodInterval{Start: start, End: end}

	case domain.FilterYearRange:
		startYear, err := requireYear(filter.StartYear, "start_year")
		if err != nil {
			return nil, err
		}
		endYear, err := requireYear(filter.EndYear, "end_year")
		if err != nil {
			return nil, err
		}

		if endYear < startYear {
			return nil, NewValidationError(ErrInvertedRange, apiErrors.ErrInvertedRange, "end_year",
				fmt.Sprintf("%d é anterior a %d", endYear, startYear))
		}
		interval = domain.PeriodInterval{
			Start: domain.YearMonth{Year: startYear, Month: time.January},
			End:   domain.YearMonth{Year: endYear, Month: time.December},
		}

	default:
		return nil, NewValidationError(ErrUnknownFilter, apiErrors.ErrInvalidFormat, "filter", string(filter.Kind))
	}

	return &domain.NormalizedPeriod{
		Filter:   filter,
		Interval: interval,
		Status:   StatusFor(interval),
	}, nil
}

// StatusFor monta o texto descritivo do intervalo
func StatusFor(interval domain.PeriodInterval) string {
	if interval.AllTime {
		return StatusAllTime
	}
	return fmt.Sprintf(statusRangeFormat, interval.Start.Label(), interval.End.Label())
}

func requireYear(year *int, field string) (int, error) {
	if year == nil {
		return 0, NewValidationError(ErrMissingValue, apiErrors.ErrMissingRequiredData, field, "")
	}
	if *year < 1 || *year > 9999 {
		return 0, NewValidationError(ErrInvalidYear, apiErrors.ErrInvalidFormat, field, strconv.Itoa(*year))
	}
	return *year, nil
}

func requireMonth(year, month *int, yearField, monthField string) (domain.YearMonth, error) {
	y, err := requireYear(year, yearField)
	if err != nil {
		return domain.YearMonth{}, err
	}
	if month == nil {
		return domain.YearMonth{}, NewValidationError(ErrMissingValue, apiErrors.ErrMissingRequiredData, monthField, "")
	}
	if *month < 1 || *month > 12 {
		return domain.YearMonth{}, NewValidationError(ErrInvalidMonth, apiErrors.ErrInvalidFormat, monthField, strconv.Itoa(*month))
	}
	return domain.YearMonth{Year: y, Month: time.Month(*month)}, nil
}

// ParsePeriodFilter monta o filtro a partir dos parâmetros de query.
// Ex: ?filter=month_range&start_year=2024&start_month=1&end_year=2025&end_month=12
func ParsePeriodFilter(values url.Values) (domain.PeriodFilter, error) {
	filter := domain.PeriodFilter{
		Kind: domain.FilterKind(strings.ToLower(strings.TrimSpace(values.Get("filter")))),
	}
	if filter.Kind == "" {
		filter.Kind = domain.FilterAllTime
	}

	fields := []struct {
		name   string
		target **int
	}{
		{"year", &filter.Year},
		{"month", &filter.Month},
		{"start_year", &filter.StartYear},
		{"start_month", &filter.StartMonth},
		{"end_year", &filter.EndYear},
		{"end_month", &filter.EndMonth},
	}

	for _, field := range fields {
		raw := strings.TrimSpace(values.Get(field.name))
		if raw == "" {
			continue
		}

		value, err := strconv.Atoi(raw)
		if err != nil {
			return filter, NewValidationError(ErrInvalidNumber, apiErrors.ErrInvalidFormat, field.name, raw)
		}
		*field.target = &value
	}

	return filter, nil
}
