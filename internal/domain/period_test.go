package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestYearMonth(t *testing.T) {
	march := YearMonth{Year: 2025, Month: time.March}
	december := YearMonth{Year: 2024, Month: time.December}

	assert.True(t, december.Before(march))
	assert.True(t, march.After(december))
	assert.Equal(t, -1, december.Compare(march))
	assert.Equal(t, 0, march.Compare(march))
	assert.Equal(t, YearMonth{Year: 2025, Month: time.January}, december.Next())
	assert.Equal(t, "03-2025", march.String())
	assert.Equal(t, "March 2025", march.Label())
	assert.True(t, YearMonth{}.IsZero())
}

func TestPeriodInterval(t *testing.T) {
	interval := PeriodInterval{
		Start: YearMonth{Year: 2024, Month: time.November},
		End:   YearMonth{Year: 2025, Month: time.February},
	}

	assert.Len(t, interval.Months(), 4)
	assert.True(t, interval.Contains(YearMonth{Year: 2025, Month: time.January}))
	assert.False(t, interval.Contains(YearMonth{Year: 2025, Month: time.March}))
	assert.True(t, interval.ContainsTime(time.Date(2025, 2, 28, 23, 59, 0, 0, time.UTC)))

	start, end := interval.Bounds()
	assert.Equal(t, time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), end)

	allTime := AllTimeInterval()
	assert.True(t, allTime.Contains(YearMonth{Year: 1990, Month: time.May}))
	assert.Nil(t, allTime.Months())
}

func TestRecordFilterUnscoped(t *testing.T) {
	assert.True(t, RecordFilter{}.Unscoped())
	assert.False(t, RecordFilter{ActorIDs: []string{}}.Unscoped())
}
