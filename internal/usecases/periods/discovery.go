package periods

import (
	"sort"
	"time"
)

// DefaultFallbackYears é o tamanho da janela usada quando a descoberta falha
const DefaultFallbackYears = 5

// DiscoverYears une os anos com transações ou metas ao ano corrente, em ordem decrescente
func DiscoverYears(transactionYears, targetYears []int, now time.Time) []int {
	set := map[int]struct{}{now.Year(): {}}

	for _, year := range transactionYears {
		if year > 0 {
			set[year] = struct{}{}
		}
	}
	for _, year := range targetYears {
		if year > 0 {
			set[year] = struct{}{}
		}
	}

	years := make([]int, 0, len(set))
	for year := range set {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	return years
}

// FallbackYears retorna a janela fixa de anos terminando no ano corrente
func FallbackYears(now time.Time, window int) []int {
	if window <= 0 {
		window = DefaultFallbackYears
	}

	years := make([]int, 0, window)
	for i := 0; i < window; i++ {
		years = append(years, now.Year()-i)
	}
	return years
}
