package display

import (
	"iter"

	"github.com/kristevi/ourweather/internal/models"
)

const (
	// NoonSample is the time-of-day of the sample that represents its date.
	NoonSample = "12:00"

	HomeDailyDays   = 6
	SearchDailyDays = 5
	HourlySamples   = 8
)

// DailyForecasts yields one item per calendar date, in input order: the first
// item of that date whose time-of-day is exactly NoonSample. Dates without a
// noon sample are skipped. The sequence can be ranged over more than once.
func DailyForecasts(items []models.ForecastItem) iter.Seq[models.ForecastItem] {
	return func(yield func(models.ForecastItem) bool) {
		taken := make(map[string]struct{})
		for _, item := range items {
			if item.TimeOfDay() != NoonSample {
				continue
			}
			date := item.Date()
			if _, ok := taken[date]; ok {
				continue
			}
			taken[date] = struct{}{}
			if !yield(item) {
				return
			}
		}
	}
}

// Take collects at most n values from seq.
func Take[T any](seq iter.Seq[T], n int) []T {
	out := make([]T, 0, max(n, 0))
	if n <= 0 {
		return out
	}
	for v := range seq {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

// Hourly returns the first n samples.
func Hourly(items []models.ForecastItem, n int) []models.ForecastItem {
	if n > len(items) {
		n = len(items)
	}
	if n < 0 {
		n = 0
	}
	return items[:n]
}
