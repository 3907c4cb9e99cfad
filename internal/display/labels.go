package display

import (
	"fmt"
	"time"

	"github.com/kristevi/ourweather/internal/locale"
	"github.com/kristevi/ourweather/internal/models"
)

// ParseDtTxt reads a forecast "yyyy-MM-dd HH:mm:ss" timestamp as wall-clock
// time in loc.
func ParseDtTxt(dtTxt string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(models.DateTimeLayout, dtTxt, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse forecast time %q: %w", dtTxt, err)
	}
	return t, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// DateLabel builds "dd/MM  <suffix>" where suffix is the localized "today"
// or "tomorrow" word when date falls on that day relative to today, and the
// full weekday name otherwise. Both dates are compared by year and day of
// year in today's location.
func DateLabel(date, today time.Time, lang locale.Language) string {
	msgs := locale.For(lang)
	date = date.In(today.Location())

	var suffix string
	switch {
	case sameDay(date, today):
		suffix = msgs.Today
	case sameDay(date, today.AddDate(0, 0, 1)):
		suffix = msgs.Tomorrow
	default:
		suffix = msgs.Weekday(date.Weekday())
	}
	return fmt.Sprintf("%02d/%02d  %s", date.Day(), int(date.Month()), suffix)
}

// DayLabel labels a forecast item relative to now. Items whose timestamp
// cannot be parsed are labeled as now.
func DayLabel(item models.ForecastItem, now time.Time, lang locale.Language) string {
	date, err := ParseDtTxt(item.DtTxt, now.Location())
	if err != nil {
		date = now
	}
	return DateLabel(date, now, lang)
}

// CurrentDayAndDate renders the home header, e.g. "Thursday, 15 Oct 2026".
func CurrentDayAndDate(now time.Time, lang locale.Language) string {
	msgs := locale.For(lang)
	return fmt.Sprintf("%s, %02d %s %d",
		msgs.Weekday(now.Weekday()), now.Day(), msgs.Month(now.Month()), now.Year())
}

// HourLabel renders the "HH:mm" of a forecast item.
func HourLabel(item models.ForecastItem) string {
	return item.TimeOfDay()
}

// Hour returns the wall-clock hour of a forecast item, 0 if unparseable.
func Hour(item models.ForecastItem) int {
	t, err := ParseDtTxt(item.DtTxt, time.UTC)
	if err != nil {
		return 0
	}
	return t.Hour()
}
