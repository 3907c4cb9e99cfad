package display

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kristevi/ourweather/internal/locale"
	"github.com/kristevi/ourweather/internal/models"
)

func TestResolveIcon(t *testing.T) {
	tests := []struct {
		code string
		want Icon
	}{
		{"01d", Icon{Clear, false}},
		{"01n", Icon{Clear, true}},
		{"02d", Icon{PartlyCloudy, false}},
		{"03n", Icon{PartlyCloudy, true}},
		{"04d", Icon{PartlyCloudy, false}},
		{"09d", Icon{Rain, false}},
		{"10n", Icon{Rain, true}},
		{"11d", Icon{Thunderstorm, false}},
		{"11n", Icon{Thunderstorm, true}},
		{"13d", Icon{Snow, false}},
		{"50n", Icon{Mist, true}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveIcon(tt.code), tt.code)
	}
}

func TestResolveIconUnknownCodes(t *testing.T) {
	for _, code := range []string{"", "00d", "05n", "99d", "01x", "01", "010d", "abc", "1d"} {
		assert.Equal(t, DefaultIcon, ResolveIcon(code), code)
	}
	assert.Equal(t, "clear-day", DefaultIcon.String())
}

func TestIconAt(t *testing.T) {
	assert.Equal(t, Icon{Rain, false}, IconAt("10n", 6))
	assert.Equal(t, Icon{Rain, false}, IconAt("10n", 17))
	assert.Equal(t, Icon{Rain, true}, IconAt("10d", 18))
	assert.Equal(t, Icon{Rain, true}, IconAt("10d", 0))
	assert.Equal(t, Icon{Clear, true}, IconAt("01d", 5))
	assert.Equal(t, "rain-night", IconAt("10d", 21).String())
}

func item(dtTxt string) models.ForecastItem {
	return models.ForecastItem{DtTxt: dtTxt}
}

// fiveDays builds 40 three-hourly samples starting at start.
func fiveDays(start time.Time) []models.ForecastItem {
	items := make([]models.ForecastItem, 0, 40)
	for i := 0; i < 40; i++ {
		ts := start.Add(time.Duration(i) * 3 * time.Hour)
		items = append(items, models.ForecastItem{
			Dt:    ts.Unix(),
			DtTxt: ts.Format(models.DateTimeLayout),
		})
	}
	return items
}

func TestDailyForecasts(t *testing.T) {
	items := fiveDays(time.Date(2024, 3, 10, 3, 0, 0, 0, time.UTC))

	daily := Take(DailyForecasts(items), 10)
	require.Len(t, daily, 5)

	seen := map[string]bool{}
	for _, d := range daily {
		assert.Equal(t, "12:00", d.TimeOfDay())
		assert.False(t, seen[d.Date()], "duplicate date %s", d.Date())
		seen[d.Date()] = true
	}
	assert.Equal(t, "2024-03-10 12:00:00", daily[0].DtTxt)
	assert.Equal(t, "2024-03-14 12:00:00", daily[4].DtTxt)
}

func TestDailyForecastsFirstMatchWins(t *testing.T) {
	first := item("2024-03-10 12:00:00")
	first.Pop = 0.1
	dup := item("2024-03-10 12:00:00")
	dup.Pop = 0.9

	items := []models.ForecastItem{
		item("2024-03-10 09:00:00"),
		first,
		dup,
		item("2024-03-11 09:00:00"),
		item("2024-03-11 15:00:00"),
		item("2024-03-12 12:00:00"),
	}

	daily := Take(DailyForecasts(items), 10)
	require.Len(t, daily, 2)
	assert.Equal(t, 0.1, daily[0].Pop)
	assert.Equal(t, "2024-03-12", daily[1].Date())
}

func TestDailyForecastsIsRestartable(t *testing.T) {
	seq := DailyForecasts(fiveDays(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)))

	assert.Len(t, Take(seq, 2), 2)
	assert.Len(t, Take(seq, 6), 5)
	assert.Len(t, Take(seq, 0), 0)
	assert.Empty(t, Take(DailyForecasts(nil), 5))
}

func TestHourly(t *testing.T) {
	items := fiveDays(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	assert.Len(t, Hourly(items, HourlySamples), 8)
	assert.Len(t, Hourly(items[:3], HourlySamples), 3)
	assert.Len(t, Hourly(items, -1), 0)
}

func TestDayLabel(t *testing.T) {
	today := time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC)

	tests := []struct {
		dtTxt string
		lang  locale.Language
		want  string
	}{
		{"2024-03-10 12:00:00", locale.English, "10/03  Today"},
		{"2024-03-10 12:00:00", locale.Indonesian, "10/03  Hari Ini"},
		{"2024-03-11 00:00:00", locale.English, "11/03  Tomorrow"},
		{"2024-03-11 12:00:00", locale.Indonesian, "11/03  Besok"},
		{"2024-03-15 12:00:00", locale.English, "15/03  Friday"},
		{"2024-03-15 12:00:00", locale.Indonesian, "15/03  Jumat"},
		{"2024-03-12 12:00:00", locale.English, "12/03  Tuesday"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.dtTxt, tt.lang), func(t *testing.T) {
			assert.Equal(t, tt.want, DayLabel(item(tt.dtTxt), today, tt.lang))
		})
	}
}

func TestDateLabelAcrossYearBoundary(t *testing.T) {
	today := time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "01/01  Tomorrow", DateLabel(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), today, locale.English))
	assert.Equal(t, "31/12  Today", DateLabel(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), today, locale.English))
	// Same day of year, different year.
	assert.Equal(t, "31/12  Wednesday", DateLabel(time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC), today, locale.English))
}

func TestDateLabelUsesCalendarDays(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	today := time.Date(2024, 3, 10, 23, 59, 0, 0, jakarta)
	// Two minutes later is already the next calendar day.
	assert.Equal(t, "11/03  Besok", DateLabel(today.Add(2*time.Minute), today, locale.Indonesian))
}

func TestCurrentDayAndDate(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "Thursday, 15 Oct 2026", CurrentDayAndDate(now, locale.English))
	assert.Equal(t, "Kamis, 15 Okt 2026", CurrentDayAndDate(now, locale.Indonesian))
}

func TestHour(t *testing.T) {
	assert.Equal(t, 15, Hour(item("2024-03-10 15:00:00")))
	assert.Equal(t, 0, Hour(item("garbage")))
	assert.Equal(t, "15:00", HourLabel(item("2024-03-10 15:00:00")))
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "23°", Temperature(23.9))
	assert.Equal(t, "-3°", Temperature(-3.7))
	assert.Equal(t, "0°", Temperature(-0.5))
	assert.Equal(t, "23°C", TemperatureC(23.4))
	assert.Equal(t, "Feels like 21°C", FeelsLike(21.8, locale.English))
	assert.Equal(t, "Terasa seperti 21°C", FeelsLike(21.8, locale.Indonesian))
	assert.Equal(t, "65%", Humidity(65))
	assert.Equal(t, "1013 hPa", Pressure(1013.7))
	assert.Equal(t, "4 m/s", WindSpeed(4.99))

	visibility := 9500
	assert.Equal(t, "9 km", Visibility(&visibility))
	assert.Equal(t, "0 km", Visibility(nil))
}

func TestPrecipitation(t *testing.T) {
	tests := []struct {
		pop  float64
		want string
	}{
		{0.42, "42%"},
		{1.0, "100%"},
		{0.0, "0%"},
		{0.57, "57%"},
		{0.999, "99%"},
		{1.3, "100%"},
		{-0.2, "0%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Precipitation(tt.pop), "pop=%v", tt.pop)
	}
}

func TestDescriptions(t *testing.T) {
	w := &models.CurrentWeatherResponse{Weather: []models.Condition{{Description: "hujan ringan"}}}
	assert.Equal(t, "Hujan ringan", CurrentDescription(w))
	assert.Equal(t, "01d", (&models.CurrentWeatherResponse{}).IconCode())
	assert.Equal(t, "Unknown", CurrentDescription(&models.CurrentWeatherResponse{}))
	assert.Equal(t, "0 m/s", CurrentWindSpeed(&models.CurrentWeatherResponse{}))

	f := &models.ForecastItem{Weather: []models.Condition{{Description: "clear sky", Icon: "01n"}}}
	assert.Equal(t, "Clear sky", ForecastDescription(f))
	assert.Equal(t, "01n", f.IconCode())
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Éclair", Capitalize("éclair"))
}

func TestUVLevelOf(t *testing.T) {
	tests := []struct {
		value float64
		want  models.UVLevel
	}{
		{0, models.UVLow},
		{2.9, models.UVLow},
		{3.0, models.UVModerate},
		{5.99, models.UVModerate},
		{6.0, models.UVHigh},
		{8.0, models.UVVeryHigh},
		{10.99, models.UVVeryHigh},
		{11.0, models.UVExtreme},
		{14.2, models.UVExtreme},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, UVLevelOf(tt.value), "value=%v", tt.value)
	}
}

func TestNewUVIndex(t *testing.T) {
	low := NewUVIndex(0, locale.Indonesian)
	assert.Equal(t, models.UVLow, low.Level)
	assert.Equal(t, "Rendah", low.Description)
	assert.Equal(t, "Risiko rendah", low.RiskLevel)
	assert.Equal(t, "#4CAF50", low.Color)

	extreme := NewUVIndex(11, locale.English)
	assert.Equal(t, "Extreme", extreme.Description)
	assert.Equal(t, "#9C27B0", extreme.Color)
	assert.Equal(t, 11.0, extreme.Value)
}
