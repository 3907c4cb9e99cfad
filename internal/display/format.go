package display

import (
	"fmt"
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/kristevi/ourweather/internal/locale"
	"github.com/kristevi/ourweather/internal/models"
)

// truncEpsilon absorbs float noise such as 0.57*100 = 56.99999999999999
// before truncating toward zero.
const truncEpsilon = 1e-9

func truncate(v float64) int {
	if v >= 0 {
		return int(v + truncEpsilon)
	}
	return int(v - truncEpsilon)
}

func Temperature(celsius float64) string {
	return fmt.Sprintf("%d°", truncate(celsius))
}

func TemperatureC(celsius float64) string {
	return fmt.Sprintf("%d°C", truncate(celsius))
}

func FeelsLike(celsius float64, lang locale.Language) string {
	return fmt.Sprintf("%s %s", locale.For(lang).FeelsLike, TemperatureC(celsius))
}

func Humidity(percent float64) string {
	return fmt.Sprintf("%d%%", truncate(percent))
}

func Pressure(hPa float64) string {
	return fmt.Sprintf("%d hPa", truncate(hPa))
}

func WindSpeed(metersPerSecond float64) string {
	return fmt.Sprintf("%d m/s", truncate(metersPerSecond))
}

// Visibility renders meters as whole kilometers; a missing value is 0 km.
func Visibility(meters *int) string {
	if meters == nil {
		return "0 km"
	}
	return fmt.Sprintf("%d km", *meters/1000)
}

// Precipitation renders a probability of precipitation in [0,1] as a
// truncated percentage. Out of range values are clamped.
func Precipitation(pop float64) string {
	pop = math.Max(0, math.Min(1, pop))
	return fmt.Sprintf("%d%%", truncate(pop*100))
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToTitle(r)) + s[size:]
}

func CurrentDescription(w *models.CurrentWeatherResponse) string {
	return Capitalize(w.Description())
}

func ForecastDescription(f *models.ForecastItem) string {
	return Capitalize(f.Description())
}

// CurrentWindSpeed formats the optional wind block, 0 m/s when absent.
func CurrentWindSpeed(w *models.CurrentWeatherResponse) string {
	if w.Wind == nil {
		return WindSpeed(0)
	}
	return WindSpeed(w.Wind.Speed)
}
