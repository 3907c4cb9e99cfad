package display

import "strings"

type Condition string

const (
	Clear        Condition = "clear"
	PartlyCloudy Condition = "partly-cloudy"
	Rain         Condition = "rain"
	Thunderstorm Condition = "thunderstorm"
	Snow         Condition = "snow"
	Mist         Condition = "mist"
)

// Icon is the artwork chosen for a condition code.
type Icon struct {
	Condition Condition `json:"condition"`
	Night     bool      `json:"night"`
}

// DefaultIcon is used for any code outside the known set.
var DefaultIcon = Icon{Condition: Clear}

var conditionByPrefix = map[string]Condition{
	"01": Clear,
	"02": PartlyCloudy,
	"03": PartlyCloudy,
	"04": PartlyCloudy,
	"09": Rain,
	"10": Rain,
	"11": Thunderstorm,
	"13": Snow,
	"50": Mist,
}

// ResolveIcon maps an OpenWeatherMap icon code such as "10n" to an Icon.
func ResolveIcon(code string) Icon {
	if len(code) != 3 {
		return DefaultIcon
	}
	condition, ok := conditionByPrefix[code[:2]]
	if !ok {
		return DefaultIcon
	}
	switch code[2] {
	case 'd':
		return Icon{Condition: condition}
	case 'n':
		return Icon{Condition: condition, Night: true}
	default:
		return DefaultIcon
	}
}

// IsDaytimeHour reports whether a wall-clock hour gets the day variant.
func IsDaytimeHour(hour int) bool {
	return hour >= 6 && hour < 18
}

// CodeAt rewrites the day/night suffix of code from the sample's own hour
// instead of trusting the upstream part-of-day flag.
func CodeAt(code string, hour int) string {
	if IsDaytimeHour(hour) {
		return strings.ReplaceAll(code, "n", "d")
	}
	return strings.ReplaceAll(code, "d", "n")
}

// IconAt resolves code with the day/night variant taken from hour.
func IconAt(code string, hour int) Icon {
	return ResolveIcon(CodeAt(code, hour))
}

func (i Icon) String() string {
	if i.Night {
		return string(i.Condition) + "-night"
	}
	return string(i.Condition) + "-day"
}
