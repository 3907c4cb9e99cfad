package locale

import "time"

// Messages holds every user-facing string that differs between languages.
type Messages struct {
	Today    string
	Tomorrow string
	Weekdays [7]string // indexed by time.Weekday
	Months   [12]string

	FeelsLike string

	UVLow      string
	UVModerate string
	UVHigh     string
	UVVeryHigh string
	UVExtreme  string

	RiskLow      string
	RiskModerate string
	RiskHigh     string
	RiskVeryHigh string
	RiskExtreme  string

	PermissionRequired string
	LocationDisabled   string
	LocationFailed     string
	ErrorPrefix        string
}

var english = Messages{
	Today:    "Today",
	Tomorrow: "Tomorrow",
	Weekdays: [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	Months:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},

	FeelsLike: "Feels like",

	UVLow:      "Low",
	UVModerate: "Moderate",
	UVHigh:     "High",
	UVVeryHigh: "Very High",
	UVExtreme:  "Extreme",

	RiskLow:      "Low risk",
	RiskModerate: "Moderate risk",
	RiskHigh:     "High risk",
	RiskVeryHigh: "Very high risk",
	RiskExtreme:  "Extreme risk",

	PermissionRequired: "Location permission is required to get the weather at your location",
	LocationDisabled:   "Location services are off. Please enable your device location",
	LocationFailed:     "Failed to get location",
	ErrorPrefix:        "Error",
}

var indonesian = Messages{
	Today:    "Hari Ini",
	Tomorrow: "Besok",
	Weekdays: [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"},
	Months:   [12]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"},

	FeelsLike: "Terasa seperti",

	UVLow:      "Rendah",
	UVModerate: "Sedang",
	UVHigh:     "Tinggi",
	UVVeryHigh: "Sangat Tinggi",
	UVExtreme:  "Ekstrem",

	RiskLow:      "Risiko rendah",
	RiskModerate: "Risiko sedang",
	RiskHigh:     "Risiko tinggi",
	RiskVeryHigh: "Risiko sangat tinggi",
	RiskExtreme:  "Risiko ekstrem",

	PermissionRequired: "Izin lokasi diperlukan untuk mendapatkan cuaca di lokasi Anda",
	LocationDisabled:   "GPS tidak aktif. Silakan aktifkan lokasi perangkat Anda",
	LocationFailed:     "Gagal mendapatkan lokasi",
	ErrorPrefix:        "Error",
}

// For returns a copy of the message table of l.
func For(l Language) Messages {
	if l == English {
		return english
	}
	return indonesian
}

func (m Messages) Weekday(d time.Weekday) string {
	return m.Weekdays[d]
}

func (m Messages) Month(mo time.Month) string {
	return m.Months[mo-1]
}
