package models

const (
	DefaultIconCode    = "01d"
	DefaultDescription = "Unknown"

	// DateTimeLayout is the layout of ForecastItem.DtTxt.
	DateTimeLayout = "2006-01-02 15:04:05"
)

type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Main struct {
	Temp      float64  `json:"temp"`
	FeelsLike float64  `json:"feels_like"`
	TempMin   float64  `json:"temp_min"`
	TempMax   float64  `json:"temp_max"`
	Pressure  float64  `json:"pressure"`
	Humidity  float64  `json:"humidity"`
	SeaLevel  *float64 `json:"sea_level,omitempty"`
	GrndLevel *float64 `json:"grnd_level,omitempty"`
	TempKf    float64  `json:"temp_kf,omitempty"`
}

type Wind struct {
	Speed float64  `json:"speed"`
	Deg   float64  `json:"deg"`
	Gust  *float64 `json:"gust,omitempty"`
}

type Clouds struct {
	All int `json:"all"`
}

// Precipitation holds rain or snow volume in mm for the last 1h/3h.
type Precipitation struct {
	OneHour    *float64 `json:"1h,omitempty"`
	ThreeHours *float64 `json:"3h,omitempty"`
}

type Sys struct {
	Type    *int   `json:"type,omitempty"`
	ID      *int   `json:"id,omitempty"`
	Country string `json:"country,omitempty"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}

type CurrentWeatherResponse struct {
	Coord      *Coord         `json:"coord,omitempty"`
	Weather    []Condition    `json:"weather"`
	Base       string         `json:"base,omitempty"`
	Main       Main           `json:"main"`
	Visibility *int           `json:"visibility,omitempty"`
	Wind       *Wind          `json:"wind,omitempty"`
	Clouds     *Clouds        `json:"clouds,omitempty"`
	Rain       *Precipitation `json:"rain,omitempty"`
	Snow       *Precipitation `json:"snow,omitempty"`
	Dt         int64          `json:"dt"`
	Sys        Sys            `json:"sys"`
	Timezone   int            `json:"timezone"`
	ID         int            `json:"id"`
	Name       string         `json:"name"`
	Cod        int            `json:"cod"`
}

// IconCode returns the first condition's icon code, or DefaultIconCode.
func (r *CurrentWeatherResponse) IconCode() string {
	return firstIcon(r.Weather)
}

// Description returns the first condition's description, or DefaultDescription.
func (r *CurrentWeatherResponse) Description() string {
	return firstDescription(r.Weather)
}

type ForecastSys struct {
	// Pod is the part of day: "d" or "n".
	Pod string `json:"pod"`
}

// ForecastItem is one 3-hour sample of the 5 day forecast.
type ForecastItem struct {
	Dt         int64          `json:"dt"`
	Main       Main           `json:"main"`
	Weather    []Condition    `json:"weather"`
	Clouds     Clouds         `json:"clouds"`
	Wind       Wind           `json:"wind"`
	Visibility *int           `json:"visibility,omitempty"`
	Pop        float64        `json:"pop"`
	Rain       *Precipitation `json:"rain,omitempty"`
	Snow       *Precipitation `json:"snow,omitempty"`
	Sys        ForecastSys    `json:"sys"`
	DtTxt      string         `json:"dt_txt"`
}

func (f *ForecastItem) IconCode() string {
	return firstIcon(f.Weather)
}

func (f *ForecastItem) Description() string {
	return firstDescription(f.Weather)
}

// Date returns the "yyyy-MM-dd" part of DtTxt.
func (f *ForecastItem) Date() string {
	if len(f.DtTxt) < 10 {
		return ""
	}
	return f.DtTxt[:10]
}

// TimeOfDay returns the "HH:mm" part of DtTxt.
func (f *ForecastItem) TimeOfDay() string {
	if len(f.DtTxt) < 16 {
		return ""
	}
	return f.DtTxt[11:16]
}

type City struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Coord      Coord  `json:"coord"`
	Country    string `json:"country"`
	Population *int   `json:"population,omitempty"`
	Timezone   int    `json:"timezone"`
	Sunrise    int64  `json:"sunrise"`
	Sunset     int64  `json:"sunset"`
}

type WeatherForecastResponse struct {
	Cod     string         `json:"cod"`
	Message int            `json:"message"`
	Cnt     int            `json:"cnt"`
	List    []ForecastItem `json:"list"`
	City    City           `json:"city"`
}

type UVIndexResponse struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	DateISO string  `json:"date_iso,omitempty"`
	Date    int64   `json:"date"`
	Value   float64 `json:"value"`
}

type UVLevel string

const (
	UVLow      UVLevel = "low"
	UVModerate UVLevel = "moderate"
	UVHigh     UVLevel = "high"
	UVVeryHigh UVLevel = "very_high"
	UVExtreme  UVLevel = "extreme"
)

// UVIndexData is a UV reading bucketed for display.
type UVIndexData struct {
	Value       float64 `json:"value"`
	Level       UVLevel `json:"level"`
	Description string  `json:"description"`
	RiskLevel   string  `json:"risk_level"`
	Color       string  `json:"color"`
}

type LocationData struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	CityName  string  `json:"city_name,omitempty"`
}

func firstIcon(conditions []Condition) string {
	if len(conditions) == 0 || conditions[0].Icon == "" {
		return DefaultIconCode
	}
	return conditions[0].Icon
}

func firstDescription(conditions []Condition) string {
	if len(conditions) == 0 {
		return DefaultDescription
	}
	return conditions[0].Description
}
