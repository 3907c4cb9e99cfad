package api

import (
	"time"

	"github.com/kristevi/ourweather/internal/display"
	"github.com/kristevi/ourweather/internal/locale"
	"github.com/kristevi/ourweather/internal/models"
	"github.com/kristevi/ourweather/internal/services"
)

// IconView is an icon plus its artwork name, e.g. "rain-night".
type IconView struct {
	display.Icon
	Name string `json:"name"`
}

func newIconView(icon display.Icon) IconView {
	return IconView{Icon: icon, Name: icon.String()}
}

type CurrentView struct {
	Temperature string   `json:"temperature"`
	Description string   `json:"description"`
	Icon        IconView `json:"icon"`
}

type DetailsView struct {
	FeelsLike  string `json:"feels_like"`
	Wind       string `json:"wind"`
	Humidity   string `json:"humidity"`
	UVIndex    string `json:"uv_index"`
	Visibility string `json:"visibility"`
	Pressure   string `json:"pressure"`
}

type HourlyView struct {
	Time          string   `json:"time"`
	Icon          IconView `json:"icon"`
	Temperature   string   `json:"temperature"`
	Precipitation string   `json:"precipitation"`
}

type DailyView struct {
	Label         string   `json:"label"`
	Icon          IconView `json:"icon"`
	Description   string   `json:"description"`
	Precipitation string   `json:"precipitation"`
	Temperature   string   `json:"temperature"`
}

// StatusView carries the controller flags every screen shows.
type StatusView struct {
	Loading            bool       `json:"loading"`
	Error              string     `json:"error,omitempty"`
	AutoRefreshEnabled bool       `json:"auto_refresh_enabled"`
	LastUpdateTime     *time.Time `json:"last_update_time,omitempty"`
}

type HomeView struct {
	Location string               `json:"location"`
	Date     string               `json:"date"`
	Current  *CurrentView         `json:"current,omitempty"`
	Details  *DetailsView         `json:"details,omitempty"`
	Hourly   []HourlyView         `json:"hourly"`
	Daily    []DailyView          `json:"daily"`
	UVIndex  *models.UVIndexData  `json:"uv_index,omitempty"`
	Position *models.LocationData `json:"position,omitempty"`
	Status   StatusView           `json:"status"`
}

type SearchView struct {
	City    string       `json:"city"`
	Current *CurrentView `json:"current,omitempty"`
	Details *DetailsView `json:"details,omitempty"`
	Daily   []DailyView  `json:"daily"`
	Status  StatusView   `json:"status"`
}

func BuildHomeView(state services.State, now time.Time, lang locale.Language) HomeView {
	view := HomeView{
		Date:     display.CurrentDayAndDate(now, lang),
		Hourly:   []HourlyView{},
		Daily:    []DailyView{},
		UVIndex:  state.UVIndex,
		Position: state.CurrentLocation,
		Status:   statusOf(state),
	}

	if state.CurrentLocation != nil {
		view.Location = state.CurrentLocation.CityName
	}
	if w := state.CurrentWeather; w != nil {
		if w.Name != "" {
			view.Location = w.Name
		}
		view.Current = currentOf(w)
		view.Details = detailsOf(w, state.UVIndex, lang)
	}
	if f := state.Forecast; f != nil {
		for _, item := range display.Hourly(f.List, display.HourlySamples) {
			view.Hourly = append(view.Hourly, HourlyView{
				Time:          display.HourLabel(item),
				Icon:          newIconView(display.IconAt(item.IconCode(), display.Hour(item))),
				Temperature:   display.Temperature(item.Main.Temp),
				Precipitation: display.Precipitation(item.Pop),
			})
		}
		view.Daily = dailyOf(f, display.HomeDailyDays, now, lang)
	}
	return view
}

func BuildSearchView(state services.State, now time.Time, lang locale.Language) SearchView {
	view := SearchView{
		Daily:  []DailyView{},
		Status: statusOf(state),
	}
	if w := state.CurrentWeather; w != nil {
		view.City = w.Name
		view.Current = currentOf(w)
		view.Details = detailsOf(w, state.UVIndex, lang)
	}
	if f := state.Forecast; f != nil {
		view.Daily = dailyOf(f, display.SearchDailyDays, now, lang)
	}
	return view
}

func statusOf(state services.State) StatusView {
	return StatusView{
		Loading:            state.Loading,
		Error:              state.Error,
		AutoRefreshEnabled: state.AutoRefreshEnabled,
		LastUpdateTime:     state.LastUpdateTime,
	}
}

func currentOf(w *models.CurrentWeatherResponse) *CurrentView {
	return &CurrentView{
		Temperature: display.Temperature(w.Main.Temp),
		Description: display.CurrentDescription(w),
		Icon:        newIconView(display.ResolveIcon(w.IconCode())),
	}
}

func detailsOf(w *models.CurrentWeatherResponse, uv *models.UVIndexData, lang locale.Language) *DetailsView {
	uvText := "-"
	if uv != nil {
		uvText = uv.Description
	}
	return &DetailsView{
		FeelsLike:  display.FeelsLike(w.Main.FeelsLike, lang),
		Wind:       display.CurrentWindSpeed(w),
		Humidity:   display.Humidity(w.Main.Humidity),
		UVIndex:    uvText,
		Visibility: display.Visibility(w.Visibility),
		Pressure:   display.Pressure(w.Main.Pressure),
	}
}

// dailyOf always shows the daytime artwork for a day row.
func dailyOf(f *models.WeatherForecastResponse, days int, now time.Time, lang locale.Language) []DailyView {
	rows := make([]DailyView, 0, days)
	for _, item := range display.Take(display.DailyForecasts(f.List), days) {
		rows = append(rows, DailyView{
			Label:         display.DayLabel(item, now, lang),
			Icon:          newIconView(display.IconAt(item.IconCode(), 12)),
			Description:   display.ForecastDescription(&item),
			Precipitation: display.Precipitation(item.Pop),
			Temperature:   display.Temperature(item.Main.Temp),
		})
	}
	return rows
}
