package models

import (
	"weather-cli/apperr"
)

// ForecastResponse mirrors the body of the OpenWeatherMap 5 day / 3 hour forecast endpoint
type ForecastResponse struct {
	Cod     string          `json:"cod"`     // status code, sent as a string
	Message int             `json:"message"` // always 0 on success
	Cnt     int             `json:"cnt"`     // number of entries in List
	List    []ForecastEntry `json:"list"`    // ordered, earliest first
}

// ForecastEntry is a single timestamped forecast point
type ForecastEntry struct {
	Dt         int64       `json:"dt"` // unix timestamp
	Main       MainMetrics `json:"main"`
	Weather    []Condition `json:"weather"`
	Clouds     Clouds      `json:"clouds"`
	Wind       Wind        `json:"wind"`
	Visibility int         `json:"visibility"` // in metres
	Pop        float32     `json:"pop"`        // probability of precipitation
	Rain       *Rain       `json:"rain,omitempty"`
	Sys        Sys         `json:"sys"`
	DtTxt      string      `json:"dt_txt"`
}

// MainMetrics holds the temperature block. Temperatures are in Kelvin.
// Temp is a pointer so a reply without it can be told apart from 0 K.
type MainMetrics struct {
	Temp      *float32 `json:"temp"`
	FeelsLike float32  `json:"feels_like"`
	TempMin   float32  `json:"temp_min"`
	TempMax   float32  `json:"temp_max"`
	Pressure  int      `json:"pressure"` // in hPa
	SeaLevel  int      `json:"sea_level"`
	GrndLevel int      `json:"grnd_level"`
	Humidity  int      `json:"humidity"` // percentage
	TempKf    float32  `json:"temp_kf"`
}

// Condition describes the weather, e.g. {800 Clear "clear sky" 01d}
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Clouds struct {
	All int `json:"all"` // cloudiness percentage
}

type Wind struct {
	Speed float32 `json:"speed"` // in m/s
	Deg   int     `json:"deg"`
	Gust  float32 `json:"gust"`
}

type Rain struct {
	ThreeHour float32 `json:"3h"` // volume in mm
}

type Sys struct {
	Pod string `json:"pod"` // "d" or "n"
}

// First returns the earliest forecast entry and its primary weather condition.
// The returned entry always has Main.Temp set.
func (r *ForecastResponse) First() (ForecastEntry, Condition, error) {
	if len(r.List) == 0 {
		return ForecastEntry{}, Condition{}, apperr.Parse("forecast response contained no entries", nil)
	}
	entry := r.List[0]
	if len(entry.Weather) == 0 {
		return ForecastEntry{}, Condition{}, apperr.Parse("forecast entry contained no weather conditions", nil)
	}
	if entry.Main.Temp == nil {
		return ForecastEntry{}, Condition{}, apperr.Parse("forecast entry missing main.temp", nil)
	}
	return entry, entry.Weather[0], nil
}
