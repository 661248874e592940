package models

import (
	"strings"
	"time"
)

// Category is the provider's coarse classification of conditions.
type Category string

const (
	CategoryClear        Category = "Clear"
	CategoryClouds       Category = "Clouds"
	CategoryRain         Category = "Rain"
	CategoryDrizzle      Category = "Drizzle"
	CategoryThunderstorm Category = "Thunderstorm"
	CategorySnow         Category = "Snow"
)

// IsRainLike reports whether the category falls as rain drops.
func (c Category) IsRainLike() bool {
	return c == CategoryRain || c == CategoryDrizzle || c == CategoryThunderstorm
}

// IsNightIcon reports whether an OpenWeatherMap icon code ("01n", "10d")
// carries the night marker.
func IsNightIcon(icon string) bool {
	return strings.HasSuffix(icon, "n")
}

type CurrentConditions struct {
	Location    string    `json:"location"`
	Country     string    `json:"country"`
	Temperature float64   `json:"temperature"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Sunrise     time.Time `json:"sunrise"`
	Sunset      time.Time `json:"sunset"`
}

type ForecastEntry struct {
	Time        time.Time `json:"time"`
	Temperature float64   `json:"temperature"`
	Icon        string    `json:"icon"`
}

// Report is everything a single lookup produces.
type Report struct {
	Current  CurrentConditions `json:"current"`
	Forecast []ForecastEntry   `json:"forecast"`
}
