package models

// Headline is the current-conditions block as displayed.
type Headline struct {
	Location    string `json:"location"`
	Temperature string `json:"temperature"`
	IconURL     string `json:"icon_url"`
	Description string `json:"description"`
}

// Metrics is the humidity/wind/sun block as displayed.
type Metrics struct {
	Humidity string `json:"humidity"`
	Wind     string `json:"wind"`
	Sunrise  string `json:"sunrise"`
	Sunset   string `json:"sunset"`
}

// ForecastDay is one cell of the forecast strip.
type ForecastDay struct {
	Weekday     string `json:"weekday"`
	IconURL     string `json:"icon_url"`
	Temperature string `json:"temperature"`
}
