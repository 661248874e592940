package surface

import "github.com/Nazarious-ucu/skyweather/internal/models"

type Control struct {
	Enabled bool   `json:"enabled"`
	Label   string `json:"label"`
}

type AudioState struct {
	Source    string `json:"source"`
	Paused    bool   `json:"paused"`
	Indicator string `json:"indicator"`
}

type Effects struct {
	CloudAnimationSeconds float64           `json:"cloud_animation_seconds"`
	Rain                  []models.Particle `json:"rain"`
	Snow                  []models.Particle `json:"snow"`
	ShootingStars         []models.Particle `json:"shooting_stars"`
}

// Snapshot is a copy of everything the page shows.
type Snapshot struct {
	Headline models.Headline      `json:"headline"`
	Metrics  models.Metrics       `json:"metrics"`
	Forecast []models.ForecastDay `json:"forecast"`
	Theme    string               `json:"theme"`
	Error    string               `json:"error"`
	Search   Control              `json:"search"`
	Effects  Effects              `json:"effects"`
	Audio    AudioState           `json:"audio"`
}

func (p *Page) Snapshot() Snapshot {
	// Media and containers are read outside p.mu; they have their own locks.
	audio := AudioState{Source: p.media.Source(), Paused: p.media.Paused()}
	effects := Effects{
		Rain:          p.rain.Particles(),
		Snow:          p.snow.Particles(),
		ShootingStars: p.stars.Particles(),
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	theme := ThemeDay
	if p.night {
		theme = ThemeNight
	}
	audio.Indicator = p.indicator
	effects.CloudAnimationSeconds = p.cloudDuration

	return Snapshot{
		Headline: p.headline,
		Metrics:  p.metrics,
		Forecast: append([]models.ForecastDay{}, p.forecast...),
		Theme:    theme,
		Error:    p.errorText,
		Search:   Control{Enabled: p.searchEnabled, Label: p.searchLabel},
		Effects:  effects,
		Audio:    audio,
	}
}
