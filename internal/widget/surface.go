package widget

import "github.com/Nazarious-ucu/skyweather/internal/models"

// The widget never owns presentation nodes. It writes through these
// capabilities, which the host surface implements.

type Display interface {
	SetHeadline(h models.Headline)
	SetMetrics(m models.Metrics)
	SetForecast(days []models.ForecastDay)
}

type ThemeFlag interface {
	SetNight(night bool)
	Night() bool
}

type ParticleContainer interface {
	Replace(particles []models.Particle)
	Append(p models.Particle)
	Remove(id string) bool
	Clear()
}

type CloudLayer interface {
	SetCloudAnimationDuration(seconds float64)
}

// MediaElement is the background music player. Play may be refused by the
// host, e.g. by an autoplay policy. Listeners fire on real state transitions.
type MediaElement interface {
	Source() string
	SetSource(src string)
	Play() error
	Pause()
	Paused() bool
	OnPlay(fn func())
	OnPause(fn func())
}

type Indicator interface {
	SetIndicator(text string)
}

type MessageArea interface {
	ShowError(msg string)
}

type Trigger interface {
	SetSearchEnabled(enabled bool)
	SetSearchLabel(label string)
}

// Surface is every capability of one page.
type Surface interface {
	Display
	ThemeFlag
	CloudLayer
	Indicator
	MessageArea
	Trigger

	Rain() ParticleContainer
	Snow() ParticleContainer
	ShootingStars() ParticleContainer
	Media() MediaElement

	// UserGesture records that the user interacted with the page.
	UserGesture()
}
