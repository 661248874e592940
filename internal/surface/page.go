package surface

import (
	"sync"
	"sync/atomic"

	"github.com/Nazarious-ucu/skyweather/internal/models"
	"github.com/Nazarious-ucu/skyweather/internal/widget"
)

const (
	ThemeDay   = "day"
	ThemeNight = "night"
)

// Page holds the state of every region and control of the widget page.
type Page struct {
	mu            sync.Mutex
	headline      models.Headline
	metrics       models.Metrics
	forecast      []models.ForecastDay
	night         bool
	cloudDuration float64
	errorText     string
	searchEnabled bool
	searchLabel   string
	indicator     string

	rain  *Container
	snow  *Container
	stars *Container
	media *Media

	activated atomic.Bool
}

// NewPage builds an empty page. With requireGesture the media element refuses
// to play until UserGesture has been called once.
func NewPage(requireGesture bool) *Page {
	p := &Page{
		searchEnabled: true,
		rain:          &Container{},
		snow:          &Container{},
		stars:         &Container{},
	}
	if !requireGesture {
		p.activated.Store(true)
	}
	p.media = NewMedia(p.activated.Load)
	return p
}

func (p *Page) SetHeadline(h models.Headline) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.headline = h
}

func (p *Page) SetMetrics(m models.Metrics) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.metrics = m
}

func (p *Page) SetForecast(days []models.ForecastDay) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.forecast = append([]models.ForecastDay(nil), days...)
}

func (p *Page) SetNight(night bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.night = night
}

func (p *Page) Night() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.night
}

func (p *Page) SetCloudAnimationDuration(seconds float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cloudDuration = seconds
}

func (p *Page) SetIndicator(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.indicator = text
}

func (p *Page) ShowError(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errorText = msg
}

func (p *Page) SetSearchEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.searchEnabled = enabled
}

func (p *Page) SetSearchLabel(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.searchLabel = label
}

func (p *Page) Rain() widget.ParticleContainer          { return p.rain }
func (p *Page) Snow() widget.ParticleContainer          { return p.snow }
func (p *Page) ShootingStars() widget.ParticleContainer { return p.stars }
func (p *Page) Media() widget.MediaElement              { return p.media }

// Player is the concrete media element, for inspection.
func (p *Page) Player() *Media { return p.media }

func (p *Page) UserGesture() {
	p.activated.Store(true)
}

func (p *Page) Activated() bool {
	return p.activated.Load()
}
