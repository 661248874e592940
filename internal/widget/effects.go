package widget

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Nazarious-ucu/skyweather/internal/models"
)

const (
	rainDropCount  = 100
	snowflakeCount = 50

	cloudBaseSeconds    = 100
	cloudSecondsPerWind = 5

	shootingStarLeftPx   = -150
	shootingStarMaxTopVH = 40

	DefaultStarLifetime = 2 * time.Second
)

type particleTiming struct {
	maxDelay    float64
	minDuration float64
	durationVar float64
}

var (
	rainTiming = particleTiming{maxDelay: 0.8, minDuration: 0.6, durationVar: 0.4}
	snowTiming = particleTiming{maxDelay: 4, minDuration: 6, durationVar: 4}
)

type EffectsConfig struct {
	// MaxShootingStars bounds live stars; 0 means unbounded. When full, the
	// oldest star is removed before a new one appears.
	MaxShootingStars int
	// CancelStarsOnClear stops pending star removals when effects are cleared.
	CancelStarsOnClear bool
	StarLifetime       time.Duration
}

type pendingStar struct {
	id    string
	timer Timer
}

// Effects owns the particle containers and the ambient cloud speed.
type Effects struct {
	mu      sync.Mutex
	rain    ParticleContainer
	snow    ParticleContainer
	stars   ParticleContainer
	clouds  CloudLayer
	rnd     *rand.Rand
	clock   Clock
	cfg     EffectsConfig
	pending []pendingStar
}

func NewEffects(
	rain, snow, stars ParticleContainer,
	clouds CloudLayer,
	cfg EffectsConfig,
	rnd *rand.Rand,
	clock Clock,
) *Effects {
	if cfg.StarLifetime <= 0 {
		cfg.StarLifetime = DefaultStarLifetime
	}
	if clock == nil {
		clock = RealClock()
	}
	return &Effects{
		rain:   rain,
		snow:   snow,
		stars:  stars,
		clouds: clouds,
		rnd:    rnd,
		clock:  clock,
		cfg:    cfg,
	}
}

// CloudDuration maps wind speed (m/s) to the cloud animation length in
// seconds. There is no clamp: strong wind gives zero or negative values.
func CloudDuration(windSpeed float64) float64 {
	return cloudBaseSeconds - windSpeed*cloudSecondsPerWind
}

func (e *Effects) Apply(category models.Category, windSpeed float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.clouds.SetCloudAnimationDuration(CloudDuration(windSpeed))

	switch {
	case category.IsRainLike():
		e.rain.Replace(e.fall(models.KindRainDrop, rainDropCount, rainTiming))
	case category == models.CategorySnow:
		e.snow.Replace(e.fall(models.KindSnowflake, snowflakeCount, snowTiming))
	}
}

func (e *Effects) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.rain.Clear()
	e.snow.Clear()
	e.stars.Clear()

	if e.cfg.CancelStarsOnClear {
		for _, p := range e.pending {
			p.timer.Stop()
		}
	}
	e.pending = nil
}

func (e *Effects) SpawnShootingStar() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cfg.MaxShootingStars > 0 && len(e.pending) >= e.cfg.MaxShootingStars {
		oldest := e.pending[0]
		oldest.timer.Stop()
		e.stars.Remove(oldest.id)
		e.pending = e.pending[1:]
	}

	star := models.Particle{
		ID:       uuid.NewString(),
		Kind:     models.KindShootingStar,
		Left:     shootingStarLeftPx,
		LeftUnit: models.UnitPixels,
		Top:      e.rnd.Float64() * shootingStarMaxTopVH,
	}
	e.stars.Append(star)

	id := star.ID
	timer := e.clock.AfterFunc(e.cfg.StarLifetime, func() { e.expire(id) })
	e.pending = append(e.pending, pendingStar{id: id, timer: timer})
}

func (e *Effects) expire(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stars.Remove(id)
	for i, p := range e.pending {
		if p.id == id {
			e.pending = append(e.pending[:i], e.pending[i+1:]...)
			break
		}
	}
}

// fall builds n particles starting above the viewport.
func (e *Effects) fall(kind models.ParticleKind, n int, timing particleTiming) []models.Particle {
	out := make([]models.Particle, n)
	for i := range out {
		out[i] = models.Particle{
			ID:       uuid.NewString(),
			Kind:     kind,
			Left:     e.rnd.Float64() * 100,
			LeftUnit: models.UnitViewportWidth,
			Top:      e.rnd.Float64() * -100,
			Delay:    e.rnd.Float64() * timing.maxDelay,
			Duration: timing.minDuration + e.rnd.Float64()*timing.durationVar,
		}
	}
	return out
}
