package widget

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	IconBaseURL string
	Location    *time.Location
	Tracks      Tracks
	Effects     EffectsConfig
	Clock       Clock
	// NewRand supplies the random generators; each controller gets its own.
	NewRand func() *rand.Rand
}

// Widget is one page's weather display. Its mutex is the single event loop:
// every user event runs under it.
type Widget struct {
	loop    sync.Mutex
	surface Surface
	search  *Search
	theme   *Theme
	effects *Effects
	audio   *Audio
	hook    *InteractionHook
	logger  zerolog.Logger
}

func New(surface Surface, fetcher weatherFetcher, observer SearchObserver, cfg Config, logger zerolog.Logger) *Widget {
	newRand := cfg.NewRand
	if newRand == nil {
		newRand = func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
	}
	tracks := cfg.Tracks
	if tracks == nil {
		tracks = DefaultTracks("")
	}
	if observer == nil {
		observer = nopObserver{}
	}

	w := &Widget{surface: surface, logger: logger}

	w.effects = NewEffects(surface.Rain(), surface.Snow(), surface.ShootingStars(), surface, cfg.Effects, newRand(), cfg.Clock)
	w.theme = NewTheme(surface, w.effects)
	w.audio = NewAudio(surface.Media(), surface, tracks, newRand(), logger)

	media := surface.Media()
	w.hook = NewInteractionHook(func() {
		if err := media.Play(); err != nil {
			logger.Debug().Err(err).Msg("BGM retry after interaction refused")
		}
	})

	w.search = &Search{
		loop:     &w.loop,
		fetcher:  fetcher,
		renderer: NewRenderer(surface, cfg.IconBaseURL, cfg.Location),
		theme:    w.theme,
		effects:  w.effects,
		audio:    w.audio,
		messages: surface,
		trigger:  surface,
		observer: observer,
		logger:   logger,
		state:    StateIdle,
	}

	surface.SetSearchEnabled(true)
	surface.SetSearchLabel(LabelSearch)

	return w
}

func (w *Widget) Search(ctx context.Context, city string) error {
	return w.search.Run(ctx, city)
}

func (w *Widget) ToggleTheme() {
	w.loop.Lock()
	defer w.loop.Unlock()
	w.theme.Toggle()
}

func (w *Widget) ToggleMute() {
	w.loop.Lock()
	defer w.loop.Unlock()
	w.audio.ToggleMute()
}

// Interact is a click anywhere on the page.
func (w *Widget) Interact() {
	w.loop.Lock()
	defer w.loop.Unlock()
	w.surface.UserGesture()
	w.hook.Fire()
}

func (w *Widget) State() State {
	w.loop.Lock()
	defer w.loop.Unlock()
	return w.search.state
}

func (w *Widget) LastCity() string {
	w.loop.Lock()
	defer w.loop.Unlock()
	return w.search.LastCity()
}
