package widget

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/skyweather/internal/models"
	"github.com/Nazarious-ucu/skyweather/internal/validator"
)

const (
	LabelSearch    = "Search"
	LabelSearching = "Searching..."
)

const (
	OutcomeSuccess         = "success"
	OutcomeValidationError = "validation_error"
	OutcomeFetchError      = "fetch_error"
	OutcomeBusy            = "busy"
)

type State string

const (
	StateIdle         State = "idle"
	StateValidating   State = "validating"
	StateFetching     State = "fetching"
	StateRendering    State = "rendering"
	StateShowingError State = "showing_error"
)

// ErrSearchInProgress is returned while the search trigger is disabled.
var ErrSearchInProgress = errors.New("search in progress")

type weatherFetcher interface {
	Fetch(ctx context.Context, city string) (models.Report, error)
}

type SearchObserver interface {
	ObserveSearch(outcome string, d time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveSearch(string, time.Duration) {}

// Search runs one lookup: validate, fetch, then fan out to the renderer,
// theme, effects and audio. loop is held for the whole run except while the
// provider is called.
type Search struct {
	loop     sync.Locker
	fetcher  weatherFetcher
	renderer *Renderer
	theme    *Theme
	effects  *Effects
	audio    *Audio
	messages MessageArea
	trigger  Trigger
	observer SearchObserver
	logger   zerolog.Logger

	state    State
	busy     bool
	lastCity string
}

func (s *Search) Run(ctx context.Context, raw string) error {
	start := time.Now()

	s.loop.Lock()
	defer s.loop.Unlock()

	if s.busy {
		s.observer.ObserveSearch(OutcomeBusy, time.Since(start))
		return ErrSearchInProgress
	}

	s.messages.ShowError("")
	s.state = StateValidating

	city, err := validator.Validate(raw, s.lastCity)
	if err != nil {
		s.logger.Info().
			Ctx(ctx).
			Str("input", raw).
			Err(err).
			Msg("search rejected")
		s.showError(err)
		s.state = StateIdle
		s.observer.ObserveSearch(OutcomeValidationError, time.Since(start))
		return err
	}

	s.effects.Clear()
	s.dispatch()
	defer s.settle()

	s.logger.Info().
		Ctx(ctx).
		Str("city", city).
		Msg("search started")

	report, err := s.fetchUnlocked(ctx, city)
	if err != nil {
		s.logger.Error().
			Ctx(ctx).
			Str("city", city).
			Err(errors.Unwrap(err)).
			Str("message", err.Error()).
			Msg("search failed")
		s.showError(err)
		s.observer.ObserveSearch(OutcomeFetchError, time.Since(start))
		return err
	}

	s.lastCity = validator.Normalize(city)
	s.state = StateRendering

	cur := report.Current
	s.renderer.Render(cur, report.Forecast)
	s.theme.Apply(cur.Icon)
	s.effects.Apply(cur.Category, cur.WindSpeed)
	s.audio.Play(cur.Category)

	s.logger.Info().
		Ctx(ctx).
		Str("city", city).
		Str("category", string(cur.Category)).
		Dur("duration_ms", time.Since(start)).
		Msg("search rendered")
	s.observer.ObserveSearch(OutcomeSuccess, time.Since(start))
	return nil
}

// LastCity is the normalized city of the last successful lookup.
func (s *Search) LastCity() string { return s.lastCity }

func (s *Search) fetchUnlocked(ctx context.Context, city string) (models.Report, error) {
	s.state = StateFetching
	s.loop.Unlock()
	defer s.loop.Lock()
	return s.fetcher.Fetch(ctx, city)
}

func (s *Search) dispatch() {
	s.busy = true
	s.trigger.SetSearchEnabled(false)
	s.trigger.SetSearchLabel(LabelSearching)
}

// settle runs on every dispatched lookup, including panics in the fetcher.
func (s *Search) settle() {
	s.busy = false
	s.state = StateIdle
	s.trigger.SetSearchEnabled(true)
	s.trigger.SetSearchLabel(LabelSearch)
}

func (s *Search) showError(err error) {
	s.state = StateShowingError
	s.messages.ShowError(UserMessage(err))
}

type messager interface {
	Message() string
}

// UserMessage is the text shown in the error area for err.
func UserMessage(err error) string {
	var m messager
	if errors.As(err, &m) {
		return m.Message()
	}
	return err.Error()
}
