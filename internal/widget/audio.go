package widget

import (
	"math/rand/v2"
	"path"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/skyweather/internal/models"
)

const (
	SpeakerOn  = "🔊"
	SpeakerOff = "🔇"

	DefaultAssetsDir = "effects"
)

// Tracks maps a weather category to its candidate background tracks.
type Tracks map[models.Category][]string

func DefaultTracks(dir string) Tracks {
	if dir == "" {
		dir = DefaultAssetsDir
	}
	track := func(name string) []string { return []string{path.Join(dir, name)} }
	return Tracks{
		models.CategoryClear:        track("sunny.mp3"),
		models.CategoryClouds:       track("cloudy.mp3"),
		models.CategoryRain:         track("rain.mp3"),
		models.CategorySnow:         track("snow.mp3"),
		models.CategoryDrizzle:      track("drizzle.mp3"),
		models.CategoryThunderstorm: track("thunder.mp3"),
	}
}

// Audio picks and plays the background track for a weather category.
type Audio struct {
	media  MediaElement
	tracks Tracks
	rnd    *rand.Rand
	logger zerolog.Logger
}

// NewAudio wires the indicator to the media element's own play/pause events.
func NewAudio(media MediaElement, indicator Indicator, tracks Tracks, rnd *rand.Rand, logger zerolog.Logger) *Audio {
	media.OnPlay(func() { indicator.SetIndicator(SpeakerOn) })
	media.OnPause(func() { indicator.SetIndicator(SpeakerOff) })
	if media.Paused() {
		indicator.SetIndicator(SpeakerOff)
	} else {
		indicator.SetIndicator(SpeakerOn)
	}
	return &Audio{media: media, tracks: tracks, rnd: rnd, logger: logger}
}

// Select returns the track for a category, falling back to the Clear set.
func (a *Audio) Select(category models.Category) string {
	candidates := a.tracks[category]
	if len(candidates) == 0 {
		candidates = a.tracks[models.CategoryClear]
	}
	if len(candidates) == 0 {
		return ""
	}
	return candidates[a.rnd.IntN(len(candidates))]
}

// Play switches to the category's track unless it is already loaded.
func (a *Audio) Play(category models.Category) {
	track := a.Select(category)
	if track == "" {
		return
	}
	if strings.HasSuffix(a.media.Source(), track) {
		return
	}
	a.media.SetSource(track)
	if err := a.media.Play(); err != nil {
		a.logger.Debug().
			Err(err).
			Str("track", track).
			Msg("BGM autoplay blocked")
	}
}

func (a *Audio) ToggleMute() {
	if !a.media.Paused() {
		a.media.Pause()
		return
	}
	if err := a.media.Play(); err != nil {
		a.logger.Debug().
			Err(err).
			Msg("BGM play refused")
	}
}
