package surface

import (
	"errors"
	"sync"
)

var (
	ErrAutoplayBlocked = errors.New("play() failed because the user didn't interact with the document first")
	ErrNoSource        = errors.New("no supported source was found")
)

// Media models the page's audio element. Listeners run outside the lock, in
// registration order.
type Media struct {
	mu      sync.Mutex
	src     string
	paused  bool
	loads   int
	allowed func() bool
	onPlay  []func()
	onPause []func()
}

func NewMedia(allowed func() bool) *Media {
	return &Media{paused: true, allowed: allowed}
}

func (m *Media) Source() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.src
}

// SetSource loads a new track. A playing element pauses.
func (m *Media) SetSource(src string) {
	m.mu.Lock()
	wasPlaying := !m.paused
	m.src = src
	m.loads++
	m.paused = true
	listeners := m.onPause
	m.mu.Unlock()

	if wasPlaying {
		fire(listeners)
	}
}

func (m *Media) Play() error {
	m.mu.Lock()
	if m.src == "" {
		m.mu.Unlock()
		return ErrNoSource
	}
	if m.allowed != nil && !m.allowed() {
		m.mu.Unlock()
		return ErrAutoplayBlocked
	}
	if !m.paused {
		m.mu.Unlock()
		return nil
	}
	m.paused = false
	listeners := m.onPlay
	m.mu.Unlock()

	fire(listeners)
	return nil
}

func (m *Media) Pause() {
	m.mu.Lock()
	if m.paused {
		m.mu.Unlock()
		return
	}
	m.paused = true
	listeners := m.onPause
	m.mu.Unlock()

	fire(listeners)
}

func (m *Media) Paused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paused
}

// Loads counts source assignments.
func (m *Media) Loads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loads
}

func (m *Media) OnPlay(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onPlay = append(m.onPlay, fn)
}

func (m *Media) OnPause(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onPause = append(m.onPause, fn)
}

func fire(listeners []func()) {
	for _, fn := range listeners {
		fn()
	}
}
