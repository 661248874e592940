package widget

import (
	"sync"
	"sync/atomic"
)

// InteractionHook runs its action on the first user interaction only. It is
// used to retry playback that the autoplay policy refused.
type InteractionHook struct {
	once   sync.Once
	fired  atomic.Bool
	action func()
}

func NewInteractionHook(action func()) *InteractionHook {
	return &InteractionHook{action: action}
}

func (h *InteractionHook) Fire() {
	h.once.Do(func() {
		h.fired.Store(true)
		h.action()
	})
}

func (h *InteractionHook) Armed() bool {
	return !h.fired.Load()
}
