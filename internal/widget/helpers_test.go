package widget_test

import (
	"context"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Nazarious-ucu/skyweather/internal/models"
	"github.com/Nazarious-ucu/skyweather/internal/widget"
)

const iconBase = "https://openweathermap.org/img/wn"

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

type manualTimer struct {
	clock   *manualClock
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// manualClock fires callbacks only when Advance moves past their deadline.
type manualClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) widget.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{clock: c, at: c.now + d, fn: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*manualTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.at <= c.now {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, t := range due {
		t.fn()
	}
}

// Pending counts timers that are neither fired nor stopped.
func (c *manualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) Fetch(ctx context.Context, city string) (models.Report, error) {
	args := m.Called(ctx, city)
	report, _ := args.Get(0).(models.Report)
	return report, args.Error(1)
}

func report(city, country string, category models.Category, icon string, wind float64) models.Report {
	return models.Report{
		Current: models.CurrentConditions{
			Location:    city,
			Country:     country,
			Temperature: 15.4,
			Category:    category,
			Description: "light rain",
			Icon:        icon,
			Humidity:    80,
			WindSpeed:   wind,
			Sunrise:     time.Unix(1700000000, 0),
			Sunset:      time.Unix(1700030000, 0),
		},
		Forecast: []models.ForecastEntry{
			{Time: time.Unix(1700136000, 0), Temperature: 11.5, Icon: "10d"},
			{Time: time.Unix(1700222400, 0), Temperature: 10.2, Icon: "03d"},
			{Time: time.Unix(1700308800, 0), Temperature: 8.4, Icon: "13d"},
			{Time: time.Unix(1700395200, 0), Temperature: 12.6, Icon: "01d"},
			{Time: time.Unix(1700481600, 0), Temperature: 7.5, Icon: "02d"},
		},
	}
}

func parisReport() models.Report {
	return report("Paris", "FR", models.CategoryRain, "10d", 3)
}
