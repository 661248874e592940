package widget

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Nazarious-ucu/skyweather/internal/models"
)

const (
	timeOfDayLayout = "3:04:05 PM"
	weekdayLayout   = "Mon"
)

// Renderer projects a report into the headline, metrics and forecast regions.
type Renderer struct {
	display     Display
	iconBaseURL string
	loc         *time.Location
}

func NewRenderer(display Display, iconBaseURL string, loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.Local
	}
	return &Renderer{
		display:     display,
		iconBaseURL: strings.TrimRight(iconBaseURL, "/"),
		loc:         loc,
	}
}

func (r *Renderer) Render(cur models.CurrentConditions, forecast []models.ForecastEntry) {
	r.display.SetHeadline(models.Headline{
		Location:    fmt.Sprintf("%s, %s", cur.Location, cur.Country),
		Temperature: fmt.Sprintf("%s°C", roundTemp(cur.Temperature)),
		IconURL:     fmt.Sprintf("%s/%s@2x.png", r.iconBaseURL, cur.Icon),
		Description: cur.Description,
	})

	r.display.SetMetrics(models.Metrics{
		Humidity: fmt.Sprintf("%d%%", cur.Humidity),
		Wind:     fmt.Sprintf("%s m/s", strconv.FormatFloat(cur.WindSpeed, 'f', -1, 64)),
		Sunrise:  cur.Sunrise.In(r.loc).Format(timeOfDayLayout),
		Sunset:   cur.Sunset.In(r.loc).Format(timeOfDayLayout),
	})

	days := make([]models.ForecastDay, 0, len(forecast))
	for _, f := range forecast {
		days = append(days, models.ForecastDay{
			Weekday:     f.Time.In(r.loc).Format(weekdayLayout),
			IconURL:     fmt.Sprintf("%s/%s.png", r.iconBaseURL, f.Icon),
			Temperature: fmt.Sprintf("%s°", roundTemp(f.Temperature)),
		})
	}
	r.display.SetForecast(days)
}

// roundTemp rounds half away from zero and never prints "-0".
func roundTemp(v float64) string {
	n := math.Round(v)
	if n == 0 {
		n = 0
	}
	return strconv.FormatFloat(n, 'f', 0, 64)
}
