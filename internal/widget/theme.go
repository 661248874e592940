package widget

import "github.com/Nazarious-ucu/skyweather/internal/models"

type starSpawner interface {
	SpawnShootingStar()
}

// Theme switches between day and night.
type Theme struct {
	flag  ThemeFlag
	stars starSpawner
}

func NewTheme(flag ThemeFlag, stars starSpawner) *Theme {
	return &Theme{flag: flag, stars: stars}
}

// Apply follows the icon's day/night marker. Entering night this way spawns
// one shooting star.
func (t *Theme) Apply(icon string) {
	night := models.IsNightIcon(icon)
	t.flag.SetNight(night)
	if night {
		t.stars.SpawnShootingStar()
	}
}

// Toggle is the manual override.
func (t *Theme) Toggle() {
	t.flag.SetNight(!t.flag.Night())
}
