package models

type ParticleKind string

const (
	KindRainDrop     ParticleKind = "rain-drop"
	KindSnowflake    ParticleKind = "snowflake"
	KindShootingStar ParticleKind = "shooting-star"
)

const (
	UnitViewportWidth = "vw"
	UnitPixels        = "px"
)

// Particle is one short-lived visual element. Top is always in vh, Left is in
// LeftUnit. Delay and Duration are animation timings in seconds.
type Particle struct {
	ID       string       `json:"id"`
	Kind     ParticleKind `json:"kind"`
	Left     float64      `json:"left"`
	LeftUnit string       `json:"left_unit"`
	Top      float64      `json:"top"`
	Delay    float64      `json:"delay,omitempty"`
	Duration float64      `json:"duration,omitempty"`
}
