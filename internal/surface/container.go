package surface

import (
	"sync"

	"github.com/Nazarious-ucu/skyweather/internal/models"
)

// Container is a particle region of the page.
type Container struct {
	mu        sync.Mutex
	particles []models.Particle
}

func (c *Container) Replace(particles []models.Particle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.particles = append([]models.Particle(nil), particles...)
}

func (c *Container) Append(p models.Particle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.particles = append(c.particles, p)
}

func (c *Container) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, p := range c.particles {
		if p.ID == id {
			c.particles = append(c.particles[:i], c.particles[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Container) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.particles = nil
}

func (c *Container) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.particles)
}

func (c *Container) Particles() []models.Particle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Particle{}, c.particles...)
}
