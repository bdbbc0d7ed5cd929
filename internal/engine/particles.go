package engine

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Particle is a single short-lived point.
type Particle struct {
	Position core.Vec3
	Velocity core.Vec3
	Age      float64
	Lifetime float64
	Color    core.Color
}

// Glyph returns the rune for the particle's remaining life.
func (p Particle) Glyph() rune {
	switch t := p.Age / p.Lifetime; {
	case t < 0.33:
		return '*'
	case t < 0.66:
		return '+'
	default:
		return '.'
	}
}

// ParticleSystem emits bursts of particles and ages them.
type ParticleSystem struct {
	Lifetime float64
	Speed    float64
	Gravity  float64

	rng       *rand.Rand
	particles []Particle
}

// NewParticleSystem creates a particle system with a deterministic RNG.
func NewParticleSystem(seed int64, lifetime, speed float64) *ParticleSystem {
	return &ParticleSystem{
		Lifetime: lifetime,
		Speed:    speed,
		Gravity:  -4,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Burst emits count particles from pos in random directions.
func (ps *ParticleSystem) Burst(pos core.Vec3, count int, color core.Color) {
	for i := 0; i < count; i++ {
		theta := ps.rng.Float64() * 2 * math.Pi
		phi := math.Acos(2*ps.rng.Float64() - 1)
		dir := core.V3(math.Sin(phi)*math.Cos(theta), math.Cos(phi), math.Sin(phi)*math.Sin(theta))
		speed := ps.Speed * (0.5 + ps.rng.Float64()*0.5)
		ps.particles = append(ps.particles, Particle{
			Position: pos,
			Velocity: dir.Scale(speed),
			Lifetime: ps.Lifetime * (0.75 + ps.rng.Float64()*0.5),
			Color:    color,
		})
	}
}

// Update ages particles by dt seconds and drops expired ones.
func (ps *ParticleSystem) Update(dt float64) {
	live := ps.particles[:0]
	for _, p := range ps.particles {
		p.Age += dt
		if p.Age >= p.Lifetime {
			continue
		}
		p.Velocity.Y += ps.Gravity * dt
		p.Position = p.Position.Add(p.Velocity.Scale(dt))
		live = append(live, p)
	}
	ps.particles = live
}

// Particles returns the live particles.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Clear drops every particle.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}
