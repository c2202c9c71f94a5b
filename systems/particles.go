// Package systems holds per-tick effect updates that run alongside the
// physics world.
package systems

import (
	"math"
	"math/rand"
)

// ParticleType identifies the type of effect particle.
type ParticleType uint8

const (
	ParticleSpark    ParticleType = iota // peg contact
	ParticleConfetti                     // slot entry
	ParticleFlash                        // bumper contact
)

// EffectParticle represents a visual feedback particle.
// Velocities are in world units per tick.
type EffectParticle struct {
	X, Y       float32
	VelX, VelY float32
	Life       int32
	MaxLife    int32
	Type       ParticleType
	Size       float32
}

// LifeRatio returns the remaining life in [0, 1].
func (p *EffectParticle) LifeRatio() float32 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float32(p.Life) / float32(p.MaxLife)
}

// ParticleSystem manages effect particles for visual feedback.
type ParticleSystem struct {
	Particles    []EffectParticle
	maxParticles int
	rng          *rand.Rand
}

// NewParticleSystem creates a particle system holding at most maxParticles.
func NewParticleSystem(maxParticles int, rng *rand.Rand) *ParticleSystem {
	if maxParticles < 1 {
		maxParticles = 500
	}
	return &ParticleSystem{
		Particles:    make([]EffectParticle, 0, maxParticles),
		maxParticles: maxParticles,
		rng:          rng,
	}
}

// Update ages and moves all particles, dropping the expired ones.
func (s *ParticleSystem) Update() {
	alive := 0
	for i := range s.Particles {
		p := &s.Particles[i]

		p.Life--
		if p.Life <= 0 {
			continue
		}

		switch p.Type {
		case ParticleSpark:
			p.VelY += 0.05
		case ParticleConfetti:
			p.VelY += 0.02
		case ParticleFlash:
			p.Size += 0.6
		}

		// Drag
		p.VelX *= 0.92
		p.VelY *= 0.92

		p.X += p.VelX
		p.Y += p.VelY

		s.Particles[alive] = *p
		alive++
	}
	s.Particles = s.Particles[:alive]
}

// EmitSpark emits a small burst of sparks (4-7 particles).
func (s *ParticleSystem) EmitSpark(x, y float32) {
	count := 4 + s.rng.Intn(4)
	for i := 0; i < count; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := 1 + s.rng.Float32()*2
		s.emit(EffectParticle{
			X:    x,
			Y:    y,
			VelX: float32(math.Cos(angle)) * speed,
			VelY: float32(math.Sin(angle)) * speed,
			Life: 12 + s.rng.Int31n(10),
			Type: ParticleSpark,
			Size: 1 + s.rng.Float32(),
		})
	}
}

// EmitConfetti emits an upward spray (10-15 particles) across width.
func (s *ParticleSystem) EmitConfetti(x, y, width float32) {
	count := 10 + s.rng.Intn(6)
	for i := 0; i < count; i++ {
		s.emit(EffectParticle{
			X:    x + (s.rng.Float32()-0.5)*width,
			Y:    y,
			VelX: (s.rng.Float32() - 0.5) * 2,
			VelY: -2 - s.rng.Float32()*3,
			Life: 40 + s.rng.Int31n(30),
			Type: ParticleConfetti,
			Size: 1.5 + s.rng.Float32()*1.5,
		})
	}
}

// EmitFlash emits a single expanding ring starting at radius r.
func (s *ParticleSystem) EmitFlash(x, y, r float32) {
	s.emit(EffectParticle{
		X:    x,
		Y:    y,
		Life: 15,
		Type: ParticleFlash,
		Size: r,
	})
}

func (s *ParticleSystem) emit(p EffectParticle) {
	if len(s.Particles) >= s.maxParticles {
		return
	}
	p.MaxLife = p.Life
	s.Particles = append(s.Particles, p)
}

// Count returns the number of live particles.
func (s *ParticleSystem) Count() int {
	return len(s.Particles)
}

// Clear removes all particles.
func (s *ParticleSystem) Clear() {
	s.Particles = s.Particles[:0]
}
