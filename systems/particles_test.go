package systems

import (
	"math/rand"
	"testing"
)

func TestEmitSparkBurst(t *testing.T) {
	s := NewParticleSystem(100, rand.New(rand.NewSource(1)))
	s.EmitSpark(10, 20)
	if n := s.Count(); n < 4 || n > 7 {
		t.Fatalf("expected 4-7 sparks, got %d", n)
	}
	for _, p := range s.Particles {
		if p.X != 10 || p.Y != 20 || p.Type != ParticleSpark {
			t.Errorf("unexpected spark %+v", p)
		}
		if p.LifeRatio() != 1 {
			t.Errorf("new spark should have full life, got %v", p.LifeRatio())
		}
	}
}

func TestUpdateExpiresParticles(t *testing.T) {
	s := NewParticleSystem(100, rand.New(rand.NewSource(2)))
	s.EmitFlash(0, 0, 5)
	s.EmitConfetti(0, 0, 40)

	for i := 0; i < 14; i++ {
		s.Update()
	}
	flashes := 0
	for _, p := range s.Particles {
		if p.Type == ParticleFlash {
			flashes++
			if p.Size <= 5 {
				t.Errorf("flash should grow, size %v", p.Size)
			}
		}
	}
	if flashes != 1 {
		t.Fatalf("flash should still be alive after 14 ticks, found %d", flashes)
	}

	for i := 0; i < 100; i++ {
		s.Update()
	}
	if s.Count() != 0 {
		t.Errorf("all particles should have expired, %d left", s.Count())
	}
}

func TestConfettiRises(t *testing.T) {
	s := NewParticleSystem(100, rand.New(rand.NewSource(3)))
	s.EmitConfetti(50, 100, 20)
	for i := 0; i < 5; i++ {
		s.Update()
	}
	for _, p := range s.Particles {
		if p.Y >= 100 {
			t.Errorf("confetti should move up, at y=%v", p.Y)
		}
	}
}

func TestCapacityLimit(t *testing.T) {
	s := NewParticleSystem(5, rand.New(rand.NewSource(4)))
	for i := 0; i < 10; i++ {
		s.EmitSpark(0, 0)
	}
	if s.Count() != 5 {
		t.Errorf("expected capacity 5, got %d", s.Count())
	}
	s.Clear()
	if s.Count() != 0 {
		t.Error("clear should drop all particles")
	}
}
