package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plinko/camera"
	"github.com/pthm-cable/plinko/systems"
)

// ParticleRenderer renders effect particles.
type ParticleRenderer struct {
	cam      *camera.Camera
	spark    rl.Color
	confetti []rl.Color
	flash    rl.Color
}

// NewParticleRenderer creates a particle renderer. Spark and flash take
// the lit peg and bumper colours; confetti cycles through the palette.
func NewParticleRenderer(cam *camera.Camera, p *Palette, spark, flash string, confetti []string) *ParticleRenderer {
	r := &ParticleRenderer{
		cam:   cam,
		spark: p.Color(spark, 1),
		flash: p.Color(flash, 1),
	}
	for _, c := range confetti {
		r.confetti = append(r.confetti, p.Color(c, 1))
	}
	if len(r.confetti) == 0 {
		r.confetti = []rl.Color{rl.Gold}
	}
	return r
}

// Draw renders all particles.
func (r *ParticleRenderer) Draw(particles []systems.EffectParticle) {
	for i := range particles {
		p := &particles[i]
		lifeRatio := p.LifeRatio()
		x, y := r.cam.WorldToScreen(p.X, p.Y)

		switch p.Type {
		case systems.ParticleSpark:
			size := max(p.Size*lifeRatio, 0.5) * r.cam.Zoom
			rl.DrawCircleV(rl.Vector2{X: x, Y: y}, size, rl.Fade(r.spark, lifeRatio))
		case systems.ParticleConfetti:
			c := r.confetti[i%len(r.confetti)]
			size := p.Size * r.cam.Zoom
			rl.DrawRectangleV(rl.Vector2{X: x - size/2, Y: y - size/2}, rl.Vector2{X: size, Y: size}, rl.Fade(c, lifeRatio))
		case systems.ParticleFlash:
			rl.DrawCircleLinesV(rl.Vector2{X: x, Y: y}, p.Size*r.cam.Zoom, rl.Fade(r.flash, lifeRatio))
		}
	}
}
