package game

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/plinko/components"
)

// spawnBodies creates one entity per layout descriptor and registers it
// with the physics world under its index in the layout.
func (g *Game) spawnBodies() error {
	g.entities = make([]ecs.Entity, 0, len(g.layout.Bodies))
	for id, d := range g.layout.Bodies {
		shape := components.Shape{ID: id, Desc: d}
		pose := components.Pose{X: d.Pos.X, Y: d.Pos.Y, Angle: d.Angle}
		style := components.NewStyle(d.Style)

		var e ecs.Entity
		if d.Static {
			e = g.bodyMapper.NewEntity(&shape, &pose, &style)
		} else {
			e = g.discMapper.NewEntity(&shape, &pose, &style, &components.Dynamic{})
			g.disc = e
		}
		g.entities = append(g.entities, e)

		if err := g.phys.Add(id, d); err != nil {
			return fmt.Errorf("spawning body %d: %w", id, err)
		}
	}
	if !g.phys.HasBall() {
		return fmt.Errorf("spawning bodies: layout has no disc")
	}
	return nil
}

// entity returns the entity registered under id.
func (g *Game) entity(id int) (ecs.Entity, bool) {
	if id < 0 || id >= len(g.entities) {
		return ecs.Entity{}, false
	}
	return g.entities[id], true
}

// styleOf returns the style of the body registered under id, or nil.
func (g *Game) styleOf(id int) *components.Style {
	e, ok := g.entity(id)
	if !ok {
		return nil
	}
	return g.styleMap.Get(e)
}

// syncDisc copies the physics disc's placement into the dynamic entities.
func (g *Game) syncDisc() {
	pos := g.phys.BallPosition()
	angle := g.phys.BallAngle()
	query := g.discFilter.Query()
	for query.Next() {
		pose, _ := query.Get()
		pose.X, pose.Y, pose.Angle = pos.X, pos.Y, angle
	}
}
