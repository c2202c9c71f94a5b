// Package physics registers body descriptors with the Chipmunk2D space
// and reports collisions as batches, one per Step.
package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/pthm-cable/plinko/body"
	"github.com/pthm-cable/plinko/contact"
	"github.com/pthm-cable/plinko/geom"
)

// ballCollision is the collision type of the disc. Every reported pair
// involves the disc, since static bodies never collide with each other.
const ballCollision cp.CollisionType = 1

// Drag constraint tuning, as in the Chipmunk demos.
const (
	grabRadius    = 5.0
	dragMaxForce  = 50000.0
	dragErrorBias = 0.15
)

// Config holds the engine parameters.
type Config struct {
	Gravity    float64 // downward acceleration, units/s²
	Iterations int
	Substeps   int // space steps per Step call
}

// World wraps a cp.Space.
type World struct {
	cfg   Config
	space *cp.Space
	batch contact.Batch

	statics []staticShape

	ball         *cp.Body
	ballShape    *cp.Shape
	ballRef      contact.Ref
	ballStart    cp.Vector
	ballBounce   float64
	ballFriction float64

	mouseBody  *cp.Body
	mouseJoint *cp.Constraint
}

type staticShape struct {
	shape    *cp.Shape
	material body.Material
}

// New creates an empty world.
func New(cfg Config) *World {
	if cfg.Substeps < 1 {
		cfg.Substeps = 1
	}
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity})
	if cfg.Iterations > 0 {
		space.Iterations = uint(cfg.Iterations)
	}

	w := &World{
		cfg:       cfg,
		space:     space,
		mouseBody: cp.NewKinematicBody(),
	}

	handler := space.NewWildcardCollisionHandler(ballCollision)
	handler.BeginFunc = w.begin
	handler.SeparateFunc = w.separate
	return w
}

func (w *World) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b := arb.Shapes()
	w.batch.Start = append(w.batch.Start, contact.Pair{A: refOf(a), B: refOf(b)})
	return true
}

func (w *World) separate(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
	a, b := arb.Shapes()
	w.batch.End = append(w.batch.End, contact.Pair{A: refOf(a), B: refOf(b)})
}

func refOf(s *cp.Shape) contact.Ref {
	if ref, ok := s.UserData.(contact.Ref); ok {
		return ref
	}
	return contact.Ref{ID: -1, Tag: body.Tag{Kind: body.KindWall, Index: body.NoIndex}}
}

// Add registers a descriptor under id. Static descriptors become shapes on
// the space's static body; the single dynamic descriptor becomes the disc.
func (w *World) Add(id int, d body.Descriptor) error {
	ref := contact.Ref{ID: id, Tag: d.Tag}
	if !d.Static {
		return w.addBall(ref, d)
	}

	shapes, err := w.staticShapes(d)
	if err != nil {
		return fmt.Errorf("registering %s: %w", d.Label, err)
	}
	for _, s := range shapes {
		s.UserData = ref
		s.SetSensor(d.Sensor)
		w.space.AddShape(s)
		st := staticShape{shape: s, material: d.Material}
		w.statics = append(w.statics, st)
		if w.ball != nil {
			w.combine(st)
		}
	}
	return nil
}

func (w *World) staticShapes(d body.Descriptor) ([]*cp.Shape, error) {
	sb := w.space.StaticBody
	switch d.Shape {
	case body.ShapeCircle:
		if d.Radius <= 0 {
			return nil, fmt.Errorf("circle radius %v", d.Radius)
		}
		return []*cp.Shape{cp.NewCircle(sb, d.Radius, vec(d.Pos))}, nil

	case body.ShapeRect:
		if d.Width <= 0 || d.Height <= 0 {
			return nil, fmt.Errorf("rectangle size %vx%v", d.Width, d.Height)
		}
		r := chamferRadius(d.Width, d.Height, d.Chamfer)
		corners := geom.RectCorners(d.Pos, d.Width-2*r, d.Height-2*r, d.Angle)
		return []*cp.Shape{polygon(sb, corners, r)}, nil

	case body.ShapePolygon, body.ShapeCompound:
		var out []*cp.Shape
		for i, part := range d.Parts {
			if len(part) < 3 {
				return nil, fmt.Errorf("part %d has %d vertices", i, len(part))
			}
			if geom.IsConvex(part) {
				out = append(out, polygon(sb, part, 0))
				continue
			}
			// concave outlines are registered as a closed chain of segments
			radius := d.Style.LineWidth / 2
			for j := range part {
				a, b := part[j], part[(j+1)%len(part)]
				out = append(out, cp.NewSegment(sb, vec(a), vec(b), radius))
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown shape type %d", d.Shape)
}

// chamferRadius shrinks the chamfer so the rounded box keeps a core.
func chamferRadius(w, h, chamfer float64) float64 {
	if chamfer <= 0 {
		return 0
	}
	return math.Min(chamfer, 0.45*math.Min(w, h))
}

func polygon(b *cp.Body, verts []geom.Vec, radius float64) *cp.Shape {
	cv := make([]cp.Vector, len(verts))
	for i, v := range verts {
		cv[i] = vec(v)
	}
	return cp.NewPolyShape(b, len(cv), cv, cp.NewTransformIdentity(), radius)
}

func (w *World) addBall(ref contact.Ref, d body.Descriptor) error {
	if w.ball != nil {
		return fmt.Errorf("registering %s: world already has a disc", d.Label)
	}
	if d.Shape != body.ShapeCircle || d.Radius <= 0 {
		return fmt.Errorf("registering %s: disc must be a circle", d.Label)
	}
	mass := d.Material.Mass
	if mass <= 0 {
		mass = 1
	}

	b := w.space.AddBody(cp.NewBody(mass, cp.MomentForCircle(mass, 0, d.Radius, cp.Vector{})))
	b.SetPosition(vec(d.Pos))

	s := w.space.AddShape(cp.NewCircle(b, d.Radius, cp.Vector{}))
	s.SetCollisionType(ballCollision)
	s.UserData = ref

	w.ball = b
	w.ballShape = s
	w.ballRef = ref
	w.ballStart = vec(d.Pos)
	w.ballBounce = d.Material.Restitution
	w.ballFriction = d.Material.Friction
	w.combineMaterials()
	return nil
}

// combineMaterials makes Chipmunk's product rule behave like
// max(restitution) and min(friction): the disc carries 1 and each static
// shape carries the already-combined value.
func (w *World) combineMaterials() {
	w.ballShape.SetElasticity(1)
	w.ballShape.SetFriction(1)
	for _, st := range w.statics {
		w.combine(st)
	}
}

func (w *World) combine(st staticShape) {
	st.shape.SetElasticity(math.Max(st.material.Restitution, w.ballBounce))
	st.shape.SetFriction(math.Min(st.material.Friction, w.ballFriction))
}

// Step advances the simulation by dt and returns the collisions reported
// during it. The batch is reused by the next Step.
func (w *World) Step(dt float64) *contact.Batch {
	w.batch.Reset()
	h := dt / float64(w.cfg.Substeps)
	for i := 0; i < w.cfg.Substeps; i++ {
		w.space.Step(h)
	}
	return &w.batch
}

// HasBall reports whether a disc has been registered.
func (w *World) HasBall() bool {
	return w.ball != nil
}

// BallRef returns the disc's registration.
func (w *World) BallRef() contact.Ref {
	return w.ballRef
}

// BallPosition returns the disc centre.
func (w *World) BallPosition() geom.Vec {
	if w.ball == nil {
		return geom.Vec{}
	}
	return fromVec(w.ball.Position())
}

// BallAngle returns the disc rotation in radians.
func (w *World) BallAngle() float64 {
	if w.ball == nil {
		return 0
	}
	return w.ball.Angle()
}

// BallSpeed returns the disc speed.
func (w *World) BallSpeed() float64 {
	if w.ball == nil {
		return 0
	}
	return w.ball.Velocity().Length()
}

// Launch sets the disc's velocity straight up at speed.
func (w *World) Launch(speed float64) {
	if w.ball == nil {
		return
	}
	w.ball.SetVelocityVector(cp.Vector{X: 0, Y: -speed})
}

// Respawn puts the disc back at its start position at rest.
func (w *World) Respawn() {
	w.Place(fromVec(w.ballStart))
}

// Place moves the disc to p at rest.
func (w *World) Place(p geom.Vec) {
	if w.ball == nil {
		return
	}
	w.Release()
	w.ball.SetPosition(vec(p))
	w.ball.SetVelocityVector(cp.Vector{})
	w.ball.SetAngularVelocity(0)
}

// Grab attaches a drag constraint to the disc if p is on it.
func (w *World) Grab(p geom.Vec) bool {
	if w.ball == nil || w.mouseJoint != nil {
		return false
	}
	info := w.space.PointQueryNearest(vec(p), grabRadius, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil || info.Shape.Body() != w.ball {
		return false
	}

	w.mouseBody.SetPosition(vec(p))
	w.mouseBody.SetVelocityVector(cp.Vector{})

	// outside the shape, anchor on its surface
	nearest := vec(p)
	if info.Distance > 0 {
		nearest = info.Point
	}
	joint := cp.NewPivotJoint2(w.mouseBody, w.ball, cp.Vector{}, w.ball.WorldToLocal(nearest))
	joint.SetMaxForce(dragMaxForce)
	joint.SetErrorBias(math.Pow(1-dragErrorBias, 60))
	w.mouseJoint = w.space.AddConstraint(joint)
	return true
}

// Drag moves the drag anchor to p. dt is the time since the last Drag.
func (w *World) Drag(p geom.Vec, dt float64) {
	if w.mouseJoint == nil || dt <= 0 {
		return
	}
	target := vec(p)
	w.mouseBody.SetVelocityVector(target.Sub(w.mouseBody.Position()).Mult(1 / dt))
	w.mouseBody.SetPosition(target)
}

// Dragging reports whether the disc is held.
func (w *World) Dragging() bool {
	return w.mouseJoint != nil
}

// Release drops the drag constraint, if any.
func (w *World) Release() {
	if w.mouseJoint == nil {
		return
	}
	w.space.RemoveConstraint(w.mouseJoint)
	w.mouseJoint = nil
}

// ShapeCount returns the number of registered shapes, including the disc.
func (w *World) ShapeCount() int {
	n := len(w.statics)
	if w.ball != nil {
		n++
	}
	return n
}

func vec(v geom.Vec) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromVec(v cp.Vector) geom.Vec {
	return geom.Vec{X: v.X, Y: v.Y}
}
