// Package core holds the game-object base model shared by every
// simulated entity: the transform and collision record, the playfield
// rectangle, and the circle collision test.
package core

import "math"

// Vec is a 2D float vector, used for both positions and directions
type Vec struct {
	X, Y float64
}

// Affine is the render pose of an entity: the rotation and size of its
// unit quad composed into one transform, plus the translation. Columns
// are the images of the unit axes.
type Affine struct {
	XX, YX float64
	XY, YY float64
	TX, TY float64
}

// Apply transforms a point from entity space to world space
func (a *Affine) Apply(x, y float64) (float64, float64) {
	return a.XX*x + a.XY*y + a.TX, a.YX*x + a.YY*y + a.TY
}

// Data is the transform and collision record owned by each entity.
//
// RadiusOuter is the bounding circle of the rotated rectangle,
// RadiusInner the largest inscribed circle. Rotation never changes the
// rectangle dimensions, so both are computed once at construction.
//
// Pose must stay in sync with Position and Rotation whenever the
// renderer can observe it. Every mutation goes through a method that
// refreshes the pose; the single exception is TurnWithoutPoseSync.
type Data struct {
	Position  Vec
	Direction Vec
	Width     float64
	Height    float64
	Rotation  float64

	RadiusOuter float64
	RadiusInner float64

	Pose Affine
}

// NewData creates a record at the given position, facing positive x
func NewData(x, y, width, height float64) Data {
	d := Data{
		Position: Vec{X: x, Y: y},
		Width:    width,
		Height:   height,

		RadiusOuter: math.Hypot(width/2, height/2),
		RadiusInner: math.Min(width, height) / 2,
	}
	d.updateRotation()
	return d
}

// Forward moves the entity along its facing direction
func (d *Data) Forward(amount float64) {
	d.Position.X += d.Direction.X * amount
	d.Position.Y += d.Direction.Y * amount
	d.syncPosePosition()
}

// Turn rotates the entity and refreshes direction and pose
func (d *Data) Turn(angle float64) {
	d.Rotation += angle
	d.updateRotation()
}

// TurnWithoutPoseSync rotates the entity and refreshes its direction
// but leaves the pose alone. Used when a turn should steer spawn
// geometry without changing the visible orientation, like aiming
// particle headings.
func (d *Data) TurnWithoutPoseSync(angle float64) {
	d.Rotation += angle
	sin, cos := math.Sincos(d.Rotation)
	d.Direction = Vec{X: cos, Y: sin}
}

// SetPosition places the entity at the given point
func (d *Data) SetPosition(x, y float64) {
	d.Position = Vec{X: x, Y: y}
	d.syncPosePosition()
}

// MovePosition shifts the entity by the given amounts
func (d *Data) MovePosition(dx, dy float64) {
	d.Position.X += dx
	d.Position.Y += dy
	d.syncPosePosition()
}

// StayAtArea clamps the position into the area. Returns true if
// clamping occurred, which callers read as "hit the wall".
func (d *Data) StayAtArea(area Area) bool {
	clamped := false

	if d.Position.X < area.MinX {
		d.Position.X = area.MinX
		clamped = true
	} else if d.Position.X > area.MaxX {
		d.Position.X = area.MaxX
		clamped = true
	}

	if d.Position.Y < area.MinY {
		d.Position.Y = area.MinY
		clamped = true
	} else if d.Position.Y > area.MaxY {
		d.Position.Y = area.MaxY
		clamped = true
	}

	if clamped {
		d.syncPosePosition()
	}
	return clamped
}

// OutsideArea reports whether the entity's position left the area
func (d *Data) OutsideArea(area Area) bool {
	return area.Outside(d.Position)
}

func (d *Data) updateRotation() {
	sin, cos := math.Sincos(d.Rotation)
	d.Direction = Vec{X: cos, Y: sin}

	d.Pose = Affine{
		XX: d.Width * cos, YX: d.Width * sin,
		XY: -d.Height * sin, YY: d.Height * cos,
		TX: d.Position.X, TY: d.Position.Y,
	}
}

func (d *Data) syncPosePosition() {
	d.Pose.TX = d.Position.X
	d.Pose.TY = d.Position.Y
}
