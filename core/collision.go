package core

// CircleCollision tests two entities in two phases: a cheap
// bounding-square rejection on the outer radii, then a circle distance
// test on the inner radii. Symmetric in its arguments.
func CircleCollision(a, b *Data) bool {
	dx := a.Position.X - b.Position.X
	dy := a.Position.Y - b.Position.Y

	outer := a.RadiusOuter + b.RadiusOuter
	if dx > outer || dx < -outer || dy > outer || dy < -outer {
		return false
	}

	inner := a.RadiusInner + b.RadiusInner
	return dx*dx+dy*dy < inner*inner
}
