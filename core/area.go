package core

// Area is an axis-aligned rectangle in world units
type Area struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// NewArea creates an area from its x and y extents
func NewArea(minX, maxX, minY, maxY float64) Area {
	return Area{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
}

// CenteredArea creates an area symmetric around the origin
func CenteredArea(halfWidth, halfHeight float64) Area {
	return Area{MinX: -halfWidth, MaxX: halfWidth, MinY: -halfHeight, MaxY: halfHeight}
}

// Grow returns the area expanded by pad on every side
func (a Area) Grow(pad float64) Area {
	return Area{MinX: a.MinX - pad, MaxX: a.MaxX + pad, MinY: a.MinY - pad, MaxY: a.MaxY + pad}
}

// Outside reports whether the point lies outside the area
func (a Area) Outside(p Vec) bool {
	if p.X < a.MinX || p.X > a.MaxX {
		return true
	}
	if p.Y < a.MinY || p.Y > a.MaxY {
		return true
	}
	return false
}
