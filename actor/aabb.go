package actor

import "github.com/go-gl/mathgl/mgl64"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// Overlaps checks if two AABBs overlap on all three axes
func (a AABB) Overlaps(other AABB) bool {
	return a.OverlapsX(other) &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

// OverlapsX checks if the x intervals of two AABBs intersect, ignoring Y and Z.
// Touching edges count as overlapping.
func (a AABB) OverlapsX(other AABB) bool {
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X()
}

// Bounds holds the six faces of a box in world space
type Bounds struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
	Front  float64
	Back   float64
}

// AABB converts the bounds into min/max corners
func (b Bounds) AABB() AABB {
	return AABB{
		Min: mgl64.Vec3{b.Left, b.Bottom, b.Back},
		Max: mgl64.Vec3{b.Right, b.Top, b.Front},
	}
}
