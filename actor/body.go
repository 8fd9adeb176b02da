package actor

import "github.com/go-gl/mathgl/mgl64"

const (
	// DEFAULT_GRAVITY is the vertical acceleration applied once per frame (units/frame²)
	DEFAULT_GRAVITY = -0.005
	DEFAULT_COLOR   = "#00ff00"
)

// Body is an axis-aligned box moving in 3D space.
// It holds no rendering state: whatever draws the box reads Position, extents and Color.
type Body struct {
	// Center of the box
	Position mgl64.Vec3
	// Linear velocity (units/frame)
	Velocity mgl64.Vec3

	// Bounds are derived from Position and the extents by RecomputeBounds
	Bounds Bounds

	Gravity float64
	Color   string

	// width, height, depth; fixed at creation
	extents mgl64.Vec3
}

// NewBody creates a box with the given extents, color, velocity and center position.
// Degenerate extents are not checked.
func NewBody(width, height, depth float64, color string, velocity, position mgl64.Vec3) *Body {
	if color == "" {
		color = DEFAULT_COLOR
	}

	b := &Body{
		Position: position,
		Velocity: velocity,
		Gravity:  DEFAULT_GRAVITY,
		Color:    color,
		extents:  mgl64.Vec3{width, height, depth},
	}
	b.RecomputeBounds()

	return b
}

// RecomputeBounds derives the six faces from the current position and extents
func (b *Body) RecomputeBounds() {
	halfWidth := b.extents.X() / 2
	halfHeight := b.extents.Y() / 2
	halfDepth := b.extents.Z() / 2

	b.Bounds.Right = b.Position.X() + halfWidth
	b.Bounds.Left = b.Position.X() - halfWidth

	b.Bounds.Bottom = b.Position.Y() - halfHeight
	b.Bounds.Top = b.Position.Y() + halfHeight

	b.Bounds.Front = b.Position.Z() + halfDepth
	b.Bounds.Back = b.Position.Z() - halfDepth
}

// Reset moves the body to position, stops it and refreshes its bounds
func (b *Body) Reset(position mgl64.Vec3) {
	b.Position = position
	b.Velocity = mgl64.Vec3{0, 0, 0}
	b.RecomputeBounds()
}

// AABB returns the bounds as of the last RecomputeBounds
func (b *Body) AABB() AABB {
	return b.Bounds.AABB()
}

// Extents returns width, height and depth
func (b *Body) Extents() mgl64.Vec3 {
	return b.extents
}

// Width, Height and Depth return the size along X, Y and Z
func (b *Body) Width() float64  { return b.extents.X() }
func (b *Body) Height() float64 { return b.extents.Y() }
func (b *Body) Depth() float64  { return b.extents.Z() }
