package actor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// =============================================================================
// AABB Overlap Tests
// =============================================================================

func TestAABBOverlaps(t *testing.T) {
	tests := []struct {
		name          string
		aabb1         AABB
		aabb2         AABB
		shouldOverlap bool
	}{
		{
			name:          "Separated on X axis",
			aabb1:         AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			aabb2:         AABB{Min: mgl64.Vec3{2, 0, 0}, Max: mgl64.Vec3{3, 1, 1}},
			shouldOverlap: false,
		},
		{
			name:          "Separated on Y axis",
			aabb1:         AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			aabb2:         AABB{Min: mgl64.Vec3{0, -2, 0}, Max: mgl64.Vec3{1, -1, 1}},
			shouldOverlap: false,
		},
		{
			name:          "Separated on Z axis only",
			aabb1:         AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			aabb2:         AABB{Min: mgl64.Vec3{0, 0, 5}, Max: mgl64.Vec3{1, 1, 6}},
			shouldOverlap: false,
		},
		{
			name:          "Partial overlap on all axes",
			aabb1:         AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{2, 2, 2}},
			aabb2:         AABB{Min: mgl64.Vec3{1, 1, 1}, Max: mgl64.Vec3{3, 3, 3}},
			shouldOverlap: true,
		},
		{
			name:          "Containment",
			aabb1:         AABB{Min: mgl64.Vec3{-2.5, -2.25, -5}, Max: mgl64.Vec3{2.5, -1.75, 5}},
			aabb2:         AABB{Min: mgl64.Vec3{-0.5, -2, -0.5}, Max: mgl64.Vec3{0.5, -1.8, 0.5}},
			shouldOverlap: true,
		},
		{
			name:          "Face touching",
			aabb1:         AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			aabb2:         AABB{Min: mgl64.Vec3{0, 1, 0}, Max: mgl64.Vec3{1, 2, 1}},
			shouldOverlap: true, // Touching faces count as overlapping
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.aabb1.Overlaps(tt.aabb2); result != tt.shouldOverlap {
				t.Errorf("Expected overlap=%v, got %v", tt.shouldOverlap, result)
			}
			// Test symmetry
			if result := tt.aabb2.Overlaps(tt.aabb1); result != tt.shouldOverlap {
				t.Errorf("Expected overlap=%v, got %v (symmetry test)", tt.shouldOverlap, result)
			}
		})
	}
}

func TestAABBOverlapsX(t *testing.T) {
	platform := AABB{Min: mgl64.Vec3{-2.5, -2.25, -5}, Max: mgl64.Vec3{2.5, -1.75, 5}}

	tests := []struct {
		name     string
		box      AABB
		expected bool
	}{
		{"Inside", AABB{Min: mgl64.Vec3{-0.5, -0.5, -0.5}, Max: mgl64.Vec3{0.5, 0.5, 0.5}}, true},
		{"Right edge touching", AABB{Min: mgl64.Vec3{2.5, 0, 0}, Max: mgl64.Vec3{3.5, 1, 1}}, true},
		{"Left edge touching", AABB{Min: mgl64.Vec3{-3.5, 0, 0}, Max: mgl64.Vec3{-2.5, 1, 1}}, true},
		{"Past right edge", AABB{Min: mgl64.Vec3{2.51, 0, 0}, Max: mgl64.Vec3{3.51, 1, 1}}, false},
		{"Past left edge", AABB{Min: mgl64.Vec3{-3.51, 0, 0}, Max: mgl64.Vec3{-2.51, 1, 1}}, false},
		{"Off in depth only", AABB{Min: mgl64.Vec3{-0.5, -0.5, 20}, Max: mgl64.Vec3{0.5, 0.5, 21}}, true},
		{"Far below", AABB{Min: mgl64.Vec3{-0.5, -50, -0.5}, Max: mgl64.Vec3{0.5, -49, 0.5}}, true},
		{"Straddling", AABB{Min: mgl64.Vec3{-10, 0, 0}, Max: mgl64.Vec3{10, 1, 1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.box.OverlapsX(platform); result != tt.expected {
				t.Errorf("OverlapsX = %v, expected %v", result, tt.expected)
			}
			if result := platform.OverlapsX(tt.box); result != tt.expected {
				t.Errorf("OverlapsX = %v, expected %v (symmetry test)", result, tt.expected)
			}
		})
	}
}

// =============================================================================
// Bounds Tests
// =============================================================================

func TestBoundsAABB(t *testing.T) {
	bounds := Bounds{Left: -1, Right: 2, Top: 4, Bottom: 3, Front: 6, Back: -6}
	aabb := bounds.AABB()

	if aabb.Min != (mgl64.Vec3{-1, 3, -6}) {
		t.Errorf("Min = %v, want [-1 3 -6]", aabb.Min)
	}
	if aabb.Max != (mgl64.Vec3{2, 4, 6}) {
		t.Errorf("Max = %v, want [2 4 6]", aabb.Max)
	}
}
