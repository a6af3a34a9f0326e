package core

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestNewDataRadii(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantOuter     float64
		wantInner     float64
	}{
		{"square", 1.0, 1.0, math.Sqrt2 / 2, 0.5},
		{"wide", 0.3, 0.1, math.Hypot(0.15, 0.05), 0.05},
		{"tall", 0.8, 2.0, math.Hypot(0.4, 1.0), 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewData(0, 0, tt.width, tt.height)
			if !almostEqual(d.RadiusOuter, tt.wantOuter) {
				t.Errorf("RadiusOuter = %v, want %v", d.RadiusOuter, tt.wantOuter)
			}
			if !almostEqual(d.RadiusInner, tt.wantInner) {
				t.Errorf("RadiusInner = %v, want %v", d.RadiusInner, tt.wantInner)
			}
		})
	}
}

func TestRadiiFixedUnderTurn(t *testing.T) {
	d := NewData(1, 2, 0.4, 0.25)
	outer, inner := d.RadiusOuter, d.RadiusInner

	for _, angle := range []float64{0.3, math.Pi / 2, -2.1, 5 * math.Pi} {
		d.Turn(angle)
		if d.RadiusOuter != outer || d.RadiusInner != inner {
			t.Fatalf("Radii changed after Turn(%v): outer %v→%v inner %v→%v",
				angle, outer, d.RadiusOuter, inner, d.RadiusInner)
		}
	}
}

func TestTurnUpdatesDirection(t *testing.T) {
	tests := []struct {
		angle        float64
		wantX, wantY float64
	}{
		{0, 1, 0},
		{math.Pi / 2, 0, 1},
		{math.Pi, -1, 0},
		{-math.Pi / 2, 0, -1},
	}

	for _, tt := range tests {
		d := NewData(0, 0, 1, 1)
		d.Turn(tt.angle)
		if !almostEqual(d.Direction.X, tt.wantX) || !almostEqual(d.Direction.Y, tt.wantY) {
			t.Errorf("Direction after Turn(%v) = (%v, %v), want (%v, %v)",
				tt.angle, d.Direction.X, d.Direction.Y, tt.wantX, tt.wantY)
		}
	}
}

func TestForwardMovesAlongDirection(t *testing.T) {
	d := NewData(1, 1, 1, 1)

	d.Forward(2)
	if !almostEqual(d.Position.X, 3) || !almostEqual(d.Position.Y, 1) {
		t.Fatalf("Expected (3, 1) after forward along +x, got (%v, %v)", d.Position.X, d.Position.Y)
	}

	d.Turn(math.Pi / 2)
	d.Forward(3)
	if !almostEqual(d.Position.X, 3) || !almostEqual(d.Position.Y, 4) {
		t.Fatalf("Expected (3, 4) after forward along +y, got (%v, %v)", d.Position.X, d.Position.Y)
	}
}

func TestPoseFollowsPosition(t *testing.T) {
	d := NewData(0, 0, 1, 1)

	d.SetPosition(2, -3)
	if d.Pose.TX != 2 || d.Pose.TY != -3 {
		t.Errorf("Pose translation after SetPosition = (%v, %v), want (2, -3)", d.Pose.TX, d.Pose.TY)
	}

	d.MovePosition(0.5, 1)
	if d.Pose.TX != 2.5 || d.Pose.TY != -2 {
		t.Errorf("Pose translation after MovePosition = (%v, %v), want (2.5, -2)", d.Pose.TX, d.Pose.TY)
	}

	d.Forward(1)
	if !almostEqual(d.Pose.TX, 3.5) || !almostEqual(d.Pose.TY, -2) {
		t.Errorf("Pose translation after Forward = (%v, %v), want (3.5, -2)", d.Pose.TX, d.Pose.TY)
	}
}

func TestTurnWithoutPoseSyncLeavesPose(t *testing.T) {
	d := NewData(1, 1, 2, 1)
	before := d.Pose

	d.TurnWithoutPoseSync(math.Pi / 2)

	if d.Pose != before {
		t.Error("Expected pose unchanged by TurnWithoutPoseSync")
	}
	if !almostEqual(d.Direction.X, 0) || !almostEqual(d.Direction.Y, 1) {
		t.Errorf("Expected direction (0, 1), got (%v, %v)", d.Direction.X, d.Direction.Y)
	}

	// A regular turn afterwards resynchronizes everything.
	d.Turn(math.Pi / 2)
	if d.Pose == before {
		t.Error("Expected pose refresh from Turn")
	}
	if !almostEqual(d.Direction.X, -1) || !almostEqual(d.Direction.Y, 0) {
		t.Errorf("Expected direction (-1, 0), got (%v, %v)", d.Direction.X, d.Direction.Y)
	}
}

func TestStayAtAreaClamps(t *testing.T) {
	area := CenteredArea(5, 4)

	tests := []struct {
		name         string
		x, y         float64
		wantClamped  bool
		wantX, wantY float64
	}{
		{"inside", 1, 1, false, 1, 1},
		{"left", -7, 0, true, -5, 0},
		{"right", 6, 2, true, 5, 2},
		{"below", 0, -9, true, 0, -4},
		{"above", 0, 4.5, true, 0, 4},
		{"corner", 8, 8, true, 5, 4},
		{"on edge", 5, 4, false, 5, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewData(tt.x, tt.y, 1, 1)
			got := d.StayAtArea(area)
			if got != tt.wantClamped {
				t.Errorf("StayAtArea = %v, want %v", got, tt.wantClamped)
			}
			if !almostEqual(d.Position.X, tt.wantX) || !almostEqual(d.Position.Y, tt.wantY) {
				t.Errorf("Position = (%v, %v), want (%v, %v)", d.Position.X, d.Position.Y, tt.wantX, tt.wantY)
			}
			if d.Pose.TX != d.Position.X || d.Pose.TY != d.Position.Y {
				t.Error("Pose translation out of sync after StayAtArea")
			}
		})
	}
}

func TestOutsideArea(t *testing.T) {
	area := CenteredArea(5, 4).Grow(1)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 0, 0, false},
		{"inside padding", 5.5, 0, false},
		{"past x", 6.5, 0, true},
		{"past negative y", 0, -5.5, true},
		{"on boundary", 6, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewData(tt.x, tt.y, 0.3, 0.1)
			if got := d.OutsideArea(area); got != tt.want {
				t.Errorf("OutsideArea at (%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestAffineApply(t *testing.T) {
	d := NewData(10, 20, 2, 1)
	d.Turn(math.Pi / 2)

	// The unit-quad corner (0.5, 0) scales to (1, 0) and rotates to
	// (0, 1) before translation.
	x, y := d.Pose.Apply(0.5, 0)
	if !almostEqual(x, 10) || !almostEqual(y, 21) {
		t.Errorf("Apply(0.5, 0) = (%v, %v), want (10, 21)", x, y)
	}
}
