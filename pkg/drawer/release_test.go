package drawer

import "testing"

func TestResolveRelease(t *testing.T) {
	bottom := Geometry{Points: quarters, Viewport: 800}
	top := Geometry{Points: quarters, Viewport: 800, Direction: DirectionTop}

	tests := []struct {
		name       string
		g          Geometry
		active     int
		finalY     float64
		velocity   float64
		sequential bool
		wantTarget int
		wantClose  bool
	}{
		{name: "nearest", g: bottom, active: 1, finalY: 250, velocity: 0.1, wantTarget: 2},
		{name: "nearest stays", g: bottom, active: 1, finalY: 390, wantTarget: 1},
		{name: "tie goes low", g: bottom, active: 1, finalY: 500, wantTarget: 0},
		{name: "fling open", g: bottom, active: 1, finalY: 390, velocity: -0.5, wantTarget: 2},
		{name: "fling closed", g: bottom, active: 1, finalY: 390, velocity: 0.5, wantTarget: 0},
		{name: "fling past last", g: bottom, active: 3, finalY: 60, velocity: -2, wantTarget: 3},
		{name: "fling closed from first stays", g: bottom, active: 0, finalY: 590, velocity: 0.5, wantTarget: 0},
		{name: "velocity at threshold ignored", g: bottom, active: 1, finalY: 390, velocity: -0.4, wantTarget: 1},
		{name: "sequential ignores velocity", g: bottom, active: 1, finalY: 390, velocity: -2, sequential: true, wantTarget: 1},
		{name: "close from first", g: bottom, active: 0, finalY: 650, velocity: -1, wantTarget: 0, wantClose: true},
		{name: "first at rest does not close", g: bottom, active: 0, finalY: 600, wantTarget: 0},
		{name: "closed-ward from second snaps", g: bottom, active: 1, finalY: 700, wantTarget: 0},
		{name: "top close", g: top, active: 0, finalY: 150, wantTarget: 0, wantClose: true},
		{name: "top nearest", g: top, active: 0, finalY: 250, wantTarget: 0},
		{name: "top fling open", g: top, active: 1, finalY: 410, velocity: -0.8, wantTarget: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, closing := ResolveRelease(tt.g, tt.active, tt.finalY, tt.velocity, tt.sequential, DefaultCloseThreshold)
			if target != tt.wantTarget || closing != tt.wantClose {
				t.Errorf("ResolveRelease = (%d, %v), want (%d, %v)", target, closing, tt.wantTarget, tt.wantClose)
			}
		})
	}
}

func TestResolveReleaseWithoutSnapPoints(t *testing.T) {
	g := Geometry{Viewport: 800}
	tests := []struct {
		finalY, velocity float64
		wantClose        bool
	}{
		{finalY: 150, wantClose: false},
		{finalY: 200, wantClose: false},
		{finalY: 250, wantClose: true},
		{finalY: 50, velocity: 0.5, wantClose: true},
		{finalY: 250, velocity: -0.5, wantClose: true},
		{finalY: 50, velocity: -0.5, wantClose: false},
	}
	for _, tt := range tests {
		target, closing := ResolveRelease(g, NoSnapPoint, tt.finalY, tt.velocity, false, DefaultCloseThreshold)
		if target != NoSnapPoint {
			t.Errorf("target = %d, want NoSnapPoint", target)
		}
		if closing != tt.wantClose {
			t.Errorf("finalY=%v velocity=%v: close = %v, want %v", tt.finalY, tt.velocity, closing, tt.wantClose)
		}
	}
}

func TestNearestSnapScansEveryPoint(t *testing.T) {
	g := Geometry{Points: quarters, Viewport: 800}
	for i := range quarters {
		if got := NearestSnap(g, g.SnapY(i)); got != i {
			t.Errorf("NearestSnap(Y(%d)) = %d", i, got)
		}
	}
	if got := NearestSnap(g, -500); got != 3 {
		t.Errorf("NearestSnap far open = %d, want 3", got)
	}
	if got := NearestSnap(g, 5000); got != 0 {
		t.Errorf("NearestSnap far closed = %d, want 0", got)
	}
}
