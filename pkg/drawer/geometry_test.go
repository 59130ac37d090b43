package drawer

import "testing"

var quarters = []SnapPoint{Fraction(0.25), Fraction(0.5), Fraction(0.75), Fraction(1)}

func TestSnapPointY(t *testing.T) {
	tests := []struct {
		name   string
		points []SnapPoint
		index  int
		v      float64
		dir    Direction
		want   float64
	}{
		{"bottom quarter", quarters, 0, 800, DirectionBottom, 600},
		{"bottom half", quarters, 1, 800, DirectionBottom, 400},
		{"bottom three quarters", quarters, 2, 800, DirectionBottom, 200},
		{"bottom full clamps", quarters, 3, 800, DirectionBottom, MobileThreshold},
		{"top quarter", quarters, 0, 800, DirectionTop, 200},
		{"top full clamps", quarters, 3, 800, DirectionTop, 720},
		{"pixels", []SnapPoint{Px(300), Fraction(1)}, 0, 800, DirectionBottom, 500},
		{"pixels last unclamped", []SnapPoint{Px(300)}, 0, 800, DirectionBottom, 500},
		{"pixels last clamps", []SnapPoint{Px(1000)}, 0, 800, DirectionBottom, 80},
		{"pixels beyond viewport not last", []SnapPoint{Px(1000), Fraction(1)}, 0, 800, DirectionBottom, -200},
		{"last at exact threshold", []SnapPoint{Px(720)}, 0, 800, DirectionBottom, 80},
		{"last just below threshold", []SnapPoint{Px(719)}, 0, 800, DirectionBottom, 81},
		{"small viewport", []SnapPoint{Fraction(0.5)}, 0, 100, DirectionBottom, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SnapPointY(tt.points, tt.index, tt.v, tt.dir); got != tt.want {
				t.Errorf("SnapPointY = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSnapPointYIsNonIncreasingForBottom(t *testing.T) {
	for _, v := range []float64{480, 800, 1080, 2000} {
		prev := v + 1
		for i := range quarters {
			y := SnapPointY(quarters, i, v, DirectionBottom)
			if y > prev {
				t.Errorf("v=%v: Y(%d)=%v exceeds Y(%d)=%v", v, i, y, i-1, prev)
			}
			prev = y
		}
		if last := SnapPointY(quarters, 3, v, DirectionBottom); last != MobileThreshold {
			t.Errorf("v=%v: fully open Y = %v, want %v", v, last, MobileThreshold)
		}
	}
}

func TestGeometryPositions(t *testing.T) {
	bottom := Geometry{Points: quarters, Viewport: 800}
	top := Geometry{Points: quarters, Viewport: 800, Direction: DirectionTop}
	binary := Geometry{Viewport: 800}

	checks := []struct {
		name      string
		got, want float64
	}{
		{"bottom closed", bottom.ClosedY(), 800},
		{"bottom open", bottom.OpenY(), 80},
		{"bottom offset", bottom.Offset(400), 400},
		{"bottom closed offset", bottom.Offset(bottom.ClosedY()), 800},
		{"top closed", top.ClosedY(), 0},
		{"top open", top.OpenY(), 720},
		{"top offset", top.Offset(200), -600},
		{"top closed offset", top.Offset(top.ClosedY()), -800},
		{"binary open", binary.OpenY(), 0},
		{"binary snap", binary.SnapY(NoSnapPoint), 0},
		{"clamped high index", bottom.SnapY(9), 80},
		{"clamped low index", bottom.SnapY(-3), 600},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	if !bottom.MoreClosed(700, 600) || bottom.MoreClosed(500, 600) {
		t.Error("bottom MoreClosed should follow increasing Y")
	}
	if !top.MoreClosed(100, 200) || top.MoreClosed(300, 200) {
		t.Error("top MoreClosed should follow decreasing Y")
	}
	if got := top.Closedness(620); got != 100 {
		t.Errorf("top Closedness(620) = %v, want 100", got)
	}
}
