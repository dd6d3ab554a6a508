package wang

import "testing"

func TestResolvePaintTarget(t *testing.T) {
	cases := []struct {
		name     string
		wx, wy   float64
		tileSize float64
		mode     Mode
		want     PaintTarget
	}{
		{"corner_low", 0.2, 0.2, 1, ModeCorner, PaintTarget{TargetCorner, 0, 0}},
		{"corner_high", 0.7, 0.7, 1, ModeCorner, PaintTarget{TargetCorner, 1, 1}},
		{"corner_mixed_axes", 0.7, 0.2, 1, ModeCorner, PaintTarget{TargetCorner, 1, 0}},
		{"corner_second_tile", 1.6, 2.4, 1, ModeCorner, PaintTarget{TargetCorner, 2, 2}},
		{"corner_negative_wraps", -0.2, -0.2, 1, ModeCorner, PaintTarget{TargetCorner, 0, 0}},
		{"corner_negative_clamps", -0.6, -0.6, 1, ModeCorner, PaintTarget{TargetCorner, 0, 0}},
		{"corner_scaled", 33, 65, 32, ModeCorner, PaintTarget{TargetCorner, 1, 2}},

		{"edge_horizontal_below", 0.2, 0.45, 1, ModeEdge, PaintTarget{TargetHorizontalEdge, 0, 0}},
		{"edge_horizontal_above", 0.2, 0.55, 1, ModeEdge, PaintTarget{TargetHorizontalEdge, 0, 1}},
		{"edge_vertical_right", 0.55, 0.2, 1, ModeEdge, PaintTarget{TargetVerticalEdge, 1, 0}},
		{"edge_vertical_left", 0.45, 0.2, 1, ModeEdge, PaintTarget{TargetVerticalEdge, 0, 0}},

		{"mixed_corner_zone", 0.1, 0.1, 1, ModeMixed, PaintTarget{TargetCorner, 0, 0}},
		{"mixed_corner_zone_high", 0.9, 0.9, 1, ModeMixed, PaintTarget{TargetCorner, 1, 1}},
		{"mixed_bottom_edge", 0.5, 0.1, 1, ModeMixed, PaintTarget{TargetHorizontalEdge, 0, 0}},
		{"mixed_top_edge", 0.5, 0.9, 1, ModeMixed, PaintTarget{TargetHorizontalEdge, 0, 1}},
		{"mixed_left_edge", 0.1, 0.5, 1, ModeMixed, PaintTarget{TargetVerticalEdge, 0, 0}},
		{"mixed_right_edge", 0.9, 0.5, 1, ModeMixed, PaintTarget{TargetVerticalEdge, 1, 0}},
		{"mixed_center_low", 0.4, 0.4, 1, ModeMixed, PaintTarget{TargetCorner, 0, 0}},
		{"mixed_center_high", 0.6, 0.6, 1, ModeMixed, PaintTarget{TargetCorner, 1, 1}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ResolvePaintTarget(c.wx, c.wy, c.tileSize, c.mode)
			if got != c.want {
				t.Fatalf("ResolvePaintTarget(%g, %g) = %+v, want %+v", c.wx, c.wy, got, c.want)
			}
		})
	}
}

func TestFract(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0.25, 0.25},
		{3.5, 0.5},
		{-0.25, 0.75},
		{-3.0, 0.0},
	}
	for _, c := range cases {
		if got := fract(c.in); got != c.want {
			t.Fatalf("fract(%g) = %g, want %g", c.in, got, c.want)
		}
	}
}
