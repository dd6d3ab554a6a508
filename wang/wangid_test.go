package wang

import "testing"

func TestPositionHelpers(t *testing.T) {
	cases := []struct {
		name     string
		fn       func(int) int
		in, want int
	}{
		{"opposite_top", OppositeIndex, Top, Bottom},
		{"opposite_topright", OppositeIndex, TopRight, BottomLeft},
		{"opposite_left", OppositeIndex, Left, Right},
		{"opposite_wraps", OppositeIndex, 9, 5},
		{"next_wraps", NextIndex, TopLeft, Top},
		{"next_simple", NextIndex, Right, BottomRight},
		{"prev_wraps", PrevIndex, Top, TopLeft},
		{"prev_simple", PrevIndex, Bottom, BottomRight},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.fn(c.in); got != c.want {
				t.Fatalf("got %d, want %d", got, c.want)
			}
		})
	}
}

func TestIsCorner(t *testing.T) {
	for i := 0; i < 8; i++ {
		want := i%2 == 1
		if got := IsCorner(i); got != want {
			t.Fatalf("IsCorner(%d) = %v, want %v", i, got, want)
		}
	}
	if !IsCorner(-7) {
		t.Fatalf("IsCorner should wrap negative indices")
	}
}

func TestWangIDColors(t *testing.T) {
	var w WangID
	if w.HasAnyTerrain() {
		t.Fatalf("zero WangID should be the wildcard")
	}

	w.SetColor(Right, 3)
	if got := w.ColorAt(Right); got != 3 {
		t.Fatalf("ColorAt(Right) = %d, want 3", got)
	}
	if got := w.ColorAt(Right + 8); got != 3 {
		t.Fatalf("indices should wrap mod 8, got %d", got)
	}
	if !w.HasAnyTerrain() {
		t.Fatalf("expected terrain after SetColor")
	}

	f := Filled(2)
	for i := 0; i < 8; i++ {
		if f.ColorAt(i) != 2 {
			t.Fatalf("Filled: position %d = %d, want 2", i, f.ColorAt(i))
		}
	}
}

func TestCellConstraintPrecedence(t *testing.T) {
	t.Run("preference_then_constraint", func(t *testing.T) {
		var c CellInfo
		c.SetPreference(Top, 1)
		c.SetConstraint(Top, 2)
		if c.Desired[Top] != 2 || !c.Mask[Top] {
			t.Fatalf("constraint should win: got color %d mask %v", c.Desired[Top], c.Mask[Top])
		}
	})

	t.Run("constraint_then_preference", func(t *testing.T) {
		var c CellInfo
		c.SetConstraint(Top, 2)
		c.SetPreference(Top, 1)
		if c.Desired[Top] != 2 || !c.Mask[Top] {
			t.Fatalf("preference must not override a constraint: got color %d mask %v", c.Desired[Top], c.Mask[Top])
		}
	})

	t.Run("preference_on_free_position", func(t *testing.T) {
		var c CellInfo
		c.SetPreference(Left, 3)
		if c.Desired[Left] != 3 || c.Mask[Left] {
			t.Fatalf("preference should set color without masking: got color %d mask %v", c.Desired[Left], c.Mask[Left])
		}
	})
}

func TestModeTables(t *testing.T) {
	cases := []struct {
		mode        Mode
		activeWant  []int
		slotsWant   []int
		numSlotWant int
	}{
		{ModeCorner, []int{1, 3, 5, 7}, []int{7, 1, 5, 3}, 4},
		{ModeEdge, []int{0, 2, 4, 6}, []int{0, 2, 4, 6}, 4},
		{ModeMixed, []int{0, 1, 2, 3, 4, 5, 6, 7}, []int{7, 0, 1, 2, 3, 4, 5, 6}, 8},
	}

	for _, c := range cases {
		t.Run(c.mode.String(), func(t *testing.T) {
			if got := c.mode.ActivePositions(); !equalInts(got, c.activeWant) {
				t.Fatalf("ActivePositions = %v, want %v", got, c.activeWant)
			}
			if got := c.mode.SlotPositions(); !equalInts(got, c.slotsWant) {
				t.Fatalf("SlotPositions = %v, want %v", got, c.slotsWant)
			}
			if got := c.mode.NumSlots(); got != c.numSlotWant {
				t.Fatalf("NumSlots = %d, want %d", got, c.numSlotWant)
			}
		})
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
