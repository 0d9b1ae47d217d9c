package geom

import "testing"

func TestAABBOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b AABB
		want bool
	}{
		{"separate", AABB{0, 0, 10, 10}, AABB{20, 0, 10, 10}, false},
		{"overlapping", AABB{0, 0, 10, 10}, AABB{5, 5, 10, 10}, true},
		{"touching_edge", AABB{0, 0, 10, 10}, AABB{10, 0, 10, 10}, false},
		{"touching_corner", AABB{0, 0, 10, 10}, AABB{10, 10, 10, 10}, false},
		{"contained", AABB{0, 0, 10, 10}, AABB{2, 2, 4, 4}, true},
		{"zero_size", AABB{5, 5, 0, 0}, AABB{0, 0, 10, 10}, false},
		{"overlap_one_axis_only", AABB{0, 0, 10, 10}, AABB{5, 20, 10, 10}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Overlaps(c.b); got != c.want {
				t.Fatalf("a.Overlaps(b) = %v, want %v", got, c.want)
			}
			if got := c.b.Overlaps(c.a); got != c.want {
				t.Fatalf("b.Overlaps(a) = %v, want %v (asymmetric)", got, c.want)
			}
		})
	}
}

func TestAABBOverlapExtent(t *testing.T) {
	a := AABB{0, 0, 10, 10}
	b := AABB{6, 8, 10, 10}

	ext, ok := a.OverlapExtent(b)
	if !ok {
		t.Fatalf("expected overlap")
	}
	if ext.X != 4 || ext.Y != 2 {
		t.Fatalf("extent = %+v, want {4 2}", ext)
	}

	if _, ok := a.OverlapExtent(AABB{20, 20, 5, 5}); ok {
		t.Fatalf("expected no overlap extent for disjoint boxes")
	}
	if _, ok := a.OverlapExtent(AABB{10, 0, 5, 5}); ok {
		t.Fatalf("touching boxes must not report an extent")
	}
}

func TestCircleOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b Circle
		want bool
	}{
		{"far_apart", Circle{0, 0, 2}, Circle{10, 0, 2}, false},
		{"exactly_touching", Circle{0, 0, 5}, Circle{10, 0, 5}, false},
		{"barely_overlapping", Circle{0, 0, 5}, Circle{10, 0, 5.01}, true},
		{"concentric", Circle{3, 3, 1}, Circle{3, 3, 4}, true},
		{"zero_radius_apart", Circle{0, 0, 0}, Circle{1, 0, 0}, false},
		{"zero_radius_same_point", Circle{2, 2, 0}, Circle{2, 2, 0}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Overlaps(c.b); got != c.want {
				t.Fatalf("a.Overlaps(b) = %v, want %v", got, c.want)
			}
			if got := c.b.Overlaps(c.a); got != c.want {
				t.Fatalf("b.Overlaps(a) = %v, want %v (asymmetric)", got, c.want)
			}
		})
	}
}

func TestCircleOverlapsAABB(t *testing.T) {
	box := AABB{10, 10, 20, 20}

	cases := []struct {
		name string
		c    Circle
		want bool
	}{
		{"center_inside", Circle{20, 20, 1}, true},
		{"near_edge", Circle{5, 20, 6}, true},
		{"touching_edge", Circle{5, 20, 5}, false},
		{"near_corner", Circle{8, 8, 3}, true},
		{"outside_corner_diagonal", Circle{7, 7, 4}, false},
		{"far_away", Circle{100, 100, 5}, false},
		{"zero_radius_inside", Circle{20, 20, 0}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.c.OverlapsAABB(box); got != c.want {
				t.Fatalf("OverlapsAABB = %v, want %v", got, c.want)
			}
		})
	}
}
