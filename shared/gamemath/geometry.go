package gamemath

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports strict overlap; boxes that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// SegmentIntersectsRect reports whether the segment (x0,y0)-(x1,y1) touches r.
// Touching an edge counts as a hit so a cast starting exactly on a surface
// detects it.
func SegmentIntersectsRect(x0, y0, x1, y1 float64, r Rect) bool {
	tMin, tMax := 0.0, 1.0
	dx, dy := x1-x0, y1-y0

	if !clipAxis(x0, dx, r.X, r.Right(), &tMin, &tMax) {
		return false
	}
	return clipAxis(y0, dy, r.Y, r.Bottom(), &tMin, &tMax)
}

func clipAxis(p, d, lo, hi float64, tMin, tMax *float64) bool {
	if d == 0 {
		return p >= lo && p <= hi
	}
	t0 := (lo - p) / d
	t1 := (hi - p) / d
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	if t0 > *tMin {
		*tMin = t0
	}
	if t1 < *tMax {
		*tMax = t1
	}
	return *tMin <= *tMax
}
