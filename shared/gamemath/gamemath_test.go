package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentIntersectsRect(t *testing.T) {
	ground := Rect{X: 0, Y: 100, W: 200, H: 32}

	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
		want           bool
	}{
		{"downward cast from surface", 50, 100, 50, 103, true},
		{"downward cast above surface", 50, 90, 50, 99, false},
		{"cast past the right edge", 210, 100, 210, 110, false},
		{"horizontal cast into side", -10, 110, 5, 110, true},
		{"horizontal cast short of side", -20, 110, -1, 110, false},
		{"diagonal crossing corner", -5, 95, 5, 105, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SegmentIntersectsRect(tt.x0, tt.y0, tt.x1, tt.y1, ground))
		})
	}
}

func TestRectOverlapsIgnoresSharedEdges(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, a.Overlaps(Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.False(t, a.Overlaps(Rect{X: 10, Y: 0, W: 10, H: 10}))
}

func TestMoveTowards2(t *testing.T) {
	x, y := MoveTowards2(0, 0, 3, 4, 10)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)

	x, y = MoveTowards2(0, 0, 3, 4, 2.5)
	assert.InDelta(t, 1.5, x, 1e-9)
	assert.InDelta(t, 2.0, y, 1e-9)
}

func TestPingPong(t *testing.T) {
	assert.InDelta(t, 0.5, PingPong(0.5, 1), 1e-9)
	assert.InDelta(t, 0.5, PingPong(1.5, 1), 1e-9)
	assert.InDelta(t, 0.0, PingPong(2, 1), 1e-9)
	assert.Equal(t, 0.0, PingPong(3, 0))
}

func TestExpSmoothing(t *testing.T) {
	assert.Equal(t, 0.0, ExpSmoothing(10, 0))
	assert.InDelta(t, 1.0, ExpSmoothing(10, 100), 1e-9)
}
