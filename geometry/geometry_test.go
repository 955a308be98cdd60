package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosestPointOnSegment(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 10, Y: 0}

	// Projection falls inside the segment.
	got := ClosestPointOnSegment(a, b, Point{X: 3, Y: 3})
	assert.Equal(t, Point{X: 3, Y: 0}, got)

	// Projection clamps to the start (t <= 0).
	got = ClosestPointOnSegment(a, b, Point{X: -5, Y: 2})
	assert.Equal(t, a, got)

	// Projection clamps to the end (t >= 1).
	got = ClosestPointOnSegment(a, b, Point{X: 15, Y: -2})
	assert.Equal(t, b, got)

	// Zero-length segment collapses to the single point.
	got = ClosestPointOnSegment(a, a, Point{X: 7, Y: 7})
	assert.Equal(t, a, got)
}

func TestDistanceToSegmentSquared(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 10, Y: 0}

	// Point exactly on the segment.
	assert.Equal(t, 0.0, DistanceToSegmentSquared(a, b, Point{X: 5, Y: 0}))

	// Perpendicular distance 3.
	assert.Equal(t, 9.0, DistanceToSegmentSquared(a, b, Point{X: 3, Y: 3}))

	// Beyond the end: distance measured to the endpoint, not the line.
	assert.Equal(t, 25.0, DistanceToSegmentSquared(a, b, Point{X: 13, Y: 4}))
}

func TestTranslateAll(t *testing.T) {
	pts := []Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	TranslateAll(pts, 10, -1)
	assert.Equal(t, []Point{{X: 11, Y: 0}, {X: 12, Y: 1}, {X: 13, Y: 2}}, pts)
}

func TestBoundingBox(t *testing.T) {
	min, max := BoundingBox([]Point{{X: 3, Y: -1}, {X: -2, Y: 5}, {X: 0, Y: 0}})
	assert.Equal(t, Point{X: -2, Y: -1}, min)
	assert.Equal(t, Point{X: 3, Y: 5}, max)

	min, max = BoundingBox(nil)
	assert.Equal(t, Point{}, min)
	assert.Equal(t, Point{}, max)
}
