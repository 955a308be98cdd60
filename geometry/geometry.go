// Package geometry provides the floating-point primitives used by the wire
// model: points, translation, and distance-to-segment math.
package geometry

import "math"

// Point represents a 2D coordinate in surface-local space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the sum of two points treated as vectors.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points treated as vectors.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Translate returns the point shifted by (dx, dy).
func (p Point) Translate(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// DistanceSquared returns the squared Euclidean distance to q.
func (p Point) DistanceSquared(q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance to q.
func (p Point) Distance(q Point) float64 {
	return math.Sqrt(p.DistanceSquared(q))
}

// ClosestPointOnSegment returns the point on the segment a-b nearest to p.
// The projection parameter is clamped to [0,1], so the result lies on the
// segment itself, not the infinite line through it. A zero-length segment
// collapses to a.
func ClosestPointOnSegment(a, b, p Point) Point {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return a
	}

	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return Point{X: a.X + t*dx, Y: a.Y + t*dy}
}

// DistanceToSegmentSquared returns the squared distance from p to the
// segment a-b.
func DistanceToSegmentSquared(a, b, p Point) float64 {
	return p.DistanceSquared(ClosestPointOnSegment(a, b, p))
}

// TranslateAll shifts every point in the slice by (dx, dy) in place,
// preserving order.
func TranslateAll(points []Point, dx, dy float64) {
	for i := range points {
		points[i].X += dx
		points[i].Y += dy
	}
}

// BoundingBox returns the min and max corners of a set of points. With no
// points both corners are the origin.
func BoundingBox(points []Point) (min, max Point) {
	if len(points) == 0 {
		return Point{}, Point{}
	}
	min, max = points[0], points[0]
	for _, p := range points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}
