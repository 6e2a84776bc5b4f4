package region

import "math"

// Surface bounds in normalized units
const (
	SurfaceMin = 0.0
	SurfaceMax = 100.0
)

// Clamp limits v to the surface range
func Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return SurfaceMin
	}
	return math.Max(SurfaceMin, math.Min(SurfaceMax, v))
}

// Clamp returns p with both axes limited to the surface range
func (p Point) Clamp() Point {
	return Point{X: Clamp(p.X), Y: Clamp(p.Y)}
}

// Normalize maps a raw pointer position on a surface with the given origin
// and size into 0-100 units. Values outside the surface map outside the range;
// a zero-sized axis maps to 0.
func Normalize(posX, posY, originX, originY, width, height float64) Point {
	return Point{
		X: normalizeAxis(posX, originX, width),
		Y: normalizeAxis(posY, originY, height),
	}
}

func normalizeAxis(pos, origin, size float64) float64 {
	if size <= 0 {
		return 0
	}
	return (pos - origin) / size * SurfaceMax
}

// Denormalize maps a surface point back to pixel space
func Denormalize(p Point, width, height float64) (float64, float64) {
	return p.X / SurfaceMax * width, p.Y / SurfaceMax * height
}

// Contains reports whether p lies inside the polygon using the even-odd rule.
// Polygons with fewer than three points contain nothing.
func Contains(points []Point, p Point) bool {
	n := len(points)
	if n < MinPoints {
		return false
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		a, b := points[i], points[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// NearestVertex returns the index of the vertex closest to p within radius
func NearestVertex(points []Point, p Point, radius float64) (int, bool) {
	best := -1
	bestDist := radius * radius
	for i, v := range points {
		dx, dy := v.X-p.X, v.Y-p.Y
		if d := dx*dx + dy*dy; d <= bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}
