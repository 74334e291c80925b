package zone

import (
	"errors"
	"math"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

const (
	minVertices = 3
	// epsilon absorbs float noise when a point lies on an edge.
	epsilon = 1e-9
)

var ErrPolygonIsNotConstructed = errors.New("Polygon must be created via NewPolygon constructor")

// Polygon is a simple closed polygon over geographic vertices.
// The closing edge from the last vertex back to the first is implicit.
// Longitude is treated as x and latitude as y on a plane, which is accurate
// enough for city-scale service areas.
type Polygon struct {
	vertices []kernel.GeoPoint
	guard    guard.ConstructorGuard
}

// NewPolygon validates a boundary and returns it as a Polygon.
//
// A trailing vertex equal to the first one is accepted and dropped, as are
// consecutive duplicates. The remaining ring must have at least three vertices,
// enclose a non-zero area and must not intersect itself. Any violation is an
// errs.InvalidGeometryError.
func NewPolygon(vertices []kernel.GeoPoint) (Polygon, error) {
	ring := make([]kernel.GeoPoint, 0, len(vertices))
	for i, v := range vertices {
		if err := v.Validate(); err != nil {
			return Polygon{}, errs.NewInvalidGeometryErrorWithCause("vertex is not a valid coordinate", err)
		}
		if i > 0 && v.IsEqual(ring[len(ring)-1]) {
			continue
		}
		ring = append(ring, v)
	}
	if len(ring) > 1 && ring[0].IsEqual(ring[len(ring)-1]) {
		ring = ring[:len(ring)-1]
	}

	if len(ring) < minVertices {
		return Polygon{}, errs.NewInvalidGeometryError("boundary needs at least 3 distinct vertices")
	}
	if math.Abs(signedArea(ring)) < epsilon {
		return Polygon{}, errs.NewInvalidGeometryError("boundary encloses no area")
	}
	if selfIntersects(ring) {
		return Polygon{}, errs.NewInvalidGeometryError("boundary is self-intersecting")
	}

	return Polygon{
		vertices: ring,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// PolygonFromPairs builds a polygon from [lat, lng] pairs, the shape in which
// boundaries are stored and exchanged.
func PolygonFromPairs(pairs [][2]float64) (Polygon, error) {
	vertices := make([]kernel.GeoPoint, 0, len(pairs))
	for _, pair := range pairs {
		p, err := kernel.NewGeoPoint(pair[0], pair[1])
		if err != nil {
			return Polygon{}, errs.NewInvalidGeometryErrorWithCause("vertex is not a valid coordinate", err)
		}
		vertices = append(vertices, p)
	}
	return NewPolygon(vertices)
}

// Validate reports whether the polygon was built by NewPolygon.
func (p Polygon) Validate() error {
	return p.guard.Validate(ErrPolygonIsNotConstructed)
}

// Vertices returns a copy of the ring without the closing vertex.
func (p Polygon) Vertices() []kernel.GeoPoint {
	out := make([]kernel.GeoPoint, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// Pairs returns the ring as [lat, lng] pairs.
func (p Polygon) Pairs() [][2]float64 {
	out := make([][2]float64, len(p.vertices))
	for i, v := range p.vertices {
		out[i] = [2]float64{v.Lat(), v.Lng()}
	}
	return out
}

// Contains tells whether point lies inside the polygon or on its boundary.
//
// Interior points are found with the even-odd ray casting rule. Points on an
// edge or a vertex are always contained; the ray test alone is inconsistent
// there, so edges are checked first.
func (p Polygon) Contains(point kernel.GeoPoint) bool {
	n := len(p.vertices)
	if n < minVertices {
		return false
	}

	x, y := point.Lng(), point.Lat()
	for i := range n {
		a, b := p.vertices[i], p.vertices[(i+1)%n]
		if onSegment(a.Lng(), a.Lat(), b.Lng(), b.Lat(), x, y) {
			return true
		}
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := p.vertices[i].Lng(), p.vertices[i].Lat()
		xj, yj := p.vertices[j].Lng(), p.vertices[j].Lat()
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

func signedArea(ring []kernel.GeoPoint) float64 {
	var sum float64
	n := len(ring)
	for i := range n {
		a, b := ring[i], ring[(i+1)%n]
		sum += a.Lng()*b.Lat() - b.Lng()*a.Lat()
	}
	return sum / 2
}

// selfIntersects checks every pair of edges. Adjacent edges may only share
// their common vertex; any other contact between edges is an intersection.
func selfIntersects(ring []kernel.GeoPoint) bool {
	n := len(ring)
	for i := range n {
		a1, a2 := ring[i], ring[(i+1)%n]
		for j := i + 1; j < n; j++ {
			b1, b2 := ring[j], ring[(j+1)%n]
			adjacent := j == i+1 || (i == 0 && j == n-1)
			if adjacent {
				if overlapsBeyondSharedVertex(a1, a2, b1, b2) {
					return true
				}
				continue
			}
			if segmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

// overlapsBeyondSharedVertex catches spikes where two consecutive edges fold back onto each other.
func overlapsBeyondSharedVertex(a1, a2, b1, b2 kernel.GeoPoint) bool {
	if math.Abs(cross(a1, a2, b1))+math.Abs(cross(a1, a2, b2)) > epsilon {
		return false
	}
	var shared, endA, endB kernel.GeoPoint
	switch {
	case a2.IsEqual(b1):
		shared, endA, endB = a2, a1, b2
	case a1.IsEqual(b2):
		shared, endA, endB = a1, a2, b1
	default:
		return true
	}
	// Collinear edges pointing the same way from the shared vertex overlap.
	dot := (endA.Lng()-shared.Lng())*(endB.Lng()-shared.Lng()) + (endA.Lat()-shared.Lat())*(endB.Lat()-shared.Lat())
	return dot > 0
}

func segmentsIntersect(p1, p2, q1, q2 kernel.GeoPoint) bool {
	d1 := orientation(q1, q2, p1)
	d2 := orientation(q1, q2, p2)
	d3 := orientation(p1, p2, q1)
	d4 := orientation(p1, p2, q2)

	if d1 != d2 && d3 != d4 && d1 != 0 && d2 != 0 && d3 != 0 && d4 != 0 {
		return true
	}

	return (d1 == 0 && onSegment(q1.Lng(), q1.Lat(), q2.Lng(), q2.Lat(), p1.Lng(), p1.Lat())) ||
		(d2 == 0 && onSegment(q1.Lng(), q1.Lat(), q2.Lng(), q2.Lat(), p2.Lng(), p2.Lat())) ||
		(d3 == 0 && onSegment(p1.Lng(), p1.Lat(), p2.Lng(), p2.Lat(), q1.Lng(), q1.Lat())) ||
		(d4 == 0 && onSegment(p1.Lng(), p1.Lat(), p2.Lng(), p2.Lat(), q2.Lng(), q2.Lat()))
}

func cross(o, a, b kernel.GeoPoint) float64 {
	return (a.Lng()-o.Lng())*(b.Lat()-o.Lat()) - (a.Lat()-o.Lat())*(b.Lng()-o.Lng())
}

func orientation(o, a, b kernel.GeoPoint) int {
	c := cross(o, a, b)
	switch {
	case c > epsilon:
		return 1
	case c < -epsilon:
		return -1
	default:
		return 0
	}
}

// onSegment reports whether (x, y) lies on the segment (x1, y1)-(x2, y2).
func onSegment(x1, y1, x2, y2, x, y float64) bool {
	c := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
	if math.Abs(c) > epsilon {
		return false
	}
	return x >= math.Min(x1, x2)-epsilon && x <= math.Max(x1, x2)+epsilon &&
		y >= math.Min(y1, y2)-epsilon && y <= math.Max(y1, y2)+epsilon
}
