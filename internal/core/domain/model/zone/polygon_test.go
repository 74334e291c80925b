package zone_test

import (
	"testing"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/zone"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func points(t *testing.T, coords ...[2]float64) []kernel.GeoPoint {
	t.Helper()
	out := make([]kernel.GeoPoint, 0, len(coords))
	for _, c := range coords {
		p, err := kernel.NewGeoPoint(c[0], c[1])
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func square(t *testing.T) zone.Polygon {
	t.Helper()
	p, err := zone.NewPolygon(points(t, [2]float64{0, 0}, [2]float64{0, 10}, [2]float64{10, 10}, [2]float64{10, 0}))
	require.NoError(t, err)
	return p
}

func TestNewPolygon(t *testing.T) {
	t.Run("should accept a square", func(t *testing.T) {
		p := square(t)

		require.NoError(t, p.Validate())
		assert.Len(t, p.Vertices(), 4)
	})

	t.Run("should drop a repeated closing vertex", func(t *testing.T) {
		p, err := zone.NewPolygon(points(t,
			[2]float64{0, 0}, [2]float64{0, 10}, [2]float64{10, 10}, [2]float64{10, 0}, [2]float64{0, 0}))

		require.NoError(t, err)
		assert.Len(t, p.Vertices(), 4)
	})

	tests := []struct {
		name   string
		coords [][2]float64
	}{
		{name: "empty", coords: nil},
		{name: "two vertices", coords: [][2]float64{{0, 0}, {1, 1}}},
		{name: "triangle closed onto itself", coords: [][2]float64{{0, 0}, {1, 1}, {0, 0}}},
		{name: "collinear", coords: [][2]float64{{0, 0}, {1, 1}, {2, 2}}},
		{name: "bow tie", coords: [][2]float64{{0, 0}, {10, 10}, {0, 10}, {10, 0}}},
		{name: "figure eight with area", coords: [][2]float64{{0, 0}, {0, 10}, {10, 0}, {10, 10}, {5, 20}}},
		{name: "spike folding back", coords: [][2]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {10, 5}}},
	}
	for _, tt := range tests {
		t.Run("should reject "+tt.name, func(t *testing.T) {
			p, err := zone.NewPolygon(points(t, tt.coords...))

			require.ErrorIs(t, err, errs.ErrInvalidGeometry)
			assert.Error(t, p.Validate())
		})
	}

	t.Run("should reject an unconstructed vertex", func(t *testing.T) {
		vs := points(t, [2]float64{0, 0}, [2]float64{0, 10})
		vs = append(vs, kernel.GeoPoint{})

		_, err := zone.NewPolygon(vs)

		require.ErrorIs(t, err, errs.ErrInvalidGeometry)
	})

	t.Run("should not alias the caller slice", func(t *testing.T) {
		p := square(t)
		vs := p.Vertices()
		vs[0], _ = kernel.NewGeoPoint(50, 50)

		assert.Zero(t, p.Vertices()[0].Lat())
	})
}

func TestPolygon_Contains(t *testing.T) {
	p := square(t)

	tests := []struct {
		name  string
		point [2]float64
		want  bool
	}{
		{name: "strictly inside", point: [2]float64{5, 5}, want: true},
		{name: "far outside", point: [2]float64{20, 20}, want: false},
		{name: "left edge", point: [2]float64{5, 0}, want: true},
		{name: "top edge", point: [2]float64{10, 5}, want: true},
		{name: "right edge", point: [2]float64{5, 10}, want: true},
		{name: "vertex", point: [2]float64{10, 10}, want: true},
		{name: "just outside", point: [2]float64{10.0001, 5}, want: false},
		{name: "on the extension of an edge", point: [2]float64{15, 0}, want: false},
		{name: "level with a vertex outside", point: [2]float64{10, -3}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt, err := kernel.NewGeoPoint(tt.point[0], tt.point[1])
			require.NoError(t, err)

			assert.Equal(t, tt.want, p.Contains(pt))
		})
	}

	t.Run("should handle concave shapes", func(t *testing.T) {
		// U shape opening to the north.
		u, err := zone.NewPolygon(points(t,
			[2]float64{0, 0}, [2]float64{0, 9}, [2]float64{10, 9}, [2]float64{10, 6},
			[2]float64{3, 6}, [2]float64{3, 3}, [2]float64{10, 3}, [2]float64{10, 0}))
		require.NoError(t, err)

		inArm, _ := kernel.NewGeoPoint(8, 1)
		inNotch, _ := kernel.NewGeoPoint(5, 5)
		assert.True(t, u.Contains(inArm))
		assert.False(t, u.Contains(inNotch))
	})

	t.Run("zero polygon contains nothing", func(t *testing.T) {
		var zero zone.Polygon
		pt, _ := kernel.NewGeoPoint(0, 0)

		assert.False(t, zero.Contains(pt))
	})
}

func TestPolygonFromPairs(t *testing.T) {
	t.Run("should round trip through pairs", func(t *testing.T) {
		pairs := [][2]float64{{12.9, 77.5}, {12.9, 77.7}, {13.1, 77.7}, {13.1, 77.5}, {12.9, 77.5}}

		p, err := zone.PolygonFromPairs(pairs)

		require.NoError(t, err)
		assert.Equal(t, pairs[:4], p.Pairs())
	})

	t.Run("should report an out of range vertex as invalid geometry", func(t *testing.T) {
		_, err := zone.PolygonFromPairs([][2]float64{{0, 0}, {0, 10}, {95, 10}})

		require.ErrorIs(t, err, errs.ErrInvalidGeometry)
	})
}
