// Package zone models geofenced service areas.
//
// A Zone pairs a unique name with a Polygon boundary. Polygon validates the
// ring on construction (at least three distinct vertices, non-zero area, no
// self-intersection) and answers point containment with the even-odd rule,
// counting points on the boundary as inside.
package zone
