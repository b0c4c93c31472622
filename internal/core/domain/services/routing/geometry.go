package routing

import (
	"math"

	"freightdesk/internal/core/domain/model/kernel"
)

// waypoint is a raw coordinate pair used while shaping a polyline, before
// the points are promoted to validated GeoPoint values.
type waypoint struct {
	lat float64
	lng float64
}

// synthesizePath builds a smoothed, curved polyline between two points.
//
// The curve is a linear interpolation along the direct vector with a
// perpendicular sinusoidal deviation superimposed. The deviation peaks at
// (direct span x variation x 0.3) and carries a secondary triple-frequency
// wave at 0.2 amplitude so the line reads as a road rather than an arc.
// The waypoints are then smoothed with a 3-point moving average, endpoints
// preserved.
//
// A larger variation yields a visibly more circuitous path, which is how
// the three strategies are told apart on a map.
func synthesizePath(
	origin kernel.GeoPoint,
	destination kernel.GeoPoint,
	variation float64,
	steps int,
) ([]kernel.GeoPoint, error) {
	deltaLat := destination.Latitude() - origin.Latitude()
	deltaLng := destination.Longitude() - origin.Longitude()

	span := math.Hypot(deltaLat, deltaLng)
	if span == 0 || steps < 1 {
		return []kernel.GeoPoint{origin, destination}, nil
	}

	perpLat := -deltaLng / span
	perpLng := deltaLat / span
	amplitude := span * variation * 0.3

	points := make([]waypoint, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)

		wave := math.Sin(t*math.Pi) + 0.2*math.Sin(3*t*math.Pi)
		offset := amplitude * wave

		points = append(points, waypoint{
			lat: origin.Latitude() + deltaLat*t + perpLat*offset,
			lng: origin.Longitude() + deltaLng*t + perpLng*offset,
		})
	}

	return promotePath(smoothPath(points))
}

// smoothPath applies a 3-point moving average to the interior waypoints.
// The first and last points are preserved so the path still starts at the
// origin and ends at the destination.
func smoothPath(points []waypoint) []waypoint {
	if len(points) < 3 {
		return points
	}

	smoothed := make([]waypoint, len(points))
	smoothed[0] = points[0]
	smoothed[len(points)-1] = points[len(points)-1]

	for i := 1; i < len(points)-1; i++ {
		smoothed[i] = waypoint{
			lat: (points[i-1].lat + points[i].lat + points[i+1].lat) / 3,
			lng: (points[i-1].lng + points[i].lng + points[i+1].lng) / 3,
		}
	}

	return smoothed
}

// promotePath converts raw waypoints into validated GeoPoint values. The
// sinusoidal offset can nudge a point just past a coordinate bound near the
// poles or the antimeridian, so coordinates are clamped into range first.
func promotePath(points []waypoint) ([]kernel.GeoPoint, error) {
	path := make([]kernel.GeoPoint, 0, len(points))
	for _, p := range points {
		point, err := kernel.NewGeoPoint(clamp(p.lat, -90, 90), clamp(p.lng, -180, 180))
		if err != nil {
			return nil, err
		}

		path = append(path, point)
	}

	return path, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
