package routegpx

import "math"

// Coordinates is a geographic point in decimal degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

// InRange reports whether the pair is a plausible surface coordinate: both
// values finite, latitude in [-90, 90], longitude in [-180, 180].
func (c Coordinates) InRange() bool {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) {
		return false
	}
	if math.IsNaN(c.Lng) || math.IsInf(c.Lng, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
