// file: internal/geo/geo.go
// version: 1.0.0
// guid: 7c2e4f6a-1b3d-4e5f-9a0c-8d7b6e5f4a3c

package geo

import "math"

// earthRadiusMeters is the WGS84 mean earth radius.
const earthRadiusMeters = 6371008.8

// Location is a geographic coordinate (WGS84), in degrees.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// IsZero reports whether the location is the uninitialized zero coordinate.
// (0, 0) is in the Gulf of Guinea and never appears in real road data, so it
// doubles as the missing-geometry marker.
func (l Location) IsZero() bool {
	return l.Lat == 0 && l.Lon == 0
}

// DistanceTo returns the great-circle distance to other using the haversine
// formula.
func (l Location) DistanceTo(other Location) Distance {
	lat1 := l.Lat * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	dLat := (other.Lat - l.Lat) * math.Pi / 180
	dLon := (other.Lon - l.Lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return Meters(earthRadiusMeters * c)
}

// Distance is a geodesic distance in meters.
type Distance float64

// Meters constructs a Distance from a meter value.
func Meters(m float64) Distance {
	return Distance(m)
}

// Meters returns the distance as a float64 meter value.
func (d Distance) Meters() float64 {
	return float64(d)
}

// LessThanOrEqual reports whether d <= other.
func (d Distance) LessThanOrEqual(other Distance) bool {
	return d <= other
}

// GreaterThan reports whether d > other.
func (d Distance) GreaterThan(other Distance) bool {
	return d > other
}
