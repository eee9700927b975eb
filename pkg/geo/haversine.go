// Package geo holds the spherical-earth distance math used by the geofence.
package geo

import "math"

// EarthRadiusMeters is the mean earth radius used by the haversine formula.
const EarthRadiusMeters = 6371000.0

type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether the point lies within latitude/longitude bounds.
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180 &&
		!math.IsNaN(p.Lat) && !math.IsNaN(p.Lon)
}

// Haversine returns the great-circle distance between a and b in meters.
func Haversine(a, b Point) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := lat2 - lat1
	dLon := toRadians(b.Lon) - toRadians(a.Lon)

	h := math.Pow(math.Sin(dLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)
	// rounding can push h a hair past 1 for antipodal points
	h = math.Min(1, h)
	return EarthRadiusMeters * 2 * math.Asin(math.Sqrt(h))
}

// Within reports whether b lies inside the circle of radius meters around a,
// returning the computed distance as well.
func Within(center, p Point, radius float64) (float64, bool) {
	d := Haversine(center, p)
	return d, d <= radius
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
