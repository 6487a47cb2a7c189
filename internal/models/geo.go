package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// earthRadiusMeters средний радиус Земли для формулы гаверсинуса
const earthRadiusMeters = 6371000.0

// Coordinate представляет географическую точку (WGS84).
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geometry is an ordered polyline.
type Geometry []Coordinate

// String formats the coordinate as "lat,lng" with 6 decimal places.
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Lat, 'f', 6, 64) + "," + strconv.FormatFloat(c.Lng, 'f', 6, 64)
}

// ParseCoordinate parses "lat,lng".
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return Coordinate{}, fmt.Errorf("coordinate must be in 'lat,lng' format: %q", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
	}

	return Coordinate{Lat: lat, Lng: lng}, nil
}

// DistanceTo returns the great-circle distance in meters (haversine).
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	lat1 := c.Lat * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	dLat := (other.Lat - c.Lat) * math.Pi / 180
	dLng := (other.Lng - c.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Length returns the total polyline length in meters.
func (g Geometry) Length() float64 {
	var total float64
	for i := 1; i < len(g); i++ {
		total += g[i-1].DistanceTo(g[i])
	}
	return total
}

// Clone создает копию геометрии
func (g Geometry) Clone() Geometry {
	if g == nil {
		return nil
	}
	out := make(Geometry, len(g))
	copy(out, g)
	return out
}
