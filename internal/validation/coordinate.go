package validation

import (
	"fmt"
	"math"

	"github.com/iudanet/fieldops/internal/models"
)

// ValidateCoordinate checks WGS84 bounds.
func ValidateCoordinate(c models.Coordinate) error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) {
		return fmt.Errorf("coordinate must not be NaN")
	}

	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %f out of range [-90, 90]", c.Lat)
	}

	if c.Lng < -180 || c.Lng > 180 {
		return fmt.Errorf("longitude %f out of range [-180, 180]", c.Lng)
	}

	return nil
}

// ValidateWaypoints проверяет, что маршрут состоит минимум из двух корректных точек
func ValidateWaypoints(waypoints []models.Coordinate) error {
	if len(waypoints) < 2 {
		return fmt.Errorf("route needs at least 2 waypoints, got %d", len(waypoints))
	}

	for i, wp := range waypoints {
		if err := ValidateCoordinate(wp); err != nil {
			return fmt.Errorf("waypoint %d: %w", i, err)
		}
	}

	return nil
}
