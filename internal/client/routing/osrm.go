package routing

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/fieldops/internal/models"
	"github.com/iudanet/fieldops/pkg/api"
)

// routeURL строит OSRM URL: координаты в порядке lng,lat
func routeURL(baseURL, profile string, waypoints []models.Coordinate) string {
	parts := make([]string, 0, len(waypoints))
	for _, c := range waypoints {
		parts = append(parts,
			strconv.FormatFloat(c.Lng, 'f', -1, 64)+","+strconv.FormatFloat(c.Lat, 'f', -1, 64))
	}

	return fmt.Sprintf("%s/route/v1/%s/%s?overview=full&geometries=geojson",
		strings.TrimRight(baseURL, "/"), profile, strings.Join(parts, ";"))
}

// parseRoute извлекает геометрию первого маршрута из ответа OSRM
func parseRoute(body []byte) (models.Geometry, error) {
	var resp api.RouteResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode route response: %w", err)
	}

	if resp.Code != "Ok" {
		return nil, fmt.Errorf("%w: %s %s", ErrNoRoute, resp.Code, resp.Message)
	}

	if len(resp.Routes) == 0 || len(resp.Routes[0].Geometry.Coordinates) < 2 {
		return nil, ErrNoRoute
	}

	coords := resp.Routes[0].Geometry.Coordinates
	geometry := make(models.Geometry, 0, len(coords))
	for _, p := range coords {
		geometry = append(geometry, models.Coordinate{Lat: p[1], Lng: p[0]})
	}

	return geometry, nil
}
