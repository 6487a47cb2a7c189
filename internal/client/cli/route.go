package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/iudanet/fieldops/internal/client/routing"
	"github.com/iudanet/fieldops/internal/models"
)

// routeDrawKey единственная цель отрисовки в терминале
const routeDrawKey = "route"

// parseWaypoints разбирает аргументы вида "lat,lng"
func parseWaypoints(args []string) ([]models.Coordinate, error) {
	waypoints := make([]models.Coordinate, 0, len(args))
	for _, arg := range args {
		c, err := models.ParseCoordinate(arg)
		if err != nil {
			return nil, err
		}
		waypoints = append(waypoints, c)
	}
	return waypoints, nil
}

func (c *Cli) runRoute(ctx context.Context, args []string, style string, showGeometry bool) error {
	waypoints, err := parseWaypoints(args)
	if err != nil {
		return err
	}

	route, err := c.routes.Route(ctx, waypoints, style)
	if err != nil {
		return err
	}

	c.printRoute(route, showGeometry)
	return nil
}

// runRouteFollow читает наборы точек построчно и перерисовывает маршрут.
// Каждая новая строка отменяет предыдущий незавершенный запрос.
func (c *Cli) runRouteFollow(ctx context.Context, style string, showGeometry bool) error {
	drawer := routing.NewDrawer(c.routes, c.logger)
	defer drawer.Wait()

	c.io.Println("Enter waypoints as 'lat,lng lat,lng ...', empty line or Ctrl+D to finish.")

	for {
		line, err := c.io.ReadInput("waypoints> ")
		if errors.Is(err, io.EOF) || (err == nil && line == "") {
			return nil
		}
		if err != nil {
			drawer.Cancel(routeDrawKey)
			return fmt.Errorf("failed to read waypoints: %w", err)
		}

		waypoints, err := parseWaypoints(strings.Fields(line))
		if err != nil {
			c.io.Error("✗ %v", err)
			continue
		}

		drawer.Draw(ctx, routeDrawKey, waypoints, style, func(route *routing.Route) {
			c.printRoute(route, showGeometry)
		})
	}
}

func (c *Cli) printRoute(route *routing.Route, showGeometry bool) {
	source := "routing service"
	switch {
	case route.Fallback:
		source = "straight line (routing unavailable)"
	case route.Cached:
		source = "cache"
	}

	c.io.Println("=== Route ===")
	c.io.Printf("Points: %d\n", len(route.Geometry))
	c.io.Printf("Length: %.2f km\n", route.Geometry.Length()/1000)
	c.io.Printf("Source: %s\n", source)

	if showGeometry {
		c.io.Println()
		for _, p := range route.Geometry {
			c.io.Println(p.String())
		}
	}
	c.io.Println()
}
