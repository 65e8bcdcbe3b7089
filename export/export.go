// Package export assembles GPX-ready waypoints from an extraction result.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/froest/routegpx"
)

// Waypoints folds over the stops in order, carrying the current anchor:
// each stop that resolves to coordinates becomes the reference point for
// shortened location codes in later stops. defaultAnchor seeds the fold and
// may be nil.
//
// Stops with no resolvable coordinates are skipped, never silently: GPX
// waypoints mandate coordinates, so a label-only waypoint is not
// representable. One warning names each skipped stop and a final summary
// enumerates them all, so the output can be checked against the route
// sheet at a glance.
func Waypoints(result *routegpx.ExtractResult, resolver routegpx.Resolver, defaultAnchor *routegpx.Coordinates) ([]routegpx.Waypoint, []string) {
	anchor := defaultAnchor
	var waypoints []routegpx.Waypoint
	var warnings []string
	var skipped []int

	for _, stop := range result.Stops {
		coords, warn := locate(&stop, resolver, anchor)
		if warn != "" {
			warnings = append(warnings, warn)
		}
		if coords == nil {
			skipped = append(skipped, stop.Seq)
			continue
		}
		anchor = coords
		waypoints = append(waypoints, routegpx.Waypoint{
			Name:   waypointName(&stop),
			Coords: *coords,
			Desc:   waypointDesc(&stop),
		})
	}

	if len(skipped) > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"%d stop(s) omitted from the GPX file for lack of coordinates: stop %s; deliver these from the route sheet",
			len(skipped), joinInts(skipped)))
	}
	return waypoints, warnings
}

// locate finds coordinates for one stop: direct coordinates win, else the
// location code is resolved against the current anchor. A "" warning means
// nothing went wrong.
func locate(stop *routegpx.StopRecord, resolver routegpx.Resolver, anchor *routegpx.Coordinates) (*routegpx.Coordinates, string) {
	if stop.Coords != nil {
		return stop.Coords, ""
	}
	if stop.Code == "" {
		return nil, fmt.Sprintf("stop %d has no coordinates or location code", stop.Seq)
	}
	coords, err := resolver.Resolve(stop.Code, anchor)
	if err != nil {
		return nil, fmt.Sprintf("stop %d: %s", stop.Seq, routegpx.ErrorMessage(err))
	}
	return &coords, ""
}

func waypointName(stop *routegpx.StopRecord) string {
	if stop.Label != "" {
		return stop.Label
	}
	return fmt.Sprintf("Stop %d", stop.Seq)
}

func waypointDesc(stop *routegpx.StopRecord) string {
	switch {
	case stop.Address != "" && stop.Notes != "":
		return stop.Address + "; " + stop.Notes
	case stop.Address != "":
		return stop.Address
	default:
		return stop.Notes
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", stop ")
}
