package routegpx

import "io"

// Waypoint is a named geographic point bound for a GPX file.
type Waypoint struct {
	Name   string
	Coords Coordinates
	Desc   string
}

// WaypointWriter serializes waypoints into a GPX document. desc is the
// overall route description; empty means none. Output must be
// deterministic: identical input produces byte-identical output.
type WaypointWriter interface {
	WriteGPX(w io.Writer, desc string, waypoints []Waypoint) error
}
