package mock

import (
	"io"

	"github.com/froest/routegpx"
)

var _ routegpx.WaypointWriter = (*Writer)(nil)

// Writer is a mock implementation of routegpx.WaypointWriter.
type Writer struct {
	WriteGPXFn func(w io.Writer, desc string, waypoints []routegpx.Waypoint) error
}

func (wr *Writer) WriteGPX(w io.Writer, desc string, waypoints []routegpx.Waypoint) error {
	return wr.WriteGPXFn(w, desc, waypoints)
}
