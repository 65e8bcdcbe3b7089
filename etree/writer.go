// Package etree serializes waypoints as GPX 1.1 documents.
package etree

import (
	"io"
	"strconv"

	"github.com/beevik/etree"
	"github.com/froest/routegpx"
)

var _ routegpx.WaypointWriter = (*Writer)(nil)

// Writer emits GPX 1.1 with waypoints only (no routes or tracks; waypoints
// import as map markers, which is what a delivery round needs). Output is
// deterministic: fixed element order, fixed indentation, no timestamps.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteGPX writes one <wpt> per waypoint. desc becomes the document's
// metadata description when non-empty.
func (wr *Writer) WriteGPX(w io.Writer, desc string, waypoints []routegpx.Waypoint) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	gpx := doc.CreateElement("gpx")
	gpx.CreateAttr("version", "1.1")
	gpx.CreateAttr("creator", "routegpx")
	gpx.CreateAttr("xmlns", "http://www.topografix.com/GPX/1/1")

	if desc != "" {
		gpx.CreateElement("metadata").CreateElement("desc").SetText(desc)
	}

	for _, wp := range waypoints {
		el := gpx.CreateElement("wpt")
		el.CreateAttr("lat", formatCoord(wp.Coords.Lat))
		el.CreateAttr("lon", formatCoord(wp.Coords.Lng))
		el.CreateElement("name").SetText(wp.Name)
		if wp.Desc != "" {
			el.CreateElement("desc").SetText(wp.Desc)
		}
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return routegpx.Errorf(routegpx.EOUTPUT, "write gpx: %v", err)
	}
	return nil
}

// formatCoord uses the shortest representation that round-trips, so values
// survive unchanged into the file.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
