// Package routegpx converts a saved delivery-route web page into a GPX
// waypoint file. It extracts stop records from the page's rendered DOM on a
// best-effort basis, resolves plus codes to coordinates, and emits one
// waypoint per resolvable stop. Extraction is honest rather than accurate:
// anything the parser had to guess about is surfaced as a warning.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, olc/, etree/).
package routegpx
