// Package olc resolves plus codes (Open Location Codes) to coordinates.
package olc

import (
	"github.com/froest/routegpx"
	olc "github.com/google/open-location-code/go"
)

var _ routegpx.Resolver = (*Resolver)(nil)

// Resolver decodes plus codes. Full-length codes decode standalone;
// shortened codes are recovered against the supplied anchor first.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve converts a plus code into the center of its code area. Returns
// EINVALID for malformed codes and for shortened codes with no anchor.
func (r *Resolver) Resolve(code string, anchor *routegpx.Coordinates) (routegpx.Coordinates, error) {
	if err := olc.Check(code); err != nil {
		return routegpx.Coordinates{}, routegpx.Errorf(routegpx.EINVALID, "malformed location code %q: %v", code, err)
	}

	full := code
	if olc.CheckFull(code) != nil {
		if anchor == nil {
			return routegpx.Coordinates{}, routegpx.Errorf(routegpx.EINVALID,
				"shortened location code %q needs a nearby reference point and none is available", code)
		}
		recovered, err := olc.RecoverNearest(code, anchor.Lat, anchor.Lng)
		if err != nil {
			return routegpx.Coordinates{}, routegpx.Errorf(routegpx.EINVALID,
				"could not recover shortened location code %q: %v", code, err)
		}
		full = recovered
	}

	area, err := olc.Decode(full)
	if err != nil {
		return routegpx.Coordinates{}, routegpx.Errorf(routegpx.EINVALID, "could not decode location code %q: %v", full, err)
	}
	lat, lng := area.Center()
	return routegpx.Coordinates{Lat: lat, Lng: lng}, nil
}
