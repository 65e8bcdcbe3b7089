package goquery

import (
	"net/url"
	"strings"
)

// placeIDFromMapsURL extracts the place ID from a Google Maps
// "/maps/place/" URL. The ID may be a plus code or a proprietary Place ID
// we can do nothing with; telling those apart is the caller's problem.
// Returns "" for any other kind of URL.
func placeIDFromMapsURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	// Saved pages have been seen with trailing encoded spaces in the path.
	path := strings.TrimRight(u.Path, " ")
	id, ok := strings.CutPrefix(path, "/maps/place/")
	if !ok {
		return ""
	}
	// Some URLs continue with /@lat,lng,zoom after the ID.
	if i := strings.IndexByte(id, '/'); i >= 0 {
		id = id[:i]
	}
	return id
}

// coordsFromMapsURL extracts a literal latitude/longitude from a maps URL:
// a ?q=lat,lng query or an /@lat,lng[,zoom] path segment. Values are
// returned raw; range validation is up to the caller.
func coordsFromMapsURL(rawURL string) (lat, lng string, ok bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", false
	}
	if q := u.Query().Get("q"); q != "" {
		if qLat, qLng, found := strings.Cut(q, ","); found && qLat != "" && qLng != "" {
			return qLat, qLng, true
		}
	}
	for _, seg := range strings.Split(u.Path, "/") {
		rest, found := strings.CutPrefix(seg, "@")
		if !found {
			continue
		}
		parts := strings.Split(rest, ",")
		if len(parts) >= 2 && parts[0] != "" && parts[1] != "" {
			return parts[0], parts[1], true
		}
	}
	return "", "", false
}
