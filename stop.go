package routegpx

// StopRecord is one delivery stop extracted from a route page.
type StopRecord struct {
	Seq     int          // order within the route (display order)
	Label   string       // short human-readable text, e.g. abbreviated recipient name
	Address string       // free-text address
	Coords  *Coordinates // direct geolocation, nil when absent
	Code    string       // plus code; full codes decode standalone, shortened need an anchor
	Notes   string       // delivery instructions and similar free text
}

// Usable reports whether the record carries at least one field that could
// place it on a map. Records failing this are dropped by the extractor.
func (s *StopRecord) Usable() bool {
	return s.Coords != nil || s.Code != "" || s.Address != ""
}

// Confidence summarizes how much the extractor had to guess.
type Confidence string

const (
	// ConfidenceHigh: the expected page structure was found and parsed.
	ConfidenceHigh Confidence = "high"
	// ConfidenceDegraded: some records came from fallback heuristics and
	// may be incomplete or mis-ordered.
	ConfidenceDegraded Confidence = "degraded"
	// ConfidenceFailed: no usable records were found at all.
	ConfidenceFailed Confidence = "failed"
)

// ExtractResult is the complete outcome of one extraction run. It is
// constructed once by the Extractor, consumed once by the exporter, and
// never mutated afterward.
type ExtractResult struct {
	Stops      []StopRecord
	Title      string // overall route description, "" when not found
	Warnings   []string
	Confidence Confidence
}

// Extractor locates delivery stops in a saved route page. Implementations
// never fail outright on malformed input: structural anomalies become
// warnings and a lower-confidence strategy takes over.
type Extractor interface {
	Extract(html string) *ExtractResult
}
