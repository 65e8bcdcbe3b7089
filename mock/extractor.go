package mock

import "github.com/froest/routegpx"

var _ routegpx.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of routegpx.Extractor.
type Extractor struct {
	ExtractFn func(html string) *routegpx.ExtractResult
}

func (e *Extractor) Extract(html string) *routegpx.ExtractResult {
	return e.ExtractFn(html)
}
