package mock

import "github.com/froest/routegpx"

var _ routegpx.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of routegpx.Resolver.
type Resolver struct {
	ResolveFn func(code string, anchor *routegpx.Coordinates) (routegpx.Coordinates, error)
}

func (r *Resolver) Resolve(code string, anchor *routegpx.Coordinates) (routegpx.Coordinates, error) {
	return r.ResolveFn(code, anchor)
}
