package slog

import (
	"log/slog"
	"time"

	"github.com/froest/routegpx"
)

// Ensure LoggingResolver implements routegpx.Resolver.
var _ routegpx.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with debug logging.
type LoggingResolver struct {
	next   routegpx.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next routegpx.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) Resolve(code string, anchor *routegpx.Coordinates) (routegpx.Coordinates, error) {
	begin := time.Now()
	coords, err := r.next.Resolve(code, anchor)
	if err != nil {
		r.logger.Info("resolve",
			"code", code,
			"anchored", anchor != nil,
			"err", routegpx.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return coords, err
	}
	r.logger.Info("resolve",
		"code", code,
		"anchored", anchor != nil,
		"lat", coords.Lat,
		"lng", coords.Lng,
		"duration", time.Since(begin),
	)
	return coords, nil
}
