package raster

import "log/slog"

// Option configures a BitPlane at construction, via New.
//
// Example:
//
//	plane := raster.New(64, 64, raster.WithLogger(slog.Default()))
type Option func(*BitPlane)

// WithLogger attaches l to the plane in place of the package default
// returned by Logger. Pass nil to force the silent default regardless
// of any later SetLogger call.
func WithLogger(l *slog.Logger) Option {
	return func(bp *BitPlane) {
		if l == nil {
			l = newNopLogger()
		}
		bp.logger = l
	}
}
