package raster

import "log/slog"

// renderOptions holds the configurable knobs for one Render call.
// Unexported, assembled by applying the RenderOption functions passed
// to Render — the same pattern the donor's NewContext(width, height,
// opts ...ContextOption) uses for dependency injection.
type renderOptions struct {
	cacheCapacity int
	maxBBoxScale  float64
	logger        *slog.Logger
}

func defaultRenderOptions() renderOptions {
	return renderOptions{
		cacheCapacity: 256,
		maxBBoxScale:  4,
		logger:        Logger(),
	}
}

// RenderOption configures a single Render call.
type RenderOption func(*renderOptions)

// WithCacheCapacity overrides the render cache's entry capacity. A
// capacity of 0 disables caching entirely (every group re-renders).
func WithCacheCapacity(n int) RenderOption {
	return func(o *renderOptions) { o.cacheCapacity = n }
}

// WithMaxBBoxScale sets the multiple of the target canvas size that a
// group's isolated bounding rectangle may extend to before being
// clamped — the default of 4 lets blurred or offset effects bleed
// well past the canvas edge without being truncated, while still
// bounding runaway allocation from a pathological filter chain.
func WithMaxBBoxScale(scale float64) RenderOption {
	return func(o *renderOptions) { o.maxBBoxScale = scale }
}

// WithLogger overrides, for this Render call only, the logger that
// would otherwise come from the package-level SetLogger/Logger pair.
// Useful for a caller that wants one render's diagnostics routed
// somewhere distinct from the rest of the process — a request-scoped
// logger carrying a trace ID, for instance — without disturbing the
// global default used by every other concurrent render.
func WithLogger(l *slog.Logger) RenderOption {
	return func(o *renderOptions) {
		if l == nil {
			l = newNopLogger()
		}
		o.logger = l
	}
}
