package raster

import "errors"

// Sentinel errors, matched with errors.Is throughout the call chain
// rather than a custom error type hierarchy — the donor's own
// internal/image package follows the same plain errors.New idiom.
var (
	// ErrAllocationFailed means the pool could not supply a sub-buffer
	// for an isolated group; the subtree is skipped and a warning is
	// logged. It never reaches Render's return value.
	ErrAllocationFailed = errors.New("raster: sub-buffer allocation failed")

	// ErrGeometryInvalid means a computed bounding rectangle had
	// non-positive area; the subtree is skipped and logged at debug
	// level, since a zero-area group is routine (e.g. an empty <g>).
	ErrGeometryInvalid = errors.New("raster: computed geometry is empty")

	// ErrOversizedPixmap means a requested pixel buffer dimension
	// exceeds the pool's largest size class (2^16). Apart from a
	// cancelled context's error, this is the only error Render returns.
	ErrOversizedPixmap = errors.New("raster: requested pixmap exceeds maximum size")

	// ErrMissingResource means a linked paint server or image could
	// not be resolved. The renderer skips an image with no pixels or
	// no nested root without logging it; no code path returns or logs
	// this error.
	ErrMissingResource = errors.New("raster: referenced resource is missing")
)
