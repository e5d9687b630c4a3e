package geom

import "math"

// Fingerprint is a 64-bit content+geometry hash used as a render cache
// key. Collisions are treated as correct matches; this is a documented
// risk accepted for the cache's eviction model, not a correctness bug.
type Fingerprint uint64

// fnv64Offset and fnv64Prime are the FNV-1a 64-bit constants. No
// third-party fast-hash library appears anywhere in the dependency
// surface this module draws from, so Fingerprint is accumulated by
// hand rather than importing one.
const (
	fnv64Offset Fingerprint = 14695981039346656037
	fnv64Prime  Fingerprint = 1099511628211
)

// NewFingerprintHasher returns a fresh accumulator seeded at the FNV-1a
// offset basis.
func NewFingerprintHasher() Fingerprint {
	return fnv64Offset
}

// MixUint64 folds an 8-byte value into the running fingerprint.
func (f Fingerprint) MixUint64(v uint64) Fingerprint {
	for i := 0; i < 8; i++ {
		f ^= Fingerprint(byte(v))
		f *= fnv64Prime
		v >>= 8
	}
	return f
}

// MixInt folds a signed int into the running fingerprint via its
// 64-bit representation.
func (f Fingerprint) MixInt(v int) Fingerprint {
	return f.MixUint64(uint64(v))
}

// MixFloat64 folds a float64 into the running fingerprint using its
// raw IEEE-754 bit pattern. NaN is not normalized and -0.0/+0.0 mix to
// different fingerprints: SVG transforms never legitimately produce
// NaN, and the sign of zero is allowed to distinguish cache entries.
func (f Fingerprint) MixFloat64(v float64) Fingerprint {
	return f.MixUint64(math.Float64bits(v))
}

// MixString folds each byte of s into the running fingerprint. Used
// for cache keys derived from a resource identifier, such as a linked
// image's href, rather than a purely numeric content hash.
func (f Fingerprint) MixString(s string) Fingerprint {
	for i := 0; i < len(s); i++ {
		f ^= Fingerprint(s[i])
		f *= fnv64Prime
	}
	return f
}

// MixTransform folds all six affine components of t into the running
// fingerprint, in A,B,C,D,E,F order.
func (f Fingerprint) MixTransform(t Transform) Fingerprint {
	f = f.MixFloat64(t.A)
	f = f.MixFloat64(t.B)
	f = f.MixFloat64(t.C)
	f = f.MixFloat64(t.D)
	f = f.MixFloat64(t.E)
	f = f.MixFloat64(t.F)
	return f
}

// FingerprintOf combines a node's content hash, the requested output
// size, and an optional transform into one Fingerprint. Pass the zero
// Transform and includeTransform=false for groups without effects,
// whose cache key must exclude the active transform so one cached
// sub-buffer can serve many placements (see RenderCache fingerprint
// policy).
func FingerprintOf(contentHash uint64, w, h int, t Transform, includeTransform bool) Fingerprint {
	f := NewFingerprintHasher()
	f = f.MixUint64(contentHash)
	f = f.MixInt(w)
	f = f.MixInt(h)
	if includeTransform {
		f = f.MixTransform(t)
	}
	return f
}
