package pixbuf

import "math/bits"

// numSizeClasses is the number of power-of-two buckets: class 0
// (side 1) through class 16 (side 65536), matching the 2^16 dimension
// ceiling a PixelBuffer supports.
const numSizeClasses = 17

// maxSide is the largest side length representable by a size class;
// requests whose longer side exceeds it are rejected as oversized.
const maxSide = 1 << (numSizeClasses - 1)

// Pool is a size-classed free list of pixel buffer storages, bucketed
// by the power-of-two of the longer requested side. It exists because
// isolated layers recur at a handful of pixel sizes across a render
// call, and a strict (w,h)-keyed pool (as a shared-canvas pool would
// use) fragments under the small size jitter anti-alias padding
// introduces between otherwise-similar requests.
//
// Pool is single-threaded: callers share it only within one Render
// call, so unlike a pool backing concurrent canvas operations it
// carries no mutex.
type Pool struct {
	buckets [numSizeClasses][][]uint8
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{}
}

// SizeClass returns ceil(log2(max(w,h))), or -1 if the request exceeds
// the largest representable size class.
func SizeClass(w, h int) int {
	side := w
	if h > side {
		side = h
	}
	if side <= 0 {
		return 0
	}
	if side > maxSide {
		return -1
	}
	if side == 1 {
		return 0
	}
	return bits.Len(uint(side - 1))
}

// Acquire returns a buffer whose logical size is exactly (w,h) and
// whose pixels are all zero. Returns (nil, false) if the size class
// exceeds the pool's range (the caller surfaces OversizedPixmap) or if
// allocation fails.
func (p *Pool) Acquire(w, h int) (*PixelBuffer, bool) {
	if w <= 0 || h <= 0 {
		return nil, false
	}
	class := SizeClass(w, h)
	if class < 0 || class >= numSizeClasses {
		return nil, false
	}

	needed := w * h * 4
	var storage []uint8

	stack := p.buckets[class]
	if n := len(stack); n > 0 {
		storage = stack[n-1]
		p.buckets[class] = stack[:n-1]
		storage = storage[:needed]
		for i := range storage {
			storage[i] = 0
		}
	} else {
		side := 1 << class
		storage = make([]uint8, side*side*4)[:needed]
	}

	buf, ok := FromStorage(storage, w, h)
	if !ok {
		return nil, false
	}
	return buf, true
}

// Release returns buf's backing storage to its size-class stack for
// reuse. The caller must not use buf after calling Release: the pool
// retains the slice header (and its full backing array capacity, not
// just the logical view) so a later Acquire of the same class can
// reslice it back up to the class's canonical side length.
func (p *Pool) Release(buf *PixelBuffer) {
	if buf == nil {
		return
	}
	class := SizeClass(buf.width, buf.height)
	if class < 0 || class >= numSizeClasses {
		return
	}
	full := buf.data[:cap(buf.data)]
	p.buckets[class] = append(p.buckets[class], full)
}
