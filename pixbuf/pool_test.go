package pixbuf

import "testing"

func TestSizeClassBoundaries(t *testing.T) {
	cases := []struct {
		w, h, want int
	}{
		{1, 1, 0},
		{2, 1, 1},
		{3, 3, 2},
		{4, 4, 2},
		{5, 4, 3},
		{1024, 1, 10},
		{1025, 1, 11},
	}
	for _, c := range cases {
		if got := SizeClass(c.w, c.h); got != c.want {
			t.Errorf("SizeClass(%d,%d) = %d, want %d", c.w, c.h, got, c.want)
		}
	}
}

func TestSizeClassOversized(t *testing.T) {
	if SizeClass(maxSide+1, 1) != -1 {
		t.Fatal("expected oversized request to report size class -1")
	}
}

// TestAcquirePurity is the P1 invariant: every acquired buffer has
// exactly w*h pixels and every byte is zero.
func TestAcquirePurity(t *testing.T) {
	p := NewPool()
	buf, ok := p.Acquire(37, 91)
	if !ok {
		t.Fatal("Acquire failed")
	}
	if buf.Width() != 37 || buf.Height() != 91 {
		t.Fatalf("logical size = %dx%d, want 37x91", buf.Width(), buf.Height())
	}
	if len(buf.Bytes()) != 37*91*4 {
		t.Fatalf("byte length = %d, want %d", len(buf.Bytes()), 37*91*4)
	}
	for _, v := range buf.Bytes() {
		if v != 0 {
			t.Fatal("acquired buffer must be zero-filled")
		}
	}
}

func TestAcquireRejectsOversized(t *testing.T) {
	p := NewPool()
	_, ok := p.Acquire(maxSide+2, 1)
	if ok {
		t.Fatal("expected oversized acquire to fail")
	}
}

func TestReleaseThenAcquireReusesStorage(t *testing.T) {
	p := NewPool()
	buf, _ := p.Acquire(64, 64)
	buf.SetPremultiplied(0, 0, 9, 9, 9, 9)
	p.Release(buf)

	// A same-class request should come back zeroed, proving the pool
	// re-zeros reused storage rather than handing back stale pixels.
	buf2, ok := p.Acquire(60, 60)
	if !ok {
		t.Fatal("Acquire after Release failed")
	}
	r, g, b, a := buf2.GetPremultiplied(0, 0)
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Fatal("reused storage must be re-zeroed on Acquire")
	}
}

func TestAcquireDifferentVirtualSizesSameClass(t *testing.T) {
	p := NewPool()
	a, _ := p.Acquire(500, 500)
	p.Release(a)
	// A smaller request within the same size class (ceil(log2(500))==9,
	// side 512) should successfully reuse the released 512x512 backing
	// array rather than allocate fresh storage.
	b, ok := p.Acquire(480, 480)
	if !ok {
		t.Fatal("Acquire within same size class should succeed")
	}
	if b.Width() != 480 || b.Height() != 480 {
		t.Fatalf("logical size = %dx%d, want 480x480", b.Width(), b.Height())
	}
}
