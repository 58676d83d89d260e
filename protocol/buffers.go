package protocol

// ByteFIFO is a fixed-capacity byte ring. It models the UART transmit FIFO:
// a push into a full FIFO is refused and the caller decides whether that is
// an overrun.
type ByteFIFO struct {
	buf   []byte
	read  int
	count int
}

// NewByteFIFO creates a FIFO holding up to capacity bytes.
func NewByteFIFO(capacity int) *ByteFIFO {
	if capacity < 1 {
		capacity = 1
	}
	return &ByteFIFO{buf: make([]byte, capacity)}
}

// Push appends b. It returns false when the FIFO is full.
func (f *ByteFIFO) Push(b byte) bool {
	if f.count == len(f.buf) {
		return false
	}
	f.buf[(f.read+f.count)%len(f.buf)] = b
	f.count++
	return true
}

// Pop removes the oldest byte.
func (f *ByteFIFO) Pop() (byte, bool) {
	if f.count == 0 {
		return 0, false
	}
	b := f.buf[f.read]
	f.read = (f.read + 1) % len(f.buf)
	f.count--
	return b, true
}

// Drain moves up to len(dst) bytes into dst and returns how many were moved.
func (f *ByteFIFO) Drain(dst []byte) int {
	n := 0
	for n < len(dst) {
		b, ok := f.Pop()
		if !ok {
			break
		}
		dst[n] = b
		n++
	}
	return n
}

// Len returns the number of queued bytes.
func (f *ByteFIFO) Len() int {
	return f.count
}

// Cap returns the capacity.
func (f *ByteFIFO) Cap() int {
	return len(f.buf)
}

// Full reports whether another Push would be refused.
func (f *ByteFIFO) Full() bool {
	return f.count == len(f.buf)
}

// Empty reports whether the FIFO holds nothing.
func (f *ByteFIFO) Empty() bool {
	return f.count == 0
}

// Reset discards all queued bytes.
func (f *ByteFIFO) Reset() {
	f.read = 0
	f.count = 0
}
