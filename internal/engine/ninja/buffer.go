package ninja

// cmdBuffer accumulates the assembled shell text for one node. It is owned
// by the single generation pass and reused between nodes.
type cmdBuffer struct {
	b []byte
}

// span marks a half-open [start, end) region of a cmdBuffer.
type span struct {
	start, end int
}

func (s span) empty() bool {
	return s.end <= s.start
}

func (b *cmdBuffer) reset() {
	b.b = b.b[:0]
}

func (b *cmdBuffer) len() int {
	return len(b.b)
}

func (b *cmdBuffer) writeByte(c byte) {
	b.b = append(b.b, c)
}

func (b *cmdBuffer) writeString(s string) {
	b.b = append(b.b, s...)
}

func (b *cmdBuffer) last() byte {
	return b.b[len(b.b)-1]
}

// setLast overwrites the most recently written byte.
func (b *cmdBuffer) setLast(c byte) {
	b.b[len(b.b)-1] = c
}

func (b *cmdBuffer) truncateLast() {
	b.b = b.b[:len(b.b)-1]
}

// insert splices s into the buffer at the given offset.
func (b *cmdBuffer) insert(at int, s string) {
	b.b = append(b.b, make([]byte, len(s))...)
	copy(b.b[at+len(s):], b.b[at:])
	copy(b.b[at:], s)
}

func (b *cmdBuffer) view(sp span) string {
	return string(b.b[sp.start:sp.end])
}

func (b *cmdBuffer) String() string {
	return string(b.b)
}
