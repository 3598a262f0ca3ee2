package genio

import "io"

type mode uint8

const (
	modeLine mode = iota
	modeByte
)

// Stream reads from a Generator. It starts in line mode, where each chunk
// of the generator is surfaced verbatim by NextLine. The first byte
// oriented call (Read, ReadInto, ReadByte, Unread) switches the stream to
// byte mode, where chunks are pooled in a buffer to satisfy reads of
// arbitrary length. NextLine on a byte mode stream flushes the buffer as a
// single line and switches back to line mode.
//
// A Stream is owned by a single goroutine; its methods must not be called
// concurrently.
type Stream struct {
	mode mode
	gen  Generator // nil once exhausted or closed.
	buf  []byte    // Pulled but not yet delivered. Byte mode only.
}

func New(gen Generator) *Stream {
	return &Stream{gen: gen}
}

// NextLine returns the next line of the stream. In line mode a line is one
// generator chunk, forwarded as is, and io.EOF is reported once the
// generator is exhausted or the stream is closed. In byte mode it returns
// everything currently buffered, however much that is, and reverts the
// stream to line mode without pulling the generator.
func (s *Stream) NextLine() (string, error) {
	if s.mode == modeByte {
		v := string(s.buf)
		s.buf = nil
		s.mode = modeLine
		return v, nil
	}

	if s.gen == nil {
		return "", io.EOF
	}

	v, err := s.gen()
	if err == io.EOF {
		s.gen = nil
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}

	return v, nil
}

// Lines collects the remaining lines of the stream. On a generator failure
// it returns the lines collected so far together with the error.
func (s *Stream) Lines() ([]string, error) {
	vs := []string{}
	for {
		v, err := s.NextLine()
		if err == io.EOF {
			return vs, nil
		}
		if err != nil {
			return vs, err
		}

		vs = append(vs, v)
	}
}

// fill pulls chunks until the buffer holds at least n bytes or the
// generator is exhausted. A failed pull leaves the bytes of the earlier
// successful pulls in the buffer so the caller can retry.
func (s *Stream) fill(n int) error {
	for len(s.buf) < n && s.gen != nil {
		v, err := s.gen()
		if err == io.EOF {
			s.gen = nil
			return nil
		}
		if err != nil {
			return err
		}

		s.buf = append(s.buf, v...)
	}
	return nil
}

// Read implements io.Reader. It delivers min(len(p), remaining bytes) and
// reports io.EOF only when nothing remains at all. Read with an empty p is
// a no-op that never pulls the generator.
func (s *Stream) Read(p []byte) (int, error) {
	s.mode = modeByte
	if len(p) == 0 {
		return 0, nil
	}
	if err := s.fill(len(p)); err != nil {
		return 0, err
	}

	n := min(len(p), len(s.buf))
	if n == 0 {
		return 0, io.EOF
	}

	copy(p, s.buf[:n])
	s.buf = s.buf[n:]
	return n, nil
}

// ReadInto reads up to n bytes and writes them into *dst starting at off,
// growing *dst as needed. If off is beyond the end of *dst the gap is
// filled with zero bytes. It returns the number of bytes delivered, which
// is less than n only when the stream is exhausted, and io.EOF when
// nothing remains for n > 0. ReadInto with n == 0 is a no-op that never
// pulls the generator. Negative n or off panics.
func (s *Stream) ReadInto(dst *[]byte, n int, off int) (int, error) {
	if n < 0 {
		panic("negative read length")
	}
	if off < 0 {
		panic("negative offset")
	}

	s.mode = modeByte
	if n == 0 {
		return 0, nil
	}
	if err := s.fill(n); err != nil {
		return 0, err
	}

	c := min(n, len(s.buf))
	if c == 0 {
		return 0, io.EOF
	}

	if d := off + c - len(*dst); d > 0 {
		*dst = append(*dst, make([]byte, d)...)
	}
	copy((*dst)[off:], s.buf[:c])
	s.buf = s.buf[c:]
	return c, nil
}

// ReadByte implements io.ByteReader.
func (s *Stream) ReadByte() (byte, error) {
	s.mode = modeByte
	if err := s.fill(1); err != nil {
		return 0, err
	}
	if len(s.buf) == 0 {
		return 0, io.EOF
	}

	c := s.buf[0]
	s.buf = s.buf[1:]
	return c, nil
}

// Unread pushes c back onto the front of the stream, before anything
// buffered or yet to be pulled. It can be called any number of times;
// successive pushes read back in reverse order. Unread never touches the
// generator.
func (s *Stream) Unread(c byte) {
	s.mode = modeByte
	s.buf = append([]byte{c}, s.buf...)
}

// EOF reports whether the stream is exhausted: nothing buffered and no
// generator to pull from. Buffered bytes left after close or exhaustion
// keep EOF false until they are delivered.
func (s *Stream) EOF() bool {
	return len(s.buf) == 0 && s.gen == nil
}

// Close drops the generator without calling it. It is idempotent, and the
// stream stays queryable afterwards; bytes already buffered remain
// readable.
func (s *Stream) Close() error {
	s.gen = nil
	return nil
}
