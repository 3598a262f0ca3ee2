package genio

// A Stream is read-only and synthetic. The write family and the control
// family of operations fail with ErrUnsupported before touching any state,
// so misuse fails predictably instead of half-working.

func (s *Stream) Write(p []byte) (int, error) {
	return 0, ErrUnsupported
}

func (s *Stream) WriteString(v string) (int, error) {
	return 0, ErrUnsupported
}

func (s *Stream) Flush() error {
	return ErrUnsupported
}

func (s *Stream) Sync() error {
	return ErrUnsupported
}

func (s *Stream) Truncate(size int64) error {
	return ErrUnsupported
}

func (s *Stream) SetBlocking(block bool) error {
	return ErrUnsupported
}

// Fd reports the file descriptor backing the stream. A Stream is not
// backed by an OS file, so ok is always false. This is not an error, just
// the answer.
func (s *Stream) Fd() (fd uintptr, ok bool) {
	return 0, false
}
