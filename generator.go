package genio

import (
	"io"
	"iter"
)

// Chunks returns a Generator that yields each of vs once, in order.
func Chunks(vs ...string) Generator {
	i := 0
	return func() (string, error) {
		if i >= len(vs) {
			return "", io.EOF
		}

		v := vs[i]
		i++
		return v, nil
	}
}

// FromChan returns a Generator that receives from c. A pull blocks until a
// value is available; the sequence ends when c is closed.
func FromChan(c <-chan string) Generator {
	return func() (string, error) {
		v, ok := <-c
		if !ok {
			return "", io.EOF
		}
		return v, nil
	}
}

// FromSeq returns a Generator that drains seq.
func FromSeq(seq iter.Seq[string]) Generator {
	next, stop := iter.Pull(seq)
	return func() (string, error) {
		v, ok := next()
		if !ok {
			stop()
			return "", io.EOF
		}
		return v, nil
	}
}

// FromReader returns a Generator that pulls chunks of up to size bytes from
// r. The reader's io.EOF becomes the exhaustion of the generator; any other
// read error is a generator failure and surfaces unchanged.
func FromReader(r io.Reader, size int) Generator {
	if size <= 0 {
		panic("chunk size must be positive")
	}
	return func() (string, error) {
		p := make([]byte, size)
		n, err := r.Read(p)
		if n == 0 && err != nil {
			return "", err
		}
		return string(p[:n]), nil
	}
}
