// Package genio presents a pull generator as a readable stream.
//
// A Generator knows only how to hand over its next chunk. Stream wraps it
// so that code expecting line-oriented or byte-oriented reads, with
// buffering, short reads, and push-back, can consume it.
package genio

import (
	"errors"
	"fmt"
)

// Generator is a pull source of chunks. It returns the next chunk of the
// sequence, or io.EOF once nothing remains. Chunks may be empty; an empty
// chunk is not the end. A Generator is never called again by Stream after
// it first returns io.EOF. Any other error is a failure of the source
// itself and is reported unchanged to the caller of the operation that
// triggered the pull.
type Generator func() (string, error)

// ErrUnsupported is reported by the write and control operations of Stream,
// which have no meaning on a generator-backed stream.
var ErrUnsupported = fmt.Errorf("%w by a generator-backed stream", errors.ErrUnsupported)
