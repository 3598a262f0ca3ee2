package genio

import (
	"io"

	"golang.org/x/exp/constraints"
)

// Tap invokes f on every chunk g yields.
func Tap(g Generator, f func(v string)) Generator {
	return func() (string, error) {
		v, err := g()
		if err != nil {
			return v, err
		}

		f(v)
		return v, nil
	}
}

// Map rewrites every chunk g yields with f.
func Map(g Generator, f func(v string) string) Generator {
	return func() (string, error) {
		v, err := g()
		if err != nil {
			return v, err
		}
		return f(v), nil
	}
}

// Take ends the sequence after n chunks. The wrapped generator is not
// pulled once the limit is reached, and a failed pull does not count
// against it.
func Take[N constraints.Integer](g Generator, n N) Generator {
	return func() (string, error) {
		if n <= 0 {
			return "", io.EOF
		}

		v, err := g()
		if err != nil {
			return v, err
		}

		n--
		return v, nil
	}
}
