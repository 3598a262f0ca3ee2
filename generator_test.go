package genio_test

import (
	"errors"
	"io"
	"slices"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/lesomnus/genio"
	"github.com/stretchr/testify/require"
)

func TestChunks(t *testing.T) {
	t.Run("yields each value once, in order", func(t *testing.T) {
		x := require.New(t)

		g := genio.Chunks("a", "", "b")

		for _, want := range []string{"a", "", "b"} {
			v, err := g()
			x.NoError(err)
			x.Equal(want, v)
		}

		_, err := g()
		x.ErrorIs(err, io.EOF)
	})
	t.Run("empty sequence is exhausted immediately", func(t *testing.T) {
		_, err := genio.Chunks()()
		require.ErrorIs(t, err, io.EOF)
	})
}

func TestFromChan(t *testing.T) {
	t.Run("receives until the channel is closed", func(t *testing.T) {
		x := require.New(t)

		c := make(chan string, 2)
		c <- "a"
		c <- "b"
		close(c)

		g := genio.FromChan(c)

		v, err := g()
		x.NoError(err)
		x.Equal("a", v)

		v, err = g()
		x.NoError(err)
		x.Equal("b", v)

		_, err = g()
		x.ErrorIs(err, io.EOF)
	})
}

func TestFromSeq(t *testing.T) {
	t.Run("drains the sequence", func(t *testing.T) {
		x := require.New(t)

		s := genio.New(genio.FromSeq(slices.Values([]string{"a", "b"})))
		defer s.Close()

		vs, err := s.Lines()
		x.NoError(err)
		x.Equal([]string{"a", "b"}, vs)
	})
}

func TestFromReader(t *testing.T) {
	t.Run("pulls chunks of up to size bytes", func(t *testing.T) {
		x := require.New(t)

		g := genio.FromReader(strings.NewReader("abcde"), 2)

		for _, want := range []string{"ab", "cd", "e"} {
			v, err := g()
			x.NoError(err)
			x.Equal(want, v)
		}

		_, err := g()
		x.ErrorIs(err, io.EOF)
	})
	t.Run("reader failure surfaces unchanged", func(t *testing.T) {
		x := require.New(t)

		errBroken := errors.New("broken")
		s := genio.New(genio.FromReader(iotest.ErrReader(errBroken), 8))
		defer s.Close()

		_, err := s.NextLine()
		x.ErrorIs(err, errBroken)
	})
	t.Run("whole stream passes through untouched", func(t *testing.T) {
		x := require.New(t)

		const data = "The quick brown fox jumps over the lazy dog."

		s := genio.New(genio.FromReader(strings.NewReader(data), 7))
		defer s.Close()

		v, err := io.ReadAll(s)
		x.NoError(err)
		x.Equal(data, string(v))
	})
	t.Run("panics when size is not positive", func(t *testing.T) {
		require.Panics(t, func() { genio.FromReader(strings.NewReader(""), 0) })
	})
}
