package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lesomnus/genio"
	"github.com/lesomnus/xli"
	"github.com/lesomnus/xli/arg"
	"github.com/lesomnus/xli/flg"
)

func NewCmdHead() *xli.Command {
	return &xli.Command{
		Name:  "head",
		Brief: "print the first bytes of the file",

		Flags: flg.Flags{
			&flg.Switch{Name: "hex", Alias: 'x'},
			&flg.Int64{Name: "size"},
		},
		Args: arg.Args{
			&arg.String{
				Name: "file",
			},
		},

		Handler: xli.OnRun(func(ctx context.Context, cmd *xli.Command, next xli.Next) error {
			const LineSize = 16

			printer := printByte
			flg.Visit(cmd, "hex", func(v bool) {
				if v {
					printer = printHex
				}
			})

			var size int64
			flg.VisitP(cmd, "size", &size)
			if size == 0 {
				size = 256
			}

			filename := arg.MustGet[string](cmd, "file")

			f, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("open: %w", err)
			}
			defer f.Close()

			s := genio.New(genio.FromReader(f, 64))
			defer s.Close()

			p := make([]byte, size)
			n, err := s.Read(p)
			if err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("read: %w", err)
			}

			l := &strings.Builder{}
			for i := 0; i < n; i += LineSize {
				l.Reset()
				for _, b := range p[i:min(i+LineSize, n)] {
					l.WriteString(" ")
					l.WriteString(printer(b))
				}
				l.WriteString("\n")
				cmd.Print(l.String())
			}

			return next(ctx)
		}),
	}
}

func printByte(b byte) string {
	if '!' < b && b <= '~' {
		return string(b)
	}
	return "."
}

func printHex(b byte) string {
	return fmt.Sprintf("%02x", b)
}
