package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lesomnus/genio"
	"github.com/lesomnus/xli"
	"github.com/lesomnus/xli/arg"
	"github.com/lesomnus/xli/flg"
)

func NewCmdLines() *xli.Command {
	return &xli.Command{
		Name:  "lines",
		Brief: "print the file line by line",

		Flags: flg.Flags{
			&flg.Switch{Name: "quote", Alias: 'q'},
		},
		Args: arg.Args{
			&arg.String{
				Name: "file",
			},
		},

		Handler: xli.OnRun(func(ctx context.Context, cmd *xli.Command, next xli.Next) error {
			quote := false
			flg.Visit(cmd, "quote", func(v bool) { quote = v })

			filename := arg.MustGet[string](cmd, "file")

			f, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("open: %w", err)
			}
			defer f.Close()

			br := bufio.NewReader(f)
			s := genio.New(func() (string, error) {
				v, err := br.ReadString('\n')
				if err == io.EOF && v != "" {
					// Last line without a newline.
					return v, nil
				}
				return v, err
			})
			defer s.Close()

			for {
				v, err := s.NextLine()
				if err != nil {
					if errors.Is(err, io.EOF) {
						break
					}
					return fmt.Errorf("read next: %w", err)
				}

				if quote {
					cmd.Printf("%q\n", v)
				} else {
					cmd.Print(v)
				}
			}

			return next(ctx)
		}),
	}
}
