package cmd

import (
	"github.com/lesomnus/xli"
	"github.com/lesomnus/xli/flg"
)

func NewCmdRoot() *xli.Command {
	return &xli.Command{
		Name:  "genio",
		Brief: "view a file through a generator stream",
		Flags: flg.Flags{},

		Commands: xli.Commands{
			NewCmdLines(),
			NewCmdHead(),
		},
		Handler: xli.Chain(
			xli.RequireSubcommand(),
		),
	}
}
