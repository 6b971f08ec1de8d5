package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/foxboron/go-execinfo/efi/signature"
	"github.com/foxboron/go-execinfo/presenter"
)

type cmdSiglist struct {
	global *cmdGlobal
}

func (c *cmdSiglist) command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "siglist <file>"
	cmd.Short = "Print the signature lists in an EFI signature list file"
	cmd.Args = cobra.ExactArgs(1)
	cmd.RunE = c.run

	return cmd
}

func (c *cmdSiglist) run(_ *cobra.Command, args []string) error {
	b, err := afero.ReadFile(c.global.fs, args[0])
	if errors.Is(err, os.ErrNotExist) {
		return errNoEntries
	}
	if err != nil {
		return errors.Wrapf(err, "could not read %s", args[0])
	}
	return printSignatureLists(c.global, b)
}

func printSignatureLists(g *cmdGlobal, b []byte) error {
	n, err := presenter.New(g.stdout).PrintSignatureLists(signature.WalkSignatureLists(b))
	if err != nil {
		return errors.Wrap(err, "could not print signature lists")
	}
	if n == 0 {
		return errNoEntries
	}
	return nil
}
