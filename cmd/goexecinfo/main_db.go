package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/foxboron/go-execinfo/efivar"
	"github.com/foxboron/go-execinfo/efivarfs"
)

type cmdDb struct {
	global *cmdGlobal
}

func (c *cmdDb) command() *cobra.Command {
	var names []string
	for _, v := range efivar.SignatureDatabases {
		names = append(names, v.Name)
	}

	cmd := &cobra.Command{}
	cmd.Use = "db <name>"
	cmd.Short = "Print a secure boot signature database"
	cmd.Long = formatSection("Description",
		fmt.Sprintf(`Print a secure boot signature database

The variable is read from efivarfs. Known databases: %s.`, strings.Join(names, ", ")))
	cmd.Args = cobra.ExactArgs(1)
	cmd.RunE = c.run

	return cmd
}

func (c *cmdDb) run(_ *cobra.Command, args []string) error {
	v, ok := efivar.LookupSignatureDatabase(args[0])
	if !ok {
		return fmt.Errorf("unknown signature database %q", args[0])
	}

	e := efivarfs.Open(c.global.fs, c.global.flagEfivars)
	if sb, err := e.GetSecureBoot(); err == nil {
		log.Infof("secure boot enabled: %v", sb)
	}

	b, err := e.GetSignatureDatabase(v)
	switch {
	case errors.Is(err, efivarfs.ErrNotFound):
		return errNoEntries
	case errors.Is(err, efivarfs.ErrIncorrectAttributes):
		log.Warnf("%s has unexpected attributes", v.Name)
	case err != nil:
		return err
	}
	return printSignatureLists(c.global, b)
}
