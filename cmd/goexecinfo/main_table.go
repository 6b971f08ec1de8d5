package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/foxboron/go-execinfo/efi/execinfo"
	"github.com/foxboron/go-execinfo/locator"
	"github.com/foxboron/go-execinfo/presenter"
)

type cmdTable struct {
	global *cmdGlobal

	flagMmap bool
}

func (c *cmdTable) command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "table <file>"
	cmd.Short = "Print an image execution info table dump"
	cmd.Long = formatSection("Description",
		`Print an image execution info table dump

The file holds the raw EFI_IMAGE_EXECUTION_INFO_TABLE, starting with the
64-bit number of images.`)
	cmd.Args = cobra.ExactArgs(1)
	cmd.RunE = c.run

	cmd.Flags().BoolVar(&c.flagMmap, "mmap", false, "Map the file read-only instead of reading it")

	return cmd
}

func (c *cmdTable) locator(path string) locator.Locator {
	if c.flagMmap {
		return &locator.Mmap{Path: path}
	}
	return &locator.File{Fs: c.global.fs, Path: path}
}

func (c *cmdTable) run(_ *cobra.Command, args []string) error {
	table, err := c.locator(args[0]).Locate()
	if errors.Is(err, locator.ErrNotFound) {
		return errNoEntries
	}
	if err != nil {
		return err
	}
	defer table.Close()

	t := execinfo.ParseTable(table.Data)
	log.Debugf("table declares %d images", t.NumberOfImages)

	n, err := presenter.New(c.global.stdout).PrintTable(t.Records())
	if err != nil {
		return errors.Wrap(err, "could not print table")
	}
	if uint64(n) != t.NumberOfImages {
		log.Warnf("table declares %d images, %d could be decoded", t.NumberOfImages, n)
	}
	if n == 0 {
		return errNoEntries
	}
	return nil
}
