// Package main is the goexecinfo tool. It prints the image execution info
// table and the secure boot signature databases.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/foxboron/go-execinfo/efi/attributes"
)

var log = logrus.WithField("service", "goexecinfo")

// Low bits of EFI_NOT_FOUND
const exitNotFound = 14

var errNoEntries = errors.New("no entries")

type cmdGlobal struct {
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer

	flagLogLevel string
	flagEfivars  string
}

func main() {
	os.Exit(execute(os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr))
}

func execute(args []string, fs afero.Fs, stdout, stderr io.Writer) int {
	globalCmd := &cmdGlobal{fs: fs, stdout: stdout, stderr: stderr}
	app := globalCmd.command()
	app.SetArgs(args)
	app.SetOut(stdout)
	app.SetErr(stderr)

	err := app.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNoEntries):
		_, _ = fmt.Fprintln(stdout, "No entries.")
		return exitNotFound
	default:
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

func (c *cmdGlobal) command() *cobra.Command {
	efivars := os.Getenv("GOEXECINFO_EFIVARS")
	if efivars == "" {
		efivars = attributes.Efivars
	}

	app := &cobra.Command{
		Use:   "goexecinfo",
		Short: "Print the EFI image execution info table",
		Long: formatSection("Description",
			`Print the EFI image execution info table

Every image the firmware tried to load is listed with its device path, name,
verification state and the signature lists used to authenticate it.`),
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: c.setup,
	}

	app.PersistentFlags().StringVar(&c.flagLogLevel, "log-level", "warn", "Log level: trace, debug, info, warn or error")
	app.PersistentFlags().StringVar(&c.flagEfivars, "efivars", efivars, "Path to the efivarfs mount (env GOEXECINFO_EFIVARS)")

	tableCmd := cmdTable{global: c}
	app.AddCommand(tableCmd.command())

	siglistCmd := cmdSiglist{global: c}
	app.AddCommand(siglistCmd.command())

	dbCmd := cmdDb{global: c}
	app.AddCommand(dbCmd.command())

	return app
}

func (c *cmdGlobal) setup(_ *cobra.Command, _ []string) error {
	level, err := logrus.ParseLevel(c.flagLogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	logrus.SetOutput(c.stderr)
	return nil
}
