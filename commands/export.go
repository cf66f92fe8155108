package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gsheet-keyring/gsheet-keyring/keyring"
)

var ExportCmd = Export{
	command: command{
		workdir:     conf.Workdir,
		credentials: conf.Credentials,
		url:         conf.URL,
		key:         conf.Key,
		title:       conf.Title,
		window:      conf.Window,
		debug:       false,
	},

	file: time.Now().Format("keyring 2006-01-02T150405.tsv"),
}

type Export struct {
	command
	file string
}

func (cmd *Export) Name() string {
	return "export"
}

func (cmd *Export) Description() string {
	return "Downloads the keyring spreadsheet to a TSV file"
}

func (cmd *Export) Usage() string {
	return "--file <file>"
}

func (cmd *Export) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] export [options] --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads the keyring spreadsheet to a TSV file. The TSV file contains the passwords in plaintext -")
	fmt.Println("  treat it with the same care as the spreadsheet itself.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    gsheet-keyring export --file "keyring.tsv"`)
	fmt.Println()
}

func (cmd *Export) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("export")

	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name. Defaults to 'keyring <yyyy-mm-ddTHHmmss>.tsv'")

	return flagset
}

func (cmd *Export) Execute(ctx context.Context, options *Options) error {
	cmd.debug = options.Debug

	backend, err := cmd.keyring(ctx)
	if err != nil {
		return err
	}

	credentials, err := backend.List(ctx)
	if err != nil {
		return fmt.Errorf("unable to retrieve credentials from sheet (%w)", err)
	}

	tmp, err := os.CreateTemp(os.TempDir(), "keyring")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := keyring.MakeTSV(tmp, credentials); err != nil {
		return fmt.Errorf("error creating TSV file (%v)", err)
	}

	tmp.Close()

	dir := filepath.Dir(cmd.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), cmd.file); err != nil {
		return err
	}

	infof("Exported %v credentials to file %s", len(credentials), cmd.file)

	return nil
}
