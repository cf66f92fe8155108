package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gsheet-keyring/gsheet-keyring/keyring"
)

var ImportCmd = Import{
	command: command{
		workdir:     conf.Workdir,
		credentials: conf.Credentials,
		url:         conf.URL,
		key:         conf.Key,
		title:       conf.Title,
		window:      conf.Window,
		debug:       false,
	},
}

type Import struct {
	command
	file string
}

func (cmd *Import) Name() string {
	return "import"
}

func (cmd *Import) Description() string {
	return "Loads credentials from a TSV file into the keyring spreadsheet"
}

func (cmd *Import) Usage() string {
	return "--file <file>"
}

func (cmd *Import) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] import [options] --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Loads credentials from a TSV file into the keyring spreadsheet, replacing any stored passwords")
	fmt.Println("  for the same service and user")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    gsheet-keyring import --file "keyring.tsv"`)
	fmt.Println()
}

func (cmd *Import) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("import")

	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file")

	return flagset
}

func (cmd *Import) Execute(ctx context.Context, options *Options) error {
	cmd.debug = options.Debug

	// ... check parameters
	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	f, err := os.Open(cmd.file)
	if err != nil {
		return err
	}

	defer f.Close()

	credentials, err := keyring.ParseTSV(f)
	if err != nil {
		return fmt.Errorf("invalid TSV file (%v)", err)
	}

	backend, err := cmd.keyring(ctx)
	if err != nil {
		return err
	}

	for _, c := range credentials {
		if err := backend.SetPassword(ctx, c.Service, c.Username, c.Password); err != nil {
			return fmt.Errorf("unable to store password for service %q and user %q (%w)", c.Service, c.Username, err)
		}
	}

	infof("Imported %v credentials from file %s", len(credentials), cmd.file)

	return nil
}
