package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/gsheet-keyring/gsheet-keyring/keyring"
)

var AuthoriseCmd = Authorise{
	command: command{
		workdir:     conf.Workdir,
		credentials: conf.Credentials,
		debug:       false,
	},
}

type Authorise struct {
	command
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises " + APP + " to access the keyring Google Sheets spreadsheet"
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file>"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] authorise [options]\n", APP)
	fmt.Println()
	fmt.Println("  Runs the interactive OAuth2 flow and caches the retrieved token for subsequent commands")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    gsheet-keyring authorise --credentials "credentials.json"`)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("authorise", flag.ExitOnError)

	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, "Directory for working files (tokens, etc)")
	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, "Path for the OAuth2 'credentials.json' file")

	return flagset
}

func (cmd *Authorise) Execute(ctx context.Context, options *Options) error {
	cmd.debug = options.Debug

	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	config, err := oauthConfig(cmd.credentials, keyring.DRIVE)
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%v)", err)
	}

	token, err := getTokenFromWeb(ctx, config)
	if err != nil {
		return err
	}

	if err := saveToken(cmd.tokens(), token); err != nil {
		return err
	}

	infof("Saved OAuth2 token to %s", cmd.tokens())

	return nil
}
