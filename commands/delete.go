package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/gsheet-keyring/gsheet-keyring/keyring"
)

var DeleteCmd = Delete{
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

type Delete struct {
	command
	service string
	user    string
}

func (cmd *Delete) Name() string {
	return "delete"
}

func (cmd *Delete) Description() string {
	return "Removes the password for a service and user from the keyring spreadsheet"
}

func (cmd *Delete) Usage() string {
	return "--service <service> --user <user>"
}

func (cmd *Delete) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] delete [options] --service <service> --user <user>\n", APP)
	fmt.Println()
	fmt.Println("  Removes the password for a service and user from the keyring spreadsheet")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    gsheet-keyring delete --service "gmail" --user "alice"`)
	fmt.Println()
}

func (cmd *Delete) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("delete")

	flagset.StringVar(&cmd.service, "service", cmd.service, "Service name")
	flagset.StringVar(&cmd.user, "user", cmd.user, "User name")

	return flagset
}

func (cmd *Delete) Execute(ctx context.Context, options *Options) error {
	cmd.debug = options.Debug

	// ... check parameters
	if strings.TrimSpace(cmd.service) == "" {
		return fmt.Errorf("--service is a required option")
	}

	if strings.TrimSpace(cmd.user) == "" {
		return fmt.Errorf("--user is a required option")
	}

	backend, err := cmd.keyring(ctx)
	if err != nil {
		return err
	}

	if err := backend.DeletePassword(ctx, cmd.service, cmd.user); errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("no password for service %q and user %q", cmd.service, cmd.user)
	} else if err != nil {
		return fmt.Errorf("unable to delete password (%w)", err)
	}

	infof("Deleted password for service %q and user %q", cmd.service, cmd.user)

	return nil
}
