package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/gsheet-keyring/gsheet-keyring/keyring"
)

var GetCmd = Get{
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

type Get struct {
	command
	service string
	user    string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves the password for a service and user from the keyring spreadsheet"
}

func (cmd *Get) Usage() string {
	return "--service <service> --user <user>"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] get [options] --service <service> --user <user>\n", APP)
	fmt.Println()
	fmt.Println("  Retrieves the password for a service and user and prints it to stdout")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    gsheet-keyring get --service "gmail" --user "alice"`)
	fmt.Println(`    gsheet-keyring get --title "keyring" --service "gmail" --user "alice"`)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("get")

	flagset.StringVar(&cmd.service, "service", cmd.service, "Service name")
	flagset.StringVar(&cmd.user, "user", cmd.user, "User name")

	return flagset
}

func (cmd *Get) Execute(ctx context.Context, options *Options) error {
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

	password, err := backend.GetPassword(ctx, cmd.service, cmd.user)
	if errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("no password for service %q and user %q", cmd.service, cmd.user)
	} else if err != nil {
		return fmt.Errorf("unable to retrieve password (%w)", err)
	}

	fmt.Println(password)

	return nil
}
