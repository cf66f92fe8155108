package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

var SetCmd = Set{
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

type Set struct {
	command
	service  string
	user     string
	password string
}

func (cmd *Set) Name() string {
	return "set"
}

func (cmd *Set) Description() string {
	return "Stores the password for a service and user in the keyring spreadsheet"
}

func (cmd *Set) Usage() string {
	return "--service <service> --user <user> [--password <password>]"
}

func (cmd *Set) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] set [options] --service <service> --user <user> [--password <password>]\n", APP)
	fmt.Println()
	fmt.Println("  Stores the password for a service and user. If --password is omitted the password is read from stdin.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    gsheet-keyring set --service "gmail" --user "alice" --password "squeamish-ossifrage"`)
	fmt.Println(`    echo "squeamish-ossifrage" | gsheet-keyring set --service "gmail" --user "alice"`)
	fmt.Println()
}

func (cmd *Set) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("set")

	flagset.StringVar(&cmd.service, "service", cmd.service, "Service name")
	flagset.StringVar(&cmd.user, "user", cmd.user, "User name")
	flagset.StringVar(&cmd.password, "password", cmd.password, "Password. Read from stdin if omitted")

	return flagset
}

func (cmd *Set) Execute(ctx context.Context, options *Options) error {
	cmd.debug = options.Debug

	// ... check parameters
	if strings.TrimSpace(cmd.service) == "" {
		return fmt.Errorf("--service is a required option")
	}

	if strings.TrimSpace(cmd.user) == "" {
		return fmt.Errorf("--user is a required option")
	}

	password := cmd.password
	if password == "" {
		p, err := readPassword(os.Stdin)
		if err != nil {
			return err
		}

		password = p
	}

	backend, err := cmd.keyring(ctx)
	if err != nil {
		return err
	}

	if err := backend.SetPassword(ctx, cmd.service, cmd.user, password); err != nil {
		return fmt.Errorf("unable to store password (%w)", err)
	}

	infof("Stored password for service %q and user %q", cmd.service, cmd.user)

	return nil
}

func readPassword(f io.Reader) (string, error) {
	fmt.Print("Password: ")

	password, err := bufio.NewReader(f).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("unable to read password (%v)", err)
	}

	password = strings.TrimRight(password, "\r\n")
	if password == "" {
		return "", fmt.Errorf("password cannot be blank")
	}

	return password, nil
}
