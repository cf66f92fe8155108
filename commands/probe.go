package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/gsheet-keyring/gsheet-keyring/keyring"
)

var ProbeCmd = Probe{
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

type Probe struct {
	command
}

func (cmd *Probe) Name() string {
	return "probe"
}

func (cmd *Probe) Description() string {
	return "Checks whether the backend is usable and reports its selection priority"
}

func (cmd *Probe) Usage() string {
	return ""
}

func (cmd *Probe) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] probe [options]\n", APP)
	fmt.Println()
	fmt.Println("  Checks whether Google API credentials are resolvable and prints the priority score a")
	fmt.Println("  password-store dispatcher would use to select this backend (0 means unusable)")
	fmt.Println()

	helpOptions(cmd.FlagSet())
	fmt.Println()
}

func (cmd *Probe) FlagSet() *flag.FlagSet {
	return cmd.flagset("probe")
}

func (cmd *Probe) Execute(ctx context.Context, options *Options) error {
	cmd.debug = options.Debug

	priority := keyring.Priority(ctx, cmd.config())

	fmt.Printf("priority %v\n", priority)

	if priority == 0 {
		return fmt.Errorf("no usable Google API credentials - set GOOGLE_APPLICATION_CREDENTIALS or run 'authorise'")
	}

	return nil
}
