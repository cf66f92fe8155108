package commands

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/gsheet-keyring/gsheet-keyring/keyring"
)

const APP = "gsheet-keyring"

// Options are the top-level CLI options, shared by all commands.
type Options struct {
	Debug bool
}

// Command is the contract implemented by each CLI subcommand.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *flag.FlagSet
	Execute(ctx context.Context, options *Options) error
}

// conf holds the environment defaults for the command flags.
var conf = configure()

func configure() Config {
	c, err := NewConfig()
	if err != nil {
		warnf("%v", err)
	}

	return c
}

// command holds the flags common to the commands that access the backing
// spreadsheet.
type command struct {
	workdir     string
	credentials string
	url         string
	key         string
	title       string
	window      time.Duration
	debug       bool
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.workdir, "workdir", c.workdir, "Directory for working files (tokens, etc)")
	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the OAuth2 'credentials.json' file")
	flagset.StringVar(&c.url, "url", c.url, "Spreadsheet URL")
	flagset.StringVar(&c.key, "key", c.key, "Spreadsheet key")
	flagset.StringVar(&c.title, "title", c.title, fmt.Sprintf("Spreadsheet document title. Defaults to '%s'", keyring.DefaultTitle))

	return flagset
}

func (c *command) tokens() string {
	return filepath.Join(c.workdir, ".google", "tokens.json")
}

// keyring resolves the command flags to a backend instance.
func (c *command) keyring(ctx context.Context) (*keyring.Backend, error) {
	if c.debug {
		debugf("Spreadsheet - url:%q  key:%q  title:%q", c.url, c.key, c.title)
	}

	backend, err := keyring.NewBackend(ctx, c.config())
	if err != nil {
		return nil, fmt.Errorf("unable to open keyring spreadsheet (%w)", err)
	}

	return backend, nil
}

func (c *command) config() keyring.Config {
	return keyring.Config{
		URL:         c.url,
		Key:         c.key,
		Title:       c.title,
		Credentials: c.credentials,
		Tokens:      c.tokens(),
		Window:      c.window,
	}
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")
	fmt.Println()

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-12s %s\n", f.Name, f.Usage)
	})
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
