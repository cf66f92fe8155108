package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gsheet-keyring/gsheet-keyring/commands"
)

var cli = []commands.Command{
	&commands.VersionCmd,
	&commands.AuthoriseCmd,
	&commands.GetCmd,
	&commands.SetCmd,
	&commands.DeleteCmd,
	&commands.ExportCmd,
	&commands.ImportCmd,
	&commands.ProbeCmd,
}

var options = commands.Options{
	Debug: false,
}

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	if args[0] == "help" {
		help(args[1:])
		return
	}

	cmd := lookup(args[0])
	if cmd == nil {
		fmt.Printf("\nError parsing command line: invalid command %q\n\n", args[0])
		usage()
		os.Exit(1)
	}

	flagset := cmd.FlagSet()
	if err := flagset.Parse(args[1:]); err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if err := cmd.Execute(ctx, &options); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}

func lookup(name string) commands.Command {
	for _, cmd := range cli {
		if cmd.Name() == name {
			return cmd
		}
	}

	return nil
}

func usage() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] <command> [options]\n", commands.APP)
	fmt.Println()
	fmt.Println("  Commands:")
	fmt.Println()

	for _, cmd := range cli {
		fmt.Printf("    %-10s %s\n", cmd.Name(), cmd.Description())
	}

	fmt.Println()
	fmt.Printf("  Use '%s help <command>' for command specific information\n", commands.APP)
	fmt.Println()
}

func help(args []string) {
	if len(args) == 0 {
		usage()
		return
	}

	cmd := lookup(args[0])
	if cmd == nil {
		fmt.Printf("\nInvalid command %q\n", args[0])
		usage()
		return
	}

	cmd.Help()
}
