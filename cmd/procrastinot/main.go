// Package main is the entry point for the procrastinot CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/runoshun/procrastinot/internal/app"
	"github.com/runoshun/procrastinot/internal/cli"
	"github.com/spf13/pflag"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR: "+cli.UserMessage(err))
		os.Exit(1)
	}
}

func run(args []string) error {
	// Create dependency injection container
	container, err := app.New(app.Options{ConfigPath: configPathFromArgs(args)})
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// configPathFromArgs reads --config from the leading flags. The container
// needs the config before cobra parses the command line.
func configPathFromArgs(args []string) string {
	fs := pflag.NewFlagSet("procrastinot", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SetInterspersed(false)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	path := fs.String("config", "", "")
	_ = fs.Parse(args)
	return *path
}
