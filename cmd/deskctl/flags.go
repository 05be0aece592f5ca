package main

import (
	"io"

	"github.com/spf13/pflag"
)

type globalFlags struct {
	config    string
	baseURL   string
	store     string
	storePath string
	debug     bool
	help      bool
}

// parseGlobal parses flags up to the first command name
func parseGlobal(args []string, stderr io.Writer) (globalFlags, []string, error) {
	var g globalFlags

	flagSet := pflag.NewFlagSet("deskctl", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.SetInterspersed(false)
	flagSet.StringVar(&g.config, "config", "", "YAML config file")
	flagSet.StringVar(&g.baseURL, "base-url", "", "desk backend base URL")
	flagSet.StringVar(&g.store, "store", "", "credential store: memory, file or sqlite")
	flagSet.StringVar(&g.storePath, "store-path", "", "credential store location")
	flagSet.BoolVar(&g.debug, "debug", false, "verbose logging")
	flagSet.BoolVarP(&g.help, "help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			g.help = true
			return g, nil, nil
		}
		return g, nil, usageError{err: err, shown: true}
	}

	return g, flagSet.Args(), nil
}

func commandFlags(name string, stderr io.Writer) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	return flagSet
}

// parseCommand parses subcommand flags. pflag prints both the help text
// and parse failures on the flag set output.
func parseCommand(flagSet *pflag.FlagSet, args []string) error {
	err := flagSet.Parse(args)
	switch {
	case err == nil:
		return nil
	case err == pflag.ErrHelp:
		return exitError{code: 0}
	default:
		return usageError{err: err, shown: true}
	}
}
