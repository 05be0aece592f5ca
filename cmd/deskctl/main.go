// deskctl is a terminal client for the support ticket desk. It logs in
// against the desk backend, keeps the bearer token in a local store and
// lists, opens and closes the user's tickets.
//
// Usage:
//
//	deskctl [global flags] <command> [command flags]
//
// Commands: login, logout, tickets, open, close, whoami.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	err := execute(args, stdout, stderr)

	var usage usageError
	if errors.As(err, &usage) && !usage.shown {
		fmt.Fprintf(stderr, "error: %v\n", usage.err)
	}
	return err
}

func execute(args []string, stdout, stderr io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	global, rest, err := parseGlobal(args, stderr)
	if err != nil {
		return err
	}
	if global.help || len(rest) == 0 {
		printUsage(stderr)
		return nil
	}

	cmd, ok := commands[rest[0]]
	if !ok {
		printUsage(stderr)
		return usageError{err: fmt.Errorf("unknown command %q", rest[0])}
	}

	a, err := newApp(ctx, global, stdout, stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	return cmd(ctx, a, rest[1:])
}

// usageError exits with status 2. shown is set when pflag already
// printed the reason.
type usageError struct {
	err   error
	shown bool
}

func (e usageError) Error() string {
	return e.err.Error()
}

func (e usageError) ExitCode() int {
	return 2
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `deskctl, terminal client for the support ticket desk.

Usage:
  deskctl [global flags] <command> [command flags]

Commands:
  login    --email <email> --password <password>
  logout
  tickets  list your open tickets
  open     --category <category> [--title <title>] [--description <text>]
  close    <ticket id>
  whoami   show the claims of the stored token (not verified)

Global flags:
  --config <path>      YAML config file
  --base-url <url>     desk backend base URL
  --store <kind>       credential store: memory, file or sqlite
  --store-path <path>  credential store location for file and sqlite
  --debug              verbose logging
`)
}
