package main

import (
	"context"
	"fmt"
	"os"
	"time"

	desk "github.com/goliatone/go-desk"
)

type command func(ctx context.Context, a *app, args []string) error

var commands = map[string]command{
	"login":   loginCommand,
	"logout":  logoutCommand,
	"tickets": ticketsCommand,
	"open":    openCommand,
	"close":   closeCommand,
	"whoami":  whoamiCommand,
}

// exitError exits with code without printing, the console already showed
// the failure to the user
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func (e exitError) ExitCode() int {
	return e.code
}

func handled(err error) error {
	if err == nil {
		return nil
	}
	return exitError{code: 1}
}

func loginCommand(ctx context.Context, a *app, args []string) error {
	var email, password string

	flagSet := commandFlags("login", a.stderr)
	flagSet.StringVar(&email, "email", "", "account email")
	flagSet.StringVar(&password, "password", "", "account password (default $DESK_PASSWORD)")
	if err := parseCommand(flagSet, args); err != nil {
		return err
	}

	if password == "" {
		password = os.Getenv("DESK_PASSWORD")
	}

	_, err := a.login.Login(ctx, desk.LoginRequest{Email: email, Password: password})
	return handled(err)
}

func logoutCommand(ctx context.Context, a *app, args []string) error {
	if len(args) > 0 {
		return usageError{err: fmt.Errorf("unexpected argument: %s", args[0])}
	}
	return a.tickets.Logout(ctx)
}

func ticketsCommand(ctx context.Context, a *app, args []string) error {
	if len(args) > 0 {
		return usageError{err: fmt.Errorf("unexpected argument: %s", args[0])}
	}
	_, err := a.tickets.ListOwnTickets(ctx)
	return handled(err)
}

func openCommand(ctx context.Context, a *app, args []string) error {
	var input desk.TicketInput

	flagSet := commandFlags("open", a.stderr)
	flagSet.StringVar(&input.Title, "title", "", "ticket title")
	flagSet.StringVar(&input.Description, "description", "", "ticket description")
	flagSet.StringVar(&input.Category, "category", "", fmt.Sprintf("ticket category %v", a.opts.GetCategories()))
	if err := parseCommand(flagSet, args); err != nil {
		return err
	}

	return handled(a.tickets.CreateTicket(ctx, input))
}

func closeCommand(ctx context.Context, a *app, args []string) error {
	if len(args) != 1 {
		return usageError{err: fmt.Errorf("close takes exactly one ticket id")}
	}
	return handled(a.tickets.Dispatch(ctx, desk.Command{Action: desk.ActionClose, TicketID: args[0]}))
}

func whoamiCommand(ctx context.Context, a *app, args []string) error {
	token, ok := a.session.Credential(ctx)
	if !ok {
		a.console.Notify(desk.MsgSessionNotFound)
		return exitError{code: 1}
	}

	claims, err := desk.InspectToken(token)
	if err != nil {
		a.console.Notify(desk.UserMessage(err))
		return exitError{code: 1}
	}

	out := a.console.Writer()
	fmt.Fprintf(out, "subject: %s\n", claims.Subject())
	fmt.Fprintf(out, "role:    %s\n", claims.Role())
	if exp := claims.Expires(); !exp.IsZero() {
		state := "valid"
		if claims.Expired(time.Now()) {
			state = "expired"
		}
		fmt.Fprintf(out, "expires: %s (%s)\n", exp.Format(time.RFC3339), state)
	}
	fmt.Fprintln(out, "claims are decoded locally and not verified")
	return nil
}
