package desk

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Logger takes a message followed by key/value pairs
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// CredentialStore is the durable local store that holds the bearer token
// under a fixed key. Get returns an empty string when nothing is stored.
type CredentialStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Navigator moves the user to a different page or screen
type Navigator interface {
	Navigate(destination string)
}

// Notifier shows a blocking notice to the user
type Notifier interface {
	Notify(message string)
}

// TicketView renders the ticket list state
type TicketView interface {
	Render(state ListState)
}

// TicketForm is the ticket creation form
type TicketForm interface {
	Reset()
}

// LoginPayload carries the login form values
type LoginPayload interface {
	GetIdentifier() string
	GetPassword() string
}

// Config holds client options
type Config interface {
	GetBaseURL() string
	GetLoginPath() string
	GetTicketsPath() string
	GetCreateTicketPath() string
	GetCloseTicketPath(ticketID string) string
	GetAuthScheme() string
	GetTokenKey() string
	GetLoginRoute() string
	GetDefaultLanding() string
	GetLandings() map[string]string
	GetCategories() []Category
	GetDebug() bool
}

type NavigatorFunc func(destination string)

func (f NavigatorFunc) Navigate(destination string) {
	if f != nil {
		f(destination)
	}
}

type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) {
	if f != nil {
		f(message)
	}
}

type TicketViewFunc func(state ListState)

func (f TicketViewFunc) Render(state ListState) {
	if f != nil {
		f(state)
	}
}

type noopForm struct{}

func (noopForm) Reset() {}

type noopNavigator struct{}

func (noopNavigator) Navigate(string) {}

type noopNotifier struct{}

func (noopNotifier) Notify(string) {}

type noopView struct{}

func (noopView) Render(ListState) {}

type defLogger struct{}

func (d defLogger) Error(msg string, args ...any) {
	d.log("ERR", msg, args...)
}

func (d defLogger) Warn(msg string, args ...any) {
	d.log("WRN", msg, args...)
}

func (d defLogger) Info(msg string, args ...any) {
	d.log("INF", msg, args...)
}

func (d defLogger) Debug(msg string, args ...any) {
	d.log("DBG", msg, args...)
}

func (d defLogger) log(level, msg string, args ...any) {
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			fmt.Fprintf(&b, " %v=%v", args[i], args[i+1])
		} else {
			fmt.Fprintf(&b, " %v", args[i])
		}
	}
	fmt.Fprintf(os.Stderr, "[%s] DESK %s\n", level, b.String())
}
