package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	desk "github.com/goliatone/go-desk"
)

const (
	columnWidthID       = 6
	columnWidthTitle    = 32
	columnWidthClient   = 16
	columnWidthCategory = 10
	columnWidthPriority = 8
	columnWidthStatus   = 8
)

var (
	_ desk.Navigator  = (*Console)(nil)
	_ desk.Notifier   = (*Console)(nil)
	_ desk.TicketView = (*Console)(nil)
	_ desk.TicketForm = (*Console)(nil)
)

// Console renders the desk collaborators as lines on a writer. A single
// Console serves as navigator, notifier, list view and form.
type Console struct {
	mu       sync.Mutex
	out      io.Writer
	theme    Theme
	location string
	quiet    bool
	program  string
}

type ConsoleOption func(*Console)

func WithTheme(theme Theme) ConsoleOption {
	return func(c *Console) {
		c.theme = theme
	}
}

// WithQuietLoading hides the transient loading state
func WithQuietLoading(quiet bool) ConsoleOption {
	return func(c *Console) {
		c.quiet = quiet
	}
}

// WithProgramName sets the name used in row hints
func WithProgramName(name string) ConsoleOption {
	return func(c *Console) {
		if name != "" {
			c.program = name
		}
	}
}

func NewConsole(out io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{
		out:     out,
		theme:   DefaultTheme,
		quiet:   true,
		program: "deskctl",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Writer returns the underlying writer
func (c *Console) Writer() io.Writer {
	return c.out
}

// Location returns the last destination passed to Navigate
func (c *Console) Location() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.location
}

func (c *Console) Navigate(destination string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.location = destination
	style := lipgloss.NewStyle().Foreground(c.theme.RouteForeground)
	fmt.Fprintln(c.out, style.Render("→ "+destination))
}

func (c *Console) Notify(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	style := lipgloss.NewStyle().Foreground(c.theme.NoticeForeground).Bold(true)
	fmt.Fprintln(c.out, style.Render("! "+message))
}

// Reset is a no-op, the form lives in command line flags
func (c *Console) Reset() {}

func (c *Console) Render(state desk.ListState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch state.Kind {
	case desk.ListLoading:
		if !c.quiet {
			c.line(c.theme.FaintText, "Loading tickets...")
		}
	case desk.ListSessionMissing:
		c.line(c.theme.ErrorForeground, state.Message)
		if state.LoginLink != "" {
			c.line(c.theme.FaintText, fmt.Sprintf("Log in at %s (%s login)", state.LoginLink, c.program))
		}
	case desk.ListFailed:
		c.line(c.theme.ErrorForeground, state.Message)
	case desk.ListEmpty:
		c.line(c.theme.FaintText, state.Message)
	case desk.ListLoaded:
		fmt.Fprintln(c.out, c.table(state.Rows))
	}
}

func (c *Console) line(color lipgloss.Color, text string) {
	fmt.Fprintln(c.out, lipgloss.NewStyle().Foreground(color).Render(text))
}

func (c *Console) table(rows []desk.Row) string {
	headerStyle := lipgloss.NewStyle().
		Foreground(c.theme.HeaderForeground).
		Bold(true)

	lines := make([]string, 0, len(rows)+3)
	lines = append(lines, headerStyle.Render(c.cells("ID", "TITLE", "CLIENT", "CATEGORY", "PRIORITY", "STATUS")))

	separator := lipgloss.NewStyle().Foreground(c.theme.BorderColor)
	width := columnWidthID + columnWidthTitle + columnWidthClient + columnWidthCategory + columnWidthPriority + columnWidthStatus + 5
	lines = append(lines, separator.Render(strings.Repeat("─", width)))

	for _, row := range rows {
		lines = append(lines, c.renderRow(row))
	}

	if len(rows) > 0 {
		hint := lipgloss.NewStyle().Foreground(c.theme.FaintText)
		lines = append(lines, hint.Render(fmt.Sprintf("Close a ticket with: %s close <id>", c.program)))
	}

	return strings.Join(lines, "\n")
}

func (c *Console) renderRow(row desk.Row) string {
	t := row.Ticket

	id := row.Close.TicketID
	if id == "" {
		id = "-"
	}

	idStyle := lipgloss.NewStyle().Width(columnWidthID).Foreground(c.theme.FaintText)
	titleStyle := lipgloss.NewStyle().Width(columnWidthTitle).Foreground(c.theme.NormalText)
	clientStyle := lipgloss.NewStyle().Width(columnWidthClient).Foreground(c.theme.NormalText)
	categoryStyle := lipgloss.NewStyle().Width(columnWidthCategory).Foreground(c.theme.NormalText)
	priorityStyle := lipgloss.NewStyle().Width(columnWidthPriority).Foreground(c.theme.PriorityColor(t.Priority))
	statusStyle := lipgloss.NewStyle().Width(columnWidthStatus).Foreground(c.theme.StatusColor(t.Status))

	return strings.Join([]string{
		idStyle.Render(truncate(id, columnWidthID)),
		titleStyle.Render(truncate(t.Title, columnWidthTitle)),
		clientStyle.Render(truncate(t.ClientName, columnWidthClient)),
		categoryStyle.Render(truncate(t.Category, columnWidthCategory)),
		priorityStyle.Render(truncate(t.Priority, columnWidthPriority)),
		statusStyle.Render(truncate(t.Status, columnWidthStatus)),
	}, " ")
}

func (c *Console) cells(id, title, client, category, priority, status string) string {
	return strings.Join([]string{
		lipgloss.NewStyle().Width(columnWidthID).Render(id),
		lipgloss.NewStyle().Width(columnWidthTitle).Render(title),
		lipgloss.NewStyle().Width(columnWidthClient).Render(client),
		lipgloss.NewStyle().Width(columnWidthCategory).Render(category),
		lipgloss.NewStyle().Width(columnWidthPriority).Render(priority),
		lipgloss.NewStyle().Width(columnWidthStatus).Render(status),
	}, " ")
}

// truncate shortens text to width cells, marking the cut with an ellipsis
func truncate(text string, width int) string {
	if lipgloss.Width(text) <= width {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
