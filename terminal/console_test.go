package terminal

import (
	"bytes"
	"strings"
	"testing"

	desk "github.com/goliatone/go-desk"
	"github.com/stretchr/testify/assert"
)

func ticketID(v int64) *int64 {
	return &v
}

func TestConsoleRendersLoadedRows(t *testing.T) {
	var out bytes.Buffer
	console := NewConsole(&out)

	console.Render(desk.ListState{
		Kind: desk.ListLoaded,
		Rows: []desk.Row{
			{
				Ticket: desk.Ticket{ID: ticketID(7), Title: "Printer", ClientName: "Ana Souza", Category: "Hardware", Priority: "Alta", Status: "Aberto"},
				Close:  desk.Command{Action: desk.ActionClose, TicketID: "7"},
			},
		},
	})

	text := out.String()
	assert.Contains(t, text, "TITLE")
	assert.Contains(t, text, "Printer")
	assert.Contains(t, text, "CLIENT")
	assert.Contains(t, text, "Ana Souza")
	assert.Contains(t, text, "Hardware")
	assert.Contains(t, text, "Alta")
	assert.Contains(t, text, "deskctl close <id>")
}

func TestConsoleRendersMessages(t *testing.T) {
	tests := []struct {
		name     string
		state    desk.ListState
		contains []string
	}{
		{
			name:     "empty",
			state:    desk.ListState{Kind: desk.ListEmpty, Message: desk.MsgNoTickets},
			contains: []string{desk.MsgNoTickets},
		},
		{
			name:     "session missing",
			state:    desk.ListState{Kind: desk.ListSessionMissing, Message: desk.MsgSessionNotFound, LoginLink: "/login"},
			contains: []string{desk.MsgSessionNotFound, "/login", "deskctl login"},
		},
		{
			name:     "failed",
			state:    desk.ListState{Kind: desk.ListFailed, Message: "Error loading your tickets: db down"},
			contains: []string{"db down"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			NewConsole(&out).Render(tt.state)
			for _, want := range tt.contains {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestConsoleLoadingIsQuietByDefault(t *testing.T) {
	var out bytes.Buffer
	NewConsole(&out).Render(desk.ListState{Kind: desk.ListLoading})
	assert.Empty(t, out.String())

	out.Reset()
	NewConsole(&out, WithQuietLoading(false)).Render(desk.ListState{Kind: desk.ListLoading})
	assert.Contains(t, out.String(), "Loading")
}

func TestConsoleNavigateAndNotify(t *testing.T) {
	var out bytes.Buffer
	console := NewConsole(&out, WithProgramName("desk"))

	console.Notify(desk.MsgTicketCreated)
	console.Navigate("/new_ticket")

	assert.Equal(t, "/new_ticket", console.Location())
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], desk.MsgTicketCreated)
	assert.Contains(t, lines[1], "/new_ticket")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
