package desk

import "strconv"

// Category is the ticket category
type Category = string

const (
	CategorySoftware Category = "Software"
	CategoryHardware Category = "Hardware"
	CategoryNetwork  Category = "Redes"
	CategoryAccess   Category = "Acesso"
)

// DefaultCategories is the category set offered by the backend
func DefaultCategories() []Category {
	return []Category{
		CategorySoftware,
		CategoryHardware,
		CategoryNetwork,
		CategoryAccess,
	}
}

// Ticket is a support ticket as returned by the backend
type Ticket struct {
	ID          *int64 `json:"ticket_id,omitempty"`
	Title       string `json:"ticket_title"`
	Description string `json:"ticket_description"`
	Status      string `json:"ticket_status"`
	Priority    string `json:"ticket_priority"`
	ClientID    int64  `json:"ticket_client_id"`
	ClientName  string `json:"ticket_client_name"`
	Category    string `json:"ticket_category"`
}

// IDString returns the ticket id, empty when the backend sent none
func (t Ticket) IDString() string {
	if t.ID == nil {
		return ""
	}
	return strconv.FormatInt(*t.ID, 10)
}

// NewTicket is the create ticket payload. ClientID is always sent as zero,
// the backend derives the owner from the bearer token.
type NewTicket struct {
	Title       string `json:"ticket_title"`
	Description string `json:"ticket_description"`
	Category    string `json:"ticket_category"`
	ClientID    int64  `json:"ticket_client_id"`
}

// Credential is the bearer token plus the role the server asserted at login
type Credential struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// ListStateKind enumerates the renderable states of the ticket list
type ListStateKind string

const (
	ListLoading        ListStateKind = "loading"
	ListSessionMissing ListStateKind = "session_missing"
	ListEmpty          ListStateKind = "empty"
	ListLoaded         ListStateKind = "loaded"
	ListFailed         ListStateKind = "failed"
)

// ListState is what the view renders. It is always derived from the most
// recent resolved fetch.
type ListState struct {
	Kind      ListStateKind
	Rows      []Row
	Message   string
	LoginLink string
	Status    int
}

// Tickets returns the tickets behind the rendered rows
func (s ListState) Tickets() []Ticket {
	out := make([]Ticket, 0, len(s.Rows))
	for _, r := range s.Rows {
		out = append(out, r.Ticket)
	}
	return out
}

// Action is a row level command
type Action string

const (
	ActionClose Action = "close"
)

// Command is the value attached to a rendered row and consumed by
// TicketController.Dispatch
type Command struct {
	Action   Action
	TicketID string
}

// Row is a rendered ticket with its close command
type Row struct {
	Ticket Ticket
	Close  Command
}

func rowsFromTickets(tickets []Ticket) []Row {
	rows := make([]Row, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, Row{
			Ticket: t,
			Close:  Command{Action: ActionClose, TicketID: t.IDString()},
		})
	}
	return rows
}
