package desk

// User facing notices
const (
	MsgLoginFailed          = "Login failed! Check your credentials."
	MsgLoginTransport       = "Error connecting to the server during login!"
	MsgLandingUndetermined  = "Login succeeded, but your home page could not be determined."
	MsgConnectivity         = "Unable to connect to the server. Check your connection and try again."
	MsgSessionNotFound      = "Session not found. Please log in."
	MsgSessionExpired       = "Session expired. Please log in again."
	MsgSessionInvalid       = "Invalid session. Please log in again."
	MsgSessionInvalidList   = "Invalid or expired session. Please log in again."
	MsgNoTickets            = "You have no open tickets."
	MsgListFailedFmt        = "Error loading your tickets: %s"
	MsgListStatusFmt        = "Error loading your tickets (Status: %d)"
	MsgCategoryRequired     = "Please select a category."
	MsgCategoryInvalid      = "Please select a valid category."
	MsgTicketCreated        = "Ticket created successfully!"
	MsgCreateStatusFmt      = "Error creating the ticket (Status: %d)"
	MsgTicketClosed         = "Ticket closed successfully!"
	MsgCloseFailed          = "Error closing the ticket."
	MsgUnknownCommandAction = "Unknown ticket action."
	MsgTicketIDRequired     = "No ticket selected."
)
