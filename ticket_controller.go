package desk

import (
	"context"
	"fmt"
	"sync"

	"github.com/goliatone/go-errors"
)

// TicketController lists, creates and closes the user's tickets. It keeps
// no state besides what it last rendered: every mutation is followed by a
// full list fetch, never a local patch.
type TicketController struct {
	Logger     Logger
	Session    *SessionManager
	API        *APIClient
	Navigator  Navigator
	Notifier   Notifier
	View       TicketView
	Form       TicketForm
	LoginRoute string
	Categories []Category

	renderMu sync.Mutex
}

type TicketControllerOption func(*TicketController) *TicketController

func WithTicketNavigator(n Navigator) TicketControllerOption {
	return func(c *TicketController) *TicketController {
		if n != nil {
			c.Navigator = n
		}
		return c
	}
}

func WithTicketNotifier(n Notifier) TicketControllerOption {
	return func(c *TicketController) *TicketController {
		if n != nil {
			c.Notifier = n
		}
		return c
	}
}

func WithTicketView(v TicketView) TicketControllerOption {
	return func(c *TicketController) *TicketController {
		if v != nil {
			c.View = v
		}
		return c
	}
}

func WithTicketForm(f TicketForm) TicketControllerOption {
	return func(c *TicketController) *TicketController {
		if f != nil {
			c.Form = f
		}
		return c
	}
}

func WithTicketLogger(l Logger) TicketControllerOption {
	return func(c *TicketController) *TicketController {
		if l != nil {
			c.Logger = l
		}
		return c
	}
}

func NewTicketController(session *SessionManager, api *APIClient, cfg Config, opts ...TicketControllerOption) *TicketController {
	if session == nil {
		panic("Missing SessionManager in ticket controller...")
	}

	if api == nil {
		panic("Missing APIClient in ticket controller...")
	}

	c := &TicketController{
		Logger:     defLogger{},
		Session:    session,
		API:        api,
		Navigator:  noopNavigator{},
		Notifier:   noopNotifier{},
		View:       noopView{},
		Form:       noopForm{},
		LoginRoute: cfg.GetLoginRoute(),
		Categories: cfg.GetCategories(),
	}

	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// Start loads the list when a credential is already stored
func (c *TicketController) Start(ctx context.Context) error {
	if _, ok := c.Session.Credential(ctx); !ok {
		return nil
	}
	_, err := c.ListOwnTickets(ctx)
	return err
}

// ListOwnTickets fetches the user's tickets and renders the result. Without
// a credential no request is sent.
func (c *TicketController) ListOwnTickets(ctx context.Context) (ListState, error) {
	c.render(ListState{Kind: ListLoading})

	token, ok := c.Session.Credential(ctx)
	if !ok {
		state := ListState{
			Kind:      ListSessionMissing,
			Message:   MsgSessionNotFound,
			LoginLink: c.LoginRoute,
		}
		c.render(state)
		return state, newError(ErrSessionMissing, MsgSessionNotFound, nil, nil)
	}

	resp, err := c.API.ListOwnTickets(ctx, token)
	if err != nil {
		return c.listFailed(0, fmt.Sprintf(MsgListFailedFmt, MsgConnectivity)), err
	}

	if resp.Unauthorized() {
		err := c.reauthenticate(ctx, MsgSessionInvalidList, resp)
		state := ListState{
			Kind:      ListSessionMissing,
			Message:   MsgSessionInvalidList,
			LoginLink: c.LoginRoute,
			Status:    resp.StatusCode,
		}
		c.render(state)
		return state, err
	}

	if !resp.OK() {
		message := fmt.Sprintf(MsgListStatusFmt, resp.StatusCode)
		if detail := serverMessage(resp.ErrorBody()); detail != "" {
			message = fmt.Sprintf(MsgListFailedFmt, detail)
		}
		c.Logger.Warn("ticket list rejected", "status", resp.StatusCode, "request_id", resp.RequestID)
		return c.listFailed(resp.StatusCode, message), rejection(resp.StatusCode, message, resp.metadata())
	}

	var tickets []Ticket
	if err := resp.Decode(&tickets); err != nil {
		c.Logger.Error("ticket list is not valid JSON", "request_id", resp.RequestID, "error", err)
		return c.listFailed(resp.StatusCode, fmt.Sprintf(MsgListFailedFmt, MsgConnectivity)),
			newError(ErrTransportFailure, MsgConnectivity, err, resp.metadata())
	}

	state := ListState{Kind: ListLoaded, Rows: rowsFromTickets(tickets), Status: resp.StatusCode}
	if len(tickets) == 0 {
		state = ListState{Kind: ListEmpty, Message: MsgNoTickets, Status: resp.StatusCode}
	}

	c.render(state)
	return state, nil
}

// CreateTicket validates the input, submits it and refreshes the list on
// success. The owning client is derived by the backend from the token.
func (c *TicketController) CreateTicket(ctx context.Context, input TicketInput) error {
	if err := input.Validate(c.Categories); err != nil {
		message := validationMessage(err)
		c.Notifier.Notify(message)
		return newError(ErrValidationFailed, message, err, map[string]any{"field": "category"})
	}

	token, err := c.requireCredential(ctx)
	if err != nil {
		return err
	}

	resp, err := c.API.CreateTicket(ctx, token, input.payload())
	if err != nil {
		c.Notifier.Notify(MsgConnectivity)
		return err
	}

	if resp.Unauthorized() {
		return c.reauthenticate(ctx, MsgSessionInvalid, resp)
	}

	if !resp.OK() {
		message := serverMessage(resp.ErrorBody())
		if message == "" {
			message = fmt.Sprintf(MsgCreateStatusFmt, resp.StatusCode)
		}
		c.Notifier.Notify(message)
		return rejection(resp.StatusCode, message, resp.metadata())
	}

	c.Notifier.Notify(MsgTicketCreated)
	c.Form.Reset()

	recordActivity(ctx, c.Session.activity, c.Logger, ActivityEvent{
		EventType: ActivityEventTicketCreated,
		Metadata:  map[string]any{"category": input.Category},
	})

	c.refresh(ctx)
	return nil
}

// CloseTicket closes ticketID and refreshes the list on success. The
// backend error detail is not surfaced for this operation.
func (c *TicketController) CloseTicket(ctx context.Context, ticketID string) error {
	if ticketID == "" {
		c.Notifier.Notify(MsgTicketIDRequired)
		return newError(ErrValidationFailed, MsgTicketIDRequired, nil, map[string]any{"field": "ticket_id"})
	}

	token, err := c.requireCredential(ctx)
	if err != nil {
		return err
	}

	resp, err := c.API.CloseTicket(ctx, token, ticketID)
	if err != nil {
		c.Notifier.Notify(MsgConnectivity)
		return err
	}

	if resp.Unauthorized() {
		return c.reauthenticate(ctx, MsgSessionInvalid, resp)
	}

	if !resp.OK() {
		c.Notifier.Notify(MsgCloseFailed)
		return rejection(resp.StatusCode, MsgCloseFailed, resp.metadata())
	}

	c.Notifier.Notify(MsgTicketClosed)

	recordActivity(ctx, c.Session.activity, c.Logger, ActivityEvent{
		EventType: ActivityEventTicketClosed,
		TicketID:  ticketID,
	})

	c.refresh(ctx)
	return nil
}

// Dispatch runs the command attached to a rendered row
func (c *TicketController) Dispatch(ctx context.Context, cmd Command) error {
	switch cmd.Action {
	case ActionClose:
		return c.CloseTicket(ctx, cmd.TicketID)
	default:
		c.Notifier.Notify(MsgUnknownCommandAction)
		return errors.New(MsgUnknownCommandAction, errors.CategoryBadInput).
			WithCode(errors.CodeBadRequest).
			WithMetadata(map[string]any{"action": string(cmd.Action)})
	}
}

// Logout clears the credential and sends the user to the login page
func (c *TicketController) Logout(ctx context.Context) error {
	err := c.Session.Clear(ctx)
	c.Navigator.Navigate(c.LoginRoute)
	return err
}

func (c *TicketController) requireCredential(ctx context.Context) (string, error) {
	token, ok := c.Session.Credential(ctx)
	if !ok {
		c.Notifier.Notify(MsgSessionExpired)
		c.Navigator.Navigate(c.LoginRoute)
		return "", newError(ErrSessionMissing, MsgSessionExpired, nil, nil)
	}
	return token, nil
}

// reauthenticate handles a 401: notice, clear the credential once, then
// navigate to the login page.
func (c *TicketController) reauthenticate(ctx context.Context, message string, resp *Response) error {
	c.Logger.Info("session rejected by server", "path", resp.Path, "request_id", resp.RequestID)

	c.Notifier.Notify(message)
	if err := c.Session.clear(ctx, "unauthorized"); err != nil {
		c.Logger.Error("unable to clear rejected credential", "error", err)
	}
	c.Navigator.Navigate(c.LoginRoute)

	return newError(ErrAuthenticationFailed, message, nil, resp.metadata())
}

// refresh re-fetches the list after a mutation. Its outcome is rendered by
// ListOwnTickets and does not change the mutation result.
func (c *TicketController) refresh(ctx context.Context) {
	if _, err := c.ListOwnTickets(ctx); err != nil {
		c.Logger.Debug("list refresh after mutation failed", "error", err)
	}
}

func (c *TicketController) listFailed(status int, message string) ListState {
	state := ListState{
		Kind:    ListFailed,
		Message: message,
		Status:  status,
	}
	c.render(state)
	return state
}

func (c *TicketController) render(state ListState) {
	c.renderMu.Lock()
	defer c.renderMu.Unlock()
	c.View.Render(state)
}

func serverMessage(body ErrorBody) string {
	switch {
	case body.Erro != "":
		return body.Erro
	case body.Error != "":
		return body.Error
	default:
		return body.Message
	}
}
