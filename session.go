package desk

import (
	"context"

	"github.com/goliatone/go-errors"
)

var _ LoginPayload = LoginRequest{}

// LoginRequest payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GetIdentifier returns the identifier
func (r LoginRequest) GetIdentifier() string {
	return r.Email
}

// GetPassword will return the password
func (r LoginRequest) GetPassword() string {
	return r.Password
}

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Error string `json:"error"`
}

// SessionManager owns the bearer credential. It is the only component that
// reads or writes the credential store.
type SessionManager struct {
	api      *APIClient
	store    CredentialStore
	key      string
	logger   Logger
	activity ActivitySink
}

type SessionOption func(*SessionManager)

func WithSessionLogger(logger Logger) SessionOption {
	return func(s *SessionManager) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithActivitySink(sink ActivitySink) SessionOption {
	return func(s *SessionManager) {
		s.activity = normalizeActivitySink(sink)
	}
}

func NewSessionManager(api *APIClient, store CredentialStore, cfg Config, opts ...SessionOption) *SessionManager {
	if store == nil {
		store = NewMemoryStore()
	}

	s := &SessionManager{
		api:      api,
		store:    store,
		key:      cfg.GetTokenKey(),
		logger:   defLogger{},
		activity: noopActivitySink{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Login sends a single request to the login endpoint. The token is
// persisted only when the response is successful and carries a token.
func (s *SessionManager) Login(ctx context.Context, payload LoginPayload) (*Credential, error) {
	resp, err := s.api.Login(ctx, payload.GetIdentifier(), payload.GetPassword())
	if err != nil {
		return nil, newError(ErrTransportFailure, MsgLoginTransport, err, nil)
	}

	var body loginResponse
	if err := resp.Decode(&body); err != nil {
		s.logger.Error("login response is not valid JSON", "status", resp.StatusCode, "request_id", resp.RequestID)
		return nil, newError(ErrTransportFailure, MsgLoginTransport, err, resp.metadata())
	}

	if resp.OK() && body.Token != "" {
		if err := s.store.Set(ctx, s.key, body.Token); err != nil {
			return nil, errors.Wrap(err, errors.CategoryInternal, "unable to persist credential").
				WithCode(errors.CodeInternal)
		}

		s.logger.Info("login succeeded", "role", body.Role)
		recordActivity(ctx, s.activity, s.logger, ActivityEvent{
			EventType: ActivityEventLoginSuccess,
			Role:      body.Role,
		})

		return &Credential{Token: body.Token, Role: body.Role}, nil
	}

	message := body.Error
	if message == "" {
		message = MsgLoginFailed
	}

	s.logger.Info("login rejected", "status", resp.StatusCode, "token_present", body.Token != "")
	recordActivity(ctx, s.activity, s.logger, ActivityEvent{
		EventType: ActivityEventLoginFailure,
		Reason:    message,
		Metadata:  resp.metadata(),
	})

	return nil, newError(ErrAuthenticationFailed, message, nil, resp.metadata())
}

// Credential returns the stored token. It never touches the network. A
// store read error is logged and reported as no credential.
func (s *SessionManager) Credential(ctx context.Context) (string, bool) {
	token, err := s.store.Get(ctx, s.key)
	if err != nil {
		s.logger.Error("unable to read credential", "error", err)
		return "", false
	}
	return token, token != ""
}

// Clear removes the stored token. Clearing an empty store is a no-op.
func (s *SessionManager) Clear(ctx context.Context) error {
	return s.clear(ctx, "logout")
}

func (s *SessionManager) clear(ctx context.Context, reason string) error {
	if err := s.store.Delete(ctx, s.key); err != nil {
		s.logger.Error("unable to clear credential", "reason", reason, "error", err)
		return errors.Wrap(err, errors.CategoryInternal, "unable to clear credential").
			WithCode(errors.CodeInternal)
	}

	recordActivity(ctx, s.activity, s.logger, ActivityEvent{
		EventType: ActivityEventSessionCleared,
		Reason:    reason,
	})
	return nil
}
