package desk

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/goliatone/go-print"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// APIClient issues requests against the desk backend. It reports transport
// failures only; status codes are interpreted by the callers.
type APIClient struct {
	cfg        Config
	httpClient *http.Client
	logger     Logger
}

type APIClientOption func(*APIClient)

// WithHTTPClient replaces the default client. The default has no timeout.
func WithHTTPClient(client *http.Client) APIClientOption {
	return func(c *APIClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

func WithAPILogger(logger Logger) APIClientOption {
	return func(c *APIClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewAPIClient(cfg Config, opts ...APIClientOption) *APIClient {
	c := &APIClient{
		cfg:        cfg,
		httpClient: &http.Client{},
		logger:     defLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Response is a fully read backend response
type Response struct {
	StatusCode int
	Body       []byte
	Path       string
	RequestID  string
}

func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) Unauthorized() bool {
	return r.StatusCode == http.StatusUnauthorized
}

// Decode unmarshals the body into v
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// ErrorBody is the error envelope used by the backend. Login failures use
// "error", ticket endpoints use "erro".
type ErrorBody struct {
	Error   string `json:"error"`
	Erro    string `json:"erro"`
	Message string `json:"message"`
}

// ErrorBody parses the body best effort. Unparsable bodies yield an empty
// ErrorBody.
func (r *Response) ErrorBody() ErrorBody {
	var body ErrorBody
	if len(r.Body) == 0 {
		return body
	}
	if err := json.Unmarshal(r.Body, &body); err != nil {
		return ErrorBody{}
	}
	return body
}

func (r *Response) metadata() map[string]any {
	return map[string]any{
		"status":     r.StatusCode,
		"path":       r.Path,
		"request_id": r.RequestID,
	}
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login posts the credentials to the login endpoint
func (c *APIClient) Login(ctx context.Context, email, password string) (*Response, error) {
	return c.do(ctx, http.MethodPost, c.cfg.GetLoginPath(), "", loginBody{
		Email:    email,
		Password: password,
	}, false)
}

// ListOwnTickets fetches the tickets owned by the token holder
func (c *APIClient) ListOwnTickets(ctx context.Context, token string) (*Response, error) {
	return c.do(ctx, http.MethodGet, c.cfg.GetTicketsPath(), token, nil, true)
}

func (c *APIClient) CreateTicket(ctx context.Context, token string, ticket NewTicket) (*Response, error) {
	return c.do(ctx, http.MethodPost, c.cfg.GetCreateTicketPath(), token, ticket, true)
}

func (c *APIClient) CloseTicket(ctx context.Context, token, ticketID string) (*Response, error) {
	path := c.cfg.GetCloseTicketPath(url.PathEscape(ticketID))
	return c.do(ctx, http.MethodPost, path, token, nil, true)
}

func (c *APIClient) do(ctx context.Context, method, path, token string, payload any, dumpPayload bool) (*Response, error) {
	requestID := uuid.NewString()
	meta := map[string]any{
		"method":     method,
		"path":       path,
		"request_id": requestID,
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, newError(ErrTransportFailure, MsgConnectivity, err, meta)
		}
		body = bytes.NewReader(raw)

		if c.cfg.GetDebug() && dumpPayload {
			c.logger.Debug("request payload", "request_id", requestID, "payload", print.MaybePrettyJSON(payload))
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.GetBaseURL()+path, body)
	if err != nil {
		return nil, newError(ErrTransportFailure, MsgConnectivity, err, meta)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", c.cfg.GetAuthScheme()+" "+token)
	}

	c.logger.Debug("backend request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("backend request failed", "path", path, "request_id", requestID, "error", err)
		return nil, newError(ErrTransportFailure, MsgConnectivity, err, meta)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("reading backend response failed", "path", path, "request_id", requestID, "error", err)
		return nil, newError(ErrTransportFailure, MsgConnectivity, err, meta)
	}

	c.logger.Debug("backend response", "path", path, "status", resp.StatusCode, "request_id", requestID)

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       raw,
		Path:       path,
		RequestID:  requestID,
	}, nil
}
