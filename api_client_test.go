package desk_test

import (
	"context"
	"net/http"
	"testing"

	desk "github.com/goliatone/go-desk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIClientSetsHeaders(t *testing.T) {
	b, server := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []desk.Ticket{})
	})

	client := desk.NewAPIClient(testOptions(server.URL), desk.WithAPILogger(quietLogger{}))

	resp, err := client.ListOwnTickets(context.Background(), "T")
	require.NoError(t, err)
	assert.True(t, resp.OK())

	req := b.LastRequest()
	assert.Equal(t, "Bearer T", req.Header.Get("Authorization"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Equal(t, resp.RequestID, req.Header.Get(desk.HeaderRequestID))
	assert.Equal(t, "/new_ticket/api/my-open-tickets", resp.Path)
}

func TestAPIClientRequestIDsAreUnique(t *testing.T) {
	_, server := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []desk.Ticket{})
	})

	client := desk.NewAPIClient(testOptions(server.URL), desk.WithAPILogger(quietLogger{}))

	first, err := client.ListOwnTickets(context.Background(), "T")
	require.NoError(t, err)
	second, err := client.ListOwnTickets(context.Background(), "T")
	require.NoError(t, err)

	assert.NotEqual(t, first.RequestID, second.RequestID)
}

func TestAPIClientCustomAuthScheme(t *testing.T) {
	b, server := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{})
	})

	cfg := testOptions(server.URL + "/")
	cfg.AuthScheme = "Token"
	client := desk.NewAPIClient(cfg, desk.WithAPILogger(quietLogger{}))

	_, err := client.CloseTicket(context.Background(), "T", "42")
	require.NoError(t, err)

	assert.Equal(t, 1, b.Hits("POST /tickets/42/close"))
	assert.Equal(t, "Token T", b.LastRequest().Header.Get("Authorization"))
}

func TestAPIClientEscapesTicketID(t *testing.T) {
	b, server := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{})
	})

	client := desk.NewAPIClient(testOptions(server.URL), desk.WithAPILogger(quietLogger{}))

	_, err := client.CloseTicket(context.Background(), "T", "a/b")
	require.NoError(t, err)
	assert.Equal(t, "/tickets/a%2Fb/close", b.LastRequest().URL.EscapedPath())
}

func TestAPIClientReturnsNon2xxWithoutError(t *testing.T) {
	_, server := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"erro": "expired"})
	})

	client := desk.NewAPIClient(testOptions(server.URL), desk.WithAPILogger(quietLogger{}))

	resp, err := client.ListOwnTickets(context.Background(), "T")
	require.NoError(t, err)
	assert.True(t, resp.Unauthorized())
	assert.False(t, resp.OK())
	assert.Equal(t, "expired", resp.ErrorBody().Erro)
}

func TestAPIClientCancelledContext(t *testing.T) {
	_, server := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []desk.Ticket{})
	})

	client := desk.NewAPIClient(testOptions(server.URL), desk.WithAPILogger(quietLogger{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListOwnTickets(ctx, "T")
	require.Error(t, err)
	assert.True(t, desk.IsTransportFailure(err))
}

func TestResponseErrorBodyIsBestEffort(t *testing.T) {
	resp := &desk.Response{StatusCode: http.StatusInternalServerError, Body: []byte("<html>")}
	assert.Equal(t, desk.ErrorBody{}, resp.ErrorBody())

	resp = &desk.Response{StatusCode: http.StatusInternalServerError}
	assert.Equal(t, desk.ErrorBody{}, resp.ErrorBody())
}
