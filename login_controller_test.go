package desk_test

import (
	"context"
	"net/http"
	"testing"

	desk "github.com/goliatone/go-desk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoginController(t *testing.T, status int, body map[string]any) (*desk.LoginController, *recorder, *desk.MemoryStore) {
	t.Helper()

	_, server := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, status, body)
	})

	store := desk.NewMemoryStore()
	ui := &recorder{}
	cfg := testOptions(server.URL)
	session := newSession(server.URL, store)

	controller := desk.NewLoginController(session, cfg,
		desk.WithLoginNavigator(ui),
		desk.WithLoginNotifier(ui),
		desk.WithLoginLogger(quietLogger{}),
	)
	return controller, ui, store
}

func TestLoginControllerRoutesByRole(t *testing.T) {
	tests := []struct {
		name        string
		role        string
		destination string
		notices     []string
	}{
		{name: "client", role: desk.RoleClient, destination: desk.LandingTickets},
		{name: "admin", role: desk.RoleAdmin, destination: desk.LandingAdmin},
		{name: "unknown role", role: "Auditor", destination: desk.LandingRoot, notices: []string{desk.MsgLandingUndetermined}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, ui, store := newLoginController(t, http.StatusOK, map[string]any{"token": "T", "role": tt.role})

			destination, err := controller.Login(context.Background(), desk.LoginRequest{Email: "a@x.com", Password: "p"})
			require.NoError(t, err)
			assert.Equal(t, tt.destination, destination)
			assert.Equal(t, []string{tt.destination}, ui.Routes())
			assert.Equal(t, tt.notices, ui.Notices())

			token, err := store.Get(context.Background(), "token")
			require.NoError(t, err)
			assert.Equal(t, "T", token)
		})
	}
}

func TestLoginControllerFailureNotifiesAndStays(t *testing.T) {
	controller, ui, store := newLoginController(t, http.StatusUnauthorized, map[string]any{"error": "Invalid credentials"})

	destination, err := controller.Login(context.Background(), desk.LoginRequest{Email: "a@x.com", Password: "bad"})
	require.Error(t, err)
	assert.Empty(t, destination)
	assert.Equal(t, []string{"Invalid credentials"}, ui.Notices())
	assert.Empty(t, ui.Routes())

	token, err := store.Get(context.Background(), "token")
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestLoginControllerSuccessWithoutTokenUsesFallbackMessage(t *testing.T) {
	controller, ui, _ := newLoginController(t, http.StatusOK, map[string]any{"role": desk.RoleClient})

	_, err := controller.Login(context.Background(), desk.LoginRequest{Email: "a@x.com", Password: "p"})
	require.Error(t, err)
	assert.True(t, desk.IsAuthenticationFailure(err))
	assert.Equal(t, []string{desk.MsgLoginFailed}, ui.Notices())
	assert.Empty(t, ui.Routes())
}

func TestLoginControllerCustomLandings(t *testing.T) {
	_, server := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"token": "T", "role": "Auditor"})
	})

	cfg := testOptions(server.URL)
	cfg.Landings = map[string]string{"Auditor": "/audit"}
	ui := &recorder{}

	controller := desk.NewLoginController(newSession(server.URL, desk.NewMemoryStore()), cfg,
		desk.WithLoginNavigator(ui),
		desk.WithLoginNotifier(ui),
		desk.WithLoginLogger(quietLogger{}),
	)

	destination, err := controller.Login(context.Background(), desk.LoginRequest{Email: "a@x.com", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, "/audit", destination)
	assert.Empty(t, ui.Notices())
}

func TestNewLoginControllerPanicsWithoutSession(t *testing.T) {
	assert.Panics(t, func() {
		desk.NewLoginController(nil, desk.DefaultOptions())
	})
}
