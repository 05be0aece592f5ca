package desk

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

var _ Config = (*Options)(nil)

// Options is the default Config implementation. Zero values fall back to
// the defaults in DefaultOptions.
type Options struct {
	BaseURL          string            `yaml:"base_url"`
	LoginPath        string            `yaml:"login_path"`
	TicketsPath      string            `yaml:"tickets_path"`
	CreateTicketPath string            `yaml:"create_ticket_path"`
	CloseTicketPath  string            `yaml:"close_ticket_path"`
	AuthScheme       string            `yaml:"auth_scheme"`
	TokenKey         string            `yaml:"token_key"`
	LoginRoute       string            `yaml:"login_route"`
	DefaultLanding   string            `yaml:"default_landing"`
	Landings         map[string]string `yaml:"landings"`
	Categories       []Category        `yaml:"categories"`
	Store            string            `yaml:"store"`
	StorePath        string            `yaml:"store_path"`
	Debug            bool              `yaml:"debug"`
}

// DefaultOptions matches the routes served by the desk backend
func DefaultOptions() *Options {
	return &Options{
		BaseURL:          "http://localhost:8080",
		LoginPath:        "/login",
		TicketsPath:      "/new_ticket/api/my-open-tickets",
		CreateTicketPath: "/new_ticket",
		CloseTicketPath:  "/tickets/{id}/close",
		AuthScheme:       "Bearer",
		TokenKey:         "token",
		LoginRoute:       RouteLogin,
		DefaultLanding:   LandingRoot,
		Landings:         DefaultLandings(),
		Categories:       DefaultCategories(),
		Store:            StoreMemory,
	}
}

// LoadOptions reads a YAML file on top of DefaultOptions. An empty path
// returns the defaults.
func LoadOptions(path string) (*Options, error) {
	opts := DefaultOptions()
	if err := LoadOptionsInto(opts, path); err != nil {
		return nil, err
	}
	return opts, nil
}

// LoadOptionsInto reads a YAML file on top of opts. Keys missing from the
// file keep the values already in opts. An empty path is a no-op.
func LoadOptionsInto(opts *Options, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, opts); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return nil
}

func (o *Options) GetBaseURL() string {
	return strings.TrimRight(o.BaseURL, "/")
}

func (o *Options) GetLoginPath() string {
	return o.LoginPath
}

func (o *Options) GetTicketsPath() string {
	return o.TicketsPath
}

func (o *Options) GetCreateTicketPath() string {
	return o.CreateTicketPath
}

// GetCloseTicketPath expands the {id} placeholder. The id must already be
// path escaped.
func (o *Options) GetCloseTicketPath(ticketID string) string {
	return strings.ReplaceAll(o.CloseTicketPath, "{id}", ticketID)
}

func (o *Options) GetAuthScheme() string {
	if o.AuthScheme == "" {
		return "Bearer"
	}
	return o.AuthScheme
}

func (o *Options) GetTokenKey() string {
	if o.TokenKey == "" {
		return "token"
	}
	return o.TokenKey
}

func (o *Options) GetLoginRoute() string {
	if o.LoginRoute == "" {
		return RouteLogin
	}
	return o.LoginRoute
}

func (o *Options) GetDefaultLanding() string {
	if o.DefaultLanding == "" {
		return LandingRoot
	}
	return o.DefaultLanding
}

func (o *Options) GetLandings() map[string]string {
	if len(o.Landings) == 0 {
		return DefaultLandings()
	}
	return o.Landings
}

func (o *Options) GetCategories() []Category {
	if len(o.Categories) == 0 {
		return DefaultCategories()
	}
	return o.Categories
}

func (o *Options) GetDebug() bool {
	return o.Debug
}
