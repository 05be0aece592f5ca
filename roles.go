package desk

// UserRole is the role claim returned by the login exchange
type UserRole = string

const (
	// RoleAdmin lands on the admin dashboard
	RoleAdmin UserRole = "Administrador"
	// RoleClient lands on the ticket creation page
	RoleClient UserRole = "Cliente"
)

const (
	LandingAdmin   = "/admin/dashboard"
	LandingTickets = "/new_ticket"
	LandingRoot    = "/"
	RouteLogin     = "/login"
)

// DefaultLandings maps known roles to their landing page
func DefaultLandings() map[string]string {
	return map[string]string{
		RoleAdmin:  LandingAdmin,
		RoleClient: LandingTickets,
	}
}

// LandingFor resolves the landing page for role. Unknown roles return the
// fallback and false; that is a routing fallback, not an error.
func LandingFor(landings map[string]string, role UserRole, fallback string) (string, bool) {
	if dest, ok := landings[role]; ok && dest != "" {
		return dest, true
	}
	return fallback, false
}
