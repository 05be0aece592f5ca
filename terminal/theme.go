package terminal

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette used by the console. Colors are ANSI 256
// codes.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color

	NoticeForeground lipgloss.Color
	ErrorForeground  lipgloss.Color
	RouteForeground  lipgloss.Color

	StatusOpen   lipgloss.Color
	StatusClosed lipgloss.Color

	PriorityHigh   lipgloss.Color
	PriorityMedium lipgloss.Color
	PriorityLow    lipgloss.Color
}

// DefaultTheme targets dark terminals
var DefaultTheme = Theme{
	NormalText:       lipgloss.Color("252"),
	FaintText:        lipgloss.Color("243"),
	HeaderForeground: lipgloss.Color("75"),
	BorderColor:      lipgloss.Color("238"),
	NoticeForeground: lipgloss.Color("220"),
	ErrorForeground:  lipgloss.Color("203"),
	RouteForeground:  lipgloss.Color("114"),
	StatusOpen:       lipgloss.Color("114"),
	StatusClosed:     lipgloss.Color("243"),
	PriorityHigh:     lipgloss.Color("203"),
	PriorityMedium:   lipgloss.Color("220"),
	PriorityLow:      lipgloss.Color("75"),
}

// StatusColor maps the backend status values. Unknown values are faint.
func (theme Theme) StatusColor(status string) lipgloss.Color {
	switch status {
	case "Aberto":
		return theme.StatusOpen
	case "Fechado":
		return theme.StatusClosed
	default:
		return theme.FaintText
	}
}

// PriorityColor maps the backend priority values (Alta, Média, Baixa).
func (theme Theme) PriorityColor(priority string) lipgloss.Color {
	switch priority {
	case "Alta":
		return theme.PriorityHigh
	case "Média":
		return theme.PriorityMedium
	case "Baixa":
		return theme.PriorityLow
	default:
		return theme.NormalText
	}
}
