// Package terminal renders the desk client on a plain terminal: notices,
// navigation and the ticket list are written as styled lines.
package terminal
