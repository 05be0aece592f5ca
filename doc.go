// Package desk is the client side of a support ticket desk: it logs a user
// in against the desk backend, keeps the bearer credential in a local store
// and drives the "my tickets" workflows (list, create, close).
//
// Session lifecycle:
//   - SessionManager is the only owner of the credential. Login persists the
//     token only when the backend answers with success AND a token. Any 401
//     seen by the TicketController clears the stored token before the user
//     is sent back to the login route.
//   - LoginController routes the user by the role claim returned at login.
//     Unknown roles land on the default page with a notice.
//
// List synchronization:
//   - TicketController never patches the list locally. Every successful
//     create or close is followed by exactly one full list fetch, and the
//     view always renders the most recent resolved fetch.
//   - Rendered rows carry a Command value; a single Dispatch handler
//     consumes them.
//
// Collaborators (Navigator, Notifier, TicketView, TicketForm and
// CredentialStore) are interfaces so the same core drives the terminal
// client in cmd/deskctl and the tests.
package desk
