package desk

import "context"

// LoginController runs the login form: it asks the SessionManager for a
// credential and routes the user by the role claim.
type LoginController struct {
	Logger    Logger
	Session   *SessionManager
	Navigator Navigator
	Notifier  Notifier
	Landings  map[string]string
	Fallback  string
}

type LoginControllerOption func(*LoginController) *LoginController

func WithLoginNavigator(n Navigator) LoginControllerOption {
	return func(c *LoginController) *LoginController {
		if n != nil {
			c.Navigator = n
		}
		return c
	}
}

func WithLoginNotifier(n Notifier) LoginControllerOption {
	return func(c *LoginController) *LoginController {
		if n != nil {
			c.Notifier = n
		}
		return c
	}
}

func WithLoginLogger(l Logger) LoginControllerOption {
	return func(c *LoginController) *LoginController {
		if l != nil {
			c.Logger = l
		}
		return c
	}
}

func NewLoginController(session *SessionManager, cfg Config, opts ...LoginControllerOption) *LoginController {
	if session == nil {
		panic("Missing SessionManager in login controller...")
	}

	c := &LoginController{
		Logger:    defLogger{},
		Session:   session,
		Navigator: noopNavigator{},
		Notifier:  noopNotifier{},
		Landings:  cfg.GetLandings(),
		Fallback:  cfg.GetDefaultLanding(),
	}

	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// Login authenticates and navigates to the landing page for the returned
// role. Unknown roles land on the fallback page with a notice. It returns
// the destination it navigated to.
func (c *LoginController) Login(ctx context.Context, payload LoginPayload) (string, error) {
	cred, err := c.Session.Login(ctx, payload)
	if err != nil {
		c.Notifier.Notify(UserMessage(err))
		return "", err
	}

	destination, known := LandingFor(c.Landings, cred.Role, c.Fallback)
	if !known {
		c.Logger.Warn("no landing page for role", "role", cred.Role, "fallback", destination)
		c.Notifier.Notify(MsgLandingUndetermined)
	}

	c.Navigator.Navigate(destination)
	return destination, nil
}
