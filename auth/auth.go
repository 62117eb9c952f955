package auth

import (
	"context"
	"sync"
	"time"
)

// User is the signed-in identity.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

// Session is the handle yielded by the identity provider.
type Session struct {
	Token    string    `json:"token"`
	User     User      `json:"user"`
	IssuedAt time.Time `json:"issued_at"`
}

// Failure is any identity-provider rejection. The provider's message string
// passes through to the user-facing alert unchanged.
type Failure struct {
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

// Provider defines the interface for the external identity provider.
type Provider interface {
	SignIn(ctx context.Context, identifier, password string) (*Session, error)
	SignUp(ctx context.Context, username, email, password string) (*Session, error)
	// PrepareVerification sends an email code for the session's address.
	PrepareVerification(ctx context.Context, session *Session) error
	// AttemptVerification checks the code and returns the verified session.
	AttemptVerification(ctx context.Context, session *Session, code string) (*Session, error)
	SignOut(ctx context.Context, session *Session) error
	DeleteAccount(ctx context.Context, session *Session) error
}

// Context holds the current session and is passed explicitly into each
// screen instead of being read from an ambient singleton.
type Context struct {
	mu      sync.RWMutex
	session *Session
}

func NewContext() *Context {
	return &Context{}
}

func (c *Context) SetSession(session *Session) {
	c.mu.Lock()
	c.session = session
	c.mu.Unlock()
}

func (c *Context) ClearSession() {
	c.mu.Lock()
	c.session = nil
	c.mu.Unlock()
}

// Session returns the active session handle, if any.
func (c *Context) Session() (*Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session, c.session != nil
}

// CurrentUser reports the signed-in user, or false when signed out.
func (c *Context) CurrentUser() (User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return User{}, false
	}
	return c.session.User, true
}
