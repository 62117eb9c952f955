package stub

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"localoop/auth"
)

type account struct {
	user             auth.User
	passwordHash     []byte
	verificationCode string
}

// StubProvider is an in-process identity provider for dev and tests. It
// keeps accounts in memory, checks passwords with bcrypt and mints JWT
// session tokens, standing in for the hosted provider the app delegates to.
type StubProvider struct {
	signingKey []byte

	mu       sync.Mutex
	accounts map[string]*account // keyed by user ID
	revoked  map[string]bool     // tokens invalidated by sign-out
}

// NewStubProvider creates an empty provider signing tokens with signingKey.
func NewStubProvider(signingKey []byte) *StubProvider {
	return &StubProvider{
		signingKey: signingKey,
		accounts:   make(map[string]*account),
		revoked:    make(map[string]bool),
	}
}

// SeedAccount registers a pre-verified account, for dev containers.
func (p *StubProvider) SeedAccount(username, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	id := uuid.NewString()
	p.accounts[id] = &account{
		user:         auth.User{ID: id, Username: username, Email: email, Verified: true},
		passwordHash: hash,
	}
	return nil
}

func (p *StubProvider) SignIn(ctx context.Context, identifier, password string) (*auth.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	acc := p.findLocked(identifier)
	if acc == nil {
		return nil, &auth.Failure{Message: "Couldn't find your account."}
	}
	if bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)) != nil {
		return nil, &auth.Failure{Message: "Password is incorrect."}
	}
	return p.mintLocked(acc.user)
}

func (p *StubProvider) SignUp(ctx context.Context, username, email, password string) (*auth.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.findLocked(username) != nil || p.findLocked(email) != nil {
		return nil, &auth.Failure{Message: "That username or email is taken."}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, &auth.Failure{Message: err.Error()}
	}

	id := uuid.NewString()
	p.accounts[id] = &account{
		user:         auth.User{ID: id, Username: username, Email: email},
		passwordHash: hash,
	}
	return p.mintLocked(p.accounts[id].user)
}

func (p *StubProvider) PrepareVerification(ctx context.Context, session *auth.Session) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	acc, ok := p.accounts[session.User.ID]
	if !ok {
		return &auth.Failure{Message: "Couldn't find your account."}
	}
	acc.verificationCode = uuid.NewString()[:6]
	// a hosted provider emails the code; the stub logs it
	log.Printf("[StubProvider] verification code for %s: %s", acc.user.Email, acc.verificationCode)
	return nil
}

func (p *StubProvider) AttemptVerification(ctx context.Context, session *auth.Session, code string) (*auth.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	acc, ok := p.accounts[session.User.ID]
	if !ok {
		return nil, &auth.Failure{Message: "Couldn't find your account."}
	}
	if acc.verificationCode == "" || acc.verificationCode != code {
		return nil, &auth.Failure{Message: "Verification code is incorrect."}
	}
	acc.verificationCode = ""
	acc.user.Verified = true
	return p.mintLocked(acc.user)
}

func (p *StubProvider) SignOut(ctx context.Context, session *auth.Session) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.revoked[session.Token] = true
	return nil
}

func (p *StubProvider) DeleteAccount(ctx context.Context, session *auth.Session) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.accounts[session.User.ID]; !ok {
		return &auth.Failure{Message: "Couldn't find your account."}
	}
	delete(p.accounts, session.User.ID)
	p.revoked[session.Token] = true
	return nil
}

// Validate parses a session token and returns its user when still valid.
func (p *StubProvider) Validate(token string) (auth.User, error) {
	p.mu.Lock()
	revoked := p.revoked[token]
	p.mu.Unlock()
	if revoked {
		return auth.User{}, &auth.Failure{Message: "Session has been signed out."}
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return p.signingKey, nil
	})
	if err != nil || !parsed.Valid {
		return auth.User{}, &auth.Failure{Message: "Session token is invalid."}
	}
	claims := parsed.Claims.(jwt.MapClaims)

	p.mu.Lock()
	defer p.mu.Unlock()
	acc, ok := p.accounts[claims["sub"].(string)]
	if !ok {
		return auth.User{}, &auth.Failure{Message: "Couldn't find your account."}
	}
	return acc.user, nil
}

// VerificationCode exposes the pending code for an account. Stub-only
// affordance for dev flows and tests.
func (p *StubProvider) VerificationCode(identifier string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	acc := p.findLocked(identifier)
	if acc == nil || acc.verificationCode == "" {
		return "", false
	}
	return acc.verificationCode, true
}

func (p *StubProvider) findLocked(identifier string) *account {
	needle := strings.ToLower(identifier)
	for _, acc := range p.accounts {
		if strings.ToLower(acc.user.Username) == needle || strings.ToLower(acc.user.Email) == needle {
			return acc
		}
	}
	return nil
}

func (p *StubProvider) mintLocked(user auth.User) (*auth.Session, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"exp":      now.Add(time.Hour).Unix(),
	})

	signed, err := token.SignedString(p.signingKey)
	if err != nil {
		return nil, &auth.Failure{Message: err.Error()}
	}
	return &auth.Session{Token: signed, User: user, IssuedAt: now}, nil
}
