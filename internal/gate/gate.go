// Package gate is the credential front door for moderation. It combines an
// identity verifier with the admin registry and hands out AdminContext
// values that the review engine trusts.
package gate

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrBadCredentials is returned by Verifier implementations when the
	// credentials themselves are wrong.
	ErrBadCredentials = errors.New("invalid email or password")

	// ErrAuthenticationFailed means the verifier rejected the credentials.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrNotAuthorized means the credentials were fine but the identity is
	// not in the admin registry. Callers render this differently from a
	// wrong password.
	ErrNotAuthorized = errors.New("authenticated but not an administrator")
)

// Identity is a verified account as reported by the Verifier.
type Identity struct {
	ID    int64
	Email string
}

// Verifier checks credentials against wherever accounts actually live.
// Implementations return ErrBadCredentials for a mismatch; any other error
// is treated as infrastructure failure, not as a denial.
type Verifier interface {
	Verify(ctx context.Context, email, password string) (Identity, error)
}

// Registry answers membership questions for verified identities.
type Registry interface {
	IsAdmin(ctx context.Context, identityID int64) (bool, error)
}

// AdminContext proves its holder passed the gate. Every field is
// unexported, so nothing outside this package can fabricate one; the only
// ways to obtain a valid value are Authenticate and ContextFromIdentity.
type AdminContext struct {
	adminID  int64
	email    string
	issuedAt time.Time
}

func (c *AdminContext) AdminID() int64 {
	if c == nil {
		return 0
	}
	return c.adminID
}

func (c *AdminContext) Email() string {
	if c == nil {
		return ""
	}
	return c.email
}

func (c *AdminContext) IssuedAt() time.Time {
	if c == nil {
		return time.Time{}
	}
	return c.issuedAt
}

// Valid reports whether the context was actually issued by this package.
// A zero or nil context never validates.
func (c *AdminContext) Valid() bool {
	return c != nil && c.adminID != 0
}

type Gate struct {
	verifier Verifier
	registry Registry
}

func New(verifier Verifier, registry Registry) *Gate {
	return &Gate{verifier: verifier, registry: registry}
}

// Authenticate verifies credentials and checks registry membership.
// Wrong credentials yield ErrAuthenticationFailed; valid credentials
// without membership yield ErrNotAuthorized, a deliberately distinct
// outcome.
func (g *Gate) Authenticate(ctx context.Context, email, password string) (*AdminContext, error) {
	identity, err := g.verifier.Verify(ctx, email, password)
	if err != nil {
		if errors.Is(err, ErrBadCredentials) {
			return nil, ErrAuthenticationFailed
		}
		return nil, err
	}

	member, err := g.registry.IsAdmin(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, ErrNotAuthorized
	}

	return &AdminContext{
		adminID:  identity.ID,
		email:    identity.Email,
		issuedAt: time.Now(),
	}, nil
}

// ContextFromIdentity rebuilds an AdminContext for a session token that was
// already validated. Callers must re-check registry membership first; the
// token middleware in cmd/api is the only intended caller.
func (g *Gate) ContextFromIdentity(identity Identity) *AdminContext {
	return &AdminContext{
		adminID:  identity.ID,
		email:    identity.Email,
		issuedAt: time.Now(),
	}
}
