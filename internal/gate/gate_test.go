package gate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccount struct {
	id       int64
	password string
}

type fakeVerifier struct {
	accounts map[string]fakeAccount
	err      error
}

func (f *fakeVerifier) Verify(ctx context.Context, email, password string) (Identity, error) {
	if f.err != nil {
		return Identity{}, f.err
	}
	acct, ok := f.accounts[email]
	if !ok || acct.password != password {
		return Identity{}, ErrBadCredentials
	}
	return Identity{ID: acct.id, Email: email}, nil
}

type fakeRegistry struct {
	members map[int64]bool
	err     error
}

func (f *fakeRegistry) IsAdmin(ctx context.Context, identityID int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.members[identityID], nil
}

func setupGateTest() (*Gate, *fakeVerifier, *fakeRegistry) {
	verifier := &fakeVerifier{
		accounts: map[string]fakeAccount{
			"mod@example.com":      {id: 1, password: "correct horse"},
			"outsider@example.com": {id: 2, password: "battery staple"},
		},
	}
	registry := &fakeRegistry{members: map[int64]bool{1: true}}
	return New(verifier, registry), verifier, registry
}

func TestGate_Authenticate(t *testing.T) {
	gate, _, _ := setupGateTest()
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "member with valid credentials",
			email:    "mod@example.com",
			password: "correct horse",
			wantErr:  nil,
		},
		{
			name:     "member with wrong password",
			email:    "mod@example.com",
			password: "wrong",
			wantErr:  ErrAuthenticationFailed,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "whatever",
			wantErr:  ErrAuthenticationFailed,
		},
		{
			name:     "valid credentials but not a registry member",
			email:    "outsider@example.com",
			password: "battery staple",
			wantErr:  ErrNotAuthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adminCtx, err := gate.Authenticate(ctx, tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, adminCtx)
			} else {
				require.NoError(t, err)
				require.NotNil(t, adminCtx)
				assert.True(t, adminCtx.Valid())
				assert.Equal(t, int64(1), adminCtx.AdminID())
				assert.Equal(t, tt.email, adminCtx.Email())
				assert.False(t, adminCtx.IssuedAt().IsZero())
			}
		})
	}
}

// A wrong password and a non-member account must stay distinguishable so
// the handlers can answer 401 and 403 respectively.
func TestGate_DistinctDenials(t *testing.T) {
	gate, _, _ := setupGateTest()
	ctx := context.Background()

	_, errBadPassword := gate.Authenticate(ctx, "outsider@example.com", "wrong")
	_, errNonMember := gate.Authenticate(ctx, "outsider@example.com", "battery staple")

	assert.ErrorIs(t, errBadPassword, ErrAuthenticationFailed)
	assert.ErrorIs(t, errNonMember, ErrNotAuthorized)
	assert.NotErrorIs(t, errNonMember, ErrAuthenticationFailed)
}

func TestGate_InfrastructureErrorsPassThrough(t *testing.T) {
	dbDown := errors.New("connection refused")

	gate := New(&fakeVerifier{err: dbDown}, &fakeRegistry{})
	_, err := gate.Authenticate(context.Background(), "mod@example.com", "correct horse")
	assert.ErrorIs(t, err, dbDown)
	assert.NotErrorIs(t, err, ErrAuthenticationFailed)

	verifier := &fakeVerifier{accounts: map[string]fakeAccount{"mod@example.com": {id: 1, password: "pw"}}}
	gate = New(verifier, &fakeRegistry{err: dbDown})
	_, err = gate.Authenticate(context.Background(), "mod@example.com", "pw")
	assert.ErrorIs(t, err, dbDown)
}

func TestAdminContext_Validity(t *testing.T) {
	var nilCtx *AdminContext
	assert.False(t, nilCtx.Valid())
	assert.Equal(t, int64(0), nilCtx.AdminID())
	assert.Equal(t, "", nilCtx.Email())
	assert.True(t, nilCtx.IssuedAt().IsZero())

	assert.False(t, (&AdminContext{}).Valid())

	gate, _, _ := setupGateTest()
	adminCtx, err := gate.Authenticate(context.Background(), "mod@example.com", "correct horse")
	require.NoError(t, err)
	assert.True(t, adminCtx.Valid())
}

func TestGate_ContextFromIdentity(t *testing.T) {
	gate := New(nil, nil)

	adminCtx := gate.ContextFromIdentity(Identity{ID: 5, Email: "mod@example.com"})
	assert.True(t, adminCtx.Valid())
	assert.Equal(t, int64(5), adminCtx.AdminID())
	assert.Equal(t, "mod@example.com", adminCtx.Email())
}
