package admins

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAdminNotFound  = errors.New("admin not found")
	ErrDuplicateEmail = errors.New("an admin with that email already exists")
)

const QueryTimeoutDuration = time.Second * 5

// Admin is a registry member with moderation capability. Deactivation
// removes the capability but keeps the row, so moderated_by references
// stay intact.
type Admin struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Password     password  `json:"-"`
	RefreshToken *string   `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// password keeps the plaintext out of reach once the hash is computed.
type password struct {
	text *string
	hash []byte
}

func (p *password) Set(text string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(text), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	p.text = &text
	p.hash = hash

	return nil
}

func (p *password) Compare(text string) error {
	return bcrypt.CompareHashAndPassword(p.hash, []byte(text))
}
