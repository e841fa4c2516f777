package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid session token")

// Strategy issues and verifies tokens naming the current loyalty user. This
// is identity plumbing for the storefront session, not credential
// authentication.
type Strategy interface {
	Issue(userID uuid.UUID) (string, error)
	Parse(token string) (uuid.UUID, error)
	Name() string
}

// Options tunes token issuance.
type Options struct {
	TTL time.Duration
}
