package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/loyaltyhub/internal/domain/repository"
	pkgSession "github.com/polkiloo/loyaltyhub/internal/pkg/session"
)

// SessionUseCase issues and parses storefront session tokens.
type SessionUseCase struct {
	users  repository.UserRepository
	tokens pkgSession.Strategy
}

// NewSessionUseCase constructs SessionUseCase.
func NewSessionUseCase(users repository.UserRepository, strategy pkgSession.Strategy) *SessionUseCase {
	return &SessionUseCase{users: users, tokens: strategy}
}

// Issue creates a session token for an enrolled member.
func (u *SessionUseCase) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return "", err
	}
	return u.tokens.Issue(userID)
}

// Parse extracts the member identifier from a session token.
func (u *SessionUseCase) Parse(token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, pkgSession.ErrInvalidToken
	}
	return u.tokens.Parse(token)
}
