package test

import (
	"github.com/google/uuid"

	pkgSession "github.com/polkiloo/loyaltyhub/internal/pkg/session"
)

// StrategyStub implements the session token strategy with overridable hooks.
type StrategyStub struct {
	IssueFn func(uuid.UUID) (string, error)
	ParseFn func(string) (uuid.UUID, error)
}

// Issue delegates to the configured function or returns the raw identifier.
func (s StrategyStub) Issue(userID uuid.UUID) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID)
	}
	return userID.String(), nil
}

// Parse delegates to the configured function or decodes the raw identifier.
func (s StrategyStub) Parse(token string) (uuid.UUID, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	id, err := uuid.Parse(token)
	if err != nil {
		return uuid.Nil, pkgSession.ErrInvalidToken
	}
	return id, nil
}

// Name identifies the stub strategy.
func (s StrategyStub) Name() string { return "stub" }

// TokenParserStub satisfies the session middleware parser contract.
type TokenParserStub struct {
	ID  uuid.UUID
	Err error
}

// ParseSession returns the configured identifier or error. Without either it
// rejects the token.
func (s TokenParserStub) ParseSession(token string) (uuid.UUID, error) {
	if s.Err != nil {
		return uuid.Nil, s.Err
	}
	if s.ID != uuid.Nil {
		return s.ID, nil
	}
	return uuid.Nil, pkgSession.ErrInvalidToken
}
