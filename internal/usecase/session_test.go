package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/loyaltyhub/internal/domain/errors"
	"github.com/polkiloo/loyaltyhub/internal/domain/model"
	pkgSession "github.com/polkiloo/loyaltyhub/internal/pkg/session"
	testhelpers "github.com/polkiloo/loyaltyhub/internal/test"
)

func TestSessionIssueRequiresEnrolledMember(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	uc := NewSessionUseCase(users, testhelpers.StrategyStub{})

	if _, err := uc.Issue(context.Background(), uuid.New()); err != domainErrors.ErrUserNotFound {
		t.Fatalf("expected user not found, got %v", err)
	}
}

func TestSessionIssueAndParseRoundtrip(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	userID := uuid.New()
	if err := users.Create(context.Background(), &model.LoyaltyUser{ID: userID}); err != nil {
		t.Fatalf("seed member: %v", err)
	}
	uc := NewSessionUseCase(users, testhelpers.StrategyStub{})

	token, err := uc.Issue(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := uc.Parse(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != userID {
		t.Fatalf("roundtrip identifier mismatch: %s != %s", parsed, userID)
	}
}

func TestSessionParseRejectsEmptyToken(t *testing.T) {
	uc := NewSessionUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.StrategyStub{})

	if _, err := uc.Parse(""); err != pkgSession.ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}
