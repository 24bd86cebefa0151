package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/playlist-service/internal/auth"
	"github.com/spec-kit/playlist-service/internal/config"
	"github.com/spec-kit/playlist-service/internal/domain"
	apperrors "github.com/spec-kit/playlist-service/pkg/util/errorutil"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := r.byEmail[user.Email]; exists {
		return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	}
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	copied := *user
	r.byEmail[user.Email] = &copied
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func newAccountService(repo *fakeUserRepo) (*AccountService, *auth.TokenManager) {
	tm := auth.NewTokenManager("test-secret", 60)
	cfg := config.AuthConfig{BcryptCost: bcrypt.MinCost}
	return NewAccountService(cfg, repo, tm), tm
}

func TestAccountService(t *testing.T) {
	t.Run("Register Then Login", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc, tm := newAccountService(repo)

		user, err := svc.Register(context.Background(), "a@x.com", "pw1")
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		if user.ID == "" {
			t.Fatal("expected assigned user id")
		}
		if user.PasswordHash == "pw1" || user.PasswordHash == "" {
			t.Fatal("expected password to be hashed")
		}

		token, _, err := svc.Login(context.Background(), "a@x.com", "pw1")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		subject, err := tm.ParseToken(token)
		if err != nil {
			t.Fatalf("ParseToken() error = %v", err)
		}
		if subject != user.ID {
			t.Errorf("expected token subject %s, got %s", user.ID, subject)
		}
	})

	t.Run("Duplicate Email Conflict", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc, _ := newAccountService(repo)

		if _, err := svc.Register(context.Background(), "a@x.com", "pw1"); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		_, err := svc.Register(context.Background(), "a@x.com", "pw2")
		if err == nil {
			t.Fatal("expected conflict error")
		}
		if code := apperrors.ToDomainError(err).HTTPStatus; code != 409 {
			t.Errorf("expected status 409, got %d", code)
		}
	})

	t.Run("Uniform Invalid Credentials", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc, _ := newAccountService(repo)

		if _, err := svc.Register(context.Background(), "a@x.com", "pw1"); err != nil {
			t.Fatalf("Register() error = %v", err)
		}

		_, _, wrongPassErr := svc.Login(context.Background(), "a@x.com", "wrong")
		_, _, unknownErr := svc.Login(context.Background(), "nobody@x.com", "pw1")

		if wrongPassErr == nil || unknownErr == nil {
			t.Fatal("expected both logins to fail")
		}
		// Responses must not distinguish which part failed.
		if wrongPassErr.Error() != unknownErr.Error() {
			t.Errorf("expected identical errors, got %q and %q", wrongPassErr, unknownErr)
		}
		if code := apperrors.ToDomainError(wrongPassErr).HTTPStatus; code != 401 {
			t.Errorf("expected status 401, got %d", code)
		}
	})

	t.Run("Store Failure Passes Through", func(t *testing.T) {
		svc, _ := newAccountService(newFakeUserRepo())

		_, _, err := svc.Login(context.Background(), "a@x.com", "pw1")
		if err == nil {
			t.Fatal("expected error for empty store")
		}
		if !errors.As(err, new(*apperrors.DomainError)) {
			t.Errorf("expected a domain error, got %T", err)
		}
	})
}
