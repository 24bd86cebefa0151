package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/playlist-service/internal/auth"
	"github.com/spec-kit/playlist-service/internal/config"
	"github.com/spec-kit/playlist-service/internal/domain"
	"github.com/spec-kit/playlist-service/internal/repository"
	apperrors "github.com/spec-kit/playlist-service/pkg/util/errorutil"
)

const uniqueViolationCode = "23505"

// AccountService coordinates registration and login flows.
type AccountService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAccountService builds the service.
func NewAccountService(cfg config.AuthConfig, users repository.UserRepository, tokenMgr *auth.TokenManager) *AccountService {
	return &AccountService{
		users:      users,
		tokenMgr:   tokenMgr,
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new account. The password is hashed before the insert;
// email uniqueness is enforced by the store and surfaces as a conflict.
func (s *AccountService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflict("email already registered", nil)
		}
		return nil, err
	}
	return user, nil
}

// Login authenticates the credentials and issues a signed token. Unknown
// email and wrong password produce the same error so responses cannot be
// used to enumerate accounts.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	return s.tokenMgr.GenerateToken(user.ID)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
