// Package services implements the domain logic between the HTTP boundary and
// the repositories: authentication, album management and image management.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/charafmezdari/portfolio/internal/common"
	"github.com/charafmezdari/portfolio/internal/server/auth"
	"github.com/charafmezdari/portfolio/internal/server/config"
	"github.com/charafmezdari/portfolio/internal/server/models"
	"github.com/charafmezdari/portfolio/internal/server/repositories/repomanager"
)

// UserService issues and validates session tokens for the administrator
// account.
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Login verifies the credentials against the stored bcrypt hash and returns
// a signed session token. Unknown email and wrong password both map to
// common.ErrorUnauthorized so callers cannot probe for accounts.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// Authenticate validates a bearer token and re-resolves the embedded account
// id, so a token for a removed account stops working immediately. The
// returned user carries only the identifier and email.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {

	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	return &models.User{ID: user.ID, Email: user.Email}, nil
}

// EnsureAdmin creates the bootstrap administrator account if no account with
// the configured email exists yet. The account is created exactly once and
// never updated here.
func (s *UserService) EnsureAdmin(ctx context.Context, email, password string) error {

	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("error checking admin account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	if _, err := repo.Create(ctx, email, string(hash)); err != nil {
		return fmt.Errorf("error creating admin account: %w", err)
	}

	return nil
}
