package users

import (
	"context"

	"github.com/charafmezdari/portfolio/internal/server/models"
)

// Repository is the persistence contract for administrator accounts.
type Repository interface {
	Create(ctx context.Context, email, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
