package ports

import (
	"context"

	"github.com/hirafic/marketplace-api/internal/core/domain"
)

// ClientRepository defines persistence operations for client profiles.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	FindByEmail(ctx context.Context, email string) (*domain.Client, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
}

// ArtisanRepository defines persistence operations for artisan profiles.
type ArtisanRepository interface {
	Create(ctx context.Context, a *domain.Artisan) error
	FindByEmail(ctx context.Context, email string) (*domain.Artisan, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Artisan, error)
	Update(ctx context.Context, a *domain.Artisan) error
}
