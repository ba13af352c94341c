package clients

import (
	"context"

	"github.com/dmitrijs2005/passvault/internal/models"
)

// Repository describes the client queries used by the services.
type Repository interface {
	// Create inserts c and sets c.ID to the store-assigned identifier.
	Create(ctx context.Context, c *models.Client) (*models.Client, error)

	// FindByUsername returns all clients with exactly this username.
	FindByUsername(ctx context.Context, username string) ([]models.Client, error)
}
