package accounts

import (
	"context"

	"github.com/dmitrijs2005/passvault/internal/models"
)

// Repository describes the account queries used by the services.
type Repository interface {
	// Insert stores draft for owner and returns the store-assigned id.
	Insert(ctx context.Context, owner models.ClientID, draft models.AccountDraft) (models.AccountID, error)

	// ListByClient returns owner's accounts ordered by id.
	ListByClient(ctx context.Context, owner models.ClientID) ([]models.Account, error)
}
