package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/cryptox"
	"github.com/dmitrijs2005/passvault/internal/logging"
	"github.com/dmitrijs2005/passvault/internal/models"
	"github.com/dmitrijs2005/passvault/internal/repositories/clients"
)

// AuthService verifies master credentials.
type AuthService interface {
	// Authenticate returns the id of the client whose username and password
	// both match. An unknown username and a wrong password both yield
	// common.ErrAuthenticationFailed. It has no side effects.
	Authenticate(ctx context.Context, username, password string) (models.ClientID, error)
}

type authService struct {
	clients clients.Repository
	log     logging.Logger
}

// NewAuthService constructs an AuthService reading clients from repo.
func NewAuthService(repo clients.Repository, log logging.Logger) AuthService {
	return &authService{clients: repo, log: log}
}

// dummyHash is verified against when the username is unknown so both failure
// paths do the same key derivation work.
var dummyHash = sync.OnceValue(func() string {
	return cryptox.HashPassword([]byte("passvault-unknown-client"))
})

func (a *authService) Authenticate(ctx context.Context, username, password string) (models.ClientID, error) {
	if username == "" || password == "" {
		return 0, common.ErrAuthenticationFailed
	}

	found, err := a.clients.FindByUsername(ctx, username)
	if err != nil {
		a.log.Error(ctx, "client lookup failed", "error", err)
		return 0, fmt.Errorf("%w: %w", common.ErrPersistence, err)
	}

	switch len(found) {
	case 0:
		_, _ = cryptox.VerifyPassword(dummyHash(), []byte(password))
		a.log.Warn(ctx, "authentication failed")
		return 0, common.ErrAuthenticationFailed
	case 1:
	default:
		a.log.Error(ctx, "username matches several clients", "count", len(found))
		return 0, fmt.Errorf("%w: username matches %d clients", common.ErrInternal, len(found))
	}

	client := found[0]
	ok, err := cryptox.VerifyPassword(client.Password, []byte(password))
	if err != nil {
		a.log.Error(ctx, "stored password hash unreadable", "client_id", client.ID, "error", err)
		return 0, fmt.Errorf("%w: client %d: %w", common.ErrInternal, client.ID, err)
	}
	if !ok {
		a.log.Warn(ctx, "authentication failed")
		return 0, common.ErrAuthenticationFailed
	}

	a.log.Info(ctx, "client authenticated", "client_id", client.ID)
	return client.ID, nil
}
