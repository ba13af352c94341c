package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/passvault/internal/cryptox"
	"github.com/dmitrijs2005/passvault/internal/logging"
	"github.com/dmitrijs2005/passvault/internal/models"
	"github.com/dmitrijs2005/passvault/internal/store"
	"github.com/dmitrijs2005/passvault/internal/validation"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *store.Store
	auth     AuthService
	clients  ClientService
	accounts AccountService
}

func newFixture(t *testing.T, sealer cryptox.Sealer) *fixture {
	t.Helper()
	s, err := store.Open(context.Background(), "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	log := logging.Nop()
	v := validation.New()
	return &fixture{
		store:    s,
		auth:     NewAuthService(s.Clients(), log),
		clients:  NewClientService(s.DB(), v, log),
		accounts: NewAccountService(s.Accounts(), sealer, v, log),
	}
}

func (f *fixture) register(t *testing.T, username, password string) models.ClientID {
	t.Helper()
	id, err := f.clients.Register(context.Background(), username, password)
	require.NoError(t, err)
	return id
}
