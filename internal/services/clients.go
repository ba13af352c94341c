package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/cryptox"
	"github.com/dmitrijs2005/passvault/internal/dbx"
	"github.com/dmitrijs2005/passvault/internal/logging"
	"github.com/dmitrijs2005/passvault/internal/models"
	"github.com/dmitrijs2005/passvault/internal/repositories/clients"
	"github.com/dmitrijs2005/passvault/internal/validation"
)

// ClientService creates vault owners. It is the seed path; the menu never
// calls it.
type ClientService interface {
	// Register hashes password and stores a new client. A taken username
	// yields common.ErrAlreadyExists.
	Register(ctx context.Context, username, password string) (models.ClientID, error)
}

type clientService struct {
	db        *sql.DB
	validator *validation.Validator
	log       logging.Logger
}

// NewClientService constructs a ClientService over db.
func NewClientService(db *sql.DB, v *validation.Validator, log logging.Logger) ClientService {
	return &clientService{db: db, validator: v, log: log}
}

func (s *clientService) Register(ctx context.Context, username, password string) (models.ClientID, error) {
	c := &models.Client{Username: username, Password: password}
	if err := s.validator.Struct(c); err != nil {
		return 0, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}
	c.Password = cryptox.HashPassword([]byte(password))

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := clients.NewSQLiteRepository(tx)

		existing, err := repo.FindByUsername(ctx, username)
		if err != nil {
			return fmt.Errorf("%w: %w", common.ErrPersistence, err)
		}
		if len(existing) > 0 {
			return common.ErrAlreadyExists
		}
		if _, err := repo.Create(ctx, c); err != nil {
			return fmt.Errorf("%w: %w", common.ErrPersistence, err)
		}
		return nil
	})
	if err != nil {
		s.log.Warn(ctx, "client registration failed", "error", err)
		return 0, err
	}

	s.log.Info(ctx, "client registered", "client_id", c.ID)
	return c.ID, nil
}
