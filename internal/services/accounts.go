package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/cryptox"
	"github.com/dmitrijs2005/passvault/internal/logging"
	"github.com/dmitrijs2005/passvault/internal/models"
	"github.com/dmitrijs2005/passvault/internal/repositories/accounts"
	"github.com/dmitrijs2005/passvault/internal/validation"
)

// AccountService stores and lists accounts for one owning client at a time.
type AccountService interface {
	// AddAccount stores draft for owner and returns the new account id.
	AddAccount(ctx context.Context, draft models.AccountDraft, owner models.ClientID) (models.AccountID, error)

	// GetAccounts lists owner's accounts. No accounts is an empty slice.
	GetAccounts(ctx context.Context, owner models.ClientID) ([]models.Account, error)

	// EditAccount is not implemented and always fails with common.ErrUnsupported.
	EditAccount(ctx context.Context, owner models.ClientID, id models.AccountID, draft models.AccountDraft) error

	// DeleteAccount is not implemented and always fails with common.ErrUnsupported.
	DeleteAccount(ctx context.Context, owner models.ClientID, id models.AccountID) error
}

type accountService struct {
	accounts  accounts.Repository
	sealer    cryptox.Sealer
	validator *validation.Validator
	log       logging.Logger
}

// NewAccountService constructs an AccountService. Passwords pass through
// sealer on the way into and out of repo.
func NewAccountService(repo accounts.Repository, sealer cryptox.Sealer, v *validation.Validator, log logging.Logger) AccountService {
	return &accountService{accounts: repo, sealer: sealer, validator: v, log: log}
}

func (s *accountService) AddAccount(ctx context.Context, draft models.AccountDraft, owner models.ClientID) (models.AccountID, error) {
	if err := s.validator.Struct(draft); err != nil {
		return 0, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}

	sealed, err := s.sealer.Seal(draft.Password)
	if err != nil {
		return 0, fmt.Errorf("%w: seal password: %w", common.ErrInternal, err)
	}
	draft.Password = sealed

	id, err := s.accounts.Insert(ctx, owner, draft)
	if err != nil {
		s.log.Error(ctx, "account insert failed", "client_id", owner, "error", err)
		return 0, fmt.Errorf("%w: %w", common.ErrPersistence, err)
	}

	s.log.Info(ctx, "account added", "client_id", owner, "account_id", id)
	return id, nil
}

func (s *accountService) GetAccounts(ctx context.Context, owner models.ClientID) ([]models.Account, error) {
	list, err := s.accounts.ListByClient(ctx, owner)
	if err != nil {
		s.log.Error(ctx, "account listing failed", "client_id", owner, "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrPersistence, err)
	}

	for i := range list {
		if list[i].ClientID != owner {
			return nil, fmt.Errorf("%w: account %d is not owned by client %d", common.ErrInternal, list[i].ID, owner)
		}
		plain, err := s.sealer.Open(list[i].Password)
		if err != nil {
			return nil, fmt.Errorf("%w: open password of account %d: %w", common.ErrInternal, list[i].ID, err)
		}
		list[i].Password = plain
	}

	if list == nil {
		list = []models.Account{}
	}
	return list, nil
}

func (s *accountService) EditAccount(context.Context, models.ClientID, models.AccountID, models.AccountDraft) error {
	return fmt.Errorf("%w: edit account", common.ErrUnsupported)
}

func (s *accountService) DeleteAccount(context.Context, models.ClientID, models.AccountID) error {
	return fmt.Errorf("%w: delete account", common.ErrUnsupported)
}
