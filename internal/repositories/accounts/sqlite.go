package accounts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/dbx"
	"github.com/dmitrijs2005/passvault/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, owner models.ClientID, d models.AccountDraft) (models.AccountID, error) {
	query := `INSERT INTO accounts (client_id, account_name, account_username, account_password)
			VALUES (?, ?, ?, ?)
			RETURNING id`

	var id models.AccountID
	if err := r.db.QueryRowContext(ctx, query, int64(owner), d.Name, d.Username, d.Password).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert account: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) ListByClient(ctx context.Context, owner models.ClientID) ([]models.Account, error) {
	query := `SELECT id, client_id, account_name, account_username, account_password
			FROM accounts WHERE client_id = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, int64(owner))
	if err != nil {
		return nil, fmt.Errorf("failed to select accounts: %w", err)
	}
	defer rows.Close()

	result := []models.Account{}
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.ClientID, &a.Name, &a.Username, &a.Password); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return result, nil
}
