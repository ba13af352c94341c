package clients

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

func (r *SQLiteRepository) Create(ctx context.Context, c *models.Client) (*models.Client, error) {
	query := `INSERT INTO clients (username, password) VALUES (?, ?) RETURNING id`

	if err := r.db.QueryRowContext(ctx, query, c.Username, c.Password).Scan(&c.ID); err != nil {
		return nil, fmt.Errorf("failed to insert client: %w", err)
	}
	return c, nil
}

func (r *SQLiteRepository) FindByUsername(ctx context.Context, username string) ([]models.Client, error) {
	query := `SELECT id, username, password FROM clients WHERE username = ?`

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to select clients: %w", err)
	}
	defer rows.Close()

	var result []models.Client
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.Username, &c.Password); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clients: %w", err)
	}
	return result, nil
}
