package contents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/apetrenko/contentgen/internal/api"
	"github.com/apetrenko/contentgen/internal/common"
	"github.com/apetrenko/contentgen/internal/dbx"
	"github.com/apetrenko/contentgen/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const contentColumns = `id, title, body, language, tone, status, owner_id, created_at, updated_at`

func scanContent(row interface{ Scan(...any) error }, c *models.Content) error {
	return row.Scan(&c.ID, &c.Title, &c.Body, &c.Language, &c.Tone, &c.Status,
		&c.OwnerID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Content) (*models.Content, error) {
	query := `INSERT INTO contents (title, body, language, tone, status, owner_id)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		c.Title, c.Body, c.Language, c.Tone, c.Status, c.OwnerID).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Content, error) {
	query := `SELECT ` + contentColumns + ` FROM contents WHERE id = $1`

	c := &models.Content{}
	if err := scanContent(r.db.QueryRowContext(ctx, query, id), c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Content, error) {
	query := `SELECT ` + contentColumns + ` FROM contents WHERE owner_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, ownerID)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]models.Content, error) {
	query := `SELECT ` + contentColumns + ` FROM contents ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]models.Content, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Content
	for rows.Next() {
		var c models.Content
		if err := scanContent(rows, &c); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, title, body, status string) error {
	query := `UPDATE contents SET title = $2, body = $3, status = $4, updated_at = now() WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, title, body, status)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if err := dbx.RequireAffected(res); err != nil {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if err := dbx.RequireAffected(res); err != nil {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM contents WHERE id = ANY($1)`, dbx.Int64Array(ids))
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (r *PostgresRepository) DeleteByOwners(ctx context.Context, ownerIDs []int64) (int64, error) {
	if len(ownerIDs) == 0 {
		return 0, nil
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM contents WHERE owner_id = ANY($1)`, dbx.Int64Array(ownerIDs))
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contents`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// CountBy groups contents by one of the allowed columns. The column name is
// checked against an allowlist because it is interpolated into the query.
func (r *PostgresRepository) CountBy(ctx context.Context, column string) (map[string]int64, error) {
	switch column {
	case "status", "language", "tone":
	default:
		return nil, fmt.Errorf("unsupported group column %q", column)
	}

	query := fmt.Sprintf(`SELECT %s, COUNT(*) FROM contents GROUP BY %s`, column, column)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make(map[string]int64)
	for rows.Next() {
		var key string
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result[key] = count
	}
	return result, rows.Err()
}

func (r *PostgresRepository) StatsByOwner(ctx context.Context) (map[int64]models.ContentStats, error) {
	query := `SELECT owner_id,
	                 COUNT(*),
	                 COUNT(*) FILTER (WHERE status = $1),
	                 COUNT(*) FILTER (WHERE status = $2)
	          FROM contents GROUP BY owner_id`

	rows, err := r.db.QueryContext(ctx, query, api.StatusPublished, api.StatusDraft)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make(map[int64]models.ContentStats)
	for rows.Next() {
		var ownerID int64
		var st models.ContentStats
		if err := rows.Scan(&ownerID, &st.Total, &st.Published, &st.Drafts); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result[ownerID] = st
	}
	return result, rows.Err()
}
