package templates

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

const templateColumns = `id, name, category, prompt, language, is_default, owner_id, created_at`

func scanTemplate(row interface{ Scan(...any) error }, t *models.Template) error {
	return row.Scan(&t.ID, &t.Name, &t.Category, &t.Prompt, &t.Language, &t.IsDefault, &t.OwnerID, &t.CreatedAt)
}

func (r *PostgresRepository) Create(ctx context.Context, t *models.Template) (*models.Template, error) {
	query := `INSERT INTO templates (name, category, prompt, language, is_default, owner_id)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		t.Name, t.Category, t.Prompt, t.Language, t.IsDefault, t.OwnerID).
		Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates WHERE id = $1`

	t := &models.Template{}
	if err := scanTemplate(r.db.QueryRowContext(ctx, query, id), t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) ListForUser(ctx context.Context, ownerID int64) ([]models.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates
	          WHERE is_default OR owner_id = $1
	          ORDER BY is_default DESC, name`
	return r.list(ctx, query, ownerID)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]models.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates ORDER BY id`
	return r.list(ctx, query)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]models.Template, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Template
	for rows.Next() {
		var t models.Template
		if err := scanTemplate(rows, &t); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if err := dbx.RequireAffected(res); err != nil {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM templates`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) CountByCategory(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT category, COUNT(*) FROM templates GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make(map[string]int64)
	for rows.Next() {
		var category string
		var count int64
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result[category] = count
	}
	return result, rows.Err()
}
