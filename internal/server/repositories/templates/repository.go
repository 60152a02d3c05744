// Package templates contains the prompt-template repository.
package templates

import (
	"context"

	"github.com/apetrenko/contentgen/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, t *models.Template) (*models.Template, error)
	GetByID(ctx context.Context, id int64) (*models.Template, error)
	// ListForUser returns default templates plus the user's own.
	ListForUser(ctx context.Context, ownerID int64) ([]models.Template, error)
	ListAll(ctx context.Context) ([]models.Template, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context) (map[string]int64, error)
}
