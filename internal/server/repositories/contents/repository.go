// Package contents contains the generated-content repository.
package contents

import (
	"context"

	"github.com/apetrenko/contentgen/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.Content) (*models.Content, error)
	GetByID(ctx context.Context, id int64) (*models.Content, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Content, error)
	ListAll(ctx context.Context) ([]models.Content, error)
	Update(ctx context.Context, id int64, title, body, status string) error
	Delete(ctx context.Context, id int64) error
	DeleteMany(ctx context.Context, ids []int64) (int64, error)
	DeleteByOwners(ctx context.Context, ownerIDs []int64) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountBy(ctx context.Context, column string) (map[string]int64, error)
	StatsByOwner(ctx context.Context) (map[int64]models.ContentStats, error)
}
