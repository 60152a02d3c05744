package services

import (
	"context"
	"fmt"

	"github.com/apetrenko/contentgen/internal/api"
	"github.com/apetrenko/contentgen/internal/common"
	"github.com/apetrenko/contentgen/internal/logging"
	"github.com/apetrenko/contentgen/internal/server/models"
	"github.com/apetrenko/contentgen/internal/server/repositories/templates"
)

// TemplateService handles prompt templates. Default templates are shared and
// read-only; users manage only their own.
type TemplateService struct {
	templates templates.Repository
	logger    logging.Logger
}

func NewTemplateService(repo templates.Repository, logger logging.Logger) *TemplateService {
	return &TemplateService{templates: repo, logger: logger}
}

// List returns defaults plus the caller's own templates.
func (s *TemplateService) List(ctx context.Context, userID int64) ([]api.Template, error) {
	items, err := s.templates.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toAPITemplates(items), nil
}

func (s *TemplateService) Create(ctx context.Context, ownerID int64, req *api.CreateTemplateRequest) (*api.Template, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}

	t, err := s.templates.Create(ctx, &models.Template{
		Name:     req.Name,
		Category: req.Category,
		Prompt:   req.Prompt,
		Language: req.Language,
		OwnerID:  &ownerID,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "template created", "template_id", t.ID, "user_id", ownerID)

	result := toAPITemplate(t)
	return &result, nil
}

func (s *TemplateService) Delete(ctx context.Context, callerID int64, isAdmin bool, id int64) error {
	t, err := s.templates.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t.IsDefault && !isAdmin {
		return fmt.Errorf("%w: default templates cannot be deleted", common.ErrForbidden)
	}
	if !t.IsDefault && (t.OwnerID == nil || *t.OwnerID != callerID) && !isAdmin {
		return common.ErrForbidden
	}
	return s.templates.Delete(ctx, id)
}
