package services

import (
	"context"
	"fmt"

	"github.com/apetrenko/contentgen/internal/api"
	"github.com/apetrenko/contentgen/internal/common"
	"github.com/apetrenko/contentgen/internal/logging"
	"github.com/apetrenko/contentgen/internal/server/models"
	"github.com/apetrenko/contentgen/internal/server/repositories/contents"
)

// Generator produces text for a prompt. Satisfied by the gemini client.
type Generator interface {
	Generate(ctx context.Context, prompt, language, tone string) (string, error)
}

// ContentService handles generation, editing and export of content items.
type ContentService struct {
	contents  contents.Repository
	generator Generator
	logger    logging.Logger
}

func NewContentService(repo contents.Repository, generator Generator, logger logging.Logger) *ContentService {
	return &ContentService{contents: repo, generator: generator, logger: logger}
}

// titleLimit caps the auto-derived title length, in runes.
const titleLimit = 100

func (s *ContentService) Generate(ctx context.Context, ownerID int64, req *api.GenerateRequest) (*api.Content, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}

	body, err := s.generator.Generate(ctx, req.Prompt, req.Language, req.Tone)
	if err != nil {
		s.logger.Error(ctx, "generation failed", "error", err, "user_id", ownerID)
		return nil, fmt.Errorf("%w: content generation failed", common.ErrInternal)
	}

	status := api.StatusPublished
	if req.SaveAsDraft {
		status = api.StatusDraft
	}

	c, err := s.contents.Create(ctx, &models.Content{
		Title:    common.Truncate(req.Prompt, titleLimit),
		Body:     body,
		Language: req.Language,
		Tone:     req.Tone,
		Status:   status,
		OwnerID:  ownerID,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "content generated", "content_id", c.ID, "user_id", ownerID, "status", status)

	result := toAPIContent(c)
	return &result, nil
}

// History returns the caller's content, newest first.
func (s *ContentService) History(ctx context.Context, ownerID int64) ([]api.Content, error) {
	items, err := s.contents.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return toAPIContents(items), nil
}

func (s *ContentService) Get(ctx context.Context, callerID int64, isAdmin bool, id int64) (*api.Content, error) {
	c, err := s.ownedContent(ctx, callerID, isAdmin, id)
	if err != nil {
		return nil, err
	}
	result := toAPIContent(c)
	return &result, nil
}

func (s *ContentService) Update(ctx context.Context, callerID int64, isAdmin bool, id int64, req *api.UpdateContentRequest) (*api.Content, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	if _, err := s.ownedContent(ctx, callerID, isAdmin, id); err != nil {
		return nil, err
	}
	if err := s.contents.Update(ctx, id, req.Title, req.Body, req.Status); err != nil {
		return nil, err
	}
	return s.Get(ctx, callerID, isAdmin, id)
}

func (s *ContentService) Delete(ctx context.Context, callerID int64, isAdmin bool, id int64) error {
	if _, err := s.ownedContent(ctx, callerID, isAdmin, id); err != nil {
		return err
	}
	return s.contents.Delete(ctx, id)
}

// ExportFile is a downloadable rendition of one content item.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Export renders a content item in the requested format. Only markdown and
// txt are implemented; pdf and docx are advertised but rejected for now.
func (s *ContentService) Export(ctx context.Context, callerID int64, isAdmin bool, id int64, format string) (*ExportFile, error) {
	c, err := s.ownedContent(ctx, callerID, isAdmin, id)
	if err != nil {
		return nil, err
	}

	switch format {
	case api.ExportMarkdown:
		body := fmt.Sprintf("# %s\n\n%s\n", c.Title, c.Body)
		return &ExportFile{
			Filename:    fmt.Sprintf("content_%d.md", c.ID),
			ContentType: "text/markdown; charset=utf-8",
			Data:        []byte(body),
		}, nil
	case api.ExportText:
		body := fmt.Sprintf("%s\n\n%s\n", c.Title, c.Body)
		return &ExportFile{
			Filename:    fmt.Sprintf("content_%d.txt", c.ID),
			ContentType: "text/plain; charset=utf-8",
			Data:        []byte(body),
		}, nil
	case api.ExportPDF, api.ExportDOCX:
		return nil, fmt.Errorf("%w: export format %q is not supported yet", common.ErrValidation, format)
	default:
		return nil, fmt.Errorf("%w: unknown export format %q", common.ErrValidation, format)
	}
}

func (s *ContentService) ownedContent(ctx context.Context, callerID int64, isAdmin bool, id int64) (*models.Content, error) {
	c, err := s.contents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.OwnerID != callerID && !isAdmin {
		return nil, common.ErrForbidden
	}
	return c, nil
}
