package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apetrenko/contentgen/internal/api"
	"github.com/apetrenko/contentgen/internal/common"
	"github.com/apetrenko/contentgen/internal/server/models"
)

func TestGenerate(t *testing.T) {
	repo := newFakeContentRepo()
	s := NewContentService(repo, &fakeGenerator{text: "generated body"}, testLogger())

	c, err := s.Generate(context.Background(), 7, &api.GenerateRequest{
		Prompt: "write about cats", Language: "en", Tone: "casual",
	})
	require.NoError(t, err)

	assert.Equal(t, "write about cats", c.Title)
	assert.Equal(t, "generated body", c.Body)
	assert.Equal(t, api.StatusPublished, c.Status)
	assert.Equal(t, int64(7), c.OwnerID)
}

func TestGenerateDraftAndLongTitle(t *testing.T) {
	repo := newFakeContentRepo()
	s := NewContentService(repo, &fakeGenerator{text: "body"}, testLogger())

	prompt := strings.Repeat("x", 250)
	c, err := s.Generate(context.Background(), 1, &api.GenerateRequest{
		Prompt: prompt, Language: "en", Tone: "formal", SaveAsDraft: true,
	})
	require.NoError(t, err)

	assert.Equal(t, api.StatusDraft, c.Status)
	assert.Len(t, c.Title, 100)
}

func TestGenerateBackendFailure(t *testing.T) {
	s := NewContentService(newFakeContentRepo(), &fakeGenerator{err: errors.New("boom")}, testLogger())

	_, err := s.Generate(context.Background(), 1, &api.GenerateRequest{
		Prompt: "p", Language: "en", Tone: "formal",
	})
	assert.ErrorIs(t, err, common.ErrInternal)
}

func seedContent(t *testing.T, repo *fakeContentRepo, ownerID int64) *models.Content {
	t.Helper()
	c, err := repo.Create(context.Background(), &models.Content{
		Title: "t", Body: "b", Language: "en", Tone: "formal",
		Status: api.StatusPublished, OwnerID: ownerID,
	})
	require.NoError(t, err)
	return c
}

func TestContentOwnership(t *testing.T) {
	repo := newFakeContentRepo()
	s := NewContentService(repo, &fakeGenerator{text: "x"}, testLogger())
	c := seedContent(t, repo, 1)

	t.Run("owner can read", func(t *testing.T) {
		_, err := s.Get(context.Background(), 1, false, c.ID)
		assert.NoError(t, err)
	})

	t.Run("stranger denied", func(t *testing.T) {
		_, err := s.Get(context.Background(), 2, false, c.ID)
		assert.ErrorIs(t, err, common.ErrForbidden)
	})

	t.Run("admin allowed", func(t *testing.T) {
		_, err := s.Get(context.Background(), 2, true, c.ID)
		assert.NoError(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := s.Get(context.Background(), 1, false, 999)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestUpdateContent(t *testing.T) {
	repo := newFakeContentRepo()
	s := NewContentService(repo, &fakeGenerator{text: "x"}, testLogger())
	c := seedContent(t, repo, 1)

	updated, err := s.Update(context.Background(), 1, false, c.ID, &api.UpdateContentRequest{
		Title: "new title", Body: "new body", Status: api.StatusDraft,
	})
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, api.StatusDraft, updated.Status)

	_, err = s.Update(context.Background(), 1, false, c.ID, &api.UpdateContentRequest{
		Title: "t", Body: "b", Status: "archived",
	})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestDeleteContent(t *testing.T) {
	repo := newFakeContentRepo()
	s := NewContentService(repo, &fakeGenerator{text: "x"}, testLogger())
	c := seedContent(t, repo, 1)

	require.Error(t, s.Delete(context.Background(), 2, false, c.ID))
	require.NoError(t, s.Delete(context.Background(), 1, false, c.ID))

	_, err := repo.GetByID(context.Background(), c.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestExport(t *testing.T) {
	repo := newFakeContentRepo()
	s := NewContentService(repo, &fakeGenerator{text: "x"}, testLogger())
	c := seedContent(t, repo, 1)

	t.Run("markdown", func(t *testing.T) {
		f, err := s.Export(context.Background(), 1, false, c.ID, api.ExportMarkdown)
		require.NoError(t, err)
		assert.Contains(t, f.Filename, ".md")
		assert.Contains(t, string(f.Data), "# t")
	})

	t.Run("txt", func(t *testing.T) {
		f, err := s.Export(context.Background(), 1, false, c.ID, api.ExportText)
		require.NoError(t, err)
		assert.Contains(t, f.Filename, ".txt")
	})

	t.Run("pdf rejected", func(t *testing.T) {
		_, err := s.Export(context.Background(), 1, false, c.ID, api.ExportPDF)
		assert.ErrorIs(t, err, common.ErrValidation)
		assert.Contains(t, err.Error(), "not supported")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := s.Export(context.Background(), 1, false, c.ID, "rtf")
		assert.ErrorIs(t, err, common.ErrValidation)
	})
}

func TestHistory(t *testing.T) {
	repo := newFakeContentRepo()
	s := NewContentService(repo, &fakeGenerator{text: "x"}, testLogger())
	seedContent(t, repo, 1)
	seedContent(t, repo, 1)
	seedContent(t, repo, 2)

	items, err := s.History(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
