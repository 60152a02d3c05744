// Package services implements the application logic between the HTTP layer
// and the repositories.
package services

import (
	"github.com/apetrenko/contentgen/internal/api"
	"github.com/apetrenko/contentgen/internal/server/models"
)

func toAPIUser(u *models.User) api.User {
	return api.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsActive:  u.IsActive,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

func toAPIContent(c *models.Content) api.Content {
	return api.Content{
		ID:        c.ID,
		Title:     c.Title,
		Body:      c.Body,
		Language:  c.Language,
		Tone:      c.Tone,
		Status:    c.Status,
		OwnerID:   c.OwnerID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toAPIContents(items []models.Content) []api.Content {
	result := make([]api.Content, 0, len(items))
	for i := range items {
		result = append(result, toAPIContent(&items[i]))
	}
	return result
}

func toAPITemplate(t *models.Template) api.Template {
	return api.Template{
		ID:        t.ID,
		Name:      t.Name,
		Category:  t.Category,
		Prompt:    t.Prompt,
		Language:  t.Language,
		IsDefault: t.IsDefault,
		OwnerID:   t.OwnerID,
	}
}

func toAPITemplates(items []models.Template) []api.Template {
	result := make([]api.Template, 0, len(items))
	for i := range items {
		result = append(result, toAPITemplate(&items[i]))
	}
	return result
}
