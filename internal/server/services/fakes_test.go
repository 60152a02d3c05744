package services

import (
	"context"
	"io"
	"log/slog"
	"sort"

	"github.com/apetrenko/contentgen/internal/api"
	"github.com/apetrenko/contentgen/internal/common"
	"github.com/apetrenko/contentgen/internal/dbx"
	"github.com/apetrenko/contentgen/internal/logging"
	"github.com/apetrenko/contentgen/internal/server/models"
	"github.com/apetrenko/contentgen/internal/server/repositories/contents"
	"github.com/apetrenko/contentgen/internal/server/repositories/users"
)

// In-memory repository fakes. Not safe for concurrent writes; fine for tests.

type fakeUserRepo struct {
	nextID int64
	items  map[int64]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: map[int64]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	for _, existing := range r.items {
		if existing.Username == u.Username || existing.Email == u.Email {
			return nil, common.ErrConflict
		}
	}
	r.nextID++
	u.ID = r.nextID
	r.items[u.ID] = u
	return u, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := r.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.items {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]models.User, error) {
	result := make([]models.User, 0, len(r.items))
	for _, u := range r.items {
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeUserRepo) Update(_ context.Context, id int64, username, email string) error {
	u, ok := r.items[id]
	if !ok {
		return common.ErrNotFound
	}
	u.Username, u.Email = username, email
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	u, ok := r.items[id]
	if !ok {
		return common.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *fakeUserRepo) ToggleActive(_ context.Context, id int64) (bool, error) {
	u, ok := r.items[id]
	if !ok {
		return false, common.ErrNotFound
	}
	u.IsActive = !u.IsActive
	return u.IsActive, nil
}

func (r *fakeUserRepo) ToggleAdmin(_ context.Context, id int64) (bool, error) {
	u, ok := r.items[id]
	if !ok {
		return false, common.ErrNotFound
	}
	u.IsAdmin = !u.IsAdmin
	return u.IsAdmin, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeUserRepo) DeleteMany(_ context.Context, ids []int64) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := r.items[id]; ok {
			delete(r.items, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

type fakeContentRepo struct {
	nextID int64
	items  map[int64]*models.Content
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{items: map[int64]*models.Content{}}
}

func (r *fakeContentRepo) Create(_ context.Context, c *models.Content) (*models.Content, error) {
	r.nextID++
	c.ID = r.nextID
	r.items[c.ID] = c
	return c, nil
}

func (r *fakeContentRepo) GetByID(_ context.Context, id int64) (*models.Content, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return c, nil
}

func (r *fakeContentRepo) ListByOwner(_ context.Context, ownerID int64) ([]models.Content, error) {
	var result []models.Content
	for _, c := range r.items {
		if c.OwnerID == ownerID {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *fakeContentRepo) ListAll(_ context.Context) ([]models.Content, error) {
	var result []models.Content
	for _, c := range r.items {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *fakeContentRepo) Update(_ context.Context, id int64, title, body, status string) error {
	c, ok := r.items[id]
	if !ok {
		return common.ErrNotFound
	}
	c.Title, c.Body, c.Status = title, body, status
	return nil
}

func (r *fakeContentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeContentRepo) DeleteMany(_ context.Context, ids []int64) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := r.items[id]; ok {
			delete(r.items, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeContentRepo) DeleteByOwners(_ context.Context, ownerIDs []int64) (int64, error) {
	var n int64
	for id, c := range r.items {
		for _, ownerID := range ownerIDs {
			if c.OwnerID == ownerID {
				delete(r.items, id)
				n++
				break
			}
		}
	}
	return n, nil
}

func (r *fakeContentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

func (r *fakeContentRepo) CountBy(_ context.Context, column string) (map[string]int64, error) {
	result := map[string]int64{}
	for _, c := range r.items {
		switch column {
		case "status":
			result[c.Status]++
		case "language":
			result[c.Language]++
		case "tone":
			result[c.Tone]++
		}
	}
	return result, nil
}

func (r *fakeContentRepo) StatsByOwner(_ context.Context) (map[int64]models.ContentStats, error) {
	result := map[int64]models.ContentStats{}
	for _, c := range r.items {
		st := result[c.OwnerID]
		st.Total++
		switch c.Status {
		case api.StatusPublished:
			st.Published++
		case api.StatusDraft:
			st.Drafts++
		}
		result[c.OwnerID] = st
	}
	return result, nil
}

type fakeTemplateRepo struct {
	nextID int64
	items  map[int64]*models.Template
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{items: map[int64]*models.Template{}}
}

func (r *fakeTemplateRepo) Create(_ context.Context, t *models.Template) (*models.Template, error) {
	r.nextID++
	t.ID = r.nextID
	r.items[t.ID] = t
	return t, nil
}

func (r *fakeTemplateRepo) GetByID(_ context.Context, id int64) (*models.Template, error) {
	t, ok := r.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return t, nil
}

func (r *fakeTemplateRepo) ListForUser(_ context.Context, ownerID int64) ([]models.Template, error) {
	var result []models.Template
	for _, t := range r.items {
		if t.IsDefault || (t.OwnerID != nil && *t.OwnerID == ownerID) {
			result = append(result, *t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeTemplateRepo) ListAll(_ context.Context) ([]models.Template, error) {
	var result []models.Template
	for _, t := range r.items {
		result = append(result, *t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeTemplateRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeTemplateRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

func (r *fakeTemplateRepo) CountByCategory(_ context.Context) (map[string]int64, error) {
	result := map[string]int64{}
	for _, t := range r.items {
		result[t.Category]++
	}
	return result, nil
}

// fakeTxRepos ignores the handle and returns the shared in-memory fakes.
type fakeTxRepos struct {
	users    *fakeUserRepo
	contents *fakeContentRepo
}

func (f *fakeTxRepos) Users(_ dbx.DBTX) users.Repository       { return f.users }
func (f *fakeTxRepos) Contents(_ dbx.DBTX) contents.Repository { return f.contents }

type fakeGenerator struct {
	text string
	err  error
}

func (g *fakeGenerator) Generate(_ context.Context, _, _, _ string) (string, error) {
	return g.text, g.err
}

func (g *fakeGenerator) Configured() bool { return true }

func testLogger() logging.Logger {
	return logging.NewText(io.Discard, slog.LevelError)
}
