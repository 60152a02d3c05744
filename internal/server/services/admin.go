package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/apetrenko/contentgen/internal/api"
	"github.com/apetrenko/contentgen/internal/common"
	"github.com/apetrenko/contentgen/internal/dbx"
	"github.com/apetrenko/contentgen/internal/logging"
	"github.com/apetrenko/contentgen/internal/server/auth"
	"github.com/apetrenko/contentgen/internal/server/repositories/contents"
	"github.com/apetrenko/contentgen/internal/server/repositories/templates"
	"github.com/apetrenko/contentgen/internal/server/repositories/users"
	"golang.org/x/sync/errgroup"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// HealthChecker reports whether the generation backend is usable.
type HealthChecker interface {
	Configured() bool
}

// TxRepositories hands out repositories bound to a transactional handle.
// Satisfied by repomanager.PostgresRepositoryManager.
type TxRepositories interface {
	Users(db dbx.DBTX) users.Repository
	Contents(db dbx.DBTX) contents.Repository
}

// AdminService implements the moderation and operations surface. All methods
// assume the caller was already verified as an admin by the HTTP layer.
type AdminService struct {
	users     users.Repository
	contents  contents.Repository
	templates templates.Repository
	txRepos   TxRepositories
	db        *sql.DB
	generator HealthChecker
	logger    logging.Logger
}

func NewAdminService(u users.Repository, c contents.Repository, t templates.Repository,
	txRepos TxRepositories, db *sql.DB, generator HealthChecker, logger logging.Logger) *AdminService {
	return &AdminService{users: u, contents: c, templates: t, txRepos: txRepos, db: db,
		generator: generator, logger: logger}
}

const topListLimit = 5

// Dashboard assembles the admin overview. The independent aggregates are
// fetched concurrently.
func (s *AdminService) Dashboard(ctx context.Context) (*api.DashboardSnapshot, error) {
	var snap api.DashboardSnapshot

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.Users, err = s.users.Count(ctx)
		return
	})
	g.Go(func() (err error) {
		snap.Contents, err = s.contents.Count(ctx)
		return
	})
	g.Go(func() (err error) {
		snap.Templates, err = s.templates.Count(ctx)
		return
	})
	g.Go(func() error {
		byLanguage, err := s.contents.CountBy(ctx, "language")
		if err != nil {
			return err
		}
		snap.TopLanguages = topCounts(byLanguage, topListLimit)
		return nil
	})
	g.Go(func() error {
		byTone, err := s.contents.CountBy(ctx, "tone")
		if err != nil {
			return err
		}
		snap.TopTones = topCounts(byTone, topListLimit)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

func topCounts(counts map[string]int64, limit int) []api.NameCount {
	result := make([]api.NameCount, 0, len(counts))
	for name, count := range counts {
		result = append(result, api.NameCount{Name: name, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Name < result[j].Name
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

// ListUsers returns every account with its content stats attached.
func (s *AdminService) ListUsers(ctx context.Context) ([]api.User, error) {
	list, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := s.contents.StatsByOwner(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]api.User, 0, len(list))
	for i := range list {
		u := toAPIUser(&list[i])
		st := stats[list[i].ID]
		u.Stats = &api.UserStats{TotalContent: st.Total, Published: st.Published, Drafts: st.Drafts}
		result = append(result, u)
	}
	return result, nil
}

func (s *AdminService) UpdateUser(ctx context.Context, id int64, req *api.UpdateUserRequest) (*api.User, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	if err := s.users.Update(ctx, id, req.Username, req.Email); err != nil {
		return nil, err
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toAPIUser(u)
	return &result, nil
}

func (s *AdminService) ResetPassword(ctx context.Context, id int64, req *api.ResetPasswordRequest) error {
	if err := api.Validate(req); err != nil {
		return err
	}
	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, id, hash); err != nil {
		return err
	}
	s.logger.Info(ctx, "password reset", "user_id", id)
	return nil
}

// ToggleActive flips the active flag. Admins cannot lock themselves out.
func (s *AdminService) ToggleActive(ctx context.Context, actorID, id int64) (bool, error) {
	if actorID == id {
		return false, fmt.Errorf("%w: cannot deactivate your own account", common.ErrValidation)
	}
	return s.users.ToggleActive(ctx, id)
}

// ToggleAdmin flips the admin flag. Admins cannot demote themselves.
func (s *AdminService) ToggleAdmin(ctx context.Context, actorID, id int64) (bool, error) {
	if actorID == id {
		return false, fmt.Errorf("%w: cannot change your own admin status", common.ErrValidation)
	}
	return s.users.ToggleAdmin(ctx, id)
}

func (s *AdminService) DeleteUser(ctx context.Context, actorID, id int64) error {
	if actorID == id {
		return fmt.Errorf("%w: cannot delete your own account", common.ErrValidation)
	}
	return s.users.Delete(ctx, id)
}

// BulkDeleteUsers removes the given accounts together with their content in
// one transaction. The actor's own id is dropped from the set rather than
// failing the whole batch.
func (s *AdminService) BulkDeleteUsers(ctx context.Context, actorID int64, req *api.BulkDeleteRequest) (int64, error) {
	if err := api.Validate(req); err != nil {
		return 0, err
	}
	ids := make([]int64, 0, len(req.IDs))
	for _, id := range req.IDs {
		if id != actorID {
			ids = append(ids, id)
		}
	}

	var deletedUsers, deletedContents int64
	err := dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		if deletedContents, err = s.txRepos.Contents(tx).DeleteByOwners(ctx, ids); err != nil {
			return err
		}
		deletedUsers, err = s.txRepos.Users(tx).DeleteMany(ctx, ids)
		return err
	})
	if err != nil {
		return 0, err
	}
	s.logger.Info(ctx, "bulk deleted users", "users", deletedUsers, "contents", deletedContents, "actor_id", actorID)
	return deletedUsers, nil
}

func (s *AdminService) ListContents(ctx context.Context) ([]api.Content, error) {
	items, err := s.contents.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toAPIContents(items), nil
}

func (s *AdminService) DeleteContent(ctx context.Context, id int64) error {
	return s.contents.Delete(ctx, id)
}

func (s *AdminService) BulkDeleteContents(ctx context.Context, req *api.BulkDeleteRequest) (int64, error) {
	if err := api.Validate(req); err != nil {
		return 0, err
	}
	n, err := s.contents.DeleteMany(ctx, req.IDs)
	if err != nil {
		return 0, err
	}
	s.logger.Info(ctx, "bulk deleted contents", "count", n)
	return n, nil
}

func (s *AdminService) ListTemplates(ctx context.Context) ([]api.Template, error) {
	items, err := s.templates.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toAPITemplates(items), nil
}

func (s *AdminService) DeleteTemplate(ctx context.Context, id int64) error {
	return s.templates.Delete(ctx, id)
}

// SystemHealth pings the database and checks generator configuration.
func (s *AdminService) SystemHealth(ctx context.Context) *api.SystemHealth {
	health := &api.SystemHealth{
		Status:    "healthy",
		Database:  "connected",
		GeminiAPI: "configured",
		Version:   Version,
		Timestamp: time.Now().UTC(),
	}
	if err := s.db.PingContext(ctx); err != nil {
		health.Status = "degraded"
		health.Database = "unreachable"
	}
	if !s.generator.Configured() {
		health.GeminiAPI = "not configured"
	}
	return health
}

// SystemStats collects the per-dimension breakdowns concurrently.
func (s *AdminService) SystemStats(ctx context.Context) (*api.SystemStats, error) {
	var stats api.SystemStats

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Database.Users, err = s.users.Count(ctx)
		return
	})
	g.Go(func() (err error) {
		stats.Database.Contents, err = s.contents.Count(ctx)
		return
	})
	g.Go(func() (err error) {
		stats.Database.Templates, err = s.templates.Count(ctx)
		return
	})
	g.Go(func() (err error) {
		stats.ContentByStatus, err = s.contents.CountBy(ctx, "status")
		return
	})
	g.Go(func() (err error) {
		stats.ContentByLanguage, err = s.contents.CountBy(ctx, "language")
		return
	})
	g.Go(func() (err error) {
		stats.ContentByTone, err = s.contents.CountBy(ctx, "tone")
		return
	})
	g.Go(func() (err error) {
		stats.TemplatesByCategory, err = s.templates.CountByCategory(ctx)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
