package store

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/apetrenko/contentgen/internal/api"
	capi "github.com/apetrenko/contentgen/internal/client/api"
)

// AdminOverview is the combined payload of the admin screens. It is replaced
// wholesale on each load; a failure of any endpoint fails the whole cycle.
type AdminOverview struct {
	Dashboard api.DashboardSnapshot
	Users     []api.User
	Contents  []api.Content
	Templates []api.Template
}

// NewAdminOverviewResource fans out to the four admin list endpoints
// concurrently.
func NewAdminOverviewResource(client *capi.Client) *Resource[AdminOverview] {
	return NewResource(func(ctx context.Context) (AdminOverview, error) {
		var overview AdminOverview

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			snap, err := client.Dashboard(ctx)
			if err != nil {
				return err
			}
			overview.Dashboard = *snap
			return nil
		})
		g.Go(func() (err error) {
			overview.Users, err = client.AdminListUsers(ctx)
			return
		})
		g.Go(func() (err error) {
			overview.Contents, err = client.AdminListContents(ctx)
			return
		})
		g.Go(func() (err error) {
			overview.Templates, err = client.AdminListTemplates(ctx)
			return
		})

		if err := g.Wait(); err != nil {
			return AdminOverview{}, err
		}
		return overview, nil
	})
}

// SystemStatus pairs the health probe with the detailed stats.
type SystemStatus struct {
	Health api.SystemHealth
	Stats  api.SystemStats
}

func NewSystemStatusResource(client *capi.Client) *Resource[SystemStatus] {
	return NewResource(func(ctx context.Context) (SystemStatus, error) {
		var status SystemStatus

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			health, err := client.SystemHealth(ctx)
			if err != nil {
				return err
			}
			status.Health = *health
			return nil
		})
		g.Go(func() error {
			stats, err := client.SystemStats(ctx)
			if err != nil {
				return err
			}
			status.Stats = *stats
			return nil
		})

		if err := g.Wait(); err != nil {
			return SystemStatus{}, err
		}
		return status, nil
	})
}
