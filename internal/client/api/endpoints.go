package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/apetrenko/contentgen/internal/api"
)

// Login authenticates and stores the returned token in the session.
func (c *Client) Login(ctx context.Context, req *api.LoginRequest) (*api.TokenResponse, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var resp api.TokenResponse
	if err := c.request(ctx, http.MethodPost, "/auth/login", timeoutMetadata, req, &resp); err != nil {
		return nil, err
	}
	if err := c.session.SetToken(ctx, resp.AccessToken); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and stores the returned token in the session.
func (c *Client) Register(ctx context.Context, req *api.RegisterRequest) (*api.TokenResponse, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var resp api.TokenResponse
	if err := c.request(ctx, http.MethodPost, "/auth/register", timeoutMetadata, req, &resp); err != nil {
		return nil, err
	}
	if err := c.session.SetToken(ctx, resp.AccessToken); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout discards the stored token. Purely local; the server keeps no
// session state.
func (c *Client) Logout(ctx context.Context) error {
	return c.session.Clear(ctx)
}

func (c *Client) Me(ctx context.Context) (*api.User, error) {
	var u api.User
	if err := c.request(ctx, http.MethodGet, "/auth/me", timeoutMetadata, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Languages(ctx context.Context) ([]api.Option, error) {
	var opts []api.Option
	err := c.request(ctx, http.MethodGet, "/languages", timeoutMetadata, nil, &opts)
	return opts, err
}

func (c *Client) Tones(ctx context.Context) ([]api.Option, error) {
	var opts []api.Option
	err := c.request(ctx, http.MethodGet, "/tones", timeoutMetadata, nil, &opts)
	return opts, err
}

func (c *Client) Generate(ctx context.Context, req *api.GenerateRequest) (*api.Content, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var content api.Content
	if err := c.request(ctx, http.MethodPost, "/generate", timeoutGenerate, req, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

func (c *Client) History(ctx context.Context) ([]api.Content, error) {
	var items []api.Content
	err := c.request(ctx, http.MethodGet, "/history", timeoutList, nil, &items)
	return items, err
}

func (c *Client) GetContent(ctx context.Context, id int64) (*api.Content, error) {
	var content api.Content
	if err := c.request(ctx, http.MethodGet, fmt.Sprintf("/content/%d", id), timeoutMetadata, nil, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

func (c *Client) UpdateContent(ctx context.Context, id int64, req *api.UpdateContentRequest) (*api.Content, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var content api.Content
	if err := c.request(ctx, http.MethodPut, fmt.Sprintf("/content/%d", id), timeoutMetadata, req, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

func (c *Client) DeleteContent(ctx context.Context, id int64) error {
	return c.request(ctx, http.MethodDelete, fmt.Sprintf("/content/%d", id), timeoutMetadata, nil, nil)
}

// Export downloads one content item in the given format.
func (c *Client) Export(ctx context.Context, id int64, format string) ([]byte, string, error) {
	return c.download(ctx, fmt.Sprintf("/export/%d/%s", id, format), timeoutList)
}

func (c *Client) ListTemplates(ctx context.Context) ([]api.Template, error) {
	var items []api.Template
	err := c.request(ctx, http.MethodGet, "/templates", timeoutList, nil, &items)
	return items, err
}

func (c *Client) CreateTemplate(ctx context.Context, req *api.CreateTemplateRequest) (*api.Template, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var t api.Template
	if err := c.request(ctx, http.MethodPost, "/templates", timeoutMetadata, req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) DeleteTemplate(ctx context.Context, id int64) error {
	return c.request(ctx, http.MethodDelete, fmt.Sprintf("/templates/%d", id), timeoutMetadata, nil, nil)
}

func (c *Client) Dashboard(ctx context.Context) (*api.DashboardSnapshot, error) {
	var snap api.DashboardSnapshot
	if err := c.request(ctx, http.MethodGet, "/admin/dashboard", timeoutList, nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (c *Client) AdminListUsers(ctx context.Context) ([]api.User, error) {
	var items []api.User
	err := c.request(ctx, http.MethodGet, "/admin/users", timeoutList, nil, &items)
	return items, err
}

func (c *Client) AdminUpdateUser(ctx context.Context, id int64, req *api.UpdateUserRequest) (*api.User, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var u api.User
	if err := c.request(ctx, http.MethodPut, fmt.Sprintf("/admin/users/%d", id), timeoutMetadata, req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) AdminDeleteUser(ctx context.Context, id int64) error {
	return c.request(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%d", id), timeoutMetadata, nil, nil)
}

func (c *Client) AdminToggleActive(ctx context.Context, id int64) error {
	return c.request(ctx, http.MethodPut, fmt.Sprintf("/admin/users/%d/toggle-active", id), timeoutMetadata, nil, nil)
}

func (c *Client) AdminToggleAdmin(ctx context.Context, id int64) error {
	return c.request(ctx, http.MethodPut, fmt.Sprintf("/admin/users/%d/toggle-admin", id), timeoutMetadata, nil, nil)
}

func (c *Client) AdminResetPassword(ctx context.Context, id int64, req *api.ResetPasswordRequest) error {
	if err := api.Validate(req); err != nil {
		return err
	}
	return c.request(ctx, http.MethodPost, fmt.Sprintf("/admin/users/%d/reset-password", id), timeoutMetadata, req, nil)
}

// AdminBulkDeleteUsers sends the whole selection in one request.
func (c *Client) AdminBulkDeleteUsers(ctx context.Context, ids []int64) (int64, error) {
	req := &api.BulkDeleteRequest{IDs: ids}
	if err := api.Validate(req); err != nil {
		return 0, err
	}
	var resp api.BulkDeleteResponse
	if err := c.request(ctx, http.MethodPost, "/admin/users/bulk-delete", timeoutList, req, &resp); err != nil {
		return 0, err
	}
	return resp.DeletedCount, nil
}

func (c *Client) AdminListContents(ctx context.Context) ([]api.Content, error) {
	var items []api.Content
	err := c.request(ctx, http.MethodGet, "/admin/contents", timeoutList, nil, &items)
	return items, err
}

func (c *Client) AdminDeleteContent(ctx context.Context, id int64) error {
	return c.request(ctx, http.MethodDelete, fmt.Sprintf("/admin/contents/%d", id), timeoutMetadata, nil, nil)
}

func (c *Client) AdminBulkDeleteContents(ctx context.Context, ids []int64) (int64, error) {
	req := &api.BulkDeleteRequest{IDs: ids}
	if err := api.Validate(req); err != nil {
		return 0, err
	}
	var resp api.BulkDeleteResponse
	if err := c.request(ctx, http.MethodPost, "/admin/contents/bulk-delete", timeoutList, req, &resp); err != nil {
		return 0, err
	}
	return resp.DeletedCount, nil
}

func (c *Client) AdminListTemplates(ctx context.Context) ([]api.Template, error) {
	var items []api.Template
	err := c.request(ctx, http.MethodGet, "/admin/templates", timeoutList, nil, &items)
	return items, err
}

func (c *Client) AdminDeleteTemplate(ctx context.Context, id int64) error {
	return c.request(ctx, http.MethodDelete, fmt.Sprintf("/admin/templates/%d", id), timeoutMetadata, nil, nil)
}

func (c *Client) SystemHealth(ctx context.Context) (*api.SystemHealth, error) {
	var health api.SystemHealth
	if err := c.request(ctx, http.MethodGet, "/admin/system/health", timeoutMetadata, nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

func (c *Client) SystemStats(ctx context.Context) (*api.SystemStats, error) {
	var stats api.SystemStats
	if err := c.request(ctx, http.MethodGet, "/admin/system/stats", timeoutMetadata, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
