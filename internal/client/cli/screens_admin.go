package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/apetrenko/contentgen/internal/api"
	"github.com/apetrenko/contentgen/internal/client/selection"
	"github.com/apetrenko/contentgen/internal/client/store"
)

func (a *App) adminMenu(ctx context.Context) {
	// The overview poller lives exactly as long as the admin screens.
	screenCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	overview := store.NewAdminOverviewResource(a.client)
	if err := overview.Load(screenCtx); err != nil {
		a.fail(ctx, err)
		return
	}
	store.StartPoller(screenCtx, a.cfg.AdminPollInterval.Std(), overview.Load, a.logger)

	userSel := selection.NewSet()
	contentSel := selection.NewSet()

	for {
		snap := overview.Snapshot()
		if !snap.HasValue {
			return
		}

		d := snap.Value.Dashboard
		fmt.Fprintf(a.out, "\n=== admin === users:%d contents:%d templates:%d\n",
			d.Users, d.Contents, d.Templates)
		if snap.State == store.Failed {
			fmt.Fprintln(a.out, "(showing stale data, last refresh failed)")
		}

		a.printErrLine()
		fmt.Fprintln(a.out, "1) users | 2) contents | 3) templates | 4) system | r) refresh | b) back")

		switch a.readLine("admin> ") {
		case "1":
			a.adminUsers(screenCtx, overview, userSel)
		case "2":
			a.adminContents(screenCtx, overview, contentSel)
		case "3":
			a.adminTemplates(screenCtx, overview)
		case "4":
			a.adminSystem(ctx)
		case "r":
			if err := overview.InvalidateAndReload(screenCtx); err != nil {
				a.fail(ctx, err)
			}
		case "b", "":
			return
		default:
			a.errLine = "unknown command"
		}
	}
}

func (a *App) adminUsers(ctx context.Context, overview *store.Resource[store.AdminOverview], sel *selection.Set) {
	searchTerm := ""

	for {
		snap := overview.Snapshot()
		visible := selection.FilterUsers(snap.Value.Users, searchTerm)

		fmt.Fprintf(a.out, "\n%d user(s), %d selected\n", len(visible), sel.Len())
		for _, u := range visible {
			marker := " "
			if sel.Contains(u.ID) {
				marker = "*"
			}
			flags := ""
			if u.IsAdmin {
				flags += " admin"
			}
			if !u.IsActive {
				flags += " inactive"
			}
			stats := ""
			if u.Stats != nil {
				stats = fmt.Sprintf(" (%d items)", u.Stats.TotalContent)
			}
			fmt.Fprintf(a.out, "%s #%d %s <%s>%s%s\n", marker, u.ID, u.Username, u.Email, flags, stats)
		}

		a.printErrLine()
		fmt.Fprintln(a.out, "s <id>) select | a) select all | /) search | e) edit | p) reset password | t) toggle active | m) toggle admin | x) delete | d) delete selected | b) back")

		cmd := a.readLine("users> ")
		switch {
		case cmd == "b" || cmd == "":
			return
		case cmd == "a":
			sel.ToggleAll(userIDs(visible))
		case cmd == "/":
			searchTerm = a.readLine("search: ")
			sel.Clear()
		case cmd == "e":
			a.adminEditUser(ctx, overview)
		case cmd == "p":
			a.adminResetPassword(ctx)
		case cmd == "t":
			a.adminToggle(ctx, overview, a.client.AdminToggleActive)
		case cmd == "m":
			a.adminToggle(ctx, overview, a.client.AdminToggleAdmin)
		case cmd == "x":
			a.adminDeleteUser(ctx, overview)
		case cmd == "d":
			a.adminBulkDeleteUsers(ctx, overview, sel)
		case len(cmd) > 2 && cmd[0] == 's':
			if id, err := parseID(cmd[2:]); err == nil {
				sel.Toggle(id)
			} else {
				a.errLine = "invalid id"
			}
		default:
			a.errLine = "unknown command"
		}
	}
}

func userIDs(items []api.User) []int64 {
	ids := make([]int64, 0, len(items))
	for _, u := range items {
		ids = append(ids, u.ID)
	}
	return ids
}

func (a *App) adminEditUser(ctx context.Context, overview *store.Resource[store.AdminOverview]) {
	id, ok := a.readID("user id: ")
	if !ok {
		return
	}

	req := &api.UpdateUserRequest{
		Username: a.readLine("new username: "),
		Email:    a.readLine("new email: "),
	}
	if _, err := a.client.AdminUpdateUser(ctx, id, req); err != nil {
		a.fail(ctx, err)
		return
	}
	a.reloadOverview(ctx, overview)
}

func (a *App) adminResetPassword(ctx context.Context) {
	id, ok := a.readID("user id: ")
	if !ok {
		return
	}
	password, err := a.readPassword("new password: ")
	if err != nil {
		a.fail(ctx, err)
		return
	}

	if err := a.client.AdminResetPassword(ctx, id, &api.ResetPasswordRequest{NewPassword: password}); err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintln(a.out, "password reset")
}

func (a *App) adminToggle(ctx context.Context, overview *store.Resource[store.AdminOverview],
	toggle func(context.Context, int64) error) {
	id, ok := a.readID("user id: ")
	if !ok {
		return
	}
	if err := toggle(ctx, id); err != nil {
		a.fail(ctx, err)
		return
	}
	a.reloadOverview(ctx, overview)
}

func (a *App) adminDeleteUser(ctx context.Context, overview *store.Resource[store.AdminOverview]) {
	id, ok := a.readID("user id: ")
	if !ok {
		return
	}
	if !a.confirm(fmt.Sprintf("delete user #%d and all their content?", id)) {
		return
	}
	if err := a.client.AdminDeleteUser(ctx, id); err != nil {
		a.fail(ctx, err)
		return
	}
	a.reloadOverview(ctx, overview)
}

// adminBulkDeleteUsers sends the whole selection in one request. On failure
// the selection is kept so the operation can be retried.
func (a *App) adminBulkDeleteUsers(ctx context.Context, overview *store.Resource[store.AdminOverview], sel *selection.Set) {
	ids := sel.IDs()
	if len(ids) == 0 {
		a.errLine = "nothing selected"
		return
	}
	if !a.confirm(fmt.Sprintf("delete %d user(s) and all their content?", len(ids))) {
		return
	}

	n, err := a.client.AdminBulkDeleteUsers(ctx, ids)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	sel.Clear()
	fmt.Fprintf(a.out, "deleted %d user(s)\n", n)
	a.reloadOverview(ctx, overview)
}

func (a *App) adminContents(ctx context.Context, overview *store.Resource[store.AdminOverview], sel *selection.Set) {
	var criteria selection.Criteria

	for {
		snap := overview.Snapshot()
		visible := criteria.Apply(snap.Value.Contents)

		fmt.Fprintf(a.out, "\n%d item(s), %d selected\n", len(visible), sel.Len())
		for _, item := range visible {
			marker := " "
			if sel.Contains(item.ID) {
				marker = "*"
			}
			fmt.Fprintf(a.out, "%s #%d [%s] owner:%d %s\n", marker, item.ID, item.Status, item.OwnerID, item.Title)
		}

		a.printErrLine()
		fmt.Fprintln(a.out, "s <id>) select | a) select all | f) filter | x) delete | d) delete selected | b) back")

		cmd := a.readLine("contents> ")
		switch {
		case cmd == "b" || cmd == "":
			return
		case cmd == "a":
			sel.ToggleAll(contentIDs(visible))
		case cmd == "f":
			criteria = a.promptAdminContentFilters()
			sel.Clear()
		case cmd == "x":
			a.adminDeleteContent(ctx, overview)
		case cmd == "d":
			a.adminBulkDeleteContents(ctx, overview, sel)
		case len(cmd) > 2 && cmd[0] == 's':
			if id, err := parseID(cmd[2:]); err == nil {
				sel.Toggle(id)
			} else {
				a.errLine = "invalid id"
			}
		default:
			a.errLine = "unknown command"
		}
	}
}

func (a *App) promptAdminContentFilters() selection.Criteria {
	criteria := selection.Criteria{
		Status:   a.readLine("status filter (draft/published, empty for any): "),
		Language: a.readLine("language filter (empty for any): "),
	}
	if owner := a.readLine("owner id (empty for any): "); owner != "" {
		id, err := parseID(owner)
		if err != nil {
			a.errLine = "invalid id"
		} else {
			criteria.OwnerID = id
		}
	}
	criteria.SearchTerm = a.readLine("search term (empty for any): ")
	return criteria
}

func (a *App) adminDeleteContent(ctx context.Context, overview *store.Resource[store.AdminOverview]) {
	id, ok := a.readID("content id: ")
	if !ok {
		return
	}
	if err := a.client.AdminDeleteContent(ctx, id); err != nil {
		a.fail(ctx, err)
		return
	}
	a.reloadOverview(ctx, overview)
}

func (a *App) adminBulkDeleteContents(ctx context.Context, overview *store.Resource[store.AdminOverview], sel *selection.Set) {
	ids := sel.IDs()
	if len(ids) == 0 {
		a.errLine = "nothing selected"
		return
	}
	if !a.confirm(fmt.Sprintf("delete %d item(s)?", len(ids))) {
		return
	}

	n, err := a.client.AdminBulkDeleteContents(ctx, ids)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	sel.Clear()
	fmt.Fprintf(a.out, "deleted %d item(s)\n", n)
	a.reloadOverview(ctx, overview)
}

func (a *App) adminTemplates(ctx context.Context, overview *store.Resource[store.AdminOverview]) {
	for {
		snap := overview.Snapshot()

		fmt.Fprintf(a.out, "\n%d template(s)\n", len(snap.Value.Templates))
		for _, tpl := range snap.Value.Templates {
			kind := "user"
			if tpl.IsDefault {
				kind = "default"
			}
			fmt.Fprintf(a.out, "#%d [%s/%s] %s\n", tpl.ID, kind, tpl.Category, tpl.Name)
		}

		a.printErrLine()
		fmt.Fprintln(a.out, "x) delete | b) back")

		switch a.readLine("templates> ") {
		case "b", "":
			return
		case "x":
			id, ok := a.readID("template id: ")
			if !ok {
				continue
			}
			if err := a.client.AdminDeleteTemplate(ctx, id); err != nil {
				a.fail(ctx, err)
				continue
			}
			a.reloadOverview(ctx, overview)
		default:
			a.errLine = "unknown command"
		}
	}
}

func (a *App) adminSystem(ctx context.Context) {
	screenCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	status := store.NewSystemStatusResource(a.client)
	if err := status.Load(screenCtx); err != nil {
		a.fail(ctx, err)
		return
	}
	store.StartPoller(screenCtx, a.cfg.HealthPollInterval.Std(), status.Load, a.logger)

	for {
		snap := status.Snapshot()
		h := snap.Value.Health
		fmt.Fprintf(a.out, "\nstatus: %s | db: %s | gemini: %s | version: %s\n",
			h.Status, h.Database, h.GeminiAPI, h.Version)
		fmt.Fprintf(a.out, "rows: users=%d contents=%d templates=%d\n",
			snap.Value.Stats.Database.Users, snap.Value.Stats.Database.Contents, snap.Value.Stats.Database.Templates)
		fmt.Fprintf(a.out, "by status: %v | by language: %v\n",
			snap.Value.Stats.ContentByStatus, snap.Value.Stats.ContentByLanguage)
		if snap.State == store.Failed {
			fmt.Fprintln(a.out, "(showing stale data, last refresh failed)")
		}

		a.printErrLine()
		switch a.readLine("system (r refresh, b back)> ") {
		case "b", "":
			return
		case "r":
			if err := status.InvalidateAndReload(screenCtx); err != nil && !errors.Is(err, store.ErrLoadInFlight) {
				a.fail(ctx, err)
			}
		default:
			a.errLine = "unknown command"
		}
	}
}

func (a *App) reloadOverview(ctx context.Context, overview *store.Resource[store.AdminOverview]) {
	if err := overview.InvalidateAndReload(ctx); err != nil {
		a.fail(ctx, err)
	}
}
