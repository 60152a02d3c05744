package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/apetrenko/contentgen/internal/api"
	"github.com/apetrenko/contentgen/internal/client/selection"
	"github.com/apetrenko/contentgen/internal/client/store"
	"github.com/apetrenko/contentgen/internal/common"
)

func (a *App) screenGenerate(ctx context.Context) {
	languages, err := a.client.Languages(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	tones, err := a.client.Tones(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}

	prompt := a.readLine("prompt: ")
	if prompt == "" {
		a.errLine = "prompt must not be empty"
		return
	}

	language := a.pickOption("language", languages)
	tone := a.pickOption("tone", tones)
	draft := a.confirm("save as draft?")

	fmt.Fprintln(a.out, "generating...")
	content, err := a.client.Generate(ctx, &api.GenerateRequest{
		Prompt: prompt, Language: language, Tone: tone, SaveAsDraft: draft,
	})
	if err != nil {
		a.fail(ctx, err)
		return
	}

	fmt.Fprintf(a.out, "\n--- %s [%s] ---\n%s\n", content.Title, content.Status, content.Body)
	if err := a.history.InvalidateAndReload(ctx); err != nil {
		a.logger.Debug(ctx, "history refresh failed", "error", err)
	}
}

func (a *App) pickOption(name string, options []api.Option) string {
	for i, opt := range options {
		fmt.Fprintf(a.out, "%d) %s\n", i+1, opt.Label)
	}
	choice := a.readLine(name + ": ")
	if i, err := strconv.Atoi(choice); err == nil && i >= 1 && i <= len(options) {
		return options[i-1].Code
	}
	// Free-form entry falls through as a code.
	return choice
}

func (a *App) screenHistory(ctx context.Context) {
	if err := a.history.Load(ctx); err != nil && !errors.Is(err, store.ErrLoadInFlight) {
		a.fail(ctx, err)
	}

	for {
		snap := a.history.Snapshot()
		if !snap.HasValue {
			return
		}
		visible := a.criteria.Apply(snap.Value)
		a.renderContentList(visible)

		a.printErrLine()
		fmt.Fprintln(a.out, "v <id>) view | s <id>) select | a) select all | f) filter | d) delete selected | e <id>) export | b) back")
		cmd := a.readLine("history> ")

		switch {
		case cmd == "b" || cmd == "":
			return
		case cmd == "a":
			a.contentSel.ToggleAll(contentIDs(visible))
		case cmd == "f":
			a.promptFilters()
		case cmd == "d":
			a.deleteSelectedContents(ctx)
		case len(cmd) > 2 && cmd[0] == 'v':
			a.viewContent(ctx, cmd[2:])
		case len(cmd) > 2 && cmd[0] == 's':
			a.toggleContent(cmd[2:])
		case len(cmd) > 2 && cmd[0] == 'e':
			a.exportContent(ctx, cmd[2:])
		default:
			a.errLine = "unknown command"
		}
	}
}

func contentIDs(items []api.Content) []int64 {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func (a *App) renderContentList(items []api.Content) {
	fmt.Fprintf(a.out, "\n%d item(s), %d selected\n", len(items), a.contentSel.Len())
	for _, item := range items {
		marker := " "
		if a.contentSel.Contains(item.ID) {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s #%d [%s/%s/%s] %s\n",
			marker, item.ID, item.Status, item.Language, item.Tone, item.Title)
	}
}

func (a *App) promptFilters() {
	a.criteria = selection.Criteria{
		Status:     a.readLine("status filter (draft/published, empty for any): "),
		Language:   a.readLine("language filter (empty for any): "),
		SearchTerm: a.readLine("search term (empty for any): "),
	}
	// The visible set changed; stale selections would be invisible.
	a.contentSel.Clear()
}

func (a *App) toggleContent(arg string) {
	id, err := parseID(arg)
	if err != nil {
		a.errLine = "invalid id"
		return
	}
	a.contentSel.Toggle(id)
}

func (a *App) viewContent(ctx context.Context, arg string) {
	id, err := parseID(arg)
	if err != nil {
		a.errLine = "invalid id"
		return
	}

	content, err := a.client.GetContent(ctx, id)
	if err != nil {
		a.fail(ctx, err)
		return
	}

	fmt.Fprintf(a.out, "\n--- #%d %s [%s] ---\n%s\n", content.ID, content.Title, content.Status, content.Body)
	if a.confirm("edit?") {
		a.editContent(ctx, content)
	}
}

func (a *App) editContent(ctx context.Context, content *api.Content) {
	title := a.readLine(fmt.Sprintf("title [%s]: ", content.Title))
	if title == "" {
		title = content.Title
	}
	status := a.readLine(fmt.Sprintf("status [%s]: ", content.Status))
	if status == "" {
		status = content.Status
	}

	updated, err := a.client.UpdateContent(ctx, content.ID, &api.UpdateContentRequest{
		Title: title, Body: content.Body, Status: status,
	})
	if err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintf(a.out, "saved #%d\n", updated.ID)

	if err := a.history.InvalidateAndReload(ctx); err != nil {
		a.logger.Debug(ctx, "history refresh failed", "error", err)
	}
}

// deleteSelectedContents removes every selected item. The selection is
// cleared only after all deletes succeeded and the list was reloaded.
func (a *App) deleteSelectedContents(ctx context.Context) {
	ids := a.contentSel.IDs()
	if len(ids) == 0 {
		a.errLine = "nothing selected"
		return
	}
	if !a.confirm(fmt.Sprintf("delete %d item(s)?", len(ids))) {
		return
	}

	for _, id := range ids {
		if err := a.client.DeleteContent(ctx, id); err != nil {
			a.fail(ctx, err)
			return
		}
	}

	if err := a.history.InvalidateAndReload(ctx); err != nil {
		a.fail(ctx, err)
		return
	}
	a.contentSel.Clear()
	fmt.Fprintf(a.out, "deleted %d item(s)\n", len(ids))
}

func (a *App) exportContent(ctx context.Context, arg string) {
	id, err := parseID(arg)
	if err != nil {
		a.errLine = "invalid id"
		return
	}

	format := a.readLine("format (markdown/txt): ")
	data, filename, err := a.client.Export(ctx, id, format)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	if filename == "" {
		filename = fmt.Sprintf("content_%d.%s", id, format)
	}

	if err := writeFileFn(filename, data, 0o644); err != nil {
		a.fail(ctx, fmt.Errorf("%w: saving %s", common.ErrInternal, filename))
		return
	}
	fmt.Fprintf(a.out, "saved %s (%d bytes)\n", filename, len(data))
}

// Seam for tests.
var writeFileFn = os.WriteFile
