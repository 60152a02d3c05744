package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/apetrenko/contentgen/internal/api"
	"github.com/apetrenko/contentgen/internal/client/store"
)

func (a *App) screenTemplates(ctx context.Context) {
	if err := a.templates.Load(ctx); err != nil && !errors.Is(err, store.ErrLoadInFlight) {
		a.fail(ctx, err)
	}

	for {
		snap := a.templates.Snapshot()
		if !snap.HasValue {
			return
		}

		fmt.Fprintf(a.out, "\n%d template(s)\n", len(snap.Value))
		for _, tpl := range snap.Value {
			kind := "own"
			if tpl.IsDefault {
				kind = "default"
			}
			fmt.Fprintf(a.out, "#%d [%s/%s] %s\n", tpl.ID, kind, tpl.Category, tpl.Name)
		}

		a.printErrLine()
		fmt.Fprintln(a.out, "n) new | d) delete | u <id>) use | b) back")

		cmd := a.readLine("templates> ")
		switch {
		case cmd == "b" || cmd == "":
			return
		case cmd == "n":
			a.createTemplate(ctx)
		case cmd == "d":
			a.deleteTemplate(ctx)
		case len(cmd) > 2 && cmd[0] == 'u':
			a.useTemplate(ctx, snap.Value, cmd[2:])
		default:
			a.errLine = "unknown command"
		}
	}
}

func (a *App) createTemplate(ctx context.Context) {
	req := &api.CreateTemplateRequest{
		Name:     a.readLine("name: "),
		Category: a.readLine("category: "),
		Prompt:   a.readLine("prompt: "),
		Language: a.readLine("language: "),
	}

	tpl, err := a.client.CreateTemplate(ctx, req)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintf(a.out, "created template #%d\n", tpl.ID)

	if err := a.templates.InvalidateAndReload(ctx); err != nil {
		a.logger.Debug(ctx, "templates refresh failed", "error", err)
	}
}

func (a *App) deleteTemplate(ctx context.Context) {
	id, ok := a.readID("template id: ")
	if !ok {
		return
	}
	if err := a.client.DeleteTemplate(ctx, id); err != nil {
		a.fail(ctx, err)
		return
	}
	if err := a.templates.InvalidateAndReload(ctx); err != nil {
		a.fail(ctx, err)
	}
}

// useTemplate runs a generation with the template's prompt as the base.
func (a *App) useTemplate(ctx context.Context, templates []api.Template, arg string) {
	id, err := parseID(arg)
	if err != nil {
		a.errLine = "invalid id"
		return
	}

	var picked *api.Template
	for i := range templates {
		if templates[i].ID == id {
			picked = &templates[i]
			break
		}
	}
	if picked == nil {
		a.errLine = "no such template"
		return
	}

	fmt.Fprintf(a.out, "prompt: %s\n", picked.Prompt)
	extra := a.readLine("additions (optional): ")
	prompt := picked.Prompt
	if extra != "" {
		prompt += "\n" + extra
	}

	tone := a.readLine("tone: ")
	draft := a.confirm("save as draft?")

	fmt.Fprintln(a.out, "generating...")
	content, err := a.client.Generate(ctx, &api.GenerateRequest{
		Prompt: prompt, Language: picked.Language, Tone: tone, SaveAsDraft: draft,
	})
	if err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintf(a.out, "\n--- %s [%s] ---\n%s\n", content.Title, content.Status, content.Body)
}
