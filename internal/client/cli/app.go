// Package cli implements the interactive terminal client: a line-based REPL
// over the contentgen API.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/apetrenko/contentgen/internal/api"
	capi "github.com/apetrenko/contentgen/internal/client/api"
	"github.com/apetrenko/contentgen/internal/client/config"
	"github.com/apetrenko/contentgen/internal/client/selection"
	"github.com/apetrenko/contentgen/internal/client/session"
	"github.com/apetrenko/contentgen/internal/client/store"
	"github.com/apetrenko/contentgen/internal/logging"
)

type App struct {
	cfg     *config.Config
	client  *capi.Client
	session *session.Store
	logger  logging.Logger

	in  *bufio.Scanner
	out io.Writer

	// user is nil while unauthenticated.
	user *api.User

	// errLine is the single dismissible error slot; each new failure
	// replaces the previous message.
	errLine string

	history    *store.Resource[[]api.Content]
	templates  *store.Resource[[]api.Template]
	contentSel *selection.Set
	criteria   selection.Criteria
}

func NewApp(cfg *config.Config, client *capi.Client, sess *session.Store,
	in io.Reader, out io.Writer, logger logging.Logger) *App {
	a := &App{
		cfg:        cfg,
		client:     client,
		session:    sess,
		logger:     logger,
		in:         bufio.NewScanner(in),
		out:        out,
		contentSel: selection.NewSet(),
	}
	a.history = store.NewResource(client.History)
	a.templates = store.NewResource(client.ListTemplates)
	return a
}

// Run drives the REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.restoreSession(ctx)

	for ctx.Err() == nil {
		var done bool
		if a.user == nil {
			done = a.authMenu(ctx)
		} else {
			done = a.mainMenu(ctx)
		}
		if done {
			return nil
		}
	}
	return ctx.Err()
}

// restoreSession validates a token left over from a previous run.
func (a *App) restoreSession(ctx context.Context) {
	if _, ok := a.session.Token(ctx); !ok {
		return
	}
	user, err := a.client.Me(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	a.user = user
}

// fail records err as the screen message. A 401 invalidates the session and
// drops back to the unauthenticated state.
func (a *App) fail(ctx context.Context, err error) {
	var apiErr *capi.APIError
	switch {
	case errors.As(err, &apiErr):
		a.errLine = apiErr.Message
		if apiErr.Status == http.StatusUnauthorized {
			a.logout(ctx)
			a.errLine = "session expired, please log in again"
		}
	case errors.Is(err, capi.ErrTimeout):
		a.errLine = "the server took too long to respond"
	case errors.Is(err, capi.ErrNetwork):
		a.errLine = "cannot reach the server"
	default:
		a.errLine = err.Error()
	}
}

// logout resets all per-session state.
func (a *App) logout(ctx context.Context) {
	if err := a.client.Logout(ctx); err != nil {
		a.logger.Warn(ctx, "clearing session", "error", err)
	}
	a.user = nil
	a.contentSel.Clear()
	a.criteria = selection.Criteria{}
	a.history = store.NewResource(a.client.History)
	a.templates = store.NewResource(a.client.ListTemplates)
}

func (a *App) printErrLine() {
	if a.errLine != "" {
		fmt.Fprintf(a.out, "\n! %s\n", a.errLine)
		a.errLine = ""
	}
}

func (a *App) authMenu(ctx context.Context) (exit bool) {
	a.printErrLine()
	fmt.Fprintln(a.out, "\n=== contentgen ===")
	fmt.Fprintln(a.out, "1) log in")
	fmt.Fprintln(a.out, "2) register")
	fmt.Fprintln(a.out, "0) exit")

	switch a.readLine("> ") {
	case "1":
		a.screenLogin(ctx)
	case "2":
		a.screenRegister(ctx)
	case "0", "":
		return true
	default:
		a.errLine = "unknown option"
	}
	return false
}

func (a *App) mainMenu(ctx context.Context) (exit bool) {
	a.printErrLine()
	fmt.Fprintf(a.out, "\n=== contentgen / %s ===\n", a.user.Username)
	fmt.Fprintln(a.out, "1) generate content")
	fmt.Fprintln(a.out, "2) history")
	fmt.Fprintln(a.out, "3) templates")
	fmt.Fprintln(a.out, "4) preferences")
	if a.user.IsAdmin {
		fmt.Fprintln(a.out, "5) admin")
	}
	fmt.Fprintln(a.out, "9) log out")
	fmt.Fprintln(a.out, "0) exit")

	switch a.readLine("> ") {
	case "1":
		a.screenGenerate(ctx)
	case "2":
		a.screenHistory(ctx)
	case "3":
		a.screenTemplates(ctx)
	case "4":
		a.screenPreferences(ctx)
	case "5":
		if a.user.IsAdmin {
			a.adminMenu(ctx)
		} else {
			a.errLine = "unknown option"
		}
	case "9":
		a.logout(ctx)
	case "0", "":
		return true
	default:
		a.errLine = "unknown option"
	}
	return false
}

func (a *App) screenPreferences(ctx context.Context) {
	dark := a.session.DarkMode(ctx)
	fmt.Fprintf(a.out, "\ndark mode: %v\n", dark)
	if a.confirm("toggle dark mode?") {
		if err := a.session.SetDarkMode(ctx, !dark); err != nil {
			a.fail(ctx, err)
			return
		}
		fmt.Fprintf(a.out, "dark mode: %v\n", !dark)
	}
}
