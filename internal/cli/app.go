// Package cli is the interactive terminal client: a REPL over the session
// store, the registration wizards, and the public landing data.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/hbridge/careconnect-cli/internal/api"
	"github.com/hbridge/careconnect-cli/internal/config"
	"github.com/hbridge/careconnect-cli/internal/logging"
	"github.com/hbridge/careconnect-cli/internal/routing"
	"github.com/hbridge/careconnect-cli/internal/session"
	"github.com/hbridge/careconnect-cli/internal/store"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	gateway  api.Gateway
	sessions *session.Store
	pending  *store.PendingProfileStore

	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the client together: local database, token store, HTTP
// gateway, and session store, all constructor-injected.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening local database: %w", err)
	}

	tokens := store.NewTokenStore(db, log)
	gateway := api.NewHTTPGateway(cfg.APIBaseURL, cfg.RequestTimeout, tokens, log)
	sessions := session.New(gateway, tokens, log)
	pending := store.NewPendingProfileStore(db, log)

	return &App{
		config:   cfg,
		log:      log,
		db:       db,
		gateway:  gateway,
		sessions: sessions,
		pending:  pending,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run restores the persisted session and drives the REPL until exit.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.sessions.Restore(ctx)
	if user := a.sessions.CurrentUser(); user != nil {
		fmt.Fprintf(a.out, "Welcome back, %s\n", user.Email)
	}
	fmt.Fprintf(a.out, "Next: %s\n", routing.Decide(a.sessions.CurrentUser()))

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner, a.out)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.sessions.IsAuthenticated()
}

// status renders the prompt suffix: the logged-in email, if any.
func (a *App) status() string {
	if user := a.sessions.CurrentUser(); user != nil {
		return user.Email
	}
	return "guest"
}

// printRoute reports where the current session state leads next.
func (a *App) printRoute() {
	fmt.Fprintf(a.out, "Next: %s\n", routing.Decide(a.sessions.CurrentUser()))
}
