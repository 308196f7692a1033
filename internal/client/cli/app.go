// Package cli implements the interactive terminal UI of the itemvault
// client: a REPL over the session and item services.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"itemvault/internal/client/api"
	"itemvault/internal/client/config"
	"itemvault/internal/client/repositories/metadata"
	"itemvault/internal/client/services"
	"itemvault/internal/client/session"
	"itemvault/internal/client/storage"
	"itemvault/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config  *config.Config
	client  api.Client
	session *session.Session
	items   services.ItemService
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
	mode    Mode
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store := storage.NewMetadataTokenStore(metadata.NewSQLiteRepository(db))

	apiClient, err := api.NewHTTPClient(ctx, cfg.APIBaseURL, cfg.RequestTimeout, store, log)
	if err != nil {
		return nil, err
	}

	return &App{
		config:  cfg,
		client:  apiClient,
		session: session.New(apiClient, log),
		items:   services.NewItemService(apiClient),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) setMode(mode Mode) {
	if a.mode != mode {
		a.mode = mode
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

// Run bootstraps the session from persisted tokens, starts the connectivity
// watcher and hands control to the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	fmt.Fprintln(a.out, "Welcome to itemvault (type 'help' for commands)")

	a.session.Bootstrap(ctx)
	if u := a.session.User(); u != nil {
		fmt.Fprintf(a.out, "Logged in as %s\n", u.Email)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// StartOnlineStatusWatcher probes the server on a ticker and flips the
// online/offline mode shown in the prompt.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.client.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

func (a *App) getStatus() string {
	s := ""
	if u := a.session.User(); u != nil {
		s = u.Email + " "
	}
	if a.mode != "" {
		s += string(a.mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
