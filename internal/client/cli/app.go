package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/annakovaleva/blogview/internal/client/api"
	"github.com/annakovaleva/blogview/internal/client/config"
	"github.com/annakovaleva/blogview/internal/client/guard"
	"github.com/annakovaleva/blogview/internal/client/services"
	"github.com/annakovaleva/blogview/internal/client/storage"
	"github.com/annakovaleva/blogview/internal/client/store"
	"github.com/annakovaleva/blogview/internal/common"
	"github.com/annakovaleva/blogview/internal/logging"

	_ "modernc.org/sqlite"
)

// App holds the wired client: stores, services, the route guard and the
// interactive reader. It satisfies execIface for the REPL.
type App struct {
	config *config.Config
	log    logging.Logger

	db       *sql.DB
	sessions *store.SessionStore
	posts    *store.PostStore
	themes   *store.ThemeStore

	authService *services.AuthService
	postService *services.PostService
	guard       *guard.Guard

	reader *bufio.Reader
}

// NewApp wires the whole client: local database, persistence listeners,
// the session mirror, store rehydration, services and the guard.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.StorageDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	repo := storage.NewSQLiteRepository(db)
	sessionRec := storage.NewSessionRecord(repo, log)
	themeRec := storage.NewThemeRecord(repo, log)
	mirror := storage.NewFileMirror(c.MirrorPath)

	sessions := store.NewSessionStore()
	sessions.Subscribe(sessionRec.Listener())
	sessions.AttachMirror(mirror, common.SessionMirrorTTL)

	themes := store.NewThemeStore()
	themes.Subscribe(themeRec.Listener())
	if theme, err := themeRec.Load(ctx); err == nil && theme != "" {
		themes.Restore(theme)
	}

	if err := sessions.Rehydrate(ctx, sessionRec); err != nil {
		log.Warn(ctx, "session rehydration failed", "err", err)
	}

	posts := store.NewPostStore()
	apiClient := api.New(c.APIBaseURL, c.RequestTimeout)

	app := &App{
		config:   c,
		log:      log,
		db:       db,
		sessions: sessions,
		posts:    posts,
		themes:   themes,
		reader:   bufio.NewReader(os.Stdin),
	}
	app.authService = services.NewAuthService(sessions, c.AuthLatency, log)
	app.postService = services.NewPostService(apiClient, posts, sessions, log)
	app.guard = guard.New(sessions, func() {
		log.Info(context.Background(), "redirecting to login")
	})
	return app, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	printlnFn("Welcome to blogview (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) getStatus() string {
	s := ""
	if u := a.sessions.User(); u != nil {
		s = u.Username + " "
	}
	s = s + string(a.themes.Theme())
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) isLoggedIn() bool {
	return a.authService.IsLoggedIn()
}

// requireSession resolves the guard before a mutating command runs. The
// guard waits for rehydration, so a session restored from disk is never
// mistaken for an unauthenticated one.
func (a *App) requireSession(ctx context.Context) error {
	d, err := a.guard.Resolve(ctx)
	if err != nil {
		return err
	}
	if d != guard.Granted {
		printlnFn("Please log in to manage posts.")
		return common.ErrorNoSession
	}
	return nil
}
