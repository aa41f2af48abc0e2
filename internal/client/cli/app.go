package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/blognest/blognest-cli/internal/client/api"
	"github.com/blognest/blognest-cli/internal/client/authflow"
	"github.com/blognest/blognest-cli/internal/client/config"
	"github.com/blognest/blognest-cli/internal/client/services"
	"github.com/blognest/blognest-cli/internal/client/session"
	"github.com/blognest/blognest-cli/internal/client/storage"
	"github.com/blognest/blognest-cli/internal/logging"
)

// App holds the wired client: session store, API gateway, services,
// and the authentication flow. All command handlers run on the single
// REPL goroutine.
type App struct {
	config   *config.Config
	log      logging.Logger
	sessions *session.Store
	guard    *session.Guard
	flow     *authflow.Flow
	blogs    *services.BlogService
	posts    *services.PostService
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	sessions := session.NewStore(c.SessionFile)
	sessions.Restore()

	gateway, err := api.NewRestGateway(c.APIBaseURL, c.RequestTimeout, sessions)
	if err != nil {
		return nil, err
	}

	uploader := storage.NewS3Uploader(c)

	return &App{
		config:   c,
		log:      log,
		sessions: sessions,
		guard:    session.NewGuard(sessions),
		flow:     authflow.NewFlow(gateway, sessions),
		blogs:    services.NewBlogService(gateway, log),
		posts:    services.NewPostService(gateway, uploader, log),
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.IsAuthenticated()
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	s := a.sessions.Email()
	if a.sessions.Expired() {
		s = s + " expired"
	}
	return fmt.Sprintf("(%s)", s)
}

// requireAuth gates a protected command. The backend remains the
// authority; this only saves the user a guaranteed 401.
func (a *App) requireAuth() error {
	if err := a.guard.Check(); err != nil {
		fmt.Println("Please sign in first.")
		return err
	}
	return nil
}
