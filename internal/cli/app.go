package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/plateful/plateful/internal/api"
	"github.com/plateful/plateful/internal/config"
	"github.com/plateful/plateful/internal/logging"
	"github.com/plateful/plateful/internal/models"
	"github.com/plateful/plateful/internal/services"
	"github.com/plateful/plateful/internal/session"
)

// App wires the API client, the token store, and the per-view services, and
// carries the interactive surface the commands talk to.
type App struct {
	config *config.Config
	log    logging.Logger

	client  *api.Client
	store   *session.Store
	auth    *services.AuthService
	chat    *services.ChatSession
	convs   *services.ConversationList
	history *services.ListController[models.RecipeHistoryEntry]
	gallery *services.ListController[models.Image]

	input  promptInput
	out    io.Writer
	render func(string) string
}

// NewApp builds the application from config. The token store location falls
// back to the per-user default when not configured.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	tokenPath := cfg.TokenPath
	if tokenPath == "" {
		p, err := session.DefaultTokenPath()
		if err != nil {
			return nil, err
		}
		tokenPath = p
	}

	store := session.NewStore(tokenPath, log)
	client := api.New(cfg.ServerBaseURL, store, log)

	return &App{
		config:  cfg,
		log:     log,
		client:  client,
		store:   store,
		auth:    services.NewAuthService(client, store),
		chat:    services.NewChatSession(client),
		convs:   services.NewConversationList(client),
		history: services.NewRecipeHistory(client),
		gallery: services.NewGallery(client),
		out:     os.Stdout,
		render:  newMarkdownRenderer(),
	}, nil
}

// Run opens the line editor and enters the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	a.input = line

	readLine := func(prompt string) (string, error) {
		s, err := line.Prompt(prompt)
		if err == nil && strings.TrimSpace(s) != "" {
			line.AppendHistory(s)
		}
		return s, err
	}
	runREPL(ctx, a, a.getStatus, readLine)
}

func (a *App) isLoggedIn() bool {
	return a.auth.LoggedIn()
}

// getStatus renders the prompt decoration: the user's name and, while a
// conversation is active, its id.
func (a *App) getStatus() string {
	name, email, err := a.auth.CurrentUser()
	if err != nil {
		return ""
	}
	if name == "" {
		name = email
	}
	if id := a.chat.ConversationID(); id != 0 {
		return fmt.Sprintf("(%s #%d)", name, id)
	}
	return fmt.Sprintf("(%s)", name)
}

// opCtx derives the per-request context with the configured timeout.
func (a *App) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) downloadDir() string {
	if a.config.DownloadDir != "" {
		return a.config.DownloadDir
	}
	return "."
}

// promptID reads a line and parses it as a backend id.
func (a *App) promptID(label string) (int64, error) {
	s, err := a.input.Prompt(label)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("enter a numeric id")
	}
	return id, nil
}

// parseID parses an id given as a command argument, falling back to an
// interactive prompt when the argument is missing.
func (a *App) parseID(args []string, label string) (int64, error) {
	if len(args) == 0 {
		return a.promptID(label)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("enter a numeric id")
	}
	return id, nil
}
