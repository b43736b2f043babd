package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/client/config"
	"github.com/dmitrijs2005/notekeeper/internal/client/persist"
	"github.com/dmitrijs2005/notekeeper/internal/client/services"
	"github.com/dmitrijs2005/notekeeper/internal/client/state"
	"github.com/dmitrijs2005/notekeeper/internal/client/storage"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *storage.DB
	cache    *state.Cache
	profiles *services.ProfileService
	notes    *services.NoteService
	detach   func()

	reader *bufio.Reader
	out    io.Writer
	prompt io.Writer
	now    func() time.Time
}

// NewApp opens storage, loads the stored profile and notes into a fresh
// cache and attaches the persistence mirror. The mirror is attached after
// loading so the boot itself writes nothing back.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	whitelist, err := persist.ParseWhitelist(c.MirrorSlices)
	if err != nil {
		return nil, fmt.Errorf("mirror config: %w", err)
	}

	db, err := storage.Open(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := services.NewStore(db.KV, db.InTx, log)
	cache := state.NewCache()

	res := persist.Rehydrate(ctx, store, cache, log)
	log.Info(ctx, "state loaded", "onboarded", res.Onboarded, "notes", res.NoteCount)

	a := &App{
		config:   c,
		log:      log,
		db:       db,
		cache:    cache,
		profiles: services.NewProfileService(store, cache, log),
		notes:    services.NewNoteService(store, cache, log),
		detach:   persist.Attach(ctx, cache, store, whitelist, log),
		reader:   bufio.NewReader(in),
		out:      out,
		prompt:   io.Discard,
		now:      time.Now,
	}
	if interactive(in) {
		a.prompt = out
	}
	return a, nil
}

// Run greets the user and blocks in the REPL until exit or end of input.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to notekeeper (type 'help' for commands)")
	if !a.isOnboarded() {
		fmt.Fprintln(a.out, "No profile yet. Type 'setup' to get started.")
	}
	runREPL(ctx, a, a.promptLine, a.reader, a.out)
}

// Close detaches the mirror and closes the database.
func (a *App) Close() {
	if a.detach != nil {
		a.detach()
		a.detach = nil
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(context.Background(), "close database", "error", err)
		}
		a.db = nil
	}
}

func (a *App) isOnboarded() bool {
	return a.cache.IsOnboarded()
}

func (a *App) promptLine() string {
	if a.prompt == io.Discard {
		return ""
	}
	if p := a.cache.Profile(); p != nil {
		return fmt.Sprintf("nk (%s) > ", p.Name)
	}
	return "nk > "
}
