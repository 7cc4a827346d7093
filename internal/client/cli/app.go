package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/instabids/internal/client/client"
	"github.com/dmitrijs2005/instabids/internal/client/config"
	"github.com/dmitrijs2005/instabids/internal/client/models"
	"github.com/dmitrijs2005/instabids/internal/client/preferences"
	"github.com/dmitrijs2005/instabids/internal/client/realtime"
	"github.com/dmitrijs2005/instabids/internal/client/services"
	"github.com/dmitrijs2005/instabids/internal/client/session"
	"github.com/dmitrijs2005/instabids/internal/filex"
	"github.com/dmitrijs2005/instabids/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// sessionStore is the part of session.Store the commands drive.
type sessionStore interface {
	State() session.State
	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, email, password, username string) error
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) error
}

type themeStore interface {
	Theme() models.Theme
	SetTheme(ctx context.Context, t models.Theme) error
}

type App struct {
	config   *config.Config
	logger   logging.Logger
	store    sessionStore
	account  services.AccountService
	media    services.MediaService
	theme    themeStore
	channels realtime.Channels
	reader   *bufio.Reader
	out      io.Writer
	closers  []func() error

	outMu   sync.Mutex
	mu      sync.Mutex
	Mode    Mode
	watches map[string]*realtime.Subscription
}

// NewApp wires local storage, the authority client, the session store and
// its bridge. It refuses to start without an authority address and anon key.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		return nil, err
	}
	repos, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	remote, err := client.NewGRPCClient(c.AuthorityAddr, c.AnonKey,
		client.WithStorage(repos.KV),
		client.WithLogger(logger.With("component", "authority-client")),
		client.WithRequestTimeout(c.RequestTimeout),
	)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	store, err := session.NewStore(ctx, remote, repos.KV, logger.With("component", "session"))
	if err != nil {
		_ = remote.Close()
		_ = repos.Close()
		return nil, err
	}

	bridge := session.NewBridge(remote, store, logger.With("component", "bridge"))
	if err := bridge.Start(ctx); err != nil {
		_ = remote.Close()
		_ = repos.Close()
		return nil, err
	}

	a := &App{
		config:   c,
		logger:   logger,
		store:    store,
		account:  services.NewAccountService(remote, repos.KV),
		media:    services.NewMediaService(remote, &http.Client{Timeout: c.RequestTimeout}, logger),
		channels: remote,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		watches:  make(map[string]*realtime.Subscription),
	}

	theme, err := preferences.NewThemeStore(ctx, repos.KV, logger, func(t models.Theme) {
		a.printf("Theme set to %s\n", t)
	})
	if err != nil {
		_ = bridge.Close()
		_ = remote.Close()
		_ = repos.Close()
		return nil, err
	}
	a.theme = theme

	a.closers = []func() error{bridge.Close, remote.Close, repos.Close}
	return a, nil
}

// Run starts the connectivity watcher and blocks in the REPL until the user
// exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	a.printf("Welcome to Instabids CLI (type 'help' for commands)\n")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.StartOnlineStatusWatcher(ctx, 10*time.Second)
	}()

	runREPL(ctx, a, a.getStatus, a.reader)

	// the watcher pings through the remote client, so it stops before Close
	cancel()
	wg.Wait()
	a.Close()
}

// Close stops every watch and releases the remote client and local storage.
func (a *App) Close() {
	a.mu.Lock()
	watches := a.watches
	a.watches = make(map[string]*realtime.Subscription)
	a.mu.Unlock()

	for _, sub := range watches {
		_ = sub.Close()
	}
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Warn(context.Background(), "shutdown", "error", err)
		}
	}
	a.closers = nil
}

func (a *App) printf(format string, args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.Mode != mode
	a.Mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

func (a *App) mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Mode
}

func (a *App) isLoggedIn() bool {
	return a.store.State().IsAuthenticated
}

func (a *App) getStatus() string {
	s := ""
	if u := a.store.State().User; u != nil {
		if u.Username != "" {
			s = u.Username + " "
		} else {
			s = u.Email + " "
		}
	}
	if m := a.mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// StartOnlineStatusWatcher pings the authority every interval and flips Mode
// between online and offline.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	check := func() {
		pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := a.account.Ping(pctx)
		cancel()
		if err != nil {
			a.setMode(ModeOffline)
		} else {
			a.setMode(ModeOnline)
		}
	}
	check()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			check()
		case <-ctx.Done():
			return
		}
	}
}
