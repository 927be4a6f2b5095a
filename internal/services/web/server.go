package web

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/louisbranch/emergencyhelp/internal/platform/i18n"
	"github.com/louisbranch/emergencyhelp/internal/platform/timeouts"
	webapp "github.com/louisbranch/emergencyhelp/internal/services/web/app"
	webauth "github.com/louisbranch/emergencyhelp/internal/services/web/auth"
	"github.com/louisbranch/emergencyhelp/internal/services/web/modules"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/i18nhttp"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/shellcookie"
	"github.com/louisbranch/emergencyhelp/internal/services/web/relay"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routeguard"
	"github.com/louisbranch/emergencyhelp/internal/services/web/shell"
	"github.com/louisbranch/emergencyhelp/internal/services/web/storage"
	"github.com/louisbranch/emergencyhelp/internal/services/web/storage/sqlite"
)

// Config configures the web server.
type Config struct {
	HTTPAddr string
	// DBPath is the SQLite database file. Empty keeps data in memory.
	DBPath string
	// CookieSecret signs shell cookies. Empty generates a per-process secret,
	// so cookies do not survive a restart.
	CookieSecret string
	// DefaultLanguage is the language of new shells.
	DefaultLanguage i18n.Language
	// NegotiateLanguage lets Accept-Language pick the language of new shells.
	NegotiateLanguage bool
	// TrustForwardedProto trusts X-Forwarded-Proto for cookie and origin
	// checks. Enable only behind a proxy that overwrites the header.
	TrustForwardedProto bool
	AdminName           string
	AdminEmail          string
	// DiscordToken and DiscordChannel relay SOS alerts to a responder
	// channel. Both empty disables the relay.
	DiscordToken   string
	DiscordChannel string
	Logger         *log.Logger
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	registry   *shell.Registry
	relay      *relay.Relay
	store      storage.Store
	closeOnce  sync.Once
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	return NewServerWithContext(context.Background(), config)
}

// NewServerWithContext builds a configured web server, opening storage and
// provisioning the admin account.
func NewServerWithContext(ctx context.Context, config Config) (*Server, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	dbPath := strings.TrimSpace(config.DBPath)
	if dbPath == "" {
		dbPath = ":memory:"
	}
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	server, err := newServer(ctx, config, httpAddr, store)
	if err != nil {
		if closeErr := store.Close(); closeErr != nil {
			log.Printf("close storage: %v", closeErr)
		}
		return nil, err
	}
	return server, nil
}

func newServer(ctx context.Context, config Config, httpAddr string, store storage.Store) (*Server, error) {
	directory := webauth.NewDirectory(store)
	if err := directory.EnsureAdmin(ctx, config.AdminName, config.AdminEmail); err != nil {
		return nil, err
	}

	policy := requestmeta.SchemePolicy{TrustForwardedProto: config.TrustForwardedProto}
	secret, err := cookieSecret(config.CookieSecret)
	if err != nil {
		return nil, err
	}
	cookies, err := shellcookie.NewCodec(secret, timeouts.ShellCookie, policy)
	if err != nil {
		return nil, fmt.Errorf("shell cookie codec: %w", err)
	}

	routes := routeguard.DefaultTable()
	registry := shell.NewRegistry(shell.Config{
		DefaultLanguage: config.DefaultLanguage,
		Resolver:        i18n.DefaultResolver(),
		Routes:          routes,
	}, timeouts.ShellIdle)

	var onCreate []shell.OnCreate
	if config.NegotiateLanguage {
		onCreate = append(onCreate, i18nhttp.Negotiate)
	}

	sosRelay, err := newRelay(config)
	if err != nil {
		return nil, err
	}

	deps := modules.Dependencies{
		Store:     store,
		Directory: directory,
		Policy:    policy,
		Watcher:   registry,
		Cookies:   cookies,
	}
	if sosRelay != nil {
		deps.Relay = sosRelay
	}
	handler, err := webapp.Compose(webapp.ComposeInput{
		Modules:             modules.DefaultModules(deps),
		StreamModules:       modules.StreamModules(deps),
		Registry:            registry,
		Cookies:             cookies,
		Routes:              routes,
		OnCreate:            onCreate,
		RequestSchemePolicy: policy,
		Logger:              config.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}

	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		registry: registry,
		relay:    sosRelay,
		store:    store,
	}, nil
}

func newRelay(config Config) (*relay.Relay, error) {
	token := strings.TrimSpace(config.DiscordToken)
	channel := strings.TrimSpace(config.DiscordChannel)
	if token == "" && channel == "" {
		return nil, nil
	}
	sosRelay, err := relay.NewDiscord(token, channel)
	if err != nil {
		return nil, fmt.Errorf("sos relay: %w", err)
	}
	log.Printf("web: relaying sos alerts to discord channel=%s", channel)
	return sosRelay, nil
}

func cookieSecret(configured string) ([]byte, error) {
	if configured = strings.TrimSpace(configured); configured != "" {
		return []byte(configured), nil
	}
	log.Printf("web: no cookie secret configured, shell cookies will not survive a restart")
	secret := make([]byte, shellcookie.MinSecretLen)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate cookie secret: %w", err)
	}
	return secret, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	if s == nil || s.httpServer == nil {
		return http.NotFoundHandler()
	}
	return s.httpServer.Handler
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go s.registry.Run(sweepCtx, timeouts.ShellSweep)
	if s.relay != nil {
		go s.relay.Run(sweepCtx)
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close tears down every shell and releases storage.
func (s *Server) Close() {
	if s == nil {
		return
	}
	s.closeOnce.Do(func() {
		if s.registry != nil {
			s.registry.Close()
		}
		if s.store != nil {
			if err := s.store.Close(); err != nil {
				log.Printf("close storage: %v", err)
			}
		}
	})
}
