// Package web parses web service flags and launches the service.
package web

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/louisbranch/emergencyhelp/internal/platform/i18n"
	entrypoint "github.com/louisbranch/emergencyhelp/internal/platform/cmd"
	"github.com/louisbranch/emergencyhelp/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string `env:"EMERGENCYHELP_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath              string `env:"EMERGENCYHELP_WEB_DB_PATH" envDefault:"data/emergencyhelp.db"`
	CookieSecret        string `env:"EMERGENCYHELP_WEB_COOKIE_SECRET"`
	DefaultLang         string `env:"EMERGENCYHELP_WEB_DEFAULT_LANG" envDefault:"en"`
	AcceptLanguage      bool   `env:"EMERGENCYHELP_WEB_ACCEPT_LANGUAGE" envDefault:"true"`
	TrustForwardedProto bool   `env:"EMERGENCYHELP_WEB_TRUST_FORWARDED_PROTO"`
	AdminName           string `env:"EMERGENCYHELP_WEB_ADMIN_NAME" envDefault:"Administrator"`
	AdminEmail          string `env:"EMERGENCYHELP_WEB_ADMIN_EMAIL"`
	DiscordToken        string `env:"EMERGENCYHELP_WEB_DISCORD_TOKEN"`
	DiscordChannel      string `env:"EMERGENCYHELP_WEB_DISCORD_CHANNEL"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path (:memory: for a throwaway store)")
	fs.StringVar(&cfg.DefaultLang, "lang", cfg.DefaultLang, "Default display language (en or bn)")
	fs.BoolVar(&cfg.AcceptLanguage, "accept-language", cfg.AcceptLanguage, "Pick a new visitor's language from Accept-Language")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto from the fronting proxy")
	fs.StringVar(&cfg.AdminEmail, "admin-email", cfg.AdminEmail, "Email of the admin account to provision")
	fs.StringVar(&cfg.DiscordChannel, "discord-channel", cfg.DiscordChannel, "Discord channel ID that receives SOS alerts")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if _, ok := i18n.ParseLanguage(cfg.DefaultLang); !ok {
		return Config{}, fmt.Errorf("unsupported default language %q", cfg.DefaultLang)
	}
	return cfg, nil
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		lang, _ := i18n.ParseLanguage(cfg.DefaultLang)
		server, err := web.NewServerWithContext(ctx, web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			DBPath:              strings.TrimSpace(cfg.DBPath),
			CookieSecret:        cfg.CookieSecret,
			DefaultLanguage:     lang,
			NegotiateLanguage:   cfg.AcceptLanguage,
			TrustForwardedProto: cfg.TrustForwardedProto,
			AdminName:           cfg.AdminName,
			AdminEmail:          cfg.AdminEmail,
			DiscordToken:        cfg.DiscordToken,
			DiscordChannel:      cfg.DiscordChannel,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
