package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/umputun/qotd/pkg/config"
	"github.com/umputun/qotd/pkg/notify"
	"github.com/umputun/qotd/pkg/quote"
	"github.com/umputun/qotd/pkg/repository"
	"github.com/umputun/qotd/pkg/resolver"
	"github.com/umputun/qotd/pkg/scheduler"
	"github.com/umputun/qotd/pkg/settings"
	"github.com/umputun/qotd/server"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"c" long:"config" env:"CONFIG" description:"configuration file, defaults are used if not set"`
	EnvFile string `long:"env-file" env:"ENV_FILE" default:".env" description:"env file with variables for config expansion"`
	Listen  string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	DBPath  string `long:"db" env:"DB" description:"database DSN, overrides config"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)
	lgr.Printf("[INFO] starting qotd version %s", revision)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, opts); err != nil {
		lgr.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1) //nolint:gocritic // cancel called above
	}
	lgr.Printf("[INFO] shutdown complete")
}

// run wires all components and blocks until ctx is canceled or the server fails
func run(ctx context.Context, opts Opts) error {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", opts.EnvFile, err)
		}
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.DBPath != "" {
		cfg.Database.DSN = opts.DBPath
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	notices := notify.NewBuffer(cfg.Notices.Capacity)

	settingsMgr := settings.New(settings.Params{
		Store:        repos.Setting,
		Notifier:     notices,
		Format:       cfg.QuoteFormat(),
		Placeholders: cfg.QuotePlaceholders(),
		Filters:      cfg.Filters,
	})
	if err := settingsMgr.Load(ctx); err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	source := quote.NewHTTPSource(quote.Params{
		APIURL:        cfg.Quotes.APIURL,
		Timeout:       cfg.Quotes.Timeout,
		UserAgent:     cfg.Quotes.UserAgent,
		RetryAttempts: cfg.Quotes.RetryAttempts,
		RetryDelay:    cfg.Quotes.RetryDelay,
		MinSelection:  cfg.Quotes.MinSelectionChars,
		MaxSelection:  cfg.Quotes.MaxSelectionChars,
		Notifier:      notices,
	})

	res := resolver.New(resolver.Params{
		Source:    source,
		Settings:  settingsMgr,
		Documents: repos.Document,
		History:   repos.Insertion,
		Pacer:     resolver.NewRatePacer(cfg.Schedule.Pacing),
	})

	sched := scheduler.NewScheduler(repos.Document, res, scheduler.Config{
		Interval:   cfg.Schedule.Interval,
		MaxWorkers: cfg.Schedule.MaxWorkers,
	})
	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sched.Stop()

	srv := server.New(server.Params{
		Listen:    cfg.Server.Listen,
		Timeout:   cfg.Server.Timeout,
		BaseURL:   cfg.Server.BaseURL,
		RSSLimit:  cfg.History.RSSLimit,
		Documents: repos.Document,
		Resolver:  res,
		Settings:  settingsMgr,
		Notices:   notices,
		History:   repos.Insertion,
	}, revision, opts.Debug)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
