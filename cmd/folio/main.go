package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"folio/internal/config"
	"folio/internal/content"
	"folio/internal/telemetry"
	"folio/internal/typewriter"
	"folio/internal/ui"
)

// flags override values loaded from the environment when set.
type flags struct {
	dotenv      string
	contentDir  string
	logFile     string
	typeSpeed   time.Duration
	noAltScreen bool
}

func parseFlags() flags {
	var f flags

	flag.StringVar(&f.dotenv, "env", ".env", "dotenv file to load before reading the environment")
	flag.StringVar(&f.contentDir, "content", "", "directory containing content.yaml (overrides FOLIO_CONTENT_DIR)")
	flag.StringVar(&f.logFile, "log-file", "", "write logs to this file (overrides FOLIO_LOG_FILE)")
	flag.DurationVar(&f.typeSpeed, "type-speed", 0, "delay between typed characters (overrides FOLIO_TYPE_SPEED)")
	flag.BoolVar(&f.noAltScreen, "no-alt-screen", false, "render inline instead of in the alternate screen")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: folio [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Folio renders a personal portfolio in the terminal.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return f
}

func (f flags) apply(cfg *config.Config) {
	if f.contentDir != "" {
		cfg.ContentDir = f.contentDir
	}
	if f.logFile != "" {
		cfg.LogFile = f.logFile
	}
	if f.typeSpeed > 0 {
		cfg.TypeSpeed = f.typeSpeed
	}
	if f.noAltScreen {
		cfg.AltScreen = false
	}
}

// newLogger logs to cfg.LogFile; the terminal belongs to the UI so without
// a file logs are discarded. The returned cleanup closes the file, if any.
func newLogger(cfg config.Config) (*logrus.Logger, func() error, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	log.SetLevel(level)

	if cfg.LogFile == "" {
		log.SetOutput(io.Discard)
		return log, func() error { return nil }, nil
	}
	f, err := tea.LogToFile(cfg.LogFile, "folio")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return log, f.Close, nil
}

func run(cfg config.Config) error {
	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := context.Background()
	tp, err := telemetry.Setup(ctx, cfg.OTLPEndpoint, cfg.ServiceName, log)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("telemetry shutdown")
		}
	}()

	store := content.NewStore(cfg.ContentDir)
	portfolio, err := store.Load()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"source":   store.Path(),
		"projects": len(portfolio.Projects),
		"tracing":  tp.Enabled(),
	}).Info("content loaded")

	app := ui.NewAppModel(ui.Options{
		Portfolio: portfolio,
		Typewriter: typewriter.Config{
			TypeSpeed:    cfg.TypeSpeed,
			DeleteSpeed:  cfg.DeleteSpeed,
			DelayBetween: cfg.DelayBetween,
		},
		CloseDelay: cfg.CloseDelay,
		Logger:     log,
	})

	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(app.AsTeaModel(), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	app.Teardown()
	return nil
}

func main() {
	f := parseFlags()

	cfg, err := config.Load(f.dotenv)
	if err != nil {
		config.Exitf("error: %v", err)
	}
	f.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		config.Exitf("error: %v", err)
	}

	if err := run(cfg); err != nil {
		config.Exitf("error: %v", err)
	}
}
