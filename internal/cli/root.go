// Package cli implements the termfolio command.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"termfolio/internal/assets"
	"termfolio/internal/config"
	"termfolio/internal/contact"
	"termfolio/internal/content"
	"termfolio/internal/opener"
	"termfolio/internal/preview"
	"termfolio/internal/telemetry"
	"termfolio/internal/ui"
)

var (
	endpointFlag string
	assetsFlag   string
	logFileFlag  string
	rendererFlag string
	envFileFlag  string
	noAltScreen  bool
	noMouse      bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:          "termfolio",
	Short:        "Mahyar Jaberi's portfolio, in your terminal",
	Long:         "A single-page portfolio: projects, artwork, experience and a contact form, rendered as a terminal UI.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := RootCmd.Flags()
	f.StringVar(&endpointFlag, "endpoint", "", "Contact form endpoint (default: $"+config.EndpointEnv+" or Formspree)")
	f.StringVar(&assetsFlag, "assets", "", "Asset root holding projects/ and artwork/ (default: $"+assets.RootEnv+" or ./public)")
	f.StringVar(&logFileFlag, "log-file", "", "Write logs to this file (default: $"+config.LogFileEnv+", otherwise discarded)")
	f.StringVar(&rendererFlag, "renderer", "", "Terminal image renderer (default: $"+config.RendererEnv+" or chafa)")
	f.StringVar(&envFileFlag, "env-file", config.DefaultEnvFile, "Load environment variables from this file when present")
	f.BoolVar(&noAltScreen, "no-alt-screen", false, "Render inline instead of in the alternate screen")
	f.BoolVar(&noMouse, "no-mouse", false, "Disable mouse hover and click")
}

// resolveConfig layers flags over the environment.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(envFileFlag)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.FormEndpoint = endpointFlag
	}
	if flags.Changed("assets") {
		cfg.AssetDir = assetsFlag
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFileFlag
	}
	if flags.Changed("renderer") {
		cfg.Renderer = rendererFlag
	}
	cfg.AltScreen = !noAltScreen
	cfg.Mouse = !noMouse
	return cfg, cfg.Validate()
}

// openLogger returns a text logger writing to path, or a discarding logger
// when path is empty. The terminal belongs to the UI.
func openLogger(path string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), f, nil
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, logCloser, err := openLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	portfolio, err := content.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	tp, err := telemetry.NewProvider(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown", "error", err)
		}
	}()

	stats := portfolio.Stats()
	logger.Info("starting",
		"projects", stats.Projects,
		"artworks", stats.Artworks,
		"assets", cfg.AssetDir,
		"renderer", cfg.Renderer,
		"tracing", tp.Enabled(),
	)

	renderer := preview.NewRenderer(cfg.Renderer, assets.NewResolver(cfg.AssetDir), logger)
	model := ui.NewAppModel(ui.Deps{
		Context:   ctx,
		Portfolio: portfolio,
		Submitter: contact.NewClient(cfg.FormEndpoint, tp.Tracer("termfolio/contact"), logger),
		Previews:  preview.NewCache(renderer),
		Assets:    renderer.Assets,
		Open:      opener.Open,
		Logger:    logger,
	})

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	defer model.Close()
	p := tea.NewProgram(model.AsTeaModel(), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	logger.Info("exited")
	return nil
}
