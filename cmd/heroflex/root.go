package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	heroflex "github.com/goliatone/go-heroflex"
	"github.com/goliatone/go-heroflex/internal/config"
	"github.com/goliatone/go-heroflex/internal/logging"
	"github.com/goliatone/go-heroflex/pkg/content"
	"github.com/goliatone/go-heroflex/pkg/imageurl"
	"github.com/goliatone/go-heroflex/pkg/orchestrator"
)

// app carries state shared by every subcommand once the root pre-run has
// loaded configuration.
type app struct {
	envFile string
	logMode string

	cfg    config.Config
	logger *logging.Logger
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "heroflex",
		Short:         "Render CMS hero-flex blocks to HTML",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file to load (ignored when missing)")
	root.PersistentFlags().StringVar(&a.logMode, "log-mode", "", "log mode: dev or prod (overrides HEROFLEX_LOG_MODE)")

	root.AddCommand(
		newRenderCommand(a),
		newQueryCommand(),
		newServeCommand(a),
		newInitCommand(),
	)
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}
	if a.logMode != "" {
		cfg.LogMode = a.logMode
	}
	logger, err := logging.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

// orchestratorOptions carries the per-command knobs layered over config.
type orchestratorOptions struct {
	theme   string
	variant string
	preset  string
}

func (a *app) orchestrator(opts orchestratorOptions) (*orchestrator.Orchestrator, error) {
	cfg := a.cfg

	var loaderOptions []content.LoaderOption
	if cfg.AllowHTTP {
		loaderOptions = append(loaderOptions, content.WithHTTPFallback(cfg.HTTPTimeout))
	}

	options := []orchestrator.Option{
		orchestrator.WithLoader(heroflex.NewLoader(loaderOptions...)),
		orchestrator.WithImageBuilder(imageurl.New(cfg.SanityProjectID, cfg.SanityDataset)),
		orchestrator.WithDefaultTheme(firstNonEmpty(opts.theme, cfg.Theme), firstNonEmpty(opts.variant, cfg.ThemeVariant)),
	}

	if dir := strings.TrimSpace(cfg.ThemeDir); dir != "" {
		manifests, err := orchestrator.LoadManifests(os.DirFS(dir))
		if err != nil {
			return nil, err
		}
		selector, err := orchestrator.NewManifestSelector("", "", manifests...)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("loaded themes", "dir", dir, "themes", selector.Themes())
		options = append(options, orchestrator.WithThemeSelector(selector))
	} else if firstNonEmpty(opts.theme, cfg.Theme) != "" {
		return nil, errors.New("a theme requires HEROFLEX_THEME_DIR")
	}

	if preset := strings.TrimSpace(opts.preset); preset != "" {
		transformer, err := orchestrator.NewPresetTransformerFromFS(os.DirFS(filepath.Dir(preset)), filepath.Base(preset))
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithTransformer(transformer))
	}

	return orchestrator.New(options...), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
