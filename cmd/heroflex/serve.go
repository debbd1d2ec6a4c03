package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	heroflex "github.com/goliatone/go-heroflex"
	"github.com/goliatone/go-heroflex/internal/server"
	"github.com/goliatone/go-heroflex/pkg/render"
)

func newServeCommand(a *app) *cobra.Command {
	var (
		port       int
		contentDir string
		preset     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the preview server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if port > 0 {
				cfg.Port = port
			}
			if contentDir != "" {
				cfg.ContentDir = contentDir
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			orch, err := a.orchestrator(orchestratorOptions{preset: preset})
			if err != nil {
				return err
			}

			sheets := []string{"/assets/" + heroflex.StylesheetName}
			if cfg.Stylesheet != "" {
				sheets = append(sheets, cfg.Stylesheet)
			}

			srv := server.New(orch,
				server.WithLogger(a.logger.With("component", "server")),
				server.WithContentFS(os.DirFS(cfg.ContentDir)),
				server.WithAssets(heroflex.RuntimeAssetsFS()),
				server.WithRenderOptions(render.RenderOptions{Stylesheets: sheets}),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.logger.Info("serving previews", "url", fmt.Sprintf("http://localhost%s", cfg.Addr()), "content", cfg.ContentDir)
			return srv.ListenAndServe(ctx, cfg.Addr())
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "listen port (overrides HEROFLEX_PORT)")
	cmd.Flags().StringVar(&contentDir, "content-dir", "", "directory served by /preview/{name} (overrides HEROFLEX_CONTENT_DIR)")
	cmd.Flags().StringVar(&preset, "preset", "", "YAML preset applied to every block before rendering")
	return cmd
}
