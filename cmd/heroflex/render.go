package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-heroflex/pkg/content"
	"github.com/goliatone/go-heroflex/pkg/orchestrator"
	"github.com/goliatone/go-heroflex/pkg/render"
)

func newRenderCommand(a *app) *cobra.Command {
	var (
		source      string
		renderer    string
		output      string
		theme       string
		variant     string
		locale      string
		title       string
		blocks      string
		variants    string
		preset      string
		stylesheets []string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a hero document to HTML",
		Example: `  heroflex render --source content/launch.yaml --output launch.html
  heroflex render --source - --renderer fragment < block.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := parseSource(source, cmd.InOrStdin())
			if err != nil {
				return err
			}

			orch, err := a.orchestrator(orchestratorOptions{
				theme:   theme,
				variant: variant,
				preset:  preset,
			})
			if err != nil {
				return err
			}

			sheets := stylesheets
			if a.cfg.Stylesheet != "" {
				sheets = append([]string{a.cfg.Stylesheet}, sheets...)
			}

			html, err := orch.Generate(cmd.Context(), orchestrator.Request{
				Source:   src,
				Renderer: renderer,
				RenderOptions: render.RenderOptions{
					Locale:      locale,
					Title:       title,
					Stylesheets: sheets,
					Subset: render.BlockSubset{
						Keys:     render.ParseTokenList(blocks),
						Variants: render.ParseTokenList(variants),
					},
				},
			})
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(append(html, '\n'))
				return err
			}
			if err := os.WriteFile(output, html, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			a.logger.Info("hero written", "output", output, "renderer", renderer, "bytes", len(html))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&source, "source", "", `content file, URL, or "-" for stdin`)
	flags.StringVar(&renderer, "renderer", "page", "renderer to use (page, fragment)")
	flags.StringVar(&output, "output", "", "output file (stdout if empty)")
	flags.StringVar(&theme, "theme", "", "theme name (overrides HEROFLEX_THEME)")
	flags.StringVar(&variant, "variant", "", "theme variant (overrides HEROFLEX_THEME_VARIANT)")
	flags.StringVar(&locale, "locale", "", "document locale")
	flags.StringVar(&title, "title", "", "document title for the page renderer")
	flags.StringVar(&blocks, "blocks", "", "comma separated block keys to render")
	flags.StringVar(&variants, "variants", "", "comma separated layout variants to render")
	flags.StringVar(&preset, "preset", "", "YAML preset applied to every block before rendering")
	flags.StringArrayVar(&stylesheets, "stylesheet", nil, "stylesheet URL to link (repeatable)")
	_ = cmd.MarkFlagRequired("source")
	return cmd
}

func parseSource(raw string, stdin io.Reader) (content.Source, error) {
	path := strings.TrimSpace(raw)
	switch {
	case path == "":
		return nil, fmt.Errorf("invalid source: %q", raw)
	case path == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return content.SourceFromBytes("stdin", data), nil
	case strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://"):
		return content.SourceFromURL(path), nil
	default:
		return content.SourceFromFile(path), nil
	}
}
