package gotemplate

import (
	"errors"
	"fmt"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-heroflex/pkg/render/template"
)

// NewNative builds the go-template engine itself instead of the in-package
// pongo2 Engine. The same options apply; raw go-template options passed via
// WithGoTemplateOptions are appended last so they can override the mapped ones.
func NewNative(options ...Option) (template.TemplateRenderer, error) {
	cfg := newConfig(options)
	if cfg.baseDir == "" && cfg.templates == nil {
		return nil, errors.New("gotemplate: need to provide either base dir or fs.FS")
	}

	// go-template shares pongo2's process-wide filter registry.
	registerDefaultFilters()

	opts := make([]gotemplatepkg.Option, 0, 5+len(cfg.goOptions))
	if cfg.baseDir != "" {
		opts = append(opts, gotemplatepkg.WithBaseDir(cfg.baseDir))
	}
	if cfg.templates != nil {
		opts = append(opts, gotemplatepkg.WithFS(cfg.templates))
	}
	opts = append(opts, gotemplatepkg.WithExtension(cfg.extension))
	if len(cfg.templateFn) > 0 {
		opts = append(opts, gotemplatepkg.WithTemplateFunc(cfg.templateFn))
	}
	if len(cfg.globalData) > 0 {
		opts = append(opts, gotemplatepkg.WithGlobalData(cfg.globalData))
	}
	opts = append(opts, cfg.goOptions...)

	engine, err := gotemplatepkg.NewRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: create go-template renderer: %w", err)
	}
	return engine, nil
}
