package orchestrator

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// ErrUnknownTheme is returned when a theme or variant is not registered.
var ErrUnknownTheme = errors.New("orchestrator: unknown theme")

// defaultThemeFallbacks are the partials renderers understand. Themes
// override them through their templates map.
func defaultThemeFallbacks() map[string]string {
	return map[string]string{
		"page": "templates/page.tmpl",
	}
}

// themeConfig resolves the renderer configuration for the requested theme.
// It returns nil when no theme is requested. Naming a theme without a
// selector configured is an ErrUnknownTheme.
func (o *Orchestrator) themeConfig(name, variant string) (*theme.RendererConfig, error) {
	if strings.TrimSpace(name) == "" {
		name = o.defaultTheme
	}
	if strings.TrimSpace(variant) == "" {
		variant = o.defaultVariant
	}
	if strings.TrimSpace(name) == "" {
		return nil, nil
	}
	if o.themeSelector == nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w: no theme selector configured", name, ErrUnknownTheme)
	}

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil, nil
	}

	fallbacks := o.themeFallbacks
	if fallbacks == nil {
		fallbacks = defaultThemeFallbacks()
	}
	return RendererConfig(selection, fallbacks), nil
}

// RendererConfig flattens a theme selection: variant tokens, templates and
// asset files override the base manifest, and fallbacks fill partials the
// theme leaves unset.
func RendererConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if selection == nil {
		return nil
	}
	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: copyStringMap(fallbacks),
	}

	manifest := selection.Manifest
	if manifest == nil {
		return cfg
	}

	tokens := copyStringMap(manifest.Tokens)
	partials := mergeStringMap(cfg.Partials, manifest.Templates)
	prefix := manifest.Assets.Prefix
	files := copyStringMap(manifest.Assets.Files)

	if v, ok := manifest.Variants[selection.Variant]; ok {
		tokens = mergeStringMap(tokens, v.Tokens)
		partials = mergeStringMap(partials, v.Templates)
		if v.Assets.Prefix != "" {
			prefix = v.Assets.Prefix
		}
		files = mergeStringMap(files, v.Assets.Files)
	}

	cfg.Tokens = tokens
	cfg.Partials = partials
	cfg.AssetURL = func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		if strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
			return file
		}
		if prefix == "" {
			return file
		}
		return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
	}
	return cfg
}

// ManifestSelector is an in-memory theme.ThemeSelector over a set of
// manifests.
type ManifestSelector struct {
	mu             sync.RWMutex
	manifests      map[string]*theme.Manifest
	defaultTheme   string
	defaultVariant string
}

var _ theme.ThemeSelector = (*ManifestSelector)(nil)

// NewManifestSelector registers the manifests. Blank names passed to Select
// resolve to defaultTheme and defaultVariant.
func NewManifestSelector(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) (*ManifestSelector, error) {
	s := &ManifestSelector{
		manifests:      make(map[string]*theme.Manifest, len(manifests)),
		defaultTheme:   strings.TrimSpace(defaultTheme),
		defaultVariant: strings.TrimSpace(defaultVariant),
	}
	for _, m := range manifests {
		if err := s.Register(m); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Register adds a manifest by name. Duplicate names return an error.
func (s *ManifestSelector) Register(manifest *theme.Manifest) error {
	if manifest == nil {
		return errors.New("orchestrator: theme manifest is required")
	}
	name := strings.TrimSpace(manifest.Name)
	if name == "" {
		return errors.New("orchestrator: theme name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.manifests[name]; exists {
		return fmt.Errorf("orchestrator: theme %q already registered", name)
	}
	s.manifests[name] = manifest
	return nil
}

// Themes lists the registered theme names, sorted.
func (s *ManifestSelector) Themes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.manifests))
	for name := range s.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select implements theme.ThemeSelector. An unknown variant is an error; a
// blank one selects the base manifest.
func (s *ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.defaultTheme
	}
	variant = strings.TrimSpace(variant)
	if variant == "" {
		variant = s.defaultVariant
	}

	s.mu.RLock()
	manifest, ok := s.manifests[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownTheme, name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w variant %q of %q", ErrUnknownTheme, variant, name)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// manifestFile is the YAML (or JSON) layout of a theme manifest on disk.
type manifestFile struct {
	Name      string                 `yaml:"name"`
	Version   string                 `yaml:"version"`
	Tokens    map[string]string      `yaml:"tokens"`
	Templates map[string]string      `yaml:"templates"`
	Assets    assetsFile             `yaml:"assets"`
	Variants  map[string]variantFile `yaml:"variants"`
}

type variantFile struct {
	Tokens    map[string]string `yaml:"tokens"`
	Templates map[string]string `yaml:"templates"`
	Assets    assetsFile        `yaml:"assets"`
}

type assetsFile struct {
	Prefix string            `yaml:"prefix"`
	Files  map[string]string `yaml:"files"`
}

// ParseManifest decodes a theme manifest. YAML is a superset of JSON so both
// formats are accepted.
func ParseManifest(data []byte) (*theme.Manifest, error) {
	var file manifestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("orchestrator: parse theme manifest: %w", err)
	}
	if strings.TrimSpace(file.Name) == "" {
		return nil, errors.New("orchestrator: theme manifest name is required")
	}

	manifest := &theme.Manifest{
		Name:      file.Name,
		Version:   file.Version,
		Tokens:    file.Tokens,
		Templates: file.Templates,
		Assets:    theme.Assets{Prefix: file.Assets.Prefix, Files: file.Assets.Files},
	}
	if len(file.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(file.Variants))
		for name, v := range file.Variants {
			manifest.Variants[name] = theme.Variant{
				Tokens:    v.Tokens,
				Templates: v.Templates,
				Assets:    theme.Assets{Prefix: v.Assets.Prefix, Files: v.Assets.Files},
			}
		}
	}
	return manifest, nil
}

// LoadManifests parses every *.yaml, *.yml and *.json file at the root of
// fsys as a theme manifest, in name order.
func LoadManifests(fsys fs.FS) ([]*theme.Manifest, error) {
	if fsys == nil {
		return nil, errors.New("orchestrator: theme filesystem is nil")
	}
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("orchestrator: read theme dir: %w", err)
	}

	var manifests []*theme.Manifest
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(path.Ext(entry.Name())) {
		case ".yaml", ".yml", ".json":
		default:
			continue
		}
		data, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("orchestrator: read %s: %w", entry.Name(), err)
		}
		manifest, err := ParseManifest(data)
		if err != nil {
			return nil, fmt.Errorf("%w (%s)", err, entry.Name())
		}
		manifests = append(manifests, manifest)
	}
	return manifests, nil
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func mergeStringMap(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
