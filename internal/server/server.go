package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-heroflex/internal/logging"
	"github.com/goliatone/go-heroflex/pkg/content"
	"github.com/goliatone/go-heroflex/pkg/orchestrator"
	"github.com/goliatone/go-heroflex/pkg/query"
	"github.com/goliatone/go-heroflex/pkg/render"
)

const (
	// DefaultRenderer is used by preview and render endpoints when the
	// request does not name one.
	DefaultRenderer = "page"

	defaultMaxBody = 1 << 20
)

// contentExtensions are tried in order when resolving a preview name.
var contentExtensions = []string{".json", ".yaml", ".yml"}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(logger *logging.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithContentFS sets the directory /preview/{name} reads documents from.
func WithContentFS(fsys fs.FS) Option {
	return func(s *Server) {
		s.content = fsys
	}
}

// WithAssets mounts static files under /assets/.
func WithAssets(fsys fs.FS) Option {
	return func(s *Server) {
		s.assets = fsys
	}
}

// WithRenderOptions sets the base options every render starts from, such as
// stylesheets or a translator.
func WithRenderOptions(options render.RenderOptions) Option {
	return func(s *Server) {
		s.base = options
	}
}

// WithDefaultTheme sets the theme used when a request does not pass one.
func WithDefaultTheme(name, variant string) Option {
	return func(s *Server) {
		s.theme = name
		s.variant = variant
	}
}

// WithMaxBodyBytes caps POST /render payloads.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBody = n
		}
	}
}

// Server is the preview HTTP server.
type Server struct {
	orch    *orchestrator.Orchestrator
	logger  *logging.Logger
	content fs.FS
	assets  fs.FS
	base    render.RenderOptions
	theme   string
	variant string
	maxBody int64
	router  chi.Router
}

// New builds the server and its routes.
func New(orch *orchestrator.Orchestrator, options ...Option) *Server {
	s := &Server{
		orch:    orch,
		logger:  logging.Nop(),
		maxBody: defaultMaxBody,
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.orch == nil {
		s.orch = orchestrator.New()
	}
	s.router = s.routes()
	return s
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("preview server shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.health)
	r.Get("/query", s.query)
	r.Get("/preview/{name}", s.preview)
	r.Post("/render", s.render)
	if s.assets != nil {
		r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(s.assets))))
	}
	return r
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// query returns the GROQ projection; ?page=1 wraps it in a page query.
func (s *Server) query(w http.ResponseWriter, r *http.Request) {
	text := query.HeroFlex().GROQ()
	if isTruthy(r.URL.Query().Get("page")) {
		docType := strings.TrimSpace(r.URL.Query().Get("type"))
		if docType == "" {
			docType = query.DefaultPageType
		}
		text = query.PageGROQ(docType, query.HeroFlex())
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, text+"\n")
}

func (s *Server) preview(w http.ResponseWriter, r *http.Request) {
	if s.content == nil {
		s.fail(w, r, http.StatusNotFound, errors.New("no content directory configured"))
		return
	}

	name := chi.URLParam(r, "name")
	file, data, err := s.readContent(name)
	if err != nil {
		s.fail(w, r, http.StatusNotFound, err)
		return
	}

	doc, err := content.NewDocument(content.SourceFromFS(file), data)
	if err != nil {
		s.fail(w, r, statusForContent(err), err)
		return
	}
	s.respond(w, r, doc)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, s.maxBody+1))
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, fmt.Errorf("read body: %w", err))
		return
	}
	if int64(len(body)) > s.maxBody {
		s.fail(w, r, http.StatusRequestEntityTooLarge, fmt.Errorf("body exceeds %d bytes", s.maxBody))
		return
	}

	doc, err := content.NewDocument(content.SourceFromBytes("request", body), body)
	if err != nil {
		s.fail(w, r, statusForContent(err), err)
		return
	}
	s.respond(w, r, doc)
}

// respond decodes the document, renders it according to the query string
// and writes the output.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, doc content.Document) {
	params := r.URL.Query()

	rendererName := strings.TrimSpace(params.Get("renderer"))
	if rendererName == "" {
		rendererName = DefaultRenderer
	}
	renderer, err := s.orch.Renderer(rendererName)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}

	blocks, err := content.DecodePage(doc)
	if err != nil {
		s.fail(w, r, statusForContent(err), err)
		return
	}

	options := s.base
	if locale := strings.TrimSpace(params.Get("locale")); locale != "" {
		options.Locale = locale
	}
	options.Subset = render.BlockSubset{
		Keys:     render.ParseTokenList(params.Get("blocks")),
		Variants: render.ParseTokenList(params.Get("variants")),
	}

	req := orchestrator.Request{
		Blocks:        blocks,
		Renderer:      rendererName,
		ThemeName:     firstNonEmpty(params.Get("theme"), s.theme),
		ThemeVariant:  firstNonEmpty(params.Get("variant"), s.variant),
		RenderOptions: options,
	}

	started := time.Now()
	output, err := s.orch.Generate(r.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, orchestrator.ErrUnknownTheme):
			status = http.StatusBadRequest
		case errors.Is(err, content.ErrNoHeroBlock):
			status = http.StatusUnprocessableEntity
		}
		s.fail(w, r, status, err)
		return
	}

	s.logger.Debug("rendered hero",
		"source", doc.Location(),
		"renderer", rendererName,
		"blocks", len(blocks),
		"duration", time.Since(started),
	)
	w.Header().Set("Content-Type", renderer.ContentType())
	_, _ = w.Write(output)
}

func (s *Server) readContent(name string) (string, []byte, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, `/\`) || !fs.ValidPath(name) {
		return "", nil, fmt.Errorf("invalid content name %q", name)
	}

	candidates := []string{name}
	if path.Ext(name) == "" {
		candidates = candidates[:0]
		for _, ext := range contentExtensions {
			candidates = append(candidates, name+ext)
		}
	}
	for _, candidate := range candidates {
		data, err := fs.ReadFile(s.content, candidate)
		if err == nil {
			return candidate, data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", nil, fmt.Errorf("read %s: %w", candidate, err)
		}
	}
	return "", nil, fmt.Errorf("content %q not found", name)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		started := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(started),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func statusForContent(err error) int {
	switch {
	case errors.Is(err, content.ErrNoHeroBlock):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
