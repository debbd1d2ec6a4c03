package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-heroflex/pkg/orchestrator"
)

const launchYAML = `
_type: hero-flex
_key: launch
title: Launch week
`

const pageJSON = `{"blocks":[
  {"_type":"hero-flex","_key":"a","title":"First hero"},
  {"_type":"hero-flex","_key":"b","variant":"card","title":"Second hero"}
]}`

func newTestServer(t *testing.T, options ...Option) *Server {
	t.Helper()
	options = append([]Option{
		WithContentFS(fstest.MapFS{
			"launch.yaml": {Data: []byte(launchYAML)},
			"page.json":   {Data: []byte(pageJSON)},
			"empty.json":  {Data: []byte("  ")},
		}),
	}, options...)
	return New(orchestrator.New(), options...)
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["status"] != "ok" {
		t.Fatalf("unexpected payload %v", payload)
	}
}

func TestQuery(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/query", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `_type == "hero-flex" => {`) {
		t.Fatalf("unexpected query response %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, s, http.MethodGet, "/query?page=1&type=landing", "")
	if !strings.HasPrefix(rec.Body.String(), `*[_type == "landing" && slug.current == $slug][0]{`) {
		t.Fatalf("unexpected page query: %s", rec.Body.String())
	}
}

func TestPreview(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/preview/launch", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type = %q", ct)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "<!DOCTYPE html>") || !strings.Contains(body, "Launch week") {
		t.Fatalf("unexpected preview body: %s", body)
	}

	rec = do(t, s, http.MethodGet, "/preview/launch.yaml?renderer=fragment", "")
	if rec.Code != http.StatusOK || strings.Contains(rec.Body.String(), "<!DOCTYPE html>") {
		t.Fatalf("expected fragment output, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestPreview_Errors(t *testing.T) {
	s := newTestServer(t)

	cases := map[string]int{
		"/preview/missing":                            http.StatusNotFound,
		"/preview/empty":                              http.StatusBadRequest,
		"/preview/launch?renderer=pdf":                http.StatusBadRequest,
		"/preview/page?blocks=nope&renderer=fragment": http.StatusUnprocessableEntity,
	}
	for target, want := range cases {
		rec := do(t, s, http.MethodGet, target, "")
		if rec.Code != want {
			t.Fatalf("%s: status = %d, want %d (%s)", target, rec.Code, want, rec.Body.String())
		}
	}

	rec := do(t, New(orchestrator.New()), http.MethodGet, "/preview/launch", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("no content dir: status = %d", rec.Code)
	}
}

func TestPreview_Subset(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/preview/page?renderer=fragment&variants=card", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if strings.Contains(body, "First hero") || !strings.Contains(body, "Second hero") {
		t.Fatalf("subset not applied: %s", body)
	}
}

func TestRender(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/render?renderer=fragment", `{"_type":"hero-flex","title":"Posted"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Posted") || !strings.Contains(rec.Body.String(), "<section") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRender_Errors(t *testing.T) {
	s := newTestServer(t)

	cases := []struct {
		name   string
		target string
		body   string
		want   int
	}{
		{name: "empty", target: "/render", body: "", want: http.StatusBadRequest},
		{name: "malformed", target: "/render", body: "{", want: http.StatusBadRequest},
		{name: "no hero", target: "/render", body: "_type: banner", want: http.StatusUnprocessableEntity},
		{name: "renderer", target: "/render?renderer=pdf", body: "title: x", want: http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, tc.target, tc.body)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tc.want, rec.Body.String())
			}
		})
	}
}

func TestRender_BodyLimit(t *testing.T) {
	s := newTestServer(t, WithMaxBodyBytes(8))

	rec := do(t, s, http.MethodPost, "/render", `{"title":"too long"}`)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRender_Theme(t *testing.T) {
	selector, err := orchestrator.NewManifestSelector("", "", &theme.Manifest{
		Name:   "aurora",
		Tokens: map[string]string{"brand": "#2563eb"},
	})
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	s := New(orchestrator.New(orchestrator.WithThemeSelector(selector)))

	rec := do(t, s, http.MethodPost, "/render?theme=aurora", "title: Themed")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "--color-brand") {
		t.Fatalf("expected theme css vars: %s", rec.Body.String())
	}

	rec = do(t, s, http.MethodPost, "/render?theme=nope", "title: Themed")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown theme status = %d", rec.Code)
	}
}

func TestThemeWithoutSelector(t *testing.T) {
	s := newTestServer(t)
	for _, target := range []string{"/render?theme=aurora", "/preview/launch?theme=aurora"} {
		method, body := http.MethodPost, "title: Themed"
		if strings.HasPrefix(target, "/preview") {
			method, body = http.MethodGet, ""
		}
		rec := do(t, s, method, target, body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s status = %d, want %d", target, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestAssets(t *testing.T) {
	s := newTestServer(t, WithAssets(fstest.MapFS{
		"heroflex.css": {Data: []byte(".btn{}")},
	}))

	rec := do(t, s, http.MethodGet, "/assets/heroflex.css", "")
	if rec.Code != http.StatusOK || rec.Body.String() != ".btn{}" {
		t.Fatalf("unexpected asset response %d: %s", rec.Code, rec.Body.String())
	}
}
