package content

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// Source identifies where a content document originated so loaders can operate
// on files, fs.FS entries, URLs or in-memory payloads without leaking
// implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile   SourceKind = "file"
	SourceKindFS     SourceKind = "fs"
	SourceKindURL    SourceKind = "url"
	SourceKindInline SourceKind = "inline"
)

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct {
	raw string
}

func (s urlSource) Location() string { return s.raw }
func (s urlSource) Kind() SourceKind { return SourceKindURL }

// SourceFromURL parses the supplied URL string and returns a Source. It panics
// if the URL is invalid to surface configuration mistakes early.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("content: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("content: invalid URL %q: %v", raw, err))
	}
	return urlSource{raw: raw}
}

// InlineSource carries its payload with it. Name is informational and may
// carry an extension ("hero.yaml") to pick the decoder.
type InlineSource struct {
	Name string
	Data []byte
}

func (s InlineSource) Location() string { return s.Name }
func (s InlineSource) Kind() SourceKind { return SourceKindInline }

// SourceFromBytes wraps an in-memory payload, e.g. a request body.
func SourceFromBytes(name string, data []byte) Source {
	return InlineSource{Name: name, Data: append([]byte(nil), data...)}
}
