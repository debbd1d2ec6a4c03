package content

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrEmptyDocument is returned when a document carries no payload.
var ErrEmptyDocument = errors.New("content: raw document is empty")

// Format identifies the serialisation of a raw document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Document wraps a raw content payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("content: source is required")
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return Document{}, ErrEmptyDocument
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Format reports how the payload should be decoded. The location extension
// wins; otherwise JSON is assumed when the payload opens with '{' or '['.
func (d Document) Format() Format {
	switch strings.ToLower(filepath.Ext(d.Location())) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return SniffFormat(d.raw)
}

// SniffFormat guesses the serialisation of an untagged payload.
func SniffFormat(raw []byte) Format {
	trimmed := strings.TrimLeft(string(raw), " \t\r\n\ufeff")
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return FormatJSON
	}
	return FormatYAML
}
