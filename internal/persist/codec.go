// Package persist reads and writes decks as JSON or YAML documents and
// exports them as SVG.
package persist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/EdgarSahakyann/Power-point--project/internal/deck"
)

// FormatVersion is the document version written by Save.
const FormatVersion = 1

// ErrUnsupportedFormat is returned for a file extension with no codec.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Document is the on-disk envelope of a deck.
type Document struct {
	ID      string               `json:"id" yaml:"id"`
	Version int                  `json:"version" yaml:"version"`
	SavedAt time.Time            `json:"saved_at" yaml:"saved_at"`
	Slides  []deck.SlideEncoding `json:"slides" yaml:"slides"`
}

// Codec converts documents to and from bytes.
type Codec interface {
	Name() string
	Marshal(doc Document) ([]byte, error)
	Unmarshal(data []byte) (Document, error)
}

// JSONCodec encodes documents as indented JSON. It also accepts a bare
// array of slides.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (JSONCodec) Unmarshal(data []byte) (Document, error) {
	var doc Document
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &doc.Slides); err != nil {
			return Document{}, err
		}
		return doc, nil
	}
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// YAMLCodec encodes documents as YAML.
type YAMLCodec struct{}

func (YAMLCodec) Name() string { return "yaml" }

func (YAMLCodec) Marshal(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (YAMLCodec) Unmarshal(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// CodecFor picks a codec from a file name's extension.
func CodecFor(path string) (Codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSONCodec{}, nil
	case ".yaml", ".yml":
		return YAMLCodec{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}
