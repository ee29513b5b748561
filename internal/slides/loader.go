// Package slides supplies carousel slide records from files, the slide feed
// or a Redis-backed cache in front of either.
package slides

import (
	"context"
	"fmt"
	"strings"

	"github.com/five82/carousel/internal/carousel"
)

// Loader fetches the full slide list.
type Loader interface {
	Load(ctx context.Context) ([]carousel.SlideSource, error)
}

// Document is the wire and file shape of a slide list.
type Document struct {
	Slides []carousel.SlideSource `json:"slides" yaml:"slides"`
}

// NewLoader picks a Loader for source: an http(s) URL uses the feed client,
// anything else is read as a local file.
func NewLoader(source string) (Loader, error) {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return nil, fmt.Errorf("slide source is empty")
	}
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return NewClient(trimmed)
	}
	return &FileLoader{Path: trimmed}, nil
}
