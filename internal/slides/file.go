package slides

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/five82/carousel/internal/carousel"
)

// FileLoader reads a JSON or YAML slide file. The document may be a bare
// list or an object with a "slides" key.
type FileLoader struct {
	Path string
}

var _ Loader = (*FileLoader)(nil)

// Load returns an empty list when the file does not exist.
func (f *FileLoader) Load(ctx context.Context) ([]carousel.SlideSource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read slides: %w", err)
	}
	return decode(data, filepath.Ext(f.Path))
}

func decode(data []byte, ext string) ([]carousel.SlideSource, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return decodeYAML(data)
	default:
		return decodeJSON(data)
	}
}

func decodeJSON(data []byte) ([]carousel.SlideSource, error) {
	var list []carousel.SlideSource
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse slides json: %w", err)
	}
	return doc.Slides, nil
}

func decodeYAML(data []byte) ([]carousel.SlideSource, error) {
	var list []carousel.SlideSource
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse slides yaml: %w", err)
	}
	return doc.Slides, nil
}
