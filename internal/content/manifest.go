package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/tagpages/internal/logging"
)

// ErrUnsupportedManifest is returned for manifest files that are neither YAML nor JSON.
var ErrUnsupportedManifest = errors.New("unsupported manifest format")

// LoadManifest reads a YAML (.yaml, .yml) or JSON (.json) manifest from path.
func LoadManifest(ctx context.Context, path string) (*Manifest, error) {
	log := logging.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	m, err := ParseManifest(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "content").
		Str("manifest_path", path).
		Int("item_count", len(m.Items)).
		Msg("loaded manifest")

	return m, nil
}

// ParseManifest decodes manifest bytes. ext selects the decoder and must be
// one of ".yaml", ".yml" or ".json".
func ParseManifest(data []byte, ext string) (*Manifest, error) {
	var m Manifest
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, err
		}
	case ".json":
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedManifest, ext)
	}
	return &m, nil
}
