package feedback

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/whisperengine-ai/whisperengine-v2-sub028/feedback/fileutils"
)

// TaxonomyFile is the on-disk shape of a taxonomy extension. JSON files are accepted as well.
type TaxonomyFile struct {
	Version int               `json:"version" yaml:"version"`
	Emoji   []EmojiDefinition `json:"emoji" yaml:"emoji"`
}

// LoadTaxonomyFile reads and validates the entries of a taxonomy file.
// Entries are checked on their own; collisions with another table surface in Extend.
func LoadTaxonomyFile(path string) ([]EmojiDefinition, error) {
	if path == "" {
		return nil, errors.New("LoadTaxonomyFile: path is empty")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadTaxonomyFile: read file: %w", err)
	}
	var f TaxonomyFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("LoadTaxonomyFile: unmarshal %s: %w", path, err)
	}
	if f.Version > 1 {
		return nil, fmt.Errorf("LoadTaxonomyFile: %s: unsupported version %d", path, f.Version)
	}
	// Build a standalone table to catch duplicates inside the file itself.
	if _, err := NewTaxonomy(f.Emoji); err != nil {
		return nil, fmt.Errorf("LoadTaxonomyFile: %s: %w", path, err)
	}
	return f.Emoji, nil
}

// LoadTaxonomy returns the default taxonomy extended with the entries in path.
// An empty path yields the default taxonomy.
func LoadTaxonomy(path string) (*Taxonomy, error) {
	base := DefaultTaxonomy()
	if strings.TrimSpace(path) == "" {
		return base, nil
	}
	defs, err := LoadTaxonomyFile(path)
	if err != nil {
		return nil, err
	}
	t, err := base.Extend(defs)
	if err != nil {
		return nil, fmt.Errorf("LoadTaxonomy: %s: %w", path, err)
	}
	return t, nil
}

// SaveTaxonomyFile writes defs as a YAML taxonomy file atomically.
func SaveTaxonomyFile(path string, defs []EmojiDefinition) error {
	if path == "" {
		return errors.New("SaveTaxonomyFile: path is empty")
	}
	if defs == nil {
		defs = []EmojiDefinition{}
	}
	b, err := yaml.Marshal(TaxonomyFile{Version: 1, Emoji: defs})
	if err != nil {
		return fmt.Errorf("SaveTaxonomyFile: marshal: %w", err)
	}
	if err := fileutils.WriteFileAtomicSameDir(path, b, 0o644); err != nil {
		return fmt.Errorf("SaveTaxonomyFile: write: %w", err)
	}
	return nil
}
