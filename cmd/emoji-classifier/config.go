package main

import (
	"errors"
	"path/filepath"
)

type Config struct {
	Emoji        string
	InputPath    string
	TaxonomyPath string
	OutPath      string
	Model        string
	APIKey       string
	BatchSize    int
	Overwrite    bool
	DryRun       bool
	Verbose      bool
}

func (c Config) Validate() error {
	if c.Emoji == "" && c.InputPath == "" {
		return errors.New("missing -emoji or -in")
	}
	if c.OutPath == "" && !c.DryRun {
		return errors.New("missing -out")
	}
	if c.Model == "" {
		return errors.New("missing -model")
	}
	if c.BatchSize <= 0 {
		return errors.New("batch-size must be > 0")
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		OutPath:   filepath.FromSlash("config/emoji_extra.yaml"),
		Model:     "gpt-5-mini",
		BatchSize: 25,
	}
}
