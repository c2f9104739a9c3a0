package main

import (
	"errors"
	"path/filepath"
)

type Config struct {
	InputPath    string
	TaxonomyPath string
	DBPath       string
	TrustScale   float64
	StatsOnly    bool
	JSON         bool
	Verbose      bool
}

func (c Config) Validate() error {
	if c.InputPath == "" && !c.StatsOnly {
		return errors.New("missing -in")
	}
	if c.TrustScale < 0 {
		return errors.New("trust-scale must be >= 0")
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		InputPath:  "-",
		TrustScale: 0.5,
	}
}

func cleanPath(p string) string {
	if p == "" || p == "-" {
		return p
	}
	return filepath.Clean(p)
}
