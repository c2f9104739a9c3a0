package main

import "errors"

type Config struct {
	InputPath string
	OutPath   string
	Pretty    bool
	Verbose   bool
}

func (c Config) Validate() error {
	if c.InputPath == "" {
		return errors.New("missing -in")
	}
	return nil
}

func defaultConfig() Config {
	return Config{InputPath: "-"}
}
