package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/whisperengine-ai/whisperengine-v2-sub028/feedback/fileutils"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	var in []byte
	if cfg.InputPath == "-" {
		in, err = io.ReadAll(os.Stdin)
	} else {
		in, err = os.ReadFile(cfg.InputPath)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("read input: %w", err).Error())
		os.Exit(1)
	}

	res := fileutils.ExtractModelJSON(string(in))
	if !res.Found {
		fmt.Fprintln(os.Stderr, "no JSON object or array found")
		os.Exit(1)
	}

	if cfg.OutPath != "" {
		if err := fileutils.WriteJSONFileAtomic(cfg.OutPath, res.Value, cfg.Pretty); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		return
	}
	if err := writeValue(os.Stdout, res.Value, cfg.Pretty); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.InputPath, "in", cfg.InputPath, "File holding raw model output, or - for stdin")
	fs.StringVar(&cfg.OutPath, "out", "", "Write the recovered JSON to this file instead of stdout")
	fs.BoolVar(&cfg.Pretty, "pretty", false, "Pretty-print the recovered JSON")
	fs.BoolVar(&cfg.Verbose, "v", false, "Debug logging (shows why parsing failed)")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage:\n  %s [flags]\n\nExits 1 when no JSON object or array can be recovered.\n\nFlags:\n", filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.InputPath != "-" && cfg.InputPath != "" {
		cfg.InputPath = filepath.Clean(cfg.InputPath)
	}
	if cfg.OutPath != "" {
		cfg.OutPath = filepath.Clean(cfg.OutPath)
	}
	return cfg, nil
}

func writeValue(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
