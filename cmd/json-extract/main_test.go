package main

import (
	"bytes"
	"flag"
	"testing"

	"github.com/whisperengine-ai/whisperengine-v2-sub028/feedback/fileutils"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("json-extract", flag.ContinueOnError)
	cfg, err := parseFlags(fs, []string{"-in", "out/../completion.txt", "-out", "x.json", "-pretty"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.InputPath != "completion.txt" {
		t.Fatalf("InputPath=%q", cfg.InputPath)
	}
	if cfg.OutPath != "x.json" || !cfg.Pretty {
		t.Fatalf("OutPath=%q Pretty=%v", cfg.OutPath, cfg.Pretty)
	}
	if err := (Config{}).Validate(); err == nil {
		t.Fatalf("expected error for empty -in")
	}
}

func TestWriteValue(t *testing.T) {
	t.Parallel()

	res := fileutils.ExtractModelJSON("Sure, here it is: {\"note\": \"<b>&</b>\", \"n\": [1, 2]} thanks")
	if !res.Found {
		t.Fatalf("expected JSON")
	}

	var buf bytes.Buffer
	if err := writeValue(&buf, res.Value, false); err != nil {
		t.Fatalf("writeValue: %v", err)
	}
	if got := buf.String(); got != "{\"n\":[1,2],\"note\":\"<b>&</b>\"}\n" {
		t.Fatalf("out=%q", got)
	}

	buf.Reset()
	if err := writeValue(&buf, []any{1.0}, true); err != nil {
		t.Fatalf("writeValue pretty: %v", err)
	}
	if got := buf.String(); got != "[\n  1\n]\n" {
		t.Fatalf("pretty=%q", got)
	}
}

func TestWriteValue_KeepsSnowflakeIDs(t *testing.T) {
	t.Parallel()

	res := fileutils.ExtractModelJSON("```json\n{\"message_id\": 1234567890123456789}\n```")
	var buf bytes.Buffer
	if err := writeValue(&buf, res.Value, false); err != nil {
		t.Fatalf("writeValue: %v", err)
	}
	if got := buf.String(); got != "{\"message_id\":1234567890123456789}\n" {
		t.Fatalf("out=%q", got)
	}
}
