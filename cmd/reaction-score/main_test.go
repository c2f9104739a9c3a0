package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/whisperengine-ai/whisperengine-v2-sub028/feedback"
	"github.com/whisperengine-ai/whisperengine-v2-sub028/feedback/ledger"
)

func TestParseFlags_Overrides(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("reaction-score", flag.ContinueOnError)
	cfg, err := parseFlags(fs, []string{
		"-in", "data/reactions.jsonl",
		"-taxonomy", "config/emoji.yaml",
		"-db", "data/ledger.db",
		"-trust-scale", "0.25",
		"-json",
		"-v",
	})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.InputPath != "data/reactions.jsonl" {
		t.Fatalf("InputPath=%q", cfg.InputPath)
	}
	if cfg.TaxonomyPath != "config/emoji.yaml" || cfg.DBPath != "data/ledger.db" {
		t.Fatalf("TaxonomyPath=%q DBPath=%q", cfg.TaxonomyPath, cfg.DBPath)
	}
	if cfg.TrustScale != 0.25 {
		t.Fatalf("TrustScale=%v", cfg.TrustScale)
	}
	if !cfg.JSON || !cfg.Verbose || cfg.StatsOnly {
		t.Fatalf("JSON=%v Verbose=%v StatsOnly=%v", cfg.JSON, cfg.Verbose, cfg.StatsOnly)
	}
}

func TestParseFlags_DefaultsToStdin(t *testing.T) {
	t.Parallel()

	cfg, err := parseFlags(flag.NewFlagSet("reaction-score", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.InputPath != "-" {
		t.Fatalf("InputPath=%q, want -", cfg.InputPath)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	if err := (Config{}).Validate(); err == nil {
		t.Fatalf("expected error for missing -in")
	}
	if err := (Config{StatsOnly: true}).Validate(); err != nil {
		t.Fatalf("stats-only should not need -in: %v", err)
	}
	if err := (Config{InputPath: "-", TrustScale: -1}).Validate(); err == nil {
		t.Fatalf("expected error for negative trust scale")
	}
}

func TestReadEvents(t *testing.T) {
	t.Parallel()

	in := `{"bot_name":"elena","user_id":"u1","emoji":"❤️"}

{"bot_name":"elena","user_id":"u1","emoji":"😂","removed":true}
`
	evs, err := readEvents(strings.NewReader(in))
	if err != nil {
		t.Fatalf("readEvents: %v", err)
	}
	if len(evs) != 2 {
		t.Fatalf("len(evs)=%d, want 2", len(evs))
	}
	if !evs[1].Removed || evs[1].Emoji != "😂" {
		t.Fatalf("evs[1]=%+v", evs[1])
	}

	_, err = readEvents(strings.NewReader("{\"emoji\":\"👍\"}\nnot json\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("err=%v, want line 2 error", err)
	}
}

func TestWriteReport_Text(t *testing.T) {
	t.Parallel()

	events := []feedback.ReactionEvent{
		{BotName: "Elena", UserID: "u1", Emoji: "❤️"},
		{BotName: "elena", UserID: "u1", Emoji: "🦄"},
		{BotName: "marcus", UserID: "u2", Emoji: "👎"},
	}
	var buf bytes.Buffer
	if err := writeReport(&buf, feedback.DefaultTaxonomy(), events, Config{TrustScale: 0.5}); err != nil {
		t.Fatalf("writeReport: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines=%q", lines)
	}
	if !strings.HasPrefix(lines[0], "bot=elena user=u1 total=2 positive=1 negative=0 neutral=1 weighted=2.00 simple=1 trust_delta=1.00 unknown=🦄") {
		t.Fatalf("line0=%q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "bot=marcus user=u2 total=1") {
		t.Fatalf("line1=%q", lines[1])
	}
	if lines[2] != "groups=2 events=3 weighted=1.00 simple=0 unknown=1" {
		t.Fatalf("line2=%q", lines[2])
	}
}

func TestWriteReport_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	events := []feedback.ReactionEvent{{BotName: "elena", UserID: "u1", Emoji: "🖕"}}
	if err := writeReport(&buf, feedback.DefaultTaxonomy(), events, Config{TrustScale: 10, JSON: true}); err != nil {
		t.Fatalf("writeReport: %v", err)
	}
	dec := json.NewDecoder(&buf)
	var first reportRow
	if err := dec.Decode(&first); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if first.TrustDelta != -feedback.MaxTrustDelta {
		t.Fatalf("TrustDelta=%v, want clamp to %v", first.TrustDelta, -feedback.MaxTrustDelta)
	}
	var overall reportRow
	if err := dec.Decode(&overall); err != nil {
		t.Fatalf("decode overall: %v", err)
	}
	if overall.BotName != "*" || overall.Summary.Total != 1 {
		t.Fatalf("overall=%+v", overall)
	}
}

func TestRun_RecordsIntoLedgerAndReports(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "ledger.db")
	in := strings.NewReader(`{"bot_name":"elena","user_id":"u1","emoji":"❤️"}
{"bot_name":"elena","user_id":"u1","emoji":"👎"}
`)
	var out bytes.Buffer
	cfg := Config{InputPath: "-", DBPath: dbPath, TrustScale: 0.5}
	if err := run(context.Background(), cfg, feedback.DefaultTaxonomy(), in, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(out.String(), "bot=elena user=u1 total=2 positive=1 negative=1") {
		t.Fatalf("out=%q", out.String())
	}

	// The store must have been closed by run; reopening sees both rows.
	store, err := ledger.Open(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer store.Close()
	tot, err := store.Totals(context.Background(), "elena", "u1")
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}
	if tot.Events != 2 || tot.Positive != 1 || tot.Negative != 1 {
		t.Fatalf("totals=%+v", tot)
	}
}

func TestRun_StatsAndErrors(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := run(context.Background(), Config{StatsOnly: true}, feedback.DefaultTaxonomy(), nil, &out); err != nil {
		t.Fatalf("run stats: %v", err)
	}
	if !strings.HasPrefix(out.String(), "total=") {
		t.Fatalf("stats=%q", out.String())
	}

	err := run(context.Background(), Config{InputPath: "-"}, feedback.DefaultTaxonomy(), strings.NewReader("nope\n"), &out)
	if err == nil || !strings.Contains(err.Error(), "line 1") {
		t.Fatalf("err=%v, want line 1 error", err)
	}
}
