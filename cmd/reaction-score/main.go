package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/whisperengine-ai/whisperengine-v2-sub028/feedback"
	"github.com/whisperengine-ai/whisperengine-v2-sub028/feedback/ledger"
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
	setupLogging(cfg.Verbose)

	tax, err := feedback.LoadTaxonomy(cfg.TaxonomyPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, tax, os.Stdin, os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, tax *feedback.Taxonomy, stdin io.Reader, stdout io.Writer) error {
	if cfg.StatsOnly {
		st := tax.Stats()
		_, err := fmt.Fprintf(stdout, "total=%d positive=%d negative=%d neutral=%d\n", st.Total, st.Positive, st.Negative, st.Neutral)
		return err
	}

	events, err := readEventsFrom(cfg.InputPath, stdin)
	if err != nil {
		return err
	}

	if cfg.DBPath != "" {
		if err := recordEvents(ctx, cfg.DBPath, tax, events); err != nil {
			return err
		}
	}
	return writeReport(stdout, tax, events, cfg)
}

func recordEvents(ctx context.Context, dbPath string, tax *feedback.Taxonomy, events []feedback.ReactionEvent) error {
	store, err := ledger.Open(ctx, dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	start := time.Now()
	for _, ev := range events {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := store.Record(ctx, tax, ev); err != nil {
			log.Warn().Err(err).Str("user", ev.UserID).Str("emoji", ev.Emoji).Msg("skipping reaction")
		}
	}
	log.Info().Int("events", len(events)).Str("db", dbPath).Dur("elapsed", time.Since(start).Round(time.Millisecond)).Msg("recorded reactions")
	return nil
}

func setupLogging(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.InputPath, "in", cfg.InputPath, "Path to a JSONL file of reaction events, or - for stdin")
	fs.StringVar(&cfg.TaxonomyPath, "taxonomy", "", "Optional YAML/JSON file of extra emoji definitions")
	fs.StringVar(&cfg.DBPath, "db", "", "Optional SQLite ledger to record events into")
	fs.Float64Var(&cfg.TrustScale, "trust-scale", cfg.TrustScale, "Multiplier from weighted score to trust delta")
	fs.BoolVar(&cfg.StatsOnly, "stats", false, "Print taxonomy stats and exit")
	fs.BoolVar(&cfg.JSON, "json", false, "Emit one JSON object per (bot, user) instead of key=value lines")
	fs.BoolVar(&cfg.Verbose, "v", false, "Debug logging")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage:\n  %s [flags]\n\nFlags:\n", filepath.Base(os.Args[0]))
		fs.PrintDefaults()
		fmt.Fprintln(fs.Output(), "\nExample:")
		fmt.Fprintln(fs.Output(), `  echo '{"bot_name":"elena","user_id":"42","emoji":"❤️"}' | go run ./cmd/reaction-score`)
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.InputPath = cleanPath(cfg.InputPath)
	cfg.TaxonomyPath = cleanPath(cfg.TaxonomyPath)
	cfg.DBPath = cleanPath(cfg.DBPath)
	return cfg, nil
}

func readEventsFrom(path string, stdin io.Reader) ([]feedback.ReactionEvent, error) {
	if path == "-" {
		return readEvents(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open -in: %w", err)
	}
	defer f.Close()
	return readEvents(f)
}

// readEvents parses JSONL reaction events. Blank lines are skipped.
func readEvents(r io.Reader) ([]feedback.ReactionEvent, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var out []feedback.ReactionEvent
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		var ev feedback.ReactionEvent
		if err := json.Unmarshal([]byte(text), &ev); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}
	return out, nil
}

type reportRow struct {
	BotName    string                   `json:"bot_name"`
	UserID     string                   `json:"user_id"`
	TrustDelta float64                  `json:"trust_delta"`
	Summary    feedback.FeedbackSummary `json:"summary"`
}

func writeReport(w io.Writer, tax *feedback.Taxonomy, events []feedback.ReactionEvent, cfg Config) error {
	order, groups := feedback.GroupEvents(events)
	enc := json.NewEncoder(w)
	for _, k := range order {
		s := tax.Summarize(groups[k])
		row := reportRow{BotName: k.BotName, UserID: k.UserID, TrustDelta: feedback.TrustDelta(s, cfg.TrustScale), Summary: s}
		if cfg.JSON {
			if err := enc.Encode(row); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "bot=%s user=%s total=%d positive=%d negative=%d neutral=%d weighted=%.2f simple=%d trust_delta=%.2f unknown=%s\n",
			row.BotName, row.UserID, s.Total, s.Positive, s.Negative, s.Neutral, s.WeightedScore, s.SimpleScore, row.TrustDelta,
			strings.Join(s.UnknownEmoji, ",")); err != nil {
			return err
		}
	}

	overall := tax.Summarize(events)
	if cfg.JSON {
		return enc.Encode(reportRow{BotName: "*", UserID: "*", TrustDelta: feedback.TrustDelta(overall, cfg.TrustScale), Summary: overall})
	}
	_, err := fmt.Fprintf(w, "groups=%d events=%d weighted=%.2f simple=%d unknown=%d\n",
		len(order), overall.Total, overall.WeightedScore, overall.SimpleScore, overall.Unknown)
	return err
}
