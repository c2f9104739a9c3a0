package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/whisperengine-ai/whisperengine-v2-sub028/feedback"
	"github.com/whisperengine-ai/whisperengine-v2-sub028/feedback/fileutils"
	"github.com/whisperengine-ai/whisperengine-v2-sub028/feedback/provider"
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

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "missing OPENAI_API_KEY (or pass -api-key)")
		os.Exit(2)
	}

	candidates, err := collectCandidates(cfg.Emoji, cfg.InputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	var existing []feedback.EmojiDefinition
	if cfg.TaxonomyPath != "" {
		existing, err = feedback.LoadTaxonomyFile(cfg.TaxonomyPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(2)
		}
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))
	classifier := openAIEmojiClassifier{
		client: &client,
		model:  cfg.Model,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, classifier, existing, candidates, os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, c emojiClassifier, existing []feedback.EmojiDefinition, candidates []string, stdout io.Writer) error {
	tax, err := feedback.DefaultTaxonomy().Extend(existing)
	if err != nil {
		return err
	}

	start := time.Now()
	accepted, skipped, err := classifyUnknown(ctx, c, tax, candidates, cfg.BatchSize)
	if err != nil {
		return err
	}
	log.Info().Int("accepted", len(accepted)).Int("skipped", len(skipped)).
		Dur("elapsed", time.Since(start).Round(time.Second)).Msg("classification finished")

	written := !cfg.DryRun && len(accepted) > 0
	if written {
		if err := writeExtension(cfg, existing, accepted); err != nil {
			return err
		}
	}
	printDefinitions(stdout, accepted)
	if written {
		_, err = fmt.Fprintf(stdout, "accepted=%d skipped=%d written=true out=%s\n", len(accepted), len(skipped), cfg.OutPath)
	} else {
		_, err = fmt.Fprintf(stdout, "accepted=%d skipped=%d written=false\n", len(accepted), len(skipped))
	}
	return err
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.Emoji, "emoji", "", "Emoji to classify, separated by spaces or commas")
	fs.StringVar(&cfg.InputPath, "in", "", "File with emoji to classify (whitespace/comma separated, any number per line)")
	fs.StringVar(&cfg.TaxonomyPath, "taxonomy", "", "Existing extension file; its entries are kept and count as known")
	fs.StringVar(&cfg.OutPath, "out", cfg.OutPath, "Where to write the extension file (existing entries + new ones)")
	fs.StringVar(&cfg.Model, "model", cfg.Model, "OpenAI model to classify with")
	fs.StringVar(&cfg.APIKey, "api-key", "", "OpenAI API key (overrides OPENAI_API_KEY env var)")
	fs.IntVar(&cfg.BatchSize, "batch-size", cfg.BatchSize, "Emoji per model request")
	fs.BoolVar(&cfg.Overwrite, "overwrite", false, "Overwrite -out if it exists (a .bak copy is kept)")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Print proposals without writing a file")
	fs.BoolVar(&cfg.Verbose, "v", false, "Debug logging")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage:\n  %s [flags]\n\nFlags:\n", filepath.Base(os.Args[0]))
		fs.PrintDefaults()
		fmt.Fprintln(fs.Output(), "\nExample:")
		fmt.Fprintln(fs.Output(), "  go run ./cmd/emoji-classifier -emoji '🦄 🫡 🥶' -taxonomy config/emoji_extra.yaml -out config/emoji_extra.yaml -overwrite")
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.InputPath != "" {
		cfg.InputPath = filepath.Clean(cfg.InputPath)
	}
	if cfg.TaxonomyPath != "" {
		cfg.TaxonomyPath = filepath.Clean(cfg.TaxonomyPath)
	}
	if cfg.OutPath != "" {
		cfg.OutPath = filepath.Clean(cfg.OutPath)
	}
	return cfg, nil
}

func splitEmoji(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

func collectCandidates(inline, path string) ([]string, error) {
	out := splitEmoji(inline)
	if path == "" {
		return out, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open -in: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, splitEmoji(sc.Text())...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read -in: %w", err)
	}
	return out, nil
}

type emojiClassifier interface {
	Classify(ctx context.Context, emoji []string) ([]emojiProposal, error)
}

type emojiProposal struct {
	Emoji     string  `json:"emoji"`
	Sentiment string  `json:"sentiment"`
	Category  string  `json:"category"`
	Score     float64 `json:"score"`
	Name      string  `json:"name"`
}

type classifyRequest struct {
	Emoji []string `json:"emoji"`
}

type classifyResponse struct {
	Classifications []emojiProposal `json:"classifications"`
}

var classifySchema = provider.GenerateSchema[classifyResponse]()

type openAIEmojiClassifier struct {
	client *openai.Client
	model  string
}

func (c openAIEmojiClassifier) Classify(ctx context.Context, emoji []string) ([]emojiProposal, error) {
	if c.client == nil {
		return nil, errors.New("openAIEmojiClassifier: client is nil")
	}
	if c.model == "" {
		return nil, errors.New("openAIEmojiClassifier: model is empty")
	}

	payload, err := json.Marshal(classifyRequest{Emoji: emoji})
	if err != nil {
		return nil, err
	}

	input := []responses.ResponseInputItemUnionParam{
		responses.ResponseInputItemParamOfMessage(string(payload), responses.EasyInputMessageRoleUser),
	}
	params := responses.ResponseNewParams{
		Model:           c.model,
		MaxOutputTokens: openai.Int(4000),
		Instructions:    openai.String(classifyEmojiPrompt),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: input,
		},
		Text: responses.ResponseTextConfigParam{
			Format: provider.SchemaFormat("EmojiClassifications", "Reaction emoji classifications JSON", classifySchema),
		},
	}

	resp, err := provider.CallWithRetry(ctx, c.client, params)
	if err != nil {
		return nil, err
	}

	var out classifyResponse
	if err := provider.DecodeResponse(resp, &out); err != nil {
		return nil, err
	}
	return out.Classifications, nil
}

// classifyUnknown asks c about every candidate tax does not know yet and returns the proposals
// that pass taxonomy validation. Emoji without an acceptable proposal are returned as skipped.
func classifyUnknown(ctx context.Context, c emojiClassifier, tax *feedback.Taxonomy, candidates []string, batchSize int) ([]feedback.EmojiDefinition, []string, error) {
	var unknown []string
	seen := make(map[string]struct{}, len(candidates))
	for _, e := range candidates {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		if _, known := tax.Definition(e); known {
			log.Debug().Str("emoji", e).Msg("already classified")
			continue
		}
		unknown = append(unknown, e)
	}
	if len(unknown) == 0 {
		return nil, nil, nil
	}
	if batchSize <= 0 {
		batchSize = len(unknown)
	}

	var (
		accepted []feedback.EmojiDefinition
		skipped  []string
		cur      = tax
	)
	for i := 0; i < len(unknown); i += batchSize {
		batch := unknown[i:min(i+batchSize, len(unknown))]
		proposals, err := c.Classify(ctx, batch)
		if err != nil {
			return nil, nil, fmt.Errorf("classify batch %d: %w", i/batchSize+1, err)
		}

		byEmoji := make(map[string]emojiProposal, len(proposals))
		for _, p := range proposals {
			byEmoji[feedback.BaseEmoji(p.Emoji)] = p
		}
		for _, e := range batch {
			p, ok := byEmoji[feedback.BaseEmoji(e)]
			if !ok {
				log.Warn().Str("emoji", e).Msg("model returned no classification")
				skipped = append(skipped, e)
				continue
			}
			def, err := proposalToDefinition(e, p)
			if err == nil {
				var next *feedback.Taxonomy
				if next, err = cur.Extend([]feedback.EmojiDefinition{def}); err == nil {
					cur = next
				}
			}
			if err != nil {
				log.Warn().Err(err).Str("emoji", e).Msg("rejecting proposal")
				skipped = append(skipped, e)
				continue
			}
			accepted = append(accepted, def)
		}
	}
	return accepted, skipped, nil
}

// proposalToDefinition normalizes a model proposal: scores snap to 0.5 steps within range,
// and neutral entries are forced to 0.
func proposalToDefinition(emoji string, p emojiProposal) (feedback.EmojiDefinition, error) {
	sentiment, err := feedback.ParseSentiment(p.Sentiment)
	if err != nil {
		return feedback.EmojiDefinition{}, err
	}
	category, err := feedback.ParseCategory(p.Category)
	if err != nil {
		return feedback.EmojiDefinition{}, err
	}
	score := math.Round(p.Score*2) / 2
	score = math.Max(-feedback.MaxScore, math.Min(feedback.MaxScore, score))
	if sentiment == feedback.SentimentNeutral {
		score = 0
	}
	name := strings.ToLower(strings.TrimSpace(p.Name))
	if name == "" {
		name = emoji
	}
	def := feedback.EmojiDefinition{
		Emoji:     emoji,
		Sentiment: sentiment,
		Category:  category,
		Score:     score,
		Name:      name,
	}
	return def, def.Validate()
}

func writeExtension(cfg Config, existing, accepted []feedback.EmojiDefinition) error {
	if fileutils.FileExists(cfg.OutPath) {
		if !cfg.Overwrite {
			return fmt.Errorf("output exists (pass -overwrite): %s", cfg.OutPath)
		}
		if _, err := fileutils.BackupFile(cfg.OutPath); err != nil {
			return fmt.Errorf("backup %s: %w", cfg.OutPath, err)
		}
	}
	defs := make([]feedback.EmojiDefinition, 0, len(existing)+len(accepted))
	defs = append(defs, existing...)
	defs = append(defs, accepted...)
	return feedback.SaveTaxonomyFile(cfg.OutPath, defs)
}

func printDefinitions(w io.Writer, defs []feedback.EmojiDefinition) {
	for _, d := range defs {
		fmt.Fprintf(w, "%s sentiment=%s category=%s score=%.1f name=%q\n", d.Emoji, d.Sentiment, d.Category, d.Score, d.Name)
	}
}
