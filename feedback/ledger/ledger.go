// Package ledger persists reaction events and reports running feedback totals per
// (bot, user) pair.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/whisperengine-ai/whisperengine-v2-sub028/feedback"
)

// Store is a SQLite-backed reaction log.
type Store struct {
	db *sql.DB
}

// Event is a stored reaction with the classification it had when recorded.
type Event struct {
	ID        string
	BotName   string
	UserID    string
	MessageID string
	Emoji     string
	Sentiment feedback.Sentiment
	Category  feedback.Category
	Score     float64
	Removed   bool
	At        time.Time
}

// Totals are net counts and sums for one (bot, user) pair. Removed reactions subtract.
type Totals struct {
	Events        int
	Positive      int
	Negative      int
	Neutral       int
	WeightedScore float64
	SimpleScore   int
}

// Open opens (creating if needed) the ledger at path and applies the schema.
// Use ":memory:" for a throwaway store.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("ledger.Open: path is empty")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("ledger.Open: mkdir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("ledger.Open: open database: %w", err)
	}
	// Single connection: one writer, and ":memory:" would otherwise be per-connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ledger.Open: %w", err)
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	for _, pragma := range []string{"PRAGMA busy_timeout = 5000", "PRAGMA synchronous = NORMAL"} {
		if _, err := s.db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	for _, stmt := range strings.Split(schemaSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record classifies ev with tax and stores it. It returns the new event id.
func (s *Store) Record(ctx context.Context, tax *feedback.Taxonomy, ev feedback.ReactionEvent) (string, error) {
	if tax == nil {
		tax = feedback.DefaultTaxonomy()
	}
	bot := feedback.NormalizeBotName(ev.BotName)
	user := strings.TrimSpace(ev.UserID)
	emoji := strings.TrimSpace(ev.Emoji)
	if bot == "" || user == "" || emoji == "" {
		return "", fmt.Errorf("Record: bot, user and emoji are required (bot=%q user=%q emoji=%q)", ev.BotName, ev.UserID, ev.Emoji)
	}
	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}

	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO reaction_events (id, bot_name, user_id, message_id, emoji, sentiment, category, score, removed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, bot, user, strings.TrimSpace(ev.MessageID), emoji,
		string(tax.Sentiment(emoji)), string(tax.Category(emoji)), tax.Score(emoji),
		ev.Removed, at.UTC().UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("Record: insert: %w", err)
	}
	if _, known := tax.Definition(emoji); !known {
		log.Debug().Str("emoji", emoji).Str("bot", bot).Msg("recorded reaction with unclassified emoji")
	}
	return id, nil
}

// Totals returns net totals for one (bot, user) pair. Unknown pairs yield zero totals.
func (s *Store) Totals(ctx context.Context, botName, userID string) (Totals, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT sentiment, removed, COUNT(*), COALESCE(SUM(score), 0)
		   FROM reaction_events
		  WHERE bot_name = ? AND user_id = ?
		  GROUP BY sentiment, removed`,
		feedback.NormalizeBotName(botName), strings.TrimSpace(userID))
	if err != nil {
		return Totals{}, fmt.Errorf("Totals: query: %w", err)
	}
	defer rows.Close()

	var t Totals
	for rows.Next() {
		var (
			sentiment string
			removed   bool
			n         int
			sum       float64
		)
		if err := rows.Scan(&sentiment, &removed, &n, &sum); err != nil {
			return Totals{}, fmt.Errorf("Totals: scan: %w", err)
		}
		if removed {
			n, sum = -n, -sum
		}
		t.Events += n
		t.WeightedScore += sum
		switch feedback.Sentiment(sentiment) {
		case feedback.SentimentPositive:
			t.Positive += n
			t.SimpleScore += n
		case feedback.SentimentNegative:
			t.Negative += n
			t.SimpleScore -= n
		default:
			t.Neutral += n
		}
	}
	if err := rows.Err(); err != nil {
		return Totals{}, fmt.Errorf("Totals: rows: %w", err)
	}
	return t, nil
}

// Events returns up to limit events for the pair, newest first. limit <= 0 means no limit.
func (s *Store) Events(ctx context.Context, botName, userID string, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, bot_name, user_id, message_id, emoji, sentiment, category, score, removed, created_at
		   FROM reaction_events
		  WHERE bot_name = ? AND user_id = ?
		  ORDER BY created_at DESC, rowid DESC
		  LIMIT ?`,
		feedback.NormalizeBotName(botName), strings.TrimSpace(userID), limit)
	if err != nil {
		return nil, fmt.Errorf("Events: query: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var (
			e         Event
			sentiment string
			category  string
			at        int64
		)
		if err := rows.Scan(&e.ID, &e.BotName, &e.UserID, &e.MessageID, &e.Emoji, &sentiment, &category, &e.Score, &e.Removed, &at); err != nil {
			return nil, fmt.Errorf("Events: scan: %w", err)
		}
		e.Sentiment = feedback.Sentiment(sentiment)
		e.Category = feedback.Category(category)
		e.At = time.Unix(0, at).UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Events: rows: %w", err)
	}
	return out, nil
}
