package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whisperengine-ai/whisperengine-v2-sub028/feedback"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_RecordAndTotals(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openTestStore(t)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	events := []feedback.ReactionEvent{
		{BotName: "Elena", UserID: "u1", MessageID: "m1", Emoji: "❤️", At: base},
		{BotName: "elena", UserID: "u1", MessageID: "m1", Emoji: "😂", At: base.Add(time.Second)},
		{BotName: "elena", UserID: "u1", MessageID: "m2", Emoji: "👎", At: base.Add(2 * time.Second)},
		{BotName: "elena", UserID: "u1", MessageID: "m2", Emoji: "🦄", At: base.Add(3 * time.Second)},
		{BotName: "elena", UserID: "u1", MessageID: "m1", Emoji: "😂", Removed: true, At: base.Add(4 * time.Second)},
		{BotName: "marcus", UserID: "u1", MessageID: "m3", Emoji: "🖕", At: base},
	}
	for _, ev := range events {
		id, err := s.Record(ctx, nil, ev)
		require.NoError(t, err)
		assert.NotEmpty(t, id)
	}

	tot, err := s.Totals(ctx, "ELENA", "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, tot.Events)
	assert.Equal(t, 1, tot.Positive)
	assert.Equal(t, 1, tot.Negative)
	assert.Equal(t, 1, tot.Neutral)
	assert.Equal(t, 0, tot.SimpleScore)
	assert.InDelta(t, feedback.ScoreExtreme-feedback.ScoreStandard, tot.WeightedScore, 1e-9)

	// Must match what the in-memory aggregation says for the same batch.
	want := feedback.Summarize(events[:5])
	assert.Equal(t, want.Total, tot.Events)
	assert.InDelta(t, want.WeightedScore, tot.WeightedScore, 1e-9)
	assert.Equal(t, want.SimpleScore, tot.SimpleScore)

	other, err := s.Totals(ctx, "marcus", "u1")
	require.NoError(t, err)
	assert.InDelta(t, -feedback.ScoreExtreme, other.WeightedScore, 1e-9)

	none, err := s.Totals(ctx, "nobody", "u9")
	require.NoError(t, err)
	assert.Equal(t, Totals{}, none)
}

func TestStore_EventsNewestFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openTestStore(t)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, emoji := range []string{"👍", "🎉", "🤔"} {
		_, err := s.Record(ctx, feedback.DefaultTaxonomy(), feedback.ReactionEvent{
			BotName: "elena", UserID: "u1", Emoji: emoji, At: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	evs, err := s.Events(ctx, "elena", "u1", 2)
	require.NoError(t, err)
	require.Len(t, evs, 2)
	assert.Equal(t, "🤔", evs[0].Emoji)
	assert.Equal(t, feedback.CategoryThinking, evs[0].Category)
	assert.Equal(t, "🎉", evs[1].Emoji)
	assert.Equal(t, feedback.SentimentPositive, evs[1].Sentiment)
	assert.True(t, evs[1].At.Equal(base.Add(time.Minute)))

	all, err := s.Events(ctx, "elena", "u1", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStore_RecordUsesGivenTaxonomy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openTestStore(t)
	tax, err := feedback.DefaultTaxonomy().Extend([]feedback.EmojiDefinition{
		{Emoji: "🦄", Sentiment: feedback.SentimentPositive, Category: feedback.CategoryAmazement, Score: 1, Name: "unicorn"},
	})
	require.NoError(t, err)

	_, err = s.Record(ctx, tax, feedback.ReactionEvent{BotName: "elena", UserID: "u1", Emoji: "🦄"})
	require.NoError(t, err)

	tot, err := s.Totals(ctx, "elena", "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, tot.Positive)
	assert.InDelta(t, 1.0, tot.WeightedScore, 1e-9)
}

func TestStore_RecordValidates(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	_, err := s.Record(context.Background(), nil, feedback.ReactionEvent{BotName: "elena", Emoji: "👍"})
	assert.Error(t, err)
	_, err = s.Record(context.Background(), nil, feedback.ReactionEvent{BotName: "elena", UserID: "u1"})
	assert.Error(t, err)
}

func TestOpen_FileIsPersistent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := filepath.Join(t.TempDir(), "data", "ledger.db")

	s, err := Open(ctx, p)
	require.NoError(t, err)
	_, err = s.Record(ctx, nil, feedback.ReactionEvent{BotName: "elena", UserID: "u1", Emoji: "🎉"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(ctx, p)
	require.NoError(t, err)
	defer s.Close()
	tot, err := s.Totals(ctx, "elena", "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, tot.Events)

	_, err = Open(ctx, "")
	assert.Error(t, err)
}
