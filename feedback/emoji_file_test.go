package feedback

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadTaxonomyFile_RoundTrip(t *testing.T) {
	t.Parallel()

	defs := []EmojiDefinition{
		{Emoji: "🦄", Sentiment: SentimentPositive, Category: CategoryAmazement, Score: ScoreStandard, Name: "unicorn", Aliases: []string{":unicorn:"}},
		{Emoji: "🥶", Sentiment: SentimentNegative, Category: CategoryDisapproval, Score: -ScoreMild, Name: "cold face"},
		{Emoji: "🗿", Sentiment: SentimentNeutral, Category: CategoryMisc, Score: 0, Name: "moai"},
	}
	p := filepath.Join(t.TempDir(), "taxonomy", "extra.yaml")
	require.NoError(t, SaveTaxonomyFile(p, defs))

	got, err := LoadTaxonomyFile(p)
	require.NoError(t, err)
	assert.Equal(t, defs, got)

	tax, err := LoadTaxonomy(p)
	require.NoError(t, err)
	assert.Equal(t, DefaultTaxonomy().Len()+3, tax.Len())
	assert.Equal(t, -ScoreMild, tax.Score("🥶"))
	assert.Equal(t, CategoryAmazement, tax.Category(":unicorn:"))
}

func TestLoadTaxonomyFile_AcceptsJSON(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "extra.json")
	body := `{"version": 1, "emoji": [{"emoji": "🫡", "sentiment": "positive", "category": "support", "score": 0.5, "name": "saluting face"}]}`
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	got, err := LoadTaxonomyFile(p)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, CategorySupport, got[0].Category)
	assert.Equal(t, 0.5, got[0].Score)
}

func TestLoadTaxonomyFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := LoadTaxonomyFile("")
	assert.Error(t, err)

	_, err = LoadTaxonomyFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("version: 1\nemoji:\n  - emoji: \"🦄\"\n    sentiment: negative\n    category: misc\n    score: 1\n    name: unicorn\n"), 0o644))
	_, err = LoadTaxonomyFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disagrees")

	future := filepath.Join(dir, "future.yaml")
	require.NoError(t, os.WriteFile(future, []byte("version: 2\nemoji: []\n"), 0o644))
	_, err = LoadTaxonomyFile(future)
	assert.Error(t, err)

	clash := filepath.Join(dir, "clash.yaml")
	require.NoError(t, os.WriteFile(clash, []byte("version: 1\nemoji:\n  - emoji: \"😂\"\n    sentiment: positive\n    category: laughter\n    score: 1\n    name: again\n"), 0o644))
	_, err = LoadTaxonomyFile(clash)
	require.NoError(t, err)
	_, err = LoadTaxonomy(clash)
	assert.Error(t, err)
}

func TestLoadTaxonomy_EmptyPathIsDefault(t *testing.T) {
	t.Parallel()

	tax, err := LoadTaxonomy("")
	require.NoError(t, err)
	assert.Same(t, DefaultTaxonomy(), tax)
}
