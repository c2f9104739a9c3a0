package feedback

import (
	"fmt"
	"strings"
	"sync"
)

const variationSelector16 = "\ufe0f"

// Taxonomy is an immutable emoji classification table. All methods are safe for concurrent use.
type Taxonomy struct {
	defs  []EmojiDefinition
	index map[string]int
}

// NewTaxonomy validates defs and builds a lookup table. It fails on the first entry that
// violates a definition invariant, and on any key or alias that collides with another.
func NewTaxonomy(defs []EmojiDefinition) (*Taxonomy, error) {
	t := &Taxonomy{
		defs:  make([]EmojiDefinition, 0, len(defs)),
		index: make(map[string]int, len(defs)*2),
	}
	for _, d := range defs {
		if err := t.add(d); err != nil {
			return nil, fmt.Errorf("NewTaxonomy: %w", err)
		}
	}
	return t, nil
}

// MustNewTaxonomy is like NewTaxonomy but panics on invalid data.
func MustNewTaxonomy(defs []EmojiDefinition) *Taxonomy {
	t, err := NewTaxonomy(defs)
	if err != nil {
		panic(err)
	}
	return t
}

var defaultTaxonomy = sync.OnceValue(func() *Taxonomy {
	return MustNewTaxonomy(builtinEmoji)
})

// DefaultTaxonomy returns the built-in table. It is constructed on first use.
func DefaultTaxonomy() *Taxonomy {
	return defaultTaxonomy()
}

func (t *Taxonomy) add(d EmojiDefinition) error {
	d.Emoji = strings.TrimSpace(d.Emoji)
	if err := d.Validate(); err != nil {
		return err
	}

	aliases := make([]string, 0, len(d.Aliases))
	for _, a := range d.Aliases {
		a = strings.TrimSpace(a)
		if a == "" || a == d.Emoji {
			continue
		}
		aliases = append(aliases, a)
	}
	d.Aliases = aliases

	pos := len(t.defs)
	keys := append([]string{d.Emoji}, aliases...)
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			return fmt.Errorf("%s: alias %q listed twice", d.Emoji, k)
		}
		seen[k] = struct{}{}
		if i, ok := t.index[k]; ok {
			return fmt.Errorf("duplicate emoji %q (%s collides with %s)", k, d.Emoji, t.defs[i].Emoji)
		}
	}
	for _, k := range keys {
		t.index[k] = pos
	}
	t.defs = append(t.defs, d)
	return nil
}

// Extend returns a new taxonomy holding the receiver's entries followed by defs.
// The receiver is left untouched.
func (t *Taxonomy) Extend(defs []EmojiDefinition) (*Taxonomy, error) {
	out := &Taxonomy{
		defs:  make([]EmojiDefinition, len(t.defs), len(t.defs)+len(defs)),
		index: make(map[string]int, len(t.index)+len(defs)*2),
	}
	copy(out.defs, t.defs)
	for k, v := range t.index {
		out.index[k] = v
	}
	for _, d := range defs {
		if err := out.add(d); err != nil {
			return nil, fmt.Errorf("Extend: %w", err)
		}
	}
	return out, nil
}

// Definition looks up an emoji by key or alias. Unknown emoji report ok=false.
// A trailing U+FE0F variation selector is ignored when matching.
func (t *Taxonomy) Definition(emoji string) (EmojiDefinition, bool) {
	emoji = strings.TrimSpace(emoji)
	if emoji == "" {
		return EmojiDefinition{}, false
	}
	if i, ok := t.index[emoji]; ok {
		return t.defs[i], true
	}
	alt := emoji + variationSelector16
	if bare, found := strings.CutSuffix(emoji, variationSelector16); found {
		alt = bare
	}
	if i, ok := t.index[alt]; ok {
		return t.defs[i], true
	}
	return EmojiDefinition{}, false
}

// BaseEmoji trims spaces and a trailing U+FE0F, giving the form Definition matches both ways on.
func BaseEmoji(emoji string) string {
	return strings.TrimSuffix(strings.TrimSpace(emoji), variationSelector16)
}

// Sentiment returns the emoji's sentiment, or SentimentNeutral when unknown.
func (t *Taxonomy) Sentiment(emoji string) Sentiment {
	if d, ok := t.Definition(emoji); ok {
		return d.Sentiment
	}
	return SentimentNeutral
}

// Category returns the emoji's category, or CategoryMisc when unknown.
func (t *Taxonomy) Category(emoji string) Category {
	if d, ok := t.Definition(emoji); ok {
		return d.Category
	}
	return CategoryMisc
}

// Score returns the weighted score, or 0 when unknown.
func (t *Taxonomy) Score(emoji string) float64 {
	if d, ok := t.Definition(emoji); ok {
		return d.Score
	}
	return 0
}

func (t *Taxonomy) IsPositive(emoji string) bool { return t.Sentiment(emoji) == SentimentPositive }
func (t *Taxonomy) IsNegative(emoji string) bool { return t.Sentiment(emoji) == SentimentNegative }
func (t *Taxonomy) IsNeutral(emoji string) bool  { return t.Sentiment(emoji) == SentimentNeutral }

// SimpleScore projects the sentiment onto -1/0/+1. It is a compatibility shim for
// call sites that still aggregate integer reaction scores; new code should use Score.
func (t *Taxonomy) SimpleScore(emoji string) int {
	return t.Sentiment(emoji).Sign()
}

func (t *Taxonomy) Positive() []string { return t.bySentiment(SentimentPositive) }
func (t *Taxonomy) Negative() []string { return t.bySentiment(SentimentNegative) }
func (t *Taxonomy) Neutral() []string  { return t.bySentiment(SentimentNeutral) }

func (t *Taxonomy) bySentiment(s Sentiment) []string {
	var out []string
	for _, d := range t.defs {
		if d.Sentiment == s {
			out = append(out, d.Emoji)
		}
	}
	return out
}

// Stats counts entries per sentiment.
func (t *Taxonomy) Stats() Stats {
	st := Stats{Total: len(t.defs)}
	for _, d := range t.defs {
		switch d.Sentiment {
		case SentimentPositive:
			st.Positive++
		case SentimentNegative:
			st.Negative++
		default:
			st.Neutral++
		}
	}
	return st
}

// Len returns the number of entries (aliases excluded).
func (t *Taxonomy) Len() int { return len(t.defs) }

// Definitions returns a copy of all entries in table order.
func (t *Taxonomy) Definitions() []EmojiDefinition {
	out := make([]EmojiDefinition, len(t.defs))
	for i, d := range t.defs {
		d.Aliases = append([]string(nil), d.Aliases...)
		out[i] = d
	}
	return out
}

// Package-level helpers backed by DefaultTaxonomy.

func GetDefinition(emoji string) (EmojiDefinition, bool) { return DefaultTaxonomy().Definition(emoji) }
func GetSentiment(emoji string) Sentiment                { return DefaultTaxonomy().Sentiment(emoji) }
func GetCategory(emoji string) Category                  { return DefaultTaxonomy().Category(emoji) }
func GetScore(emoji string) float64                      { return DefaultTaxonomy().Score(emoji) }
func IsPositive(emoji string) bool                       { return DefaultTaxonomy().IsPositive(emoji) }
func IsNegative(emoji string) bool                       { return DefaultTaxonomy().IsNegative(emoji) }
func IsNeutral(emoji string) bool                        { return DefaultTaxonomy().IsNeutral(emoji) }
func ListPositive() []string                             { return DefaultTaxonomy().Positive() }
func ListNegative() []string                             { return DefaultTaxonomy().Negative() }
func ListNeutral() []string                              { return DefaultTaxonomy().Neutral() }
func GetStats() Stats                                    { return DefaultTaxonomy().Stats() }

// GetSimpleScore is the -1/0/+1 compatibility projection against the default table.
func GetSimpleScore(emoji string) int { return DefaultTaxonomy().SimpleScore(emoji) }
