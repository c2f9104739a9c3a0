package feedback

import (
	"fmt"
	"strings"
)

// Sentiment is the coarse polarity of a reaction emoji.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Sign returns +1, -1 or 0 for positive, negative and neutral sentiments.
func (s Sentiment) Sign() int {
	switch s {
	case SentimentPositive:
		return 1
	case SentimentNegative:
		return -1
	default:
		return 0
	}
}

func (s Sentiment) valid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// ParseSentiment parses a sentiment name case-insensitively.
func ParseSentiment(s string) (Sentiment, error) {
	v := Sentiment(strings.ToLower(strings.TrimSpace(s)))
	if !v.valid() {
		return "", fmt.Errorf("unknown sentiment %q", s)
	}
	return v, nil
}

// Category is a finer-grained semantic grouping used for analytics independent of polarity.
type Category string

const (
	CategoryLove           Category = "love"
	CategoryLaughter       Category = "laughter"
	CategoryCelebration    Category = "celebration"
	CategoryApproval       Category = "approval"
	CategoryAmazement      Category = "amazement"
	CategorySupport        Category = "support"
	CategoryGratitude      Category = "gratitude"
	CategoryCool           Category = "cool"
	CategoryDisapproval    Category = "disapproval"
	CategorySadness        Category = "sadness"
	CategoryAnger          Category = "anger"
	CategoryDisgust        Category = "disgust"
	CategoryDisappointment Category = "disappointment"
	CategoryThinking       Category = "thinking"
	CategorySurprise       Category = "surprise"
	CategoryInformational  Category = "informational"
	CategoryMisc           Category = "misc"
)

// Categories lists every known category in declaration order.
var Categories = []Category{
	CategoryLove,
	CategoryLaughter,
	CategoryCelebration,
	CategoryApproval,
	CategoryAmazement,
	CategorySupport,
	CategoryGratitude,
	CategoryCool,
	CategoryDisapproval,
	CategorySadness,
	CategoryAnger,
	CategoryDisgust,
	CategoryDisappointment,
	CategoryThinking,
	CategorySurprise,
	CategoryInformational,
	CategoryMisc,
}

func (c Category) valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory parses a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	v := Category(strings.ToLower(strings.TrimSpace(s)))
	if !v.valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return v, nil
}

// Score magnitudes used by the built-in table.
const (
	ScoreMild     = 0.5
	ScoreStandard = 1.0
	ScoreStrong   = 1.5
	ScoreExtreme  = 2.0

	MaxScore = ScoreExtreme
)

// EmojiDefinition describes one reaction emoji.
type EmojiDefinition struct {
	Emoji     string    `json:"emoji" yaml:"emoji"`
	Sentiment Sentiment `json:"sentiment" yaml:"sentiment"`
	Category  Category  `json:"category" yaml:"category"`
	Score     float64   `json:"score" yaml:"score"`
	Name      string    `json:"name" yaml:"name"`
	Aliases   []string  `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// Validate checks the entry's own invariants. Uniqueness is checked by NewTaxonomy.
func (d EmojiDefinition) Validate() error {
	if strings.TrimSpace(d.Emoji) == "" {
		return fmt.Errorf("empty emoji key (name=%q)", d.Name)
	}
	if !d.Sentiment.valid() {
		return fmt.Errorf("%s: unknown sentiment %q", d.Emoji, d.Sentiment)
	}
	if !d.Category.valid() {
		return fmt.Errorf("%s: unknown category %q", d.Emoji, d.Category)
	}
	// NaN fails both comparisons.
	if !(d.Score >= -MaxScore && d.Score <= MaxScore) {
		return fmt.Errorf("%s: score %v outside [-%v, %v]", d.Emoji, d.Score, MaxScore, MaxScore)
	}
	if scoreSign(d.Score) != d.Sentiment.Sign() {
		return fmt.Errorf("%s: score %v disagrees with sentiment %s", d.Emoji, d.Score, d.Sentiment)
	}
	return nil
}

func scoreSign(f float64) int {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}

// Stats counts taxonomy entries per sentiment bucket.
type Stats struct {
	Total    int `json:"total"`
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}
