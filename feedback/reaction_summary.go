package feedback

import (
	"strings"
	"time"
)

// ReactionEvent is a single reaction added to (or removed from) a bot message.
type ReactionEvent struct {
	BotName   string    `json:"bot_name"`
	UserID    string    `json:"user_id"`
	MessageID string    `json:"message_id,omitempty"`
	Emoji     string    `json:"emoji"`
	Removed   bool      `json:"removed,omitempty"`
	At        time.Time `json:"at,omitempty"`
}

// FeedbackSummary aggregates a batch of reactions.
type FeedbackSummary struct {
	Total    int `json:"total"`
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
	Unknown  int `json:"unknown"`

	WeightedScore float64 `json:"weighted_score"`
	SimpleScore   int     `json:"simple_score"`

	Categories   map[Category]int `json:"categories,omitempty"`
	UnknownEmoji []string         `json:"unknown_emoji,omitempty"`
}

// MaxTrustDelta bounds a single TrustDelta adjustment.
const MaxTrustDelta = 5.0

// Summarize folds events into a FeedbackSummary. Removed reactions undo their contribution.
// Counts are net, so a group holding only removals can go negative. Unknown emoji count as
// neutral and are listed once each in UnknownEmoji, but only if they were added at least once.
func (t *Taxonomy) Summarize(events []ReactionEvent) FeedbackSummary {
	var s FeedbackSummary
	var unknown []string
	for _, ev := range events {
		emoji := strings.TrimSpace(ev.Emoji)
		if emoji == "" {
			continue
		}
		sign := 1
		if ev.Removed {
			sign = -1
		}

		def, known := t.Definition(emoji)
		if !known {
			def = EmojiDefinition{Emoji: emoji, Sentiment: SentimentNeutral, Category: CategoryMisc}
			s.Unknown += sign
			if !ev.Removed {
				unknown = append(unknown, emoji)
			}
		}

		s.Total += sign
		s.WeightedScore += float64(sign) * def.Score
		s.SimpleScore += sign * def.Sentiment.Sign()
		switch def.Sentiment {
		case SentimentPositive:
			s.Positive += sign
		case SentimentNegative:
			s.Negative += sign
		default:
			s.Neutral += sign
		}
		if s.Categories == nil {
			s.Categories = make(map[Category]int)
		}
		s.Categories[def.Category] += sign
		if s.Categories[def.Category] == 0 {
			delete(s.Categories, def.Category)
		}
	}
	s.UnknownEmoji = dedupeStrings(unknown)
	return s
}

// Summarize folds events using the default taxonomy.
func Summarize(events []ReactionEvent) FeedbackSummary {
	return DefaultTaxonomy().Summarize(events)
}

// TrustDelta scales a summary's weighted score into a relationship trust adjustment,
// clamped to ±MaxTrustDelta.
func TrustDelta(s FeedbackSummary, scale float64) float64 {
	d := s.WeightedScore * scale
	switch {
	case d > MaxTrustDelta:
		return MaxTrustDelta
	case d < -MaxTrustDelta:
		return -MaxTrustDelta
	}
	return d
}

// GroupKey identifies the (bot, user) pair a reaction belongs to.
type GroupKey struct {
	BotName string
	UserID  string
}

// GroupEvents splits events by (bot, user), preserving first-seen group order.
func GroupEvents(events []ReactionEvent) ([]GroupKey, map[GroupKey][]ReactionEvent) {
	var order []GroupKey
	groups := make(map[GroupKey][]ReactionEvent)
	for _, ev := range events {
		k := GroupKey{BotName: NormalizeBotName(ev.BotName), UserID: strings.TrimSpace(ev.UserID)}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], ev)
	}
	return order, groups
}

// NormalizeBotName lowercases and collapses whitespace to underscores so "Dream Bot" and
// "dream_bot" share a bucket.
func NormalizeBotName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Join(strings.Fields(name), "_")
}

func dedupeStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
