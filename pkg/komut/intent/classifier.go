package intent

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/kafkasder-portal/neww-sub003/pkg/komut/turkish"
)

// Scoring weights.
const (
	KeywordWeight = 0.3
	PhraseWeight  = 0.5
)

// Rule scores one label: every keyword contained in the lowercased text adds
// KeywordWeight, every matching phrase adds PhraseWeight, and the sum is
// multiplied by BaseConfidence.
type Rule struct {
	Label          Label
	Keywords       []string
	Phrases        []*regexp.Regexp
	BaseConfidence float64
}

// Score is the traceable score of one label for one text.
type Score struct {
	Label           Label    `json:"label"`
	Score           float64  `json:"score"`
	MatchedKeywords []string `json:"matchedKeywords"`
	MatchedPhrases  []string `json:"matchedPhrases"`
}

// Classifier is an immutable rule table. It is safe for concurrent use.
type Classifier struct {
	rules []Rule
}

// NewClassifier builds a classifier over rules, evaluated in the given order.
func NewClassifier(rules []Rule) *Classifier {
	copied := make([]Rule, len(rules))
	copy(copied, rules)
	return &Classifier{rules: copied}
}

// Default returns a classifier over DefaultRules.
func Default() *Classifier {
	return defaultClassifier
}

// Rules returns a copy of the rule table.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Recognize classifies text with the default rule table.
func Recognize(text string) Classification {
	return defaultClassifier.Classify(text)
}

// Scores evaluates every rule and returns the labels that scored above zero,
// highest first. Equal scores keep table order.
func (c *Classifier) Scores(text string) []Score {
	lowered := turkish.Lower(text)

	var scores []Score
	for _, r := range c.rules {
		s := Score{Label: r.Label, MatchedKeywords: []string{}, MatchedPhrases: []string{}}
		raw := 0.0
		for _, kw := range r.Keywords {
			if kw != "" && strings.Contains(lowered, kw) {
				raw += KeywordWeight
				s.MatchedKeywords = append(s.MatchedKeywords, kw)
			}
		}
		for _, p := range r.Phrases {
			if p.MatchString(lowered) {
				raw += PhraseWeight
				s.MatchedPhrases = append(s.MatchedPhrases, p.String())
			}
		}
		s.Score = raw * r.BaseConfidence
		if s.Score > 0 {
			scores = append(scores, s)
		}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores
}

// Classify picks the best scoring label as primary and lists the rest as
// alternatives. With no score the result is UNKNOWN at UnknownConfidence.
func (c *Classifier) Classify(text string) Classification {
	scores := c.Scores(text)
	if len(scores) == 0 {
		return UnknownClassification()
	}

	out := Classification{
		Primary:      scores[0].Label,
		Confidence:   Clamp(scores[0].Score),
		Alternatives: make([]Alternative, 0, len(scores)-1),
	}
	for _, s := range scores[1:] {
		if s.Label == out.Primary {
			continue
		}
		out.Alternatives = append(out.Alternatives, Alternative{
			Intent:     s.Label,
			Confidence: Clamp(s.Score),
		})
	}
	return out
}

// Extend returns a new classifier where each extra rule is merged into the
// existing rule with the same label (keywords and phrases appended, base
// confidence replaced when non-zero) or appended as a new rule.
func (c *Classifier) Extend(extra []Rule) (*Classifier, error) {
	rules := c.Rules()
	for _, e := range extra {
		if _, ok := ParseLabel(string(e.Label)); !ok || e.Label == Unknown {
			return nil, fmt.Errorf("intent rule: unsupported label %q", e.Label)
		}
		if e.BaseConfidence < 0 || e.BaseConfidence > 1 {
			return nil, fmt.Errorf("intent rule %s: base confidence %.2f out of [0,1]", e.Label, e.BaseConfidence)
		}
		merged := false
		for i := range rules {
			if rules[i].Label != e.Label {
				continue
			}
			r := rules[i]
			r.Keywords = append(append([]string{}, r.Keywords...), lowerAll(e.Keywords)...)
			r.Phrases = append(append([]*regexp.Regexp{}, r.Phrases...), e.Phrases...)
			if e.BaseConfidence > 0 {
				r.BaseConfidence = e.BaseConfidence
			}
			rules[i] = r
			merged = true
			break
		}
		if !merged {
			if e.BaseConfidence == 0 {
				return nil, fmt.Errorf("intent rule %s: base confidence required", e.Label)
			}
			e.Keywords = lowerAll(e.Keywords)
			rules = append(rules, e)
		}
	}
	return NewClassifier(rules), nil
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = turkish.Lower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
