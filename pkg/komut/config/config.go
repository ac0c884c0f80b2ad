package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kafkasder-portal/neww-sub003/pkg/komut/intent"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/internalerr"
)

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}

	return &sl, nil
}

// Intents represents extra intent rules
type Intents struct {
	Intents []IntentEntry `yaml:"intents"`
}

// IntentEntry is one configured rule. Phrases are regular expressions
// matched against the lowercased text.
type IntentEntry struct {
	Label          string   `yaml:"label"`
	Keywords       []string `yaml:"keywords"`
	Phrases        []string `yaml:"phrases"`
	BaseConfidence float64  `yaml:"baseConfidence"`
}

// LoadIntents loads intent rules from a YAML file and compiles their
// phrases. Unknown labels and invalid patterns fail with ErrInvalidConfig.
func LoadIntents(path string) ([]intent.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Intents
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}

	rules := make([]intent.Rule, 0, len(cfg.Intents))
	for _, e := range cfg.Intents {
		label, ok := intent.ParseLabel(strings.ToUpper(strings.TrimSpace(e.Label)))
		if !ok {
			return nil, fmt.Errorf("%w: unknown intent label %q", internalerr.ErrInvalidConfig, e.Label)
		}

		phrases := make([]*regexp.Regexp, 0, len(e.Phrases))
		for _, p := range e.Phrases {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("%w: intent %s phrase %q: %v", internalerr.ErrInvalidConfig, label, p, err)
			}
			phrases = append(phrases, re)
		}

		rules = append(rules, intent.Rule{
			Label:          label,
			Keywords:       e.Keywords,
			Phrases:        phrases,
			BaseConfidence: e.BaseConfidence,
		})
	}

	return rules, nil
}
