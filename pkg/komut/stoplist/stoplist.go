package stoplist

import "sort"

// turkish is the built-in stopword set: conjunctions, particles, pronouns and
// postpositions that carry no command meaning on their own.
var turkish = []string{
	"acaba", "ama", "ancak", "bana", "bazı", "belki", "ben", "beni", "benim",
	"bile", "bir", "biri", "birkaç", "biz", "bize", "bizi", "bu", "buna",
	"bunu", "bunun", "çünkü", "da", "daha", "de", "diye", "en", "fakat",
	"gibi", "hem", "hep", "her", "hiç", "için", "ile", "ise", "kadar", "ki",
	"kim", "mı", "mi", "mu", "mü", "nasıl", "ne", "neden", "o", "olan",
	"olarak", "ona", "onu", "onun", "sen", "sana", "seni", "siz", "size",
	"sizi", "şey", "şu", "şuna", "şunu", "ve", "veya", "ya", "yani",
}

// Turkish returns a copy of the built-in Turkish stopword list.
func Turkish() []string {
	out := make([]string, len(turkish))
	copy(out, turkish)
	return out
}

// Manager holds a stopword set. It is built once and then only read;
// Add and Remove are meant for configuration time, not for use while
// tokenizers share the manager across goroutines.
type Manager struct {
	stops map[string]struct{}
}

// NewManager creates a manager seeded with the given stopwords.
func NewManager(initial []string) *Manager {
	stops := make(map[string]struct{}, len(initial))
	for _, s := range initial {
		stops[s] = struct{}{}
	}
	return &Manager{stops: stops}
}

// NewTurkish creates a manager seeded with Turkish() plus any extra terms.
func NewTurkish(extra ...string) *Manager {
	m := NewManager(turkish)
	for _, s := range extra {
		m.Add(s)
	}
	return m
}

// IsStop checks if a token is a stopword
func (m *Manager) IsStop(token string) bool {
	_, ok := m.stops[token]
	return ok
}

// Add adds a token to the stoplist
func (m *Manager) Add(token string) {
	if token == "" {
		return
	}
	m.stops[token] = struct{}{}
}

// Remove removes a token from the stoplist
func (m *Manager) Remove(token string) {
	delete(m.stops, token)
}

// All returns all stopwords, sorted.
func (m *Manager) All() []string {
	result := make([]string, 0, len(m.stops))
	for s := range m.stops {
		result = append(result, s)
	}
	sort.Strings(result)
	return result
}

// Len returns the number of stopwords.
func (m *Manager) Len() int {
	return len(m.stops)
}
