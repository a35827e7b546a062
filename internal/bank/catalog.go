package bank

import (
	"sort"
	"strings"
	"sync"
)

// Catalog is the in-memory question index. Safe for concurrent use;
// mutation happens only through Add (import) and Replace (full
// reload).
type Catalog struct {
	mu        sync.RWMutex
	questions map[string]*Question
	order     []string // insertion order, for deterministic filtering
	topics    map[string]struct{}
	sources   map[string]struct{}
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		questions: make(map[string]*Question),
		topics:    make(map[string]struct{}),
		sources:   make(map[string]struct{}),
	}
}

// Add inserts the questions of one bank file into the catalog.
// Questions with an ID already present are replaced in place.
func (c *Catalog) Add(file *BankFile, source string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if source != "" {
		c.sources[source] = struct{}{}
	}
	for i := range file.Questions {
		q := &file.Questions[i]
		if q.ID == "" {
			continue
		}
		if _, exists := c.questions[q.ID]; !exists {
			c.order = append(c.order, q.ID)
		}
		c.questions[q.ID] = q
		for _, topic := range q.Topics {
			c.topics[topic] = struct{}{}
		}
	}
}

// Replace swaps the catalog contents for a freshly loaded set.
func (c *Catalog) Replace(other *Catalog) {
	other.mu.RLock()
	defer other.mu.RUnlock()
	c.mu.Lock()
	defer c.mu.Unlock()

	c.questions = other.questions
	c.order = other.order
	c.topics = other.topics
	c.sources = other.sources
}

// Len returns the number of questions in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.questions)
}

// Get returns the question with the given ID.
func (c *Catalog) Get(id string) (*Question, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	q, ok := c.questions[id]
	return q, ok
}

// All returns every question in insertion order.
func (c *Catalog) All() []*Question {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Question, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.questions[id])
	}
	return out
}

// IDs returns every question ID in insertion order.
func (c *Catalog) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Topics returns all distinct topic tags, sorted.
func (c *Catalog) Topics() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.topics))
	for t := range c.topics {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Sources returns all distinct bank sources, sorted.
func (c *Catalog) Sources() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.sources))
	for s := range c.sources {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// TopicCounts returns the number of catalog questions per topic tag.
// Feeds the topic-progress reconciliation in the store.
func (c *Catalog) TopicCounts() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	counts := make(map[string]int, len(c.topics))
	for _, q := range c.questions {
		for _, t := range q.Topics {
			counts[t]++
		}
	}
	return counts
}

// SubjectScripts returns every distinct (subject, script) pair found
// in source references, in unspecified order.
func (c *Catalog) SubjectScripts() [][2]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seen := make(map[[2]string]struct{})
	var out [][2]string
	for _, id := range c.order {
		subject, script := SplitSourceReference(c.questions[id].SourceReference)
		if subject == "" {
			continue
		}
		pair := [2]string{subject, script}
		if _, dup := seen[pair]; dup {
			continue
		}
		seen[pair] = struct{}{}
		out = append(out, pair)
	}
	return out
}

// Filter selects questions matching every non-empty criterion.
type Filter struct {
	// Topics matches questions carrying at least one of the listed
	// tags. Empty means no topic restriction.
	Topics []string

	// Difficulty is matched through the synonym table.
	Difficulty string

	// Source matches by substring against the source reference.
	Source string

	// Subject and Script match exactly against the parsed source
	// reference parts.
	Subject string
	Script  string

	// Type restricts to one question variant.
	Type QuestionType
}

// Filter returns the matching questions in catalog insertion order.
// An empty filter returns the whole catalog.
func (c *Catalog) Filter(f Filter) []*Question {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []*Question
	for _, id := range c.order {
		q := c.questions[id]
		if !matches(q, f) {
			continue
		}
		out = append(out, q)
	}
	return out
}

func matches(q *Question, f Filter) bool {
	if len(f.Topics) > 0 {
		found := false
		for _, t := range f.Topics {
			if q.HasTopic(t) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if !MatchesDifficulty(q.Difficulty, f.Difficulty) {
		return false
	}
	if f.Type != "" && q.Type != f.Type {
		return false
	}
	if f.Source != "" && !strings.Contains(q.SourceReference, f.Source) {
		return false
	}
	if f.Subject != "" || f.Script != "" {
		subject, script := SplitSourceReference(q.SourceReference)
		if f.Subject != "" && subject != f.Subject {
			return false
		}
		if f.Script != "" && script != f.Script {
			return false
		}
	}
	return true
}
