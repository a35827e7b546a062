// Package selection builds the ordered question queue for a quiz
// session. Four policies share the same contract: filter the catalog,
// produce at most count distinct question IDs from the filtered pool,
// and return an empty list (not an error) when the pool is empty.
package selection

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/jheine/lernbox/internal/bank"
	"github.com/jheine/lernbox/internal/store"
)

// Engine selects questions for a session.
type Engine struct {
	catalog  *bank.Catalog
	progress store.ProgressRepo
	rng      *rand.Rand
}

// New creates a selection engine over the catalog and progress store.
func New(catalog *bank.Catalog, progress store.ProgressRepo) *Engine {
	return &Engine{
		catalog:  catalog,
		progress: progress,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Select returns up to count question IDs for the given mode and
// filters. Unknown modes behave as ModeNormal.
func (e *Engine) Select(ctx context.Context, mode Mode, f bank.Filter, count int) ([]string, error) {
	if count <= 0 {
		return nil, nil
	}

	pool := e.catalog.Filter(f)
	if len(pool) == 0 {
		return nil, nil
	}

	switch mode {
	case ModeWeakSpots:
		return e.selectWeakSpots(ctx, pool, count)
	case ModeSpacedRepetition:
		return e.selectSpacedRepetition(ctx, pool, count)
	case ModeExam:
		return e.selectExam(pool, count), nil
	default:
		return e.selectNormal(pool, count), nil
	}
}

// selectNormal shuffles the filtered pool and truncates.
func (e *Engine) selectNormal(pool []*bank.Question, count int) []string {
	ids := questionIDs(pool)
	e.rng.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	return truncate(ids, count)
}

// selectWeakSpots orders the pool by success rate, lowest first.
// Never-attempted questions score 50. The sort is stable so ties keep
// the filtered-pool order.
func (e *Engine) selectWeakSpots(ctx context.Context, pool []*bank.Question, count int) ([]string, error) {
	progress, err := e.progress.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress for weak-spot selection: %w", err)
	}

	type scored struct {
		id    string
		score float64
	}
	candidates := make([]scored, len(pool))
	for i, q := range pool {
		score := 50.0
		if p, ok := progress[q.ID]; ok {
			if rate := p.SuccessRate(); rate >= 0 {
				score = rate
			}
		}
		candidates[i] = scored{id: q.ID, score: score}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score < candidates[j].score
	})

	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.id
	}
	return truncate(ids, count), nil
}

// selectSpacedRepetition intersects the due queue with the filtered
// pool, topping up with random pool questions when the intersection
// is too small, then shuffles the result.
func (e *Engine) selectSpacedRepetition(ctx context.Context, pool []*bank.Question, count int) ([]string, error) {
	// Oversample the due queue to tolerate filter mismatch.
	due, err := e.progress.Due(ctx, count*2, e.catalog.IDs(), time.Now())
	if err != nil {
		return nil, fmt.Errorf("load due questions: %w", err)
	}

	inPool := make(map[string]bool, len(pool))
	for _, q := range pool {
		inPool[q.ID] = true
	}

	var eligible []string
	chosen := make(map[string]bool)
	for _, id := range due {
		if inPool[id] && !chosen[id] {
			eligible = append(eligible, id)
			chosen[id] = true
		}
	}

	if len(eligible) < count {
		var remaining []string
		for _, q := range pool {
			if !chosen[q.ID] {
				remaining = append(remaining, q.ID)
			}
		}
		e.rng.Shuffle(len(remaining), func(i, j int) {
			remaining[i], remaining[j] = remaining[j], remaining[i]
		})
		need := count - len(eligible)
		if need > len(remaining) {
			need = len(remaining)
		}
		eligible = append(eligible, remaining[:need]...)
	}

	e.rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	return truncate(eligible, count), nil
}

// selectExam round-robins across topic groups so every topic in the
// pool is represented as evenly as the pool allows. A question tagged
// with N topics appears in N groups but is selected at most once.
func (e *Engine) selectExam(pool []*bank.Question, count int) []string {
	groups := make(map[string][]string)
	for _, q := range pool {
		for _, topic := range q.Topics {
			groups[topic] = append(groups[topic], q.ID)
		}
	}

	topics := make([]string, 0, len(groups))
	for t := range groups {
		topics = append(topics, t)
	}
	sort.Strings(topics)

	var selected []string
	chosen := make(map[string]bool)

	for len(selected) < count && len(topics) > 0 {
		var nextRound []string
		for _, topic := range topics {
			group := groups[topic]
			// Drop already-selected questions from the group.
			live := group[:0]
			for _, id := range group {
				if !chosen[id] {
					live = append(live, id)
				}
			}
			groups[topic] = live
			if len(live) == 0 {
				continue
			}

			pick := live[e.rng.Intn(len(live))]
			chosen[pick] = true
			selected = append(selected, pick)
			if len(selected) >= count {
				break
			}
			nextRound = append(nextRound, topic)
		}
		topics = nextRound
	}

	// Groups exhausted before reaching count: top off with random
	// unselected pool questions (covers untagged questions too).
	if len(selected) < count {
		var remaining []string
		for _, q := range pool {
			if !chosen[q.ID] {
				remaining = append(remaining, q.ID)
			}
		}
		e.rng.Shuffle(len(remaining), func(i, j int) {
			remaining[i], remaining[j] = remaining[j], remaining[i]
		})
		need := count - len(selected)
		if need > len(remaining) {
			need = len(remaining)
		}
		selected = append(selected, remaining[:need]...)
	}

	return selected
}

func questionIDs(pool []*bank.Question) []string {
	ids := make([]string, len(pool))
	for i, q := range pool {
		ids[i] = q.ID
	}
	return ids
}

func truncate(ids []string, count int) []string {
	if len(ids) > count {
		return ids[:count]
	}
	return ids
}
