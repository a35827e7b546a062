package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jheine/lernbox/internal/bank"
	"github.com/jheine/lernbox/internal/selection"
	"github.com/jheine/lernbox/internal/store"
)

var (
	// ErrNoSession is returned when an operation requires an active session.
	ErrNoSession = errors.New("no active session")
	// ErrNoQuestion is returned by Submit when no question is awaiting an answer.
	ErrNoQuestion = errors.New("no active question")
)

// Config describes one quiz run.
type Config struct {
	Mode   selection.Mode
	Filter bank.Filter
	Count  int
	// TimeLimit is a soft deadline checked when the next question is
	// requested. Zero disables it.
	TimeLimit time.Duration
}

// Result captures the outcome of one answered question.
type Result struct {
	QuestionID      string
	Correct         bool
	Answer          string
	CorrectAnswer   string
	Explanation     string
	SourceReference string
	TimeTaken       time.Duration
}

// Snapshot is a read-only view of a running session.
type Snapshot struct {
	Mode      selection.Mode
	Total     int
	Answered  int
	Correct   int
	Remaining int
	Elapsed   time.Duration
	TimeLimit time.Duration
}

// Summary aggregates a finished session.
type Summary struct {
	Mode            selection.Mode
	Topics          []string
	DurationMinutes int
	Total           int
	Answered        int
	Correct         int
	Accuracy        float64
	Results         []Result
}

// Session drives one quiz run from start to end. It selects a question
// queue, grades answers, writes per-question progress after every
// answer, and records an aggregate session row when it ends.
//
// A Session is not safe for concurrent use; it belongs to the single
// goroutine driving the quiz flow.
type Session struct {
	catalog  *bank.Catalog
	engine   *selection.Engine
	progress store.ProgressRepo
	sessions store.SessionRepo
	now      func() time.Time

	active    bool
	cfg       Config
	queue     []string
	total     int
	answered  int
	correct   int
	startedAt time.Time
	results   []Result

	current     *bank.Question
	currentFrom time.Time
}

// NewSession wires a session against the catalog and the progress store.
func NewSession(catalog *bank.Catalog, engine *selection.Engine, progress store.ProgressRepo, sessions store.SessionRepo) *Session {
	return &Session{
		catalog:  catalog,
		engine:   engine,
		progress: progress,
		sessions: sessions,
		now:      time.Now,
	}
}

// Start begins a new session. An already-active session is ended first
// so its partial results are persisted. The returned count is the
// number of questions selected; zero means the caller should end the
// session immediately.
func (s *Session) Start(ctx context.Context, cfg Config) (int, error) {
	if s.active {
		// Persist whatever the previous run accumulated. A failed
		// record must not block the new session.
		s.End(ctx)
	}

	ids, err := s.engine.Select(ctx, cfg.Mode, cfg.Filter, cfg.Count)
	if err != nil {
		return 0, fmt.Errorf("select questions: %w", err)
	}

	s.active = true
	s.cfg = cfg
	s.queue = ids
	s.total = len(ids)
	s.answered = 0
	s.correct = 0
	s.results = nil
	s.current = nil
	s.startedAt = s.now()
	return len(ids), nil
}

// NextQuestion pops the head of the queue and makes it the current
// question. It returns nil when no session is active, the queue is
// exhausted, or the configured time limit has elapsed. Identifiers
// that no longer resolve in the catalog are skipped silently.
func (s *Session) NextQuestion() *bank.Question {
	if !s.active {
		return nil
	}
	if s.cfg.TimeLimit > 0 && s.now().Sub(s.startedAt) > s.cfg.TimeLimit {
		return nil
	}
	for len(s.queue) > 0 {
		id := s.queue[0]
		s.queue = s.queue[1:]
		if q, ok := s.catalog.Get(id); ok {
			s.current = q
			s.currentFrom = s.now()
			return q
		}
	}
	return nil
}

// Submit grades the answer to the current question, appends the result
// to the session log, and writes the per-question progress update. The
// result is returned even when the progress write fails so the quiz
// can continue on a stale due-queue.
func (s *Session) Submit(ctx context.Context, answer string) (*Result, error) {
	if !s.active {
		return nil, ErrNoSession
	}
	if s.current == nil {
		return nil, ErrNoQuestion
	}

	q := s.current
	correct, correctAnswer := Evaluate(q, answer)
	res := Result{
		QuestionID:      q.ID,
		Correct:         correct,
		Answer:          answer,
		CorrectAnswer:   correctAnswer,
		Explanation:     q.Explanation,
		SourceReference: q.SourceReference,
		TimeTaken:       s.now().Sub(s.currentFrom),
	}
	s.results = append(s.results, res)
	s.answered++
	if correct {
		s.correct++
	}
	s.current = nil

	if err := s.progress.Update(ctx, q.ID, q.Topics, correct, s.now()); err != nil {
		return &res, fmt.Errorf("update progress: %w", err)
	}
	return &res, nil
}

// Progress reports the running session state, or false when idle.
func (s *Session) Progress() (Snapshot, bool) {
	if !s.active {
		return Snapshot{}, false
	}
	return Snapshot{
		Mode:      s.cfg.Mode,
		Total:     s.total,
		Answered:  s.answered,
		Correct:   s.correct,
		Remaining: len(s.queue),
		Elapsed:   s.now().Sub(s.startedAt),
		TimeLimit: s.cfg.TimeLimit,
	}, true
}

// Active reports whether a session is running.
func (s *Session) Active() bool {
	return s.active
}

// End closes the session, records the aggregate row, and returns the
// summary. When idle it returns (nil, nil), so calling End twice never
// writes a duplicate record. On a failed write the summary is still
// returned alongside the error and the session resets regardless.
func (s *Session) End(ctx context.Context) (*Summary, error) {
	if !s.active {
		return nil, nil
	}

	minutes := int(s.now().Sub(s.startedAt).Minutes())
	sum := &Summary{
		Mode:            s.cfg.Mode,
		Topics:          s.cfg.Filter.Topics,
		DurationMinutes: minutes,
		Total:           s.total,
		Answered:        s.answered,
		Correct:         s.correct,
		Results:         s.results,
	}
	if s.answered > 0 {
		sum.Accuracy = float64(s.correct) / float64(s.answered) * 100
	}

	err := s.sessions.Record(ctx, minutes, s.answered, s.correct, s.cfg.Filter.Topics)
	s.reset()
	if err != nil {
		return sum, fmt.Errorf("record session: %w", err)
	}
	return sum, nil
}

func (s *Session) reset() {
	s.active = false
	s.cfg = Config{}
	s.queue = nil
	s.total = 0
	s.answered = 0
	s.correct = 0
	s.results = nil
	s.current = nil
}
