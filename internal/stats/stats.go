// Package stats aggregates quiz history into report-friendly views.
package stats

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jheine/lernbox/internal/bank"
	"github.com/jheine/lernbox/internal/store"
)

// MasteredThreshold is the mastery percentage at which a topic counts
// as mastered.
const MasteredThreshold = 80.0

// Service computes statistics over the catalog and the progress store.
type Service struct {
	catalog  *bank.Catalog
	topics   store.TopicRepo
	sessions store.SessionRepo
	now      func() time.Time
}

// New builds a stats service over the given catalog and repositories.
func New(catalog *bank.Catalog, topics store.TopicRepo, sessions store.SessionRepo) *Service {
	return &Service{
		catalog:  catalog,
		topics:   topics,
		sessions: sessions,
		now:      time.Now,
	}
}

// Overview sums all recorded sessions and topic progress.
type Overview struct {
	TotalSessions     int
	QuestionsAnswered int
	CorrectAnswers    int
	Accuracy          float64
	MinutesSpent      int
	DifficultyCounts  map[string]int
	TopicCount        int
	MasteryByTopic    map[string]float64
	TopicsMastered    int
	LastSession       time.Time
}

// Overview aggregates the full session history and topic mastery.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	sessions, err := s.sessions.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	topics, err := s.topics.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	ov := &Overview{
		TotalSessions:    len(sessions),
		DifficultyCounts: make(map[string]int),
		MasteryByTopic:   make(map[string]float64, len(topics)),
		TopicCount:       len(topics),
	}
	for _, sess := range sessions {
		ov.QuestionsAnswered += sess.QuestionsAnswered
		ov.CorrectAnswers += sess.CorrectAnswers
		ov.MinutesSpent += sess.DurationMinutes
	}
	if ov.QuestionsAnswered > 0 {
		ov.Accuracy = float64(ov.CorrectAnswers) / float64(ov.QuestionsAnswered) * 100
	}
	if len(sessions) > 0 {
		// List returns newest first.
		ov.LastSession = sessions[0].Date
	}

	for _, q := range s.catalog.All() {
		diff := q.Difficulty
		if diff == "" {
			diff = "unspecified"
		}
		ov.DifficultyCounts[diff]++
	}

	for _, tp := range topics {
		ov.MasteryByTopic[tp.TopicName] = tp.MasteryPercentage
		if tp.MasteryPercentage >= MasteredThreshold {
			ov.TopicsMastered++
		}
	}
	return ov, nil
}

// TopicMastery maps each tracked topic to its mastery percentage.
func (s *Service) TopicMastery(ctx context.Context) (map[string]float64, error) {
	topics, err := s.topics.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	m := make(map[string]float64, len(topics))
	for _, tp := range topics {
		m[tp.TopicName] = tp.MasteryPercentage
	}
	return m, nil
}

// DailyPerformance sums one calendar day of sessions.
type DailyPerformance struct {
	Date      time.Time
	Questions int
	Correct   int
	Minutes   int
	Accuracy  float64
}

// RecentPerformance groups the last n days of sessions per calendar
// day, oldest first. Days without sessions are omitted.
func (s *Service) RecentPerformance(ctx context.Context, days int) ([]DailyPerformance, error) {
	sessions, err := s.sessions.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	cutoff := s.now().AddDate(0, 0, -days)
	byDay := make(map[time.Time]*DailyPerformance)
	for _, sess := range sessions {
		if sess.Date.Before(cutoff) {
			continue
		}
		day := midnight(sess.Date)
		dp := byDay[day]
		if dp == nil {
			dp = &DailyPerformance{Date: day}
			byDay[day] = dp
		}
		dp.Questions += sess.QuestionsAnswered
		dp.Correct += sess.CorrectAnswers
		dp.Minutes += sess.DurationMinutes
	}

	result := make([]DailyPerformance, 0, len(byDay))
	for _, dp := range byDay {
		if dp.Questions > 0 {
			dp.Accuracy = float64(dp.Correct) / float64(dp.Questions) * 100
		}
		result = append(result, *dp)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

// WeeklyProgress sums the sessions of the running week, Monday-based.
type WeeklyProgress struct {
	Questions int
	Correct   int
	Accuracy  float64
}

// Report bundles the views a progress report needs.
type Report struct {
	Overview *Overview
	Mastery  map[string]float64
	Recent   []DailyPerformance
	Weekly   WeeklyProgress
	History  []store.Session
}

// Report compiles the overview, the last 30 days, the current week,
// and the ten most recent sessions.
func (s *Service) Report(ctx context.Context) (*Report, error) {
	ov, err := s.Overview(ctx)
	if err != nil {
		return nil, err
	}
	mastery, err := s.TopicMastery(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.RecentPerformance(ctx, 30)
	if err != nil {
		return nil, err
	}
	history, err := s.sessions.List(ctx, 10)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	weekStart := weekStart(s.now())
	var weekly WeeklyProgress
	for _, sess := range history {
		if sess.Date.Before(weekStart) {
			continue
		}
		weekly.Questions += sess.QuestionsAnswered
		weekly.Correct += sess.CorrectAnswers
	}
	if weekly.Questions > 0 {
		weekly.Accuracy = float64(weekly.Correct) / float64(weekly.Questions) * 100
	}

	return &Report{
		Overview: ov,
		Mastery:  mastery,
		Recent:   recent,
		Weekly:   weekly,
		History:  history,
	}, nil
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// weekStart returns the Monday midnight opening the week of t.
func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return midnight(t.AddDate(0, 0, -offset))
}
