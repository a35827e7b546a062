package schedule

import (
	"testing"
	"time"
)

func TestNextReviewIntervalTable(t *testing.T) {
	last := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	now := last

	want := []int{1, 2, 4, 7, 14, 30}
	for level, days := range want {
		got := NextReview(level, last, now)
		expect := last.AddDate(0, 0, days)
		if !got.Equal(expect) {
			t.Errorf("NextReview(%d) = %v, want %v", level, got, expect)
		}
	}
}

func TestNextReviewClampsHighLevel(t *testing.T) {
	last := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	got := NextReview(9, last, last)
	want := last.AddDate(0, 0, 30)
	if !got.Equal(want) {
		t.Errorf("NextReview(9) = %v, want level-5 interval %v", got, want)
	}
}

func TestNextReviewClampsNegativeLevel(t *testing.T) {
	last := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	got := NextReview(-3, last, last)
	want := last.AddDate(0, 0, 1)
	if !got.Equal(want) {
		t.Errorf("NextReview(-3) = %v, want level-0 interval %v", got, want)
	}
}

func TestNextReviewZeroLastFallsBackToNow(t *testing.T) {
	now := time.Date(2025, 6, 15, 8, 30, 0, 0, time.UTC)
	got := NextReview(2, time.Time{}, now)
	want := now.AddDate(0, 0, 4)
	if !got.Equal(want) {
		t.Errorf("NextReview with zero last = %v, want %v", got, want)
	}
}

func TestNextLevelIncrementsAndCaps(t *testing.T) {
	level := 0
	for i := 0; i < 10; i++ {
		level = NextLevel(level, true)
		if level > MaxLevel {
			t.Fatalf("level exceeded cap: %d", level)
		}
	}
	if level != MaxLevel {
		t.Errorf("level after 10 correct = %d, want %d", level, MaxLevel)
	}
}

func TestNextLevelDecrementsAndFloors(t *testing.T) {
	level := MaxLevel
	for i := 0; i < 10; i++ {
		level = NextLevel(level, false)
		if level < 0 {
			t.Fatalf("level went negative: %d", level)
		}
	}
	if level != 0 {
		t.Errorf("level after 10 wrong = %d, want 0", level)
	}
}

func TestInitialLevelAsymmetry(t *testing.T) {
	if got := InitialLevel(true); got != 1 {
		t.Errorf("InitialLevel(correct) = %d, want 1", got)
	}
	if got := InitialLevel(false); got != 0 {
		t.Errorf("InitialLevel(wrong) = %d, want 0", got)
	}
}
