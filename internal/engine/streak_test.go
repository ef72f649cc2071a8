package engine

import (
	"context"
	"testing"
	"time"
)

func TestStreakResetFoldsIntoBest(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	if _, err := svc.StartChallenge(ctx); err != nil {
		t.Fatalf("StartChallenge: %v", err)
	}
	clock.advance(10 * 24 * time.Hour)

	c, days, err := svc.ResetChallenge(ctx)
	if err != nil {
		t.Fatalf("ResetChallenge: %v", err)
	}
	if days != 10 {
		t.Fatalf("lost days=%d, want 10", days)
	}
	if c.BestStreak != 10 || c.TotalResets != 1 {
		t.Fatalf("best=%d resets=%d, want 10/1", c.BestStreak, c.TotalResets)
	}
	if c.Active {
		t.Fatalf("challenge should be inactive after reset")
	}

	// A second reset without restarting must not double-increment.
	c2, days2, err := svc.ResetChallenge(ctx)
	if err != nil {
		t.Fatalf("second reset: %v", err)
	}
	if days2 != 0 || c2.TotalResets != 1 || c2.BestStreak != 10 {
		t.Fatalf("second reset mutated state: %+v (days=%d)", c2, days2)
	}
}

func TestStreakBestIsHistoricalMax(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	svcStartReset := func(days int) {
		if _, err := svc.StartChallenge(ctx); err != nil {
			t.Fatalf("start: %v", err)
		}
		clock.advance(time.Duration(days) * 24 * time.Hour)
		if _, _, err := svc.ResetChallenge(ctx); err != nil {
			t.Fatalf("reset: %v", err)
		}
	}

	svcStartReset(12)
	svcStartReset(5)

	c, err := svc.Challenge(ctx)
	if err != nil {
		t.Fatalf("Challenge: %v", err)
	}
	if c.BestStreak != 12 {
		t.Fatalf("best=%d, want 12 (shorter run must not lower it)", c.BestStreak)
	}
	if c.TotalResets != 2 {
		t.Fatalf("resets=%d, want 2", c.TotalResets)
	}
}

func TestStartWhileActiveIsNoOp(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	c1, err := svc.StartChallenge(ctx)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	started := c1.StartTime

	clock.advance(48 * time.Hour)
	c2, err := svc.StartChallenge(ctx)
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if !c2.StartTime.Equal(started) {
		t.Fatalf("start while active must not move StartTime")
	}
	if got := ElapsedDays(c2, clock.Now()); got != 2 {
		t.Fatalf("elapsed=%d, want 2", got)
	}
}

func TestElapsedDaysInactive(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	c, err := svc.Challenge(ctx)
	if err != nil {
		t.Fatalf("Challenge: %v", err)
	}
	if got := ElapsedDays(c, clock.Now()); got != 0 {
		t.Fatalf("elapsed while inactive=%d, want 0", got)
	}
}

func TestStreakTiers(t *testing.T) {
	cases := []struct {
		days int
		want string
	}{
		{0, "Beginner"},
		{2, "Beginner"},
		{3, "Determined"},
		{7, "Warrior"},
		{29, "Disciplined"},
		{30, "Master"},
		{90, "Transcendent"},
		{365, "Immortal"},
		{1000, "Immortal"},
	}
	for _, tc := range cases {
		if got := TierForDays(tc.days); got.Title != tc.want {
			t.Fatalf("TierForDays(%d)=%s, want %s", tc.days, got.Title, tc.want)
		}
	}

	next, ok := NextStreakTier(10)
	if !ok || next.Days != 14 {
		t.Fatalf("NextStreakTier(10)=%+v ok=%v, want 14-day tier", next, ok)
	}
	if _, ok := NextStreakTier(365); ok {
		t.Fatalf("no tier should exist above the top")
	}
}
