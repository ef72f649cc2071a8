package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/hiagosil/sistemalevelup/internal/storage"
)

// testClock is a deterministic IdentityClock: sequential ids and a
// manually advanced now.
type testClock struct {
	now time.Time
	seq int
}

func (c *testClock) NewID() string {
	c.seq++
	return fmt.Sprintf("id-%04d", c.seq)
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestService(t *testing.T) (*Service, *testClock) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	db, err := storage.Open(ctx, filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	clock := &testClock{now: time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)}
	return NewServiceWith(db, clock, NopNotifier()), clock
}

func mustCreateHunter(t *testing.T, svc *Service) *storage.Hunter {
	t.Helper()
	h, err := svc.CreateHunter(context.Background(), "Jinwoo", 24, 70)
	if err != nil {
		t.Fatalf("CreateHunter: %v", err)
	}
	return h
}

func TestRankBoundaries(t *testing.T) {
	for i, r := range Ranks {
		req := RankRequirements[r]
		if got := RankForXP(req); got != r {
			t.Fatalf("RankForXP(%d)=%s, want %s", req, got, r)
		}
		if i > 0 {
			if got := RankForXP(req - 1); got != Ranks[i-1] {
				t.Fatalf("RankForXP(%d)=%s, want %s", req-1, got, Ranks[i-1])
			}
		}
	}
	if got := RankForXP(1_000_000); got != RankShadowMonarch {
		t.Fatalf("RankForXP(huge)=%s, want %s", got, RankShadowMonarch)
	}
}

func TestRankMonotonic(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 3000; xp += 25 {
		idx := 0
		for i, r := range Ranks {
			if RankForXP(xp) == r {
				idx = i
			}
		}
		if idx < prev {
			t.Fatalf("rank decreased at xp=%d", xp)
		}
		prev = idx
	}
}

func TestCreateHunterDefaults(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	h := mustCreateHunter(t, svc)
	if h.Level != 1 || h.XP != 0 || h.XPToNextLevel != 100 {
		t.Fatalf("unexpected progression defaults: %+v", h)
	}
	if h.Rank != string(RankE) {
		t.Fatalf("rank=%s, want E", h.Rank)
	}
	if h.Stats.Strength != 10 || h.Stats.Vitality != 10 || h.Stats.Agility != 10 ||
		h.Stats.Intelligence != 10 || h.Stats.Mana != 10 {
		t.Fatalf("stats not initialized to 10: %+v", h.Stats)
	}

	dp, err := svc.DailyRepo().Get(ctx)
	if err != nil {
		t.Fatalf("daily get: %v", err)
	}
	if dp == nil || len(dp.Missions) != 7 {
		t.Fatalf("expected a fresh 7-mission day, got %+v", dp)
	}
}

func TestCreateHunterValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateHunter(ctx, "  ", 24, 70); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if _, err := svc.CreateHunter(ctx, "Jinwoo", 0, 70); err == nil {
		t.Fatalf("expected error for zero age")
	}
	if _, err := svc.CreateHunter(ctx, "Jinwoo", 24, -1); err == nil {
		t.Fatalf("expected error for negative weight")
	}
	if h, _ := svc.HunterRepo().Get(ctx); h != nil {
		t.Fatalf("failed creation must not persist a hunter")
	}
}

func TestAwardXPLevelUp(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	h := mustCreateHunter(t, svc)

	res, err := svc.AwardXP(ctx, h, 100, StatStrength)
	if err != nil {
		t.Fatalf("AwardXP: %v", err)
	}
	if !res.LeveledUp {
		t.Fatalf("expected level up")
	}
	if h.Level != 2 || h.XPToNextLevel != 200 {
		t.Fatalf("level=%d next=%d, want 2/200", h.Level, h.XPToNextLevel)
	}
	if h.Stats.Strength != 20 {
		t.Fatalf("strength=%d, want 20 (10 + 100/10)", h.Stats.Strength)
	}
	if h.Rank != string(RankD) {
		t.Fatalf("rank=%s, want D at 100 xp", h.Rank)
	}

	stored, err := svc.HunterRepo().Get(ctx)
	if err != nil {
		t.Fatalf("get hunter: %v", err)
	}
	if stored.XP != 100 || stored.Level != 2 {
		t.Fatalf("award not persisted: %+v", stored)
	}
}

func TestLogoutClearsState(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	mustCreateHunter(t, svc)

	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if h, _ := svc.HunterRepo().Get(ctx); h != nil {
		t.Fatalf("hunter should be cleared")
	}
	if dp, _ := svc.DailyRepo().Get(ctx); dp != nil {
		t.Fatalf("daily progress should be cleared")
	}
}
