package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/hiagosil/sistemalevelup/internal/storage"
)

// StreakTier is a named milestone within the streak challenge.
type StreakTier struct {
	Days  int
	Title string
}

// Streak milestone tiers in ascending day thresholds.
var StreakTiers = []StreakTier{
	{0, "Beginner"},
	{3, "Determined"},
	{7, "Warrior"},
	{14, "Disciplined"},
	{30, "Master"},
	{60, "Legendary"},
	{90, "Transcendent"},
	{365, "Immortal"},
}

// TierForDays returns the highest tier whose threshold is within days.
func TierForDays(days int) StreakTier {
	tier := StreakTiers[0]
	for _, t := range StreakTiers {
		if days >= t.Days {
			tier = t
		}
	}
	return tier
}

// NextStreakTier returns the first tier above days, or false at the top.
func NextStreakTier(days int) (StreakTier, bool) {
	for _, t := range StreakTiers {
		if days < t.Days {
			return t, true
		}
	}
	return StreakTier{}, false
}

// Elapsed returns the running duration of an active challenge; zero while
// inactive.
func Elapsed(c *storage.Challenge, now time.Time) time.Duration {
	if c == nil || !c.Active {
		return 0
	}
	d := now.Sub(c.StartTime)
	if d < 0 {
		return 0
	}
	return d
}

// ElapsedDays returns whole days elapsed since the challenge started.
func ElapsedDays(c *storage.Challenge, now time.Time) int {
	return int(Elapsed(c, now) / (24 * time.Hour))
}

// Challenge returns the stored streak challenge (inactive zero value when
// none exists).
func (s *Service) Challenge(ctx context.Context) (*storage.Challenge, error) {
	return s.challenges.Get(ctx)
}

// StartChallenge activates the streak challenge. Starting while already
// active is a no-op so a live streak cannot be zeroed by accident.
func (s *Service) StartChallenge(ctx context.Context) (*storage.Challenge, error) {
	c, err := s.challenges.Get(ctx)
	if err != nil {
		return nil, err
	}
	if c.Active {
		return c, nil
	}

	c.Active = true
	c.StartTime = s.clock.Now()
	if err := s.challenges.Save(ctx, c); err != nil {
		return nil, err
	}

	s.notify.Notify("🚀 Challenge Started",
		"Your self-discipline journey begins. Stay strong!", SeveritySuccess)
	return c, nil
}

// ResetChallenge is the punitive relapse action: elapsed progress is lost,
// folded into BestStreak only if it is a new record, and TotalResets grows.
// Resetting while inactive is a guarded no-op so repeated calls cannot
// double-increment TotalResets.
func (s *Service) ResetChallenge(ctx context.Context) (*storage.Challenge, int, error) {
	c, err := s.challenges.Get(ctx)
	if err != nil {
		return nil, 0, err
	}
	if !c.Active {
		return c, 0, nil
	}

	days := ElapsedDays(c, s.clock.Now())
	if days > c.BestStreak {
		c.BestStreak = days
	}
	c.Active = false
	c.StartTime = time.Time{}
	c.TotalResets++
	if err := s.challenges.Save(ctx, c); err != nil {
		return nil, 0, err
	}

	s.notify.Notify("💔 Relapse Detected",
		fmt.Sprintf("Your %d-day streak was lost. Don't give up!", days), SeverityDanger)
	return c, days, nil
}
