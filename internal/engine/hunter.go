package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hiagosil/sistemalevelup/internal/storage"
)

const (
	initialXPToNextLevel = 100
	initialStatValue     = 10
)

// AwardResult reports the outcome of an XP award.
type AwardResult struct {
	Hunter      *storage.Hunter
	XPAwarded   int
	StatAwarded Stat
	StatGained  int
	LevelBefore int
	LevelAfter  int
	LeveledUp   bool
	RankBefore  Rank
	RankAfter   Rank
	RankedUp    bool
}

// CreateHunter registers a new profile and rolls the first daily mission
// set. Range validation (age 13-100, weight 30-300) is the caller's
// responsibility; the store only requires a name and positive values.
func (s *Service) CreateHunter(ctx context.Context, name string, age, weight int) (*storage.Hunter, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	if age <= 0 {
		return nil, errors.New("age must be positive")
	}
	if weight <= 0 {
		return nil, errors.New("weight must be positive")
	}

	now := s.clock.Now()
	h := &storage.Hunter{
		ID:            s.clock.NewID(),
		Name:          name,
		Age:           age,
		Weight:        weight,
		Level:         1,
		XP:            0,
		XPToNextLevel: initialXPToNextLevel,
		Rank:          string(RankE),
		CreatedAt:     now,
		Stats: storage.Stats{
			Strength:     initialStatValue,
			Vitality:     initialStatValue,
			Agility:      initialStatValue,
			Intelligence: initialStatValue,
			Mana:         initialStatValue,
		},
	}
	if err := s.hunters.Save(ctx, h); err != nil {
		return nil, err
	}
	if _, err := s.newDailyProgress(ctx, DateKey(now)); err != nil {
		return nil, err
	}

	s.notify.Notify("⚔️ Hunter Registered",
		fmt.Sprintf("Welcome, %s! Your epic journey begins.", name), SeveritySuccess)
	return h, nil
}

// AwardXP adds XP to the hunter, grows the rewarded stat by a tenth of the
// amount, applies at most one level-up, recomputes rank, and persists.
func (s *Service) AwardXP(ctx context.Context, h *storage.Hunter, amount int, stat Stat) (*AwardResult, error) {
	if h == nil {
		return nil, errors.New("no hunter registered")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("xp amount must be positive, got %d", amount)
	}
	if !stat.IsValid() {
		stat = DefaultStat
	}

	levelBefore := h.Level
	rankBefore := Rank(h.Rank)

	h.XP += amount
	gained := amount / 10
	addStat(&h.Stats, stat, gained)

	leveledUp := false
	if h.XP >= h.XPToNextLevel {
		h.Level++
		h.XPToNextLevel = h.Level * 100
		leveledUp = true
	}
	h.Rank = string(RankForXP(h.XP))

	if err := s.hunters.Save(ctx, h); err != nil {
		return nil, err
	}

	return &AwardResult{
		Hunter:      h,
		XPAwarded:   amount,
		StatAwarded: stat,
		StatGained:  gained,
		LevelBefore: levelBefore,
		LevelAfter:  h.Level,
		LeveledUp:   leveledUp,
		RankBefore:  rankBefore,
		RankAfter:   Rank(h.Rank),
		RankedUp:    Rank(h.Rank) != rankBefore,
	}, nil
}

// Logout clears the hunter profile and its daily progress.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.hunters.Delete(ctx); err != nil {
		return err
	}
	return s.daily.Delete(ctx)
}

func addStat(st *storage.Stats, s Stat, n int) {
	switch s {
	case StatStrength:
		st.Strength += n
	case StatAgility:
		st.Agility += n
	case StatIntelligence:
		st.Intelligence += n
	case StatMana:
		st.Mana += n
	case StatVitality:
		fallthrough
	default:
		st.Vitality += n
	}
}

// ParseStat parses a stored stat key, falling back to DefaultStat.
func ParseStat(input string) Stat {
	s := Stat(strings.TrimSpace(strings.ToLower(input)))
	if s.IsValid() {
		return s
	}
	return DefaultStat
}
