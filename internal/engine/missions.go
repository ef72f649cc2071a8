package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hiagosil/sistemalevelup/internal/storage"
)

type missionTemplate struct {
	title       string
	description string
	xpReward    int
	statReward  Stat
	icon        string
}

// The seven fixed daily missions, instantiated fresh each day.
var missionTemplates = []missionTemplate{
	{"Morning Awakening", "Wake up before 7:00", 50, StatVitality, "sunrise"},
	{"Physical Training", "30 min of exercise", 80, StatStrength, "dumbbell"},
	{"Healthy Meal", "Eat a nutritious meal", 60, StatVitality, "apple"},
	{"Reading", "Read for 30 minutes", 70, StatIntelligence, "book"},
	{"Meditation", "10 min of meditation", 65, StatMana, "brain"},
	{"Organization", "Tidy up your personal space", 55, StatAgility, "home"},
	{"Skill Development", "Study or practice a skill", 75, StatIntelligence, "target"},
}

// MissionResult reports the outcome of a mission completion. Changed is
// false when the mission was not found or already completed.
type MissionResult struct {
	Daily        *storage.DailyProgress
	Hunter       *storage.Hunter
	Mission      *storage.Mission
	Award        *AwardResult
	DayCompleted bool
	Changed      bool
}

func (s *Service) newDailyProgress(ctx context.Context, date string) (*storage.DailyProgress, error) {
	missions := make([]storage.Mission, 0, len(missionTemplates))
	for _, t := range missionTemplates {
		missions = append(missions, storage.Mission{
			ID:          s.clock.NewID(),
			Title:       t.title,
			Description: t.description,
			XPReward:    t.xpReward,
			StatReward:  string(t.statReward),
			Icon:        t.icon,
		})
	}
	dp := &storage.DailyProgress{Date: date, Missions: missions}
	if err := s.daily.Save(ctx, dp); err != nil {
		return nil, err
	}
	return dp, nil
}

// LoadOrRollover returns today's mission set, creating a fresh one when no
// record exists or the stored record belongs to another day. This lazy check
// is the sole rollover mechanism; there is no midnight timer.
func (s *Service) LoadOrRollover(ctx context.Context) (*storage.DailyProgress, error) {
	today := DateKey(s.clock.Now())
	dp, err := s.daily.Get(ctx)
	if err != nil {
		return nil, err
	}
	if dp != nil && dp.Date == today {
		return dp, nil
	}
	return s.newDailyProgress(ctx, today)
}

// CompleteMission marks a mission done, awards its XP, and fires the
// day-completion bonus when the last mission of the day lands. Unknown or
// already-completed missions are a silent no-op.
func (s *Service) CompleteMission(ctx context.Context, missionID string) (*MissionResult, error) {
	h, err := s.hunters.Get(ctx)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, errors.New("no hunter registered; run 'sl register' first")
	}
	dp, err := s.LoadOrRollover(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range dp.Missions {
		if dp.Missions[i].ID == missionID {
			idx = i
			break
		}
	}
	if idx < 0 || dp.Missions[idx].Completed {
		return &MissionResult{Daily: dp, Hunter: h}, nil
	}

	m := &dp.Missions[idx]
	m.Completed = true
	dp.XPGained += m.XPReward
	h.TotalMissionsCompleted++

	award, err := s.AwardXP(ctx, h, m.XPReward, ParseStat(m.StatReward))
	if err != nil {
		return nil, err
	}

	dayCompleted := false
	all := true
	for i := range dp.Missions {
		if !dp.Missions[i].Completed {
			all = false
			break
		}
	}
	if all && !dp.Completed {
		dp.Completed = true
		h.CompletedDays++
		dayCompleted = true
		if err := s.hunters.Save(ctx, h); err != nil {
			return nil, err
		}
	}
	if err := s.daily.Save(ctx, dp); err != nil {
		return nil, err
	}

	s.notify.Notify("✨ Mission Complete",
		fmt.Sprintf("+%d XP • +%d %s", award.XPAwarded, award.StatGained, strings.ToUpper(string(award.StatAwarded))),
		SeveritySuccess)
	if dayCompleted {
		s.notify.Notify("🎉 Day Complete", "All missions done! You are unstoppable!", SeveritySuccess)
	}
	if award.LeveledUp {
		s.notify.Notify("🔥 LEVEL UP", fmt.Sprintf("You reached level %d!", award.LevelAfter), SeveritySuccess)
	}

	return &MissionResult{
		Daily:        dp,
		Hunter:       h,
		Mission:      m,
		Award:        award,
		DayCompleted: dayCompleted,
		Changed:      true,
	}, nil
}
