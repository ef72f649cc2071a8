package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/hiagosil/sistemalevelup/internal/storage"
)

// XP values for hunter-room activity, recomputed from collection sizes on
// every read so the derived total can never drift.
const (
	xpPerStrength      = 10
	xpPerWeakness      = 10
	xpPerGoal          = 25
	xpPerCompletedGoal = 50
	xpPerReport        = 100
)

// Room returns the hunter room journal (empty room when none is stored).
func (s *Service) Room(ctx context.Context) (*storage.HunterRoom, error) {
	return s.rooms.Get(ctx)
}

func (s *Service) AddStrength(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errors.New("strength text is required")
	}
	room, err := s.rooms.Get(ctx)
	if err != nil {
		return err
	}
	room.Strengths = append(room.Strengths, text)
	if err := s.rooms.Save(ctx, room); err != nil {
		return err
	}
	s.notify.Notify("💪 Strength Recorded", "The System acknowledges your growth", SeveritySuccess)
	return nil
}

func (s *Service) RemoveStrength(ctx context.Context, index int) error {
	room, err := s.rooms.Get(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(room.Strengths) {
		return nil
	}
	room.Strengths = append(room.Strengths[:index], room.Strengths[index+1:]...)
	return s.rooms.Save(ctx, room)
}

func (s *Service) AddWeakness(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errors.New("weakness text is required")
	}
	room, err := s.rooms.Get(ctx)
	if err != nil {
		return err
	}
	room.Weaknesses = append(room.Weaknesses, text)
	if err := s.rooms.Save(ctx, room); err != nil {
		return err
	}
	s.notify.Notify("🎯 Weakness Identified",
		"Recognizing limits is the first step to overcoming them", SeverityInfo)
	return nil
}

func (s *Service) RemoveWeakness(ctx context.Context, index int) error {
	room, err := s.rooms.Get(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(room.Weaknesses) {
		return nil
	}
	room.Weaknesses = append(room.Weaknesses[:index], room.Weaknesses[index+1:]...)
	return s.rooms.Save(ctx, room)
}

func (s *Service) CreateGoal(ctx context.Context, title, description string, typ GoalType) (*storage.Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title is required")
	}
	if !typ.IsValid() {
		return nil, fmt.Errorf("invalid goal type: %q", typ)
	}
	room, err := s.rooms.Get(ctx)
	if err != nil {
		return nil, err
	}
	g := storage.Goal{
		ID:          s.clock.NewID(),
		Title:       title,
		Description: strings.TrimSpace(description),
		Type:        string(typ),
		Status:      string(GoalInProgress),
		CreatedAt:   s.clock.Now(),
	}
	room.Goals = append(room.Goals, g)
	if err := s.rooms.Save(ctx, room); err != nil {
		return nil, err
	}
	s.notify.Notify("🎯 New Goal Set",
		"A new destination was traced. The System recorded your ambition.", SeveritySuccess)
	return &g, nil
}

// UpdateGoalStatus transitions a goal. Transitions are deliberately
// unrestricted (an abandoned goal may still be completed). CompletedAt is
// stamped on completion and cleared otherwise. Unknown ids are a silent
// no-op.
func (s *Service) UpdateGoalStatus(ctx context.Context, id string, status GoalStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid goal status: %q", status)
	}
	room, err := s.rooms.Get(ctx)
	if err != nil {
		return err
	}
	for i := range room.Goals {
		if room.Goals[i].ID != id {
			continue
		}
		room.Goals[i].Status = string(status)
		if status == GoalCompleted {
			now := s.clock.Now()
			room.Goals[i].CompletedAt = &now
		} else {
			room.Goals[i].CompletedAt = nil
		}
		if err := s.rooms.Save(ctx, room); err != nil {
			return err
		}
		if status == GoalCompleted {
			s.notify.Notify("🏆 Goal Completed",
				"Your progress and failures were analyzed. Use them as weapons.", SeveritySuccess)
		}
		return nil
	}
	return nil
}

func (s *Service) DeleteGoal(ctx context.Context, id string) error {
	room, err := s.rooms.Get(ctx)
	if err != nil {
		return err
	}
	for i := range room.Goals {
		if room.Goals[i].ID != id {
			continue
		}
		room.Goals = append(room.Goals[:i], room.Goals[i+1:]...)
		return s.rooms.Save(ctx, room)
	}
	return nil
}

// GenerateWeeklyReport creates at most one report per week key. Calling it
// again within the same week returns the existing report unchanged.
func (s *Service) GenerateWeeklyReport(ctx context.Context) (*storage.WeeklyReport, bool, error) {
	room, err := s.rooms.Get(ctx)
	if err != nil {
		return nil, false, err
	}
	week := WeekKey(s.clock.Now())
	for i := range room.WeeklyReports {
		if room.WeeklyReports[i].Week == week {
			s.notify.Notify("📊 Report Already Exists",
				"This week's report was already generated", SeverityInfo)
			return &room.WeeklyReports[i], false, nil
		}
	}

	completed := 0
	for _, g := range room.Goals {
		if g.Status == string(GoalCompleted) {
			completed++
		}
	}
	rate := 0
	if len(room.Goals) > 0 {
		rate = int(math.Round(100 * float64(completed) / float64(len(room.Goals))))
	}

	report := storage.WeeklyReport{
		ID:                    s.clock.NewID(),
		Week:                  week,
		MissionCompletionRate: rate,
		ProductivityPeaks:     []string{"Morning (8am-10am)", "Afternoon (2pm-4pm)"},
		Recommendations: []string{
			"Keep up the discipline on your goals",
			"Consider reviewing long-term goals",
			"Dedicate more time to weekly reflection",
		},
		CreatedAt: s.clock.Now(),
	}
	room.WeeklyReports = append(room.WeeklyReports, report)
	if err := s.rooms.Save(ctx, room); err != nil {
		return nil, false, err
	}

	s.notify.Notify("📈 Weekly Report Generated",
		"The System recorded your evolution. You are stronger than seven days ago.", SeveritySuccess)
	return &report, true, nil
}

// RoomXP is the derived hunter-room XP total. It has no stored counterpart.
func RoomXP(room *storage.HunterRoom) int {
	if room == nil {
		return 0
	}
	completed := 0
	for _, g := range room.Goals {
		if g.Status == string(GoalCompleted) {
			completed++
		}
	}
	return len(room.Strengths)*xpPerStrength +
		len(room.Weaknesses)*xpPerWeakness +
		len(room.Goals)*xpPerGoal +
		completed*xpPerCompletedGoal +
		len(room.WeeklyReports)*xpPerReport
}
