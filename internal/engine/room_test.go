package engine

import (
	"context"
	"testing"
	"time"
)

func TestWeeklyReportIdempotent(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	g, err := svc.CreateGoal(ctx, "train daily", "never skip", GoalShort)
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if err := svc.UpdateGoalStatus(ctx, g.ID, GoalCompleted); err != nil {
		t.Fatalf("UpdateGoalStatus: %v", err)
	}

	first, created, err := svc.GenerateWeeklyReport(ctx)
	if err != nil {
		t.Fatalf("GenerateWeeklyReport: %v", err)
	}
	if !created {
		t.Fatalf("first call should create a report")
	}
	if first.MissionCompletionRate != 100 {
		t.Fatalf("completionRate=%d, want 100", first.MissionCompletionRate)
	}

	// Next day, same week: must return the same report.
	clock.advance(24 * time.Hour)
	second, created, err := svc.GenerateWeeklyReport(ctx)
	if err != nil {
		t.Fatalf("second GenerateWeeklyReport: %v", err)
	}
	if created {
		t.Fatalf("second call must not create a duplicate")
	}
	if second.ID != first.ID {
		t.Fatalf("report identity changed: %s != %s", second.ID, first.ID)
	}

	room, _ := svc.Room(ctx)
	if len(room.WeeklyReports) != 1 {
		t.Fatalf("report count=%d, want 1", len(room.WeeklyReports))
	}
}

func TestWeeklyReportNoGoals(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	report, created, err := svc.GenerateWeeklyReport(ctx)
	if err != nil {
		t.Fatalf("GenerateWeeklyReport: %v", err)
	}
	if !created || report.MissionCompletionRate != 0 {
		t.Fatalf("rate=%d created=%v, want 0/true", report.MissionCompletionRate, created)
	}
}

func TestRoomXPFormula(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, s := range []string{"discipline", "focus"} {
		if err := svc.AddStrength(ctx, s); err != nil {
			t.Fatalf("AddStrength: %v", err)
		}
	}
	if err := svc.AddWeakness(ctx, "procrastination"); err != nil {
		t.Fatalf("AddWeakness: %v", err)
	}
	g1, err := svc.CreateGoal(ctx, "read 12 books", "", GoalLong)
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if _, err := svc.CreateGoal(ctx, "morning runs", "", GoalShort); err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if err := svc.UpdateGoalStatus(ctx, g1.ID, GoalCompleted); err != nil {
		t.Fatalf("UpdateGoalStatus: %v", err)
	}
	if _, _, err := svc.GenerateWeeklyReport(ctx); err != nil {
		t.Fatalf("GenerateWeeklyReport: %v", err)
	}

	room, err := svc.Room(ctx)
	if err != nil {
		t.Fatalf("Room: %v", err)
	}
	// 2*10 + 1*10 + 2*25 + 1*50 + 1*100
	if got := RoomXP(room); got != 230 {
		t.Fatalf("RoomXP=%d, want 230", got)
	}
}

func TestGoalStatusTransitionsUnrestricted(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	g, err := svc.CreateGoal(ctx, "master shadow exchange", "", GoalMedium)
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}

	if err := svc.UpdateGoalStatus(ctx, g.ID, GoalAbandoned); err != nil {
		t.Fatalf("abandon: %v", err)
	}
	// An abandoned goal may still be completed.
	if err := svc.UpdateGoalStatus(ctx, g.ID, GoalCompleted); err != nil {
		t.Fatalf("complete after abandon: %v", err)
	}
	room, _ := svc.Room(ctx)
	if room.Goals[0].Status != string(GoalCompleted) || room.Goals[0].CompletedAt == nil {
		t.Fatalf("completedAt not stamped: %+v", room.Goals[0])
	}

	if err := svc.UpdateGoalStatus(ctx, g.ID, GoalInProgress); err != nil {
		t.Fatalf("resume: %v", err)
	}
	room, _ = svc.Room(ctx)
	if room.Goals[0].CompletedAt != nil {
		t.Fatalf("completedAt should clear when leaving completed")
	}
}

func TestRemoveByPositionOutOfRangeNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.AddStrength(ctx, "willpower"); err != nil {
		t.Fatalf("AddStrength: %v", err)
	}
	if err := svc.RemoveStrength(ctx, 5); err != nil {
		t.Fatalf("out-of-range remove must be silent: %v", err)
	}
	if err := svc.RemoveWeakness(ctx, 0); err != nil {
		t.Fatalf("remove from empty list must be silent: %v", err)
	}
	room, _ := svc.Room(ctx)
	if len(room.Strengths) != 1 {
		t.Fatalf("strengths changed by no-op remove")
	}
}

func TestDeleteGoal(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	g, err := svc.CreateGoal(ctx, "temp", "", GoalShort)
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if err := svc.DeleteGoal(ctx, g.ID); err != nil {
		t.Fatalf("DeleteGoal: %v", err)
	}
	if err := svc.DeleteGoal(ctx, "missing"); err != nil {
		t.Fatalf("delete unknown must be silent: %v", err)
	}
	room, _ := svc.Room(ctx)
	if len(room.Goals) != 0 {
		t.Fatalf("goal not deleted")
	}
}

func TestWeekKeySundayStart(t *testing.T) {
	// 2024-03-04 is a Monday; its week key is Sunday 2024-03-03.
	monday := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	if got := WeekKey(monday); got != "2024-03-03" {
		t.Fatalf("WeekKey(monday)=%s, want 2024-03-03", got)
	}
	sunday := time.Date(2024, 3, 3, 23, 0, 0, 0, time.UTC)
	if got := WeekKey(sunday); got != "2024-03-03" {
		t.Fatalf("WeekKey(sunday)=%s, want 2024-03-03", got)
	}
	saturday := time.Date(2024, 3, 9, 1, 0, 0, 0, time.UTC)
	if got := WeekKey(saturday); got != "2024-03-03" {
		t.Fatalf("WeekKey(saturday)=%s, want 2024-03-03", got)
	}
}
