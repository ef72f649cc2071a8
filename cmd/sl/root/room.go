package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hiagosil/sistemalevelup/internal/engine"
	"github.com/hiagosil/sistemalevelup/internal/storage"
	"github.com/hiagosil/sistemalevelup/internal/ui"
)

func newRoomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room",
		Short: "Hunter room: strengths, weaknesses, goals, weekly reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			room, err := svc.Room(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCrown, "Hunter Room"))
			fmt.Fprintln(out, ui.LabelValue("Room XP", engine.RoomXP(room)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("💪 Strengths"))
			printIndexed(cmd, room.Strengths)
			fmt.Fprintln(out, ui.H2.Render("🎯 Weaknesses"))
			printIndexed(cmd, room.Weaknesses)

			fmt.Fprintln(out, ui.H2.Render("🏁 Goals"))
			if len(room.Goals) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("  (none)"))
			}
			for _, g := range room.Goals {
				fmt.Fprintf(out, "  %s %s %s %s\n",
					ui.Muted.Render(shortID(g.ID)),
					goalStatusText(g.Status),
					g.Title,
					ui.Muted.Render("("+g.Type+")"))
			}

			fmt.Fprintln(out, ui.H2.Render("📈 Weekly Reports"))
			if len(room.WeeklyReports) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("  (none)"))
			}
			for _, r := range room.WeeklyReports {
				fmt.Fprintf(out, "  week of %s • goal completion %d%%\n", r.Week, r.MissionCompletionRate)
			}
			return nil
		},
	}

	cmd.AddCommand(
		newRoomStrengthCmd(),
		newRoomWeaknessCmd(),
		newRoomGoalCmd(),
		newRoomReportCmd(),
	)
	return cmd
}

func printIndexed(cmd *cobra.Command, items []string) {
	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintln(out, ui.Muted.Render("  (none)"))
		return
	}
	for i, item := range items {
		fmt.Fprintf(out, "  %d. %s\n", i+1, item)
	}
}

func goalStatusText(status string) string {
	switch status {
	case string(engine.GoalCompleted):
		return ui.Good.Render("done")
	case string(engine.GoalAbandoned):
		return ui.Bad.Render("abandoned")
	default:
		return ui.Warn.Render("progress")
	}
}

func newRoomStrengthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strength",
		Short: "Manage strengths",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <text>",
			Short: "Record a strength",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				defer cleanup()
				return svc.AddStrength(ctx, strings.Join(args, " "))
			},
		},
		&cobra.Command{
			Use:   "rm <position>",
			Short: "Remove a strength by position",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				index, err := strconv.Atoi(args[0])
				if err != nil {
					return errors.New("position must be an integer")
				}
				ctx := context.Background()
				svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				defer cleanup()
				return svc.RemoveStrength(ctx, index-1)
			},
		},
	)
	return cmd
}

func newRoomWeaknessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weakness",
		Short: "Manage weaknesses",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <text>",
			Short: "Record a weakness",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				defer cleanup()
				return svc.AddWeakness(ctx, strings.Join(args, " "))
			},
		},
		&cobra.Command{
			Use:   "rm <position>",
			Short: "Remove a weakness by position",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				index, err := strconv.Atoi(args[0])
				if err != nil {
					return errors.New("position must be an integer")
				}
				ctx := context.Background()
				svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				defer cleanup()
				return svc.RemoveWeakness(ctx, index-1)
			},
		},
	)
	return cmd
}

func newRoomGoalCmd() *cobra.Command {
	var description string
	var goalType string

	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Set a new goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			g, err := svc.CreateGoal(ctx, args[0], description, engine.GoalType(goalType))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("id: "+shortID(g.ID)))
			return nil
		},
	}
	addCmd.Flags().StringVarP(&description, "desc", "d", "", "Goal description")
	addCmd.Flags().StringVarP(&goalType, "type", "t", "short", "Goal type (short|medium|long)")

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals",
	}
	cmd.AddCommand(
		addCmd,
		newGoalStatusCmd("done", "Mark a goal completed", engine.GoalCompleted),
		newGoalStatusCmd("abandon", "Abandon a goal", engine.GoalAbandoned),
		newGoalStatusCmd("resume", "Put a goal back in progress", engine.GoalInProgress),
		&cobra.Command{
			Use:   "rm <id>",
			Short: "Delete a goal",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				defer cleanup()
				g, err := resolveGoal(ctx, svc, args[0])
				if err != nil {
					return err
				}
				return svc.DeleteGoal(ctx, g.ID)
			},
		},
	)
	return cmd
}

func newGoalStatusCmd(use, short string, status engine.GoalStatus) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()
			g, err := resolveGoal(ctx, svc, args[0])
			if err != nil {
				return err
			}
			return svc.UpdateGoalStatus(ctx, g.ID, status)
		},
	}
}

func newRoomReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Generate (or show) this week's report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			report, _, err := svc.GenerateWeeklyReport(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconChart, "Weekly Report — week of "+report.Week))
			fmt.Fprintln(out, ui.LabelValue("Goal completion", fmt.Sprintf("%d%%", report.MissionCompletionRate)))
			fmt.Fprintln(out, ui.H2.Render("Productivity peaks"))
			for _, p := range report.ProductivityPeaks {
				fmt.Fprintf(out, "- %s\n", p)
			}
			fmt.Fprintln(out, ui.H2.Render("Recommendations"))
			for _, r := range report.Recommendations {
				fmt.Fprintf(out, "- %s\n", r)
			}
			return nil
		},
	}
}

// resolveGoal matches a full id or a unique id prefix.
func resolveGoal(ctx context.Context, svc *engine.Service, ref string) (*storage.Goal, error) {
	room, err := svc.Room(ctx)
	if err != nil {
		return nil, err
	}
	var match *storage.Goal
	for i := range room.Goals {
		if room.Goals[i].ID == ref {
			return &room.Goals[i], nil
		}
		if strings.HasPrefix(room.Goals[i].ID, ref) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous goal id %q", ref)
			}
			match = &room.Goals[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("goal %q not found", ref)
	}
	return match, nil
}
