package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hiagosil/sistemalevelup/internal/engine"
	"github.com/hiagosil/sistemalevelup/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show hunter level, rank, stats, and derived XP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			h, err := svc.HunterRepo().Get(ctx)
			if err != nil {
				return err
			}
			if h == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No hunter registered yet. Run: sl register <name> -a <age> -w <weight>"))
				return nil
			}

			out := cmd.OutOrStdout()
			rank := engine.Rank(h.Rank)

			fmt.Fprintln(out, ui.Heading(ui.IconSword, "Hunter "+h.Name))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d  %s %d/%d XP", h.Level, ui.XPBar(h.XP, h.XPToNextLevel, 20), h.XP, h.XPToNextLevel)))
			fmt.Fprintln(out, ui.LabelValue("Rank", fmt.Sprintf("%s %s", ui.RankStyle(h.Rank).Render(h.Rank), ui.Muted.Render("("+rank.DisplayName()+")"))))
			if next, ok := engine.NextRank(rank); ok {
				toGo := engine.RankRequirements[next] - h.XP
				if toGo < 0 {
					toGo = 0
				}
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("  next rank %s at %d XP (%d to go)", next, engine.RankRequirements[next], toGo)))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Stats"))
			fmt.Fprintf(out, "- 💪 STR: %d\n", h.Stats.Strength)
			fmt.Fprintf(out, "- ❤️ VIT: %d\n", h.Stats.Vitality)
			fmt.Fprintf(out, "- 🏃 AGI: %d\n", h.Stats.Agility)
			fmt.Fprintf(out, "- 🧠 INT: %d\n", h.Stats.Intelligence)
			fmt.Fprintf(out, "- 🔮 MANA: %d\n", h.Stats.Mana)
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.LabelValue("Days completed", h.CompletedDays))
			fmt.Fprintln(out, ui.LabelValue("Missions completed", h.TotalMissionsCompleted))

			room, err := svc.Room(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.LabelValue("Hunter room XP", engine.RoomXP(room)))

			c, err := svc.Challenge(ctx)
			if err != nil {
				return err
			}
			if c.Active {
				days := engine.ElapsedDays(c, svc.Clock().Now())
				tier := engine.TierForDays(days)
				fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%d days (%s)", days, tier.Title)))
			} else if c.BestStreak > 0 || c.TotalResets > 0 {
				fmt.Fprintln(out, ui.LabelValue("Streak", ui.Muted.Render(fmt.Sprintf("inactive (best %d days)", c.BestStreak))))
			}
			return nil
		},
	}

	return cmd
}
