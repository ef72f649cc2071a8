package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hiagosil/sistemalevelup/internal/engine"
	"github.com/hiagosil/sistemalevelup/internal/ui"
)

func newStreakCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Show the self-discipline streak challenge",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			c, err := svc.Challenge(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconShield, "Streak Challenge"))
			if !c.Active {
				fmt.Fprintln(out, ui.Muted.Render("Challenge inactive. Start it with: sl streak start"))
			} else {
				now := svc.Clock().Now()
				days := engine.ElapsedDays(c, now)
				tier := engine.TierForDays(days)
				fmt.Fprintln(out, ui.LabelValue("Current streak", fmt.Sprintf("%s %s", formatElapsed(engine.Elapsed(c, now)), ui.Gold.Render(tier.Title))))
				if next, ok := engine.NextStreakTier(days); ok {
					fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("  next tier %q at %d days", next.Title, next.Days)))
				}
			}
			if c.BestStreak > 0 || c.TotalResets > 0 {
				fmt.Fprintln(out, ui.LabelValue("Best streak", fmt.Sprintf("%d days", c.BestStreak)))
				fmt.Fprintln(out, ui.LabelValue("Resets", c.TotalResets))
			}
			return nil
		},
	}

	cmd.AddCommand(newStreakStartCmd(), newStreakResetCmd())
	return cmd
}

func newStreakStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the streak challenge",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			c, err := svc.Challenge(ctx)
			if err != nil {
				return err
			}
			if c.Active {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Challenge already active."))
				return nil
			}
			if _, err := svc.StartChallenge(ctx); err != nil {
				return err
			}
			return nil
		},
	}
}

func newStreakResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Register a relapse (resets the streak)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			c, err := svc.Challenge(ctx)
			if err != nil {
				return err
			}
			if !c.Active {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No active challenge to reset."))
				return nil
			}
			_, days, err := svc.ResetChallenge(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Lost streak", fmt.Sprintf("%d days", days)))
			return nil
		},
	}
}

func formatElapsed(d time.Duration) string {
	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	minutes := int(d/time.Minute) % 60
	seconds := int(d/time.Second) % 60
	return fmt.Sprintf("%dd %02dh %02dm %02ds", days, hours, minutes, seconds)
}
