package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hiagosil/sistemalevelup/internal/ui"
)

func newMissionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "missions",
		Short: "List today's daily missions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			dp, err := svc.LoadOrRollover(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTarget, "Daily Missions — "+dp.Date))
			for i, m := range dp.Missions {
				status := ui.Warn.Render("pending")
				if m.Completed {
					status = ui.Good.Render("done")
				}
				fmt.Fprintf(out, "%2d. %s %s %s\n", i+1, ui.MissionIcon(m.Icon), m.Title, status)
				fmt.Fprintf(out, "    %s\n", ui.Muted.Render(fmt.Sprintf("%s • +%d XP • %s", m.Description, m.XPReward, m.StatReward)))
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.LabelValue("XP gained today", dp.XPGained))
			if dp.Completed {
				fmt.Fprintln(out, ui.Good.Render(ui.IconTrophy+" Day complete!"))
			}
			return nil
		},
	}

	return cmd
}
