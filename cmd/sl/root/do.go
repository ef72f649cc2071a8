package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hiagosil/sistemalevelup/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <mission#>",
		Short: "Complete one of today's missions",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("mission number is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("mission number must be an integer (see 'sl missions')")
			}
			return nil
		},
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
			n, _ := strconv.Atoi(args[0])
			if n < 1 || n > len(dp.Missions) {
				return fmt.Errorf("mission number out of range (1-%d)", len(dp.Missions))
			}

			res, err := svc.CompleteMission(ctx, dp.Missions[n-1].ID)
			if err != nil {
				return err
			}
			if !res.Changed {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Mission already completed."))
				return nil
			}

			out := cmd.OutOrStdout()
			if res.Award.LeveledUp {
				fmt.Fprintf(out, "%s %s\n", ui.BadgeLevelUp, ui.LabelValue("Level", fmt.Sprintf("%d → %d", res.Award.LevelBefore, res.Award.LevelAfter)))
			}
			if res.Award.RankedUp {
				fmt.Fprintf(out, "%s %s\n", ui.BadgeRankUp, ui.RankStyle(string(res.Award.RankAfter)).Render(string(res.Award.RankAfter)))
			}
			return nil
		},
	}

	return cmd
}
