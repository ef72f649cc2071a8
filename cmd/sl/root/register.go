package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hiagosil/sistemalevelup/internal/ui"
)

func newRegisterCmd() *cobra.Command {
	var age int
	var weight int

	cmd := &cobra.Command{
		Use:   "register <name>",
		Short: "Register your hunter profile",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Range validation lives here, not in the engine.
			if age < 13 || age > 100 {
				return errors.New("age must be between 13 and 100")
			}
			if weight < 30 || weight > 300 {
				return errors.New("weight must be between 30 and 300")
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			existing, err := svc.HunterRepo().Get(ctx)
			if err != nil {
				return err
			}
			if existing != nil {
				return fmt.Errorf("hunter %q already registered; run 'sl logout' first", existing.Name)
			}

			h, err := svc.CreateHunter(ctx, args[0], age, weight)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSword, "Hunter "+h.Name))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", h.Level))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Rank", ui.RankStyle(h.Rank).Render(h.Rank)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Today's missions are ready: sl missions"))
			return nil
		},
	}

	cmd.Flags().IntVarP(&age, "age", "a", 0, "Age (13-100)")
	cmd.Flags().IntVarP(&weight, "weight", "w", 0, "Weight (30-300)")
	_ = cmd.MarkFlagRequired("age")
	_ = cmd.MarkFlagRequired("weight")

	return cmd
}
