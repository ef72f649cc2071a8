package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hiagosil/sistemalevelup/internal/ui"
)

func newLogoutCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Clear the hunter profile and daily progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("this deletes your hunter profile; re-run with --yes to confirm")
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.Logout(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Hunter profile cleared."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion")

	return cmd
}
