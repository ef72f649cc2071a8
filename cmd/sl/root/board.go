package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hiagosil/sistemalevelup/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			// The board renders its own feedback; keep toasts quiet.
			svc, cleanup, err := openServiceQuiet(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, svc, cmd.OutOrStdout())
		},
	}

	return cmd
}
