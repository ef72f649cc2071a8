package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hiagosil/sistemalevelup/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "sl",
	Short:         "Sistema Level Up — solo-leveling habit RPG for your terminal",
	Long:          "Sistema Level Up turns daily habits, notes, and self-reflection into RPG progression: XP, levels, ranks, streaks, and stat growth.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newRegisterCmd(),
		newStatusCmd(),
		newMissionsCmd(),
		newDoCmd(),
		newStreakCmd(),
		newNoteCmd(),
		newRoomCmd(),
		newLogoutCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
