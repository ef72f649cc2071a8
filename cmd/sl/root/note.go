package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hiagosil/sistemalevelup/internal/engine"
	"github.com/hiagosil/sistemalevelup/internal/export"
	"github.com/hiagosil/sistemalevelup/internal/storage"
	"github.com/hiagosil/sistemalevelup/internal/ui"
)

func newNoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage notes and writing stats",
	}
	cmd.AddCommand(
		newNoteAddCmd(),
		newNoteListCmd(),
		newNoteEditCmd(),
		newNoteRmCmd(),
		newNoteStatsCmd(),
		newNoteExportCmd(),
	)
	return cmd
}

func newNoteAddCmd() *cobra.Command {
	var content string
	var priority string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a note",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			n, err := svc.CreateNote(ctx, args[0], content, engine.Priority(strings.ToUpper(priority)))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("id: "+shortID(n.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&content, "content", "c", "", "Note content")
	cmd.Flags().StringVarP(&priority, "priority", "p", "E", "Priority rank (E|D|C|B|A|S)")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

func newNoteListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [query]",
		Short: "List notes, newest first (optionally filtered)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			query := ""
			if len(args) > 0 {
				query = strings.Join(args, " ")
			}
			notes, err := svc.SearchNotes(ctx, query)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(notes) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No notes found."))
				return nil
			}
			for _, n := range notes {
				p := engine.Priority(n.Priority)
				fmt.Fprintf(out, "%s %s %s %s\n",
					ui.Muted.Render(shortID(n.ID)),
					ui.RankStyle(n.Priority).Render("["+n.Priority+"]"),
					n.Title,
					ui.Muted.Render(n.CreatedAt.Format("2006-01-02")+" • "+p.Label()))
			}
			return nil
		},
	}

	return cmd
}

func newNoteEditCmd() *cobra.Command {
	var title string
	var content string
	var priority string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a note",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
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

			n, err := resolveNote(ctx, svc, args[0])
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("title") {
				title = n.Title
			}
			if !cmd.Flags().Changed("content") {
				content = n.Content
			}
			if !cmd.Flags().Changed("priority") {
				priority = n.Priority
			}
			return svc.UpdateNote(ctx, n.ID, title, content, engine.Priority(strings.ToUpper(priority)))
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "New content")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "New priority rank (E|D|C|B|A|S)")

	return cmd
}

func newNoteRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a note",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
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

			n, err := resolveNote(ctx, svc, args[0])
			if err != nil {
				return err
			}
			return svc.DeleteNote(ctx, n.ID)
		},
	}

	return cmd
}

func newNoteStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show writing statistics derived from your notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			notes, err := svc.NotesRepo().Get(ctx)
			if err != nil {
				return err
			}
			stats := engine.ComputeNotesStats(notes)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconNote, "Writing Stats"))
			fmt.Fprintln(out, ui.LabelValue("Notes", stats.TotalNotes))
			fmt.Fprintln(out, ui.LabelValue("Words", stats.TotalWords))
			fmt.Fprintln(out, ui.LabelValue("EXP", stats.Exp))
			fmt.Fprintln(out, ui.LabelValue("Level", stats.Level))
			fmt.Fprintln(out, ui.LabelValue("Active days", stats.ActiveDays))
			fmt.Fprintln(out, ui.LabelValue("Notes/day", stats.NotesPerDay))
			fmt.Fprintln(out, ui.LabelValue("Est. time", fmt.Sprintf("%d min", stats.EstimatedTime)))
			return nil
		},
	}

	return cmd
}

func newNoteExportCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export notes as markdown files with YAML front matter",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			notes, err := svc.SearchNotes(ctx, "")
			if err != nil {
				return err
			}
			n, err := export.WriteAll(dir, notes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s exported %d notes to %s\n", ui.Good.Render(ui.IconDone), n, dir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "out", "o", "notes", "Output directory")

	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveNote matches a full id or a unique id prefix.
func resolveNote(ctx context.Context, svc *engine.Service, ref string) (*storage.Note, error) {
	notes, err := svc.NotesRepo().Get(ctx)
	if err != nil {
		return nil, err
	}
	var match *storage.Note
	for i := range notes {
		if notes[i].ID == ref {
			return &notes[i], nil
		}
		if strings.HasPrefix(notes[i].ID, ref) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous note id %q", ref)
			}
			match = &notes[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("note %q not found", ref)
	}
	return match, nil
}
