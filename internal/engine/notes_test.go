package engine

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestNoteStatsFortyWords(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// 4 title words + 36 content words = 40 total.
	title := "shadow army daily drill"
	content := strings.TrimSpace(strings.Repeat("word ", 36))
	if _, err := svc.CreateNote(ctx, title, content, PriorityC); err != nil {
		t.Fatalf("CreateNote: %v", err)
	}

	notes, err := svc.NotesRepo().Get(ctx)
	if err != nil {
		t.Fatalf("notes get: %v", err)
	}
	stats := ComputeNotesStats(notes)
	if stats.TotalWords != 40 {
		t.Fatalf("totalWords=%d, want 40", stats.TotalWords)
	}
	if stats.Exp != 200 {
		t.Fatalf("exp=%d, want 200", stats.Exp)
	}
	if stats.Level != 1 {
		t.Fatalf("level=%d, want 1", stats.Level)
	}
	if stats.EstimatedTime != 0 {
		t.Fatalf("estimatedTime=%d, want 0", stats.EstimatedTime)
	}
	if stats.ActiveDays != 1 || stats.NotesPerDay != 1.0 {
		t.Fatalf("activeDays=%d notesPerDay=%v, want 1/1.0", stats.ActiveDays, stats.NotesPerDay)
	}
}

func TestNoteStatsEmptyLedger(t *testing.T) {
	stats := ComputeNotesStats(nil)
	if stats.NotesPerDay != 0 || stats.Level != 1 || stats.Exp != 0 {
		t.Fatalf("unexpected stats for empty ledger: %+v", stats)
	}
}

func TestSearchOrderingAndFilter(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	titles := []string{"first entry", "second entry", "Third DUNGEON"}
	for _, title := range titles {
		if _, err := svc.CreateNote(ctx, title, "some content here", PriorityE); err != nil {
			t.Fatalf("CreateNote %q: %v", title, err)
		}
		clock.advance(time.Hour)
	}

	all, err := svc.SearchNotes(ctx, "")
	if err != nil {
		t.Fatalf("SearchNotes: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len=%d, want 3", len(all))
	}
	if all[0].Title != "Third DUNGEON" || all[2].Title != "first entry" {
		t.Fatalf("expected newest-first ordering, got %q..%q", all[0].Title, all[2].Title)
	}

	hits, err := svc.SearchNotes(ctx, "dungeon")
	if err != nil {
		t.Fatalf("SearchNotes dungeon: %v", err)
	}
	if len(hits) != 1 || hits[0].Title != "Third DUNGEON" {
		t.Fatalf("case-insensitive match failed: %+v", hits)
	}

	none, err := svc.SearchNotes(ctx, "zzz")
	if err != nil {
		t.Fatalf("SearchNotes zzz: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no hits, got %d", len(none))
	}
	after, _ := svc.NotesRepo().Get(ctx)
	if len(after) != 3 {
		t.Fatalf("search must not mutate the ledger")
	}
}

func TestUpdateNotePreservesCreatedAt(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	n, err := svc.CreateNote(ctx, "title", "content", PriorityE)
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	created := n.CreatedAt

	clock.advance(2 * time.Hour)
	if err := svc.UpdateNote(ctx, n.ID, "new title", "new content", PriorityA); err != nil {
		t.Fatalf("UpdateNote: %v", err)
	}

	notes, _ := svc.NotesRepo().Get(ctx)
	if len(notes) != 1 {
		t.Fatalf("len=%d, want 1", len(notes))
	}
	got := notes[0]
	if got.Title != "new title" || got.Priority != string(PriorityA) {
		t.Fatalf("fields not updated: %+v", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("createdAt must be immutable")
	}
	if !got.UpdatedAt.After(created) {
		t.Fatalf("updatedAt must be refreshed")
	}
}

func TestUpdateAndDeleteUnknownNoteNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateNote(ctx, "keep", "content", PriorityE); err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if err := svc.UpdateNote(ctx, "missing", "x", "y", PriorityE); err != nil {
		t.Fatalf("update unknown must be silent: %v", err)
	}
	if err := svc.DeleteNote(ctx, "missing"); err != nil {
		t.Fatalf("delete unknown must be silent: %v", err)
	}
	notes, _ := svc.NotesRepo().Get(ctx)
	if len(notes) != 1 {
		t.Fatalf("ledger changed by no-op operations")
	}
}

func TestCreateNoteValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateNote(ctx, "  ", "content", PriorityE); err == nil {
		t.Fatalf("expected error for blank title")
	}
	if _, err := svc.CreateNote(ctx, "title", "   ", PriorityE); err == nil {
		t.Fatalf("expected error for blank content")
	}
	if _, err := svc.CreateNote(ctx, "title", "content", Priority("X")); err == nil {
		t.Fatalf("expected error for invalid priority")
	}
}
