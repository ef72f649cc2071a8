package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/hiagosil/sistemalevelup/internal/storage"
)

const (
	xpPerWord       = 5
	xpPerNotesLevel = 500
	wordsPerMinute  = 200
)

// NotesStats are the writing statistics derived from the note collection.
type NotesStats struct {
	TotalNotes    int
	TotalWords    int
	Exp           int
	Level         int
	ActiveDays    int
	NotesPerDay   float64
	EstimatedTime int // minutes
}

// CreateNote appends a new note with trimmed fields and fresh timestamps.
func (s *Service) CreateNote(ctx context.Context, title, content string, priority Priority) (*storage.Note, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return nil, errors.New("title is required")
	}
	if content == "" {
		return nil, errors.New("content is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %q", priority)
	}

	notes, err := s.notes.Get(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	n := storage.Note{
		ID:        s.clock.NewID(),
		Title:     title,
		Content:   content,
		Priority:  string(priority),
		CreatedAt: now,
		UpdatedAt: now,
	}
	notes = append(notes, n)
	if err := s.notes.Save(ctx, notes); err != nil {
		return nil, err
	}

	s.notify.Notify("📝 Note Added",
		fmt.Sprintf("Note %q created with priority %s", title, priority), SeverityInfo)
	return &n, nil
}

// UpdateNote replaces a note's fields and refreshes UpdatedAt; CreatedAt is
// immutable. Unknown ids are a silent no-op.
func (s *Service) UpdateNote(ctx context.Context, id, title, content string, priority Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %q", priority)
	}
	notes, err := s.notes.Get(ctx)
	if err != nil {
		return err
	}
	for i := range notes {
		if notes[i].ID != id {
			continue
		}
		notes[i].Title = strings.TrimSpace(title)
		notes[i].Content = strings.TrimSpace(content)
		notes[i].Priority = string(priority)
		notes[i].UpdatedAt = s.clock.Now()
		if err := s.notes.Save(ctx, notes); err != nil {
			return err
		}
		s.notify.Notify("✨ Note Updated", "Your changes were saved", SeverityInfo)
		return nil
	}
	return nil
}

// DeleteNote removes a note by id; unknown ids are a silent no-op.
func (s *Service) DeleteNote(ctx context.Context, id string) error {
	notes, err := s.notes.Get(ctx)
	if err != nil {
		return err
	}
	for i := range notes {
		if notes[i].ID != id {
			continue
		}
		title := notes[i].Title
		notes = append(notes[:i], notes[i+1:]...)
		if err := s.notes.Save(ctx, notes); err != nil {
			return err
		}
		s.notify.Notify("🗑️ Note Removed",
			fmt.Sprintf("%q was removed", title), SeverityWarning)
		return nil
	}
	return nil
}

// SearchNotes returns notes matching query case-insensitively against title
// and content, newest first. An empty query returns every note in the same
// canonical order.
func (s *Service) SearchNotes(ctx context.Context, query string) ([]storage.Note, error) {
	notes, err := s.notes.Get(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return notes, nil
	}
	var out []storage.Note
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Content), q) {
			out = append(out, n)
		}
	}
	return out, nil
}

// ComputeNotesStats derives the writing statistics: 5 XP per word, a level
// every 500 XP, and reading time at 200 words per minute.
func ComputeNotesStats(notes []storage.Note) NotesStats {
	totalWords := 0
	days := map[string]struct{}{}
	for _, n := range notes {
		totalWords += len(strings.Fields(n.Title + " " + n.Content))
		days[DateKey(n.CreatedAt)] = struct{}{}
	}

	exp := totalWords * xpPerWord
	level := exp/xpPerNotesLevel + 1
	activeDays := len(days)

	perDay := 0.0
	if activeDays > 0 {
		perDay = math.Round(float64(len(notes))/float64(activeDays)*10) / 10
	}

	return NotesStats{
		TotalNotes:    len(notes),
		TotalWords:    totalWords,
		Exp:           exp,
		Level:         level,
		ActiveDays:    activeDays,
		NotesPerDay:   perDay,
		EstimatedTime: int(math.Round(float64(totalWords) / wordsPerMinute)),
	}
}
