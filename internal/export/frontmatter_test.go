package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hiagosil/sistemalevelup/internal/storage"
)

func sampleNote() storage.Note {
	return storage.Note{
		ID:        "0f9a3c21-aaaa-bbbb-cccc-ddddeeeeffff",
		Title:     "Daily Training Log",
		Content:   "Push day. 100 push-ups, 100 sit-ups.",
		Priority:  "A",
		CreatedAt: time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC),
	}
}

func TestRender(t *testing.T) {
	doc, err := Render(sampleNote())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	s := string(doc)
	if !strings.HasPrefix(s, "---\n") {
		t.Fatalf("missing opening fence:\n%s", s)
	}
	if !strings.Contains(s, "title: Daily Training Log") {
		t.Fatalf("title missing from front matter:\n%s", s)
	}
	if !strings.Contains(s, "priority: A") {
		t.Fatalf("priority missing from front matter:\n%s", s)
	}
	if !strings.HasSuffix(s, "Push day. 100 push-ups, 100 sit-ups.\n") {
		t.Fatalf("content missing or truncated:\n%s", s)
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(sampleNote()); got != "daily-training-log-0f9a3c21.md" {
		t.Fatalf("FileName=%q", got)
	}
	odd := storage.Note{ID: "ab", Title: "  %%% !!! "}
	if got := FileName(odd); got != "note-ab.md" {
		t.Fatalf("FileName for unsluggable title=%q", got)
	}
}

func TestWriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vault")
	n, err := WriteAll(dir, []storage.Note{sampleNote()})
	if err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	if n != 1 {
		t.Fatalf("written=%d, want 1", n)
	}
	raw, err := os.ReadFile(filepath.Join(dir, "daily-training-log-0f9a3c21.md"))
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	if !strings.Contains(string(raw), "Push day.") {
		t.Fatalf("exported file missing content")
	}
}
