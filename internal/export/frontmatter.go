// Package export renders notes as markdown files with YAML front matter,
// suitable for dropping into a plain-text vault.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hiagosil/sistemalevelup/internal/storage"
)

type frontMatter struct {
	Title    string    `yaml:"title"`
	Priority string    `yaml:"priority"`
	Created  time.Time `yaml:"created"`
	Updated  time.Time `yaml:"updated"`
}

// Render returns the markdown document for a single note.
func Render(n storage.Note) ([]byte, error) {
	meta := frontMatter{
		Title:    n.Title,
		Priority: n.Priority,
		Created:  n.CreatedAt,
		Updated:  n.UpdatedAt,
	}
	raw, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshal front matter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(raw)
	b.WriteString("---\n\n")
	b.WriteString(n.Content)
	b.WriteString("\n")
	return []byte(b.String()), nil
}

// FileName derives a stable file name from the note title and id.
func FileName(n storage.Note) string {
	slug := strings.ToLower(strings.TrimSpace(n.Title))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "note"
	}
	short := n.ID
	if len(short) > 8 {
		short = short[:8]
	}
	return slug + "-" + short + ".md"
}

// WriteAll writes one markdown file per note into dir, creating it if
// needed. Returns the number of files written.
func WriteAll(dir string, notes []storage.Note) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create export dir: %w", err)
	}
	written := 0
	for _, n := range notes {
		doc, err := Render(n)
		if err != nil {
			return written, err
		}
		path := filepath.Join(dir, FileName(n))
		if err := os.WriteFile(path, doc, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written++
	}
	return written, nil
}
