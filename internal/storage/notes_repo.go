package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

type NotesRepo struct {
	kv *KV
}

func NewNotesRepo(kv *KV) *NotesRepo {
	return &NotesRepo{kv: kv}
}

func (r *NotesRepo) Get(ctx context.Context) ([]Note, error) {
	raw, err := r.kv.Get(ctx, KeyNotes)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var notes []Note
	if err := json.Unmarshal(raw, &notes); err != nil {
		return nil, nil
	}
	return notes, nil
}

func (r *NotesRepo) Save(ctx context.Context, notes []Note) error {
	if notes == nil {
		notes = []Note{}
	}
	raw, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("marshal notes: %w", err)
	}
	return r.kv.Set(ctx, KeyNotes, raw)
}
