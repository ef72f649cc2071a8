package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

type HunterRepo struct {
	kv *KV
}

func NewHunterRepo(kv *KV) *HunterRepo {
	return &HunterRepo{kv: kv}
}

func (r *HunterRepo) Get(ctx context.Context) (*Hunter, error) {
	raw, err := r.kv.Get(ctx, KeyHunter)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var h Hunter
	if err := json.Unmarshal(raw, &h); err != nil {
		// Corrupt record: treat as absent so a fresh profile can be created.
		return nil, nil
	}
	return &h, nil
}

func (r *HunterRepo) Save(ctx context.Context, h *Hunter) error {
	raw, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("marshal hunter: %w", err)
	}
	return r.kv.Set(ctx, KeyHunter, raw)
}

func (r *HunterRepo) Delete(ctx context.Context) error {
	return r.kv.Delete(ctx, KeyHunter)
}
