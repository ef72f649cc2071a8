package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

type DailyRepo struct {
	kv *KV
}

func NewDailyRepo(kv *KV) *DailyRepo {
	return &DailyRepo{kv: kv}
}

func (r *DailyRepo) Get(ctx context.Context) (*DailyProgress, error) {
	raw, err := r.kv.Get(ctx, KeyDaily)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var dp DailyProgress
	if err := json.Unmarshal(raw, &dp); err != nil {
		// Corrupt record: absent, so the cycle re-rolls a fresh day.
		return nil, nil
	}
	return &dp, nil
}

func (r *DailyRepo) Save(ctx context.Context, dp *DailyProgress) error {
	raw, err := json.Marshal(dp)
	if err != nil {
		return fmt.Errorf("marshal daily progress: %w", err)
	}
	return r.kv.Set(ctx, KeyDaily, raw)
}

func (r *DailyRepo) Delete(ctx context.Context) error {
	return r.kv.Delete(ctx, KeyDaily)
}
