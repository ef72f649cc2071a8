package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

type ChallengeRepo struct {
	kv *KV
}

func NewChallengeRepo(kv *KV) *ChallengeRepo {
	return &ChallengeRepo{kv: kv}
}

// Get returns the stored challenge, or a zero-value inactive challenge when
// nothing has been stored yet.
func (r *ChallengeRepo) Get(ctx context.Context) (*Challenge, error) {
	raw, err := r.kv.Get(ctx, KeyChallenge)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return &Challenge{}, nil
	}
	var c Challenge
	if err := json.Unmarshal(raw, &c); err != nil {
		return &Challenge{}, nil
	}
	return &c, nil
}

func (r *ChallengeRepo) Save(ctx context.Context, c *Challenge) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal challenge: %w", err)
	}
	return r.kv.Set(ctx, KeyChallenge, raw)
}
