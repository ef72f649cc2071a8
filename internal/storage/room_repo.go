package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

type RoomRepo struct {
	kv *KV
}

func NewRoomRepo(kv *KV) *RoomRepo {
	return &RoomRepo{kv: kv}
}

// Get returns the stored hunter room, or an empty room when nothing has
// been stored yet.
func (r *RoomRepo) Get(ctx context.Context) (*HunterRoom, error) {
	raw, err := r.kv.Get(ctx, KeyRoom)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return &HunterRoom{}, nil
	}
	var room HunterRoom
	if err := json.Unmarshal(raw, &room); err != nil {
		return &HunterRoom{}, nil
	}
	return &room, nil
}

func (r *RoomRepo) Save(ctx context.Context, room *HunterRoom) error {
	raw, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("marshal hunter room: %w", err)
	}
	return r.kv.Set(ctx, KeyRoom, raw)
}
