package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"grand-azure-hotel/models"
)

const (
	cacheRoom     = "rooms:%d"
	cacheAllRooms = "rooms"
	roomTTL       = 10 * time.Minute
)

// RoomCache is a read-through cache for the room catalog. A nil *RoomCache or
// one without a client is a no-op, so callers never branch on Redis being set.
type RoomCache struct {
	cli *redis.Client
}

func NewRoomCache(cli *redis.Client) *RoomCache {
	return &RoomCache{cli: cli}
}

func (rc *RoomCache) enabled() bool {
	return rc != nil && rc.cli != nil
}

// GetAll returns (nil, false) on a miss or any Redis error.
func (rc *RoomCache) GetAll(ctx context.Context) ([]models.Room, bool) {
	if !rc.enabled() {
		return nil, false
	}
	var rooms []models.Room
	if !rc.get(ctx, cacheAllRooms, &rooms) {
		return nil, false
	}
	return rooms, true
}

func (rc *RoomCache) PostAll(ctx context.Context, rooms []models.Room) error {
	if !rc.enabled() {
		return nil
	}
	return rc.set(ctx, cacheAllRooms, rooms)
}

func (rc *RoomCache) Get(ctx context.Context, id uint) (*models.Room, bool) {
	if !rc.enabled() {
		return nil, false
	}
	var room models.Room
	if !rc.get(ctx, fmt.Sprintf(cacheRoom, id), &room) {
		return nil, false
	}
	return &room, true
}

func (rc *RoomCache) Post(ctx context.Context, room *models.Room) error {
	if !rc.enabled() || room == nil {
		return nil
	}
	return rc.set(ctx, fmt.Sprintf(cacheRoom, room.ID), room)
}

// Invalidate drops the list key and, when id > 0, the single-room key.
func (rc *RoomCache) Invalidate(ctx context.Context, id uint) error {
	if !rc.enabled() {
		return nil
	}
	keys := []string{cacheAllRooms}
	if id > 0 {
		keys = append(keys, fmt.Sprintf(cacheRoom, id))
	}
	return rc.cli.Del(ctx, keys...).Err()
}

func (rc *RoomCache) get(ctx context.Context, key string, dst interface{}) bool {
	raw, err := rc.cli.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func (rc *RoomCache) set(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := rc.cli.Set(ctx, key, raw, roomTTL).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}
