package services

import (
	"context"
	"errors"

	"grand-azure-hotel/cache"
	"grand-azure-hotel/logger"
	"grand-azure-hotel/models"
	"grand-azure-hotel/storage"
)

// RoomService serves the room catalog, reading through the Redis cache when one is configured.
type RoomService struct {
	Store storage.Store
	Cache *cache.RoomCache
}

func NewRoomService(store storage.Store, rc *cache.RoomCache) *RoomService {
	return &RoomService{Store: store, Cache: rc}
}

func (s *RoomService) ListRooms(ctx context.Context) ([]models.Room, error) {
	if rooms, ok := s.Cache.GetAll(ctx); ok {
		return rooms, nil
	}

	rooms, err := s.Store.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	if err := s.Cache.PostAll(ctx, rooms); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("room cache write failed")
	}
	return rooms, nil
}

func (s *RoomService) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	if room, ok := s.Cache.Get(ctx, id); ok {
		return room, nil
	}

	room, err := s.Store.GetRoom(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if err := s.Cache.Post(ctx, room); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Uint("room_id", id).Msg("room cache write failed")
	}
	return room, nil
}

func (s *RoomService) CreateRoom(ctx context.Context, room *models.Room) error {
	if room.Name == "" || room.Price < 0 || room.Capacity < 1 {
		return ErrInvalidInput
	}
	if err := s.Store.CreateRoom(ctx, room); err != nil {
		return err
	}
	return s.Cache.Invalidate(ctx, room.ID)
}
