package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"duitbot/internal/domain"
)

// PendingStore implements usecase.PendingStore using Redis. One key per
// Telegram user holds the JSON-encoded pending state; the TTL is the
// confirmation window and slides forward on every write.
type PendingStore struct {
	client *redis.Client
	prefix string
}

// NewPendingStore creates a new PendingStore.
func NewPendingStore(client *redis.Client) *PendingStore {
	return &PendingStore{
		client: client,
		prefix: "pending:",
	}
}

func (s *PendingStore) key(telegramID int64) string {
	return s.prefix + strconv.FormatInt(telegramID, 10)
}

// Put stores the state, replacing any previous one and re-arming the TTL.
func (s *PendingStore) Put(ctx context.Context, telegramID int64, state *domain.PendingState, ttl time.Duration) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshaling pending state: %w", err)
	}

	return s.client.Set(ctx, s.key(telegramID), data, ttl).Err()
}

// Get returns the state, or (nil, nil) when none is held.
func (s *PendingStore) Get(ctx context.Context, telegramID int64) (*domain.PendingState, error) {
	data, err := s.client.Get(ctx, s.key(telegramID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, err
	}

	return unmarshalState(data)
}

// GetAndClear atomically consumes the state. Concurrent callers get the
// state at most once; the losers observe (nil, nil).
func (s *PendingStore) GetAndClear(ctx context.Context, telegramID int64) (*domain.PendingState, error) {
	data, err := s.client.GetDel(ctx, s.key(telegramID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, err
	}

	return unmarshalState(data)
}

// Clear drops the state. Clearing an absent key is not an error.
func (s *PendingStore) Clear(ctx context.Context, telegramID int64) error {
	return s.client.Del(ctx, s.key(telegramID)).Err()
}

// AppendMessage adds a history message to the held state, creating a
// bare state when none exists, and re-arms the TTL.
func (s *PendingStore) AppendMessage(ctx context.Context, telegramID int64, role domain.ChatRole, text string, ttl time.Duration) error {
	state, err := s.Get(ctx, telegramID)
	if err != nil {
		return err
	}

	if state == nil {
		state = &domain.PendingState{TelegramID: telegramID}
	}

	state.AppendMessage(role, text, time.Now().UTC())

	return s.Put(ctx, telegramID, state, ttl)
}

func unmarshalState(data []byte) (*domain.PendingState, error) {
	var state domain.PendingState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("unmarshaling pending state: %w", err)
	}

	return &state, nil
}
