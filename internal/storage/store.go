package storage

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/autolens/autolens-api/internal/logger"
)

// channelPrefix namespaces the pub/sub channel used for change broadcasts.
const channelPrefix = "storage:"

// Reader is the read half of the adapter. Get builds typed reads on top of it.
type Reader interface {
	GetRaw(ctx context.Context, key string) ([]byte, bool)
}

// Store is a typed key-value adapter over Redis. Every write is followed by
// a broadcast of the key's new serialized value, so other consumers of the
// same key can resynchronize without polling.
type Store struct {
	client *redis.Client
}

// New creates a Store backed by the given Redis client.
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

// GetRaw reads the serialized value stored under key. The second return is
// false when the key is absent or the read fails; read failures are logged,
// never propagated.
func (s *Store) GetRaw(ctx context.Context, key string) ([]byte, bool) {
	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Errorw("failed to read store key", "key", key, "error", err)
		}
		return nil, false
	}
	return val, true
}

// Set serializes value under key and broadcasts the change. A failed
// broadcast is logged but does not fail the write.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Log.Errorw("failed to encode store value", "key", key, "error", err)
		return err
	}

	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		logger.Log.Errorw("failed to write store key", "key", key, "error", err)
		return err
	}

	if err := s.client.Publish(ctx, channelPrefix+key, data).Err(); err != nil {
		logger.Log.Errorw("failed to broadcast store change", "key", key, "error", err)
	}

	return nil
}

// Subscribe invokes fn with the serialized new value each time key is
// written, until ctx is done.
func (s *Store) Subscribe(ctx context.Context, key string, fn func(payload []byte)) {
	sub := s.client.Subscribe(ctx, channelPrefix+key)

	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				fn([]byte(msg.Payload))
			}
		}
	}()
}

// Get decodes the value stored under key and returns fallback when the key
// is absent or the stored payload does not decode. Read failures never reach
// the caller; they are logged and replaced by the fallback.
func Get[T any](ctx context.Context, r Reader, key string, fallback T) T {
	data, ok := r.GetRaw(ctx, key)
	if !ok {
		return fallback
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		logger.Log.Errorw("failed to decode store value", "key", key, "error", err)
		return fallback
	}

	return out
}
