package redis

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Nowell222/green-path-ai/internal/core/domain"
)

const sessionKeyPrefix = "greenpath_user"

// SessionKey returns the durable-storage key for a browsing context. The
// bare fixed key is used when no context ID is given.
func SessionKey(contextID string) string {
	if contextID == "" {
		return sessionKeyPrefix
	}
	return sessionKeyPrefix + ":" + contextID
}

// SessionStore persists the authenticated profile as a JSON document under a
// single Redis key. Presence of the key is the sole signal of "currently
// authenticated" across reloads.
type SessionStore struct {
	client *redis.Client
	key    string
	log    zerolog.Logger
}

func NewSessionStore(client *redis.Client, key string, log zerolog.Logger) *SessionStore {
	if key == "" {
		key = sessionKeyPrefix
	}
	return &SessionStore{client: client, key: key, log: log}
}

func (s *SessionStore) Save(ctx context.Context, profile *domain.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key, data, 0).Err()
}

// Load returns the persisted profile, or nil when the key is absent, the
// read fails, or the payload cannot be decoded. Corrupted entries count as
// no session rather than crashing the caller on bad state.
func (s *SessionStore) Load(ctx context.Context) *domain.UserProfile {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn().Err(err).Str("key", s.key).Msg("session read failed")
		}
		return nil
	}
	var profile domain.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("discarding corrupted session entry")
		return nil
	}
	return &profile
}

func (s *SessionStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
