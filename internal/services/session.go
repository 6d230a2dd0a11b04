package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sahil073/HealthCare-Kiosk/internal/models"
)

// KV is the subset of redis commands the kiosk uses. *redis.Client
// satisfies it; tests substitute an in-memory mock.
type KV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

const sessionKeyPrefix = "kiosk:session:"

// SessionStore keeps one session slot per kiosk device, last-write-wins.
type SessionStore struct {
	kv  KV
	ttl time.Duration // 0 means the slot never expires
}

func NewSessionStore(kv KV, ttl time.Duration) *SessionStore {
	return &SessionStore{kv: kv, ttl: ttl}
}

// Save overwrites any previous slot unconditionally.
func (s *SessionStore) Save(ctx context.Context, kioskID string, sess *models.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, sessionKeyPrefix+kioskID, string(raw), s.ttl).Err()
}

// Load returns (nil, nil) when the kiosk has no active session.
func (s *SessionStore) Load(ctx context.Context, kioskID string) (*models.Session, error) {
	raw, err := s.kv.Get(ctx, sessionKeyPrefix+kioskID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sess models.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *SessionStore) Clear(ctx context.Context, kioskID string) error {
	return s.kv.Del(ctx, sessionKeyPrefix+kioskID).Err()
}
