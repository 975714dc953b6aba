package idempotency

import (
	"context"
	"encoding/json"
	"time"

	"flight-booking/internal/pkg/config"
	"flight-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "idempotency:"
	processing = "PROCESSING"
	// claimTTL frees a key whose request died before it could store a response.
	claimTTL   = 30 * time.Second
)

var ErrInFlight = errs.New("request with this idempotency key is still in progress")

// Record is the stored response replayed for a repeated key. RequestHash
// identifies the parameters of the request that produced it.
type Record struct {
	RequestHash string `json:"request_hash"`
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type Store interface {
	// Load returns nil when the key is unknown and ErrInFlight while another
	// request holds the claim.
	Load(ctx context.Context, key string) (*Record, error)
	// Claim reserves key for the caller; false means someone else got it first.
	Claim(ctx context.Context, key string) (bool, error)
	Save(ctx context.Context, key string, rec Record) error
	Release(ctx context.Context, key string) error
}

func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "failed to ping redis")
	}

	return client, nil
}

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, key string) (*Record, error) {
	val, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errs.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to read idempotency key")
	}
	if string(val) == processing {
		return nil, ErrInFlight
	}

	var rec Record
	if err := json.Unmarshal(val, &rec); err != nil {
		return nil, errs.Wrap(err, "failed to decode idempotency record")
	}
	return &rec, nil
}

func (s *RedisStore) Claim(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, keyPrefix+key, processing, claimTTL).Result()
	if err != nil {
		return false, errs.Wrap(err, "failed to claim idempotency key")
	}
	return ok, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, rec Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return errs.Wrap(err, "failed to encode idempotency record")
	}
	if err := s.client.Set(ctx, keyPrefix+key, payload, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to store idempotency record")
	}
	return nil
}

func (s *RedisStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return errs.Wrap(err, "failed to release idempotency key")
	}
	return nil
}

// NoopStore is used when no Redis address is configured; every request runs.
type NoopStore struct{}

func (NoopStore) Load(context.Context, string) (*Record, error) { return nil, nil }
func (NoopStore) Claim(context.Context, string) (bool, error)   { return true, nil }
func (NoopStore) Save(context.Context, string, Record) error    { return nil }
func (NoopStore) Release(context.Context, string) error         { return nil }
