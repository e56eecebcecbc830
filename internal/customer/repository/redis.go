package repository

import (
	"context"
	"errors"

	"github.com/plancare/customer-service/internal/customer"
	"github.com/redis/go-redis/v9"
)

const DefaultRedisKey = "customers:document"

// RedisStore keeps the whole document as one JSON string value.
// A missing key reads as an empty collection.
type RedisStore struct {
	client *redis.Client
	key    string
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed store. Key may be empty.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}
}

func (r *RedisStore) Load(ctx context.Context) ([]customer.Customer, error) {
	b, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []customer.Customer{}, nil
		}
		return nil, customer.NewStoreError("load", err)
	}
	out, err := Decode(b)
	if err != nil {
		return nil, customer.NewStoreError("load", err)
	}
	return out, nil
}

func (r *RedisStore) Save(ctx context.Context, customers []customer.Customer) error {
	b, err := Encode(customers)
	if err != nil {
		return customer.NewStoreError("save", err)
	}
	return customer.NewStoreError("save", r.client.Set(ctx, r.key, b, 0).Err())
}
