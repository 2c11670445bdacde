// Package redis implements ports.CorpusStore on top of a Redis backend,
// for campaigns whose corpus must survive process restarts or be shared
// between workers.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/graft/pkg/corpus"
	"github.com/aretw0/graft/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.CorpusStore using Redis. Entries are stored as
// JSON-encoded trees under prefixed keys, with a SET index for listing.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for corpus entries.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for corpus entries.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "graft:corpus:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(entry string) string {
	return s.prefix + entry
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save persists the tree to Redis.
func (s *Store) Save(ctx context.Context, key string, tree *corpus.Node) error {
	data, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("failed to marshal corpus tree: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(key), data, s.ttl)
	pipe.SAdd(ctx, s.indexKey(), key)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves the tree from Redis.
func (s *Store) Load(ctx context.Context, key string) (*corpus.Node, error) {
	val, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, ports.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to load from redis: %w", err)
	}

	tree := &corpus.Node{}
	if err := json.Unmarshal([]byte(val), tree); err != nil {
		return nil, fmt.Errorf("failed to unmarshal corpus tree: %w", err)
	}
	return tree, nil
}

// Delete removes the entry and its index membership.
func (s *Store) Delete(ctx context.Context, key string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(key))
	pipe.SRem(ctx, s.indexKey(), key)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}
	return nil
}

// List returns the indexed entry keys. Entries whose value expired via TTL
// are pruned from the index as they are discovered.
func (s *Store) List(ctx context.Context) ([]string, error) {
	members, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list from redis: %w", err)
	}

	keys := make([]string, 0, len(members))
	for _, m := range members {
		exists, err := s.client.Exists(ctx, s.key(m)).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to check entry %q: %w", m, err)
		}
		if exists == 0 {
			// Expired entry; drop it from the index opportunistically.
			s.client.SRem(ctx, s.indexKey(), m)
			continue
		}
		keys = append(keys, m)
	}
	return keys, nil
}
