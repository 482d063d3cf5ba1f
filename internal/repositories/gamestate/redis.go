package gamestate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dicemaster/scorekeeper/internal/models"
)

const (
	// Key prefix for Redis
	stateKeyPrefix = "table:state:"
)

// ErrStateNotFound is returned when no state has been stored for the table
var ErrStateNotFound = errors.New("game state not found")

// ErrStateCorrupt is returned when the stored blob cannot be unmarshaled.
// Callers recover by falling back to a fresh default state.
var ErrStateCorrupt = errors.New("game state is corrupt")

// Config holds configuration for the Redis game state repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game state repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// Save persists the full game state to Redis as one JSON blob
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) error {
	if input == nil || input.State == nil {
		return errors.New("input and state cannot be nil")
	}

	if input.TableID == "" {
		return errors.New("table ID cannot be empty")
	}

	stateJSON, err := json.Marshal(input.State)
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %w", err)
	}

	stateKey := fmt.Sprintf("%s%s", stateKeyPrefix, input.TableID)
	if err := r.client.Set(ctx, stateKey, stateJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save game state: %w", err)
	}

	return nil
}

// Load retrieves the full game state from Redis
func (r *redisRepository) Load(ctx context.Context, input *LoadInput) (*models.GameState, error) {
	if input == nil || input.TableID == "" {
		return nil, errors.New("input and table ID cannot be empty")
	}

	stateKey := fmt.Sprintf("%s%s", stateKeyPrefix, input.TableID)
	stateJSON, err := r.client.Get(ctx, stateKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to get game state: %w", err)
	}

	var state models.GameState
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStateCorrupt, err)
	}

	return &state, nil
}

// Delete removes the stored game state from Redis
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) error {
	if input == nil || input.TableID == "" {
		return errors.New("input and table ID cannot be empty")
	}

	stateKey := fmt.Sprintf("%s%s", stateKeyPrefix, input.TableID)
	if err := r.client.Del(ctx, stateKey).Err(); err != nil {
		return fmt.Errorf("failed to delete game state: %w", err)
	}

	return nil
}
