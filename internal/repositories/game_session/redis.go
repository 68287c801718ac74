package gamesession

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/berkingurcan/siglife-api/internal/entities/game"
	"github.com/berkingurcan/siglife-api/internal/errors"
	redisclient "github.com/berkingurcan/siglife-api/internal/redis"
)

const (
	// Key pattern: session:{player_id}
	sessionKeyPrefix = "session:"

	errPlayerIDEmpty = "player ID cannot be empty"
	errStateNil      = "game state cannot be nil"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for game sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Get retrieves a player's session record
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := r.buildKey(input.PlayerID)
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no saved game for player %s", input.PlayerID)
		}
		return nil, errors.Wrapf(err, "failed to get session for player %s", input.PlayerID)
	}

	var state game.GameState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session for player %s", input.PlayerID)
	}

	if state.Version != game.SchemaVersion {
		return nil, errors.Internalf("unsupported session schema version %d for player %s",
			state.Version, input.PlayerID)
	}

	return &GetOutput{State: &state}, nil
}

// Save stores the full session record, replacing any previous one.
// Records have no TTL: a saved game lives until reset.
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.State == nil {
		return nil, errors.InvalidArgument(errStateNil)
	}
	if input.State.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	stateJSON, err := json.Marshal(input.State)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	key := r.buildKey(input.State.PlayerID)
	if err := r.client.Set(ctx, key, stateJSON, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store session for player %s", input.State.PlayerID)
	}

	return &SaveOutput{Success: true}, nil
}

// Delete removes a player's session record
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := r.buildKey(input.PlayerID)
	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete session for player %s", input.PlayerID)
	}

	return &DeleteOutput{Existed: deleted > 0}, nil
}

// Exists reports whether the player has a saved game
func (r *redisRepository) Exists(ctx context.Context, input *ExistsInput) (*ExistsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := r.buildKey(input.PlayerID)
	count, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check session for player %s", input.PlayerID)
	}

	return &ExistsOutput{Exists: count > 0}, nil
}

func (r *redisRepository) buildKey(playerID string) string {
	return sessionKeyPrefix + playerID
}
