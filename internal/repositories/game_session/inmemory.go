package gamesession

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/berkingurcan/siglife-api/internal/entities/game"
	"github.com/berkingurcan/siglife-api/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string][]byte
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string][]byte),
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Get retrieves a player's session record
func (r *InMemoryRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.RLock()
	data, exists := r.store[input.PlayerID]
	r.mu.RUnlock()
	if !exists {
		return nil, errors.NotFoundf("no saved game for player %s", input.PlayerID)
	}

	var state game.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session for player %s", input.PlayerID)
	}

	return &GetOutput{State: &state}, nil
}

// Save stores the full session record, replacing any previous one.
// Records are stored serialized so callers cannot alias stored state.
func (r *InMemoryRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.State == nil {
		return nil, errors.InvalidArgument(errStateNil)
	}
	if input.State.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	data, err := json.Marshal(input.State)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	r.mu.Lock()
	r.store[input.State.PlayerID] = data
	r.mu.Unlock()

	return &SaveOutput{Success: true}, nil
}

// Delete removes a player's session record
func (r *InMemoryRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.Lock()
	_, existed := r.store[input.PlayerID]
	delete(r.store, input.PlayerID)
	r.mu.Unlock()

	return &DeleteOutput{Existed: existed}, nil
}

// Exists reports whether the player has a saved game
func (r *InMemoryRepository) Exists(ctx context.Context, input *ExistsInput) (*ExistsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.RLock()
	_, exists := r.store[input.PlayerID]
	r.mu.RUnlock()

	return &ExistsOutput{Exists: exists}, nil
}
