// Package gamesession provides the repository interface and storage
// implementations for persisted game sessions. One record per player,
// written wholesale on every mutation.
package gamesession

import (
	"context"

	"github.com/berkingurcan/siglife-api/internal/entities/game"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=gamesessionmock github.com/berkingurcan/siglife-api/internal/repositories/game_session Repository

// GetInput contains parameters for retrieving a game session
type GetInput struct {
	PlayerID string
}

// GetOutput contains the result of retrieving a game session
type GetOutput struct {
	State *game.GameState
}

// SaveInput contains parameters for storing a game session
type SaveInput struct {
	State *game.GameState
}

// SaveOutput contains the result of storing a game session
type SaveOutput struct {
	Success bool
}

// DeleteInput contains parameters for deleting a game session
type DeleteInput struct {
	PlayerID string
}

// DeleteOutput contains the result of deleting a game session
type DeleteOutput struct {
	// Existed reports whether a record was actually removed. Deleting a
	// missing session is not an error.
	Existed bool
}

// ExistsInput contains parameters for checking for a saved game
type ExistsInput struct {
	PlayerID string
}

// ExistsOutput contains the result of checking for a saved game
type ExistsOutput struct {
	Exists bool
}

// Repository defines the interface for game session storage operations
type Repository interface {
	// Get retrieves a player's session. Returns errors.NotFound when the
	// player has no saved game.
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Save stores the full session record, replacing any previous one
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Delete removes a player's session
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// Exists reports whether the player has a saved game without
	// deserializing it
	Exists(ctx context.Context, input *ExistsInput) (*ExistsOutput, error)
}
