package session

import (
	"github.com/berkingurcan/siglife-api/internal/entities/game"
)

// StartNewGameInput contains parameters for starting a fresh game
type StartNewGameInput struct {
	PlayerID string
}

// StartNewGameOutput contains the freshly created session
type StartNewGameOutput struct {
	State *game.GameState
}

// GetSessionInput contains parameters for loading a session
type GetSessionInput struct {
	PlayerID string
}

// GetSessionOutput contains the loaded (or freshly created) session
type GetSessionOutput struct {
	State *game.GameState

	// CanGraduate reports whether current stats meet the next stage's
	// requirements. Recomputed on every read, never stored.
	CanGraduate bool

	// PendingEvent is the event awaiting a choice, if any
	PendingEvent *game.GameEvent
}

// HasSavedGameInput contains parameters for checking for a saved game
type HasSavedGameInput struct {
	PlayerID string
}

// HasSavedGameOutput reports whether a saved game exists
type HasSavedGameOutput struct {
	Exists bool
}

// TriggerRandomEventInput contains parameters for presenting an event
type TriggerRandomEventInput struct {
	PlayerID string
}

// TriggerRandomEventOutput contains the selected event
type TriggerRandomEventOutput struct {
	Event *game.GameEvent
}

// MakeChoiceInput contains parameters for resolving the pending event
type MakeChoiceInput struct {
	PlayerID string
	ChoiceID string
}

// MakeChoiceOutput contains the result of resolving a choice
type MakeChoiceOutput struct {
	State *game.GameState

	// Outcome is the flavor text of the chosen option
	Outcome string

	// AppliedChanges are the raw deltas of the choice; actual stat
	// movement may be smaller due to clamping
	AppliedChanges game.StatDeltas

	CanGraduate bool
}

// DismissEventInput contains parameters for dismissing the pending event
type DismissEventInput struct {
	PlayerID string
}

// DismissEventOutput contains the result of dismissing an event
type DismissEventOutput struct {
	// Dismissed is false when there was no pending event to dismiss
	Dismissed bool
}

// AdvanceStageInput contains parameters for graduating to the next stage
type AdvanceStageInput struct {
	PlayerID string
}

// AdvanceStageOutput contains the result of a graduation
type AdvanceStageOutput struct {
	State    *game.GameState
	NewStage *game.Stage
}

// RecordMintInput contains parameters for recording a confirmed badge mint
type RecordMintInput struct {
	PlayerID string
	StageID  game.StageID

	// MintAddress is the on-chain address of the confirmed mint, if known
	MintAddress string
}

// RecordMintOutput contains the result of recording a mint
type RecordMintOutput struct {
	State *game.GameState

	// AlreadyMinted is true when the stage badge had been recorded
	// before and this call changed nothing
	AlreadyMinted bool
}

// ResetGameInput contains parameters for wiping and restarting a game
type ResetGameInput struct {
	PlayerID string
}

// ResetGameOutput contains the fresh session after a reset
type ResetGameOutput struct {
	State *game.GameState
}
