// Package session implements the game session orchestrator. It owns the
// player's GameState aggregate: every mutation goes through here, is
// applied in memory first, and is then persisted wholesale.
package session

//go:generate mockgen -destination=mock/mock_service.go -package=sessionmock github.com/berkingurcan/siglife-api/internal/orchestrators/session Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/berkingurcan/siglife-api/internal/catalog"
	"github.com/berkingurcan/siglife-api/internal/entities/game"
	"github.com/berkingurcan/siglife-api/internal/errors"
	"github.com/berkingurcan/siglife-api/internal/pkg/clock"
	"github.com/berkingurcan/siglife-api/internal/pkg/idgen"
	gamesession "github.com/berkingurcan/siglife-api/internal/repositories/game_session"
)

// Service defines the interface for game session operations
type Service interface {
	// StartNewGame creates and persists a fresh initial session,
	// replacing any existing one
	StartNewGame(ctx context.Context, input *StartNewGameInput) (*StartNewGameOutput, error)

	// GetSession loads the player's session, creating and persisting a
	// fresh one if none exists
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// HasSavedGame reports whether a persisted session exists
	HasSavedGame(ctx context.Context, input *HasSavedGameInput) (*HasSavedGameOutput, error)

	// TriggerRandomEvent selects an event for the current stage and
	// parks it as the pending event. Does not touch stats or history.
	TriggerRandomEvent(ctx context.Context, input *TriggerRandomEventInput) (*TriggerRandomEventOutput, error)

	// MakeChoice resolves the pending event with the given choice:
	// applies its effects, logs history, clears the pending slot,
	// persists
	MakeChoice(ctx context.Context, input *MakeChoiceInput) (*MakeChoiceOutput, error)

	// DismissEvent discards the pending event without applying anything
	DismissEvent(ctx context.Context, input *DismissEventInput) (*DismissEventOutput, error)

	// AdvanceStage graduates the player to the next stage after
	// re-validating its requirements against current stats
	AdvanceStage(ctx context.Context, input *AdvanceStageInput) (*AdvanceStageOutput, error)

	// RecordMint records an externally confirmed badge mint for a stage.
	// Idempotent: re-recording a minted stage is a no-op.
	RecordMint(ctx context.Context, input *RecordMintInput) (*RecordMintOutput, error)

	// ResetGame deletes the persisted session and starts a fresh one
	ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error)
}

// Config holds the dependencies for the session orchestrator
type Config struct {
	GameSessionRepo gamesession.Repository
	Catalog         catalog.Catalog
	IDGenerator     idgen.Generator
	Clock           clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GameSessionRepo == nil {
		vb.RequiredField("GameSessionRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	repo    gamesession.Repository
	catalog catalog.Catalog
	idGen   idgen.Generator
	clock   clock.Clock

	// mu guards the per-player maps below. Operations on one player are
	// serialized through playerLocks so mutate-then-persist is atomic
	// with respect to concurrent requests for the same player.
	mu          sync.Mutex
	playerLocks map[string]*sync.Mutex

	// pending holds at most one unresolved event per player. Ephemeral:
	// never persisted, cleared by choice, dismissal, or restart.
	pending map[string]*game.GameEvent
}

// NewOrchestrator creates a new session orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo:        cfg.GameSessionRepo,
		catalog:     cfg.Catalog,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
		playerLocks: make(map[string]*sync.Mutex),
		pending:     make(map[string]*game.GameEvent),
	}, nil
}

// Ensure orchestrator implements Service
var _ Service = (*orchestrator)(nil)

func (o *orchestrator) lockPlayer(playerID string) func() {
	o.mu.Lock()
	lock, ok := o.playerLocks[playerID]
	if !ok {
		lock = &sync.Mutex{}
		o.playerLocks[playerID] = lock
	}
	o.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

func (o *orchestrator) getPending(playerID string) *game.GameEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pending[playerID]
}

func (o *orchestrator) setPending(playerID string, event *game.GameEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if event == nil {
		delete(o.pending, playerID)
		return
	}
	o.pending[playerID] = event
}

// StartNewGame creates and persists a fresh initial session
func (o *orchestrator) StartNewGame(ctx context.Context, input *StartNewGameInput) (*StartNewGameOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock := o.lockPlayer(input.PlayerID)
	defer unlock()

	state, err := o.startNewGameLocked(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &StartNewGameOutput{State: state}, nil
}

// startNewGameLocked builds, persists and returns a fresh session.
// Caller must hold the player lock.
func (o *orchestrator) startNewGameLocked(ctx context.Context, playerID string) (*game.GameState, error) {
	state := game.NewGameState(playerID, o.clock.Now())
	o.setPending(playerID, nil)

	if _, err := o.repo.Save(ctx, &gamesession.SaveInput{State: state}); err != nil {
		return nil, errors.Wrap(err, "failed to persist new game")
	}

	slog.Info("started new game",
		"player_id", playerID,
		"stage", state.CurrentStage,
	)

	return state, nil
}

// GetSession loads the player's session, creating one if none exists
func (o *orchestrator) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock := o.lockPlayer(input.PlayerID)
	defer unlock()

	state, err := o.loadOrCreateLocked(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{
		State:        state,
		CanGraduate:  game.CanAdvance(state.Stats, state.CurrentStage),
		PendingEvent: o.getPending(input.PlayerID),
	}, nil
}

func (o *orchestrator) loadOrCreateLocked(ctx context.Context, playerID string) (*game.GameState, error) {
	out, err := o.repo.Get(ctx, &gamesession.GetInput{PlayerID: playerID})
	if err == nil {
		return out.State, nil
	}
	if !errors.IsNotFound(err) {
		return nil, errors.Wrap(err, "failed to load session")
	}
	return o.startNewGameLocked(ctx, playerID)
}

// HasSavedGame reports whether a persisted session exists
func (o *orchestrator) HasSavedGame(ctx context.Context, input *HasSavedGameInput) (*HasSavedGameOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.repo.Exists(ctx, &gamesession.ExistsInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to check for saved game")
	}

	return &HasSavedGameOutput{Exists: out.Exists}, nil
}

// TriggerRandomEvent selects a stage event and parks it as pending.
// Events already answered this session are excluded until the stage pool
// is exhausted. State, history and persistence are untouched.
func (o *orchestrator) TriggerRandomEvent(ctx context.Context, input *TriggerRandomEventInput) (*TriggerRandomEventOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock := o.lockPlayer(input.PlayerID)
	defer unlock()

	state, err := o.loadOrCreateLocked(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	event, err := o.catalog.RandomEvent(state.CurrentStage, state.AnsweredEventIDs())
	if err != nil {
		return nil, errors.Wrap(err, "failed to select event")
	}

	o.setPending(input.PlayerID, event)

	return &TriggerRandomEventOutput{Event: event}, nil
}

// MakeChoice resolves the pending event: applies the chosen effects,
// appends a history entry with the applied deltas, clears the pending
// slot and persists.
func (o *orchestrator) MakeChoice(ctx context.Context, input *MakeChoiceInput) (*MakeChoiceOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.ChoiceID == "" {
		return nil, errors.InvalidArgument("choice ID is required")
	}

	unlock := o.lockPlayer(input.PlayerID)
	defer unlock()

	pending := o.getPending(input.PlayerID)
	if pending == nil {
		return nil, errors.FailedPrecondition("no pending event to resolve")
	}

	choice := pending.Choice(input.ChoiceID)
	if choice == nil {
		return nil, errors.InvalidArgumentf("choice %q does not belong to event %q",
			input.ChoiceID, pending.ID)
	}

	state, err := o.loadOrCreateLocked(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	now := o.clock.Now()
	state.Stats = state.Stats.Apply(choice.Effects)
	deltas := choice.Effects
	state.AppendHistory(game.HistoryEntry{
		ID:          o.idGen.Generate(),
		Timestamp:   now.UnixMilli(),
		Type:        game.HistoryEvent,
		Title:       pending.Title,
		Description: choice.Outcome,
		EventID:     pending.ID,
		StatChanges: &deltas,
	})
	state.Touch(now)

	if _, err := o.repo.Save(ctx, &gamesession.SaveInput{State: state}); err != nil {
		return nil, errors.Wrap(err, "failed to persist choice")
	}

	// Clear the pending slot only once the save succeeded, so a failed
	// save leaves the event in place and the choice can be retried.
	o.setPending(input.PlayerID, nil)

	slog.Info("resolved event choice",
		"player_id", input.PlayerID,
		"event_id", pending.ID,
		"choice_id", choice.ID,
	)

	return &MakeChoiceOutput{
		State:          state,
		Outcome:        choice.Outcome,
		AppliedChanges: choice.Effects,
		CanGraduate:    game.CanAdvance(state.Stats, state.CurrentStage),
	}, nil
}

// DismissEvent discards the pending event, if any
func (o *orchestrator) DismissEvent(ctx context.Context, input *DismissEventInput) (*DismissEventOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock := o.lockPlayer(input.PlayerID)
	defer unlock()

	dismissed := o.getPending(input.PlayerID) != nil
	o.setPending(input.PlayerID, nil)

	return &DismissEventOutput{Dismissed: dismissed}, nil
}

// AdvanceStage graduates to the next stage. Requirements are
// re-validated here against current stats; a stale client cannot force
// an ineligible graduation.
func (o *orchestrator) AdvanceStage(ctx context.Context, input *AdvanceStageInput) (*AdvanceStageOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock := o.lockPlayer(input.PlayerID)
	defer unlock()

	state, err := o.loadOrCreateLocked(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	next, err := game.NextStage(state.CurrentStage)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve next stage")
	}
	if next == nil {
		return nil, errors.FailedPreconditionf("already at terminal stage %q", state.CurrentStage)
	}
	if !state.Stats.Meets(next) {
		return nil, errors.FailedPreconditionf("stats do not meet requirements for stage %q", next.ID)
	}

	now := o.clock.Now()
	state.CurrentStage = next.ID
	state.AppendHistory(game.HistoryEntry{
		ID:          o.idGen.Generate(),
		Timestamp:   now.UnixMilli(),
		Type:        game.HistoryGraduation,
		Title:       "Graduated to " + next.Name,
		Description: next.Description,
	})
	state.Touch(now)

	if _, err := o.repo.Save(ctx, &gamesession.SaveInput{State: state}); err != nil {
		return nil, errors.Wrap(err, "failed to persist graduation")
	}

	slog.Info("advanced stage",
		"player_id", input.PlayerID,
		"stage", next.ID,
		"stage_index", next.Index,
	)

	return &AdvanceStageOutput{
		State:    state,
		NewStage: next,
	}, nil
}

// RecordMint records an externally confirmed badge mint for a stage.
// Recording an already minted stage changes nothing and is not an error.
func (o *orchestrator) RecordMint(ctx context.Context, input *RecordMintInput) (*RecordMintOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.StageID == "" {
		return nil, errors.InvalidArgument("stage ID is required")
	}

	stage, err := game.StageByID(input.StageID)
	if err != nil {
		return nil, err
	}

	unlock := o.lockPlayer(input.PlayerID)
	defer unlock()

	state, err := o.loadOrCreateLocked(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if !state.RecordMint(input.StageID, input.MintAddress) {
		return &RecordMintOutput{
			State:         state,
			AlreadyMinted: true,
		}, nil
	}

	now := o.clock.Now()
	state.AppendHistory(game.HistoryEntry{
		ID:          o.idGen.Generate(),
		Timestamp:   now.UnixMilli(),
		Type:        game.HistoryMint,
		Title:       "Minted " + stage.Name + " Badge",
		Description: "Badge NFT minted for reaching " + stage.Name + ".",
	})
	state.Touch(now)

	if _, err := o.repo.Save(ctx, &gamesession.SaveInput{State: state}); err != nil {
		return nil, errors.Wrap(err, "failed to persist mint")
	}

	slog.Info("recorded badge mint",
		"player_id", input.PlayerID,
		"stage", input.StageID,
		"total_minted", state.TotalMinted,
	)

	return &RecordMintOutput{State: state}, nil
}

// ResetGame deletes the persisted session and starts a fresh one
func (o *orchestrator) ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock := o.lockPlayer(input.PlayerID)
	defer unlock()

	if _, err := o.repo.Delete(ctx, &gamesession.DeleteInput{PlayerID: input.PlayerID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete saved game")
	}

	state, err := o.startNewGameLocked(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	slog.Info("reset game", "player_id", input.PlayerID)

	return &ResetGameOutput{State: state}, nil
}
