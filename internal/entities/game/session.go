// Package game defines the SigLife progression entities: the six bounded
// stats, the fixed career stage ladder, life events, the append-only
// history ledger, and the GameState aggregate that ties them together.
package game

import "time"

// SchemaVersion is the current serialization version of GameState.
// Bump when the persisted shape changes incompatibly.
const SchemaVersion = 1

// GameState is the root aggregate of a single player's progress. It is
// owned exclusively by the session orchestrator and serialized wholesale
// to the persistence gateway on every change.
type GameState struct {
	Version      int                `json:"version"`
	PlayerID     string             `json:"playerId"`
	CurrentStage StageID            `json:"currentStage"`
	Stats        Stats              `json:"stats"`
	History      []HistoryEntry     `json:"history"`
	MintedStages []StageID          `json:"mintedStages"`
	TotalMinted  int                `json:"totalMinted"`
	MintAddrs    map[StageID]string `json:"mintAddresses,omitempty"`
	CreatedAt    int64              `json:"createdAt"` // epoch millis
	UpdatedAt    int64              `json:"updatedAt"` // epoch millis
}

// NewGameState constructs a fresh initial session: lowest stage, initial
// stats, empty history, no mints.
func NewGameState(playerID string, now time.Time) *GameState {
	millis := now.UnixMilli()
	return &GameState{
		Version:      SchemaVersion,
		PlayerID:     playerID,
		CurrentStage: StageStudent,
		Stats:        InitialStats,
		History:      []HistoryEntry{},
		MintedStages: []StageID{},
		TotalMinted:  0,
		CreatedAt:    millis,
		UpdatedAt:    millis,
	}
}

// Touch refreshes UpdatedAt. Called by every mutating operation.
func (g *GameState) Touch(now time.Time) {
	g.UpdatedAt = now.UnixMilli()
}

// AppendHistory adds an entry at the end of the ledger. Existing entries
// are never reordered or removed.
func (g *GameState) AppendHistory(entry HistoryEntry) {
	g.History = append(g.History, entry)
}

// HasMinted reports whether a badge has already been recorded for the stage
func (g *GameState) HasMinted(stageID StageID) bool {
	for _, id := range g.MintedStages {
		if id == stageID {
			return true
		}
	}
	return false
}

// RecordMint adds stageID to the minted set if absent and keeps
// TotalMinted equal to the set size. Returns false when the stage was
// already minted, making repeated confirmations idempotent.
func (g *GameState) RecordMint(stageID StageID, mintAddress string) bool {
	if g.HasMinted(stageID) {
		return false
	}
	g.MintedStages = append(g.MintedStages, stageID)
	g.TotalMinted = len(g.MintedStages)
	if mintAddress != "" {
		if g.MintAddrs == nil {
			g.MintAddrs = make(map[StageID]string)
		}
		g.MintAddrs[stageID] = mintAddress
	}
	return true
}

// AnsweredEventIDs collects the ids of events already resolved this
// session, used to avoid re-presenting them until the stage pool is
// exhausted.
func (g *GameState) AnsweredEventIDs() []string {
	var ids []string
	for i := range g.History {
		e := &g.History[i]
		if e.Type == HistoryEvent && e.EventID != "" {
			ids = append(ids, e.EventID)
		}
	}
	return ids
}
