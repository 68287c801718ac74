package game_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/berkingurcan/siglife-api/internal/entities/game"
)

func TestNewGameState(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	state := game.NewGameState("player-1", now)

	assert.Equal(t, game.SchemaVersion, state.Version)
	assert.Equal(t, "player-1", state.PlayerID)
	assert.Equal(t, game.StageStudent, state.CurrentStage)
	assert.Equal(t, game.InitialStats, state.Stats)
	assert.Empty(t, state.History)
	assert.Empty(t, state.MintedStages)
	assert.Zero(t, state.TotalMinted)
	assert.Equal(t, now.UnixMilli(), state.CreatedAt)
	assert.Equal(t, now.UnixMilli(), state.UpdatedAt)
}

func TestTouch(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	state := game.NewGameState("player-1", created)

	later := created.Add(5 * time.Minute)
	state.Touch(later)

	assert.Equal(t, created.UnixMilli(), state.CreatedAt)
	assert.Equal(t, later.UnixMilli(), state.UpdatedAt)
}

func TestAppendHistory_PreservesOrder(t *testing.T) {
	state := game.NewGameState("player-1", time.Now())

	state.AppendHistory(game.HistoryEntry{ID: "h1", Type: game.HistoryEvent})
	state.AppendHistory(game.HistoryEntry{ID: "h2", Type: game.HistoryGraduation})
	state.AppendHistory(game.HistoryEntry{ID: "h3", Type: game.HistoryMint})

	require.Len(t, state.History, 3)
	assert.Equal(t, "h1", state.History[0].ID)
	assert.Equal(t, "h2", state.History[1].ID)
	assert.Equal(t, "h3", state.History[2].ID)
}

func TestRecordMint_Idempotent(t *testing.T) {
	state := game.NewGameState("player-1", time.Now())

	assert.True(t, state.RecordMint(game.StageIntern, "mint-addr-1"))
	assert.False(t, state.RecordMint(game.StageIntern, "mint-addr-other"))

	assert.Equal(t, []game.StageID{game.StageIntern}, state.MintedStages)
	assert.Equal(t, 1, state.TotalMinted)
	assert.Equal(t, "mint-addr-1", state.MintAddrs[game.StageIntern])
}

func TestRecordMint_CountTracksSet(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		state := game.NewGameState("player-1", time.Now())
		stageIDs := make([]game.StageID, len(game.Stages))
		for i := range game.Stages {
			stageIDs[i] = game.Stages[i].ID
		}

		n := rapid.IntRange(1, 30).Draw(t, "mints")
		for i := 0; i < n; i++ {
			stage := rapid.SampledFrom(stageIDs).Draw(t, "stage")
			state.RecordMint(stage, "")
		}

		if state.TotalMinted != len(state.MintedStages) {
			t.Fatalf("TotalMinted %d != len(MintedStages) %d",
				state.TotalMinted, len(state.MintedStages))
		}
		seen := make(map[game.StageID]bool)
		for _, id := range state.MintedStages {
			if seen[id] {
				t.Fatalf("stage %s minted twice", id)
			}
			seen[id] = true
		}
	})
}

func TestHasMinted(t *testing.T) {
	state := game.NewGameState("player-1", time.Now())
	assert.False(t, state.HasMinted(game.StageStudent))

	state.RecordMint(game.StageStudent, "")
	assert.True(t, state.HasMinted(game.StageStudent))
	assert.False(t, state.HasMinted(game.StageIntern))
}

func TestAnsweredEventIDs(t *testing.T) {
	state := game.NewGameState("player-1", time.Now())

	state.AppendHistory(game.HistoryEntry{ID: "h1", Type: game.HistoryEvent, EventID: "student_1"})
	state.AppendHistory(game.HistoryEntry{ID: "h2", Type: game.HistoryGraduation})
	state.AppendHistory(game.HistoryEntry{ID: "h3", Type: game.HistoryEvent, EventID: "student_3"})
	state.AppendHistory(game.HistoryEntry{ID: "h4", Type: game.HistoryMint})

	assert.Equal(t, []string{"student_1", "student_3"}, state.AnsweredEventIDs())
}

func TestRecentFirst(t *testing.T) {
	history := []game.HistoryEntry{{ID: "h1"}, {ID: "h2"}, {ID: "h3"}}

	got := game.RecentFirst(history)
	assert.Equal(t, []game.HistoryEntry{{ID: "h3"}, {ID: "h2"}, {ID: "h1"}}, got)
	// Input untouched.
	assert.Equal(t, "h1", history[0].ID)
}

func TestCountByType(t *testing.T) {
	counts := game.CountByType([]game.HistoryEntry{
		{Type: game.HistoryEvent},
		{Type: game.HistoryEvent},
		{Type: game.HistoryGraduation},
	})
	assert.Equal(t, 2, counts[game.HistoryEvent])
	assert.Equal(t, 1, counts[game.HistoryGraduation])
	assert.Zero(t, counts[game.HistoryMint])
}

func TestMintFeeForStage(t *testing.T) {
	assert.Equal(t, uint64(20_000_000), game.MintFeeForStage(game.StageStudent))
	assert.Equal(t, uint64(40_000_000), game.MintFeeForStage(game.StageIntern))
	assert.Equal(t, uint64(160_000_000), game.MintFeeForStage(game.StageSigmaElite))
	// Unknown stages fall back to the base fee.
	assert.Equal(t, uint64(20_000_000), game.MintFeeForStage("astronaut"))
}

func TestBadgeMetadataForStage(t *testing.T) {
	meta, err := game.BadgeMetadataForStage(game.StageCEO)
	require.NoError(t, err)
	assert.Equal(t, "SigLife - CEO Badge", meta.Name)
	assert.Equal(t, game.BadgeSymbol, meta.Symbol)
	assert.NotEmpty(t, meta.URI)
	assert.Equal(t, 500, meta.SellerFeeBasisPoints)

	_, err = game.BadgeMetadataForStage("astronaut")
	assert.Error(t, err)
}
