package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berkingurcan/siglife-api/internal/entities/game"
)

func TestStages_LadderIsTotallyOrdered(t *testing.T) {
	require.Len(t, game.Stages, game.StageCount)
	for i := range game.Stages {
		assert.Equal(t, i, game.Stages[i].Index)
	}
}

func TestStageByID(t *testing.T) {
	stage, err := game.StageByID(game.StageCEO)
	require.NoError(t, err)
	assert.Equal(t, 5, stage.Index)
	assert.Equal(t, "CEO", stage.Name)

	_, err = game.StageByID("astronaut")
	assert.Error(t, err)
}

func TestNextStage_WalksFullLadder(t *testing.T) {
	current := game.StageStudent
	visited := []game.StageID{current}

	for {
		next, err := game.NextStage(current)
		require.NoError(t, err)
		if next == nil {
			break
		}
		visited = append(visited, next.ID)
		current = next.ID
	}

	assert.Equal(t, []game.StageID{
		game.StageStudent,
		game.StageIntern,
		game.StageEmployee,
		game.StageSideHustler,
		game.StageEntrepreneur,
		game.StageCEO,
		game.StageInvestor,
		game.StageSigmaElite,
	}, visited)
}

func TestNextStage_TerminalIsAbsorbing(t *testing.T) {
	next, err := game.NextStage(game.StageSigmaElite)
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestNextStage_UnknownStage(t *testing.T) {
	_, err := game.NextStage("astronaut")
	assert.Error(t, err)
}

func TestMeets_ThresholdIsInclusive(t *testing.T) {
	intern, err := game.StageByID(game.StageIntern)
	require.NoError(t, err)

	exactly := game.Stats{Intelligence: 30, Discipline: 25}
	assert.True(t, exactly.Meets(intern))

	oneShort := game.Stats{Intelligence: 29, Discipline: 25}
	assert.False(t, oneShort.Meets(intern))
}

func TestMeets_EmptyRequirementsAlwaysPass(t *testing.T) {
	student, err := game.StageByID(game.StageStudent)
	require.NoError(t, err)
	assert.True(t, game.Stats{}.Meets(student))
}

func TestCanAdvance(t *testing.T) {
	maxed := game.Stats{
		Money: 100, Fitness: 100, Intelligence: 100,
		Charisma: 100, Discipline: 100, Investments: 100,
	}

	assert.False(t, game.CanAdvance(game.InitialStats, game.StageStudent))
	assert.True(t, game.CanAdvance(maxed, game.StageStudent))
	assert.True(t, game.CanAdvance(maxed, game.StageInvestor))

	// Terminal stage has nothing to advance to.
	assert.False(t, game.CanAdvance(maxed, game.StageSigmaElite))

	assert.False(t, game.CanAdvance(maxed, "astronaut"))
}
