package gamesession_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/berkingurcan/siglife-api/internal/entities/game"
	"github.com/berkingurcan/siglife-api/internal/errors"
	redisclient "github.com/berkingurcan/siglife-api/internal/redis"
	gamesession "github.com/berkingurcan/siglife-api/internal/repositories/game_session"
	"github.com/berkingurcan/siglife-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	server  *miniredis.Miniredis
	client  redisclient.Client
	cleanup func()
	repo    gamesession.Repository
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.server, s.client, s.cleanup = testutils.CreateTestRedisServer(s.T())
	s.ctx = context.Background()

	repo, err := gamesession.NewRedisRepository(&gamesession.Config{
		Client: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RedisRepositoryTestSuite) newState(playerID string) *game.GameState {
	state := game.NewGameState(playerID, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	state.Stats = state.Stats.Apply(game.StatDeltas{Intelligence: 8, Fitness: -3})
	state.AppendHistory(game.HistoryEntry{
		ID:          "hist_1",
		Timestamp:   state.CreatedAt,
		Type:        game.HistoryEvent,
		Title:       "Study Session",
		Description: "You aced the exam but feel exhausted.",
		EventID:     "student_1",
		StatChanges: &game.StatDeltas{Intelligence: 8, Fitness: -3, Discipline: 5},
	})
	state.RecordMint(game.StageStudent, "mint-addr")
	return state
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet_RoundTrip() {
	want := s.newState("player-1")

	saveOut, err := s.repo.Save(s.ctx, &gamesession.SaveInput{State: want})
	s.Require().NoError(err)
	s.True(saveOut.Success)

	getOut, err := s.repo.Get(s.ctx, &gamesession.GetInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal(want, getOut.State)
}

func (s *RedisRepositoryTestSuite) TestGet_NotFound() {
	out, err := s.repo.Get(s.ctx, &gamesession.GetInput{PlayerID: "ghost"})
	s.Nil(out)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGet_EmptyPlayerID() {
	_, err := s.repo.Get(s.ctx, &gamesession.GetInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGet_CorruptRecord() {
	s.Require().NoError(s.server.Set("session:player-1", "{not json"))

	_, err := s.repo.Get(s.ctx, &gamesession.GetInput{PlayerID: "player-1"})
	s.Require().Error(err)
}

func (s *RedisRepositoryTestSuite) TestSave_ReplacesPrevious() {
	state := s.newState("player-1")
	_, err := s.repo.Save(s.ctx, &gamesession.SaveInput{State: state})
	s.Require().NoError(err)

	state.CurrentStage = game.StageIntern
	state.AppendHistory(game.HistoryEntry{ID: "hist_2", Type: game.HistoryGraduation})
	_, err = s.repo.Save(s.ctx, &gamesession.SaveInput{State: state})
	s.Require().NoError(err)

	getOut, err := s.repo.Get(s.ctx, &gamesession.GetInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal(game.StageIntern, getOut.State.CurrentStage)
	s.Len(getOut.State.History, 2)
}

func (s *RedisRepositoryTestSuite) TestSave_NilState() {
	_, err := s.repo.Save(s.ctx, &gamesession.SaveInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	state := s.newState("player-1")
	_, err := s.repo.Save(s.ctx, &gamesession.SaveInput{State: state})
	s.Require().NoError(err)

	delOut, err := s.repo.Delete(s.ctx, &gamesession.DeleteInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.True(delOut.Existed)

	_, err = s.repo.Get(s.ctx, &gamesession.GetInput{PlayerID: "player-1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete_MissingIsNotError() {
	delOut, err := s.repo.Delete(s.ctx, &gamesession.DeleteInput{PlayerID: "ghost"})
	s.Require().NoError(err)
	s.False(delOut.Existed)
}

func (s *RedisRepositoryTestSuite) TestExists() {
	out, err := s.repo.Exists(s.ctx, &gamesession.ExistsInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.False(out.Exists)

	_, err = s.repo.Save(s.ctx, &gamesession.SaveInput{State: s.newState("player-1")})
	s.Require().NoError(err)

	out, err = s.repo.Exists(s.ctx, &gamesession.ExistsInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.True(out.Exists)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
