package session_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/berkingurcan/siglife-api/internal/catalog"
	"github.com/berkingurcan/siglife-api/internal/entities/game"
	"github.com/berkingurcan/siglife-api/internal/errors"
	"github.com/berkingurcan/siglife-api/internal/orchestrators/session"
	"github.com/berkingurcan/siglife-api/internal/pkg/clock"
	"github.com/berkingurcan/siglife-api/internal/pkg/idgen"
	gamesession "github.com/berkingurcan/siglife-api/internal/repositories/game_session"
	gamesessionmock "github.com/berkingurcan/siglife-api/internal/repositories/game_session/mock"
)

const testPlayerID = "player-1"

// OrchestratorTestSuite exercises the orchestrator end to end against the
// in-memory repository with a fixed clock and deterministic ids.
type OrchestratorTestSuite struct {
	suite.Suite
	svc     session.Service
	repo    *gamesession.InMemoryRepository
	catalog catalog.Catalog
	clock   *clock.Fixed
	ctx     context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.repo = gamesession.NewInMemory()
	s.clock = clock.NewFixed(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	cat, err := catalog.New(&catalog.Config{
		Rand: rand.New(rand.NewSource(1)),
	})
	s.Require().NoError(err)
	s.catalog = cat

	svc, err := session.NewOrchestrator(&session.Config{
		GameSessionRepo: s.repo,
		Catalog:         cat,
		IDGenerator:     idgen.NewSequential("hist"),
		Clock:           s.clock,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *OrchestratorTestSuite) TestStartNewGame() {
	out, err := s.svc.StartNewGame(s.ctx, &session.StartNewGameInput{PlayerID: testPlayerID})
	s.Require().NoError(err)

	s.Equal(testPlayerID, out.State.PlayerID)
	s.Equal(game.StageStudent, out.State.CurrentStage)
	s.Equal(game.InitialStats, out.State.Stats)
	s.Empty(out.State.History)

	// Persisted immediately.
	getOut, err := s.repo.Get(s.ctx, &gamesession.GetInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Equal(out.State, getOut.State)
}

func (s *OrchestratorTestSuite) TestGetSession_CreatesWhenMissing() {
	out, err := s.svc.GetSession(s.ctx, &session.GetSessionInput{PlayerID: testPlayerID})
	s.Require().NoError(err)

	s.Equal(game.StageStudent, out.State.CurrentStage)
	s.False(out.CanGraduate)
	s.Nil(out.PendingEvent)

	exists, err := s.repo.Exists(s.ctx, &gamesession.ExistsInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.True(exists.Exists)
}

func (s *OrchestratorTestSuite) TestGetSession_LoadsExisting() {
	started, err := s.svc.StartNewGame(s.ctx, &session.StartNewGameInput{PlayerID: testPlayerID})
	s.Require().NoError(err)

	out, err := s.svc.GetSession(s.ctx, &session.GetSessionInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Equal(started.State.CreatedAt, out.State.CreatedAt)
}

func (s *OrchestratorTestSuite) TestHasSavedGame() {
	out, err := s.svc.HasSavedGame(s.ctx, &session.HasSavedGameInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.False(out.Exists)

	_, err = s.svc.StartNewGame(s.ctx, &session.StartNewGameInput{PlayerID: testPlayerID})
	s.Require().NoError(err)

	out, err = s.svc.HasSavedGame(s.ctx, &session.HasSavedGameInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.True(out.Exists)
}

func (s *OrchestratorTestSuite) TestTriggerRandomEvent_SetsPendingOnly() {
	_, err := s.svc.StartNewGame(s.ctx, &session.StartNewGameInput{PlayerID: testPlayerID})
	s.Require().NoError(err)

	out, err := s.svc.TriggerRandomEvent(s.ctx, &session.TriggerRandomEventInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Require().NotNil(out.Event)
	s.Equal(game.StageStudent, out.Event.Stage)

	// No stats or history changed, nothing persisted.
	got, err := s.svc.GetSession(s.ctx, &session.GetSessionInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Equal(game.InitialStats, got.State.Stats)
	s.Empty(got.State.History)
	s.Require().NotNil(got.PendingEvent)
	s.Equal(out.Event.ID, got.PendingEvent.ID)
}

func (s *OrchestratorTestSuite) TestMakeChoice_NoPendingEvent() {
	_, err := s.svc.MakeChoice(s.ctx, &session.MakeChoiceInput{
		PlayerID: testPlayerID,
		ChoiceID: "study_hard",
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestMakeChoice_UnknownChoice() {
	_, err := s.svc.TriggerRandomEvent(s.ctx, &session.TriggerRandomEventInput{PlayerID: testPlayerID})
	s.Require().NoError(err)

	_, err = s.svc.MakeChoice(s.ctx, &session.MakeChoiceInput{
		PlayerID: testPlayerID,
		ChoiceID: "not_a_choice",
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	// Pending event survives a bad choice.
	got, err := s.svc.GetSession(s.ctx, &session.GetSessionInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.NotNil(got.PendingEvent)
}

func (s *OrchestratorTestSuite) TestMakeChoice_AppliesAndPersists() {
	triggered, err := s.svc.TriggerRandomEvent(s.ctx, &session.TriggerRandomEventInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	choice := triggered.Event.Choices[0]

	s.clock.Advance(time.Minute)
	out, err := s.svc.MakeChoice(s.ctx, &session.MakeChoiceInput{
		PlayerID: testPlayerID,
		ChoiceID: choice.ID,
	})
	s.Require().NoError(err)

	s.Equal(choice.Outcome, out.Outcome)
	s.Equal(choice.Effects, out.AppliedChanges)
	s.Equal(game.InitialStats.Apply(choice.Effects), out.State.Stats)

	s.Require().Len(out.State.History, 1)
	entry := out.State.History[0]
	s.Equal(game.HistoryEvent, entry.Type)
	s.Equal(triggered.Event.ID, entry.EventID)
	s.Equal(triggered.Event.Title, entry.Title)
	s.Equal(choice.Outcome, entry.Description)
	s.Require().NotNil(entry.StatChanges)
	s.Equal(choice.Effects, *entry.StatChanges)

	// Pending slot cleared, state persisted.
	got, err := s.svc.GetSession(s.ctx, &session.GetSessionInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Nil(got.PendingEvent)
	s.Equal(out.State.Stats, got.State.Stats)
	s.Len(got.State.History, 1)
}

func (s *OrchestratorTestSuite) TestMakeChoice_SecondResolveFails() {
	triggered, err := s.svc.TriggerRandomEvent(s.ctx, &session.TriggerRandomEventInput{PlayerID: testPlayerID})
	s.Require().NoError(err)

	_, err = s.svc.MakeChoice(s.ctx, &session.MakeChoiceInput{
		PlayerID: testPlayerID,
		ChoiceID: triggered.Event.Choices[0].ID,
	})
	s.Require().NoError(err)

	_, err = s.svc.MakeChoice(s.ctx, &session.MakeChoiceInput{
		PlayerID: testPlayerID,
		ChoiceID: triggered.Event.Choices[0].ID,
	})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestTriggerRandomEvent_ExcludesAnswered() {
	stagePool := len(s.catalog.EventsForStage(game.StageStudent))
	pool := []string{}
	for {
		triggered, err := s.svc.TriggerRandomEvent(s.ctx, &session.TriggerRandomEventInput{PlayerID: testPlayerID})
		s.Require().NoError(err)

		seen := false
		for _, id := range pool {
			if id == triggered.Event.ID {
				seen = true
			}
		}
		if seen {
			s.Fail("event repeated before pool exhausted", "event %s", triggered.Event.ID)
		}
		pool = append(pool, triggered.Event.ID)

		_, err = s.svc.MakeChoice(s.ctx, &session.MakeChoiceInput{
			PlayerID: testPlayerID,
			ChoiceID: triggered.Event.Choices[0].ID,
		})
		s.Require().NoError(err)

		if len(pool) == stagePool {
			break
		}
	}

	// Pool exhausted: selection falls back rather than failing.
	out, err := s.svc.TriggerRandomEvent(s.ctx, &session.TriggerRandomEventInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.NotNil(out.Event)
}

func (s *OrchestratorTestSuite) TestDismissEvent() {
	_, err := s.svc.TriggerRandomEvent(s.ctx, &session.TriggerRandomEventInput{PlayerID: testPlayerID})
	s.Require().NoError(err)

	out, err := s.svc.DismissEvent(s.ctx, &session.DismissEventInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.True(out.Dismissed)

	got, err := s.svc.GetSession(s.ctx, &session.GetSessionInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Nil(got.PendingEvent)
	s.Empty(got.State.History)

	// Dismissing again is a no-op.
	out, err = s.svc.DismissEvent(s.ctx, &session.DismissEventInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.False(out.Dismissed)
}

func (s *OrchestratorTestSuite) TestAdvanceStage_RequirementsUnmet() {
	_, err := s.svc.StartNewGame(s.ctx, &session.StartNewGameInput{PlayerID: testPlayerID})
	s.Require().NoError(err)

	_, err = s.svc.AdvanceStage(s.ctx, &session.AdvanceStageInput{PlayerID: testPlayerID})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

// seedState persists a prepared state directly, bypassing the service.
func (s *OrchestratorTestSuite) seedState(state *game.GameState) {
	_, err := s.repo.Save(s.ctx, &gamesession.SaveInput{State: state})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestAdvanceStage_AtExactThresholds() {
	state := game.NewGameState(testPlayerID, s.clock.Now())
	state.Stats = game.Stats{Intelligence: 30, Discipline: 25}
	s.seedState(state)

	out, err := s.svc.AdvanceStage(s.ctx, &session.AdvanceStageInput{PlayerID: testPlayerID})
	s.Require().NoError(err)

	s.Equal(game.StageIntern, out.State.CurrentStage)
	s.Equal(game.StageIntern, out.NewStage.ID)

	s.Require().Len(out.State.History, 1)
	s.Equal(game.HistoryGraduation, out.State.History[0].Type)

	// CanGraduate now evaluated against the employee stage.
	got, err := s.svc.GetSession(s.ctx, &session.GetSessionInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.False(got.CanGraduate)
}

func (s *OrchestratorTestSuite) TestAdvanceStage_TerminalStage() {
	state := game.NewGameState(testPlayerID, s.clock.Now())
	state.CurrentStage = game.StageSigmaElite
	state.Stats = game.Stats{Money: 100, Fitness: 100, Intelligence: 100, Charisma: 100, Discipline: 100, Investments: 100}
	s.seedState(state)

	_, err := s.svc.AdvanceStage(s.ctx, &session.AdvanceStageInput{PlayerID: testPlayerID})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestRecordMint() {
	_, err := s.svc.StartNewGame(s.ctx, &session.StartNewGameInput{PlayerID: testPlayerID})
	s.Require().NoError(err)

	out, err := s.svc.RecordMint(s.ctx, &session.RecordMintInput{
		PlayerID:    testPlayerID,
		StageID:     game.StageStudent,
		MintAddress: "mint-addr-1",
	})
	s.Require().NoError(err)
	s.False(out.AlreadyMinted)
	s.Equal(1, out.State.TotalMinted)
	s.Equal("mint-addr-1", out.State.MintAddrs[game.StageStudent])

	s.Require().Len(out.State.History, 1)
	s.Equal(game.HistoryMint, out.State.History[0].Type)
}

func (s *OrchestratorTestSuite) TestRecordMint_Idempotent() {
	_, err := s.svc.RecordMint(s.ctx, &session.RecordMintInput{
		PlayerID: testPlayerID,
		StageID:  game.StageStudent,
	})
	s.Require().NoError(err)

	out, err := s.svc.RecordMint(s.ctx, &session.RecordMintInput{
		PlayerID: testPlayerID,
		StageID:  game.StageStudent,
	})
	s.Require().NoError(err)
	s.True(out.AlreadyMinted)
	s.Equal(1, out.State.TotalMinted)
	s.Len(out.State.History, 1)
}

func (s *OrchestratorTestSuite) TestRecordMint_UnknownStage() {
	_, err := s.svc.RecordMint(s.ctx, &session.RecordMintInput{
		PlayerID: testPlayerID,
		StageID:  "astronaut",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestResetGame() {
	triggered, err := s.svc.TriggerRandomEvent(s.ctx, &session.TriggerRandomEventInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	_, err = s.svc.MakeChoice(s.ctx, &session.MakeChoiceInput{
		PlayerID: testPlayerID,
		ChoiceID: triggered.Event.Choices[0].ID,
	})
	s.Require().NoError(err)

	out, err := s.svc.ResetGame(s.ctx, &session.ResetGameInput{PlayerID: testPlayerID})
	s.Require().NoError(err)

	s.Equal(game.InitialStats, out.State.Stats)
	s.Equal(game.StageStudent, out.State.CurrentStage)
	s.Empty(out.State.History)
	s.Zero(out.State.TotalMinted)

	got, err := s.svc.GetSession(s.ctx, &session.GetSessionInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Nil(got.PendingEvent)
	s.Empty(got.State.History)
}

func (s *OrchestratorTestSuite) TestStudentScenario() {
	// Full loop: create, answer an event, check the session reflects it.
	created, err := s.svc.GetSession(s.ctx, &session.GetSessionInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Equal(game.InitialStats, created.State.Stats)

	triggered, err := s.svc.TriggerRandomEvent(s.ctx, &session.TriggerRandomEventInput{PlayerID: testPlayerID})
	s.Require().NoError(err)

	choice := triggered.Event.Choices[0]
	chosen, err := s.svc.MakeChoice(s.ctx, &session.MakeChoiceInput{
		PlayerID: testPlayerID,
		ChoiceID: choice.ID,
	})
	s.Require().NoError(err)

	s.Equal(created.State.Stats.Apply(choice.Effects), chosen.State.Stats)
	s.Require().Len(chosen.State.History, 1)
	s.Equal(triggered.Event.ID, chosen.State.History[0].EventID)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

// Failure-path tests use a gomock repository so storage errors can be
// injected.
type OrchestratorFailureTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *gamesessionmock.MockRepository
	svc      session.Service
	ctx      context.Context
}

func (s *OrchestratorFailureTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = gamesessionmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	cat, err := catalog.New(&catalog.Config{
		Rand: rand.New(rand.NewSource(1)),
	})
	s.Require().NoError(err)

	svc, err := session.NewOrchestrator(&session.Config{
		GameSessionRepo: s.mockRepo,
		Catalog:         cat,
		IDGenerator:     idgen.NewSequential("hist"),
		Clock:           clock.NewFixed(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *OrchestratorFailureTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorFailureTestSuite) TestStartNewGame_SaveFails() {
	s.mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	_, err := s.svc.StartNewGame(s.ctx, &session.StartNewGameInput{PlayerID: testPlayerID})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *OrchestratorFailureTestSuite) TestGetSession_LoadFails() {
	s.mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("corrupt record"))

	_, err := s.svc.GetSession(s.ctx, &session.GetSessionInput{PlayerID: testPlayerID})
	s.Require().Error(err)
	s.Equal(errors.CodeInternal, errors.GetCode(err))
}

func (s *OrchestratorFailureTestSuite) TestMakeChoice_PersistFails() {
	state := game.NewGameState(testPlayerID, time.Now())
	s.mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(&gamesession.GetOutput{State: state}, nil).
		AnyTimes()

	triggered, err := s.svc.TriggerRandomEvent(s.ctx, &session.TriggerRandomEventInput{PlayerID: testPlayerID})
	s.Require().NoError(err)

	s.mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	_, err = s.svc.MakeChoice(s.ctx, &session.MakeChoiceInput{
		PlayerID: testPlayerID,
		ChoiceID: triggered.Event.Choices[0].ID,
	})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))

	// The event must survive a failed save so the choice can be retried.
	got, err := s.svc.GetSession(s.ctx, &session.GetSessionInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Require().NotNil(got.PendingEvent)
	s.Equal(triggered.Event.ID, got.PendingEvent.ID)

	s.mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(&gamesession.SaveOutput{Success: true}, nil)

	resolved, err := s.svc.MakeChoice(s.ctx, &session.MakeChoiceInput{
		PlayerID: testPlayerID,
		ChoiceID: triggered.Event.Choices[0].ID,
	})
	s.Require().NoError(err)
	s.Equal(triggered.Event.Choices[0].Outcome, resolved.Outcome)

	got, err = s.svc.GetSession(s.ctx, &session.GetSessionInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Nil(got.PendingEvent)
}

func (s *OrchestratorFailureTestSuite) TestMissingPlayerID() {
	_, err := s.svc.GetSession(s.ctx, &session.GetSessionInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.StartNewGame(s.ctx, &session.StartNewGameInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.MakeChoice(s.ctx, &session.MakeChoiceInput{ChoiceID: "x"})
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorFailureTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorFailureTestSuite))
}
