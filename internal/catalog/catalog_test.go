package catalog_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/berkingurcan/siglife-api/internal/catalog"
	"github.com/berkingurcan/siglife-api/internal/entities/game"
	"github.com/berkingurcan/siglife-api/internal/errors"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog catalog.Catalog
}

func (s *CatalogTestSuite) SetupTest() {
	c, err := catalog.New(&catalog.Config{
		Rand: rand.New(rand.NewSource(42)),
	})
	s.Require().NoError(err)
	s.catalog = c
}

func (s *CatalogTestSuite) TestEventsForStage_EveryStageHasEvents() {
	for i := range game.Stages {
		pool := s.catalog.EventsForStage(game.Stages[i].ID)
		s.NotEmptyf(pool, "stage %s has no events", game.Stages[i].ID)
		for _, event := range pool {
			s.Equal(game.Stages[i].ID, event.Stage)
			s.GreaterOrEqual(len(event.Choices), 2)
			s.LessOrEqual(len(event.Choices), 3)
		}
	}
}

func (s *CatalogTestSuite) TestEventsForStage_UnknownStage() {
	s.Empty(s.catalog.EventsForStage("astronaut"))
}

func (s *CatalogTestSuite) TestRandomEvent_ReturnsEventFromStagePool() {
	event, err := s.catalog.RandomEvent(game.StageStudent, nil)
	s.Require().NoError(err)
	s.Require().NotNil(event)
	s.Equal(game.StageStudent, event.Stage)
}

func (s *CatalogTestSuite) TestRandomEvent_UnknownStage() {
	event, err := s.catalog.RandomEvent("astronaut", nil)
	s.Nil(event)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *CatalogTestSuite) TestRandomEvent_RespectsExclusions() {
	pool := s.catalog.EventsForStage(game.StageIntern)
	s.Require().Greater(len(pool), 1)

	// Exclude all but the last event; selection has one candidate left.
	exclude := make([]string, 0, len(pool)-1)
	for _, event := range pool[:len(pool)-1] {
		exclude = append(exclude, event.ID)
	}
	want := pool[len(pool)-1].ID

	for i := 0; i < 20; i++ {
		event, err := s.catalog.RandomEvent(game.StageIntern, exclude)
		s.Require().NoError(err)
		s.Equal(want, event.ID)
	}
}

func (s *CatalogTestSuite) TestRandomEvent_FallsBackWhenPoolExhausted() {
	pool := s.catalog.EventsForStage(game.StageCEO)
	exclude := make([]string, 0, len(pool))
	for _, event := range pool {
		exclude = append(exclude, event.ID)
	}

	event, err := s.catalog.RandomEvent(game.StageCEO, exclude)
	s.Require().NoError(err)
	s.Require().NotNil(event)
	s.Equal(game.StageCEO, event.Stage)
}

func (s *CatalogTestSuite) TestRandomEvent_EventuallyCoversPool() {
	pool := s.catalog.EventsForStage(game.StageInvestor)
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		event, err := s.catalog.RandomEvent(game.StageInvestor, nil)
		s.Require().NoError(err)
		seen[event.ID] = true
	}
	s.Len(seen, len(pool))
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}
