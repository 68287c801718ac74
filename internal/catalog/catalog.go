// Package catalog owns the static life-event tables and random event
// selection. Events are compiled-in data partitioned by career stage;
// the catalog validates the partition once at construction and fails
// fast on a malformed table.
package catalog

//go:generate mockgen -destination=mock/mock_catalog.go -package=catalogmock github.com/berkingurcan/siglife-api/internal/catalog Catalog

import (
	"math/rand"
	"sync"
	"time"

	"github.com/berkingurcan/siglife-api/internal/entities/game"
	"github.com/berkingurcan/siglife-api/internal/errors"
)

// Events carry 2-3 choices each
const (
	minChoicesPerEvent = 2
	maxChoicesPerEvent = 3
)

// Catalog selects life events for a stage
type Catalog interface {
	// EventsForStage returns the full event pool for a stage. The
	// returned slice is shared static data and must not be mutated.
	EventsForStage(stageID game.StageID) []game.GameEvent

	// RandomEvent uniformly selects an event for the stage whose id is
	// not in excludeIDs. If exclusion would empty the pool it falls
	// back to the full pool, so a valid stage never yields no event.
	// Returns errors.NotFound for an unknown stage id.
	RandomEvent(stageID game.StageID, excludeIDs []string) (*game.GameEvent, error)
}

// Config holds the dependencies for the catalog
type Config struct {
	// Rand is the randomness source for event selection. Defaults to a
	// time-seeded source; tests inject a fixed seed.
	Rand *rand.Rand
}

type catalog struct {
	byStage map[game.StageID][]game.GameEvent

	mu  sync.Mutex // rand.Rand is not goroutine safe
	rng *rand.Rand
}

// New builds the catalog from the compiled-in event table. It returns an
// error if any stage has no events, an event has an out-of-range choice
// count, or two events share an id.
func New(cfg *Config) (Catalog, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	byStage := make(map[game.StageID][]game.GameEvent, game.StageCount)
	seen := make(map[string]bool, len(allEvents))
	for _, event := range allEvents {
		if len(event.Choices) < minChoicesPerEvent || len(event.Choices) > maxChoicesPerEvent {
			return nil, errors.InvalidArgumentf("event %q has %d choices, want %d-%d",
				event.ID, len(event.Choices), minChoicesPerEvent, maxChoicesPerEvent)
		}
		if seen[event.ID] {
			return nil, errors.InvalidArgumentf("duplicate event id %q", event.ID)
		}
		seen[event.ID] = true
		byStage[event.Stage] = append(byStage[event.Stage], event)
	}

	for i := range game.Stages {
		if len(byStage[game.Stages[i].ID]) == 0 {
			return nil, errors.InvalidArgumentf("stage %q has no events", game.Stages[i].ID)
		}
	}

	return &catalog{
		byStage: byStage,
		rng:     rng,
	}, nil
}

func (c *catalog) EventsForStage(stageID game.StageID) []game.GameEvent {
	return c.byStage[stageID]
}

func (c *catalog) RandomEvent(stageID game.StageID, excludeIDs []string) (*game.GameEvent, error) {
	pool, ok := c.byStage[stageID]
	if !ok {
		return nil, errors.NotFoundf("stage %q not found", stageID)
	}

	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	candidates := make([]*game.GameEvent, 0, len(pool))
	for i := range pool {
		if !excluded[pool[i].ID] {
			candidates = append(candidates, &pool[i])
		}
	}

	// All events seen: reset and pick from the full pool
	if len(candidates) == 0 {
		candidates = candidates[:0]
		for i := range pool {
			candidates = append(candidates, &pool[i])
		}
	}

	c.mu.Lock()
	idx := c.rng.Intn(len(candidates))
	c.mu.Unlock()

	return candidates[idx], nil
}
