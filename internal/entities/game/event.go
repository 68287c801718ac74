package game

// EventChoice is one selectable option within a life event
type EventChoice struct {
	ID      string     `json:"id"`
	Text    string     `json:"text"`
	Effects StatDeltas `json:"effects"`
	Outcome string     `json:"outcome"`
}

// GameEvent is a life decision presented to the player. Events are
// immutable static data owned by the catalog, partitioned by stage.
// Each event carries 2-3 choices.
type GameEvent struct {
	ID          string        `json:"id"`
	Stage       StageID       `json:"stage"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Choices     []EventChoice `json:"choices"`
}

// Choice returns the choice with the given id, or nil if the event has
// no such choice
func (e *GameEvent) Choice(id string) *EventChoice {
	for i := range e.Choices {
		if e.Choices[i].ID == id {
			return &e.Choices[i]
		}
	}
	return nil
}
