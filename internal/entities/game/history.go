package game

// HistoryType tags what kind of occurrence a history entry records
type HistoryType string

// History entry types
const (
	HistoryEvent      HistoryType = "event"
	HistoryGraduation HistoryType = "graduation"
	HistoryMint       HistoryType = "mint"
)

// HistoryEntry is an immutable log record of something that happened in a
// session. Entries are append-only and chronological; nothing mutates or
// removes them short of a full game reset.
type HistoryEntry struct {
	ID          string      `json:"id"`
	Timestamp   int64       `json:"timestamp"` // epoch millis
	Type        HistoryType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`

	// EventID is set for event entries so the catalog can avoid
	// re-presenting already answered events.
	EventID string `json:"eventId,omitempty"`

	// StatChanges records the deltas actually applied, present only
	// for event entries.
	StatChanges *StatDeltas `json:"statChanges,omitempty"`
}

// RecentFirst returns a copy of history in most-recent-first order.
// The input is not modified.
func RecentFirst(history []HistoryEntry) []HistoryEntry {
	out := make([]HistoryEntry, len(history))
	for i := range history {
		out[len(history)-1-i] = history[i]
	}
	return out
}

// CountByType tallies history entries per type
func CountByType(history []HistoryEntry) map[HistoryType]int {
	counts := make(map[HistoryType]int)
	for i := range history {
		counts[history[i].Type]++
	}
	return counts
}
