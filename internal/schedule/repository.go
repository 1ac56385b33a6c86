package schedule

import (
	"context"
	"time"
)

// TimeUpdate is the single write the engine ever issues: a finalized
// start/end pair for one entry, emitted once per completed gesture.
type TimeUpdate struct {
	ID    int64
	Start string
	End   string
}

// Repository defines the storage contract the engine depends on. Reads
// always return complete snapshots; the index is rebuilt from scratch on
// every refresh, never patched incrementally.
type Repository interface {
	// ListGroups returns all travel groups.
	ListGroups(ctx context.Context) ([]Group, error)

	// ListEntries returns all entries with dates in [start, end] inclusive,
	// unscheduled entries included.
	ListEntries(ctx context.Context, start, end time.Time) ([]*Entry, error)

	// CreateEntry adds a new entry and fills in its ID.
	CreateEntry(ctx context.Context, e *Entry) error

	// GetEntry returns one entry by id, or nil if it does not exist.
	GetEntry(ctx context.Context, id int64) (*Entry, error)

	// UpdateEntryTimes persists a finalized time window for one entry.
	// The store re-validates end > start; it must not trust the client.
	UpdateEntryTimes(ctx context.Context, u TimeUpdate) error

	// GetDailyCard returns the card for a group and date, or nil if no
	// card exists for that date (a valid state, not an error).
	GetDailyCard(ctx context.Context, groupID int64, date time.Time) (*DailyCard, error)

	// ListDailyCards returns all cards with dates in [start, end] inclusive.
	ListDailyCards(ctx context.Context, start, end time.Time) ([]*DailyCard, error)

	// PutDailyCard inserts or replaces the card for its group and date.
	PutDailyCard(ctx context.Context, card *DailyCard) error

	// CreateGroup adds a new group and fills in its ID.
	CreateGroup(ctx context.Context, g *Group) error

	// Close releases any resources held by the repository.
	Close() error
}
