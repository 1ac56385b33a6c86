// Package schedule defines the core domain types for tourboard.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"tourboard/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyDescription  = errors.New("description cannot be empty")
	ErrInvalidGroup      = errors.New("entry must belong to a group")
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")
	ErrEndBeforeStart    = errors.New("end time must be after start time")
	ErrHalfScheduled     = errors.New("start and end time must be set together")
)

// Domain errors.
var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrGroupNotFound = errors.New("group not found")
)

// Group is one travel group sharing the pool of locations and venues.
type Group struct {
	ID   int64
	Name string
}

// Entry represents one bookable activity on the timeline.
// Start and End are "HH:MM" strings; both empty means the entry is
// unscheduled and excluded from timeline math. "24:00" is a valid End.
type Entry struct {
	ID          int64
	GroupID     int64
	Date        time.Time
	Start       string
	End         string
	Location    string
	Description string
	Notes       string
	CreatedAt   time.Time
}

// NewEntry creates a new Entry with validation.
// date can be empty (defaults to today) or in YYYY-MM-DD format.
// start and end must both be empty (unscheduled) or both in HH:MM format
// with end after start.
func NewEntry(groupID int64, description, date, start, end, location string) (*Entry, error) {
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if groupID <= 0 {
		return nil, ErrInvalidGroup
	}

	day, err := dateutil.ParseDate(date)
	if err != nil {
		return nil, err
	}

	if err := ValidateWindow(start, end); err != nil {
		return nil, err
	}

	return &Entry{
		GroupID:     groupID,
		Date:        day,
		Start:       start,
		End:         end,
		Location:    location,
		Description: description,
		CreatedAt:   time.Now(),
	}, nil
}

// ValidateWindow checks a start/end pair. Both empty is valid (unscheduled).
func ValidateWindow(start, end string) error {
	if start == "" && end == "" {
		return nil
	}
	if start == "" || end == "" {
		return ErrHalfScheduled
	}
	if err := validateTimeFormat(start); err != nil {
		return fmt.Errorf("start time: %w", err)
	}
	if err := validateTimeFormat(end); err != nil {
		return fmt.Errorf("end time: %w", err)
	}
	if end <= start {
		return ErrEndBeforeStart
	}
	return nil
}

func validateTimeFormat(s string) error {
	if s == "24:00" {
		return nil
	}
	if len(s) != 5 {
		return ErrInvalidTimeFormat
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return ErrInvalidTimeFormat
	}
	return nil
}

// IsScheduled returns true if the entry has both a start and an end time.
func (e *Entry) IsScheduled() bool {
	return e.Start != "" && e.End != ""
}

// HasLocation returns true if the entry carries a non-empty location label.
func (e *Entry) HasLocation() bool {
	return e.Location != ""
}

// Duration returns the entry duration in minutes, or 0 if unscheduled.
func (e *Entry) Duration() int {
	if !e.IsScheduled() {
		return 0
	}
	return TimeToMinutes(e.End) - TimeToMinutes(e.Start)
}

// DayKey returns the entry's calendar-date key, ignoring time of day.
func (e *Entry) DayKey() string {
	return dateutil.DayKey(e.Date)
}

// Label returns the display label for the entry cell.
func (e *Entry) Label() string {
	if e.Location == "" {
		return e.Description
	}
	return e.Description + " @ " + e.Location
}
