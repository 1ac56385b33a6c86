package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"tourboard/internal/schedule"
)

type fakeRepo struct {
	groups      func() ([]schedule.Group, error)
	entries     func(start, end time.Time) ([]*schedule.Entry, error)
	cards       func(start, end time.Time) ([]*schedule.DailyCard, error)
	updateTimes func(u schedule.TimeUpdate) error
}

func (f fakeRepo) ListGroups(ctx context.Context) ([]schedule.Group, error) {
	if f.groups == nil {
		return nil, errors.New("not implemented")
	}
	return f.groups()
}

func (f fakeRepo) CreateGroup(ctx context.Context, g *schedule.Group) error {
	return errors.New("not implemented")
}

func (f fakeRepo) ListEntries(ctx context.Context, start, end time.Time) ([]*schedule.Entry, error) {
	if f.entries == nil {
		return nil, errors.New("not implemented")
	}
	return f.entries(start, end)
}

func (f fakeRepo) CreateEntry(ctx context.Context, e *schedule.Entry) error {
	return errors.New("not implemented")
}

func (f fakeRepo) GetEntry(ctx context.Context, id int64) (*schedule.Entry, error) {
	return nil, errors.New("not implemented")
}

func (f fakeRepo) UpdateEntryTimes(ctx context.Context, u schedule.TimeUpdate) error {
	if f.updateTimes == nil {
		return errors.New("not implemented")
	}
	return f.updateTimes(u)
}

func (f fakeRepo) GetDailyCard(ctx context.Context, groupID int64, date time.Time) (*schedule.DailyCard, error) {
	return nil, errors.New("not implemented")
}

func (f fakeRepo) ListDailyCards(ctx context.Context, start, end time.Time) ([]*schedule.DailyCard, error) {
	if f.cards == nil {
		return nil, errors.New("not implemented")
	}
	return f.cards(start, end)
}

func (f fakeRepo) PutDailyCard(ctx context.Context, card *schedule.DailyCard) error {
	return errors.New("not implemented")
}

func (f fakeRepo) Close() error {
	return nil
}

func TestLoadSnapshotReturnsSnapshotMsg(t *testing.T) {
	focus := time.Date(2026, 7, 14, 0, 0, 0, 0, time.Local)

	var gotStart, gotEnd time.Time
	repo := fakeRepo{
		groups: func() ([]schedule.Group, error) {
			return []schedule.Group{{ID: 1, Name: "Red group"}}, nil
		},
		entries: func(start, end time.Time) ([]*schedule.Entry, error) {
			gotStart, gotEnd = start, end
			return []*schedule.Entry{
				{
					ID:          1,
					GroupID:     1,
					Description: "City walking tour",
					Date:        focus,
					Start:       "09:00",
					End:         "10:30",
					Location:    "Old Town",
				},
			}, nil
		},
		cards: func(start, end time.Time) ([]*schedule.DailyCard, error) {
			return nil, nil
		},
	}

	msg := LoadSnapshot(repo, focus)()

	snap, ok := msg.(SnapshotMsg)
	if !ok {
		t.Fatalf("msg type = %T, want SnapshotMsg", msg)
	}
	if len(snap.Groups) != 1 || len(snap.Entries) != 1 {
		t.Fatalf("snapshot sizes = %d groups, %d entries", len(snap.Groups), len(snap.Entries))
	}
	if snap.Entries[0].Description != "City walking tour" {
		t.Fatalf("entry description = %q", snap.Entries[0].Description)
	}

	wantStart := focus.AddDate(0, 0, -SnapshotWindowDays)
	wantEnd := focus.AddDate(0, 0, SnapshotWindowDays)
	if !gotStart.Equal(wantStart) || !gotEnd.Equal(wantEnd) {
		t.Fatalf("range = %s..%s, want %s..%s", gotStart, gotEnd, wantStart, wantEnd)
	}
}

func TestLoadSnapshotPropagatesError(t *testing.T) {
	repo := fakeRepo{
		groups: func() ([]schedule.Group, error) {
			return nil, errors.New("db locked")
		},
	}

	msg := LoadSnapshot(repo, time.Now())()
	if _, ok := msg.(ErrMsg); !ok {
		t.Fatalf("msg type = %T, want ErrMsg", msg)
	}
}

func TestCommitEntryTimes(t *testing.T) {
	update := schedule.TimeUpdate{ID: 7, Start: "10:00", End: "11:30"}

	t.Run("success", func(t *testing.T) {
		var got schedule.TimeUpdate
		repo := fakeRepo{updateTimes: func(u schedule.TimeUpdate) error {
			got = u
			return nil
		}}

		msg := CommitEntryTimes(repo, update)()
		done, ok := msg.(CommitDoneMsg)
		if !ok {
			t.Fatalf("msg type = %T, want CommitDoneMsg", msg)
		}
		if got != update || done.Update != update {
			t.Fatalf("committed update = %+v, want %+v", got, update)
		}
	})

	t.Run("failure carries the update", func(t *testing.T) {
		repo := fakeRepo{updateTimes: func(u schedule.TimeUpdate) error {
			return schedule.ErrEntryNotFound
		}}

		msg := CommitEntryTimes(repo, update)()
		failed, ok := msg.(CommitFailedMsg)
		if !ok {
			t.Fatalf("msg type = %T, want CommitFailedMsg", msg)
		}
		if failed.Update != update {
			t.Fatalf("failed update = %+v, want %+v", failed.Update, update)
		}
		if !errors.Is(failed.Err, schedule.ErrEntryNotFound) {
			t.Fatalf("err = %v", failed.Err)
		}
	})
}
