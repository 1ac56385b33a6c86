package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2025-01-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("empty defaults to today", func(t *testing.T) {
		got, err := ParseDate("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		today := TruncateToDay(time.Now())
		if !got.Equal(today) {
			t.Errorf("got %v, want %v", got, today)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := ParseDate("01-15-2025")
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("got error %v, want %v", err, ErrInvalidDateFormat)
		}
	})
}

func TestNewDateRange(t *testing.T) {
	t.Run("end defaults to start", func(t *testing.T) {
		r, err := NewDateRange("2025-03-10", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.Start.Equal(r.End) {
			t.Errorf("end = %v, want %v", r.End, r.Start)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := NewDateRange("2025-03-10", "2025-03-09")
		if !errors.Is(err, ErrEndDateBeforeStart) {
			t.Errorf("got error %v, want %v", err, ErrEndDateBeforeStart)
		}
	})
}

func TestDayKey(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "midnight",
			in:   time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC),
			want: "2024-10-15",
		},
		{
			name: "time of day ignored",
			in:   time.Date(2024, 10, 15, 23, 59, 59, 0, time.UTC),
			want: "2024-10-15",
		},
		{
			name: "zero padded",
			in:   time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC),
			want: "2024-01-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayKey(tt.in); got != tt.want {
				t.Errorf("DayKey(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	base := time.Date(2024, 10, 15, 9, 0, 0, 0, time.UTC)

	if !SameDay(base, base.Add(8*time.Hour)) {
		t.Error("same calendar date with different times should match")
	}
	if SameDay(base, base.AddDate(0, 0, 1)) {
		t.Error("different dates should not match")
	}
}

func TestParseRelativeDate(t *testing.T) {
	// Wednesday
	ref := time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)
	today := TruncateToDay(ref)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr error
	}{
		{name: "empty is today", input: "", want: today},
		{name: "today", input: "today", want: today},
		{name: "yesterday", input: "yesterday", want: today.AddDate(0, 0, -1)},
		{name: "tomorrow", input: "tomorrow", want: today.AddDate(0, 0, 1)},
		{name: "case insensitive", input: "ToMoRRoW", want: today.AddDate(0, 0, 1)},
		{name: "next friday", input: "friday", want: today.AddDate(0, 0, 2)},
		{name: "same weekday jumps a week", input: "wednesday", want: today.AddDate(0, 0, 7)},
		{name: "absolute date", input: "2025-02-01", want: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{name: "past absolute date allowed", input: "2024-12-31", want: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
		{name: "garbage", input: "not-a-date", wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRelativeDate(tt.input, ref)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got error %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseRelativeDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
