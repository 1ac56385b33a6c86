package schedule

import (
	"sort"
	"time"
)

// Nominal times for ancillary daily-card events.
const (
	BreakfastTime = "07:00"
	LunchTime     = "12:00"
	DinnerTime    = "19:00"
	LodgingTime   = "21:00"
)

// DailyCard is the per-group-per-date record of meals and lodging.
// Empty fields synthesize no event. Cards are read-only from the
// scheduling engine's perspective.
type DailyCard struct {
	GroupID   int64
	Date      time.Time
	Breakfast string
	Lunch     string
	Dinner    string
	Lodging   string
}

// ItemKind tags a composed timeline item.
type ItemKind string

const (
	ItemEntry     ItemKind = "entry"
	ItemBreakfast ItemKind = "breakfast"
	ItemLunch     ItemKind = "lunch"
	ItemDinner    ItemKind = "dinner"
	ItemLodging   ItemKind = "lodging"
)

// TimelineItem is one row of a composed day: either a schedule entry or an
// ancillary event synthesized from the daily card. Time is the "HH:MM"
// sort key; it is empty for unscheduled entries, which sort last.
type TimelineItem struct {
	Kind  ItemKind
	Time  string
	Label string
	Entry *Entry // nil for ancillary events
}

// IsAncillary returns true for fixed-time meal/lodging items. They are not
// draggable or resizable.
func (it TimelineItem) IsAncillary() bool {
	return it.Kind != ItemEntry
}

// ComposeDay merges a group's entries for one date with the ancillary
// events from its daily card into a single chronologically ordered list.
// Entries without a start time land in a stable end-of-day bucket after
// every timed item. Items sharing a time key keep their relative order.
func ComposeDay(groupID int64, date time.Time, ix *Index, card *DailyCard) []TimelineItem {
	var items []TimelineItem

	for _, e := range ix.EntriesFor(groupID, date) {
		items = append(items, TimelineItem{
			Kind:  ItemEntry,
			Time:  e.Start,
			Label: e.Label(),
			Entry: e,
		})
	}

	items = append(items, cardItems(card)...)

	// Lexicographic comparison is a total order here because all time keys
	// are zero-padded "HH:MM" strings.
	sort.SliceStable(items, func(i, j int) bool {
		ti, tj := items[i].Time, items[j].Time
		if ti == "" {
			return false
		}
		if tj == "" {
			return true
		}
		return ti < tj
	})

	return items
}

func cardItems(card *DailyCard) []TimelineItem {
	if card == nil {
		return nil
	}
	var items []TimelineItem
	if card.Breakfast != "" {
		items = append(items, TimelineItem{Kind: ItemBreakfast, Time: BreakfastTime, Label: card.Breakfast})
	}
	if card.Lunch != "" {
		items = append(items, TimelineItem{Kind: ItemLunch, Time: LunchTime, Label: card.Lunch})
	}
	if card.Dinner != "" {
		items = append(items, TimelineItem{Kind: ItemDinner, Time: DinnerTime, Label: card.Dinner})
	}
	if card.Lodging != "" {
		items = append(items, TimelineItem{Kind: ItemLodging, Time: LodgingTime, Label: card.Lodging})
	}
	return items
}
