package domain

import (
	"errors"
	"testing"
	"time"
)

func tourOffer() *BookableOffer {
	return &BookableOffer{
		Kind:       KindTour,
		ItemID:     11,
		ScheduleID: 42,
		PerPerson: &PerPersonPricing{
			PriceAdult:          4500000,
			PriceChild:          3000000,
			SingleRoomSurcharge: 500000,
		},
	}
}

func accommodationOffer() *BookableOffer {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return &BookableOffer{
		Kind:       KindAccommodation,
		ItemID:     7,
		RoomRunIDs: []int64{100, 101},
		Nights: []NightRate{
			{Date: start, PriceAdult: 400000, PriceChild: 200000},
			{Date: start.AddDate(0, 0, 1), PriceAdult: 450000, PriceChild: 200000},
		},
		Capacity: &RoomCapacity{MaxAdults: 2, MaxChildren: 1},
	}
}

func TestNewRosterSeedsIncompleteParticipants(t *testing.T) {
	r, err := NewRoster(tourOffer(), 2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Len() != 3 {
		t.Fatalf("expected 3 participants, got %d", r.Len())
	}
	if r.IsComplete() {
		t.Fatal("freshly seeded roster must be incomplete")
	}
}

func TestNewRosterRejectsZeroAdults(t *testing.T) {
	if _, err := NewRoster(tourOffer(), 0, 2); !errors.Is(err, ErrInvalidCount) {
		t.Fatalf("expected ErrInvalidCount, got %v", err)
	}
}

func TestResizeKeepsAdultPrefix(t *testing.T) {
	r, _ := NewRoster(tourOffer(), 1, 1)
	if err := r.Resize(3, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Len() != 5 || r.NumAdults() != 3 || r.NumChildren() != 2 {
		t.Fatalf("unexpected counts: len=%d adults=%d children=%d", r.Len(), r.NumAdults(), r.NumChildren())
	}
	for i, p := range r.Participants() {
		want := ParticipantAdult
		if i >= 3 {
			want = ParticipantChild
		}
		if p.Type != want {
			t.Fatalf("participant %d: expected type %s, got %s", i, want, p.Type)
		}
	}
}

func TestResizeRejectsZeroAdults(t *testing.T) {
	r, _ := NewRoster(tourOffer(), 2, 0)
	if err := r.Resize(0, 0); !errors.Is(err, ErrInvalidCount) {
		t.Fatalf("expected ErrInvalidCount, got %v", err)
	}
}

func TestResizeTruncatesSegmentTails(t *testing.T) {
	r, _ := NewRoster(tourOffer(), 2, 2)
	participants := r.Participants()

	// Fill in the second adult; reducing counts still drops the tail of
	// each segment, discarding that filled-in row.
	if err := r.SetFullName(participants[1].Key, "Nguyen Van A"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Resize(1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after := r.Participants()
	if len(after) != 2 {
		t.Fatalf("expected 2 participants, got %d", len(after))
	}
	if after[0].Key != participants[0].Key {
		t.Fatal("expected first adult to survive the resize")
	}
	if after[1].Key != participants[2].Key {
		t.Fatal("expected first child to survive the resize")
	}
}

func TestAccommodationRosterPinsCountsToCapacity(t *testing.T) {
	r, err := NewRoster(accommodationOffer(), 5, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.NumAdults() != 2 || r.NumChildren() != 1 {
		t.Fatalf("expected capacity 2+1, got %d+%d", r.NumAdults(), r.NumChildren())
	}

	if err := r.Resize(5, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Len() != 3 {
		t.Fatalf("resize must be a no-op for accommodations, got length %d", r.Len())
	}
}

func TestAccommodationRejectsSingleRoomToggle(t *testing.T) {
	r, _ := NewRoster(accommodationOffer(), 0, 0)
	key := r.Participants()[0].Key
	if err := r.SetNeedSingleRoom(key, true); !errors.Is(err, ErrSingleRoomNotOffered) {
		t.Fatalf("expected ErrSingleRoomNotOffered, got %v", err)
	}
	if r.NumSingleRooms() != 0 {
		t.Fatalf("expected 0 single rooms, got %d", r.NumSingleRooms())
	}
}

func TestNumSingleRoomsIsRecomputed(t *testing.T) {
	r, _ := NewRoster(tourOffer(), 3, 0)
	participants := r.Participants()

	for _, p := range participants[:2] {
		if err := r.SetNeedSingleRoom(p.Key, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if r.NumSingleRooms() != 2 {
		t.Fatalf("expected 2 single rooms, got %d", r.NumSingleRooms())
	}

	if err := r.SetNeedSingleRoom(participants[0].Key, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.NumSingleRooms() != 1 {
		t.Fatalf("expected 1 single room, got %d", r.NumSingleRooms())
	}

	// Trimming a participant who wanted a single room must be reflected.
	if err := r.Resize(1, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.NumSingleRooms() != 0 {
		t.Fatalf("expected 0 single rooms after trim, got %d", r.NumSingleRooms())
	}
}

func TestIsCompleteRequiresNameAndDateOfBirth(t *testing.T) {
	r, _ := NewRoster(tourOffer(), 1, 0)
	key := r.Participants()[0].Key

	if err := r.SetFullName(key, "Tran Thi B"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.IsComplete() {
		t.Fatal("roster without dates of birth must be incomplete")
	}

	if err := r.SetDateOfBirth(key, time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.IsComplete() {
		t.Fatal("expected roster to be complete")
	}
}

func TestSetFieldUnknownKey(t *testing.T) {
	r, _ := NewRoster(tourOffer(), 1, 0)
	other, _ := NewRoster(tourOffer(), 1, 0)
	if err := r.SetFullName(other.Participants()[0].Key, "X"); !errors.Is(err, ErrParticipantNotFound) {
		t.Fatalf("expected ErrParticipantNotFound, got %v", err)
	}
}
