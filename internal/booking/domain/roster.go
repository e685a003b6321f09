package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ParticipantType classifies a traveler. It is derived from roster position:
// the adult prefix is Adult, the suffix is Child. Infant exists for wire
// compatibility with the booking service's traveler enum.
type ParticipantType string

const (
	ParticipantAdult  ParticipantType = "adult"
	ParticipantChild  ParticipantType = "child"
	ParticipantInfant ParticipantType = "infant"
)

// Participant is one traveler attached to a booking session.
type Participant struct {
	Key            uuid.UUID       `json:"key"`
	FullName       string          `json:"fullName"`
	DateOfBirth    *time.Time      `json:"dateOfBirth,omitempty"`
	Gender         string          `json:"gender,omitempty"`
	Type           ParticipantType `json:"type"`
	NeedSingleRoom bool            `json:"needSingleRoom"`
}

// Complete reports whether the participant has the fields required for
// submission: a non-blank full name and a date of birth.
func (p *Participant) Complete() bool {
	return strings.TrimSpace(p.FullName) != "" && p.DateOfBirth != nil
}

// Roster is the ordered list of travelers for one booking session,
// partitioned into a contiguous adult prefix followed by a child suffix.
// For accommodation offers the counts are pinned to the room capacity.
type Roster struct {
	kind         OfferKind
	participants []Participant
	numAdults    int
	numChildren  int
}

// NewRoster seeds a roster against an offer. For accommodation the requested
// counts are ignored and the offer's fixed capacity is used instead.
func NewRoster(offer *BookableOffer, numAdults, numChildren int) (*Roster, error) {
	if offer.IsAccommodation() {
		numAdults = offer.Capacity.MaxAdults
		numChildren = offer.Capacity.MaxChildren
	}
	if numAdults < 1 {
		return nil, ErrInvalidCount
	}
	if numChildren < 0 {
		return nil, ErrInvalidCount
	}

	r := &Roster{kind: offer.Kind}
	r.participants = make([]Participant, 0, numAdults+numChildren)
	for i := 0; i < numAdults+numChildren; i++ {
		r.participants = append(r.participants, Participant{Key: uuid.New()})
	}
	r.numAdults = numAdults
	r.numChildren = numChildren
	r.retype()
	return r, nil
}

// Resize grows or shrinks the roster to match the new counts. New
// participants are appended blank at the tail of their segment; removed
// participants are dropped from the tail of their segment even when they are
// already filled in, matching the booking flow's last-wins batch edits.
// For accommodation offers capacity is not guest-adjustable and Resize is a
// no-op.
func (r *Roster) Resize(numAdults, numChildren int) error {
	if r.kind == KindAccommodation {
		return nil
	}
	if numAdults < 1 || numChildren < 0 {
		return ErrInvalidCount
	}

	adults := r.participants[:r.numAdults]
	children := r.participants[r.numAdults:]
	adults = resizeSegment(adults, numAdults)
	children = resizeSegment(children, numChildren)

	r.participants = append(adults, children...)
	r.numAdults = numAdults
	r.numChildren = numChildren
	r.retype()
	return nil
}

func resizeSegment(segment []Participant, want int) []Participant {
	if want <= len(segment) {
		return segment[:want:want]
	}
	grown := make([]Participant, 0, want)
	grown = append(grown, segment...)
	for i := len(segment); i < want; i++ {
		grown = append(grown, Participant{Key: uuid.New()})
	}
	return grown
}

func (r *Roster) retype() {
	for i := range r.participants {
		if i < r.numAdults {
			r.participants[i].Type = ParticipantAdult
		} else {
			r.participants[i].Type = ParticipantChild
		}
	}
}

// SetFullName updates one participant's full name.
func (r *Roster) SetFullName(key uuid.UUID, name string) error {
	p := r.find(key)
	if p == nil {
		return ErrParticipantNotFound
	}
	p.FullName = name
	return nil
}

// SetDateOfBirth updates one participant's date of birth.
func (r *Roster) SetDateOfBirth(key uuid.UUID, dob time.Time) error {
	p := r.find(key)
	if p == nil {
		return ErrParticipantNotFound
	}
	d := dob
	p.DateOfBirth = &d
	return nil
}

// SetGender updates one participant's gender.
func (r *Roster) SetGender(key uuid.UUID, gender string) error {
	p := r.find(key)
	if p == nil {
		return ErrParticipantNotFound
	}
	p.Gender = gender
	return nil
}

// SetNeedSingleRoom toggles the single-room option for one participant.
// Accommodation stays book whole rooms, so the toggle is rejected there.
func (r *Roster) SetNeedSingleRoom(key uuid.UUID, need bool) error {
	if r.kind == KindAccommodation {
		return ErrSingleRoomNotOffered
	}
	p := r.find(key)
	if p == nil {
		return ErrParticipantNotFound
	}
	p.NeedSingleRoom = need
	return nil
}

// IsComplete reports whether every participant can be submitted.
func (r *Roster) IsComplete() bool {
	for i := range r.participants {
		if !r.participants[i].Complete() {
			return false
		}
	}
	return true
}

// NumAdults returns the adult count.
func (r *Roster) NumAdults() int { return r.numAdults }

// NumChildren returns the child count.
func (r *Roster) NumChildren() int { return r.numChildren }

// Len returns the roster length, always NumAdults()+NumChildren().
func (r *Roster) Len() int { return len(r.participants) }

// NumSingleRooms counts the participants who asked for a single room. It is
// recomputed from the roster on every call rather than tracked as a counter,
// so batched toggles cannot drift. Always zero for accommodation.
func (r *Roster) NumSingleRooms() int {
	if r.kind == KindAccommodation {
		return 0
	}
	n := 0
	for i := range r.participants {
		if r.participants[i].NeedSingleRoom {
			n++
		}
	}
	return n
}

// Participants returns a copy of the roster entries in order.
func (r *Roster) Participants() []Participant {
	out := make([]Participant, len(r.participants))
	copy(out, r.participants)
	return out
}

// Clone returns an independent copy, used to snapshot the roster into a
// booking draft.
func (r *Roster) Clone() *Roster {
	return &Roster{
		kind:         r.kind,
		participants: r.Participants(),
		numAdults:    r.numAdults,
		numChildren:  r.numChildren,
	}
}

func (r *Roster) find(key uuid.UUID) *Participant {
	for i := range r.participants {
		if r.participants[i].Key == key {
			return &r.participants[i]
		}
	}
	return nil
}
