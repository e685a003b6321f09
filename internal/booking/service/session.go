package service

import (
	"context"
	"sync"
	"time"

	"bookingtour_backend/internal/booking/domain"

	"github.com/google/uuid"
)

// SessionState tracks where a booking session is in the configuration flow.
// Any roster mutation moves the session back through editing to pricing and
// drops an applied discount, so a stale discount amount can never be
// submitted.
type SessionState string

const (
	StateSeeding         SessionState = "seeding"
	StateEditing         SessionState = "editing"
	StatePricing         SessionState = "pricing"
	StateDiscountPending SessionState = "discount_pending"
	StateDiscountApplied SessionState = "discount_applied"
	StateValidating      SessionState = "validating"
	StateReady           SessionState = "ready"
	StateInvalid         SessionState = "invalid"
)

// Session is one booking configuration in progress. The offer is immutable
// for the session's lifetime; selecting a different schedule starts a new
// session. pricingRev increments on every reprice and is how in-flight
// discount responses are detected as stale.
type Session struct {
	mu sync.Mutex

	id     uuid.UUID
	userID string

	offer     *domain.BookableOffer
	roster    *domain.Roster
	breakdown domain.PriceBreakdown
	discount  *domain.DiscountApplication

	state            SessionState
	pricingRev       uint64
	discountInFlight bool

	createdAt time.Time
	updatedAt time.Time
}

// reprice recomputes the breakdown and invalidates any applied discount.
// Callers must hold the session mutex.
func (s *Session) reprice() {
	s.breakdown = ComputeBreakdown(s.offer, s.roster)
	s.pricingRev++
	s.discount = nil
	s.state = StatePricing
	s.updatedAt = time.Now()
}

// snapshot copies the session's visible state. Callers must hold the mutex.
func (s *Session) snapshot() *SessionSnapshot {
	return &SessionSnapshot{
		ID:             s.id,
		Kind:           s.offer.Kind,
		State:          s.state,
		Offer:          *s.offer,
		Participants:   s.roster.Participants(),
		NumAdults:      s.roster.NumAdults(),
		NumChildren:    s.roster.NumChildren(),
		NumSingleRooms: s.roster.NumSingleRooms(),
		Breakdown:      s.breakdown,
		Discount:       s.discount,
	}
}

// SessionSnapshot is a point-in-time view handed to the transport layer.
type SessionSnapshot struct {
	ID             uuid.UUID
	Kind           domain.OfferKind
	State          SessionState
	Offer          domain.BookableOffer
	Participants   []domain.Participant
	NumAdults      int
	NumChildren    int
	NumSingleRooms int
	Breakdown      domain.PriceBreakdown
	Discount       *domain.DiscountApplication
}

// sessionStore holds active sessions in memory. Sessions are independent;
// the store lock only guards the map.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
	}
}

func (st *sessionStore) put(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.id] = s
}

func (st *sessionStore) get(id uuid.UUID) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

func (st *sessionStore) delete(id uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// sweep drops sessions idle past the TTL.
func (st *sessionStore) sweep(now time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		s.mu.Lock()
		expired := now.Sub(s.updatedAt) > st.ttl
		s.mu.Unlock()
		if expired {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper evicts expired sessions until the context is cancelled.
func (s *Service) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if removed := s.sessions.sweep(now); removed > 0 {
					s.log.Debug("expired booking sessions removed", "count", removed)
				}
			}
		}
	}()
}
