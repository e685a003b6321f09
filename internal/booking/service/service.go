package service

import (
	"context"
	"errors"
	"time"

	"bookingtour_backend/internal/booking/domain"
	"bookingtour_backend/internal/events"
	"bookingtour_backend/platform/apperr"
	"bookingtour_backend/platform/logger"

	"github.com/google/uuid"
)

// Service orchestrates booking sessions: seeding from the catalog, roster
// edits with repricing, discount negotiation, and draft submission.
type Service struct {
	offers    OfferProvider
	discounts DiscountNegotiator
	submitter DraftSubmitter
	builder   *DraftBuilder
	sessions  *sessionStore
	bus       events.Bus // optional, nil means no events
	log       *logger.Logger
}

// New creates a booking service.
func New(offers OfferProvider, discounts DiscountNegotiator, submitter DraftSubmitter, builder *DraftBuilder, sessionTTL time.Duration, log *logger.Logger) *Service {
	return &Service{
		offers:    offers,
		discounts: discounts,
		submitter: submitter,
		builder:   builder,
		sessions:  newSessionStore(sessionTTL),
		log:       log,
	}
}

// SetEventBus injects the event bus (set after construction to keep the
// composition root in charge of wiring).
func (s *Service) SetEventBus(bus events.Bus) {
	s.bus = bus
}

// ParticipantPatch is a one-edit-at-a-time update to a roster entry.
// Pointers distinguish "not sent" from zero values.
type ParticipantPatch struct {
	FullName       *string
	DateOfBirth    *time.Time
	Gender         *string
	NeedSingleRoom *bool
}

// CreateSession fetches the selected offer from the catalog, seeds a roster
// against it, and computes the initial breakdown.
func (s *Service) CreateSession(ctx context.Context, sel OfferSelection, numAdults, numChildren int, userID string) (*SessionSnapshot, error) {
	if !sel.Kind.Valid() {
		return nil, apperr.BadRequest("unknown offer kind").WithOp("booking.CreateSession")
	}

	offer, err := s.offers.OfferForBooking(ctx, sel)
	if err != nil {
		return nil, err
	}

	roster, err := domain.NewRoster(offer, numAdults, numChildren)
	if err != nil {
		return nil, rosterError(err, "booking.CreateSession")
	}

	now := time.Now()
	sess := &Session{
		id:        uuid.New(),
		userID:    userID,
		offer:     offer,
		roster:    roster,
		state:     StateSeeding,
		createdAt: now,
		updatedAt: now,
	}
	sess.reprice()
	s.sessions.put(sess)

	s.log.BookingEvent("session_created", sess.id.String(), string(offer.Kind))
	s.publish(ctx, events.SessionCreated{
		BaseEvent: events.NewBaseEvent(),
		SessionID: sess.id,
		Kind:      string(offer.Kind),
		ItemID:    offer.ItemID,
	})

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), nil
}

// GetSession returns the current state of a session.
func (s *Service) GetSession(id uuid.UUID) (*SessionSnapshot, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), nil
}

// ResizeTravelers changes the adult/child counts. Trimming drops the tail
// of each segment even when those rows are filled in. For accommodations
// the counts are fixed to room capacity and the call leaves the roster
// untouched.
func (s *Service) ResizeTravelers(id uuid.UUID, numAdults, numChildren int) (*SessionSnapshot, error) {
	return s.mutate(id, "booking.ResizeTravelers", func(roster *domain.Roster) error {
		return roster.Resize(numAdults, numChildren)
	})
}

// UpdateParticipant applies a field edit to one roster entry.
func (s *Service) UpdateParticipant(id uuid.UUID, key uuid.UUID, patch ParticipantPatch) (*SessionSnapshot, error) {
	return s.mutate(id, "booking.UpdateParticipant", func(roster *domain.Roster) error {
		if patch.FullName != nil {
			if err := roster.SetFullName(key, *patch.FullName); err != nil {
				return err
			}
		}
		if patch.DateOfBirth != nil {
			if err := roster.SetDateOfBirth(key, *patch.DateOfBirth); err != nil {
				return err
			}
		}
		if patch.Gender != nil {
			if err := roster.SetGender(key, *patch.Gender); err != nil {
				return err
			}
		}
		if patch.NeedSingleRoom != nil {
			if err := roster.SetNeedSingleRoom(key, *patch.NeedSingleRoom); err != nil {
				return err
			}
		}
		return nil
	})
}

// mutate runs a roster edit under the session lock, then reprices. Any
// successful edit invalidates an applied discount: the discount was
// negotiated against the old subtotal.
func (s *Service) mutate(id uuid.UUID, op string, edit func(*domain.Roster) error) (*SessionSnapshot, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.state = StateEditing
	if err := edit(sess.roster); err != nil {
		sess.state = StatePricing
		return nil, rosterError(err, op)
	}

	if sess.discount != nil {
		s.log.BookingEvent("discount_invalidated", sess.id.String(), string(sess.offer.Kind))
	}
	sess.reprice()
	return sess.snapshot(), nil
}

// ApplyDiscount validates a code against the session's current subtotal.
// Only one request may be in flight per session; a second concurrent apply
// is rejected immediately. If the roster changes while the request is in
// flight, the response is discarded on arrival because it no longer matches
// the current subtotal.
func (s *Service) ApplyDiscount(ctx context.Context, id uuid.UUID, code string) (*domain.DiscountApplication, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if sess.discountInFlight {
		sess.mu.Unlock()
		return nil, apperr.Conflict("a discount request is already in progress").WithOp("booking.ApplyDiscount")
	}
	sess.discountInFlight = true
	sess.state = StateDiscountPending
	subtotal := sess.breakdown.Subtotal
	rev := sess.pricingRev
	userID := sess.userID
	sess.mu.Unlock()

	app, applyErr := s.discounts.Apply(ctx, code, subtotal, userID)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.discountInFlight = false

	if applyErr != nil {
		sess.state = StatePricing
		return nil, applyErr
	}

	if sess.pricingRev != rev {
		// The roster changed while the request was in flight; the result
		// was negotiated against a subtotal that no longer exists.
		sess.state = StatePricing
		s.log.BookingEvent("discount_discarded_stale", sess.id.String(), string(sess.offer.Kind))
		return nil, apperr.Conflict("the booking changed while the discount was being checked, apply the code again").WithOp("booking.ApplyDiscount")
	}

	if !app.IsValid {
		sess.state = StatePricing
		s.publish(ctx, events.DiscountRejected{
			BaseEvent: events.NewBaseEvent(),
			SessionID: sess.id,
			Code:      app.Code,
			Reason:    app.Message,
		})
		return app, nil
	}

	sess.discount = app
	sess.state = StateDiscountApplied
	sess.updatedAt = time.Now()
	s.publish(ctx, events.DiscountApplied{
		BaseEvent:      events.NewBaseEvent(),
		SessionID:      sess.id,
		Code:           app.Code,
		DiscountAmount: app.DiscountAmount,
		FinalAmount:    app.FinalAmount,
	})
	return app, nil
}

// ClearDiscount removes an applied discount without touching the roster.
func (s *Service) ClearDiscount(id uuid.UUID) (*SessionSnapshot, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.discount = nil
	sess.state = StatePricing
	sess.updatedAt = time.Now()
	return sess.snapshot(), nil
}

// Submit builds the final draft and hands it to the external booking
// service. The session is removed once the booking is accepted; a failed
// submission keeps the session so a fresh draft can be built from current
// state.
func (s *Service) Submit(ctx context.Context, id uuid.UUID, contact domain.ContactInfo, paymentType domain.PaymentType) (*SubmitResult, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	sess.state = StateValidating
	draft, buildErr := s.builder.Build(contact, sess.offer, sess.roster.Clone(), sess.breakdown, sess.discount, paymentType)
	if buildErr != nil {
		sess.state = StateInvalid
		sess.mu.Unlock()

		var failure *domain.ValidationFailure
		if errors.As(buildErr, &failure) {
			return nil, apperr.Validation("booking draft failed validation").
				WithOp("booking.Submit").
				WithDetails(failure.Fields)
		}
		return nil, buildErr
	}
	sess.state = StateReady
	kind := sess.offer.Kind
	sess.mu.Unlock()

	result, err := s.submitter.Submit(ctx, draft)
	if err != nil {
		s.log.UpstreamError("booking", "Submit", err)
		return nil, apperr.Wrap(apperr.KindUnavailable, "booking service unavailable", err).WithOp("booking.Submit")
	}

	if !result.Success {
		return result, nil
	}

	s.sessions.delete(id)
	s.log.BookingEvent("booking_submitted", id.String(), string(kind))
	s.publish(ctx, events.BookingSubmitted{
		BaseEvent:   events.NewBaseEvent(),
		SessionID:   id,
		DraftID:     draft.ID,
		BookingID:   result.BookingID,
		Kind:        string(kind),
		FinalAmount: draft.FinalAmount,
		PaymentType: string(draft.PaymentType),
	})
	return result, nil
}

func (s *Service) session(id uuid.UUID) (*Session, error) {
	sess, ok := s.sessions.get(id)
	if !ok {
		return nil, apperr.NotFound("booking session not found")
	}
	return sess, nil
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.bus != nil {
		s.bus.Publish(ctx, event)
	}
}

func rosterError(err error, op string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidCount):
		return apperr.Wrap(apperr.KindValidation, err.Error(), err).WithOp(op)
	case errors.Is(err, domain.ErrParticipantNotFound):
		return apperr.Wrap(apperr.KindNotFound, err.Error(), err).WithOp(op)
	case errors.Is(err, domain.ErrSingleRoomNotOffered):
		return apperr.Wrap(apperr.KindValidation, err.Error(), err).WithOp(op)
	default:
		return err
	}
}
