// Package transport defines the request and response DTOs of the booking
// session API.
package transport

import (
	"time"

	"bookingtour_backend/internal/booking/domain"
	"bookingtour_backend/internal/booking/service"
)

// ── Requests ──────────────────────────────────────────────────────────────────

// CreateSessionRequest starts a booking session for a catalog selection.
type CreateSessionRequest struct {
	Kind        string  `json:"kind" validate:"required,oneof=tour combo accommodation"`
	ItemID      int64   `json:"itemId" validate:"required,min=1"`
	ScheduleID  int64   `json:"scheduleId" validate:"omitempty,min=1"`
	RoomRunIDs  []int64 `json:"roomRunIds" validate:"omitempty,dive,min=1"`
	NumAdults   int     `json:"numAdults" validate:"min=1"`
	NumChildren int     `json:"numChildren" validate:"min=0"`
	UserID      string  `json:"userId"`
}

// ResizeRequest changes the adult/child counts of a session.
type ResizeRequest struct {
	NumAdults   int `json:"numAdults" validate:"min=1"`
	NumChildren int `json:"numChildren" validate:"min=0"`
}

// ParticipantUpdateRequest patches one traveler. Only the fields sent are
// applied; dates use yyyy-mm-dd.
type ParticipantUpdateRequest struct {
	FullName       *string `json:"fullName"`
	DateOfBirth    *string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Gender         *string `json:"gender" validate:"omitempty,oneof=male female other"`
	NeedSingleRoom *bool   `json:"needSingleRoom"`
}

// ApplyDiscountRequest applies a promotional code to the session subtotal.
type ApplyDiscountRequest struct {
	Code string `json:"code" validate:"required,max=64"`
}

// ContactRequest is the booking contact. Field-level problems are reported
// together by the draft builder, so binding stays permissive here.
type ContactRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// SubmitRequest finalizes the session into a draft and submits it.
type SubmitRequest struct {
	Contact     ContactRequest `json:"contact"`
	PaymentType string         `json:"paymentType" validate:"required,oneof=vnpay momo cash"`
}

// ── Responses ─────────────────────────────────────────────────────────────────

// ParticipantResponse is one roster entry.
type ParticipantResponse struct {
	Key            string `json:"key"`
	FullName       string `json:"fullName"`
	DateOfBirth    string `json:"dateOfBirth,omitempty"`
	Gender         string `json:"gender,omitempty"`
	Type           string `json:"type"`
	NeedSingleRoom bool   `json:"needSingleRoom"`
	Complete       bool   `json:"complete"`
}

// LineItemResponse is one row of the price breakdown.
type LineItemResponse struct {
	Label     string `json:"label"`
	Night     string `json:"night,omitempty"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	Amount    int64  `json:"amount"`
}

// BreakdownResponse is the itemized price prior to discount.
type BreakdownResponse struct {
	Subtotal  int64              `json:"subtotal"`
	LineItems []LineItemResponse `json:"lineItems"`
}

// DiscountResponse is the outcome of a discount application.
type DiscountResponse struct {
	Code           string `json:"code"`
	IsValid        bool   `json:"isValid"`
	DiscountAmount int64  `json:"discountAmount"`
	FinalAmount    int64  `json:"finalAmount"`
	Message        string `json:"message,omitempty"`
}

// SessionResponse is the full view of a booking session.
type SessionResponse struct {
	ID             string                `json:"id"`
	Kind           string                `json:"kind"`
	State          string                `json:"state"`
	ItemID         int64                 `json:"itemId"`
	ScheduleID     int64                 `json:"scheduleId,omitempty"`
	RoomRunIDs     []int64               `json:"roomRunIds,omitempty"`
	NumAdults      int                   `json:"numAdults"`
	NumChildren    int                   `json:"numChildren"`
	NumSingleRooms int                   `json:"numSingleRooms"`
	Participants   []ParticipantResponse `json:"participants"`
	Breakdown      BreakdownResponse     `json:"breakdown"`
	Discount       *DiscountResponse     `json:"discount,omitempty"`
}

// SubmitResponse reports the booking service's verdict on a submission.
type SubmitResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId,omitempty"`
	Message   string `json:"message,omitempty"`
}

// ── Mapping ───────────────────────────────────────────────────────────────────

// NewSessionResponse maps a session snapshot to its DTO.
func NewSessionResponse(snap *service.SessionSnapshot) SessionResponse {
	participants := make([]ParticipantResponse, len(snap.Participants))
	for i, p := range snap.Participants {
		participants[i] = newParticipantResponse(p)
	}

	lines := make([]LineItemResponse, len(snap.Breakdown.LineItems))
	for i, line := range snap.Breakdown.LineItems {
		lines[i] = LineItemResponse{
			Label:     line.Label,
			Night:     line.Night,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Amount:    line.Amount,
		}
	}

	return SessionResponse{
		ID:             snap.ID.String(),
		Kind:           string(snap.Kind),
		State:          string(snap.State),
		ItemID:         snap.Offer.ItemID,
		ScheduleID:     snap.Offer.ScheduleID,
		RoomRunIDs:     snap.Offer.RoomRunIDs,
		NumAdults:      snap.NumAdults,
		NumChildren:    snap.NumChildren,
		NumSingleRooms: snap.NumSingleRooms,
		Participants:   participants,
		Breakdown: BreakdownResponse{
			Subtotal:  snap.Breakdown.Subtotal,
			LineItems: lines,
		},
		Discount: NewDiscountResponse(snap.Discount),
	}
}

func newParticipantResponse(p domain.Participant) ParticipantResponse {
	dob := ""
	if p.DateOfBirth != nil {
		dob = p.DateOfBirth.Format(time.DateOnly)
	}
	return ParticipantResponse{
		Key:            p.Key.String(),
		FullName:       p.FullName,
		DateOfBirth:    dob,
		Gender:         p.Gender,
		Type:           string(p.Type),
		NeedSingleRoom: p.NeedSingleRoom,
		Complete:       p.Complete(),
	}
}

// NewDiscountResponse maps a discount application, nil-safe.
func NewDiscountResponse(app *domain.DiscountApplication) *DiscountResponse {
	if app == nil {
		return nil
	}
	return &DiscountResponse{
		Code:           app.Code,
		IsValid:        app.IsValid,
		DiscountAmount: app.DiscountAmount,
		FinalAmount:    app.FinalAmount,
		Message:        app.Message,
	}
}
