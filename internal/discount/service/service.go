// Package service implements discount code negotiation: normalizing the
// code, calling the external Discount Service, and refusing to trust
// responses that violate the discount arithmetic.
package service

import (
	"context"
	"strings"

	"bookingtour_backend/internal/booking/domain"
	"bookingtour_backend/internal/discount/transport"
	"bookingtour_backend/platform/apperr"
	"bookingtour_backend/platform/logger"
)

// Validator is the narrow view of the discount client the negotiator needs.
type Validator interface {
	Validate(ctx context.Context, req transport.ValidateRequest) (*transport.ValidateResponse, error)
}

// Negotiator validates discount codes against subtotals.
type Negotiator struct {
	client Validator
	log    *logger.Logger
}

// New creates a negotiator.
func New(client Validator, log *logger.Logger) *Negotiator {
	return &Negotiator{client: client, log: log}
}

// Apply validates a code against the given subtotal. Codes are trimmed and
// upper-cased before the call. A rejection comes back as a well-formed
// application with IsValid false and the subtotal untouched; remote numbers
// that break the discount arithmetic are treated as an upstream fault, not
// applied.
func (n *Negotiator) Apply(ctx context.Context, code string, subtotal int64, userID string) (*domain.DiscountApplication, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, apperr.Validation("discount code is required").WithOp("discount.Apply")
	}
	if subtotal < 0 {
		return nil, apperr.Validation("subtotal cannot be negative").WithOp("discount.Apply")
	}

	resp, err := n.client.Validate(ctx, transport.ValidateRequest{
		Code:     code,
		Subtotal: subtotal,
		UserID:   userID,
	})
	if err != nil {
		return nil, err
	}

	if !resp.IsValid {
		n.log.DiscountEvent(code, false, 0, resp.Message)
		return &domain.DiscountApplication{
			Code:        code,
			IsValid:     false,
			FinalAmount: subtotal,
			Message:     resp.Message,
		}, nil
	}

	if resp.DiscountAmount < 0 || resp.DiscountAmount > subtotal || resp.FinalAmount != subtotal-resp.DiscountAmount {
		n.log.Error("discount response violates invariant",
			"code", code,
			"subtotal", subtotal,
			"discount_amount", resp.DiscountAmount,
			"final_amount", resp.FinalAmount,
		)
		return nil, apperr.Upstream("discount service returned inconsistent amounts").WithOp("discount.Apply")
	}

	n.log.DiscountEvent(code, true, resp.DiscountAmount, "")
	return &domain.DiscountApplication{
		Code:           code,
		IsValid:        true,
		DiscountAmount: resp.DiscountAmount,
		FinalAmount:    resp.FinalAmount,
		Message:        resp.Message,
	}, nil
}
