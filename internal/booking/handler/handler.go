// Package handler exposes the booking session API over HTTP.
package handler

import (
	"net/http"
	"time"

	"bookingtour_backend/internal/booking/domain"
	"bookingtour_backend/internal/booking/service"
	"bookingtour_backend/internal/booking/transport"
	"bookingtour_backend/platform/httpkit"
	"bookingtour_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for booking sessions.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a booking handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers the booking session routes. The discount route
// additionally carries the discount rate limiter when one is provided.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, discountLimiter gin.HandlerFunc) {
	rg.POST("", h.CreateSession)
	rg.GET("/:id", h.GetSession)
	rg.PUT("/:id/travelers", h.ResizeTravelers)
	rg.PATCH("/:id/travelers/:key", h.UpdateParticipant)
	if discountLimiter != nil {
		rg.POST("/:id/discount", discountLimiter, h.ApplyDiscount)
	} else {
		rg.POST("/:id/discount", h.ApplyDiscount)
	}
	rg.DELETE("/:id/discount", h.ClearDiscount)
	rg.POST("/:id/submit", h.Submit)
}

func (h *Handler) CreateSession(c *gin.Context) {
	var req transport.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	snap, err := h.svc.CreateSession(c.Request.Context(), service.OfferSelection{
		Kind:       domain.OfferKind(req.Kind),
		ItemID:     req.ItemID,
		ScheduleID: req.ScheduleID,
		RoomRunIDs: req.RoomRunIDs,
	}, req.NumAdults, req.NumChildren, req.UserID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Created(c, transport.NewSessionResponse(snap))
}

func (h *Handler) GetSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	snap, err := h.svc.GetSession(id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.NewSessionResponse(snap))
}

func (h *Handler) ResizeTravelers(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req transport.ResizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	snap, err := h.svc.ResizeTravelers(id, req.NumAdults, req.NumChildren)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.NewSessionResponse(snap))
}

func (h *Handler) UpdateParticipant(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	key, err := uuid.Parse(c.Param("key"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	var req transport.ParticipantUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	patch := service.ParticipantPatch{
		FullName:       req.FullName,
		Gender:         req.Gender,
		NeedSingleRoom: req.NeedSingleRoom,
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse(time.DateOnly, *req.DateOfBirth)
		if err != nil {
			httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
			return
		}
		patch.DateOfBirth = &dob
	}

	snap, err := h.svc.UpdateParticipant(id, key, patch)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.NewSessionResponse(snap))
}

func (h *Handler) ApplyDiscount(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req transport.ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	app, err := h.svc.ApplyDiscount(c.Request.Context(), id, req.Code)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.NewDiscountResponse(app))
}

func (h *Handler) ClearDiscount(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	snap, err := h.svc.ClearDiscount(id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.NewSessionResponse(snap))
}

func (h *Handler) Submit(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req transport.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Submit(c.Request.Context(), id, domain.ContactInfo{
		FullName: req.Contact.FullName,
		Email:    req.Contact.Email,
		Phone:    req.Contact.Phone,
	}, domain.PaymentType(req.PaymentType))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.SubmitResponse{
		Success:   result.Success,
		BookingID: result.BookingID,
		Message:   result.Message,
	})
}

func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return uuid.Nil, false
	}
	return id, true
}
