package ledger

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hostal/internal/domain"
	"hostal/internal/pkg/response"
	"hostal/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings/check-in", h.CheckIn)
	rg.POST("/guests/register", h.RegisterGuest)
	rg.GET("/bookings/active", h.ActiveBookings)
	rg.GET("/bookings", h.Search)
	rg.GET("/bookings/:id", h.GetDetail)
	rg.POST("/bookings/:id/charges", h.AddCharges)
	rg.POST("/bookings/:id/discounts", h.ApplyDiscount)
	rg.GET("/bookings/:id/late-checkout", h.PreviewLateCheckout)
	rg.POST("/bookings/:id/checkout", h.Checkout)
	rg.POST("/payments", h.RecordPayment)
}

func (h *Handler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	req.CashierID = c.GetInt64("user_id")

	booking, err := h.service.CheckIn(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, booking)
}

func (h *Handler) RegisterGuest(c *gin.Context) {
	var req RegisterGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	req.CashierID = c.GetInt64("user_id")

	booking, err := h.service.RegisterGuest(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, booking)
}

func (h *Handler) ActiveBookings(c *gin.Context) {
	rows, err := h.service.ActiveBookings(c.Request.Context(), time.Now())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) Search(c *gin.Context) {
	filters := repository.BookingFilters{
		RoomNumber:     c.Query("room_number"),
		DocumentNumber: c.Query("document_number"),
		Status:         domain.BookingStatus(c.Query("status")),
	}
	bookings, err := h.service.Search(c.Request.Context(), filters)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, bookings)
}

func (h *Handler) GetDetail(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	detail, err := h.service.GetDetail(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) AddCharges(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req AddChargesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	req.BookingID = id
	req.CashierID = c.GetInt64("user_id")

	total, err := h.service.AddCharges(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking_id": id, "total_charges": total})
}

func (h *Handler) ApplyDiscount(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	req.BookingID = id
	req.CashierID = c.GetInt64("user_id")

	amount, err := h.service.ApplyDiscount(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking_id": id, "discount_amount": amount})
}

func (h *Handler) PreviewLateCheckout(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	preview, err := h.service.PreviewLateCheckout(c.Request.Context(), id, time.Now())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, preview)
}

func (h *Handler) Checkout(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	result, err := h.service.Checkout(c.Request.Context(), id, time.Now())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	req.CashierID = c.GetInt64("user_id")

	balance, err := h.service.RecordPayment(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking_id": req.BookingID, "new_balance": balance})
}

func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrRoomUnavailable):
		response.Error(c, http.StatusConflict, "ROOM_UNAVAILABLE", err.Error())
	case errors.Is(err, ErrCustomerBlocked):
		response.Error(c, http.StatusForbidden, "CUSTOMER_BLOCKED", err.Error())
	case errors.Is(err, ErrBookingNotActive):
		response.Error(c, http.StatusConflict, "BOOKING_NOT_ACTIVE", err.Error())
	case errors.Is(err, ErrBookingAlreadyProcessed):
		response.Error(c, http.StatusConflict, "BOOKING_ALREADY_PROCESSED", err.Error())
	case errors.Is(err, ErrDiscountExceedsTotal):
		response.Error(c, http.StatusUnprocessableEntity, "DISCOUNT_EXCEEDS_TOTAL", err.Error())
	case errors.Is(err, ErrPaymentExceedsBalance):
		response.Error(c, http.StatusUnprocessableEntity, "PAYMENT_EXCEEDS_BALANCE", err.Error())
	case errors.Is(err, ErrOutstandingBalance):
		response.Error(c, http.StatusUnprocessableEntity, "OUTSTANDING_BALANCE", err.Error())
	case errors.Is(err, ErrInsufficientStock):
		response.Error(c, http.StatusConflict, "INSUFFICIENT_STOCK", err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
