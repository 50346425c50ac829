package cashier

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostal/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/cash-sessions/open", h.Open)
	rg.GET("/cash-sessions/current", h.Current)
	rg.POST("/cash-sessions/close", h.Close)
}

func (h *Handler) Open(c *gin.Context) {
	var req OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	session, err := h.service.Open(c.Request.Context(), c.GetInt64("user_id"), req.InitialCash)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, session)
}

func (h *Handler) Current(c *gin.Context) {
	snapshot, err := h.service.Current(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, snapshot)
}

func (h *Handler) Close(c *gin.Context) {
	var req CloseSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.service.Close(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrSessionAlreadyOpen):
		response.Error(c, http.StatusConflict, "SESSION_ALREADY_OPEN", err.Error())
	case errors.Is(err, ErrNoOpenSession):
		response.Error(c, http.StatusNotFound, "NO_OPEN_SESSION", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
