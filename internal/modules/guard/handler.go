package guard

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hostal/internal/domain"
	"hostal/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes exposes the registry; read is open to cashiers, writes
// are wired behind the admin role by the caller.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, admin *gin.RouterGroup) {
	rg.GET("/blacklist/check/:document", h.Check)
	admin.GET("/blacklist", h.List)
	admin.POST("/blacklist", h.Add)
	admin.DELETE("/blacklist/:id", h.Remove)
}

func (h *Handler) Check(c *gin.Context) {
	blocked, reason, err := h.service.IsBlocked(c.Request.Context(), nil, c.Param("document"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"blocked": blocked, "reason": reason})
}

func (h *Handler) List(c *gin.Context) {
	entries, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		return
	}
	response.Success(c, http.StatusOK, entries)
}

type addRequest struct {
	DocumentNumber string `json:"document_number" binding:"required"`
	FullName       string `json:"full_name"`
	Reason         string `json:"reason" binding:"required"`
}

func (h *Handler) Add(c *gin.Context) {
	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	entry := &domain.BlacklistEntry{
		DocumentNumber: req.DocumentNumber,
		FullName:       req.FullName,
		Reason:         req.Reason,
		AddedBy:        c.GetInt64("user_id"),
	}
	if err := h.service.Add(c.Request.Context(), entry); err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrAlreadyListed):
			response.Error(c, http.StatusConflict, "ALREADY_LISTED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		}
		return
	}
	response.Success(c, http.StatusCreated, entry)
}

func (h *Handler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid entry id")
		return
	}

	if err := h.service.Remove(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotListed) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
