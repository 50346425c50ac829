package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

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
	rg.GET("/rooms", h.Rooms)
	rg.GET("/rooms/available", h.AvailableRooms)
	rg.POST("/rooms/:id/mark-clean", h.MarkClean)
	rg.GET("/products", h.Products)
}

func (h *Handler) Rooms(c *gin.Context) {
	rooms, err := h.service.Rooms(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		return
	}
	response.Success(c, http.StatusOK, rooms)
}

func (h *Handler) AvailableRooms(c *gin.Context) {
	rooms, err := h.service.AvailableRooms(c.Request.Context(), c.Query("room_type"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		return
	}
	response.Success(c, http.StatusOK, rooms)
}

func (h *Handler) MarkClean(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room id")
		return
	}

	if err := h.service.MarkClean(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		case errors.Is(err, ErrRoomNotCleaning):
			response.Error(c, http.StatusConflict, "ROOM_NOT_CLEANING", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room_id": id, "status": "available"})
}

func (h *Handler) Products(c *gin.Context) {
	filters := repository.ProductFilters{Category: c.Query("category")}
	if v := c.Query("is_active"); v != "" {
		active := v == "true" || v == "1"
		filters.IsActive = &active
	}

	products, err := h.service.Products(c.Request.Context(), filters)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		return
	}
	response.Success(c, http.StatusOK, products)
}
