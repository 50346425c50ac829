package customer

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hostal/internal/domain"
	"hostal/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/customers/search", h.Search)
	rg.GET("/customers/:id", h.GetByID)
	rg.POST("/customers", h.Create)
}

func (h *Handler) Search(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	rows, err := h.service.Search(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		if errors.Is(err, ErrQueryTooShort) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid customer id")
		return
	}

	customer, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Customer not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		return
	}
	response.Success(c, http.StatusOK, customer)
}

type createRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number" binding:"required"`
	Phone          string `json:"phone"`
	Whatsapp       string `json:"whatsapp"`
	Email          string `json:"email"`
	Age            *int   `json:"age"`
	Nationality    string `json:"nationality"`
	Origin         string `json:"origin"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	customer := &domain.Customer{
		FullName:       req.FullName,
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
		Phone:          req.Phone,
		Whatsapp:       req.Whatsapp,
		Email:          req.Email,
		Age:            req.Age,
		Nationality:    req.Nationality,
		Origin:         req.Origin,
	}
	if err := h.service.Create(c.Request.Context(), customer); err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrDuplicateDocument):
			response.Error(c, http.StatusConflict, "DUPLICATE_DOCUMENT", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		}
		return
	}
	response.Success(c, http.StatusCreated, customer)
}
