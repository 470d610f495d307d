package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kaard-farm/farm-api/internal/services"
)

// crudService is what the generic handler needs from a resource service.
type crudService[T any] interface {
	List() ([]T, error)
	Get(id uint) (*T, error)
	Create(body []byte) (*T, error)
	Update(id uint, body []byte) (*T, error)
	Delete(id uint) error
}

// ResourceHandler serves the uniform CRUD routes for one resource kind.
// The kind string appears in not-found and deletion messages, e.g.
// "Crop not found", "Production record deleted successfully".
type ResourceHandler[T any] struct {
	service crudService[T]
	kind    string
}

func NewResourceHandler[T any](service crudService[T], kind string) *ResourceHandler[T] {
	return &ResourceHandler[T]{service: service, kind: kind}
}

// List godoc
// @Summary List records
// @Description Get all records of this kind in the kind's default order
// @Tags resources
// @Produce json
// @Success 200 {array} any
// @Failure 500 {object} ErrorResponse
func (h *ResourceHandler[T]) List(c *gin.Context) {
	records, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch " + h.kind + " records"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// Get godoc
// @Summary Get one record
// @Tags resources
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} any
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
func (h *ResourceHandler[T]) Get(c *gin.Context) {
	id, ok := h.recordID(c)
	if !ok {
		return
	}

	record, err := h.service.Get(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Create godoc
// @Summary Create a record
// @Tags resources
// @Accept json
// @Produce json
// @Success 201 {object} any
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
func (h *ResourceHandler[T]) Create(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read request body"})
		return
	}

	record, err := h.service.Create(body)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// Update godoc
// @Summary Update a record
// @Description Merge the provided fields over the stored record and revalidate
// @Tags resources
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} any
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
func (h *ResourceHandler[T]) Update(c *gin.Context) {
	id, ok := h.recordID(c)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read request body"})
		return
	}

	record, err := h.service.Update(id, body)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Delete godoc
// @Summary Delete a record
// @Tags resources
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	id, ok := h.recordID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: h.kind + " deleted successfully"})
}

// recordID parses the :id path param. An unparsable id can match no
// record, so it reports not-found.
func (h *ResourceHandler[T]) recordID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: h.kind + " not found"})
		return 0, false
	}
	return uint(id), true
}

func (h *ResourceHandler[T]) fail(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: h.kind + " not found"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Fields: verr.Fields})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
