package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apierrors "github.com/stwalsh4118/propcalc/api/internal/errors"
	"github.com/stwalsh4118/propcalc/api/internal/middleware"
	"github.com/stwalsh4118/propcalc/api/internal/models"
	"github.com/stwalsh4118/propcalc/api/internal/services"
)

const storeDisabledMessage = "Property storage is disabled"

// PropertyHandler handles property-record requests. A nil service means the
// store is disabled and every endpoint answers 503.
type PropertyHandler struct {
	service services.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler instance.
func NewPropertyHandler(service services.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// PriceQuery holds the query parameters of the price-per-square-foot endpoint.
type PriceQuery struct {
	Price float64 `form:"price" binding:"required,gt=0"`
}

// propertyID parses the :id path parameter, answering 400 when it is not a UUID.
func propertyID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		apierrors.BadRequest(c, "Invalid property ID", map[string]interface{}{"id": raw})
		return uuid.Nil, false
	}
	return id, true
}

func (h *PropertyHandler) available(c *gin.Context) bool {
	if h.service == nil {
		apierrors.ServiceUnavailable(c, storeDisabledMessage)
		return false
	}
	return true
}

// Create handles POST /api/v1/properties.
func (h *PropertyHandler) Create(c *gin.Context) {
	if !h.available(c) {
		return
	}

	var in models.PropertyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		apierrors.BindError(c, err)
		return
	}

	p, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, services.ErrInvalidProperty) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to create property", err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

// Get handles GET /api/v1/properties/:id.
func (h *PropertyHandler) Get(c *gin.Context) {
	if !h.available(c) {
		return
	}
	id, ok := propertyID(c)
	if !ok {
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.lookupFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// PricePerSquareFoot handles GET /api/v1/properties/:id/price-per-sqft.
func (h *PropertyHandler) PricePerSquareFoot(c *gin.Context) {
	if !h.available(c) {
		return
	}
	id, ok := propertyID(c)
	if !ok {
		return
	}

	var q PriceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apierrors.BindError(c, err)
		return
	}

	if log := middleware.GetLogger(c); log != nil {
		log.Debug("Pricing property", map[string]interface{}{
			"property_id": id.String(),
			"price":       q.Price,
		})
	}

	result, err := h.service.PricePerSquareFoot(c.Request.Context(), id, q.Price)
	if err != nil {
		h.lookupFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *PropertyHandler) lookupFailed(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPropertyNotFound):
		apierrors.NotFound(c, "Property not found")
	case errors.Is(err, services.ErrInvalidPrice):
		apierrors.BadRequest(c, err.Error(), nil)
	default:
		apierrors.InternalServerError(c, "Failed to query property", err)
	}
}
