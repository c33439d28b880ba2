package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stwalsh4118/propcalc/api/internal/metadata"
)

// MetadataHandler serves the read-only result field documentation.
type MetadataHandler struct{}

// NewMetadataHandler creates a new MetadataHandler instance.
func NewMetadataHandler() *MetadataHandler {
	return &MetadataHandler{}
}

// Mortgage handles GET /api/v1/metadata/mortgage.
func (h *MetadataHandler) Mortgage(c *gin.Context) {
	c.JSON(http.StatusOK, metadata.Mortgage())
}

// Rental handles GET /api/v1/metadata/rental.
func (h *MetadataHandler) Rental(c *gin.Context) {
	c.JSON(http.StatusOK, metadata.Rental())
}
