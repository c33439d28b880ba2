package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stwalsh4118/propcalc/api/internal/logger"
	"github.com/stwalsh4118/propcalc/api/internal/models"
	"github.com/stwalsh4118/propcalc/api/internal/repository"
)

// ErrInvalidProperty is returned when a property record fails validation.
var ErrInvalidProperty = models.ErrInvalidProperty

// PricePerSquareFoot is the price of a property record per square foot.
type PricePerSquareFoot struct {
	PropertyID         uuid.UUID `json:"propertyId"`
	Price              float64   `json:"price"`
	SquareFeet         float64   `json:"squareFeet"`
	PricePerSquareFoot float64   `json:"pricePerSquareFoot"`
}

// PropertyService manages property records.
type PropertyService interface {
	// Create validates and stores a new record.
	// Returns ErrInvalidProperty when the record fails validation.
	Create(ctx context.Context, in models.PropertyInput) (*models.Property, error)

	// Get returns ErrPropertyNotFound when no record has the ID.
	Get(ctx context.Context, id uuid.UUID) (*models.Property, error)

	// PricePerSquareFoot prices a stored record's living area.
	// Returns ErrInvalidPrice for a non-positive price.
	PricePerSquareFoot(ctx context.Context, id uuid.UUID, price float64) (*PricePerSquareFoot, error)
}

type propertyService struct {
	repo repository.PropertyRepository
	log  *logger.Logger
}

// NewPropertyService creates a PropertyService backed by repo.
func NewPropertyService(repo repository.PropertyRepository, log *logger.Logger) PropertyService {
	return &propertyService{repo: repo, log: log}
}

func (s *propertyService) Create(ctx context.Context, in models.PropertyInput) (*models.Property, error) {
	if err := in.Validate(); err != nil {
		s.log.Warn("Invalid property rejected", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	p := &models.Property{PropertyInput: in}
	if err := s.repo.Create(ctx, p); err != nil {
		s.log.Error("Failed to create property", err, map[string]interface{}{
			"property_type": in.PropertyType,
			"zip_code":      in.Address.ZipCode,
		})
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	s.log.Info("Property created", map[string]interface{}{
		"property_id":   p.ID.String(),
		"property_type": p.PropertyType,
		"multi_unit":    p.IsMultiUnit(),
	})
	return p, nil
}

func (s *propertyService) Get(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to query property", err, map[string]interface{}{"property_id": id.String()})
		return nil, fmt.Errorf("failed to query property: %w", err)
	}

	// Repository returns nil, nil when no record exists
	if p == nil {
		s.log.Debug("Property not found", map[string]interface{}{"property_id": id.String()})
		return nil, ErrPropertyNotFound
	}

	return p, nil
}

func (s *propertyService) PricePerSquareFoot(ctx context.Context, id uuid.UUID, price float64) (*PricePerSquareFoot, error) {
	if price <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidPrice, price)
	}

	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &PricePerSquareFoot{
		PropertyID:         p.ID,
		Price:              price,
		SquareFeet:         p.Features.SquareFeet,
		PricePerSquareFoot: p.PricePerSquareFoot(price),
	}, nil
}
