package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stwalsh4118/propcalc/api/internal/database"
	"github.com/stwalsh4118/propcalc/api/internal/models"
)

// PropertyRepository defines data access for property records.
type PropertyRepository interface {
	// Create assigns the record an ID and timestamps and inserts it.
	Create(ctx context.Context, p *models.Property) error

	// FindByID returns nil, nil when no record has the ID.
	// Returns error only for actual database failures.
	FindByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
}

type propertyRepository struct {
	db *database.Database
}

// NewPropertyRepository creates a PropertyRepository backed by db.
func NewPropertyRepository(db *database.Database) PropertyRepository {
	return &propertyRepository{db: db}
}

const insertProperty = `
	INSERT INTO properties (
		id, property_type, street, unit, city, state, zip_code, country,
		features, amenities, description, zoning, school_district, flood_zone, hoa_name,
		created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $16)
`

func (r *propertyRepository) Create(ctx context.Context, p *models.Property) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now().UTC().Truncate(time.Microsecond)
	p.CreatedAt = now
	p.UpdatedAt = now

	a := p.Address
	_, err := r.db.Pool.Exec(ctx, insertProperty,
		p.ID, string(p.PropertyType), a.Street, a.Unit, a.City, a.State, a.ZipCode, a.Country,
		p.Features, p.Amenities, p.Description, p.Zoning, p.SchoolDistrict, p.FloodZone, p.HOAName,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert property %s: %w", p.ID, err)
	}
	return nil
}

const selectProperty = `
	SELECT
		id, property_type, street, unit, city, state, zip_code, country,
		features, amenities, description, zoning, school_district, flood_zone, hoa_name,
		created_at, updated_at
	FROM properties
	WHERE id = $1
`

func (r *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	var p models.Property
	var propertyType string

	err := r.db.Pool.QueryRow(ctx, selectProperty, id).Scan(
		&p.ID,
		&propertyType,
		&p.Address.Street,
		&p.Address.Unit,
		&p.Address.City,
		&p.Address.State,
		&p.Address.ZipCode,
		&p.Address.Country,
		&p.Features,
		&p.Amenities,
		&p.Description,
		&p.Zoning,
		&p.SchoolDistrict,
		&p.FloodZone,
		&p.HOAName,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query property %s: %w", id, err)
	}

	p.PropertyType = models.PropertyType(propertyType)
	return &p, nil
}
