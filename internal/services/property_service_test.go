package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stwalsh4118/propcalc/api/internal/models"
)

// MockPropertyRepository is a mock implementation of PropertyRepository for testing
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Create(ctx context.Context, p *models.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	p, ok := args.Get(0).(*models.Property)
	if !ok {
		return nil, args.Error(1)
	}
	return p, args.Error(1)
}

func propertyInput() models.PropertyInput {
	return models.PropertyInput{
		PropertyType: models.Townhouse,
		Address: models.Address{
			Street:  "9 Pine Ct",
			City:    "Raleigh",
			State:   "NC",
			ZipCode: "27601",
			Country: models.CountryUS,
		},
		Features: models.Features{Bedrooms: 3, FullBathrooms: 2, HalfBathrooms: 1, SquareFeet: 1800},
	}
}

func TestPropertyService_Create(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	repo := new(MockPropertyRepository)
	service := NewPropertyService(repo, testLogger(&buf))
	ctx := context.Background()
	id := uuid.New()

	repo.On("Create", ctx, mock.AnythingOfType("*models.Property")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Property).ID = id
		}).
		Return(nil)

	// Act
	p, err := service.Create(ctx, propertyInput())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, id, p.ID)
	assert.Equal(t, models.Townhouse, p.PropertyType)
	assert.Contains(t, buf.String(), "Property created")
	repo.AssertExpectations(t)
}

func TestPropertyService_Create_Invalid(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	repo := new(MockPropertyRepository)
	service := NewPropertyService(repo, testLogger(&buf))
	in := propertyInput()
	in.Features.Bedrooms = 0

	// Act
	p, err := service.Create(context.Background(), in)

	// Assert
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrInvalidProperty)
	// Repository should not be called for validation errors
	repo.AssertNotCalled(t, "Create")
}

func TestPropertyService_Create_RepositoryError(t *testing.T) {
	var buf bytes.Buffer
	repo := new(MockPropertyRepository)
	service := NewPropertyService(repo, testLogger(&buf))
	ctx := context.Background()
	repo.On("Create", ctx, mock.Anything).Return(errors.New("connection refused"))

	_, err := service.Create(ctx, propertyInput())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create property")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestPropertyService_Get(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		var buf bytes.Buffer
		repo := new(MockPropertyRepository)
		service := NewPropertyService(repo, testLogger(&buf))
		expected := &models.Property{ID: id, PropertyInput: propertyInput()}
		repo.On("FindByID", ctx, id).Return(expected, nil)

		p, err := service.Get(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, expected, p)
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		var buf bytes.Buffer
		repo := new(MockPropertyRepository)
		service := NewPropertyService(repo, testLogger(&buf))
		// Repository returns nil, nil when no record exists
		repo.On("FindByID", ctx, id).Return(nil, nil)

		p, err := service.Get(ctx, id)

		assert.Nil(t, p)
		assert.ErrorIs(t, err, ErrPropertyNotFound)
	})

	t.Run("database error", func(t *testing.T) {
		var buf bytes.Buffer
		repo := new(MockPropertyRepository)
		service := NewPropertyService(repo, testLogger(&buf))
		repo.On("FindByID", ctx, id).Return(nil, errors.New("timeout"))

		_, err := service.Get(ctx, id)

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrPropertyNotFound)
		assert.Contains(t, err.Error(), "timeout")
	})
}

func TestPropertyService_PricePerSquareFoot(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("prices the record", func(t *testing.T) {
		var buf bytes.Buffer
		repo := new(MockPropertyRepository)
		service := NewPropertyService(repo, testLogger(&buf))
		repo.On("FindByID", ctx, id).Return(&models.Property{ID: id, PropertyInput: propertyInput()}, nil)

		result, err := service.PricePerSquareFoot(ctx, id, 405000)

		require.NoError(t, err)
		assert.Equal(t, id, result.PropertyID)
		assert.Equal(t, 1800.0, result.SquareFeet)
		assert.Equal(t, 225.0, result.PricePerSquareFoot)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		var buf bytes.Buffer
		repo := new(MockPropertyRepository)
		service := NewPropertyService(repo, testLogger(&buf))

		_, err := service.PricePerSquareFoot(ctx, id, 0)

		assert.ErrorIs(t, err, ErrInvalidPrice)
		repo.AssertNotCalled(t, "FindByID")
	})
}
