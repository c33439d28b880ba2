package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	apierrors "github.com/stwalsh4118/propcalc/api/internal/errors"
	"github.com/stwalsh4118/propcalc/api/internal/logger"
	"github.com/stwalsh4118/propcalc/api/internal/middleware"
	"github.com/stwalsh4118/propcalc/api/internal/models"
	"github.com/stwalsh4118/propcalc/api/internal/services"
	"github.com/stwalsh4118/propcalc/api/internal/validator"
)

const maxTestScenarios = 2

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// MockPropertyService is a mock implementation of services.PropertyService.
type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) Create(ctx context.Context, in models.PropertyInput) (*models.Property, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyService) Get(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyService) PricePerSquareFoot(ctx context.Context, id uuid.UUID, price float64) (*services.PricePerSquareFoot, error) {
	args := m.Called(ctx, id, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.PricePerSquareFoot), args.Error(1)
}

// setupRouter builds the full API with real calculation services. A nil
// property service leaves the store disabled.
func setupRouter(property services.PropertyService) *gin.Engine {
	log := logger.NewWithOptions(logger.Options{Env: "test", Level: "error", Service: "propcalc-test", Output: &bytes.Buffer{}})

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))

	RegisterRoutes(router, Handlers{
		Health:   NewHealthHandler(nil, "test"),
		Mortgage: NewMortgageHandler(services.NewMortgageService(log)),
		Rental:   NewRentalHandler(services.NewRentalService(log, maxTestScenarios)),
		Strategy: NewStrategyHandler(services.NewStrategyService(log)),
		Metadata: NewMetadataHandler(),
		Property: NewPropertyHandler(property),
	})
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, reader)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) apierrors.ErrorDetail {
	t.Helper()
	var response apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), w.Body.String())
	return response.Error
}

func mortgageBody() map[string]interface{} {
	return map[string]interface{}{
		"propertyPrice":      375000,
		"loanAmount":         300000,
		"annualInterestRate": 6,
		"loanTermYears":      30,
	}
}

func rentalBody(rent float64) map[string]interface{} {
	return map[string]interface{}{
		"propertyPrice":       200000,
		"downPaymentPercent":  20,
		"annualInterestRate":  6,
		"loanTermYears":       30,
		"propertyTaxAnnual":   2400,
		"homeInsuranceAnnual": 1200,
		"monthlyRent":         rent,
		"closingCosts":        5000,
		"expenses": map[string]interface{}{
			"vacancyRate":               5,
			"propertyManagementPercent": 10,
			"maintenancePercentOfRent":  5,
			"capexPercentOfRent":        5,
		},
	}
}

func TestMortgageRoutes(t *testing.T) {
	router := setupRouter(nil)

	t.Run("calculate", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/mortgage/calculate", mortgageBody())

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.InDelta(t, 1798.65, body["principalAndInterest"], 0.001)
		assert.Equal(t, 300000.0, body["loanAmount"])
		assert.NotContains(t, body, "amortizationSchedule")
	})

	t.Run("schedule", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/mortgage/calculate/schedule", mortgageBody())

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		schedule, ok := body["amortizationSchedule"].([]interface{})
		require.True(t, ok)
		assert.Len(t, schedule, 360)
	})

	t.Run("engine violations are reported together", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/mortgage/calculate", map[string]interface{}{
			"propertyPrice":      0,
			"annualInterestRate": 6,
			"loanTermYears":      0,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		detail := decodeError(t, w)
		assert.Equal(t, apierrors.ErrValidation, detail.Code)
		assert.Equal(t, []interface{}{
			"propertyPrice is required and must be greater than 0",
			"loanTermYears must be greater than 0",
		}, detail.Details["violations"])
		assert.NotEmpty(t, detail.RequestID)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/mortgage/calculate", `{"propertyPrice":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apierrors.ErrBadRequest, decodeError(t, w).Code)
	})

	t.Run("affordability rejects empty input", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/mortgage/affordability", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apierrors.ErrValidation, decodeError(t, w).Code)
	})
}

func TestRentalRoutes(t *testing.T) {
	router := setupRouter(nil)

	t.Run("analyze", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/rental/analyze", rentalBody(2000))

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Contains(t, body, "cashFlow")
		assert.Contains(t, body, "metrics")
	})

	t.Run("compare picks the better scenario", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/rental/compare", map[string]interface{}{
			"scenarios":     []interface{}{rentalBody(1800), rentalBody(2400)},
			"scenarioNames": []string{"Low", "High"},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		comparison, ok := body["comparison"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "High", comparison["bestCashFlowScenario"])
	})

	t.Run("compare rejects too many scenarios", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/rental/compare", map[string]interface{}{
			"scenarios": []interface{}{rentalBody(1800), rentalBody(2000), rentalBody(2400)},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		detail := decodeError(t, w)
		assert.Equal(t, apierrors.ErrBadRequest, detail.Code)
		assert.Equal(t, fmt.Sprintf("too many scenarios: got 3, max %d", maxTestScenarios), detail.Message)
	})

	t.Run("house hacking", func(t *testing.T) {
		body := rentalBody(2400)
		body["ownerOccupiedUnits"] = 1
		body["totalUnits"] = 2

		w := postJSON(t, router, "/api/v1/rental/house-hacking", body)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1200.0, decode(t, w)["rentedUnitsRent"])
	})

	t.Run("schedule requires valid input", func(t *testing.T) {
		body := rentalBody(2000)
		body["monthlyRent"] = -1

		w := postJSON(t, router, "/api/v1/rental/analyze/schedule", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apierrors.ErrValidation, decodeError(t, w).Code)
	})
}

func TestStrategyRoutes(t *testing.T) {
	router := setupRouter(nil)

	t.Run("mao", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/strategies/mao", map[string]interface{}{
			"afterRepairValue": 200000,
			"repairCosts":      30000,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, 110000.0, body["mao"])
		assert.Equal(t, 60000.0, body["potentialProfit"])
		assert.Equal(t, 42.86, body["roi"])
	})

	t.Run("commercial noi", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/strategies/commercial-noi", map[string]interface{}{
			"grossScheduledIncome": 100000,
			"vacancyLoss":          5000,
			"operatingExpenses":    30000,
			"managementFees":       5000,
			"reserves":             2000,
			"marketCapRate":        8,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, 95000.0, body["effectiveGrossIncome"])
		assert.Equal(t, 58000.0, body["noi"])
		assert.Equal(t, 725000.0, body["impliedValue"])
	})

	t.Run("binding errors use json field names", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/strategies/hard-money", map[string]interface{}{
			"loanAmount":   100000,
			"interestRate": 12,
			"termMonths":   12,
			"exitStrategy": "auction",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		detail := decodeError(t, w)
		assert.Equal(t, apierrors.ErrValidation, detail.Code)
		assert.Equal(t, "Must be one of: refinance sale", detail.Details["exitStrategy"])
	})

	required := []string{
		"/api/v1/strategies/mao",
		"/api/v1/strategies/fix-and-flip",
		"/api/v1/strategies/brrrr",
		"/api/v1/strategies/wholesale",
		"/api/v1/strategies/airbnb",
		"/api/v1/strategies/value-add",
		"/api/v1/strategies/syndication",
		"/api/v1/strategies/hard-money",
		"/api/v1/strategies/private-lending",
		"/api/v1/strategies/land-development",
	}
	for _, path := range required {
		t.Run("empty body "+strings.TrimPrefix(path, "/api/v1/strategies/"), func(t *testing.T) {
			w := postJSON(t, router, path, `{}`)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, apierrors.ErrValidation, decodeError(t, w).Code)
		})
	}
}

func TestMetadataRoutes(t *testing.T) {
	router := setupRouter(nil)

	for _, path := range []string{"/api/v1/metadata/mortgage", "/api/v1/metadata/rental"} {
		t.Run(path, func(t *testing.T) {
			w := serve(t, router, http.MethodGet, path)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.NotEmpty(t, decode(t, w))
		})
	}
}

func propertyBody() map[string]interface{} {
	return map[string]interface{}{
		"propertyType": "single_family",
		"address": map[string]interface{}{
			"street":  "12 Elm St",
			"city":    "Austin",
			"state":   "TX",
			"zipCode": "78701",
			"country": "US",
		},
		"features": map[string]interface{}{
			"bedrooms":      3,
			"fullBathrooms": 2,
			"squareFeet":    1800,
		},
	}
}

func TestPropertyRoutes_StoreDisabled(t *testing.T) {
	router := setupRouter(nil)
	id := uuid.NewString()

	cases := []*httptest.ResponseRecorder{
		postJSON(t, router, "/api/v1/properties", propertyBody()),
		serve(t, router, http.MethodGet, "/api/v1/properties/"+id),
		serve(t, router, http.MethodGet, "/api/v1/properties/"+id+"/price-per-sqft?price=405000"),
	}

	for _, w := range cases {
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, apierrors.ErrServiceUnavailable, decodeError(t, w).Code)
	}
}

func TestPropertyRoutes_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		// Arrange
		svc := new(MockPropertyService)
		id := uuid.New()
		svc.On("Create", mock.Anything, mock.MatchedBy(func(in models.PropertyInput) bool {
			return in.Address.City == "Austin" && in.Features.SquareFeet == 1800
		})).Return(&models.Property{ID: id}, nil)
		router := setupRouter(svc)

		// Act
		w := postJSON(t, router, "/api/v1/properties", propertyBody())

		// Assert
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, id.String(), decode(t, w)["id"])
		svc.AssertExpectations(t)
	})

	t.Run("binding failure never reaches the service", func(t *testing.T) {
		svc := new(MockPropertyService)
		router := setupRouter(svc)
		body := propertyBody()
		body["address"].(map[string]interface{})["state"] = "ZZ"

		w := postJSON(t, router, "/api/v1/properties", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		detail := decodeError(t, w)
		assert.Equal(t, apierrors.ErrValidation, detail.Code)
		assert.Equal(t, "Must be a two-letter US state code", detail.Details["state"])
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("record rules", func(t *testing.T) {
		svc := new(MockPropertyService)
		svc.On("Create", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: features.bedrooms must be greater than 0", services.ErrInvalidProperty))
		router := setupRouter(svc)

		w := postJSON(t, router, "/api/v1/properties", propertyBody())

		assert.Equal(t, http.StatusBadRequest, w.Code)
		detail := decodeError(t, w)
		assert.Equal(t, apierrors.ErrBadRequest, detail.Code)
		assert.Contains(t, detail.Message, "features.bedrooms must be greater than 0")
	})

	t.Run("store failure", func(t *testing.T) {
		svc := new(MockPropertyService)
		svc.On("Create", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("insert: connection reset"))
		router := setupRouter(svc)

		w := postJSON(t, router, "/api/v1/properties", propertyBody())

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection reset")
	})
}

func TestPropertyRoutes_Get(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name           string
		path           string
		setup          func(*MockPropertyService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "found",
			path: "/api/v1/properties/" + id.String(),
			setup: func(m *MockPropertyService) {
				m.On("Get", mock.Anything, id).Return(&models.Property{ID: id}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			path: "/api/v1/properties/" + id.String(),
			setup: func(m *MockPropertyService) {
				m.On("Get", mock.Anything, id).Return(nil, services.ErrPropertyNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   apierrors.ErrNotFound,
		},
		{
			name:           "invalid id",
			path:           "/api/v1/properties/not-a-uuid",
			setup:          func(m *MockPropertyService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apierrors.ErrBadRequest,
		},
		{
			name: "database error",
			path: "/api/v1/properties/" + id.String(),
			setup: func(m *MockPropertyService) {
				m.On("Get", mock.Anything, id).Return(nil, fmt.Errorf("query failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apierrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			svc := new(MockPropertyService)
			tt.setup(svc)
			router := setupRouter(svc)

			// Act
			w := serve(t, router, http.MethodGet, tt.path)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, w).Code)
			} else {
				assert.Equal(t, id.String(), decode(t, w)["id"])
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestPropertyRoutes_PricePerSquareFoot(t *testing.T) {
	id := uuid.New()
	path := "/api/v1/properties/" + id.String() + "/price-per-sqft"

	t.Run("priced", func(t *testing.T) {
		svc := new(MockPropertyService)
		svc.On("PricePerSquareFoot", mock.Anything, id, 405000.0).Return(&services.PricePerSquareFoot{
			PropertyID:         id,
			Price:              405000,
			SquareFeet:         1800,
			PricePerSquareFoot: 225,
		}, nil)
		router := setupRouter(svc)

		w := serve(t, router, http.MethodGet, path+"?price=405000")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 225.0, decode(t, w)["pricePerSquareFoot"])
		svc.AssertExpectations(t)
	})

	for _, query := range []string{"", "?price=0", "?price=abc"} {
		t.Run("bad price "+query, func(t *testing.T) {
			svc := new(MockPropertyService)
			router := setupRouter(svc)

			w := serve(t, router, http.MethodGet, path+query)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			svc.AssertNotCalled(t, "PricePerSquareFoot", mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("property without square footage", func(t *testing.T) {
		svc := new(MockPropertyService)
		svc.On("PricePerSquareFoot", mock.Anything, id, 100000.0).
			Return(nil, fmt.Errorf("%w: property has no square footage", services.ErrInvalidPrice))
		router := setupRouter(svc)

		w := serve(t, router, http.MethodGet, path+"?price=100000")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apierrors.ErrBadRequest, decodeError(t, w).Code)
	})
}

func TestHealthRoutesMounted(t *testing.T) {
	router := setupRouter(nil)

	for _, path := range []string{"/health", "/health/ready", "/api/v1/info"} {
		assert.Equal(t, http.StatusOK, serve(t, router, http.MethodGet, path).Code, path)
	}
}
