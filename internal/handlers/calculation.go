package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/stwalsh4118/propcalc/api/internal/errors"
	"github.com/stwalsh4118/propcalc/api/internal/services"
)

// calculation binds the JSON body into In, runs it and writes the result
// object directly as the response body.
func calculation[In any, Out any](run func(context.Context, In) (*Out, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in In
		if err := c.ShouldBindJSON(&in); err != nil {
			apierrors.BindError(c, err)
			return
		}

		out, err := run(c.Request.Context(), in)
		if err != nil {
			calculationFailed(c, err)
			return
		}

		c.JSON(http.StatusOK, out)
	}
}

func calculationFailed(c *gin.Context, err error) {
	if errors.Is(err, services.ErrTooManyScenarios) {
		apierrors.BadRequest(c, err.Error(), nil)
		return
	}
	apierrors.CalculationError(c, err)
}

// MortgageHandler handles mortgage payment and affordability requests.
type MortgageHandler struct {
	service services.MortgageService
}

// NewMortgageHandler creates a new MortgageHandler instance.
func NewMortgageHandler(service services.MortgageService) *MortgageHandler {
	return &MortgageHandler{service: service}
}

// Calculate handles POST /api/v1/mortgage/calculate.
func (h *MortgageHandler) Calculate(c *gin.Context) {
	calculation(func(ctx context.Context, in mortgageRequest) (*mortgageResponse, error) {
		return h.service.Calculate(ctx, in, false)
	})(c)
}

// Schedule handles POST /api/v1/mortgage/calculate/schedule.
func (h *MortgageHandler) Schedule(c *gin.Context) {
	calculation(func(ctx context.Context, in mortgageRequest) (*mortgageResponse, error) {
		return h.service.Calculate(ctx, in, true)
	})(c)
}

// Affordability handles POST /api/v1/mortgage/affordability.
func (h *MortgageHandler) Affordability(c *gin.Context) {
	calculation(h.service.Affordability)(c)
}

// RentalHandler handles rental analysis requests.
type RentalHandler struct {
	service services.RentalService
}

// NewRentalHandler creates a new RentalHandler instance.
func NewRentalHandler(service services.RentalService) *RentalHandler {
	return &RentalHandler{service: service}
}

// Analyze handles POST /api/v1/rental/analyze.
func (h *RentalHandler) Analyze(c *gin.Context) {
	calculation(func(ctx context.Context, in rentalRequest) (*rentalResponse, error) {
		return h.service.Analyze(ctx, in, false)
	})(c)
}

// Schedule handles POST /api/v1/rental/analyze/schedule.
func (h *RentalHandler) Schedule(c *gin.Context) {
	calculation(func(ctx context.Context, in rentalRequest) (*rentalResponse, error) {
		return h.service.Analyze(ctx, in, true)
	})(c)
}

// Compare handles POST /api/v1/rental/compare.
func (h *RentalHandler) Compare(c *gin.Context) {
	calculation(h.service.Compare)(c)
}

// HouseHacking handles POST /api/v1/rental/house-hacking.
func (h *RentalHandler) HouseHacking(c *gin.Context) {
	calculation(h.service.HouseHacking)(c)
}

// StrategyHandler handles the investment-strategy endpoints. Each field is
// a ready gin handler for one strategy.
type StrategyHandler struct {
	MAO             gin.HandlerFunc
	FixAndFlip      gin.HandlerFunc
	BRRRR           gin.HandlerFunc
	Wholesale       gin.HandlerFunc
	Airbnb          gin.HandlerFunc
	CommercialNOI   gin.HandlerFunc
	ValueAdd        gin.HandlerFunc
	Syndication     gin.HandlerFunc
	HardMoney       gin.HandlerFunc
	PrivateLending  gin.HandlerFunc
	LandDevelopment gin.HandlerFunc
}

// NewStrategyHandler creates a new StrategyHandler instance.
func NewStrategyHandler(service services.StrategyService) *StrategyHandler {
	return &StrategyHandler{
		MAO:             calculation(service.MaximumAllowableOffer),
		FixAndFlip:      calculation(service.FixAndFlip),
		BRRRR:           calculation(service.BRRRR),
		Wholesale:       calculation(service.Wholesale),
		Airbnb:          calculation(service.Airbnb),
		CommercialNOI:   calculation(service.CommercialNOI),
		ValueAdd:        calculation(service.ValueAdd),
		Syndication:     calculation(service.Syndication),
		HardMoney:       calculation(service.HardMoney),
		PrivateLending:  calculation(service.PrivateLending),
		LandDevelopment: calculation(service.LandDevelopment),
	}
}
