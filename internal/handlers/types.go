package handlers

import (
	"github.com/stwalsh4118/propcalc/api/internal/mortgage"
	"github.com/stwalsh4118/propcalc/api/internal/rental"
)

// Request and response bodies are the engine types themselves.
type (
	mortgageRequest  = mortgage.FlexibleInput
	mortgageResponse = mortgage.Result
	rentalRequest    = rental.Input
	rentalResponse   = rental.Result
)
