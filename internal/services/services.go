// Package services sits between the HTTP handlers and the calculation
// engines. Services are stateless apart from their logger and repository,
// and log every calculation they run.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/stwalsh4118/propcalc/api/internal/finance"
	"github.com/stwalsh4118/propcalc/api/internal/logger"
)

// Service-level errors
var (
	ErrTooManyScenarios = errors.New("too many scenarios")
	ErrPropertyNotFound = errors.New("property not found")
	ErrInvalidPrice     = errors.New("price must be greater than 0")
)

// calculate runs one engine operation, logging the outcome. Validation
// failures log at warn with every violation; anything else logs at error.
// summary picks the headline figures logged on success.
func calculate[In any, Out any](
	ctx context.Context,
	log *logger.Logger,
	op string,
	in In,
	run func(In) (*Out, error),
	summary func(*Out) map[string]interface{},
) (*Out, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := run(in)
	if err != nil {
		var verr *finance.ValidationError
		if errors.As(err, &verr) {
			log.Warn("Calculation input rejected", map[string]interface{}{
				"operation":  op,
				"violations": verr.Violations,
			})
		} else {
			log.Error("Calculation failed", err, map[string]interface{}{"operation": op})
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	fields := map[string]interface{}{"operation": op}
	for k, v := range summary(out) {
		fields[k] = v
	}
	log.Info("Calculation completed", fields)

	return out, nil
}
