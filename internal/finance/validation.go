package finance

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is matched by every ValidationError.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError carries every violation found in one input.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ", ")
}

// Is lets errors.Is(err, ErrInvalidInput) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Violations collects validation failures so they can be reported together.
type Violations struct {
	prefix string
	list   []string
}

// NewViolations returns an empty collector. A non-empty prefix is prepended to
// each message, e.g. "scenarios[1]: ".
func NewViolations(prefix string) *Violations {
	return &Violations{prefix: prefix}
}

// Addf records a violation.
func (v *Violations) Addf(format string, args ...interface{}) {
	v.list = append(v.list, v.prefix+fmt.Sprintf(format, args...))
}

// Merge appends the violations carried by err, if any.
func (v *Violations) Merge(err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		for _, msg := range verr.Violations {
			v.list = append(v.list, v.prefix+msg)
		}
	}
}

// Positive requires value > 0.
func (v *Violations) Positive(name string, value float64) {
	if value <= 0 {
		v.Addf("%s must be greater than 0", name)
	}
}

// NonNegative requires value >= 0.
func (v *Violations) NonNegative(name string, value float64) {
	if value < 0 {
		v.Addf("%s cannot be negative", name)
	}
}

// OptionalNonNegative requires a present value to be >= 0.
func (v *Violations) OptionalNonNegative(name string, value *float64) {
	if value != nil {
		v.NonNegative(name, *value)
	}
}

// Percentage requires a present value to lie in [0, 100].
func (v *Violations) Percentage(name string, value *float64) {
	if value != nil && (*value < 0 || *value > 100) {
		v.Addf("%s must be between 0 and 100", name)
	}
}

// Exclusive rejects inputs that set both members of an absolute/percent pair.
func (v *Violations) Exclusive(absName string, abs *float64, pctName string, pct *float64) {
	if abs != nil && pct != nil {
		v.Addf("cannot specify both %s and %s", absName, pctName)
	}
}

// Len reports the number of violations recorded.
func (v *Violations) Len() int {
	return len(v.list)
}

// Err returns a *ValidationError when any violation was recorded, else nil.
func (v *Violations) Err() error {
	if len(v.list) == 0 {
		return nil
	}
	out := make([]string, len(v.list))
	copy(out, v.list)
	return &ValidationError{Violations: out}
}
