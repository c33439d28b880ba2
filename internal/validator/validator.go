// Package validator registers the custom binding tags used by request types
// on gin's validator engine.
package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stwalsh4118/propcalc/api/internal/models"
	"github.com/stwalsh4118/propcalc/api/internal/strategy"
)

var zipCodeRegex = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// usStates holds USPS codes for the fifty states and DC.
var usStates = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true,
	"CO": true, "CT": true, "DE": true, "FL": true, "GA": true,
	"HI": true, "ID": true, "IL": true, "IN": true, "IA": true,
	"KS": true, "KY": true, "LA": true, "ME": true, "MD": true,
	"MA": true, "MI": true, "MN": true, "MS": true, "MO": true,
	"MT": true, "NE": true, "NV": true, "NH": true, "NJ": true,
	"NM": true, "NY": true, "NC": true, "ND": true, "OH": true,
	"OK": true, "OR": true, "PA": true, "RI": true, "SC": true,
	"SD": true, "TN": true, "TX": true, "UT": true, "VT": true,
	"VA": true, "WA": true, "WV": true, "WI": true, "WY": true,
	"DC": true,
}

// Register installs the custom validators on the gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn installs the custom validators on v and makes field errors
// report JSON names, so binding errors match the request body.
func RegisterOn(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("exit_strategy", validateExitStrategy)
	_ = v.RegisterValidation("property_type", validatePropertyType)
	_ = v.RegisterValidation("us_state", validateUSState)
	_ = v.RegisterValidation("zip_code", validateZipCode)
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

func validateExitStrategy(fl validator.FieldLevel) bool {
	return strategy.IsExitStrategy(fl.Field().String())
}

func validatePropertyType(fl validator.FieldLevel) bool {
	return models.IsPropertyType(fl.Field().String())
}

func validateUSState(fl validator.FieldLevel) bool {
	return usStates[fl.Field().String()]
}

func validateZipCode(fl validator.FieldLevel) bool {
	return zipCodeRegex.MatchString(fl.Field().String())
}
