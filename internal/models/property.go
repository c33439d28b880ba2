package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stwalsh4118/propcalc/api/internal/finance"
)

// PropertyType classifies a residential property record.
type PropertyType string

// Supported property types.
const (
	SingleFamily PropertyType = "single_family"
	MultiFamily  PropertyType = "multi_family"
	Condo        PropertyType = "condo"
	Townhouse    PropertyType = "townhouse"
	Apartment    PropertyType = "apartment"
)

// PropertyTypes lists every supported PropertyType in display order.
var PropertyTypes = []PropertyType{SingleFamily, MultiFamily, Condo, Townhouse, Apartment}

// IsPropertyType reports whether s names a supported PropertyType.
func IsPropertyType(s string) bool {
	for _, t := range PropertyTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}

// CountryUS is the only country records may be filed under.
const CountryUS = "US"

// ErrInvalidProperty is returned by Property.Validate.
var ErrInvalidProperty = errors.New("invalid property information")

// Address is where a property is located. State is a two-letter USPS code.
type Address struct {
	Street  string  `json:"street" binding:"required"`
	Unit    *string `json:"unit,omitempty"`
	City    string  `json:"city" binding:"required"`
	State   string  `json:"state" binding:"required,us_state"`
	ZipCode string  `json:"zipCode" binding:"required,zip_code"`
	Country string  `json:"country" binding:"required,oneof=US"`
}

// Parking describes the parking that comes with a property.
type Parking struct {
	Type   string `json:"type" binding:"required,oneof=garage carport street none"`
	Spaces int    `json:"spaces" binding:"gte=0"`
}

// Features are the physical characteristics of a property. They are stored
// as a single JSONB document.
type Features struct {
	Bedrooms      int      `json:"bedrooms"`
	FullBathrooms int      `json:"fullBathrooms"`
	HalfBathrooms int      `json:"halfBathrooms"`
	SquareFeet    float64  `json:"squareFeet"`
	YearBuilt     int      `json:"yearBuilt,omitempty"`
	LotSize       *float64 `json:"lotSize,omitempty"`
	Acres         *float64 `json:"acres,omitempty"`
	Parking       *Parking `json:"parking,omitempty"`
	HasBasement   *bool    `json:"hasBasement,omitempty"`
	Stories       int      `json:"stories,omitempty"`
}

// Amenities records optional property amenities. Unknown amenities are absent.
type Amenities struct {
	CentralAir      *bool `json:"centralAir,omitempty"`
	WasherDryer     *bool `json:"washerDryer,omitempty"`
	Dishwasher      *bool `json:"dishwasher,omitempty"`
	Pool            *bool `json:"pool,omitempty"`
	Patio           *bool `json:"patio,omitempty"`
	Fireplace       *bool `json:"fireplace,omitempty"`
	Furnished       *bool `json:"furnished,omitempty"`
	SecuritySystem  *bool `json:"securitySystem,omitempty"`
	OutdoorKitchen  *bool `json:"outdoorKitchen,omitempty"`
	SmartHome       *bool `json:"smartHome,omitempty"`
	SolarPanels     *bool `json:"solarPanels,omitempty"`
	Gym             *bool `json:"gym,omitempty"`
	Elevator        *bool `json:"elevator,omitempty"`
	Intercom        *bool `json:"intercom,omitempty"`
	Garden          *bool `json:"garden,omitempty"`
	SprinklerSystem *bool `json:"sprinklerSystem,omitempty"`
	DeckBalcony     *bool `json:"deckBalcony,omitempty"`
	HotTub          *bool `json:"hotTub,omitempty"`
	HardwoodFloors  *bool `json:"hardwoodFloors,omitempty"`
	StorageUnit     *bool `json:"storageUnit,omitempty"`
	Playground      *bool `json:"playground,omitempty"`
}

// PropertyInput is the body of a create-property request.
type PropertyInput struct {
	PropertyType   PropertyType `json:"propertyType" binding:"required,property_type"`
	Address        Address      `json:"address"`
	Features       Features     `json:"features"`
	Amenities      Amenities    `json:"amenities"`
	Description    *string      `json:"description,omitempty"`
	Zoning         *string      `json:"zoning,omitempty"`
	SchoolDistrict *string      `json:"schoolDistrict,omitempty"`
	FloodZone      *bool        `json:"floodZone,omitempty"`
	HOAName        *string      `json:"hoaName,omitempty"`
}

// Property is a stored property record. Nullable columns use pointers.
type Property struct {
	ID uuid.UUID `json:"id"`
	PropertyInput
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate applies the record rules that binding tags cannot express and
// returns an error wrapping ErrInvalidProperty that names every problem.
func (in PropertyInput) Validate() error {
	var problems []string

	a := in.Address
	for _, f := range []struct{ name, value string }{
		{"street", a.Street}, {"city", a.City}, {"state", a.State}, {"zipCode", a.ZipCode}, {"country", a.Country},
	} {
		if strings.TrimSpace(f.value) == "" {
			problems = append(problems, "address."+f.name+" is required")
		}
	}

	f := in.Features
	if f.Bedrooms <= 0 {
		problems = append(problems, "features.bedrooms must be greater than 0")
	}
	if f.FullBathrooms < 0 || f.HalfBathrooms < 0 {
		problems = append(problems, "features bathroom counts cannot be negative")
	} else if f.FullBathrooms+f.HalfBathrooms == 0 {
		problems = append(problems, "features must include at least one bathroom")
	}
	if f.SquareFeet <= 0 {
		problems = append(problems, "features.squareFeet must be greater than 0")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidProperty, strings.Join(problems, ", "))
	}
	return nil
}

// PricePerSquareFoot divides price by the living area, rounded to cents.
// It returns 0 for a non-positive price or a record without square footage.
func (p Property) PricePerSquareFoot(price float64) float64 {
	if price <= 0 || p.Features.SquareFeet <= 0 {
		return 0
	}
	return finance.Round(price / p.Features.SquareFeet)
}

// IsMultiUnit reports whether the record describes more than one dwelling.
func (p Property) IsMultiUnit() bool {
	return p.PropertyType == MultiFamily || p.PropertyType == Apartment
}
