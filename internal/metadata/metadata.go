// Package metadata documents the fields of calculation results so clients can
// label and format them. The tables are static data.
package metadata

// Format is a display hint for a field.
type Format string

const (
	Currency   Format = "currency"
	Percentage Format = "percentage"
	Number     Format = "number"
	Integer    Format = "integer"
	Ratio      Format = "ratio"
)

// Category groups rental fields.
type Category string

const (
	CategoryIncome    Category = "income"
	CategoryCashFlow  Category = "cash_flow"
	CategoryMetrics   Category = "metrics"
	CategoryExpenses  Category = "expenses"
	CategoryHouseHack Category = "house_hacking"
)

// Field describes one result field.
type Field struct {
	Key         string   `json:"key"`
	Description string   `json:"description"`
	Unit        string   `json:"unit,omitempty"`
	Format      Format   `json:"format,omitempty"`
	Formula     string   `json:"formula,omitempty"`
	Category    Category `json:"category,omitempty"`
}

// MortgageFields documents a mortgage result and its amortization entries.
type MortgageFields struct {
	Result       []Field `json:"result"`
	Amortization []Field `json:"amortization"`
}

// RentalFields documents a rental analysis by category.
type RentalFields struct {
	Income            []Field `json:"income"`
	CashFlow          []Field `json:"cashFlow"`
	Metrics           []Field `json:"metrics"`
	OperatingExpenses []Field `json:"operatingExpenses"`
	HouseHacking      []Field `json:"houseHacking"`
}

func dollars(key, description, formula string) Field {
	return Field{Key: key, Description: description, Unit: "dollars", Format: Currency, Formula: formula}
}

func percent(key, description, formula string) Field {
	return Field{Key: key, Description: description, Unit: "percent", Format: Percentage, Formula: formula}
}

func ratio(key, description, formula string) Field {
	return Field{Key: key, Description: description, Format: Ratio, Formula: formula}
}

func inCategory(c Category, fields ...Field) []Field {
	out := make([]Field, len(fields))
	for i, f := range fields {
		f.Category = c
		out[i] = f
	}
	return out
}

// Mortgage returns the mortgage field tables.
func Mortgage() MortgageFields {
	return MortgageFields{
		Result:       append([]Field(nil), mortgageResult...),
		Amortization: append([]Field(nil), amortizationEntry...),
	}
}

// Rental returns the rental field tables.
func Rental() RentalFields {
	return RentalFields{
		Income:            append([]Field(nil), rentalIncome...),
		CashFlow:          append([]Field(nil), rentalCashFlow...),
		Metrics:           append([]Field(nil), rentalMetrics...),
		OperatingExpenses: append([]Field(nil), rentalExpenses...),
		HouseHacking:      append([]Field(nil), houseHacking...),
	}
}
