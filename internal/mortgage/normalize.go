package mortgage

import "github.com/stwalsh4118/propcalc/api/internal/finance"

// Validate reports every problem with in at once.
func Validate(in FlexibleInput) error {
	v := finance.NewViolations("")
	Check(v, in)
	return v.Err()
}

// Check records the violations of in on v. It lets composite inputs such as a
// rental analysis aggregate mortgage problems with their own.
func Check(v *finance.Violations, in FlexibleInput) {
	if in.PropertyPrice <= 0 {
		v.Addf("propertyPrice is required and must be greater than 0")
	}

	v.Exclusive("loanAmount", in.LoanAmount, "loanAmountPercent", in.LoanAmountPercent)
	v.Exclusive("downPayment", in.DownPayment, "downPaymentPercent", in.DownPaymentPercent)
	v.Exclusive("propertyTaxAnnual", in.PropertyTaxAnnual, "propertyTaxPercent", in.PropertyTaxPercent)
	v.Exclusive("homeInsuranceAnnual", in.HomeInsuranceAnnual, "homeInsurancePercent", in.HomeInsurancePercent)

	v.Percentage("loanAmountPercent", in.LoanAmountPercent)
	v.Percentage("downPaymentPercent", in.DownPaymentPercent)
	v.OptionalNonNegative("propertyTaxPercent", in.PropertyTaxPercent)
	v.OptionalNonNegative("homeInsurancePercent", in.HomeInsurancePercent)

	v.OptionalNonNegative("loanAmount", in.LoanAmount)
	v.OptionalNonNegative("downPayment", in.DownPayment)
	v.OptionalNonNegative("propertyTaxAnnual", in.PropertyTaxAnnual)
	v.OptionalNonNegative("homeInsuranceAnnual", in.HomeInsuranceAnnual)
	v.OptionalNonNegative("hoaMonthly", in.HOAMonthly)
	v.OptionalNonNegative("pmiMonthly", in.PMIMonthly)

	if in.PropertyPrice > 0 {
		if in.DownPayment != nil && *in.DownPayment > in.PropertyPrice {
			v.Addf("downPayment cannot exceed propertyPrice")
		}
		if in.LoanAmount != nil && *in.LoanAmount > in.PropertyPrice {
			v.Addf("loanAmount cannot exceed propertyPrice")
		}
	}

	v.NonNegative("annualInterestRate", in.AnnualInterestRate)
	if in.LoanTermYears <= 0 {
		v.Addf("loanTermYears must be greater than 0")
	}
}

// Normalize validates in and resolves it into canonical Terms.
func Normalize(in FlexibleInput) (Terms, error) {
	if err := Validate(in); err != nil {
		return Terms{}, err
	}

	price := in.PropertyPrice
	autoPMI := true
	if in.AutoCalculatePMI != nil {
		autoPMI = *in.AutoCalculatePMI
	}

	return Terms{
		PropertyPrice:       price,
		Loan:                amountOf(in.LoanAmount, in.LoanAmountPercent),
		DownPayment:         amountOf(in.DownPayment, in.DownPaymentPercent),
		AnnualInterestRate:  in.AnnualInterestRate,
		LoanTermYears:       in.LoanTermYears,
		PropertyTaxAnnual:   amountOf(in.PropertyTaxAnnual, in.PropertyTaxPercent).Resolve(price),
		HomeInsuranceAnnual: amountOf(in.HomeInsuranceAnnual, in.HomeInsurancePercent).Resolve(price),
		HOAMonthly:          finance.ValueOr(in.HOAMonthly, 0),
		PMIOverride:         in.PMIMonthly,
		AutoCalculatePMI:    autoPMI,
	}, nil
}
