package metadata

const paymentFormula = "P * r * (1 + r)^n / ((1 + r)^n - 1), or P / n when r = 0"

var mortgageResult = []Field{
	dollars("principalAndInterest", "Monthly principal and interest payment, excluding tax, insurance, PMI and HOA", paymentFormula),
	dollars("propertyTax", "Monthly property tax", "(propertyTaxAnnual or propertyTaxPercent / 100 * propertyPrice) / 12"),
	dollars("homeInsurance", "Monthly homeowner's insurance", "(homeInsuranceAnnual or homeInsurancePercent / 100 * propertyPrice) / 12"),
	dollars("pmi", "Monthly private mortgage insurance, charged when the down payment is below 20%", "pmiMonthly or loanAmount * 0.0075 / 12"),
	dollars("hoa", "Monthly homeowners association fee", ""),
	dollars("totalMonthlyPayment", "Total monthly housing payment", "principalAndInterest + propertyTax + homeInsurance + pmi + hoa"),
	dollars("totalPayment", "Principal and interest paid over the full term", "principalAndInterest * loanTermYears * 12"),
	dollars("totalInterest", "Interest paid over the full term", "totalPayment - loanAmount"),
	dollars("loanAmount", "Amount borrowed", "loanAmount, or propertyPrice - downPayment"),
	dollars("downPaymentAmount", "Cash paid toward the purchase price", "downPayment, or propertyPrice - loanAmount"),
	percent("downPaymentPercentage", "Down payment as a share of the price", "downPaymentAmount / propertyPrice * 100"),
	percent("loanToValue", "Loan as a share of the price", "loanAmount / propertyPrice * 100"),
}

var amortizationEntry = []Field{
	{Key: "month", Description: "Payment number, starting at 1", Format: Integer},
	dollars("principalAndInterest", "Scheduled principal and interest payment", paymentFormula),
	dollars("principal", "Portion of the payment that reduces the balance", "principalAndInterest - interest"),
	dollars("interest", "Portion of the payment that is interest", "previousBalance * annualInterestRate / 100 / 12"),
	dollars("propertyTax", "Monthly property tax", ""),
	dollars("homeInsurance", "Monthly homeowner's insurance", ""),
	dollars("pmi", "PMI charged this month; zero once the balance reaches 80% of the original loan", ""),
	dollars("hoa", "Monthly HOA fee", ""),
	dollars("totalPayment", "Everything paid this month", "principalAndInterest + propertyTax + homeInsurance + pmi + hoa"),
	dollars("remainingBalance", "Balance after this payment", "previousBalance - principal"),
	percent("loanToValue", "Remaining balance as a share of the original price", "remainingBalance / propertyPrice * 100"),
	dollars("totalPrincipalPaid", "Principal paid through this month", "sum of principal to date"),
	dollars("totalInterestPaid", "Interest paid through this month", "sum of interest to date"),
	percent("principalPaidPercent", "Share of the original loan repaid", "totalPrincipalPaid / loanAmount * 100"),
	percent("interestPaidPercent", "Interest paid relative to the original loan", "totalInterestPaid / loanAmount * 100"),
}

var rentalIncome = inCategory(CategoryIncome,
	dollars("monthlyRent", "Gross scheduled rent per month", ""),
	dollars("effectiveMonthlyRent", "Rent after vacancy loss", "monthlyRent - vacancy"),
)

var rentalCashFlow = inCategory(CategoryCashFlow,
	dollars("grossRent", "Gross scheduled rent per month", "monthlyRent"),
	dollars("effectiveRent", "Rent after vacancy loss", "monthlyRent * (1 - vacancyRate / 100)"),
	dollars("totalExpenses", "Monthly operating expenses including property tax and insurance", "operatingExpenses.totalMonthly"),
	dollars("netOperatingIncome", "Monthly income before debt service", "effectiveRent - totalExpenses"),
	dollars("debtService", "Monthly financing cost", "principalAndInterest + pmi + hoa"),
	dollars("cashFlowMonthly", "Monthly cash left after expenses and debt service", "netOperatingIncome - debtService"),
	dollars("cashFlowAnnual", "Annual cash flow", "cashFlowMonthly * 12"),
)

var rentalMetrics = inCategory(CategoryMetrics,
	percent("capRate", "Annual NOI relative to the price", "netOperatingIncome * 12 / propertyPrice * 100"),
	percent("cashOnCashReturn", "Annual cash flow relative to cash invested; 0 when nothing is invested", "cashFlowAnnual / (downPayment + closingCosts + rehabCosts) * 100"),
	ratio("grossRentMultiplier", "Price relative to annual gross rent", "propertyPrice / (monthlyRent * 12)"),
	ratio("debtCoverageRatio", "Annual NOI relative to annual debt service; 0 without debt", "netOperatingIncome / debtService"),
	percent("operatingExpenseRatio", "Operating expenses relative to gross rent", "totalExpenses / monthlyRent * 100"),
	percent("breakEvenOccupancy", "Occupancy needed to cover expenses and debt service", "(totalExpenses + debtService) / monthlyRent * 100"),
	percent("totalReturnOnInvestment", "First-year cash flow, appreciation, principal paydown and tax savings relative to cash invested", "(cashFlowAnnual + appreciationYear1 + equityBuildupYear1 + taxShelterValue) / cashInvested * 100"),
	dollars("annualDepreciation", "Straight-line depreciation of the building", "(propertyPrice - landValue) / depreciationYears"),
	dollars("equityBuildupYear1", "Principal repaid in the first twelve payments", "sum of principal for months 1-12"),
)

var rentalExpenses = inCategory(CategoryExpenses,
	dollars("vacancy", "Rent lost to vacancy; reduces rent rather than adding to totalMonthly", "monthlyRent * vacancyRate / 100"),
	dollars("propertyManagement", "Management fee", "propertyManagementFlat, or monthlyRent * propertyManagementPercent / 100"),
	dollars("maintenance", "Maintenance reserve", "maintenanceAnnual / 12, or monthlyRent * maintenancePercentOfRent / 100, or propertyPrice * maintenancePercentOfValue / 100 / 12"),
	dollars("capex", "Capital expenditure reserve", "capexAnnual / 12, or monthlyRent * capexPercentOfRent / 100, or propertyPrice * capexPercentOfValue / 100 / 12"),
	dollars("utilities", "Owner-paid utilities", "utilitiesMonthly"),
	dollars("landscaping", "Landscaping", "landscapingMonthly"),
	dollars("pestControl", "Pest control", "pestControlMonthly"),
	dollars("legalFees", "Legal fees", "legalFeesAnnual / 12"),
	dollars("landlordInsurance", "Landlord policy premium", "landlordInsuranceAnnual / 12"),
	dollars("specialAssessments", "Special assessments", "specialAssessmentsAnnual / 12"),
	dollars("advertising", "Advertising", "advertisingAnnual / 12"),
	dollars("turnover", "Tenant turnover costs", "turnoverCostPerYear / 12"),
	dollars("propertyTax", "Monthly property tax from the mortgage calculation", ""),
	dollars("homeInsurance", "Monthly insurance from the mortgage calculation", ""),
	dollars("totalMonthly", "Total monthly operating expenses", "sum of every category except vacancy"),
)

// House hacking fields are computed on the rented units' share of rent.
var houseHacking = inCategory(CategoryHouseHack,
	dollars("rentedUnitsRent", "Market rent of the units the owner does not occupy", "monthlyRent / totalUnits * (totalUnits - ownerOccupiedUnits)"),
	dollars("ownerUnitMarketRent", "Market rent of the owner-occupied units", "monthlyRent / totalUnits * ownerOccupiedUnits"),
	dollars("effectiveLivingCost", "What the owner pays each month to live in the property, after tenant rent covers what it can", "-cashFlowMonthly, where cash flow is analyzed on rentedUnitsRent only"),
	percent("percentOfMortgageCovered", "Share of the total monthly payment covered by tenant rent after vacancy", "effectiveRent / totalMonthlyPayment * 100"),
	dollars("netHousingCost", "Living cost compared with renting the owner's unit; negative means house hacking is cheaper", "effectiveLivingCost - ownerUnitMarketRent"),
)
