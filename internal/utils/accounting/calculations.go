package accounting

import (
	"fmt"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	// Tolerance is the maximum accepted deviation for percentage sums and installment amounts.
	Tolerance = decimal.RequireFromString("0.01")
)

// ExpectedInstallmentAmount is totalAmount × percentage / 100.
func ExpectedInstallmentAmount(totalAmount, percentage decimal.Decimal) decimal.Decimal {
	return totalAmount.Mul(percentage).Div(hundred)
}

// SumPercentages adds up the installment percentages.
func SumPercentages(installments []domain.PaymentInstallment) decimal.Decimal {
	sum := decimal.Zero
	for _, inst := range installments {
		sum = sum.Add(inst.Percentage)
	}
	return sum
}

// ValidatePercentageSum checks that the percentages add up to 100 within Tolerance.
func ValidatePercentageSum(installments []domain.PaymentInstallment) error {
	sum := SumPercentages(installments)
	if sum.Sub(hundred).Abs().GreaterThan(Tolerance) {
		return fmt.Errorf("installment percentages must sum to 100%%, got %s%%", sum.StringFixed(2))
	}
	return nil
}

// ValidatePercentageSumExact checks that the percentages add up to exactly 100.
// Phone-call onboarding uses this stricter rule while the payment manager uses ValidatePercentageSum.
func ValidatePercentageSumExact(installments []domain.PaymentInstallment) error {
	sum := SumPercentages(installments)
	if !sum.Equal(hundred) {
		return fmt.Errorf("installment percentages must sum to exactly 100%%, got %s%%", sum.String())
	}
	return nil
}

// ValidateInstallmentAmounts checks each installment amount against its share of totalAmount.
// The error names the expected amount so the caller can correct the input.
func ValidateInstallmentAmounts(totalAmount decimal.Decimal, installments []domain.PaymentInstallment) error {
	for i, inst := range installments {
		expected := ExpectedInstallmentAmount(totalAmount, inst.Percentage)
		if inst.Amount.Sub(expected).Abs().GreaterThan(Tolerance) {
			return fmt.Errorf("installment %d amount %s does not match %s%% of %s: expected %s",
				i+1, inst.Amount.StringFixed(2), inst.Percentage.String(), totalAmount.StringFixed(2), expected.StringFixed(2))
		}
	}
	return nil
}

// FillInstallmentAmounts sets Amount from the percentage on every installment whose amount was not given.
// An amount that was given is left alone, even when it is zero.
func FillInstallmentAmounts(totalAmount decimal.Decimal, installments []domain.PaymentInstallment, given []bool) {
	for i := range installments {
		if i >= len(given) || !given[i] {
			installments[i].Amount = ExpectedInstallmentAmount(totalAmount, installments[i].Percentage).Round(2)
		}
	}
}

// TaxFor computes the tax owed on total at rate (0.19 for the statutory 19%).
func TaxFor(total, rate decimal.Decimal) decimal.Decimal {
	return total.Mul(rate)
}

// ProfitFor is total − tax − expenses.
func ProfitFor(total, expenses, rate decimal.Decimal) decimal.Decimal {
	return total.Sub(TaxFor(total, rate)).Sub(expenses)
}

// Totals holds the income and expense sums of a set of transactions.
type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// SumTransactions adds INCOME and EXPENSE amounts separately. Other types are ignored.
func SumTransactions(txns []domain.Transaction) Totals {
	totals := Totals{Income: decimal.Zero, Expenses: decimal.Zero}
	for _, t := range txns {
		switch t.Type {
		case domain.Income:
			totals.Income = totals.Income.Add(t.Amount)
		case domain.Expense:
			totals.Expenses = totals.Expenses.Add(t.Amount)
		}
	}
	return totals
}

// SumLineTotals adds quantity × unit price across service items.
func SumLineTotals(items []domain.ServiceItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}
