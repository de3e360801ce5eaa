package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CaisseSnapshot is the state of a caisse captured in a report.
type CaisseSnapshot struct {
	Name    string          `json:"name"`
	Type    CaisseType      `json:"type"`
	Balance decimal.Decimal `json:"balance"`
}

// FinancialReport is an immutable summary of completed transactions over a date range.
type FinancialReport struct {
	ReportID       string                    `json:"reportID"`
	StartDate      time.Time                 `json:"startDate"`
	EndDate        time.Time                 `json:"endDate"`
	TotalIncome    decimal.Decimal           `json:"totalIncome"`
	TotalExpenses  decimal.Decimal           `json:"totalExpenses"`
	TotalTax       decimal.Decimal           `json:"totalTax"`
	NetProfit      decimal.Decimal           `json:"netProfit"`
	CaisseBalances map[string]CaisseSnapshot `json:"caisseBalances"`
	GeneratedBy    string                    `json:"generatedBy"`
	CreatedAt      time.Time                 `json:"createdAt"`
}
