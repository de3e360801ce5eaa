package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Caisse is a row of the caisses table.
type Caisse struct {
	CaisseID    string          `db:"caisse_id"`
	Name        string          `db:"name"`
	Type        string          `db:"type"`
	Balance     decimal.Decimal `db:"balance"`
	Description string          `db:"description"`
	IsActive    bool            `db:"is_active"`
	AuditFields
}

// Transaction is a row of the caisse_transactions table.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	CaisseID        string          `db:"caisse_id"`
	PaymentID       *string         `db:"payment_id"` // Nullable
	Type            string          `db:"type"`
	Category        string          `db:"category"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
	Status          string          `db:"status"`
	TransactionDate time.Time       `db:"transaction_date"`
	AuditFields
}

// TransactionListRow is a transaction joined with its caisse and, when linked, its payment's client.
type TransactionListRow struct {
	Transaction
	CaisseName     string  `db:"caisse_name"`
	CaisseType     string  `db:"caisse_type"`
	ClientID       *string `db:"client_id"`
	ClientFullName *string `db:"client_full_name"`
}

// FinancialReport is a row of the financial_reports table.
type FinancialReport struct {
	ReportID       string          `db:"report_id"`
	StartDate      time.Time       `db:"start_date"`
	EndDate        time.Time       `db:"end_date"`
	TotalIncome    decimal.Decimal `db:"total_income"`
	TotalExpenses  decimal.Decimal `db:"total_expenses"`
	TotalTax       decimal.Decimal `db:"total_tax"`
	NetProfit      decimal.Decimal `db:"net_profit"`
	CaisseBalances []byte          `db:"caisse_balances"` // JSONB
	GeneratedBy    string          `db:"generated_by"`
	CreatedAt      time.Time       `db:"created_at"`
}
