package domain

import "github.com/shopspring/decimal"

// CaisseType distinguishes physical cash, bank accounts and bookkeeping-only accounts.
type CaisseType string

const (
	CaisseVirtual     CaisseType = "VIRTUAL"
	CaisseCash        CaisseType = "CASH"
	CaisseBankAccount CaisseType = "BANK_ACCOUNT"
)

// Caisse is a named account holding a running balance.
type Caisse struct {
	CaisseID    string          `json:"caisseID"`
	Name        string          `json:"name"`
	Type        CaisseType      `json:"type"`
	Balance     decimal.Decimal `json:"balance"`
	Description string          `json:"description"`
	IsActive    bool            `json:"isActive"`
	AuditFields

	RecentTransactions []Transaction `json:"recentTransactions,omitempty"`
}
