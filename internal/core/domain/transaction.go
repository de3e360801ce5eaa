package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of money through a caisse.
type TransactionType string

const (
	Income   TransactionType = "INCOME"
	Expense  TransactionType = "EXPENSE"
	Transfer TransactionType = "TRANSFER"
)

// TransactionStatus is the lifecycle state of a ledger entry. Only COMPLETED entries count in reports.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionCancelled TransactionStatus = "CANCELLED"
)

// ExpenseCategory classifies EXPENSE transactions.
type ExpenseCategory string

const (
	ExpenseRent      ExpenseCategory = "RENT"
	ExpenseSalaries  ExpenseCategory = "SALARIES"
	ExpenseUtilities ExpenseCategory = "UTILITIES"
	ExpenseSupplies  ExpenseCategory = "SUPPLIES"
	ExpenseTaxes     ExpenseCategory = "TAXES"
	ExpenseMarketing ExpenseCategory = "MARKETING"
	ExpenseOther     ExpenseCategory = "OTHER"
)

// Transaction is a single movement on one caisse, optionally linked to a client payment.
type Transaction struct {
	TransactionID   string            `json:"transactionID"`
	CaisseID        string            `json:"caisseID"`
	PaymentID       string            `json:"paymentID"`
	Type            TransactionType   `json:"type"`
	Category        string            `json:"category"`
	Amount          decimal.Decimal   `json:"amount"` // always positive; Type carries the sign
	Description     string            `json:"description"`
	Status          TransactionStatus `json:"status"`
	TransactionDate time.Time         `json:"transactionDate"`
	AuditFields

	Caisse  *CaisseSummary  `json:"caisse,omitempty"`
	Payment *PaymentSummary `json:"payment,omitempty"`
}

// CaisseSummary is the caisse projection embedded in transaction listings.
type CaisseSummary struct {
	CaisseID string     `json:"caisseID"`
	Name     string     `json:"name"`
	Type     CaisseType `json:"type"`
}

// PaymentSummary is the payment→client projection embedded in transaction listings.
type PaymentSummary struct {
	PaymentID      string `json:"paymentID"`
	ClientID       string `json:"clientID"`
	ClientFullName string `json:"clientFullName"`
}

// SignedAmount is the balance delta this transaction applies to its caisse.
func (t Transaction) SignedAmount() decimal.Decimal {
	return BalanceDelta(t.Type, t.Amount)
}

// BalanceDelta maps an amount to the change it causes on a caisse balance.
// INCOME adds, EXPENSE subtracts, TRANSFER leaves the balance untouched.
func BalanceDelta(txType TransactionType, amount decimal.Decimal) decimal.Decimal {
	switch txType {
	case Income:
		return amount
	case Expense:
		return amount.Neg()
	default:
		return decimal.Zero
	}
}

// TransactionFilter narrows a transaction listing. Nil/zero values mean "no filter".
type TransactionFilter struct {
	CaisseID  string
	Type      TransactionType
	Status    TransactionStatus
	StartDate *time.Time
	EndDate   *time.Time
}
