package dto

import (
	"time"

	"github.com/SscSPs/visa_office_app/internal/apperrors"
	"github.com/SscSPs/visa_office_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCaisseRequest defines the data needed to open a caisse.
type CreateCaisseRequest struct {
	Name        string            `json:"name" validate:"required,max=100"`
	Type        domain.CaisseType `json:"type" validate:"required,caisse_type"`
	Balance     decimal.Decimal   `json:"balance"` // opening balance
	Description string            `json:"description"`
}

// Validate checks the request shape.
func (r CreateCaisseRequest) Validate() error {
	return validateStruct(r)
}

// UpdateCaisseBalanceRequest adjusts a caisse balance directly, without recording a transaction.
type UpdateCaisseBalanceRequest struct {
	Amount decimal.Decimal        `json:"amount"`
	Type   domain.TransactionType `json:"type" validate:"required,transaction_type"`
}

// Validate checks the request shape and that the amount is positive.
func (r UpdateCaisseBalanceRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	return requirePositive("amount", r.Amount)
}

// CreateTransactionRequest defines the data needed to record a movement on a caisse.
type CreateTransactionRequest struct {
	CaisseID        string                   `json:"caisseID" validate:"required,uuid"`
	PaymentID       string                   `json:"paymentID" validate:"omitempty,uuid"`
	Type            domain.TransactionType   `json:"type" validate:"required,transaction_type"`
	Category        string                   `json:"category" validate:"max=50"`
	Amount          decimal.Decimal          `json:"amount"`
	Description     string                   `json:"description"`
	Status          domain.TransactionStatus `json:"status" validate:"omitempty,transaction_status"`
	TransactionDate *Date                    `json:"transactionDate"`
}

// Validate checks the request shape and that the amount is positive.
func (r CreateTransactionRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	return requirePositive("amount", r.Amount)
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	CaisseID  string                   `form:"caisseId" validate:"omitempty,uuid"`
	Type      domain.TransactionType   `form:"type" validate:"omitempty,transaction_type"`
	Status    domain.TransactionStatus `form:"status" validate:"omitempty,transaction_status"`
	StartDate string                   `form:"startDate"`
	EndDate   string                   `form:"endDate"`
}

// ToFilter validates the parameters and converts them into a domain filter.
// Date bounds are inclusive: the end date covers its whole day.
func (p ListTransactionsParams) ToFilter() (domain.TransactionFilter, error) {
	if err := validateStruct(p); err != nil {
		return domain.TransactionFilter{}, err
	}
	filter := domain.TransactionFilter{CaisseID: p.CaisseID, Type: p.Type, Status: p.Status}
	if p.StartDate != "" {
		start, err := ParseDate(p.StartDate)
		if err != nil {
			return filter, apperrors.Validationf("startDate: %v", err)
		}
		t := domain.StartOfDay(start.Time)
		filter.StartDate = &t
	}
	if p.EndDate != "" {
		end, err := ParseDate(p.EndDate)
		if err != nil {
			return filter, apperrors.Validationf("endDate: %v", err)
		}
		t := domain.EndOfDay(end.Time)
		filter.EndDate = &t
	}
	return filter, nil
}

// GenerateReportParams are the query parameters of report generation.
type GenerateReportParams struct {
	StartDate string `form:"startDate" validate:"required"`
	EndDate   string `form:"endDate" validate:"required"`
}

// Range validates and returns the inclusive [start, end] range of the report.
func (p GenerateReportParams) Range() (time.Time, time.Time, error) {
	if err := validateStruct(p); err != nil {
		return time.Time{}, time.Time{}, err
	}
	start, err := ParseDate(p.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.Validationf("startDate: %v", err)
	}
	end, err := ParseDate(p.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.Validationf("endDate: %v", err)
	}
	from, to := domain.StartOfDay(start.Time), domain.EndOfDay(end.Time)
	if to.Before(from) {
		return time.Time{}, time.Time{}, apperrors.Validationf("endDate must not be before startDate")
	}
	return from, to, nil
}

// CaisseResponse defines the data returned for a caisse.
type CaisseResponse struct {
	CaisseID           string                `json:"caisseID"`
	Name               string                `json:"name"`
	Type               domain.CaisseType     `json:"type"`
	Balance            decimal.Decimal       `json:"balance"`
	Description        string                `json:"description"`
	IsActive           bool                  `json:"isActive"`
	RecentTransactions []TransactionResponse `json:"recentTransactions,omitempty"`
	CreatedAt          time.Time             `json:"createdAt"`
	LastUpdatedAt      time.Time             `json:"lastUpdatedAt"`
}

// TransactionResponse defines the data returned for a caisse transaction.
type TransactionResponse struct {
	TransactionID   string                   `json:"transactionID"`
	CaisseID        string                   `json:"caisseID"`
	PaymentID       string                   `json:"paymentID,omitempty"`
	Type            domain.TransactionType   `json:"type"`
	Category        string                   `json:"category"`
	Amount          decimal.Decimal          `json:"amount"`
	Description     string                   `json:"description"`
	Status          domain.TransactionStatus `json:"status"`
	TransactionDate time.Time                `json:"transactionDate"`
	CreatedBy       string                   `json:"createdBy"`
	Caisse          *domain.CaisseSummary    `json:"caisse,omitempty"`
	Payment         *domain.PaymentSummary   `json:"payment,omitempty"`
}

// FinancialReportResponse defines the data returned for a financial report.
type FinancialReportResponse struct {
	ReportID       string                           `json:"reportID"`
	StartDate      time.Time                        `json:"startDate"`
	EndDate        time.Time                        `json:"endDate"`
	TotalIncome    decimal.Decimal                  `json:"totalIncome"`
	TotalExpenses  decimal.Decimal                  `json:"totalExpenses"`
	TotalTax       decimal.Decimal                  `json:"totalTax"`
	NetProfit      decimal.Decimal                  `json:"netProfit"`
	CaisseBalances map[string]domain.CaisseSnapshot `json:"caisseBalances"`
	GeneratedBy    string                           `json:"generatedBy"`
	CreatedAt      time.Time                        `json:"createdAt"`
}

// TaxCalculationResponse is the result of the tax simulator endpoint.
type TaxCalculationResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	TaxRate   decimal.Decimal `json:"taxRate"`
	Tax       decimal.Decimal `json:"tax"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// ToCaisseResponse converts a domain.Caisse to CaisseResponse DTO
func ToCaisseResponse(c *domain.Caisse) CaisseResponse {
	res := CaisseResponse{
		CaisseID:      c.CaisseID,
		Name:          c.Name,
		Type:          c.Type,
		Balance:       c.Balance,
		Description:   c.Description,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
	if c.RecentTransactions != nil {
		res.RecentTransactions = ToTransactionResponses(c.RecentTransactions)
	}
	return res
}

// ToCaisseResponses converts a slice of domain.Caisse.
func ToCaisseResponses(caisses []domain.Caisse) []CaisseResponse {
	res := make([]CaisseResponse, len(caisses))
	for i := range caisses {
		res[i] = ToCaisseResponse(&caisses[i])
	}
	return res
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		CaisseID:        t.CaisseID,
		PaymentID:       t.PaymentID,
		Type:            t.Type,
		Category:        t.Category,
		Amount:          t.Amount,
		Description:     t.Description,
		Status:          t.Status,
		TransactionDate: t.TransactionDate,
		CreatedBy:       t.CreatedBy,
		Caisse:          t.Caisse,
		Payment:         t.Payment,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ToFinancialReportResponse converts a domain.FinancialReport.
func ToFinancialReportResponse(r *domain.FinancialReport) FinancialReportResponse {
	return FinancialReportResponse{
		ReportID:       r.ReportID,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		TotalIncome:    r.TotalIncome,
		TotalExpenses:  r.TotalExpenses,
		TotalTax:       r.TotalTax,
		NetProfit:      r.NetProfit,
		CaisseBalances: r.CaisseBalances,
		GeneratedBy:    r.GeneratedBy,
		CreatedAt:      r.CreatedAt,
	}
}

// ToFinancialReportResponses converts a slice of domain.FinancialReport.
func ToFinancialReportResponses(reports []domain.FinancialReport) []FinancialReportResponse {
	res := make([]FinancialReportResponse, len(reports))
	for i := range reports {
		res[i] = ToFinancialReportResponse(&reports[i])
	}
	return res
}
