package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
	"github.com/SscSPs/visa_office_app/internal/models"
)

// ToModelCaisse converts a domain Caisse
func ToModelCaisse(d domain.Caisse) models.Caisse {
	return models.Caisse{
		CaisseID:    d.CaisseID,
		Name:        d.Name,
		Type:        string(d.Type),
		Balance:     d.Balance,
		Description: d.Description,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCaisse converts a model Caisse
func ToDomainCaisse(m models.Caisse) domain.Caisse {
	return domain.Caisse{
		CaisseID:    m.CaisseID,
		Name:        m.Name,
		Type:        domain.CaisseType(m.Type),
		Balance:     m.Balance,
		Description: m.Description,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTransaction converts a domain Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		CaisseID:        d.CaisseID,
		PaymentID:       nullableString(d.PaymentID),
		Type:            string(d.Type),
		Category:        d.Category,
		Amount:          d.Amount,
		Description:     d.Description,
		Status:          string(d.Status),
		TransactionDate: d.TransactionDate,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		CaisseID:        m.CaisseID,
		PaymentID:       derefString(m.PaymentID),
		Type:            domain.TransactionType(m.Type),
		Category:        m.Category,
		Amount:          m.Amount,
		Description:     m.Description,
		Status:          domain.TransactionStatus(m.Status),
		TransactionDate: m.TransactionDate,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionListRow converts a joined listing row, attaching caisse and payment summaries
func ToDomainTransactionListRow(m models.TransactionListRow) domain.Transaction {
	t := ToDomainTransaction(m.Transaction)
	t.Caisse = &domain.CaisseSummary{
		CaisseID: m.CaisseID,
		Name:     m.CaisseName,
		Type:     domain.CaisseType(m.CaisseType),
	}
	if m.PaymentID != nil {
		t.Payment = &domain.PaymentSummary{
			PaymentID:      *m.PaymentID,
			ClientID:       derefString(m.ClientID),
			ClientFullName: derefString(m.ClientFullName),
		}
	}
	return t
}

// ToModelFinancialReport converts a domain FinancialReport, serialising the caisse snapshot
func ToModelFinancialReport(d domain.FinancialReport) (models.FinancialReport, error) {
	balances := d.CaisseBalances
	if balances == nil {
		balances = map[string]domain.CaisseSnapshot{}
	}
	raw, err := json.Marshal(balances)
	if err != nil {
		return models.FinancialReport{}, fmt.Errorf("marshal caisse balances: %w", err)
	}
	return models.FinancialReport{
		ReportID:       d.ReportID,
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		TotalIncome:    d.TotalIncome,
		TotalExpenses:  d.TotalExpenses,
		TotalTax:       d.TotalTax,
		NetProfit:      d.NetProfit,
		CaisseBalances: raw,
		GeneratedBy:    d.GeneratedBy,
		CreatedAt:      d.CreatedAt,
	}, nil
}

// ToDomainFinancialReport converts a model FinancialReport
func ToDomainFinancialReport(m models.FinancialReport) (domain.FinancialReport, error) {
	balances := map[string]domain.CaisseSnapshot{}
	if len(m.CaisseBalances) > 0 {
		if err := json.Unmarshal(m.CaisseBalances, &balances); err != nil {
			return domain.FinancialReport{}, fmt.Errorf("unmarshal caisse balances: %w", err)
		}
	}
	return domain.FinancialReport{
		ReportID:       m.ReportID,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		TotalIncome:    m.TotalIncome,
		TotalExpenses:  m.TotalExpenses,
		TotalTax:       m.TotalTax,
		NetProfit:      m.NetProfit,
		CaisseBalances: balances,
		GeneratedBy:    m.GeneratedBy,
		CreatedAt:      m.CreatedAt,
	}, nil
}
