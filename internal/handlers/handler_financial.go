package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/visa_office_app/internal/apperrors"
	portssvc "github.com/SscSPs/visa_office_app/internal/core/ports/services"
	"github.com/SscSPs/visa_office_app/internal/dto"
	"github.com/SscSPs/visa_office_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// financialHandler handles caisses, ledger transactions and period reports.
type financialHandler struct {
	financialService portssvc.FinancialSvcFacade
}

func newFinancialHandler(fs portssvc.FinancialSvcFacade) *financialHandler {
	return &financialHandler{financialService: fs}
}

func registerFinancialRoutes(rg *gin.RouterGroup, adminOnly gin.HandlerFunc, financialService portssvc.FinancialSvcFacade) {
	h := newFinancialHandler(financialService)

	financial := rg.Group("/financial")
	{
		financial.POST("/caisses", adminOnly, h.createCaisse)
		financial.GET("/caisses", h.listCaisses)
		financial.GET("/caisses/:id", h.getCaisse)
		financial.PATCH("/caisses/:id/balance", adminOnly, h.updateCaisseBalance)

		financial.POST("/transactions", adminOnly, h.createTransaction)
		financial.GET("/transactions", h.listTransactions)

		financial.POST("/reports/generate", adminOnly, h.generateReport)
		financial.GET("/reports", h.listReports)

		financial.GET("/tax-calculation/:amount", h.calculateTax)
	}
}

// createCaisse godoc
// @Summary Create a caisse
// @Tags financial
// @Accept json
// @Produce json
// @Param caisse body dto.CreateCaisseRequest true "Caisse details"
// @Success 201 {object} dto.CaisseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /financial/caisses [post]
func (h *financialHandler) createCaisse(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateCaisseRequest
	if !bindJSON(c, &req) {
		return
	}

	caisse, err := h.financialService.CreateCaisse(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create caisse")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCaisseResponse(caisse))
}

// listCaisses godoc
// @Summary List active caisses
// @Tags financial
// @Produce json
// @Success 200 {array} dto.CaisseResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /financial/caisses [get]
func (h *financialHandler) listCaisses(c *gin.Context) {
	caisses, err := h.financialService.GetAllCaisses(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list caisses")
		return
	}
	c.JSON(http.StatusOK, dto.ToCaisseResponses(caisses))
}

// getCaisse godoc
// @Summary Get a caisse
// @Description Returns the caisse with its ten most recent transactions.
// @Tags financial
// @Produce json
// @Param id path string true "Caisse ID"
// @Success 200 {object} dto.CaisseResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /financial/caisses/{id} [get]
func (h *financialHandler) getCaisse(c *gin.Context) {
	caisse, err := h.financialService.GetCaisseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve caisse")
		return
	}
	c.JSON(http.StatusOK, dto.ToCaisseResponse(caisse))
}

// updateCaisseBalance godoc
// @Summary Adjust a caisse balance
// @Description INCOME adds the amount, EXPENSE subtracts it, TRANSFER leaves the balance unchanged.
// @Tags financial
// @Accept json
// @Produce json
// @Param id path string true "Caisse ID"
// @Param adjustment body dto.UpdateCaisseBalanceRequest true "Amount and direction"
// @Success 200 {object} dto.CaisseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /financial/caisses/{id}/balance [patch]
func (h *financialHandler) updateCaisseBalance(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateCaisseBalanceRequest
	if !bindJSON(c, &req) {
		return
	}

	caisse, err := h.financialService.UpdateCaisseBalance(c.Request.Context(), c.Param("id"), req.Amount, req.Type, userID)
	if err != nil {
		respondError(c, err, "Failed to update caisse balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToCaisseResponse(caisse))
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Inserts the transaction and applies its balance delta to the caisse atomically.
// @Tags financial
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Caisse not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /financial/transactions [post]
func (h *financialHandler) createTransaction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateTransactionRequest
	if !bindJSON(c, &req) {
		return
	}

	txn, err := h.financialService.CreateTransaction(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Newest first. Date bounds are inclusive and expressed as YYYY-MM-DD.
// @Tags financial
// @Produce json
// @Param caisseId query string false "Caisse ID"
// @Param type query string false "INCOME, EXPENSE or TRANSFER"
// @Param status query string false "Transaction status"
// @Param startDate query string false "First day"
// @Param endDate query string false "Last day"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /financial/transactions [get]
func (h *financialHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	txns, err := h.financialService.GetTransactions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// generateReport godoc
// @Summary Generate a financial report
// @Description Sums COMPLETED income and expenses in the range, applies the configured tax rate to income and snapshots active caisse balances.
// @Tags financial
// @Produce json
// @Param startDate query string true "First day (YYYY-MM-DD)"
// @Param endDate query string true "Last day (YYYY-MM-DD)"
// @Success 201 {object} dto.FinancialReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /financial/reports/generate [post]
func (h *financialHandler) generateReport(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var params dto.GenerateReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	start, end, err := params.Range()
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	report, err := h.financialService.GenerateFinancialReport(c.Request.Context(), start, end, userID)
	if err != nil {
		respondError(c, err, "Failed to generate financial report")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Financial report generated",
		slog.String("report_id", report.ReportID), slog.String("net_profit", report.NetProfit.String()))
	c.JSON(http.StatusCreated, dto.ToFinancialReportResponse(report))
}

// listReports godoc
// @Summary List financial reports
// @Tags financial
// @Produce json
// @Success 200 {array} dto.FinancialReportResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /financial/reports [get]
func (h *financialHandler) listReports(c *gin.Context) {
	reports, err := h.financialService.ListFinancialReports(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list financial reports")
		return
	}
	c.JSON(http.StatusOK, dto.ToFinancialReportResponses(reports))
}

// calculateTax godoc
// @Summary Tax simulator
// @Description Applies the configured tax rate to amount.
// @Tags financial
// @Produce json
// @Param amount path string true "Amount"
// @Success 200 {object} dto.TaxCalculationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /financial/tax-calculation/{amount} [get]
func (h *financialHandler) calculateTax(c *gin.Context) {
	amount, err := decimal.NewFromString(c.Param("amount"))
	if err != nil {
		respondError(c, apperrors.Validationf("amount must be a number"), "Invalid request")
		return
	}
	if amount.IsNegative() {
		respondError(c, apperrors.Validationf("amount must not be negative"), "Invalid request")
		return
	}

	c.JSON(http.StatusOK, dto.TaxCalculationResponse{
		Amount:    amount,
		TaxRate:   h.financialService.TaxRate(),
		Tax:       h.financialService.CalculateTaxForClient(amount),
		NetAmount: h.financialService.CalculateProfitForClient(amount, decimal.Zero),
	})
}
