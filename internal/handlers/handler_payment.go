package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/visa_office_app/internal/core/ports/services"
	"github.com/SscSPs/visa_office_app/internal/dto"
	"github.com/SscSPs/visa_office_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles payments, their installments and installment settlement.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

func registerPaymentRoutes(rg *gin.RouterGroup, adminOnly gin.HandlerFunc, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	rg.GET("/clients/:id/payments", h.listClientPayments)
	rg.POST("/clients/:id/payments", h.createPayment)
	rg.PATCH("/payments/:id", h.updatePayment)
	rg.DELETE("/payments/:id", h.deletePayment)
	rg.POST("/installments/:id/pay", adminOnly, h.markInstallmentPaid)
}

// listClientPayments godoc
// @Summary List a client's payments
// @Description Payments newest first, installments ordered by due date.
// @Tags payments
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {array} dto.PaymentResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/payments [get]
func (h *paymentHandler) listClientPayments(c *gin.Context) {
	payments, err := h.paymentService.GetClientPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

// createPayment godoc
// @Summary Create a payment plan
// @Description Installment percentages must sum to 100 and each amount must match its percentage of the total, both within 0.01.
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param payment body dto.CreatePaymentRequest true "Payment with installments"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create payment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// updatePayment godoc
// @Summary Update a payment plan
// @Description A supplied installments list replaces the stored installments entirely.
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param payment body dto.UpdatePaymentRequest true "Fields to update"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{id} [patch]
func (h *paymentHandler) updatePayment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.UpdatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// deletePayment godoc
// @Summary Delete a payment
// @Tags payments
// @Param id path string true "Payment ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{id} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	if err := h.paymentService.DeletePayment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete payment")
		return
	}
	c.Status(http.StatusNoContent)
}

// markInstallmentPaid godoc
// @Summary Settle an installment
// @Description Marks a PENDING installment as PAID. When caisseID is given, the amount is booked as income on that caisse in the same transaction.
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Installment ID"
// @Param settlement body dto.MarkInstallmentPaidRequest false "Receiving caisse"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse "Installment already paid"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /installments/{id}/pay [post]
func (h *paymentHandler) markInstallmentPaid(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.MarkInstallmentPaidRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	installmentID := c.Param("id")
	payment, err := h.paymentService.MarkInstallmentPaid(c.Request.Context(), installmentID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to settle installment")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Installment settled",
		slog.String("installment_id", installmentID), slog.String("caisse_id", req.CaisseID))
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}
