package handlers

import (
	"net/http"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// getHealth godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// staticList serves a fixed reference list.
func staticList[T any](values []T) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, values)
	}
}

// registerMetaRoutes exposes the enum values the web UI needs for its selects.
func registerMetaRoutes(rg *gin.RouterGroup) {
	meta := rg.Group("/meta")
	{
		meta.GET("/client-statuses", staticList(domain.ClientStatuses))
		meta.GET("/dossier-statuses", staticList(domain.DossierStatuses))
		meta.GET("/client-types", staticList(domain.ClientTypes))
		meta.GET("/visa-types", staticList(domain.VisaTypes))
		meta.GET("/attachment-types", staticList(domain.AttachmentTypes))
		meta.GET("/service-types", staticList(domain.ServiceTypes))
		meta.GET("/payment-options", staticList(domain.PaymentOptions))
		meta.GET("/payment-modalities", staticList(domain.PaymentModalities))
		meta.GET("/expense-categories", staticList(domain.ExpenseCategories))
	}
}
