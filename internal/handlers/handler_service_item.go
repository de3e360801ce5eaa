package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/visa_office_app/internal/core/ports/services"
	"github.com/SscSPs/visa_office_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// serviceItemHandler handles the billable lines of dossiers and the price lookups.
type serviceItemHandler struct {
	serviceItemService portssvc.ServiceItemSvcFacade
}

func newServiceItemHandler(ss portssvc.ServiceItemSvcFacade) *serviceItemHandler {
	return &serviceItemHandler{serviceItemService: ss}
}

func registerServiceItemRoutes(rg *gin.RouterGroup, serviceItemService portssvc.ServiceItemSvcFacade) {
	h := newServiceItemHandler(serviceItemService)

	rg.GET("/dossiers/:id/services", h.listDossierServices)
	rg.POST("/dossiers/:id/services", h.createService)
	rg.POST("/dossiers/:id/services/batch", h.createManyServices)

	rg.GET("/clients/:id/services", h.listClientServices)
	rg.GET("/clients/:id/services/total", h.getClientServicesTotal)

	services := rg.Group("/services")
	{
		services.GET("/last-price", h.getLastPrice)
		services.GET("/last-prices", h.getLastPrices)
		services.PATCH("/:id", h.updateService)
		services.DELETE("/:id", h.deleteService)
	}
}

// listDossierServices godoc
// @Summary List a dossier's services
// @Tags services
// @Produce json
// @Param id path string true "Dossier ID"
// @Success 200 {array} dto.ServiceItemResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dossiers/{id}/services [get]
func (h *serviceItemHandler) listDossierServices(c *gin.Context) {
	items, err := h.serviceItemService.ListDossierServices(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list services")
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceItemResponses(items))
}

// createService godoc
// @Summary Add a service to a dossier
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Dossier ID"
// @Param service body dto.ServiceItemInput true "Service line"
// @Success 201 {object} dto.ServiceItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dossiers/{id}/services [post]
func (h *serviceItemHandler) createService(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.ServiceItemInput
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.serviceItemService.CreateService(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create service")
		return
	}
	c.JSON(http.StatusCreated, dto.ToServiceItemResponse(item))
}

// createManyServices godoc
// @Summary Add several services to a dossier
// @Description Inserts all lines in one transaction. An empty list is rejected.
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Dossier ID"
// @Param services body dto.CreateServiceItemsRequest true "Service lines"
// @Success 201 {array} dto.ServiceItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dossiers/{id}/services/batch [post]
func (h *serviceItemHandler) createManyServices(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateServiceItemsRequest
	if !bindJSON(c, &req) {
		return
	}

	items, err := h.serviceItemService.CreateManyServices(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create services")
		return
	}
	c.JSON(http.StatusCreated, dto.ToServiceItemResponses(items))
}

// listClientServices godoc
// @Summary List a client's services across dossiers
// @Tags services
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {array} dto.ServiceItemResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/services [get]
func (h *serviceItemHandler) listClientServices(c *gin.Context) {
	items, err := h.serviceItemService.ListClientServices(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list client services")
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceItemResponses(items))
}

// getClientServicesTotal godoc
// @Summary Total of a client's services
// @Tags services
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} dto.ClientServicesTotalResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/services/total [get]
func (h *serviceItemHandler) getClientServicesTotal(c *gin.Context) {
	clientID := c.Param("id")
	count, total, err := h.serviceItemService.GetClientServicesTotal(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, err, "Failed to compute client services total")
		return
	}
	c.JSON(http.StatusOK, dto.ClientServicesTotalResponse{ClientID: clientID, ServicesCount: count, TotalAmount: total})
}

// getLastPrice godoc
// @Summary Latest unit price of a service type
// @Description unitPrice is null when the service type was never billed.
// @Tags services
// @Produce json
// @Param serviceType query string true "Service type"
// @Success 200 {object} dto.LastPriceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /services/last-price [get]
func (h *serviceItemHandler) getLastPrice(c *gin.Context) {
	var params dto.LastPriceParams
	if !bindQuery(c, &params) {
		return
	}

	price, err := h.serviceItemService.GetLastPrice(c.Request.Context(), params.ServiceType)
	if err != nil {
		respondError(c, err, "Failed to look up last price")
		return
	}
	c.JSON(http.StatusOK, dto.LastPriceResponse{ServiceType: params.ServiceType, UnitPrice: price})
}

// getLastPrices godoc
// @Summary Latest unit prices of several service types
// @Description Types that were never billed are absent from the result.
// @Tags services
// @Produce json
// @Param serviceType query []string true "Service types" collectionFormat(multi)
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /services/last-prices [get]
func (h *serviceItemHandler) getLastPrices(c *gin.Context) {
	var params dto.LastPricesParams
	if !bindQuery(c, &params) {
		return
	}

	prices, err := h.serviceItemService.GetLastPrices(c.Request.Context(), params.ServiceTypes)
	if err != nil {
		respondError(c, err, "Failed to look up last prices")
		return
	}
	c.JSON(http.StatusOK, prices)
}

// updateService godoc
// @Summary Update a service line
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service item ID"
// @Param service body dto.UpdateServiceItemRequest true "Fields to update"
// @Success 200 {object} dto.ServiceItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /services/{id} [patch]
func (h *serviceItemHandler) updateService(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateServiceItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.serviceItemService.UpdateService(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update service")
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceItemResponse(item))
}

// deleteService godoc
// @Summary Delete a service line
// @Tags services
// @Param id path string true "Service item ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /services/{id} [delete]
func (h *serviceItemHandler) deleteService(c *gin.Context) {
	if err := h.serviceItemService.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete service")
		return
	}
	c.Status(http.StatusNoContent)
}
