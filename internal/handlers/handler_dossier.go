package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/visa_office_app/internal/core/ports/services"
	"github.com/SscSPs/visa_office_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type dossierHandler struct {
	dossierService portssvc.DossierSvcFacade
}

func newDossierHandler(ds portssvc.DossierSvcFacade) *dossierHandler {
	return &dossierHandler{dossierService: ds}
}

func registerDossierRoutes(rg *gin.RouterGroup, dossierService portssvc.DossierSvcFacade) {
	h := newDossierHandler(dossierService)

	dossiers := rg.Group("/dossiers")
	{
		dossiers.POST("", h.createDossier)
		dossiers.GET("", h.listDossiers)
		dossiers.GET("/:id", h.getDossier)
		dossiers.PATCH("/:id", h.updateDossier)
		dossiers.DELETE("/:id", h.deleteDossier)
	}
}

// createDossier godoc
// @Summary Create a dossier
// @Description Opens a dossier for an existing client. A reference is generated when none is supplied.
// @Tags dossiers
// @Accept json
// @Produce json
// @Param dossier body dto.CreateDossierRequest true "Dossier details"
// @Success 201 {object} dto.DossierResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Client not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dossiers [post]
func (h *dossierHandler) createDossier(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateDossierRequest
	if !bindJSON(c, &req) {
		return
	}

	dossier, err := h.dossierService.CreateDossier(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create dossier")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDossierResponse(dossier))
}

// listDossiers godoc
// @Summary List dossiers
// @Description Lists dossiers, newest first, optionally restricted to one client.
// @Tags dossiers
// @Produce json
// @Param clientId query string false "Client ID"
// @Success 200 {array} dto.DossierResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dossiers [get]
func (h *dossierHandler) listDossiers(c *gin.Context) {
	var params dto.ListDossiersParams
	if !bindQuery(c, &params) {
		return
	}

	dossiers, err := h.dossierService.ListDossiers(c.Request.Context(), params.ClientID)
	if err != nil {
		respondError(c, err, "Failed to list dossiers")
		return
	}
	c.JSON(http.StatusOK, dto.ToDossierResponses(dossiers))
}

// getDossier godoc
// @Summary Get a dossier
// @Tags dossiers
// @Produce json
// @Param id path string true "Dossier ID"
// @Success 200 {object} dto.DossierResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dossiers/{id} [get]
func (h *dossierHandler) getDossier(c *gin.Context) {
	dossier, err := h.dossierService.GetDossier(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve dossier")
		return
	}
	c.JSON(http.StatusOK, dto.ToDossierResponse(dossier))
}

// updateDossier godoc
// @Summary Update a dossier
// @Tags dossiers
// @Accept json
// @Produce json
// @Param id path string true "Dossier ID"
// @Param dossier body dto.UpdateDossierRequest true "Fields to update"
// @Success 200 {object} dto.DossierResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dossiers/{id} [patch]
func (h *dossierHandler) updateDossier(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateDossierRequest
	if !bindJSON(c, &req) {
		return
	}

	dossier, err := h.dossierService.UpdateDossier(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update dossier")
		return
	}
	c.JSON(http.StatusOK, dto.ToDossierResponse(dossier))
}

// deleteDossier godoc
// @Summary Delete a dossier
// @Tags dossiers
// @Param id path string true "Dossier ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dossiers/{id} [delete]
func (h *dossierHandler) deleteDossier(c *gin.Context) {
	if err := h.dossierService.DeleteDossier(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete dossier")
		return
	}
	c.Status(http.StatusNoContent)
}
