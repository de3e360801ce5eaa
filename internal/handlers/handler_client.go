package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/visa_office_app/internal/core/ports/services"
	"github.com/SscSPs/visa_office_app/internal/dto"
	"github.com/SscSPs/visa_office_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// clientHandler handles HTTP requests related to clients and their family members.
type clientHandler struct {
	clientService    portssvc.ClientSvcFacade
	phoneCallService portssvc.PhoneCallSvc
}

func newClientHandler(cs portssvc.ClientSvcFacade, ps portssvc.PhoneCallSvc) *clientHandler {
	return &clientHandler{clientService: cs, phoneCallService: ps}
}

// registerClientRoutes registers client routes. Writes require adminOnly.
func registerClientRoutes(rg *gin.RouterGroup, adminOnly gin.HandlerFunc, clientService portssvc.ClientSvcFacade, phoneCallService portssvc.PhoneCallSvc) {
	h := newClientHandler(clientService, phoneCallService)

	clients := rg.Group("/clients")
	{
		clients.POST("", adminOnly, h.createClient)
		clients.POST("/phone-call", adminOnly, h.createPhoneCallClient)
		clients.GET("", h.listClients)
		clients.GET("/:id", h.getClient)
		clients.PATCH("/:id", adminOnly, h.updateClient)
		clients.DELETE("/:id", adminOnly, h.deleteClient)
		clients.POST("/:id/family-members", adminOnly, h.addFamilyMember)
	}
	rg.DELETE("/family-members/:id", adminOnly, h.removeFamilyMember)
}

// createClient godoc
// @Summary Create a client
// @Description Creates a client with its phone numbers, employers and family members, and opens an initial EN_COURS dossier.
// @Tags clients
// @Accept json
// @Produce json
// @Param client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse "Validation error (passport, family members, guardian)"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create client")
		return
	}
	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// createPhoneCallClient godoc
// @Summary Onboard a phone-call client
// @Description Creates a PHONE_CALL client, its dossier, service items and payment plan in one transaction. Installment percentages must sum to exactly 100.
// @Tags clients
// @Accept json
// @Produce json
// @Param onboarding body dto.CreatePhoneCallClientRequest true "Client, services and payment configuration"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/phone-call [post]
func (h *clientHandler) createPhoneCallClient(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreatePhoneCallClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.phoneCallService.CreatePhoneCallClient(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to onboard phone-call client")
		return
	}
	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// listClients godoc
// @Summary List clients
// @Description Lists clients, most recently updated first. search matches full name, email or passport number case-insensitively.
// @Tags clients
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (max 100)" default(10)
// @Param search query string false "Free-text search"
// @Param status query string false "Client status"
// @Param clientType query string false "Client type"
// @Success 200 {object} dto.ListClientsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	var params dto.ListClientsParams
	if !bindQuery(c, &params) {
		return
	}

	clients, meta, err := h.clientService.ListClients(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list clients")
		return
	}
	c.JSON(http.StatusOK, dto.ToListClientsResponse(clients, meta))
}

// getClient godoc
// @Summary Get a client
// @Description Returns a client with phone numbers, employers, family members, attachments and dossiers.
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	client, err := h.clientService.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// updateClient godoc
// @Summary Update a client
// @Description Patches the supplied fields. A supplied phoneNumbers, employers or familyMembers list replaces the stored one entirely.
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param client body dto.UpdateClientRequest true "Fields to update"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id} [patch]
func (h *clientHandler) updateClient(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// deleteClient godoc
// @Summary Delete a client
// @Description Hard-deletes a client together with its dossiers, payments and attachment records.
// @Tags clients
// @Param id path string true "Client ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id} [delete]
func (h *clientHandler) deleteClient(c *gin.Context) {
	clientID := c.Param("id")
	if err := h.clientService.DeleteClient(c.Request.Context(), clientID); err != nil {
		respondError(c, err, "Failed to delete client")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Client deleted", slog.String("client_id", clientID))
	c.Status(http.StatusNoContent)
}

// addFamilyMember godoc
// @Summary Add a family member
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param member body dto.FamilyMemberInput true "Family member"
// @Success 201 {object} domain.FamilyMember
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/family-members [post]
func (h *clientHandler) addFamilyMember(c *gin.Context) {
	var req dto.FamilyMemberInput
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.clientService.AddFamilyMember(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to add family member")
		return
	}
	c.JSON(http.StatusCreated, member)
}

// removeFamilyMember godoc
// @Summary Remove a family member
// @Tags clients
// @Param id path string true "Family member ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /family-members/{id} [delete]
func (h *clientHandler) removeFamilyMember(c *gin.Context) {
	if err := h.clientService.RemoveFamilyMember(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to remove family member")
		return
	}
	c.Status(http.StatusNoContent)
}
