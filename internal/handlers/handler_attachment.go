package handlers

import (
	"log/slog"
	"mime"
	"net/http"

	"github.com/SscSPs/visa_office_app/internal/apperrors"
	portssvc "github.com/SscSPs/visa_office_app/internal/core/ports/services"
	"github.com/SscSPs/visa_office_app/internal/dto"
	"github.com/SscSPs/visa_office_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// multipartOverhead is the slack allowed on top of the file limit for form fields and boundaries.
const multipartOverhead = 1 << 20

type attachmentHandler struct {
	attachmentService portssvc.AttachmentSvcFacade
	maxBytes          int64
}

func newAttachmentHandler(as portssvc.AttachmentSvcFacade, maxBytes int64) *attachmentHandler {
	return &attachmentHandler{attachmentService: as, maxBytes: maxBytes}
}

func registerAttachmentRoutes(rg *gin.RouterGroup, adminOnly gin.HandlerFunc, attachmentService portssvc.AttachmentSvcFacade, maxBytes int64) {
	h := newAttachmentHandler(attachmentService, maxBytes)

	rg.POST("/clients/:id/attachments", adminOnly, h.upload)
	rg.GET("/clients/:id/attachments", h.listClientAttachments)
	rg.DELETE("/attachments/:id", adminOnly, h.delete)
	rg.GET("/attachments/:id/file", h.download)
}

// upload godoc
// @Summary Upload a client document
// @Description Accepts PDF, JPEG and PNG files up to the configured size limit. The type is detected from content.
// @Tags attachments
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Client ID"
// @Param file formData file true "Document"
// @Param attachmentType formData string true "Attachment type"
// @Success 201 {object} dto.AttachmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/attachments [post]
func (h *attachmentHandler) upload(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)

	var form dto.UploadAttachmentForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	if err := form.Validate(); err != nil {
		respondError(c, err, "Invalid request")
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		respondError(c, apperrors.Validationf("file is required: %v", err), "Invalid request")
		return
	}
	f, err := header.Open()
	if err != nil {
		respondError(c, err, "Failed to read uploaded file")
		return
	}
	defer f.Close()

	att, err := h.attachmentService.Upload(c.Request.Context(), c.Param("id"), form.AttachmentType, portssvc.UploadFile{
		Filename: header.Filename,
		Size:     header.Size,
		Content:  f,
	}, userID)
	if err != nil {
		respondError(c, err, "Failed to upload attachment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAttachmentResponse(att))
}

// listClientAttachments godoc
// @Summary List a client's documents
// @Tags attachments
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {array} dto.AttachmentResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/attachments [get]
func (h *attachmentHandler) listClientAttachments(c *gin.Context) {
	attachments, err := h.attachmentService.ListClientAttachments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list attachments")
		return
	}
	c.JSON(http.StatusOK, dto.ToAttachmentResponses(attachments))
}

// delete godoc
// @Summary Delete a document
// @Tags attachments
// @Param id path string true "Attachment ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /attachments/{id} [delete]
func (h *attachmentHandler) delete(c *gin.Context) {
	if err := h.attachmentService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete attachment")
		return
	}
	c.Status(http.StatusNoContent)
}

// download godoc
// @Summary Download a document
// @Tags attachments
// @Produce octet-stream
// @Param id path string true "Attachment ID"
// @Success 200 {file} file
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /attachments/{id}/file [get]
func (h *attachmentHandler) download(c *gin.Context) {
	att, rc, err := h.attachmentService.Open(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to open attachment")
		return
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil {
			middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to close attachment reader",
				slog.String("attachment_id", att.AttachmentID), slog.String("error", cerr.Error()))
		}
	}()

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": att.OriginalName})
	c.DataFromReader(http.StatusOK, att.Size, att.MimeType, rc, map[string]string{
		"Content-Disposition": disposition,
	})
}
