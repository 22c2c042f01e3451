package handler

import (
	"net/http"
	"path/filepath"

	"github.com/munjed80/Fancy-foods-app/internal/apierror"
	"github.com/munjed80/Fancy-foods-app/internal/dto"
	"github.com/munjed80/Fancy-foods-app/internal/infra"
	"github.com/munjed80/Fancy-foods-app/internal/service"

	"github.com/gin-gonic/gin"
)

type DealsHandler struct {
	svc         service.DealService
	documents   service.DocumentService
	emails      service.EmailService
	attachments *infra.AttachmentStore
}

func NewDealsHandler(
	svc service.DealService,
	documents service.DocumentService,
	emails service.EmailService,
	attachments *infra.AttachmentStore,
) *DealsHandler {
	return &DealsHandler{svc: svc, documents: documents, emails: emails, attachments: attachments}
}

func (h *DealsHandler) Create(c *gin.Context) {
	var req dto.DealInput
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *DealsHandler) List(c *gin.Context) {
	var filter dto.DealFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter.Query)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DealsHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.New("Deal not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DealsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.DealInput
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DealsHandler) UpdateStage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateStageRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateStage(c.Request.Context(), id, req.Stage, req.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DealsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Documents / email ────────────────────────────────────────────────────────

func (h *DealsHandler) GeneratePDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	path, err := h.documents.GenerateDealPDF(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"path": path, "name": filepath.Base(path)})
}

func (h *DealsHandler) SendEmail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.SendDealEmailRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.emails.SendDealEmail(c.Request.Context(), id, req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"queued": true})
}

// ── Attachments ──────────────────────────────────────────────────────────────

func (h *DealsHandler) ListAttachments(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	attachments, err := h.attachments.List(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, attachments)
}

// AddAttachment accepts a multipart upload under the "file" field.
func (h *DealsHandler) AddAttachment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Missing file upload"))
		return
	}
	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Unreadable file upload"))
		return
	}
	defer src.Close()

	attachment, err := h.attachments.Add(id, fileHeader.Filename, src)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, attachment)
}

// RemoveAttachment is a no-op for names that no longer exist.
func (h *DealsHandler) RemoveAttachment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.attachments.Remove(id, c.Param("name")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
