package handler

import (
	"net/http"

	"github.com/munjed80/Fancy-foods-app/internal/dto"
	"github.com/munjed80/Fancy-foods-app/internal/service"

	"github.com/gin-gonic/gin"
)

// EmailsHandler exposes the template registry and the sent-mail archive.
// Actual dispatch of deal mail lives on DealsHandler.SendEmail since the
// route is deal-scoped.
type EmailsHandler struct{ svc service.EmailService }

func NewEmailsHandler(svc service.EmailService) *EmailsHandler {
	return &EmailsHandler{svc: svc}
}

func (h *EmailsHandler) CreateTemplate(c *gin.Context) {
	var req dto.TemplateInput
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateTemplate(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *EmailsHandler) ListTemplates(c *gin.Context) {
	resp, err := h.svc.ListTemplates(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EmailsHandler) UpdateTemplate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.TemplateInput
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateTemplate(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EmailsHandler) DeleteTemplate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteTemplate(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EmailsHandler) ListSent(c *gin.Context) {
	resp, err := h.svc.ListSent(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
