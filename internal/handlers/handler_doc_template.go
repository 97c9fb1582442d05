package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atlascompta/compta_backend/internal/apperrors"
	portssvc "github.com/atlascompta/compta_backend/internal/core/ports/services"
	"github.com/atlascompta/compta_backend/internal/dto"
	"github.com/atlascompta/compta_backend/internal/middleware"
)

// docTemplateHandler handles HTTP requests related to legal document
// templates.
type docTemplateHandler struct {
	templateService portssvc.DocTemplateSvc
}

func newDocTemplateHandler(ts portssvc.DocTemplateSvc) *docTemplateHandler {
	return &docTemplateHandler{templateService: ts}
}

// registerDocTemplateRoutes registers routes related to document templates.
func registerDocTemplateRoutes(rg *gin.RouterGroup, templateService portssvc.DocTemplateSvc) {
	h := newDocTemplateHandler(templateService)

	templates := rg.Group("/doc-templates")
	{
		templates.POST("", h.createTemplate)
		templates.GET("", h.listTemplates)
		templates.GET("/:id", h.getTemplate)
		templates.PUT("/:id", h.updateTemplate)
		templates.DELETE("/:id", h.deleteTemplate)
		templates.GET("/:id/render/:societeID", h.renderTemplate)
		templates.GET("/:id/pdf/:societeID", h.renderTemplatePDF)
	}
}

// createTemplate godoc
// @Summary Create a document template
// @Description Stores a statuts or PV template with {{placeholder}} markers
// @Tags doc-templates
// @Accept  json
// @Produce  json
// @Param   template body dto.CreateDocTemplateRequest true "Template details"
// @Success 201 {object} dto.DocTemplateResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 500 {object} map[string]string "Failed to create template"
// @Security BearerAuth
// @Router /doc-templates [post]
func (h *docTemplateHandler) createTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDocTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDocTemplate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tpl, err := h.templateService.CreateDocTemplate(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create template", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create template"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToDocTemplateResponse(tpl))
}

// listTemplates godoc
// @Summary List document templates
// @Description Retrieves templates, optionally filtered by type (statuts or pv)
// @Tags doc-templates
// @Produce  json
// @Param   docType query string false "Template type filter"
// @Success 200 {array} dto.DocTemplateResponse
// @Failure 500 {object} map[string]string "Failed to list templates"
// @Security BearerAuth
// @Router /doc-templates [get]
func (h *docTemplateHandler) listTemplates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	docType := c.Query("docType")

	templates, err := h.templateService.ListDocTemplates(c.Request.Context(), docType)
	if err != nil {
		logger.Error("Failed to list templates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list templates"})
		return
	}

	responses := make([]dto.DocTemplateResponse, len(templates))
	for i := range templates {
		responses[i] = dto.ToDocTemplateResponse(&templates[i])
	}
	c.JSON(http.StatusOK, responses)
}

// getTemplate godoc
// @Summary Get a document template by ID
// @Tags doc-templates
// @Produce  json
// @Param   id path string true "Template ID"
// @Success 200 {object} dto.DocTemplateResponse
// @Failure 404 {object} map[string]string "Template not found"
// @Failure 500 {object} map[string]string "Failed to retrieve template"
// @Security BearerAuth
// @Router /doc-templates/{id} [get]
func (h *docTemplateHandler) getTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templateID := c.Param("id")

	tpl, err := h.templateService.GetDocTemplateByID(c.Request.Context(), templateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		} else {
			logger.Error("Failed to get template", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve template"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDocTemplateResponse(tpl))
}

// updateTemplate godoc
// @Summary Update a document template
// @Description Rewrites the provided fields of the template
// @Tags doc-templates
// @Accept  json
// @Produce  json
// @Param   id path string true "Template ID"
// @Param   template body dto.UpdateDocTemplateRequest true "Fields to update"
// @Success 200 {object} dto.DocTemplateResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "Template not found"
// @Failure 500 {object} map[string]string "Failed to update template"
// @Security BearerAuth
// @Router /doc-templates/{id} [put]
func (h *docTemplateHandler) updateTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templateID := c.Param("id")

	var req dto.UpdateDocTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDocTemplate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tpl, err := h.templateService.UpdateDocTemplate(c.Request.Context(), templateID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		} else {
			logger.Error("Failed to update template", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update template"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDocTemplateResponse(tpl))
}

// deleteTemplate godoc
// @Summary Delete a document template
// @Tags doc-templates
// @Produce  json
// @Param   id path string true "Template ID"
// @Success 204 "Template deleted"
// @Failure 404 {object} map[string]string "Template not found"
// @Failure 500 {object} map[string]string "Failed to delete template"
// @Security BearerAuth
// @Router /doc-templates/{id} [delete]
func (h *docTemplateHandler) deleteTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templateID := c.Param("id")

	if err := h.templateService.DeleteDocTemplate(c.Request.Context(), templateID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		} else {
			logger.Error("Failed to delete template", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete template"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// renderTemplate godoc
// @Summary Render a template against a company
// @Description Substitutes the company's fields into the template placeholders
// @Tags doc-templates
// @Produce  json
// @Param   id path string true "Template ID"
// @Param   societeID path string true "Societe ID"
// @Success 200 {object} dto.RenderedDocResponse
// @Failure 404 {object} map[string]string "Template or societe not found"
// @Failure 500 {object} map[string]string "Failed to render template"
// @Security BearerAuth
// @Router /doc-templates/{id}/render/{societeID} [get]
func (h *docTemplateHandler) renderTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templateID := c.Param("id")
	societeID := c.Param("societeID")

	rendered, err := h.templateService.Render(c.Request.Context(), templateID, societeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template or societe not found"})
		} else {
			logger.Error("Failed to render template", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render template"})
		}
		return
	}

	c.JSON(http.StatusOK, rendered)
}

// renderTemplatePDF godoc
// @Summary Download a rendered template as a PDF document
// @Description Substitutes the company's fields into the template and streams the result as a PDF attachment
// @Tags doc-templates
// @Produce  application/pdf
// @Param   id path string true "Template ID"
// @Param   societeID path string true "Societe ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Template or societe not found"
// @Failure 500 {object} map[string]string "Failed to render template"
// @Security BearerAuth
// @Router /doc-templates/{id}/pdf/{societeID} [get]
func (h *docTemplateHandler) renderTemplatePDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templateID := c.Param("id")
	societeID := c.Param("societeID")

	data, filename, err := h.templateService.RenderPDF(c.Request.Context(), templateID, societeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template or societe not found"})
		} else {
			logger.Error("Failed to render template PDF", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render template"})
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
