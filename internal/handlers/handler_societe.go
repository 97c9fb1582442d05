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

// societeHandler handles HTTP requests related to cabinets, their client
// companies and share transfers.
type societeHandler struct {
	cabinetService portssvc.CabinetSvc
	societeService portssvc.SocieteSvcFacade
	cessionService portssvc.CessionSvc
}

func newSocieteHandler(cab portssvc.CabinetSvc, soc portssvc.SocieteSvcFacade, ces portssvc.CessionSvc) *societeHandler {
	return &societeHandler{
		cabinetService: cab,
		societeService: soc,
		cessionService: ces,
	}
}

// registerSocieteRoutes registers routes related to cabinets, societes,
// associates and cessions.
func registerSocieteRoutes(
	rg *gin.RouterGroup,
	cabinetService portssvc.CabinetSvc,
	societeService portssvc.SocieteSvcFacade,
	cessionService portssvc.CessionSvc,
) {
	h := newSocieteHandler(cabinetService, societeService, cessionService)

	cabinets := rg.Group("/cabinets")
	{
		cabinets.POST("", h.createCabinet)
		cabinets.GET("", h.listCabinets)
		cabinets.GET("/:id", h.getCabinet)
		cabinets.DELETE("/:id", h.deleteCabinet)
		cabinets.GET("/:id/dashboard", h.dashboard)
	}

	societes := rg.Group("/societes")
	{
		societes.POST("", h.createSociete)
		societes.GET("", h.listSocietes)
		societes.GET("/:id", h.getSociete)
		societes.PUT("/:id", h.updateSociete)
		societes.POST("/:id/associates", h.addAssociate)
		societes.GET("/:id/distribution", h.distribution)
		societes.POST("/:id/cessions", h.recordCession)
		societes.GET("/:id/cessions", h.listCessions)
	}
}

// createCabinet godoc
// @Summary Create a cabinet
// @Description Registers an accounting firm
// @Tags cabinets
// @Accept  json
// @Produce  json
// @Param   cabinet body dto.CreateCabinetRequest true "Cabinet details"
// @Success 201 {object} dto.CabinetResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 409 {object} map[string]string "Cabinet name already exists"
// @Failure 500 {object} map[string]string "Failed to create cabinet"
// @Security BearerAuth
// @Router /cabinets [post]
func (h *societeHandler) createCabinet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCabinetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCabinet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cabinet, err := h.cabinetService.CreateCabinet(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Cabinet name already exists"})
		} else {
			logger.Error("Failed to create cabinet", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cabinet"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCabinetResponse(cabinet))
}

// listCabinets godoc
// @Summary List cabinets
// @Tags cabinets
// @Produce  json
// @Success 200 {array} dto.CabinetResponse
// @Failure 500 {object} map[string]string "Failed to list cabinets"
// @Security BearerAuth
// @Router /cabinets [get]
func (h *societeHandler) listCabinets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cabinets, err := h.cabinetService.ListCabinets(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list cabinets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cabinets"})
		return
	}

	responses := make([]dto.CabinetResponse, len(cabinets))
	for i := range cabinets {
		responses[i] = dto.ToCabinetResponse(&cabinets[i])
	}
	c.JSON(http.StatusOK, responses)
}

// getCabinet godoc
// @Summary Get a cabinet by ID
// @Tags cabinets
// @Produce  json
// @Param   id path string true "Cabinet ID"
// @Success 200 {object} dto.CabinetResponse
// @Failure 404 {object} map[string]string "Cabinet not found"
// @Failure 500 {object} map[string]string "Failed to retrieve cabinet"
// @Security BearerAuth
// @Router /cabinets/{id} [get]
func (h *societeHandler) getCabinet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cabinetID := c.Param("id")

	cabinet, err := h.cabinetService.GetCabinetByID(c.Request.Context(), cabinetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cabinet not found"})
		} else {
			logger.Error("Failed to get cabinet", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cabinet"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCabinetResponse(cabinet))
}

// deleteCabinet godoc
// @Summary Delete a cabinet
// @Description Removes the cabinet; its companies are detached, not deleted
// @Tags cabinets
// @Produce  json
// @Param   id path string true "Cabinet ID"
// @Success 204 "Cabinet deleted"
// @Failure 404 {object} map[string]string "Cabinet not found"
// @Failure 500 {object} map[string]string "Failed to delete cabinet"
// @Security BearerAuth
// @Router /cabinets/{id} [delete]
func (h *societeHandler) deleteCabinet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cabinetID := c.Param("id")

	if err := h.cabinetService.DeleteCabinet(c.Request.Context(), cabinetID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cabinet not found"})
		} else {
			logger.Error("Failed to delete cabinet", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cabinet"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// dashboard godoc
// @Summary Cabinet dashboard
// @Description Aggregates a cabinet's portfolio: company count, per-type breakdown and latest cessions
// @Tags cabinets
// @Produce  json
// @Param   id path string true "Cabinet ID"
// @Success 200 {object} dto.DashboardResponse
// @Failure 404 {object} map[string]string "Cabinet not found"
// @Failure 500 {object} map[string]string "Failed to build dashboard"
// @Security BearerAuth
// @Router /cabinets/{id}/dashboard [get]
func (h *societeHandler) dashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cabinetID := c.Param("id")

	dashboard, err := h.cabinetService.Dashboard(c.Request.Context(), cabinetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cabinet not found"})
		} else {
			logger.Error("Failed to build dashboard", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		}
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// createSociete godoc
// @Summary Register a client company
// @Tags societes
// @Accept  json
// @Produce  json
// @Param   societe body dto.CreateSocieteRequest true "Company details"
// @Success 201 {object} dto.SocieteResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown cabinet"
// @Failure 500 {object} map[string]string "Failed to create societe"
// @Security BearerAuth
// @Router /societes [post]
func (h *societeHandler) createSociete(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSocieteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSociete", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	societe, err := h.societeService.CreateSociete(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create societe", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create societe"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToSocieteResponse(societe))
}

// listSocietes godoc
// @Summary List client companies
// @Description Retrieves companies, optionally filtered by cabinet
// @Tags societes
// @Produce  json
// @Param   cabinetID query string false "Cabinet ID filter"
// @Success 200 {array} dto.SocieteResponse
// @Failure 500 {object} map[string]string "Failed to list societes"
// @Security BearerAuth
// @Router /societes [get]
func (h *societeHandler) listSocietes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cabinetID := c.Query("cabinetID")

	societes, err := h.societeService.ListSocietes(c.Request.Context(), cabinetID)
	if err != nil {
		logger.Error("Failed to list societes", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list societes"})
		return
	}

	responses := make([]dto.SocieteResponse, len(societes))
	for i := range societes {
		responses[i] = dto.ToSocieteResponse(&societes[i])
	}
	c.JSON(http.StatusOK, responses)
}

// getSociete godoc
// @Summary Get a company by ID
// @Description Retrieves a company with its associates
// @Tags societes
// @Produce  json
// @Param   id path string true "Societe ID"
// @Success 200 {object} dto.SocieteResponse
// @Failure 404 {object} map[string]string "Societe not found"
// @Failure 500 {object} map[string]string "Failed to retrieve societe"
// @Security BearerAuth
// @Router /societes/{id} [get]
func (h *societeHandler) getSociete(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	societeID := c.Param("id")

	societe, err := h.societeService.GetSocieteByID(c.Request.Context(), societeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Societe not found"})
		} else {
			logger.Error("Failed to get societe", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve societe"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSocieteResponse(societe))
}

// updateSociete godoc
// @Summary Update a company
// @Description Applies the provided fields onto the stored company
// @Tags societes
// @Accept  json
// @Produce  json
// @Param   id path string true "Societe ID"
// @Param   societe body dto.UpdateSocieteRequest true "Fields to update"
// @Success 200 {object} dto.SocieteResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "Societe not found"
// @Failure 500 {object} map[string]string "Failed to update societe"
// @Security BearerAuth
// @Router /societes/{id} [put]
func (h *societeHandler) updateSociete(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	societeID := c.Param("id")

	var req dto.UpdateSocieteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSociete", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	societe, err := h.societeService.UpdateSociete(c.Request.Context(), societeID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Societe not found"})
		} else {
			logger.Error("Failed to update societe", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update societe"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSocieteResponse(societe))
}

// addAssociate godoc
// @Summary Add a shareholder to a company
// @Tags societes
// @Accept  json
// @Produce  json
// @Param   id path string true "Societe ID"
// @Param   associate body dto.CreateAssociateRequest true "Shareholder details"
// @Success 201 {object} dto.AssociateResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "Societe not found"
// @Failure 500 {object} map[string]string "Failed to add associate"
// @Security BearerAuth
// @Router /societes/{id}/associates [post]
func (h *societeHandler) addAssociate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	societeID := c.Param("id")

	var req dto.CreateAssociateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddAssociate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	associate, err := h.societeService.AddAssociate(c.Request.Context(), societeID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Societe not found"})
		} else {
			logger.Error("Failed to add associate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add associate"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssociateResponse(associate))
}

// distribution godoc
// @Summary Current cap table of a company
// @Description Parts and percentage held by each associate
// @Tags societes
// @Produce  json
// @Param   id path string true "Societe ID"
// @Success 200 {object} dto.DistributionResponse
// @Failure 404 {object} map[string]string "Societe not found"
// @Failure 500 {object} map[string]string "Failed to build distribution"
// @Security BearerAuth
// @Router /societes/{id}/distribution [get]
func (h *societeHandler) distribution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	societeID := c.Param("id")

	societe, err := h.societeService.Distribution(c.Request.Context(), societeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Societe not found"})
		} else {
			logger.Error("Failed to build distribution", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build distribution"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDistributionResponse(societe))
}

// recordCession godoc
// @Summary Record a share transfer
// @Description Records the cession and updates the cap table in one transaction. Strict mode rejects transfers exceeding the cedant's holding.
// @Tags societes
// @Accept  json
// @Produce  json
// @Param   id path string true "Societe ID"
// @Param   cession body dto.CreateCessionRequest true "Transfer details"
// @Success 201 {object} dto.CessionResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "Societe not found"
// @Failure 422 {object} map[string]string "Cedant does not hold enough parts"
// @Failure 500 {object} map[string]string "Failed to record cession"
// @Security BearerAuth
// @Router /societes/{id}/cessions [post]
func (h *societeHandler) recordCession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	societeID := c.Param("id")

	var req dto.CreateCessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordCession", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cession, err := h.cessionService.RecordCession(c.Request.Context(), societeID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInsufficientParts):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Cedant does not hold enough parts"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Societe not found"})
		default:
			logger.Error("Failed to record cession", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record cession"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCessionResponse(cession))
}

// listCessions godoc
// @Summary List a company's share transfers
// @Description Retrieves cessions, most recent first
// @Tags societes
// @Produce  json
// @Param   id path string true "Societe ID"
// @Success 200 {array} dto.CessionResponse
// @Failure 500 {object} map[string]string "Failed to list cessions"
// @Security BearerAuth
// @Router /societes/{id}/cessions [get]
func (h *societeHandler) listCessions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	societeID := c.Param("id")

	cessions, err := h.cessionService.ListCessionsBySociete(c.Request.Context(), societeID)
	if err != nil {
		logger.Error("Failed to list cessions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cessions"})
		return
	}

	responses := make([]dto.CessionResponse, len(cessions))
	for i := range cessions {
		responses[i] = dto.ToCessionResponse(&cessions[i])
	}
	c.JSON(http.StatusOK, responses)
}
