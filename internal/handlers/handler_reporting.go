package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/atlascompta/compta_backend/internal/apperrors"
	"github.com/atlascompta/compta_backend/internal/core/domain"
	portssvc "github.com/atlascompta/compta_backend/internal/core/ports/services"
	"github.com/atlascompta/compta_backend/internal/dto"
	"github.com/atlascompta/compta_backend/internal/middleware"
)

// reportingHandler handles HTTP requests for financial reports, the VAT
// declaration and journal exports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
	vatService       portssvc.VatDeclarationSvc
	exportService    portssvc.ExportService
	accountService   portssvc.AccountSvcFacade
}

func newReportingHandler(
	rs portssvc.ReportingService,
	vs portssvc.VatDeclarationSvc,
	es portssvc.ExportService,
	as portssvc.AccountSvcFacade,
) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		vatService:       vs,
		exportService:    es,
		accountService:   as,
	}
}

// registerReportingRoutes registers routes related to reports and exports.
func registerReportingRoutes(
	rg *gin.RouterGroup,
	reportingService portssvc.ReportingService,
	vatService portssvc.VatDeclarationSvc,
	exportService portssvc.ExportService,
	accountService portssvc.AccountSvcFacade,
) {
	h := newReportingHandler(reportingService, vatService, exportService, accountService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/ledger/:accountID", h.ledger)
		reports.GET("/balance-sheet", h.balanceSheet)
		reports.GET("/income-statement", h.incomeStatement)
		reports.GET("/vat-declaration", h.vatDeclaration)
	}

	exports := rg.Group("/exports")
	{
		exports.GET("/journals/:id/excel", h.exportJournalExcel)
		exports.GET("/journals/:id/pdf", h.exportJournalPDF)
		exports.GET("/trial-balance/excel", h.exportTrialBalanceExcel)
		exports.GET("/vat-declaration/excel", h.exportVatDeclarationExcel)
		exports.GET("/vat-declaration/pdf", h.exportVatDeclarationPDF)
		exports.GET("/societes/excel", h.exportSocietesExcel)
	}
}

// bindPeriodFilter parses the optional start/end query parameters into an
// activity filter. A binding failure has already been reported to the client.
func bindPeriodFilter(c *gin.Context) (domain.ActivityFilter, bool) {
	var params dto.ReportPeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return domain.ActivityFilter{}, false
	}

	var filter domain.ActivityFilter
	if params.Start != "" {
		start, _ := time.Parse(time.DateOnly, params.Start)
		filter.Start = &start
	}
	if params.End != "" {
		end, _ := time.Parse(time.DateOnly, params.End)
		filter.End = &end
	}
	return filter, true
}

// trialBalance godoc
// @Summary Trial balance report
// @Description Per-account debit, credit and balance over validated entries
// @Tags reports
// @Produce  json
// @Param   start query string false "Start date (inclusive), YYYY-MM-DD"
// @Param   end query string false "End date (inclusive), YYYY-MM-DD"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filter, ok := bindPeriodFilter(c)
	if !ok {
		return
	}

	rows, err := h.reportingService.TrialBalance(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to build trial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(rows))
}

// ledger godoc
// @Summary General ledger of one account
// @Description Chronological validated postings of an account with totals
// @Tags reports
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   start query string false "Start date (inclusive), YYYY-MM-DD"
// @Param   end query string false "End date (inclusive), YYYY-MM-DD"
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Security BearerAuth
// @Router /reports/ledger/{accountID} [get]
func (h *reportingHandler) ledger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	filter, ok := bindPeriodFilter(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account for ledger", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		}
		return
	}

	lines, err := h.reportingService.Ledger(c.Request.Context(), accountID, filter)
	if err != nil {
		logger.Error("Failed to build ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerResponse(account.Code, lines))
}

// balanceSheet godoc
// @Summary Simplified balance sheet
// @Description Nets asset classes 1,2,3,5 against class 4 over validated entries
// @Tags reports
// @Produce  json
// @Param   start query string false "Start date (inclusive), YYYY-MM-DD"
// @Param   end query string false "End date (inclusive), YYYY-MM-DD"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) balanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filter, ok := bindPeriodFilter(c)
	if !ok {
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to build balance sheet", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}

// incomeStatement godoc
// @Summary Income statement
// @Description Nets class 7 revenue against class 6 expenses over validated entries
// @Tags reports
// @Produce  json
// @Param   start query string false "Start date (inclusive), YYYY-MM-DD"
// @Param   end query string false "End date (inclusive), YYYY-MM-DD"
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) incomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filter, ok := bindPeriodFilter(c)
	if !ok {
		return
	}

	report, err := h.reportingService.IncomeStatement(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to build income statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(report))
}

// vatDeclaration godoc
// @Summary VAT declaration
// @Description Aggregates invoice items over the month or quarter containing the given period
// @Tags reports
// @Produce  json
// @Param   period query string true "Anchoring month, YYYY-MM"
// @Param   frequency query string false "monthly or quarterly" default(monthly)
// @Success 200 {object} dto.VatDeclarationResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build declaration"
// @Security BearerAuth
// @Router /reports/vat-declaration [get]
func (h *reportingHandler) vatDeclaration(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.VatDeclarationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	decl, err := h.vatService.Declare(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to build VAT declaration", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build declaration"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToVatDeclarationResponse(decl))
}

// exportJournalExcel godoc
// @Summary Export a journal as an Excel workbook
// @Description Streams the journal's validated lines as an xlsx attachment
// @Tags exports
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   id path string true "Journal ID"
// @Param   start query string false "Start date (inclusive), YYYY-MM-DD"
// @Param   end query string false "End date (inclusive), YYYY-MM-DD"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 500 {object} map[string]string "Failed to export journal"
// @Security BearerAuth
// @Router /exports/journals/{id}/excel [get]
func (h *reportingHandler) exportJournalExcel(c *gin.Context) {
	h.exportJournal(c, h.exportService.ExportJournalExcel,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

// exportJournalPDF godoc
// @Summary Export a journal as a PDF document
// @Description Streams the journal's validated lines as a PDF attachment
// @Tags exports
// @Produce  application/pdf
// @Param   id path string true "Journal ID"
// @Param   start query string false "Start date (inclusive), YYYY-MM-DD"
// @Param   end query string false "End date (inclusive), YYYY-MM-DD"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 500 {object} map[string]string "Failed to export journal"
// @Security BearerAuth
// @Router /exports/journals/{id}/pdf [get]
func (h *reportingHandler) exportJournalPDF(c *gin.Context) {
	h.exportJournal(c, h.exportService.ExportJournalPDF, "application/pdf")
}

// exportTrialBalanceExcel godoc
// @Summary Export the trial balance as an Excel workbook
// @Description Streams the per-account balance rows as an xlsx attachment
// @Tags exports
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   start query string false "Start date (inclusive), YYYY-MM-DD"
// @Param   end query string false "End date (inclusive), YYYY-MM-DD"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to export report"
// @Security BearerAuth
// @Router /exports/trial-balance/excel [get]
func (h *reportingHandler) exportTrialBalanceExcel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filter, ok := bindPeriodFilter(c)
	if !ok {
		return
	}

	data, filename, err := h.exportService.ExportTrialBalanceExcel(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to export trial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export report"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// exportVatDeclarationExcel godoc
// @Summary Export the VAT declaration as an Excel workbook
// @Description Builds the declaration over the month or quarter and streams it as an xlsx attachment
// @Tags exports
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   period query string true "Anchoring month, YYYY-MM"
// @Param   frequency query string false "monthly or quarterly" default(monthly)
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to export declaration"
// @Security BearerAuth
// @Router /exports/vat-declaration/excel [get]
func (h *reportingHandler) exportVatDeclarationExcel(c *gin.Context) {
	h.exportVatDeclaration(c, h.exportService.ExportVatDeclarationExcel,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

// exportVatDeclarationPDF godoc
// @Summary Export the VAT declaration as a PDF document
// @Description Builds the declaration over the month or quarter and streams it as a PDF attachment
// @Tags exports
// @Produce  application/pdf
// @Param   period query string true "Anchoring month, YYYY-MM"
// @Param   frequency query string false "monthly or quarterly" default(monthly)
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to export declaration"
// @Security BearerAuth
// @Router /exports/vat-declaration/pdf [get]
func (h *reportingHandler) exportVatDeclarationPDF(c *gin.Context) {
	h.exportVatDeclaration(c, h.exportService.ExportVatDeclarationPDF, "application/pdf")
}

type vatExportFunc func(ctx context.Context, decl *domain.VatDeclaration) ([]byte, string, error)

func (h *reportingHandler) exportVatDeclaration(c *gin.Context, render vatExportFunc, contentType string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.VatDeclarationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	decl, err := h.vatService.Declare(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to build VAT declaration for export", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export declaration"})
		}
		return
	}

	data, filename, err := render(c.Request.Context(), decl)
	if err != nil {
		logger.Error("Failed to export VAT declaration", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export declaration"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}

// exportSocietesExcel godoc
// @Summary Export the company register as an Excel workbook
// @Description Streams all managed companies, with their cabinet resolved, as an xlsx attachment
// @Tags exports
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} map[string]string "Failed to export companies"
// @Security BearerAuth
// @Router /exports/societes/excel [get]
func (h *reportingHandler) exportSocietesExcel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	data, filename, err := h.exportService.ExportSocietesExcel(c.Request.Context())
	if err != nil {
		logger.Error("Failed to export societes", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export companies"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

type exportFunc func(ctx context.Context, journalID string, filter domain.ActivityFilter) ([]byte, string, error)

func (h *reportingHandler) exportJournal(c *gin.Context, render exportFunc, contentType string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("id")

	filter, ok := bindPeriodFilter(c)
	if !ok {
		return
	}

	data, filename, err := render(c.Request.Context(), journalID, filter)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
		} else {
			logger.Error("Failed to export journal", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export journal"})
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}
