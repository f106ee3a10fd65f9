package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/roundup_ledger/internal/core/ports/services"
	"github.com/SscSPs/roundup_ledger/internal/dto"
	"github.com/SscSPs/roundup_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles journal entry requests.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// RegisterJournalRoutes registers routes under /journal.
func RegisterJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := &journalHandler{journalService: journalService}

	journal := rg.Group("/journal")
	{
		journal.POST("/preview", h.previewDebitCredit)
		journal.POST("/automap", h.autoMapTransactions)

		entries := journal.Group("/entries")
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:id", h.getEntry)
	}
}

// previewDebitCredit godoc
// @Summary Preview the debit/credit split
// @Description Computes the debit and credit an entry would get. Unknown accounts and empty, zero or negative amounts yield zero on both sides.
// @Tags journal
// @Accept json
// @Produce json
// @Param preview body dto.PreviewDebitCreditRequest true "Partial entry form"
// @Success 200 {object} dto.PreviewDebitCreditResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /journal/preview [post]
func (h *journalHandler) previewDebitCredit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PreviewDebitCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, "PreviewDebitCredit", err)
		return
	}

	dc, name, err := h.journalService.PreviewDebitCredit(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to compute preview")
		return
	}

	c.JSON(http.StatusOK, dto.PreviewDebitCreditResponse{
		AccountCode: req.AccountCode,
		AccountName: name,
		Debit:       dc.Debit,
		Credit:      dc.Credit,
	})
}

// createEntry godoc
// @Summary Create a manual journal entry
// @Description Stores one entry from the manual form. Returns 204 and stores nothing when amount or account code is empty.
// @Tags journal
// @Accept json
// @Produce json
// @Param entry body dto.CreateJournalEntryRequest true "Entry form"
// @Success 201 {object} dto.JournalEntryResponse
// @Success 204 "Nothing to record"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /journal/entries [post]
func (h *journalHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, "CreateJournalEntry", err)
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entry, err := h.journalService.CreateManualEntry(c.Request.Context(), req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to create journal entry")
		return
	}
	if entry == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Lists entries newest first. Pass nextToken from the previous page to continue.
// @Tags journal
// @Produce json
// @Param limit query int false "Page size (1-100)" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Param source query string false "Only auto-mapped or manual entries" Enums(auto, manual)
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /journal/entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, "ListJournalEntries query", err)
		return
	}

	resp, err := h.journalService.ListEntries(c.Request.Context(), params)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list journal entries")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getEntry godoc
// @Summary Get a journal entry
// @Tags journal
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journal/entries/{id} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	entryID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", entryID))

	entry, err := h.journalService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// autoMapTransactions godoc
// @Summary Auto-map a batch of transactions
// @Description Creates a revenue entry per transaction and a fee entry when the fee is positive. Transactions already mapped are skipped and listed. Transactions with a negative amount are listed as rejected and stay unprocessed. An amount or fee with more than 4 decimal places or 15 integer digits fails the whole batch with 400.
// @Tags journal
// @Accept json
// @Produce json
// @Param batch body dto.AutoMapRequest true "Transactions"
// @Success 201 {object} dto.AutoMapResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Batch raced with another run"
// @Security BearerAuth
// @Router /journal/automap [post]
func (h *journalHandler) autoMapTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AutoMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, "AutoMap", err)
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	result, err := h.journalService.AutoMapTransactions(c.Request.Context(), dto.ToSourceTransactions(req.Transactions), userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to auto-map transactions")
		return
	}

	skipped := result.SkippedTransactions
	if skipped == nil {
		skipped = []string{}
	}
	rejected := make([]dto.RejectedTransactionResponse, len(result.RejectedTransactions))
	for i, r := range result.RejectedTransactions {
		rejected[i] = dto.RejectedTransactionResponse{Index: r.Index, TransactionID: r.TransactionID, Reason: r.Reason}
	}
	c.JSON(http.StatusCreated, dto.AutoMapResponse{
		Entries:              dto.ToJournalEntryResponses(result.Entries),
		SkippedTransactions:  skipped,
		RejectedTransactions: rejected,
	})
}
