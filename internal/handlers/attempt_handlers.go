package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mandymoney/quote-craft/internal/db"
)

// AttemptHandler reads the append-only quote-attempt audit log.
type AttemptHandler struct {
	queries db.Querier
}

// NewAttemptHandler creates a new attempt handler.
func NewAttemptHandler(queries db.Querier) *AttemptHandler {
	return &AttemptHandler{queries: queries}
}

// ListAttempts godoc
// @Summary List quote attempts
// @Description Returns a page of the append-only audit log, newest first
// @Tags attempts
// @Produce json
// @Param limit query int false "Page size (max 100)" default(10)
// @Param page query int false "Page number (zero-based)"
// @Success 200 {array} QuoteAttemptResponse
// @Failure 400 {object} ErrorResponse
// @Router /quote-attempts [get]
func (h *AttemptHandler) ListAttempts(c *gin.Context) {
	limit, page, err := validatePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	rows, err := h.queries.ListQuoteAttempts(c.Request.Context(), db.ListQuoteAttemptsParams{
		Limit:  limit,
		Offset: page * limit,
	})
	if err != nil {
		handleDBError(c, err, "No attempts found")
		return
	}

	attempts := make([]QuoteAttemptResponse, 0, len(rows))
	for _, row := range rows {
		attempts = append(attempts, toAttemptResponse(row))
	}
	sendList(c, attempts)
}
