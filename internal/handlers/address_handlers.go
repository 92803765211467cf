package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mandymoney/quote-craft/internal/interfaces"
	"github.com/mandymoney/quote-craft/internal/logger"
	"github.com/mandymoney/quote-craft/internal/types"
)

// AddressHandler proxies address-suggestion lookups. Lookup failures
// return an empty list so the client quietly falls back to manual entry.
type AddressHandler struct {
	lookup interfaces.AddressLookup
}

// NewAddressHandler creates a new address handler.
func NewAddressHandler(lookup interfaces.AddressLookup) *AddressHandler {
	return &AddressHandler{lookup: lookup}
}

// LookupAddress godoc
// @Summary Look up address suggestions
// @Description Resolves a partial query into structured address suggestions. On upstream failure the list is empty and address fields stay manually editable.
// @Tags address
// @Produce json
// @Param q query string true "Partial address"
// @Success 200 {object} AddressSuggestionsResponse
// @Router /address/lookup [get]
func (h *AddressHandler) LookupAddress(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" || h.lookup == nil {
		sendSuccess(c, http.StatusOK, AddressSuggestionsResponse{
			Object: "list",
			Data:   []types.AddressComponents{},
		})
		return
	}

	suggestions, err := h.lookup.Lookup(c.Request.Context(), query)
	if err != nil {
		// Degraded, not broken: manual entry is always available.
		logger.Warn("Address lookup failed", zap.String("query", query), zap.Error(err))
		suggestions = nil
	}
	if suggestions == nil {
		suggestions = []types.AddressComponents{}
	}

	sendSuccess(c, http.StatusOK, AddressSuggestionsResponse{
		Object: "list",
		Data:   suggestions,
	})
}
