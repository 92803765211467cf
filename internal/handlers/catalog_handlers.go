package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mandymoney/quote-craft/internal/catalog"
	"github.com/mandymoney/quote-craft/internal/services"
)

// CatalogHandler serves the immutable pricing catalog.
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// GetTier godoc
// @Summary Get a single licence tier
// @Tags catalog
// @Produce json
// @Param id path string true "Tier ID"
// @Success 200 {object} types.PricingTier
// @Failure 404 {object} ErrorResponse
// @Router /catalog/tiers/{id} [get]
func (h *CatalogHandler) GetTier(c *gin.Context) {
	tier, err := catalog.TierByID(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusNotFound, "Tier not found", err)
		return
	}
	sendSuccess(c, http.StatusOK, tier)
}

// GetUnlimited godoc
// @Summary Get the whole-school unlimited tier
// @Tags catalog
// @Produce json
// @Success 200 {object} types.UnlimitedTier
// @Router /catalog/unlimited [get]
func (h *CatalogHandler) GetUnlimited(c *gin.Context) {
	sendSuccess(c, http.StatusOK, catalog.Unlimited())
}

// GetCatalog godoc
// @Summary Get the pricing catalog
// @Description Returns the licence tiers, the whole-school unlimited tier, valid access periods and the pricing constants
// @Tags catalog
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /catalog/tiers [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	sendSuccess(c, http.StatusOK, CatalogResponse{
		Object:            "catalog",
		Tiers:             catalog.Tiers(),
		Unlimited:         catalog.Unlimited(),
		AccessPeriods:     catalog.AccessPeriodMonths,
		FreeShippingCents: catalog.FreeShippingThresholdCents,
		ShippingFeeCents:  catalog.ShippingFeeCents,
		GSTRatePercent:    catalog.GSTRatePercent,
		MaxSeatCount:      services.MaxSeatCount,
	})
}
