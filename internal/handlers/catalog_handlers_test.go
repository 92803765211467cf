package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mandymoney/quote-craft/internal/catalog"
	"github.com/mandymoney/quote-craft/internal/handlers"
	"github.com/mandymoney/quote-craft/internal/services"
	"github.com/mandymoney/quote-craft/internal/types"
)

func newCatalogRouter() *gin.Engine {
	handler := handlers.NewCatalogHandler()
	router := gin.New()
	router.GET("/catalog/tiers", handler.GetCatalog)
	router.GET("/catalog/tiers/:id", handler.GetTier)
	router.GET("/catalog/unlimited", handler.GetUnlimited)
	return router
}

func TestGetCatalog(t *testing.T) {
	router := newCatalogRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog/tiers", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.CatalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "catalog", resp.Object)
	require.Len(t, resp.Tiers, 2)
	assert.Equal(t, catalog.TeacherTierID, resp.Tiers[0].ID)
	assert.Equal(t, catalog.UnlimitedTierID, resp.Unlimited.ID)
	assert.Equal(t, []int{12, 18, 24}, resp.AccessPeriods)
	assert.Equal(t, catalog.FreeShippingThresholdCents, resp.FreeShippingCents)
	assert.Equal(t, catalog.ShippingFeeCents, resp.ShippingFeeCents)
	assert.Equal(t, services.MaxSeatCount, resp.MaxSeatCount)
}

func TestGetTier(t *testing.T) {
	router := newCatalogRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog/tiers/"+catalog.TeacherTierID, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var tier types.PricingTier
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tier))
	assert.Equal(t, catalog.TeacherTierID, tier.ID)
	assert.Equal(t, int64(14900), tier.BasePrice.TeacherCents)
}

func TestGetTierNotFound(t *testing.T) {
	router := newCatalogRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog/tiers/nonexistent", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUnlimited(t *testing.T) {
	router := newCatalogRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog/unlimited", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var tier types.UnlimitedTier
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tier))
	assert.Equal(t, catalog.UnlimitedTierID, tier.ID)
	assert.Equal(t, int64(999000), tier.BasePriceCents)
}
