package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mandymoney/quote-craft/internal/db"
	"github.com/mandymoney/quote-craft/internal/handlers"
	"github.com/mandymoney/quote-craft/internal/logger"
	"github.com/mandymoney/quote-craft/internal/mocks"
	"github.com/mandymoney/quote-craft/internal/services"
	"github.com/mandymoney/quote-craft/internal/types"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitLogger("test")
}

type sessionFixture struct {
	router  *gin.Engine
	queries *mocks.MockQuerier
}

func newSessionFixture(t *testing.T) *sessionFixture {
	queries := mocks.NewMockQuerier(gomock.NewController(t))
	validation := services.NewValidationService()
	sessions := services.NewSessionService(queries, services.NewPricingService(), validation)
	handler := handlers.NewSessionHandler(sessions, validation)

	router := gin.New()
	router.POST("/sessions", handler.CreateSession)
	router.GET("/sessions/:session_id", handler.GetSession)
	router.PUT("/sessions/:session_id/school-info", handler.UpdateSchoolInfo)
	router.PUT("/sessions/:session_id/selection", handler.UpdateSelection)
	router.GET("/sessions/:session_id/quote", handler.GetQuote)

	return &sessionFixture{router: router, queries: queries}
}

func (f *sessionFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)
	return w
}

func (f *sessionFixture) createSession(t *testing.T) handlers.SessionResponse {
	t.Helper()

	w := f.do(t, http.MethodPost, "/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp handlers.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionID)
	return resp
}

func TestSessionLifecycle(t *testing.T) {
	f := newSessionFixture(t)
	f.queries.EXPECT().UpsertSchoolInfoDraft(gomock.Any(), gomock.Any()).
		Return(db.SchoolInfoDraft{}, nil).AnyTimes()

	created := f.createSession(t)
	assert.Equal(t, "quote_session", created.Object)
	assert.Equal(t, string(types.SelectionModeTierPair), string(created.Selection.Mode))

	// Pick 2 teachers and 100 students.
	w := f.do(t, http.MethodPut, "/sessions/"+created.SessionID+"/selection", gin.H{
		"mode":                 "tier_pair",
		"teacher_count":        2,
		"student_count":        100,
		"access_period_months": 12,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated handlers.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, int64(879780), updated.Breakdown.Pricing.TotalCents)

	// The quote view reflects the same pricing plus the gate states.
	w = f.do(t, http.MethodGet, "/sessions/"+created.SessionID+"/quote", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var quote handlers.QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.Equal(t, int64(879780), quote.Breakdown.Pricing.TotalCents)
	assert.True(t, quote.Validation.Gates.Quote, "empty info still allows a quote export")
	assert.False(t, quote.Validation.Gates.Enquiry)
	assert.False(t, quote.Validation.Gates.Order)
	assert.Len(t, quote.Validation.MissingFields.Order, 5)
}

func TestUpdateSchoolInfoMirrorsAddresses(t *testing.T) {
	f := newSessionFixture(t)
	f.queries.EXPECT().UpsertSchoolInfoDraft(gomock.Any(), gomock.Any()).
		Return(db.SchoolInfoDraft{}, nil).AnyTimes()

	created := f.createSession(t)

	w := f.do(t, http.MethodPut, "/sessions/"+created.SessionID+"/school-info", gin.H{
		"school_name": "Springfield High",
		"school_address": gin.H{
			"street_number": "1",
			"street_name":   "Main St",
			"suburb":        "Springfield",
			"state":         "VIC",
			"postcode":      "3000",
			"country":       "Australia",
		},
		"delivery_same_as_school": true,
		"billing_same_as_school":  false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, resp.SchoolInfo.SchoolAddress, resp.SchoolInfo.DeliveryAddress)
	assert.NotEqual(t, resp.SchoolInfo.SchoolAddress, resp.SchoolInfo.BillingAddress)
}

func TestUpdateSelectionClampsCounts(t *testing.T) {
	f := newSessionFixture(t)
	f.queries.EXPECT().UpsertSchoolInfoDraft(gomock.Any(), gomock.Any()).
		Return(db.SchoolInfoDraft{}, nil).AnyTimes()

	created := f.createSession(t)

	w := f.do(t, http.MethodPut, "/sessions/"+created.SessionID+"/selection", gin.H{
		"mode":                 "tier_pair",
		"teacher_count":        -5,
		"student_count":        50000,
		"access_period_months": 12,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.TeacherCount)
	assert.Equal(t, services.MaxSeatCount, resp.StudentCount)
}

func TestUpdateSelectionRejectsBadMode(t *testing.T) {
	f := newSessionFixture(t)
	f.queries.EXPECT().UpsertSchoolInfoDraft(gomock.Any(), gomock.Any()).
		Return(db.SchoolInfoDraft{}, nil).AnyTimes()

	created := f.createSession(t)

	w := f.do(t, http.MethodPut, "/sessions/"+created.SessionID+"/selection", gin.H{
		"mode":                 "bogus",
		"access_period_months": 12,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSessionInvalidID(t *testing.T) {
	f := newSessionFixture(t)

	w := f.do(t, http.MethodGet, "/sessions/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSessionNotFound(t *testing.T) {
	f := newSessionFixture(t)
	id := "5e0160d5-11dd-4b53-a1b4-2b1c0de5f4a7"

	f.queries.EXPECT().GetSchoolInfoDraft(gomock.Any(), gomock.Any()).
		Return(db.SchoolInfoDraft{}, pgx.ErrNoRows)

	w := f.do(t, http.MethodGet, fmt.Sprintf("/sessions/%s", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
