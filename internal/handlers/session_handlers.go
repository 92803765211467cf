package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mandymoney/quote-craft/internal/services"
	"github.com/mandymoney/quote-craft/internal/types"
)

// SessionHandler exposes the quote-session lifecycle: create, read,
// school-info updates, selection updates and the derived quote view.
type SessionHandler struct {
	sessions   *services.SessionService
	validation *services.ValidationService
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(sessions *services.SessionService, validation *services.ValidationService) *SessionHandler {
	return &SessionHandler{
		sessions:   sessions,
		validation: validation,
	}
}

// CreateSession godoc
// @Summary Start a new quote session
// @Description Creates a session with catalog defaults and persists the initial school-info draft
// @Tags sessions
// @Produce json
// @Success 201 {object} SessionResponse
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	snapshot, err := h.sessions.CreateSession(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create session", err)
		return
	}
	sendSuccess(c, http.StatusCreated, toSessionResponse(snapshot))
}

// GetSession godoc
// @Summary Get a quote session
// @Tags sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{session_id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	snapshot, err := h.sessions.GetSession(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			sendError(c, http.StatusNotFound, "Session not found", err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to load session", err)
		return
	}
	sendSuccess(c, http.StatusOK, toSessionResponse(snapshot))
}

// UpdateSchoolInfo godoc
// @Summary Replace the school-info draft
// @Description Overwrites the full school/contact document and persists it. Validation never blocks saving.
// @Tags sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param request body types.SchoolInfo true "School info"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{session_id}/school-info [put]
func (h *SessionHandler) UpdateSchoolInfo(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var info types.SchoolInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	// Mirror the school address into delivery/billing while the
	// same-as-school flags are set.
	if info.DeliverySameAsSchool {
		info.DeliveryAddress = info.SchoolAddress
	}
	if info.BillingSameAsSchool {
		info.BillingAddress = info.SchoolAddress
	}

	snapshot, err := h.sessions.UpdateSchoolInfo(c.Request.Context(), id, info)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			sendError(c, http.StatusNotFound, "Session not found", err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to save school info", err)
		return
	}
	sendSuccess(c, http.StatusOK, toSessionResponse(snapshot))
}

// UpdateSelection godoc
// @Summary Replace the licence selection
// @Description Switches between the teacher/student combination and the whole-school unlimited tier, updates counts and add-ons, and recomputes pricing
// @Tags sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param request body UpdateSelectionRequest true "Selection"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{session_id}/selection [put]
func (h *SessionHandler) UpdateSelection(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req UpdateSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	params := services.UpdateSelectionParams{
		Mode:               types.SelectionMode(req.Mode),
		TeacherCount:       clampCount(req.TeacherCount),
		StudentCount:       clampCount(req.StudentCount),
		AddOns:             clampAddOns(req.AddOns),
		AccessPeriodMonths: req.AccessPeriodMonths,
	}
	if req.ProgramStartDate != nil {
		params.ProgramStartDate = *req.ProgramStartDate
	}

	snapshot, err := h.sessions.UpdateSelection(c.Request.Context(), id, params)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			sendError(c, http.StatusNotFound, "Session not found", err)
			return
		}
		sendError(c, http.StatusBadRequest, "Invalid selection", err)
		return
	}
	sendSuccess(c, http.StatusOK, toSessionResponse(snapshot))
}

// GetQuote godoc
// @Summary Get the derived quote view
// @Description Returns the priced breakdown plus live validation state: per-field errors, gate pass/fail per action, and missing-field labels
// @Tags sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} QuoteResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{session_id}/quote [get]
func (h *SessionHandler) GetQuote(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	snapshot, err := h.sessions.GetSession(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			sendError(c, http.StatusNotFound, "Session not found", err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to load session", err)
		return
	}

	sendSuccess(c, http.StatusOK, QuoteResponse{
		Object:    "quote",
		SessionID: snapshot.SessionID.String(),
		Breakdown: snapshot.Breakdown,
		Validation: ValidationView{
			IsValid: h.validation.IsValid(snapshot.Info),
			Errors:  h.validation.ComputeErrors(snapshot.Info),
			Gates: GateStates{
				Quote:   h.validation.PassesBasic(snapshot.Info),
				Enquiry: h.validation.PassesEssential(snapshot.Info),
				Order:   h.validation.PassesFull(snapshot.Info),
			},
			MissingFields: MissingFields{
				Quote:   h.validation.MissingFieldLabelsForAction(types.AttemptTypeQuote, snapshot.Info),
				Enquiry: h.validation.MissingFieldLabels(snapshot.Info, services.LevelEssential),
				Order:   h.validation.MissingFieldLabels(snapshot.Info, services.LevelFull),
			},
		},
	})
}

// sessionID parses the path parameter, replying 400 on garbage.
func (h *SessionHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid session ID", err)
		return uuid.Nil, false
	}
	return id, true
}

// clampAddOns bounds each add-on count like the seat counts.
func clampAddOns(a types.AddOnCounts) types.AddOnCounts {
	return types.AddOnCounts{
		TeacherBooks: clampCount(a.TeacherBooks),
		StudentBooks: clampCount(a.StudentBooks),
		PosterA0:     clampCount(a.PosterA0),
	}
}
