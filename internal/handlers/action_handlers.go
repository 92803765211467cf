package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mandymoney/quote-craft/internal/services"
	"github.com/mandymoney/quote-craft/internal/types"
)

// ActionHandler dispatches the three user actions: export quote, send
// enquiry, place order.
type ActionHandler struct {
	sessions *services.SessionService
	dispatch *services.DispatchService
}

// NewActionHandler creates a new action handler.
func NewActionHandler(sessions *services.SessionService, dispatch *services.DispatchService) *ActionHandler {
	return &ActionHandler{
		sessions: sessions,
		dispatch: dispatch,
	}
}

// DispatchAction godoc
// @Summary Dispatch a quote, enquiry or order action
// @Description Runs the gated workflow: validation gate, document render, best-effort upload, audit write and mail handoff. A gate rejection returns 422 with the missing field labels and causes no side effects.
// @Tags actions
// @Produce json
// @Param session_id path string true "Session ID"
// @Param action_type path string true "Action type" Enums(quote, enquiry, order)
// @Success 200 {object} ActionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ActionResponse
// @Router /sessions/{session_id}/actions/{action_type} [post]
func (h *ActionHandler) DispatchAction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid session ID", err)
		return
	}

	action := types.AttemptType(c.Param("action_type"))
	if !action.Valid() {
		sendError(c, http.StatusBadRequest, "Invalid action type", nil)
		return
	}

	snapshot, err := h.sessions.Snapshot(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			sendError(c, http.StatusNotFound, "Session not found", err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to load session", err)
		return
	}

	result, err := h.dispatch.Dispatch(c.Request.Context(), snapshot, action)
	if err != nil {
		if errors.Is(err, services.ErrActionInFlight) {
			sendError(c, http.StatusConflict, "This action is already being processed", err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to generate document", err)
		return
	}

	response := ActionResponse{
		Object:                  "dispatch_result",
		Status:                  string(result.Status),
		Reference:               result.Reference,
		MissingFields:           result.MissingFields,
		Filename:                result.Filename,
		PDFBase64:               result.PDF,
		PDFURL:                  result.PDFURL,
		Mailto:                  result.Mailto,
		Warnings:                result.Warnings,
		AcknowledgementRequired: result.AcknowledgementRequired,
	}

	if result.Status == services.DispatchRejected {
		sendSuccess(c, http.StatusUnprocessableEntity, response)
		return
	}
	sendSuccess(c, http.StatusOK, response)
}
