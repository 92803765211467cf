package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mandymoney/quote-craft/internal/catalog"
	"github.com/mandymoney/quote-craft/internal/db"
	"github.com/mandymoney/quote-craft/internal/logger"
	"github.com/mandymoney/quote-craft/internal/types"
)

// ErrSessionNotFound is returned for unknown session IDs.
var ErrSessionNotFound = errors.New("session not found")

// MaxSeatCount bounds teacher/student counts at the input boundary.
const MaxSeatCount = 10000

// UpdateSelectionParams carries a full selection update. Counts must
// already be clamped to [0, MaxSeatCount] by the caller.
type UpdateSelectionParams struct {
	Mode               types.SelectionMode
	TeacherCount       int
	StudentCount       int
	AddOns             types.AddOnCounts
	AccessPeriodMonths int
	ProgramStartDate   time.Time
}

// SessionSnapshot is the immutable view of a session handed to the
// quote view and the action dispatcher.
type SessionSnapshot struct {
	SessionID          uuid.UUID
	Info               types.SchoolInfo
	Selection          types.Selection
	TeacherCount       int
	StudentCount       int
	AddOns             types.AddOnCounts
	AccessPeriodMonths int
	ProgramStartDate   time.Time
	Breakdown          types.QuoteBreakdown
}

// sessionState is the mutable per-session record. Derived pricing is
// memoized on the selection inputs and recomputed only when they change.
type sessionState struct {
	id                 uuid.UUID
	info               types.SchoolInfo
	mode               types.SelectionMode
	teacherCount       int
	studentCount       int
	addOns             types.AddOnCounts
	accessPeriodMonths int
	programStartDate   time.Time

	breakdown    types.QuoteBreakdown
	breakdownKey string
}

// SessionService owns the in-progress quote sessions: current school
// info draft, selection and derived pricing. The draft is persisted as
// a full-document overwrite on every change.
type SessionService struct {
	queries    db.Querier
	pricing    *PricingService
	validation *ValidationService
	logger     *zap.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*sessionState
}

// NewSessionService creates a new session service.
func NewSessionService(queries db.Querier, pricing *PricingService, validation *ValidationService) *SessionService {
	return &SessionService{
		queries:    queries,
		pricing:    pricing,
		validation: validation,
		logger:     logger.Log,
		sessions:   make(map[uuid.UUID]*sessionState),
	}
}

// CreateSession starts a new session with catalog defaults and persists
// the initial draft.
func (s *SessionService) CreateSession(ctx context.Context) (SessionSnapshot, error) {
	state := &sessionState{
		id:                 uuid.New(),
		info:               types.DefaultSchoolInfo(),
		mode:               types.SelectionModeTierPair,
		accessPeriodMonths: catalog.DefaultAccessPeriodMonths,
		programStartDate:   time.Now(),
	}

	if err := s.persistDraft(ctx, state); err != nil {
		return SessionSnapshot{}, fmt.Errorf("failed to persist initial draft: %w", err)
	}

	s.mu.Lock()
	s.sessions[state.id] = state
	s.mu.Unlock()

	s.logger.Info("Session created", zap.String("session_id", state.id.String()))
	return s.snapshotLocked(state), nil
}

// GetSession returns the snapshot for a session, restoring the draft
// from durable storage if the in-memory state was lost.
func (s *SessionService) GetSession(ctx context.Context, id uuid.UUID) (SessionSnapshot, error) {
	s.mu.RLock()
	state, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.snapshotLocked(state), nil
	}

	// Fall back to the durable draft. Only the school info survives a
	// restart; selection resets to defaults.
	draft, err := s.queries.GetSchoolInfoDraft(ctx, id)
	if err != nil {
		return SessionSnapshot{}, ErrSessionNotFound
	}

	var info types.SchoolInfo
	if err := json.Unmarshal(draft.Document, &info); err != nil {
		return SessionSnapshot{}, fmt.Errorf("failed to decode stored draft: %w", err)
	}

	state = &sessionState{
		id:                 id,
		info:               info,
		mode:               types.SelectionModeTierPair,
		accessPeriodMonths: catalog.DefaultAccessPeriodMonths,
		programStartDate:   time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = state
	return s.snapshotLocked(state), nil
}

// UpdateSchoolInfo replaces the draft document and persists it. School
// info never affects pricing, so no recompute happens here.
func (s *SessionService) UpdateSchoolInfo(ctx context.Context, id uuid.UUID, info types.SchoolInfo) (SessionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[id]
	if !ok {
		return SessionSnapshot{}, ErrSessionNotFound
	}

	state.info = info
	if err := s.persistDraft(ctx, state); err != nil {
		return SessionSnapshot{}, fmt.Errorf("failed to persist draft: %w", err)
	}

	return s.snapshotLocked(state), nil
}

// UpdateSelection replaces the selection inputs and recomputes derived
// pricing when they changed.
func (s *SessionService) UpdateSelection(ctx context.Context, id uuid.UUID, params UpdateSelectionParams) (SessionSnapshot, error) {
	if params.Mode != types.SelectionModeTierPair && params.Mode != types.SelectionModeUnlimited {
		return SessionSnapshot{}, fmt.Errorf("invalid selection mode: %s", params.Mode)
	}
	if !catalog.IsValidAccessPeriod(params.AccessPeriodMonths) {
		return SessionSnapshot{}, fmt.Errorf("invalid access period: %d months", params.AccessPeriodMonths)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[id]
	if !ok {
		return SessionSnapshot{}, ErrSessionNotFound
	}

	state.mode = params.Mode
	state.teacherCount = params.TeacherCount
	state.studentCount = params.StudentCount
	state.addOns = params.AddOns
	state.accessPeriodMonths = params.AccessPeriodMonths
	if !params.ProgramStartDate.IsZero() {
		state.programStartDate = params.ProgramStartDate
	}

	return s.snapshotLocked(state), nil
}

// Snapshot returns the current snapshot for dispatching an action.
func (s *SessionService) Snapshot(ctx context.Context, id uuid.UUID) (SessionSnapshot, error) {
	return s.GetSession(ctx, id)
}

// persistDraft overwrites the durable draft with the full document.
func (s *SessionService) persistDraft(ctx context.Context, state *sessionState) error {
	doc, err := json.Marshal(state.info)
	if err != nil {
		return err
	}
	_, err = s.queries.UpsertSchoolInfoDraft(ctx, db.UpsertSchoolInfoDraftParams{
		SessionID: state.id,
		Document:  doc,
	})
	return err
}

// snapshotLocked refreshes the memoized breakdown if the selection
// inputs changed, then returns an immutable view. Caller holds s.mu.
func (s *SessionService) snapshotLocked(state *sessionState) SessionSnapshot {
	key := fmt.Sprintf("%s|%d|%d|%d|%d|%d", state.mode,
		state.teacherCount, state.studentCount,
		state.addOns.TeacherBooks, state.addOns.StudentBooks, state.addOns.PosterA0)

	if key != state.breakdownKey {
		state.breakdown = s.computeBreakdown(state)
		state.breakdownKey = key
	}

	return SessionSnapshot{
		SessionID:          state.id,
		Info:               state.info,
		Selection:          s.selectionFor(state),
		TeacherCount:       state.teacherCount,
		StudentCount:       state.studentCount,
		AddOns:             state.addOns,
		AccessPeriodMonths: state.accessPeriodMonths,
		ProgramStartDate:   state.programStartDate,
		Breakdown:          state.breakdown,
	}
}

// computeBreakdown runs the pricing engine for the current selection.
func (s *SessionService) computeBreakdown(state *sessionState) types.QuoteBreakdown {
	if state.mode == types.SelectionModeUnlimited {
		breakdown := s.pricing.PriceUnlimited(UnlimitedParams{
			Tier:   catalog.Unlimited(),
			AddOns: state.addOns,
		})
		savings, percent := s.pricing.UnlimitedSavings(breakdown.Pricing, state.teacherCount, state.studentCount)
		breakdown.SavingsCents = savings
		breakdown.PercentSavings = percent
		return breakdown
	}

	teacherTier, _ := catalog.TierByID(catalog.TeacherTierID)
	studentTier, _ := catalog.TierByID(catalog.StudentTierID)
	return s.pricing.PriceCombination(CombinationParams{
		TeacherTier:       &teacherTier,
		StudentTier:       &studentTier,
		TeacherCount:      state.teacherCount,
		StudentCount:      state.studentCount,
		StudentPriceCents: catalog.StudentPriceCents(state.studentCount),
	})
}

// selectionFor rebuilds the tagged selection union for the snapshot.
func (s *SessionService) selectionFor(state *sessionState) types.Selection {
	if state.mode == types.SelectionModeUnlimited {
		return types.Selection{
			Mode: types.SelectionModeUnlimited,
			Unlimited: &types.UnlimitedSelection{
				TierID: catalog.UnlimitedTierID,
				AddOns: state.addOns,
			},
		}
	}
	return types.Selection{
		Mode: types.SelectionModeTierPair,
		TierPair: &types.TeacherStudentSelection{
			TeacherTierID: catalog.TeacherTierID,
			StudentTierID: catalog.StudentTierID,
			TeacherCount:  state.teacherCount,
			StudentCount:  state.studentCount,
		},
	}
}
