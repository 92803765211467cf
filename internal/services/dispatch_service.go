package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/mandymoney/quote-craft/internal/catalog"
	"github.com/mandymoney/quote-craft/internal/db"
	"github.com/mandymoney/quote-craft/internal/helpers"
	"github.com/mandymoney/quote-craft/internal/interfaces"
	"github.com/mandymoney/quote-craft/internal/logger"
	"github.com/mandymoney/quote-craft/internal/mail"
	"github.com/mandymoney/quote-craft/internal/types"
)

// uploadTimeout bounds the storage upload; on expiry the flow degrades
// to the nil-URL path rather than stalling.
const uploadTimeout = 10 * time.Second

// ErrActionInFlight is returned when the same action is dispatched again
// for a session before the first invocation finished.
var ErrActionInFlight = fmt.Errorf("action already in flight for this session")

// DispatchStatus is the terminal state of one dispatch invocation.
type DispatchStatus string

const (
	DispatchRejected  DispatchStatus = "rejected"
	DispatchCompleted DispatchStatus = "completed"
)

// DispatchResult is the user-visible outcome of one action click.
type DispatchResult struct {
	Status        DispatchStatus `json:"status"`
	Reference     string         `json:"reference,omitempty"`
	MissingFields []string       `json:"missing_fields,omitempty"`
	PDF           []byte         `json:"pdf,omitempty"`
	Filename      string         `json:"filename,omitempty"`
	PDFURL        *string        `json:"pdf_url,omitempty"`
	Mailto        string         `json:"mailto,omitempty"`
	Warnings      []string       `json:"warnings,omitempty"`

	// AcknowledgementRequired signals the blocking confirmation: for
	// enquiry/order the action is incomplete until the user sends the
	// opened email.
	AcknowledgementRequired bool `json:"acknowledgement_required"`
}

// DispatchService runs the three-branch quote/enquiry/order workflow:
// gate check, document render, best-effort upload, append-only audit
// write, fire-and-forget operator alert, and mail-client handoff.
//
// Each invocation is an independent run; a per-session busy flag per
// action type prevents concurrent re-entrancy.
type DispatchService struct {
	validation *ValidationService
	renderer   interfaces.DocumentRenderer
	uploader   interfaces.StorageUploader
	notifier   interfaces.AlertNotifier
	queue      interfaces.AttemptQueuePublisher
	queries    db.Querier
	composer   *mail.Composer
	logger     *zap.Logger

	inFlight sync.Map
}

// NewDispatchService creates a new dispatch service. The uploader,
// notifier and queue may be nil in degraded configurations; each step
// then falls straight through to its fallback.
func NewDispatchService(
	validation *ValidationService,
	renderer interfaces.DocumentRenderer,
	uploader interfaces.StorageUploader,
	notifier interfaces.AlertNotifier,
	queue interfaces.AttemptQueuePublisher,
	queries db.Querier,
	composer *mail.Composer,
) *DispatchService {
	return &DispatchService{
		validation: validation,
		renderer:   renderer,
		uploader:   uploader,
		notifier:   notifier,
		queue:      queue,
		queries:    queries,
		composer:   composer,
		logger:     logger.Log,
	}
}

// Dispatch executes the workflow for one action click. A gate rejection
// produces zero side effects. A render failure is fatal to the attempt.
// Upload and audit failures degrade with warnings; the alert notifier is
// fire-and-forget.
func (s *DispatchService) Dispatch(ctx context.Context, snapshot SessionSnapshot, action types.AttemptType) (*DispatchResult, error) {
	if !action.Valid() {
		return nil, fmt.Errorf("invalid action type: %s", action)
	}

	guardKey := snapshot.SessionID.String() + ":" + string(action)
	if _, loaded := s.inFlight.LoadOrStore(guardKey, struct{}{}); loaded {
		return nil, ErrActionInFlight
	}
	defer s.inFlight.Delete(guardKey)

	// Validating
	if !s.validation.PassesGate(action, snapshot.Info) {
		s.logger.Info("Dispatch rejected by validation gate",
			zap.String("session_id", snapshot.SessionID.String()),
			zap.String("action", string(action)))
		return &DispatchResult{
			Status:        DispatchRejected,
			MissingFields: s.validation.MissingFieldLabelsForAction(action, snapshot.Info),
		}, nil
	}

	reference := helpers.NewQuoteReference()
	result := &DispatchResult{
		Status:    DispatchCompleted,
		Reference: reference,
	}

	// Generating — the only fatal step. No record is written for a
	// failed render, so there is no partial state to clean up.
	pdf, err := s.render(snapshot, action, reference)
	if err != nil {
		s.logger.Error("Document generation failed",
			zap.String("session_id", snapshot.SessionID.String()),
			zap.String("action", string(action)),
			zap.Error(err))
		return nil, fmt.Errorf("failed to generate document: %w", err)
	}
	result.PDF = pdf
	result.Filename = BuildDocumentFilename(action, snapshot.Info.SchoolName, time.Now())

	// Uploading — best effort. The local download (the returned bytes)
	// happens regardless of the upload outcome.
	result.PDFURL = s.upload(ctx, pdf, result.Filename, result)

	// LoggingAttempt — best effort, proceeds with a nil URL.
	attempt := s.buildAttempt(snapshot, action, reference, result.PDFURL)
	s.logAttempt(ctx, attempt, result)

	// Outbound alert — fire and forget, never surfaced.
	s.notify(ctx, attempt)

	// ComposingEmail — enquiry and order only. Plain quote export ends
	// here; the PDF download is the deliverable.
	if action == types.AttemptTypeEnquiry || action == types.AttemptTypeOrder {
		result.Mailto = s.composer.Compose(mail.ComposeParams{
			Action:          action,
			Info:            snapshot.Info,
			TeacherCount:    snapshot.TeacherCount,
			StudentCount:    snapshot.StudentCount,
			TotalPriceCents: snapshot.Breakdown.Pricing.TotalCents,
			PDFURL:          result.PDFURL,
		})
		result.AcknowledgementRequired = true
	}

	s.logger.Info("Dispatch completed",
		zap.String("session_id", snapshot.SessionID.String()),
		zap.String("action", string(action)),
		zap.String("reference", reference),
		zap.Int("warnings", len(result.Warnings)))
	s.logger.Debug("Dispatch attempt snapshot", zap.String("attempt", spew.Sdump(attempt)))

	return result, nil
}

// render picks the layout for the action type.
func (s *DispatchService) render(snapshot SessionSnapshot, action types.AttemptType, reference string) ([]byte, error) {
	data := types.DocumentData{
		Reference:          reference,
		Info:               snapshot.Info,
		Items:              snapshot.Breakdown.Items,
		Pricing:            snapshot.Breakdown.Pricing,
		TeacherCount:       snapshot.TeacherCount,
		StudentCount:       snapshot.StudentCount,
		AccessPeriodMonths: snapshot.AccessPeriodMonths,
		ProgramStartDate:   snapshot.ProgramStartDate,
		IsUnlimited:        snapshot.Selection.IsUnlimited(),
		Inclusions:         inclusionsFor(snapshot.Selection),
		GeneratedAt:        time.Now(),
	}
	if action == types.AttemptTypeOrder {
		return s.renderer.RenderOrder(data)
	}
	return s.renderer.RenderQuote(data)
}

// upload pushes the document to storage under a bounded timeout and
// degrades to nil on any failure.
func (s *DispatchService) upload(ctx context.Context, pdf []byte, filename string, result *DispatchResult) *string {
	if s.uploader == nil {
		return nil
	}

	uploadCtx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	url, err := s.uploader.Upload(uploadCtx, pdf, filename)
	if err != nil {
		s.logger.Warn("Document upload failed, continuing with local download only",
			zap.String("filename", filename),
			zap.Error(err))
		result.Warnings = append(result.Warnings, "The document could not be saved online; use the downloaded copy instead.")
		return nil
	}
	return &url
}

// logAttempt appends the audit record; on failure it enqueues the
// record for replay and carries on.
func (s *DispatchService) logAttempt(ctx context.Context, attempt types.QuoteAttempt, result *DispatchResult) {
	itemsJSON, err := json.Marshal(attempt.Items)
	if err != nil {
		itemsJSON = []byte("[]")
	}
	pricingJSON, err := json.Marshal(attempt.Pricing)
	if err != nil {
		pricingJSON = []byte("{}")
	}

	var pdfURL pgtype.Text
	if attempt.PDFURL != nil {
		pdfURL = pgtype.Text{String: *attempt.PDFURL, Valid: true}
	}

	_, err = s.queries.CreateQuoteAttempt(ctx, db.CreateQuoteAttemptParams{
		Reference:          attempt.Reference,
		AttemptType:        string(attempt.AttemptType),
		SchoolName:         textOrNull(attempt.SchoolName),
		SchoolAbn:          textOrNull(attempt.SchoolABN),
		CoordinatorName:    textOrNull(attempt.CoordinatorName),
		CoordinatorEmail:   textOrNull(attempt.CoordinatorEmail),
		ContactPhone:       textOrNull(attempt.ContactPhone),
		TeacherCount:       int32(attempt.TeacherCount),
		StudentCount:       int32(attempt.StudentCount),
		AccessPeriodMonths: int32(attempt.AccessPeriodMonths),
		ProgramStartDate:   attempt.ProgramStartDate,
		QuoteItems:         itemsJSON,
		Pricing:            pricingJSON,
		TotalPriceCents:    attempt.TotalPriceCents,
		PdfUrl:             pdfURL,
	})
	if err == nil {
		return
	}

	s.logger.Warn("Audit log write failed", zap.String("reference", attempt.Reference), zap.Error(err))
	result.Warnings = append(result.Warnings, "Your request was processed but could not be recorded; we may follow up to confirm details.")

	if s.queue == nil {
		return
	}
	if qErr := s.queue.PublishQuoteAttempt(ctx, attempt); qErr != nil {
		s.logger.Error("Failed to enqueue attempt for replay",
			zap.String("reference", attempt.Reference),
			zap.Error(qErr))
	}
}

// notify fires the operator alert; failures are logged only.
func (s *DispatchService) notify(ctx context.Context, attempt types.QuoteAttempt) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyQuoteAttempt(ctx, attempt); err != nil {
		s.logger.Warn("Operator alert failed",
			zap.String("reference", attempt.Reference),
			zap.Error(err))
	}
}

// buildAttempt snapshots the session into an immutable audit record.
func (s *DispatchService) buildAttempt(snapshot SessionSnapshot, action types.AttemptType, reference string, pdfURL *string) types.QuoteAttempt {
	return types.QuoteAttempt{
		Reference:          reference,
		AttemptType:        action,
		SchoolName:         snapshot.Info.SchoolName,
		SchoolABN:          snapshot.Info.SchoolABN,
		CoordinatorName:    snapshot.Info.CoordinatorName,
		CoordinatorEmail:   snapshot.Info.CoordinatorEmail,
		ContactPhone:       snapshot.Info.ContactPhone,
		TeacherCount:       snapshot.TeacherCount,
		StudentCount:       snapshot.StudentCount,
		AccessPeriodMonths: snapshot.AccessPeriodMonths,
		ProgramStartDate:   snapshot.ProgramStartDate,
		Items:              snapshot.Breakdown.Items,
		Pricing:            snapshot.Breakdown.Pricing,
		TotalPriceCents:    snapshot.Breakdown.Pricing.TotalCents,
		PDFURL:             pdfURL,
		CreatedAt:          time.Now(),
	}
}

// BuildDocumentFilename follows the fixed convention
// MandyMoney_{Quote|Order}_{schoolNameOrDefault}_{ISODate}.pdf.
func BuildDocumentFilename(action types.AttemptType, schoolName string, now time.Time) string {
	kind := "Quote"
	if action == types.AttemptTypeOrder {
		kind = "Order"
	}

	name := strings.TrimSpace(schoolName)
	if name == "" {
		name = "School"
	}
	name = sanitizeFilenamePart(name)

	return fmt.Sprintf("MandyMoney_%s_%s_%s.pdf", kind, name, now.Format("2006-01-02"))
}

// sanitizeFilenamePart keeps filenames portable across filesystems.
func sanitizeFilenamePart(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

// inclusionsFor flattens the catalog inclusions for the selected tiers.
func inclusionsFor(selection types.Selection) []string {
	if selection.IsUnlimited() {
		return catalog.Unlimited().Inclusions
	}

	var inclusions []string
	for _, tier := range catalog.Tiers() {
		inclusions = append(inclusions, tier.Inclusions.Teacher...)
		inclusions = append(inclusions, tier.Inclusions.Student...)
		inclusions = append(inclusions, tier.Inclusions.Classroom...)
	}
	return inclusions
}

func textOrNull(s string) pgtype.Text {
	if strings.TrimSpace(s) == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
