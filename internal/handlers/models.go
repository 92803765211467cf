package handlers

import (
	"time"

	"github.com/mandymoney/quote-craft/internal/db"
	"github.com/mandymoney/quote-craft/internal/services"
	"github.com/mandymoney/quote-craft/internal/types"
)

// SessionResponse is the full session view returned by the session
// endpoints. Counts and pricing are always consistent: the breakdown is
// recomputed before this is built.
type SessionResponse struct {
	Object             string               `json:"object"`
	SessionID          string               `json:"session_id"`
	SchoolInfo         types.SchoolInfo     `json:"school_info"`
	Selection          types.Selection      `json:"selection"`
	TeacherCount       int                  `json:"teacher_count"`
	StudentCount       int                  `json:"student_count"`
	AddOns             types.AddOnCounts    `json:"add_ons"`
	AccessPeriodMonths int                  `json:"access_period_months"`
	ProgramStartDate   time.Time            `json:"program_start_date"`
	Breakdown          types.QuoteBreakdown `json:"breakdown"`
}

// UpdateSelectionRequest carries a full selection replacement. Counts
// outside [0, MaxSeatCount] are clamped, not rejected.
type UpdateSelectionRequest struct {
	Mode               string            `json:"mode" binding:"required"`
	TeacherCount       int               `json:"teacher_count"`
	StudentCount       int               `json:"student_count"`
	AddOns             types.AddOnCounts `json:"add_ons"`
	AccessPeriodMonths int               `json:"access_period_months" binding:"required"`
	ProgramStartDate   *time.Time        `json:"program_start_date,omitempty"`
}

// GateStates reports whether each action's validation gate currently
// passes, for live button enablement.
type GateStates struct {
	Quote   bool `json:"quote"`
	Enquiry bool `json:"enquiry"`
	Order   bool `json:"order"`
}

// MissingFields lists the human-readable labels blocking each gated
// action, in fixed display order.
type MissingFields struct {
	Quote   []string `json:"quote"`
	Enquiry []string `json:"enquiry"`
	Order   []string `json:"order"`
}

// ValidationView is the live validation state for the quote view.
type ValidationView struct {
	IsValid       bool              `json:"is_valid"`
	Errors        map[string]string `json:"errors"`
	Gates         GateStates        `json:"gates"`
	MissingFields MissingFields     `json:"missing_fields"`
}

// QuoteResponse is the derived quote view: the priced breakdown plus
// the validation state driving the action buttons.
type QuoteResponse struct {
	Object     string               `json:"object"`
	SessionID  string               `json:"session_id"`
	Breakdown  types.QuoteBreakdown `json:"breakdown"`
	Validation ValidationView       `json:"validation"`
}

// CatalogResponse is the immutable catalog handed to the client once at
// load time.
type CatalogResponse struct {
	Object            string              `json:"object"`
	Tiers             []types.PricingTier `json:"tiers"`
	Unlimited         types.UnlimitedTier `json:"unlimited"`
	AccessPeriods     []int               `json:"access_periods_months"`
	FreeShippingCents int64               `json:"free_shipping_threshold_cents"`
	ShippingFeeCents  int64               `json:"shipping_fee_cents"`
	GSTRatePercent    int                 `json:"gst_rate_percent"`
	MaxSeatCount      int                 `json:"max_seat_count"`
}

// ActionResponse wraps a dispatch outcome. The rendered document is
// returned inline as base64 so the client can trigger the download even
// when the online copy failed to save.
type ActionResponse struct {
	Object string `json:"object"`

	Status        string   `json:"status"`
	Reference     string   `json:"reference,omitempty"`
	MissingFields []string `json:"missing_fields,omitempty"`
	Filename      string   `json:"filename,omitempty"`
	PDFBase64     []byte   `json:"pdf_base64,omitempty"`
	PDFURL        *string  `json:"pdf_url,omitempty"`
	Mailto        string   `json:"mailto,omitempty"`
	Warnings      []string `json:"warnings,omitempty"`

	AcknowledgementRequired bool `json:"acknowledgement_required"`
}

// QuoteAttemptResponse is one audit record with nullable columns
// flattened to plain strings.
type QuoteAttemptResponse struct {
	ID                 string    `json:"id"`
	Reference          string    `json:"reference"`
	AttemptType        string    `json:"attempt_type"`
	SchoolName         string    `json:"school_name,omitempty"`
	SchoolABN          string    `json:"school_abn,omitempty"`
	CoordinatorName    string    `json:"coordinator_name,omitempty"`
	CoordinatorEmail   string    `json:"coordinator_email,omitempty"`
	ContactPhone       string    `json:"contact_phone,omitempty"`
	TeacherCount       int32     `json:"teacher_count"`
	StudentCount       int32     `json:"student_count"`
	AccessPeriodMonths int32     `json:"access_period_months"`
	ProgramStartDate   time.Time `json:"program_start_date"`
	TotalPriceCents    int64     `json:"total_price_cents"`
	PDFURL             string    `json:"pdf_url,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// AddressSuggestionsResponse wraps the lookup results.
type AddressSuggestionsResponse struct {
	Object string                    `json:"object"`
	Data   []types.AddressComponents `json:"data"`
}

// clampCount bounds a seat count to [0, MaxSeatCount] before it reaches
// the session service.
func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	if n > services.MaxSeatCount {
		return services.MaxSeatCount
	}
	return n
}

// toSessionResponse converts a session snapshot into its API shape.
func toSessionResponse(snapshot services.SessionSnapshot) SessionResponse {
	return SessionResponse{
		Object:             "quote_session",
		SessionID:          snapshot.SessionID.String(),
		SchoolInfo:         snapshot.Info,
		Selection:          snapshot.Selection,
		TeacherCount:       snapshot.TeacherCount,
		StudentCount:       snapshot.StudentCount,
		AddOns:             snapshot.AddOns,
		AccessPeriodMonths: snapshot.AccessPeriodMonths,
		ProgramStartDate:   snapshot.ProgramStartDate,
		Breakdown:          snapshot.Breakdown,
	}
}

// toAttemptResponse converts an audit row into its API shape.
func toAttemptResponse(row db.QuoteAttempt) QuoteAttemptResponse {
	return QuoteAttemptResponse{
		ID:                 row.ID.String(),
		Reference:          row.Reference,
		AttemptType:        row.AttemptType,
		SchoolName:         row.SchoolName.String,
		SchoolABN:          row.SchoolAbn.String,
		CoordinatorName:    row.CoordinatorName.String,
		CoordinatorEmail:   row.CoordinatorEmail.String,
		ContactPhone:       row.ContactPhone.String,
		TeacherCount:       row.TeacherCount,
		StudentCount:       row.StudentCount,
		AccessPeriodMonths: row.AccessPeriodMonths,
		ProgramStartDate:   row.ProgramStartDate,
		TotalPriceCents:    row.TotalPriceCents,
		PDFURL:             row.PdfUrl.String,
		CreatedAt:          row.CreatedAt,
	}
}
