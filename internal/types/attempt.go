package types

import "time"

// AttemptType identifies which call-to-action produced a quote attempt.
type AttemptType string

const (
	AttemptTypeQuote   AttemptType = "quote"
	AttemptTypeOrder   AttemptType = "order"
	AttemptTypeEnquiry AttemptType = "enquiry"
)

// Valid reports whether the attempt type is one of the three actions.
func (t AttemptType) Valid() bool {
	switch t {
	case AttemptTypeQuote, AttemptTypeOrder, AttemptTypeEnquiry:
		return true
	}
	return false
}

// QuoteAttempt is the immutable audit snapshot of one user action,
// successful or not. Written once per attempt, never mutated.
type QuoteAttempt struct {
	Reference          string      `json:"reference"`
	AttemptType        AttemptType `json:"attempt_type"`
	SchoolName         string      `json:"school_name"`
	SchoolABN          string      `json:"school_abn"`
	CoordinatorName    string      `json:"coordinator_name"`
	CoordinatorEmail   string      `json:"coordinator_email"`
	ContactPhone       string      `json:"contact_phone"`
	TeacherCount       int         `json:"teacher_count"`
	StudentCount       int         `json:"student_count"`
	AccessPeriodMonths int         `json:"access_period_months"`
	ProgramStartDate   time.Time   `json:"program_start_date"`
	Items              []QuoteItem `json:"items"`
	Pricing            Pricing     `json:"pricing"`
	TotalPriceCents    int64       `json:"total_price_cents"`
	PDFURL             *string     `json:"pdf_url,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
}
