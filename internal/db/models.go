package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// QuoteAttempt is one row of the append-only quote_attempts audit log.
type QuoteAttempt struct {
	ID                 uuid.UUID   `json:"id"`
	Reference          string      `json:"reference"`
	AttemptType        string      `json:"attempt_type"`
	SchoolName         pgtype.Text `json:"school_name"`
	SchoolAbn          pgtype.Text `json:"school_abn"`
	CoordinatorName    pgtype.Text `json:"coordinator_name"`
	CoordinatorEmail   pgtype.Text `json:"coordinator_email"`
	ContactPhone       pgtype.Text `json:"contact_phone"`
	TeacherCount       int32       `json:"teacher_count"`
	StudentCount       int32       `json:"student_count"`
	AccessPeriodMonths int32       `json:"access_period_months"`
	ProgramStartDate   time.Time   `json:"program_start_date"`
	QuoteItems         []byte      `json:"quote_items"`
	Pricing            []byte      `json:"pricing"`
	TotalPriceCents    int64       `json:"total_price_cents"`
	PdfUrl             pgtype.Text `json:"pdf_url"`
	CreatedAt          time.Time   `json:"created_at"`
}

// SchoolInfoDraft is the durable per-session school-info document,
// overwritten in full on every change.
type SchoolInfoDraft struct {
	SessionID uuid.UUID `json:"session_id"`
	Document  []byte    `json:"document"`
	UpdatedAt time.Time `json:"updated_at"`
}
