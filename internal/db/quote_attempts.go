package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const createQuoteAttempt = `
INSERT INTO quote_attempts (
	reference, attempt_type, school_name, school_abn,
	coordinator_name, coordinator_email, contact_phone,
	teacher_count, student_count, access_period_months,
	program_start_date, quote_items, pricing, total_price_cents, pdf_url
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
)
RETURNING id, reference, attempt_type, school_name, school_abn,
	coordinator_name, coordinator_email, contact_phone,
	teacher_count, student_count, access_period_months,
	program_start_date, quote_items, pricing, total_price_cents, pdf_url, created_at
`

// CreateQuoteAttemptParams contains the column values for one audit row.
type CreateQuoteAttemptParams struct {
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
}

// CreateQuoteAttempt appends one immutable audit record.
func (q *Queries) CreateQuoteAttempt(ctx context.Context, arg CreateQuoteAttemptParams) (QuoteAttempt, error) {
	row := q.db.QueryRow(ctx, createQuoteAttempt,
		arg.Reference,
		arg.AttemptType,
		arg.SchoolName,
		arg.SchoolAbn,
		arg.CoordinatorName,
		arg.CoordinatorEmail,
		arg.ContactPhone,
		arg.TeacherCount,
		arg.StudentCount,
		arg.AccessPeriodMonths,
		arg.ProgramStartDate,
		arg.QuoteItems,
		arg.Pricing,
		arg.TotalPriceCents,
		arg.PdfUrl,
	)
	var i QuoteAttempt
	err := row.Scan(
		&i.ID,
		&i.Reference,
		&i.AttemptType,
		&i.SchoolName,
		&i.SchoolAbn,
		&i.CoordinatorName,
		&i.CoordinatorEmail,
		&i.ContactPhone,
		&i.TeacherCount,
		&i.StudentCount,
		&i.AccessPeriodMonths,
		&i.ProgramStartDate,
		&i.QuoteItems,
		&i.Pricing,
		&i.TotalPriceCents,
		&i.PdfUrl,
		&i.CreatedAt,
	)
	return i, err
}

const listQuoteAttempts = `
SELECT id, reference, attempt_type, school_name, school_abn,
	coordinator_name, coordinator_email, contact_phone,
	teacher_count, student_count, access_period_months,
	program_start_date, quote_items, pricing, total_price_cents, pdf_url, created_at
FROM quote_attempts
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

// ListQuoteAttemptsParams pages through the audit log, newest first.
type ListQuoteAttemptsParams struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

// ListQuoteAttempts returns a page of audit records, newest first.
func (q *Queries) ListQuoteAttempts(ctx context.Context, arg ListQuoteAttemptsParams) ([]QuoteAttempt, error) {
	rows, err := q.db.Query(ctx, listQuoteAttempts, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []QuoteAttempt
	for rows.Next() {
		var i QuoteAttempt
		if err := rows.Scan(
			&i.ID,
			&i.Reference,
			&i.AttemptType,
			&i.SchoolName,
			&i.SchoolAbn,
			&i.CoordinatorName,
			&i.CoordinatorEmail,
			&i.ContactPhone,
			&i.TeacherCount,
			&i.StudentCount,
			&i.AccessPeriodMonths,
			&i.ProgramStartDate,
			&i.QuoteItems,
			&i.Pricing,
			&i.TotalPriceCents,
			&i.PdfUrl,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
