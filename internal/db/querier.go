package db

import (
	"context"

	"github.com/google/uuid"
)

// Querier is the query interface services depend on; mocked in tests.
type Querier interface {
	CreateQuoteAttempt(ctx context.Context, arg CreateQuoteAttemptParams) (QuoteAttempt, error)
	ListQuoteAttempts(ctx context.Context, arg ListQuoteAttemptsParams) ([]QuoteAttempt, error)
	GetSchoolInfoDraft(ctx context.Context, sessionID uuid.UUID) (SchoolInfoDraft, error)
	UpsertSchoolInfoDraft(ctx context.Context, arg UpsertSchoolInfoDraftParams) (SchoolInfoDraft, error)
}

var _ Querier = (*Queries)(nil)
