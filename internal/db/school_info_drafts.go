package db

import (
	"context"

	"github.com/google/uuid"
)

const getSchoolInfoDraft = `
SELECT session_id, document, updated_at
FROM school_info_drafts
WHERE session_id = $1
`

// GetSchoolInfoDraft loads the persisted draft for a session.
func (q *Queries) GetSchoolInfoDraft(ctx context.Context, sessionID uuid.UUID) (SchoolInfoDraft, error) {
	row := q.db.QueryRow(ctx, getSchoolInfoDraft, sessionID)
	var i SchoolInfoDraft
	err := row.Scan(&i.SessionID, &i.Document, &i.UpdatedAt)
	return i, err
}

const upsertSchoolInfoDraft = `
INSERT INTO school_info_drafts (session_id, document, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (session_id)
DO UPDATE SET document = EXCLUDED.document, updated_at = now()
RETURNING session_id, document, updated_at
`

// UpsertSchoolInfoDraftParams carries the full-document overwrite for a
// session's draft. The write is a single atomic full-value replacement.
type UpsertSchoolInfoDraftParams struct {
	SessionID uuid.UUID `json:"session_id"`
	Document  []byte    `json:"document"`
}

// UpsertSchoolInfoDraft overwrites the session's draft document.
func (q *Queries) UpsertSchoolInfoDraft(ctx context.Context, arg UpsertSchoolInfoDraftParams) (SchoolInfoDraft, error) {
	row := q.db.QueryRow(ctx, upsertSchoolInfoDraft, arg.SessionID, arg.Document)
	var i SchoolInfoDraft
	err := row.Scan(&i.SessionID, &i.Document, &i.UpdatedAt)
	return i, err
}
