package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mandymoney/quote-craft/internal/services"
	"github.com/mandymoney/quote-craft/internal/types"
)

func TestBuildAlertEmail(t *testing.T) {
	pdfURL := "https://example.com/doc.pdf"
	attempt := types.QuoteAttempt{
		Reference:          "MM-3F9A2C",
		AttemptType:        types.AttemptTypeOrder,
		SchoolName:         "Springfield High",
		CoordinatorName:    "Jane Citizen",
		CoordinatorEmail:   "jane@springfield.edu.au",
		TeacherCount:       2,
		StudentCount:       100,
		AccessPeriodMonths: 12,
		TotalPriceCents:    879780,
		PDFURL:             &pdfURL,
	}

	subject, html, text := services.BuildAlertEmail(attempt)

	assert.Equal(t, "[ORDER] Springfield High - $8,797.80 (MM-3F9A2C)", subject)

	assert.Contains(t, html, "<h2>New order attempt</h2>")
	assert.Contains(t, html, "Springfield High")
	assert.Contains(t, html, pdfURL)

	assert.Contains(t, text, "Reference: MM-3F9A2C")
	assert.Contains(t, text, "Teachers: 2")
	assert.Contains(t, text, "Students: 100")
	assert.Contains(t, text, "Total: $8,797.80")
	assert.Contains(t, text, "Document: "+pdfURL)
}

func TestBuildAlertEmailUnknownSchool(t *testing.T) {
	attempt := types.QuoteAttempt{
		Reference:       "MM-AAAAAA",
		AttemptType:     types.AttemptTypeQuote,
		TotalPriceCents: 0,
	}

	subject, _, text := services.BuildAlertEmail(attempt)

	assert.Equal(t, "[QUOTE] Unknown school - $0.00 (MM-AAAAAA)", subject)
	// Blank contact fields are skipped entirely.
	assert.NotContains(t, text, "Coordinator:")
	assert.NotContains(t, text, "Phone:")
}
