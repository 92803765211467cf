package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/mandymoney/quote-craft/internal/helpers"
	"github.com/mandymoney/quote-craft/internal/logger"
	"github.com/mandymoney/quote-craft/internal/types"
)

// EmailService sends operator alert emails for quote attempts via
// Resend. Alerts are fire-and-forget: errors propagate to the caller
// for logging but must never block the user flow.
type EmailService struct {
	client        *resend.Client
	logger        *zap.Logger
	fromEmail     string
	fromName      string
	operatorEmail string
}

// NewEmailService creates a new email service.
func NewEmailService(apiKey, fromEmail, fromName, operatorEmail string) *EmailService {
	return &EmailService{
		client:        resend.NewClient(apiKey),
		logger:        logger.Log,
		fromEmail:     fromEmail,
		fromName:      fromName,
		operatorEmail: operatorEmail,
	}
}

// NotifyQuoteAttempt emails the operator a summary of one attempt.
func (s *EmailService) NotifyQuoteAttempt(ctx context.Context, attempt types.QuoteAttempt) error {
	subject, html, text := BuildAlertEmail(attempt)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{s.operatorEmail},
		Subject: subject,
		Html:    html,
		Text:    text,
		Tags: []resend.Tag{
			{Name: "category", Value: "quote-attempt"},
			{Name: "attempt_type", Value: string(attempt.AttemptType)},
		},
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("failed to send attempt alert",
			zap.Error(err),
			zap.String("reference", attempt.Reference),
			zap.String("attempt_type", string(attempt.AttemptType)))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("attempt alert sent",
		zap.String("email_id", sent.Id),
		zap.String("reference", attempt.Reference),
		zap.String("attempt_type", string(attempt.AttemptType)))
	return nil
}

// BuildAlertEmail renders the subject, HTML body and text body for an
// operator alert. Exported for tests.
func BuildAlertEmail(attempt types.QuoteAttempt) (subject, html, text string) {
	school := strings.TrimSpace(attempt.SchoolName)
	if school == "" {
		school = "Unknown school"
	}

	subject = fmt.Sprintf("[%s] %s - %s (%s)",
		strings.ToUpper(string(attempt.AttemptType)), school,
		helpers.FormatAUD(attempt.TotalPriceCents), attempt.Reference)

	var hb strings.Builder
	hb.WriteString("<h2>New " + string(attempt.AttemptType) + " attempt</h2>")
	hb.WriteString("<table>")
	rows := []struct{ label, value string }{
		{"Reference", attempt.Reference},
		{"School", school},
		{"Coordinator", attempt.CoordinatorName},
		{"Email", attempt.CoordinatorEmail},
		{"Phone", attempt.ContactPhone},
		{"Teachers", fmt.Sprintf("%d", attempt.TeacherCount)},
		{"Students", fmt.Sprintf("%d", attempt.StudentCount)},
		{"Access period", fmt.Sprintf("%d months", attempt.AccessPeriodMonths)},
		{"Total", helpers.FormatAUD(attempt.TotalPriceCents)},
	}
	for _, row := range rows {
		if strings.TrimSpace(row.value) == "" {
			continue
		}
		hb.WriteString("<tr><td><strong>" + row.label + "</strong></td><td>" + row.value + "</td></tr>")
	}
	hb.WriteString("</table>")
	if attempt.PDFURL != nil && *attempt.PDFURL != "" {
		hb.WriteString(`<p><a href="` + *attempt.PDFURL + `">View document</a></p>`)
	}
	html = hb.String()

	var tb strings.Builder
	for _, row := range rows {
		if strings.TrimSpace(row.value) == "" {
			continue
		}
		tb.WriteString(row.label + ": " + row.value + "\n")
	}
	if attempt.PDFURL != nil && *attempt.PDFURL != "" {
		tb.WriteString("Document: " + *attempt.PDFURL + "\n")
	}
	text = tb.String()

	return subject, html, text
}
