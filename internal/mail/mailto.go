// Package mail builds the pre-filled mailto: drafts handed to the
// user's mail client for enquiry and order actions. Opening the draft is
// fire-and-forget; delivery is never guaranteed, which is why the flow
// ends with a mandatory acknowledgement.
package mail

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/mandymoney/quote-craft/internal/constants"
	"github.com/mandymoney/quote-craft/internal/helpers"
	"github.com/mandymoney/quote-craft/internal/types"
)

// DefaultOperatorInbox receives enquiry and order emails unless
// overridden via configuration.
const DefaultOperatorInbox = "orders@mandymoney.com.au"

// Composer builds mailto URLs targeting the operator inbox.
type Composer struct {
	operatorInbox string
}

// NewComposer creates a composer for the given inbox, falling back to
// the default when empty.
func NewComposer(operatorInbox string) *Composer {
	if operatorInbox == "" {
		operatorInbox = DefaultOperatorInbox
	}
	return &Composer{operatorInbox: operatorInbox}
}

// ComposeParams carries everything the draft references.
type ComposeParams struct {
	Action          types.AttemptType
	Info            types.SchoolInfo
	TeacherCount    int
	StudentCount    int
	TotalPriceCents int64
	PDFURL          *string
}

// Compose returns the mailto: URL for an enquiry or order draft.
func (c *Composer) Compose(params ComposeParams) string {
	subject := c.subject(params)
	body := c.body(params)

	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		c.operatorInbox, encodeComponent(subject), encodeComponent(body))
}

func (c *Composer) subject(params ComposeParams) string {
	var subject string
	if params.Action == types.AttemptTypeOrder {
		subject = "New Order: " + constants.ProgramName
	} else {
		subject = constants.ProgramName + " Enquiry"
	}
	if !helpers.IsBlank(params.Info.SchoolName) {
		subject += " - " + strings.TrimSpace(params.Info.SchoolName)
	}
	return subject
}

func (c *Composer) body(params ComposeParams) string {
	var b strings.Builder

	b.WriteString("Hi Mandy Money team,\n\n")
	if params.Action == types.AttemptTypeOrder {
		b.WriteString("We would like to place an order for the " + constants.ProgramName + ".\n\n")
	} else {
		b.WriteString("We would like to enquire about the " + constants.ProgramName + ".\n\n")
	}

	writeDetails(&b, params.Info)

	b.WriteString("Our requirements:\n")
	b.WriteString(fmt.Sprintf("- Teachers: %d\n", params.TeacherCount))
	b.WriteString(fmt.Sprintf("- Students: %d\n", params.StudentCount))
	b.WriteString(fmt.Sprintf("- Total: %s (incl. GST)\n\n", helpers.FormatAUD(params.TotalPriceCents)))

	if !helpers.IsBlank(params.Info.QuestionsComments) {
		b.WriteString("Comments:\n" + strings.TrimSpace(params.Info.QuestionsComments) + "\n\n")
	}

	if params.PDFURL != nil && *params.PDFURL != "" {
		b.WriteString("The full document is available here: " + *params.PDFURL + "\n\n")
	} else {
		b.WriteString("The full document is attached to this email.\n\n")
	}

	b.WriteString("Kind regards,\n")
	b.WriteString(strings.TrimSpace(params.Info.CoordinatorName))
	b.WriteString("\n")

	return b.String()
}

// writeDetails appends the school-details block, skipping empty fields.
func writeDetails(b *strings.Builder, info types.SchoolInfo) {
	lines := []struct {
		label string
		value string
	}{
		{"School", info.SchoolName},
		{"ABN", info.SchoolABN},
		{"Coordinator", info.CoordinatorName},
		{"Position", info.CoordinatorPosition},
		{"Email", info.CoordinatorEmail},
		{"Phone", info.ContactPhone},
		{"Address", info.SchoolAddress.OneLine()},
	}

	var wrote bool
	for _, line := range lines {
		if helpers.IsBlank(line.value) {
			continue
		}
		if !wrote {
			b.WriteString("Our details:\n")
			wrote = true
		}
		b.WriteString(fmt.Sprintf("- %s: %s\n", line.label, strings.TrimSpace(line.value)))
	}
	if wrote {
		b.WriteString("\n")
	}
}

// encodeComponent percent-encodes a mailto component. QueryEscape uses
// '+' for spaces, which many mail clients render literally, so spaces
// are re-encoded as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
