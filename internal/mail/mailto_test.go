package mail_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mandymoney/quote-craft/internal/mail"
	"github.com/mandymoney/quote-craft/internal/types"
)

func sampleInfo() types.SchoolInfo {
	return types.SchoolInfo{
		SchoolName:       "Springfield High",
		CoordinatorName:  "Jane Citizen",
		CoordinatorEmail: "jane@springfield.edu.au",
		ContactPhone:     "03 9123 4567",
		SchoolAddress: types.AddressComponents{
			StreetNumber: "1",
			StreetName:   "Main St",
			Suburb:       "Springfield",
			State:        "VIC",
			Postcode:     "3000",
			Country:      "Australia",
		},
	}
}

// decodeBody extracts and percent-decodes the body component of a
// mailto URL.
func decodeBody(t *testing.T, mailto string) string {
	t.Helper()
	idx := strings.Index(mailto, "&body=")
	require.Positive(t, idx)
	body, err := url.QueryUnescape(mailto[idx+len("&body="):])
	require.NoError(t, err)
	return body
}

func TestComposeOrder(t *testing.T) {
	composer := mail.NewComposer("")
	pdfURL := "https://example.com/doc.pdf"

	mailto := composer.Compose(mail.ComposeParams{
		Action:          types.AttemptTypeOrder,
		Info:            sampleInfo(),
		TeacherCount:    2,
		StudentCount:    100,
		TotalPriceCents: 879780,
		PDFURL:          &pdfURL,
	})

	assert.True(t, strings.HasPrefix(mailto, "mailto:"+mail.DefaultOperatorInbox+"?subject="))

	subject, err := url.QueryUnescape(strings.TrimPrefix(
		strings.Split(mailto, "&body=")[0], "mailto:"+mail.DefaultOperatorInbox+"?subject="))
	require.NoError(t, err)
	assert.Equal(t, "New Order: High School Program - Springfield High", subject)

	body := decodeBody(t, mailto)
	assert.Contains(t, body, "We would like to place an order")
	assert.Contains(t, body, "- School: Springfield High")
	assert.Contains(t, body, "- Teachers: 2")
	assert.Contains(t, body, "- Students: 100")
	assert.Contains(t, body, "- Total: $8,797.80 (incl. GST)")
	assert.Contains(t, body, "available here: "+pdfURL)
	assert.Contains(t, body, "Kind regards,\nJane Citizen")
}

func TestComposeEnquiryWithoutPDFURL(t *testing.T) {
	composer := mail.NewComposer("sales@example.com")

	mailto := composer.Compose(mail.ComposeParams{
		Action:          types.AttemptTypeEnquiry,
		Info:            sampleInfo(),
		TeacherCount:    1,
		StudentCount:    0,
		TotalPriceCents: 17890,
	})

	assert.True(t, strings.HasPrefix(mailto, "mailto:sales@example.com?"))

	body := decodeBody(t, mailto)
	assert.Contains(t, body, "We would like to enquire")
	assert.Contains(t, body, "The full document is attached to this email.")
	assert.NotContains(t, body, "available here")
}

func TestComposeSkipsBlankDetails(t *testing.T) {
	composer := mail.NewComposer("")
	info := types.SchoolInfo{CoordinatorName: "Jane Citizen"}

	body := decodeBody(t, composer.Compose(mail.ComposeParams{
		Action: types.AttemptTypeEnquiry,
		Info:   info,
	}))

	assert.Contains(t, body, "- Coordinator: Jane Citizen")
	assert.NotContains(t, body, "- School:")
	assert.NotContains(t, body, "- ABN:")
}

func TestComposeUsesPercentTwentyForSpaces(t *testing.T) {
	composer := mail.NewComposer("")

	mailto := composer.Compose(mail.ComposeParams{
		Action: types.AttemptTypeEnquiry,
		Info:   sampleInfo(),
	})

	assert.NotContains(t, mailto, "+")
	assert.Contains(t, mailto, "%20")
}
