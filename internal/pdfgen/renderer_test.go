package pdfgen_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mandymoney/quote-craft/internal/logger"
	"github.com/mandymoney/quote-craft/internal/pdfgen"
	"github.com/mandymoney/quote-craft/internal/types"
)

func init() {
	logger.InitLogger("test")
}

func sampleData() types.DocumentData {
	return types.DocumentData{
		Reference: "MM-3F9A2C",
		Info: types.SchoolInfo{
			SchoolName:       "Springfield High",
			CoordinatorName:  "Jane Citizen",
			CoordinatorEmail: "jane@springfield.edu.au",
		},
		Items: []types.QuoteItem{
			{Item: "Teacher Licence", Count: 2, UnitPriceCents: 14900, TotalPriceCents: 29800, Type: types.QuoteItemTypeTeacher},
			{Item: "Student Licence", Count: 100, UnitPriceCents: 7700, TotalPriceCents: 770000, Type: types.QuoteItemTypeStudent, SavingsCents: 1100},
		},
		Pricing: types.Pricing{
			SubtotalCents: 799800,
			GSTCents:      79980,
			TotalCents:    879780,
		},
		TeacherCount:       2,
		StudentCount:       100,
		AccessPeriodMonths: 12,
		ProgramStartDate:   time.Date(2027, 1, 27, 0, 0, 0, 0, time.UTC),
		Inclusions:         []string{"12-month digital platform access", "Full lesson plan library"},
		GeneratedAt:        time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}
}

func TestRenderQuote(t *testing.T) {
	renderer := pdfgen.NewRenderer()

	pdf, err := renderer.RenderQuote(sampleData())
	require.NoError(t, err)

	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestRenderOrder(t *testing.T) {
	renderer := pdfgen.NewRenderer()
	data := sampleData()
	data.Info.AccountsEmail = "accounts@springfield.edu.au"
	data.Info.PurchaseOrderNumber = "PO-4471"

	pdf, err := renderer.RenderOrder(data)
	require.NoError(t, err)

	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestRenderHandlesSparseData(t *testing.T) {
	renderer := pdfgen.NewRenderer()

	// An anonymous quote with no school details and no items still
	// renders a valid document.
	pdf, err := renderer.RenderQuote(types.DocumentData{
		Reference:        "MM-AAAAAA",
		ProgramStartDate: time.Now(),
		GeneratedAt:      time.Now(),
	})
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestRenderManyItemsPaginates(t *testing.T) {
	renderer := pdfgen.NewRenderer()
	data := sampleData()

	for i := 0; i < 80; i++ {
		data.Inclusions = append(data.Inclusions, "Printable activity pack")
	}

	pdf, err := renderer.RenderQuote(data)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
}
