// Package pdfgen renders quote and order PDFs: header, dates, school
// block, line-item table, financial summary, inclusions and a contact
// footer, with a QR code carrying the quote reference.
package pdfgen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/mandymoney/quote-craft/internal/helpers"
	"github.com/mandymoney/quote-craft/internal/logger"
	"github.com/mandymoney/quote-craft/internal/types"
)

const (
	pageBreakY   = 260.0 // start a new page when the cursor passes this
	contentWidth = 190.0
	marginLeft   = 10.0
)

// Renderer produces the printable documents.
type Renderer struct {
	logger *zap.Logger
}

// NewRenderer creates a new document renderer.
func NewRenderer() *Renderer {
	return &Renderer{logger: logger.Log}
}

// RenderQuote renders the quote layout, also used for enquiries.
func (r *Renderer) RenderQuote(data types.DocumentData) ([]byte, error) {
	return r.render(data, "Quote")
}

// RenderOrder renders the order layout with the order-only fields.
func (r *Renderer) RenderOrder(data types.DocumentData) ([]byte, error) {
	return r.render(data, "Order")
}

type renderContext struct {
	pdf   *fpdf.Fpdf
	title string
}

func (r *Renderer) render(data types.DocumentData, kind string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Mandy Money %s %s", kind, data.Reference), false)
	pdf.SetAutoPageBreak(false, 0)

	rc := &renderContext{pdf: pdf, title: kind}

	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	rc.header(data)

	rc.schoolBlock(data)
	rc.itemTable(data)
	rc.summaryBlock(data)
	rc.inclusionsBlock(data)
	rc.contactFooter()

	if err := rc.qrCode(data.Reference); err != nil {
		// The QR is decorative; a failed encode should not sink the document.
		r.logger.Warn("Failed to render reference QR code", zap.Error(err))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render %s document: %w", strings.ToLower(kind), err)
	}
	return buf.Bytes(), nil
}

// header draws the title band and the date lines. Repeated on every page.
func (rc *renderContext) header(data types.DocumentData) {
	pdf := rc.pdf

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(30, 30, 30)
	pdf.CellFormat(contentWidth, 10, "Mandy Money - High School Program "+rc.title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(contentWidth, 5, fmt.Sprintf("%s date: %s    Reference: %s",
		rc.title, data.GeneratedAt.Format("2 January 2006"), data.Reference), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentWidth, 5, fmt.Sprintf("Program start: %s    Access until: %s (%d months)",
		data.ProgramStartDate.Format("2 January 2006"),
		data.AccessEndDate().Format("2 January 2006"),
		data.AccessPeriodMonths), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

// ensureSpace starts a new page, repeating the header, when the next
// block would pass the near-bottom threshold.
func (rc *renderContext) ensureSpace(data types.DocumentData, height float64) {
	if rc.pdf.GetY()+height > pageBreakY {
		rc.pdf.AddPage()
		rc.header(data)
	}
}

// schoolBlock prints only the fields that are present.
func (rc *renderContext) schoolBlock(data types.DocumentData) {
	lines := []struct{ label, value string }{
		{"School", data.Info.SchoolName},
		{"ABN", data.Info.SchoolABN},
		{"Coordinator", data.Info.CoordinatorName},
		{"Position", data.Info.CoordinatorPosition},
		{"Email", data.Info.CoordinatorEmail},
		{"Phone", data.Info.ContactPhone},
		{"Address", data.Info.SchoolAddress.OneLine()},
	}
	if rc.title == "Order" {
		lines = append(lines,
			struct{ label, value string }{"Accounts email", data.Info.AccountsEmail},
			struct{ label, value string }{"Purchase order", data.Info.PurchaseOrderNumber},
			struct{ label, value string }{"Payment preference", data.Info.PaymentPreference},
		)
	}

	pdf := rc.pdf
	var any bool
	for _, line := range lines {
		if strings.TrimSpace(line.value) == "" {
			continue
		}
		if !any {
			rc.ensureSpace(data, 8)
			pdf.SetFont("Helvetica", "B", 12)
			pdf.SetTextColor(30, 30, 30)
			pdf.CellFormat(contentWidth, 7, "School Details", "", 1, "L", false, 0, "")
			any = true
		}
		rc.ensureSpace(data, 6)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(40, 5, line.label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentWidth-40, 5, line.value, "", 1, "L", false, 0, "")
	}
	if any {
		pdf.Ln(4)
	}
}

// itemTable draws the line-item table with a type badge per row and a
// savings annotation where one applies.
func (rc *renderContext) itemTable(data types.DocumentData) {
	pdf := rc.pdf

	rc.ensureSpace(data, 16)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(30, 30, 30)
	pdf.CellFormat(contentWidth, 7, "Your Selection", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(75, 6, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 6, "Type", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 6, "Count x Unit", "1", 0, "R", true, 0, "")
	pdf.CellFormat(45, 6, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range data.Items {
		rc.ensureSpace(data, 6)
		pdf.CellFormat(75, 6, item.Item, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, string(item.Type), "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 6, fmt.Sprintf("%d x %s", item.Count, helpers.FormatAUD(item.UnitPriceCents)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 6, helpers.FormatAUD(item.TotalPriceCents), "1", 1, "R", false, 0, "")

		if item.SavingsCents > 0 {
			rc.ensureSpace(data, 5)
			pdf.SetFont("Helvetica", "I", 8)
			pdf.SetTextColor(0, 130, 60)
			pdf.CellFormat(contentWidth, 4, fmt.Sprintf("   includes volume saving of %s per student",
				helpers.FormatAUD(item.SavingsCents)), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(30, 30, 30)
		}
	}
	pdf.Ln(4)
}

// summaryBlock draws subtotal, GST, shipping and the highlighted total.
func (rc *renderContext) summaryBlock(data types.DocumentData) {
	pdf := rc.pdf
	rc.ensureSpace(data, 30)

	label := func(name, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(145, 6, name, "", 0, "R", false, 0, "")
		pdf.CellFormat(45, 6, value, "", 1, "R", false, 0, "")
	}

	label("Subtotal", helpers.FormatAUD(data.Pricing.SubtotalCents), false)
	label("GST (10%)", helpers.FormatAUD(data.Pricing.GSTCents), false)
	if data.Pricing.ShippingCents > 0 {
		label("Shipping", helpers.FormatAUD(data.Pricing.ShippingCents), false)
	} else {
		label("Shipping", "Free", false)
	}

	pdf.SetFillColor(255, 244, 214)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(145, 8, "Total", "", 0, "R", true, 0, "")
	pdf.CellFormat(45, 8, helpers.FormatAUD(data.Pricing.TotalCents), "", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(contentWidth, 4, "Total includes GST", "", 1, "R", false, 0, "")
	pdf.SetTextColor(30, 30, 30)
	pdf.Ln(4)
}

// inclusionsBlock lists what the selection bundles.
func (rc *renderContext) inclusionsBlock(data types.DocumentData) {
	if len(data.Inclusions) == 0 {
		return
	}
	pdf := rc.pdf

	rc.ensureSpace(data, 10)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentWidth, 7, "What's Included", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, inc := range data.Inclusions {
		rc.ensureSpace(data, 5)
		pdf.CellFormat(contentWidth, 5, "- "+inc, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

// contactFooter closes with how to reach the program team.
func (rc *renderContext) contactFooter() {
	pdf := rc.pdf
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(contentWidth, 5, "Questions? Contact the Mandy Money team at orders@mandymoney.com.au", "", 1, "L", false, 0, "")
	pdf.SetTextColor(30, 30, 30)
}

// qrCode stamps the reference QR in the top-right corner of page one.
func (rc *renderContext) qrCode(reference string) error {
	png, err := qrcode.Encode(reference, qrcode.Medium, 256)
	if err != nil {
		return err
	}

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	rc.pdf.RegisterImageOptionsReader("reference-qr", opts, bytes.NewReader(png))

	rc.pdf.SetPage(1)
	rc.pdf.ImageOptions("reference-qr", 180, 8, 18, 18, false, opts, 0, "")
	rc.pdf.SetPage(rc.pdf.PageCount())
	return nil
}
