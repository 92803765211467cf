package types

// QuoteItemType labels a line item for badge rendering on documents.
type QuoteItemType string

const (
	QuoteItemTypeTeacher   QuoteItemType = "teacher"
	QuoteItemTypeStudent   QuoteItemType = "student"
	QuoteItemTypeUnlimited QuoteItemType = "unlimited"
	QuoteItemTypeAddOn     QuoteItemType = "addon"
)

// QuoteItem is one row in the priced breakdown. TotalPriceCents always
// equals Count * UnitPriceCents; any per-unit saving is already baked
// into UnitPriceCents and recorded in SavingsCents for display.
type QuoteItem struct {
	Item            string        `json:"item"`
	Count           int           `json:"count"`
	UnitPriceCents  int64         `json:"unit_price_cents"`
	TotalPriceCents int64         `json:"total_price_cents"`
	Type            QuoteItemType `json:"type"`
	Description     string        `json:"description"`
	SavingsCents    int64         `json:"savings_cents,omitempty"` // per unit
}

// Pricing is the financial summary for a breakdown.
// Invariant: TotalCents == SubtotalCents + GSTCents + ShippingCents.
type Pricing struct {
	SubtotalCents int64 `json:"subtotal_cents"`
	GSTCents      int64 `json:"gst_cents"`
	TotalCents    int64 `json:"total_cents"`
	ShippingCents int64 `json:"shipping_cents"`
}

// QuoteBreakdown is the full derived output of the pricing engine for
// the current selection: the ordered line items, the summary, and the
// savings figures surfaced on the quote view.
type QuoteBreakdown struct {
	Items   []QuoteItem `json:"items"`
	Pricing Pricing     `json:"pricing"`

	// VolumeSavingsCents is the aggregate per-seat volume discount
	// (per-unit saving * student count). Zero when no discount applies.
	VolumeSavingsCents int64 `json:"volume_savings_cents"`

	// SavingsCents and PercentSavings compare the unlimited tier against
	// the combination-mode total at list price. PercentSavings is nil
	// when the regular total is zero (suppressed rather than divided).
	SavingsCents   int64 `json:"savings_cents,omitempty"`
	PercentSavings *int  `json:"percent_savings,omitempty"`
}
