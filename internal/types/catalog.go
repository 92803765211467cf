package types

// TierType discriminates the two per-seat tier variants.
type TierType string

const (
	TierTypeTeacher TierType = "teacher"
	TierTypeStudent TierType = "student"
)

// TierBasePrice holds the list prices for a per-seat tier in cents.
type TierBasePrice struct {
	TeacherCents int64 `json:"teacher_cents"`
	StudentCents int64 `json:"student_cents"`
}

// TierInclusions lists what a tier bundles, grouped by audience.
type TierInclusions struct {
	Teacher   []string `json:"teacher"`
	Student   []string `json:"student"`
	Classroom []string `json:"classroom"`
}

// PricingTier is a catalog-defined per-seat pricing bundle. Immutable
// catalog data, never user-editable.
type PricingTier struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Type        TierType       `json:"type"`
	Description string         `json:"description"`
	BasePrice   TierBasePrice  `json:"base_price"`
	Inclusions  TierInclusions `json:"inclusions"`
	NotIncluded []string       `json:"not_included"`
}

// UnlimitedAddOnPrices holds the per-unit prices for the hard-copy
// add-ons available with the unlimited tier, in cents.
type UnlimitedAddOnPrices struct {
	TeacherBooksCents int64 `json:"teacher_books_cents"`
	StudentBooksCents int64 `json:"student_books_cents"`
	PosterA0Cents     int64 `json:"poster_a0_cents"`
}

// UnlimitedTier is the whole-school alternative to the teacher/student
// tier pair. Selecting it means per-seat tiers are not used.
type UnlimitedTier struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Description    string               `json:"description"`
	BasePriceCents int64                `json:"base_price_cents"`
	AddOns         UnlimitedAddOnPrices `json:"add_ons"`
	Inclusions     []string             `json:"inclusions"`
	BestFor        string               `json:"best_for"`
}
