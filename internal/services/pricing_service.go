package services

import (
	"go.uber.org/zap"

	"github.com/mandymoney/quote-craft/internal/catalog"
	"github.com/mandymoney/quote-craft/internal/helpers"
	"github.com/mandymoney/quote-craft/internal/logger"
	"github.com/mandymoney/quote-craft/internal/types"
)

// PricingService computes the ordered line-item breakdown and totals for
// either a teacher/student tier combination or an unlimited-tier
// selection with optional hard-copy add-ons.
//
// Precondition: counts are non-negative. Callers clamp user input before
// invoking the engine; negative counts are a contract violation, not a
// handled runtime path.
type PricingService struct {
	logger *zap.Logger
}

// NewPricingService creates a new pricing service.
func NewPricingService() *PricingService {
	return &PricingService{
		logger: logger.Log,
	}
}

// CombinationParams are the inputs for combination mode. StudentPriceCents
// is the effective per-student price, which may already reflect volume
// discounting and is distinct from the tier's list price.
type CombinationParams struct {
	TeacherTier       *types.PricingTier
	StudentTier       *types.PricingTier
	TeacherCount      int
	StudentCount      int
	StudentPriceCents int64
}

// UnlimitedParams are the inputs for unlimited mode.
type UnlimitedParams struct {
	Tier   types.UnlimitedTier
	AddOns types.AddOnCounts
}

// PriceCombination prices a teacher-tier + student-tier combination.
// Either tier may be nil, in which case no item is emitted for it.
func (s *PricingService) PriceCombination(params CombinationParams) types.QuoteBreakdown {
	var items []types.QuoteItem
	var volumeSavings int64

	if params.TeacherTier != nil {
		unit := params.TeacherTier.BasePrice.TeacherCents
		items = append(items, types.QuoteItem{
			Item:            params.TeacherTier.Name,
			Count:           params.TeacherCount,
			UnitPriceCents:  unit,
			TotalPriceCents: unit * int64(params.TeacherCount),
			Type:            types.QuoteItemTypeTeacher,
			Description:     params.TeacherTier.Description,
		})
	}

	if params.StudentTier != nil {
		unit := params.StudentPriceCents
		item := types.QuoteItem{
			Item:            params.StudentTier.Name,
			Count:           params.StudentCount,
			UnitPriceCents:  unit,
			TotalPriceCents: unit * int64(params.StudentCount),
			Type:            types.QuoteItemTypeStudent,
			Description:     params.StudentTier.Description,
		}
		if list := params.StudentTier.BasePrice.StudentCents; unit < list {
			item.SavingsCents = list - unit
			volumeSavings = item.SavingsCents * int64(params.StudentCount)
		}
		items = append(items, item)
	}

	return types.QuoteBreakdown{
		Items:              items,
		Pricing:            s.finalize(items),
		VolumeSavingsCents: volumeSavings,
	}
}

// PriceUnlimited prices an unlimited-tier selection: one base item plus
// one item per add-on category with a non-zero count.
func (s *PricingService) PriceUnlimited(params UnlimitedParams) types.QuoteBreakdown {
	items := []types.QuoteItem{{
		Item:            params.Tier.Name,
		Count:           1,
		UnitPriceCents:  params.Tier.BasePriceCents,
		TotalPriceCents: params.Tier.BasePriceCents,
		Type:            types.QuoteItemTypeUnlimited,
		Description:     params.Tier.Description,
	}}

	addOns := []struct {
		name      string
		count     int
		unitCents int64
	}{
		{"Additional Teacher Books", params.AddOns.TeacherBooks, params.Tier.AddOns.TeacherBooksCents},
		{"Additional Student Books", params.AddOns.StudentBooks, params.Tier.AddOns.StudentBooksCents},
		{"A0 Classroom Poster", params.AddOns.PosterA0, params.Tier.AddOns.PosterA0Cents},
	}
	for _, a := range addOns {
		if a.count <= 0 {
			continue
		}
		items = append(items, types.QuoteItem{
			Item:            a.name,
			Count:           a.count,
			UnitPriceCents:  a.unitCents,
			TotalPriceCents: a.unitCents * int64(a.count),
			Type:            types.QuoteItemTypeAddOn,
			Description:     "Hard-copy add-on",
		})
	}

	return types.QuoteBreakdown{
		Items:   items,
		Pricing: s.finalize(items),
	}
}

// UnlimitedSavings compares the unlimited total against the
// combination-mode total for the same counts at list price. The percent
// is suppressed (nil) when the regular total is zero.
func (s *PricingService) UnlimitedSavings(unlimited types.Pricing, teacherCount, studentCount int) (int64, *int) {
	teacherTier, _ := catalog.TierByID(catalog.TeacherTierID)
	studentTier, _ := catalog.TierByID(catalog.StudentTierID)

	regular := s.PriceCombination(CombinationParams{
		TeacherTier:       &teacherTier,
		StudentTier:       &studentTier,
		TeacherCount:      teacherCount,
		StudentCount:      studentCount,
		StudentPriceCents: studentTier.BasePrice.StudentCents,
	})

	if regular.Pricing.TotalCents == 0 {
		return 0, nil
	}

	savings := regular.Pricing.TotalCents - unlimited.TotalCents
	percent := helpers.RoundPercent(savings, regular.Pricing.TotalCents)
	return savings, &percent
}

// finalize sums the items and applies the GST and shipping rules:
// GST is 10% of the subtotal rounded half-up; shipping is waived at or
// above the free-shipping threshold (and on an empty quote); the total
// is subtotal + GST + shipping.
func (s *PricingService) finalize(items []types.QuoteItem) types.Pricing {
	var subtotal int64
	for _, item := range items {
		subtotal += item.TotalPriceCents
	}

	gst := helpers.GSTCents(subtotal)

	var shipping int64
	if subtotal > 0 && subtotal < catalog.FreeShippingThresholdCents {
		shipping = catalog.ShippingFeeCents
	}

	return types.Pricing{
		SubtotalCents: subtotal,
		GSTCents:      gst,
		ShippingCents: shipping,
		TotalCents:    subtotal + gst + shipping,
	}
}
