// Package catalog holds the immutable pricing catalog: the per-seat
// tiers, the unlimited tier, volume-discount bands and the shipping/GST
// constants. Loaded once, read-only, keyed by tier id.
package catalog

import (
	"fmt"

	"github.com/mandymoney/quote-craft/internal/types"
)

const (
	// FreeShippingThresholdCents: orders with a subtotal at or above
	// this amount ship free. A $90.00 subtotal ships free.
	FreeShippingThresholdCents int64 = 9000

	// ShippingFeeCents is the flat fee below the free-shipping threshold.
	ShippingFeeCents int64 = 1500

	// GSTRatePercent is the flat Australian GST rate.
	GSTRatePercent = 10
)

// AccessPeriodMonths lists the valid subscription durations measured
// from the program start date.
var AccessPeriodMonths = []int{12, 18, 24}

// DefaultAccessPeriodMonths is applied to new sessions.
const DefaultAccessPeriodMonths = 12

// Tier IDs.
const (
	TeacherTierID   = "hs-teacher"
	StudentTierID   = "hs-student"
	UnlimitedTierID = "hs-unlimited"
)

var teacherTier = types.PricingTier{
	ID:          TeacherTierID,
	Name:        "Teacher Licence",
	Type:        types.TierTypeTeacher,
	Description: "Full digital access and teaching resources for one teacher",
	BasePrice:   types.TierBasePrice{TeacherCents: 14900},
	Inclusions: types.TierInclusions{
		Teacher: []string{
			"12-month digital platform access",
			"Full lesson plan library",
			"Assessment and marking guides",
			"Teacher hard-copy textbook",
		},
		Classroom: []string{
			"Classroom progress dashboard",
			"Printable activity packs",
		},
	},
	NotIncluded: []string{"Student accounts", "Student textbooks"},
}

var studentTier = types.PricingTier{
	ID:          StudentTierID,
	Name:        "Student Licence",
	Type:        types.TierTypeStudent,
	Description: "Digital platform access for one student",
	BasePrice:   types.TierBasePrice{StudentCents: 8800},
	Inclusions: types.TierInclusions{
		Student: []string{
			"12-month digital platform access",
			"Interactive money lessons",
			"Digital workbook",
		},
	},
	NotIncluded: []string{"Hard-copy textbooks"},
}

var unlimitedTier = types.UnlimitedTier{
	ID:             UnlimitedTierID,
	Name:           "Whole School Unlimited",
	Description:    "Unlimited teacher and student access for the whole school",
	BasePriceCents: 999000,
	AddOns: types.UnlimitedAddOnPrices{
		TeacherBooksCents: 6500,
		StudentBooksCents: 4500,
		PosterA0Cents:     3900,
	},
	Inclusions: []string{
		"Unlimited teacher accounts",
		"Unlimited student accounts",
		"Full lesson plan library",
		"Classroom progress dashboards",
		"Priority support",
	},
	BestFor: "Schools running the program across multiple year levels",
}

// volumeBand maps a minimum student count to an effective per-student
// price. Bands are checked from the largest minimum down.
type volumeBand struct {
	minStudents int
	priceCents  int64
}

var studentVolumeBands = []volumeBand{
	{minStudents: 200, priceCents: 7150},
	{minStudents: 100, priceCents: 7700},
	{minStudents: 50, priceCents: 8250},
}

// Tiers returns the per-seat tiers in display order.
func Tiers() []types.PricingTier {
	return []types.PricingTier{teacherTier, studentTier}
}

// TierByID looks up a per-seat tier.
func TierByID(id string) (types.PricingTier, error) {
	switch id {
	case TeacherTierID:
		return teacherTier, nil
	case StudentTierID:
		return studentTier, nil
	}
	return types.PricingTier{}, fmt.Errorf("unknown tier id: %s", id)
}

// Unlimited returns the whole-school tier.
func Unlimited() types.UnlimitedTier {
	return unlimitedTier
}

// UnlimitedByID looks up the unlimited tier by id.
func UnlimitedByID(id string) (types.UnlimitedTier, error) {
	if id == UnlimitedTierID {
		return unlimitedTier, nil
	}
	return types.UnlimitedTier{}, fmt.Errorf("unknown unlimited tier id: %s", id)
}

// StudentPriceCents returns the effective per-student price for the
// given student count, applying the volume-discount bands. Counts below
// the first band pay the list price.
func StudentPriceCents(studentCount int) int64 {
	for _, band := range studentVolumeBands {
		if studentCount >= band.minStudents {
			return band.priceCents
		}
	}
	return studentTier.BasePrice.StudentCents
}

// IsValidAccessPeriod reports whether months is a supported access period.
func IsValidAccessPeriod(months int) bool {
	for _, m := range AccessPeriodMonths {
		if m == months {
			return true
		}
	}
	return false
}
