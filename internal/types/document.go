package types

import "time"

// DocumentData is the snapshot handed to the PDF renderer. Both the
// quote and order layouts consume the same shape.
type DocumentData struct {
	Reference          string
	Info               SchoolInfo
	Items              []QuoteItem
	Pricing            Pricing
	TeacherCount       int
	StudentCount       int
	AccessPeriodMonths int
	ProgramStartDate   time.Time
	IsUnlimited        bool
	Inclusions         []string
	GeneratedAt        time.Time
}

// AccessEndDate returns the subscription end date: the access period
// measured from the program start date.
func (d DocumentData) AccessEndDate() time.Time {
	return d.ProgramStartDate.AddDate(0, d.AccessPeriodMonths, 0)
}
