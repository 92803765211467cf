package types

// SelectionMode discriminates the two mutually exclusive catalog choices.
type SelectionMode string

const (
	SelectionModeTierPair  SelectionMode = "tier_pair"
	SelectionModeUnlimited SelectionMode = "unlimited"
)

// AddOnCounts holds the requested quantities of the unlimited-tier
// hard-copy add-ons. All counts are non-negative.
type AddOnCounts struct {
	TeacherBooks int `json:"teacher_books"`
	StudentBooks int `json:"student_books"`
	PosterA0     int `json:"poster_a0"`
}

// TeacherStudentSelection is a per-seat tier combination with volume counts.
type TeacherStudentSelection struct {
	TeacherTierID string `json:"teacher_tier_id"`
	StudentTierID string `json:"student_tier_id"`
	TeacherCount  int    `json:"teacher_count"`
	StudentCount  int    `json:"student_count"`
}

// UnlimitedSelection is a whole-school unlimited tier with optional add-ons.
type UnlimitedSelection struct {
	TierID string      `json:"tier_id"`
	AddOns AddOnCounts `json:"add_ons"`
}

// Selection is a tagged union: exactly one of TierPair or Unlimited is
// set, discriminated by Mode. Replaces the loose duck-typed tier object
// of earlier iterations so the pricing engine's two modes are handled
// exhaustively.
type Selection struct {
	Mode      SelectionMode            `json:"mode"`
	TierPair  *TeacherStudentSelection `json:"tier_pair,omitempty"`
	Unlimited *UnlimitedSelection      `json:"unlimited,omitempty"`
}

// IsUnlimited reports whether the unlimited branch is selected.
func (s Selection) IsUnlimited() bool {
	return s.Mode == SelectionModeUnlimited && s.Unlimited != nil
}
