package services

import (
	"github.com/mandymoney/quote-craft/internal/helpers"
	"github.com/mandymoney/quote-craft/internal/types"
)

// ValidationLevel names the two gate levels that can report missing
// field labels.
type ValidationLevel string

const (
	LevelEssential ValidationLevel = "essential"
	LevelFull      ValidationLevel = "full"
)

// Field keys used in the error map. These match the client-side field
// identifiers so errors can be attached inline.
const (
	FieldSchoolName       = "schoolName"
	FieldCoordinatorName  = "coordinatorName"
	FieldCoordinatorEmail = "coordinatorEmail"
	FieldContactPhone     = "contactPhone"
	FieldSchoolAddress    = "schoolAddress"
)

// Human-readable labels, in the fixed order they are reported in.
var missingFieldLabels = []struct {
	key   string
	label string
}{
	{FieldSchoolName, "School name"},
	{FieldCoordinatorName, "Coordinator name"},
	{FieldCoordinatorEmail, "Coordinator email"},
	{FieldContactPhone, "Contact phone"},
	{FieldSchoolAddress, "Complete school address"},
}

// ValidationService classifies a SchoolInfo draft into the three
// completeness gates and produces field-level errors. Entirely
// synchronous and deterministic; never mutates its input.
type ValidationService struct{}

// NewValidationService creates a new validation service.
func NewValidationService() *ValidationService {
	return &ValidationService{}
}

// ComputeErrors returns a map containing only the fields that failed.
// An empty map means the draft is fully valid.
func (s *ValidationService) ComputeErrors(info types.SchoolInfo) map[string]string {
	errs := make(map[string]string)

	if helpers.IsBlank(info.SchoolName) {
		errs[FieldSchoolName] = "School name is required"
	}
	if helpers.IsBlank(info.CoordinatorName) {
		errs[FieldCoordinatorName] = "Coordinator name is required"
	}
	if helpers.IsBlank(info.CoordinatorEmail) {
		errs[FieldCoordinatorEmail] = "Coordinator email is required"
	} else if !helpers.IsEmailValid(info.CoordinatorEmail) {
		errs[FieldCoordinatorEmail] = "Coordinator email is not a valid email address"
	}
	if helpers.IsBlank(info.ContactPhone) {
		errs[FieldContactPhone] = "Contact phone is required"
	}
	// An incomplete address yields a single combined error, not
	// per-field errors.
	if !info.SchoolAddress.IsComplete() {
		errs[FieldSchoolAddress] = "Complete school address is required"
	}

	return errs
}

// IsValid reports whether ComputeErrors would be empty. Side-effect
// free so it can drive live UI enablement without flashing messages.
func (s *ValidationService) IsValid(info types.SchoolInfo) bool {
	return len(s.ComputeErrors(info)) == 0
}

// PassesBasic gates "export quote". A quote is exportable with partial
// or no info; only a present-but-malformed coordinator email blocks it.
func (s *ValidationService) PassesBasic(info types.SchoolInfo) bool {
	if helpers.IsBlank(info.CoordinatorEmail) {
		return true
	}
	return helpers.IsEmailValid(info.CoordinatorEmail)
}

// PassesEssential gates "enquire": school name, coordinator name and a
// well-formed coordinator email.
func (s *ValidationService) PassesEssential(info types.SchoolInfo) bool {
	return !helpers.IsBlank(info.SchoolName) &&
		!helpers.IsBlank(info.CoordinatorName) &&
		helpers.IsEmailValid(info.CoordinatorEmail)
}

// PassesFull gates "place order": Essential plus contact phone and a
// complete school address.
func (s *ValidationService) PassesFull(info types.SchoolInfo) bool {
	return s.PassesEssential(info) &&
		!helpers.IsBlank(info.ContactPhone) &&
		info.SchoolAddress.IsComplete()
}

// PassesGate applies the gate for the requested action type: Basic for
// quote export, Essential for enquiry, Full for order.
func (s *ValidationService) PassesGate(action types.AttemptType, info types.SchoolInfo) bool {
	switch action {
	case types.AttemptTypeQuote:
		return s.PassesBasic(info)
	case types.AttemptTypeEnquiry:
		return s.PassesEssential(info)
	case types.AttemptTypeOrder:
		return s.PassesFull(info)
	}
	return false
}

// MissingFieldLabels returns the human labels for fields failing the
// requested level, in declared order, for tooltip display.
func (s *ValidationService) MissingFieldLabels(info types.SchoolInfo, level ValidationLevel) []string {
	failing := map[string]bool{
		FieldSchoolName:       helpers.IsBlank(info.SchoolName),
		FieldCoordinatorName:  helpers.IsBlank(info.CoordinatorName),
		FieldCoordinatorEmail: !helpers.IsEmailValid(info.CoordinatorEmail),
	}
	if level == LevelFull {
		failing[FieldContactPhone] = helpers.IsBlank(info.ContactPhone)
		failing[FieldSchoolAddress] = !info.SchoolAddress.IsComplete()
	}

	labels := []string{}
	for _, entry := range missingFieldLabels {
		if failing[entry.key] {
			labels = append(labels, entry.label)
		}
	}
	return labels
}

// MissingFieldLabelsForAction maps an action to its gate level and
// returns that level's missing labels. Quote export has no missing-field
// concept beyond a malformed email, which is reported as such.
func (s *ValidationService) MissingFieldLabelsForAction(action types.AttemptType, info types.SchoolInfo) []string {
	switch action {
	case types.AttemptTypeEnquiry:
		return s.MissingFieldLabels(info, LevelEssential)
	case types.AttemptTypeOrder:
		return s.MissingFieldLabels(info, LevelFull)
	case types.AttemptTypeQuote:
		if !s.PassesBasic(info) {
			return []string{"Coordinator email"}
		}
	}
	return []string{}
}
