package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mandymoney/quote-craft/internal/services"
	"github.com/mandymoney/quote-craft/internal/types"
)

func completeInfo() types.SchoolInfo {
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

func TestPassesBasic(t *testing.T) {
	service := services.NewValidationService()

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"no email at all", "", true},
		{"whitespace only", "   ", true},
		{"well-formed email", "jane@springfield.edu.au", true},
		{"malformed email", "not-an-email", false},
		{"missing tld", "jane@springfield", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := types.SchoolInfo{CoordinatorEmail: tt.email}
			assert.Equal(t, tt.want, service.PassesBasic(info))
		})
	}
}

func TestPassesEssential(t *testing.T) {
	service := services.NewValidationService()

	info := completeInfo()
	assert.True(t, service.PassesEssential(info))

	// Essential ignores phone and address entirely.
	info.ContactPhone = ""
	info.SchoolAddress = types.AddressComponents{}
	assert.True(t, service.PassesEssential(info))

	for _, mutate := range []func(*types.SchoolInfo){
		func(i *types.SchoolInfo) { i.SchoolName = "" },
		func(i *types.SchoolInfo) { i.CoordinatorName = "  " },
		func(i *types.SchoolInfo) { i.CoordinatorEmail = "" },
		func(i *types.SchoolInfo) { i.CoordinatorEmail = "broken" },
	} {
		broken := completeInfo()
		mutate(&broken)
		assert.False(t, service.PassesEssential(broken))
	}
}

func TestPassesFull(t *testing.T) {
	service := services.NewValidationService()

	assert.True(t, service.PassesFull(completeInfo()))

	missingPhone := completeInfo()
	missingPhone.ContactPhone = ""
	assert.False(t, service.PassesFull(missingPhone))

	partialAddress := completeInfo()
	partialAddress.SchoolAddress.Postcode = ""
	assert.False(t, service.PassesFull(partialAddress))
}

// Full is a strict superset of Essential: anything passing Full must
// also pass Essential.
func TestGateMonotonicity(t *testing.T) {
	service := services.NewValidationService()

	infos := []types.SchoolInfo{
		{},
		{SchoolName: "Springfield High"},
		{CoordinatorEmail: "jane@springfield.edu.au"},
		completeInfo(),
	}

	for _, info := range infos {
		if service.PassesFull(info) {
			assert.True(t, service.PassesEssential(info))
		}
		if service.PassesEssential(info) {
			assert.True(t, service.PassesBasic(info))
		}
	}
}

func TestPassesGate(t *testing.T) {
	service := services.NewValidationService()
	info := types.SchoolInfo{
		SchoolName:       "Springfield High",
		CoordinatorName:  "Jane Citizen",
		CoordinatorEmail: "jane@springfield.edu.au",
	}

	assert.True(t, service.PassesGate(types.AttemptTypeQuote, info))
	assert.True(t, service.PassesGate(types.AttemptTypeEnquiry, info))
	assert.False(t, service.PassesGate(types.AttemptTypeOrder, info))
	assert.False(t, service.PassesGate(types.AttemptType("bogus"), info))
}

func TestComputeErrors(t *testing.T) {
	service := services.NewValidationService()

	errs := service.ComputeErrors(types.SchoolInfo{})
	assert.Len(t, errs, 5)
	assert.Equal(t, "School name is required", errs[services.FieldSchoolName])
	assert.Equal(t, "Coordinator email is required", errs[services.FieldCoordinatorEmail])
	assert.Equal(t, "Complete school address is required", errs[services.FieldSchoolAddress])

	malformed := completeInfo()
	malformed.CoordinatorEmail = "not-an-email"
	errs = service.ComputeErrors(malformed)
	assert.Len(t, errs, 1)
	assert.Equal(t, "Coordinator email is not a valid email address", errs[services.FieldCoordinatorEmail])

	assert.Empty(t, service.ComputeErrors(completeInfo()))
	assert.True(t, service.IsValid(completeInfo()))
	assert.False(t, service.IsValid(types.SchoolInfo{}))
}

// ComputeErrors is pure: repeated calls agree and the input is never
// mutated.
func TestComputeErrorsIsIdempotent(t *testing.T) {
	service := services.NewValidationService()

	info := completeInfo()
	info.CoordinatorEmail = "broken"
	before := info

	first := service.ComputeErrors(info)
	second := service.ComputeErrors(info)

	assert.Equal(t, first, second)
	assert.Equal(t, before, info)
}

func TestMissingFieldLabelsOrder(t *testing.T) {
	service := services.NewValidationService()

	essential := service.MissingFieldLabels(types.SchoolInfo{}, services.LevelEssential)
	assert.Equal(t, []string{"School name", "Coordinator name", "Coordinator email"}, essential)

	full := service.MissingFieldLabels(types.SchoolInfo{}, services.LevelFull)
	assert.Equal(t, []string{
		"School name",
		"Coordinator name",
		"Coordinator email",
		"Contact phone",
		"Complete school address",
	}, full)
}

func TestMissingFieldLabelsForAction(t *testing.T) {
	service := services.NewValidationService()

	// Quote export only complains about a present-but-malformed email.
	assert.Empty(t, service.MissingFieldLabelsForAction(types.AttemptTypeQuote, types.SchoolInfo{}))

	malformed := types.SchoolInfo{CoordinatorEmail: "broken"}
	assert.Equal(t, []string{"Coordinator email"},
		service.MissingFieldLabelsForAction(types.AttemptTypeQuote, malformed))

	missingPhone := completeInfo()
	missingPhone.ContactPhone = " "
	assert.Equal(t, []string{"Contact phone"},
		service.MissingFieldLabelsForAction(types.AttemptTypeOrder, missingPhone))

	assert.Equal(t, []string{"School name", "Coordinator name", "Coordinator email"},
		service.MissingFieldLabelsForAction(types.AttemptTypeEnquiry, types.SchoolInfo{}))
}
