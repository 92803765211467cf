package types

import "strings"

// AddressComponents is a structured postal address. No field is required
// at the type level; completeness rules live in the validation service.
type AddressComponents struct {
	StreetNumber string `json:"street_number"`
	StreetName   string `json:"street_name"`
	Suburb       string `json:"suburb"`
	State        string `json:"state"`
	Postcode     string `json:"postcode"`
	Country      string `json:"country"`
}

// IsComplete reports whether street number, street name, suburb, state
// and postcode are all non-empty after trimming. Country is not part of
// the completeness rule.
func (a AddressComponents) IsComplete() bool {
	for _, field := range []string{a.StreetNumber, a.StreetName, a.Suburb, a.State, a.Postcode} {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}

// OneLine renders the address as a single display line, skipping empty parts.
func (a AddressComponents) OneLine() string {
	street := strings.TrimSpace(strings.TrimSpace(a.StreetNumber) + " " + strings.TrimSpace(a.StreetName))
	parts := []string{street, a.Suburb, a.State, a.Postcode, a.Country}

	var present []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			present = append(present, trimmed)
		}
	}
	return strings.Join(present, ", ")
}
