package helpers

import (
	"strings"

	"github.com/google/uuid"
)

// NewQuoteReference generates a short uppercase reference token for a
// quote attempt, e.g. "MM-3F9A2C". Stamped on documents and log records
// so an operator can correlate the two.
func NewQuoteReference() string {
	id := uuid.New().String()
	token := strings.ToUpper(strings.ReplaceAll(id, "-", ""))[:6]
	return "MM-" + token
}
