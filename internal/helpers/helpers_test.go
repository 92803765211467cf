package helpers_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mandymoney/quote-craft/internal/helpers"
)

func TestGSTCents(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		want     int64
	}{
		{"zero subtotal", 0, 0},
		{"negative subtotal", -100, 0},
		{"exact tenth", 1000, 100},
		{"rounds down below half", 1004, 100},
		{"rounds up at half", 1005, 101},
		{"rounds up above half", 1009, 101},
		{"large subtotal", 799800, 79980},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, helpers.GSTCents(tt.subtotal))
		})
	}
}

func TestRoundPercent(t *testing.T) {
	assert.Equal(t, 20, helpers.RoundPercent(5000, 25000))
	assert.Equal(t, 33, helpers.RoundPercent(1, 3))
	assert.Equal(t, 67, helpers.RoundPercent(2, 3))
	assert.Equal(t, 100, helpers.RoundPercent(10, 10))
}

func TestFormatAUD(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{1500, "$15.00"},
		{803000, "$8,030.00"},
		{123456789, "$1,234,567.89"},
		{-9900, "-$99.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, helpers.FormatAUD(tt.cents))
	}
}

func TestIsBlank(t *testing.T) {
	assert.True(t, helpers.IsBlank(""))
	assert.True(t, helpers.IsBlank("   "))
	assert.True(t, helpers.IsBlank("\t\n"))
	assert.False(t, helpers.IsBlank("x"))
	assert.False(t, helpers.IsBlank("  x  "))
}

func TestIsEmailValid(t *testing.T) {
	valid := []string{
		"jane@school.edu.au",
		"first.last@example.com",
		"  padded@example.com  ",
	}
	for _, email := range valid {
		assert.True(t, helpers.IsEmailValid(email), email)
	}

	invalid := []string{
		"",
		"not-an-email",
		"missing@tld",
		"two words@example.com",
		"@example.com",
		"jane@",
	}
	for _, email := range invalid {
		assert.False(t, helpers.IsEmailValid(email), email)
	}
}

func TestNewQuoteReference(t *testing.T) {
	ref := helpers.NewQuoteReference()

	assert.True(t, strings.HasPrefix(ref, "MM-"))
	assert.Len(t, ref, 9)
	assert.Equal(t, strings.ToUpper(ref), ref)

	// References are random; two in a row should differ.
	assert.NotEqual(t, ref, helpers.NewQuoteReference())
}
