package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mandymoney/quote-craft/internal/catalog"
)

func TestStudentPriceCents(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  int64
	}{
		{"zero students pay list", 0, 8800},
		{"below first band pays list", 49, 8800},
		{"first band boundary", 50, 8250},
		{"inside first band", 99, 8250},
		{"second band boundary", 100, 7700},
		{"inside second band", 199, 7700},
		{"top band boundary", 200, 7150},
		{"above top band", 1000, 7150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.StudentPriceCents(tt.count))
		})
	}
}

func TestTierByID(t *testing.T) {
	teacher, err := catalog.TierByID(catalog.TeacherTierID)
	require.NoError(t, err)
	assert.Equal(t, int64(14900), teacher.BasePrice.TeacherCents)

	student, err := catalog.TierByID(catalog.StudentTierID)
	require.NoError(t, err)
	assert.Equal(t, int64(8800), student.BasePrice.StudentCents)

	_, err = catalog.TierByID("nonexistent")
	assert.Error(t, err)
}

func TestUnlimitedByID(t *testing.T) {
	unlimited, err := catalog.UnlimitedByID(catalog.UnlimitedTierID)
	require.NoError(t, err)
	assert.Equal(t, int64(999000), unlimited.BasePriceCents)

	_, err = catalog.UnlimitedByID("nonexistent")
	assert.Error(t, err)
}

func TestIsValidAccessPeriod(t *testing.T) {
	for _, months := range catalog.AccessPeriodMonths {
		assert.True(t, catalog.IsValidAccessPeriod(months))
	}
	assert.False(t, catalog.IsValidAccessPeriod(0))
	assert.False(t, catalog.IsValidAccessPeriod(6))
	assert.False(t, catalog.IsValidAccessPeriod(36))
}

func TestTiersAreOrdered(t *testing.T) {
	tiers := catalog.Tiers()
	require.Len(t, tiers, 2)
	assert.Equal(t, catalog.TeacherTierID, tiers[0].ID)
	assert.Equal(t, catalog.StudentTierID, tiers[1].ID)
}
