package ratecard

import (
	"testing"
	"time"

	"trucklog-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func day(d string) time.Time {
	t, err := time.Parse("2006-01-02", d)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(d string) *time.Time {
	t := day(d)
	return &t
}

func card(id uint, pt models.PartyType, partyID, materialID uint, from string, to *time.Time, rate float64) models.RateCard {
	return models.RateCard{
		ID:            id,
		PartyType:     pt,
		PartyID:       partyID,
		MaterialID:    materialID,
		RatePerTon:    rate,
		EffectiveFrom: day(from),
		EffectiveTo:   to,
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b models.RateCard
		want bool
	}{
		{
			name: "disjoint windows",
			a:    card(1, models.PartyTypeCustomer, 1, 1, "2025-01-01", dayPtr("2025-03-31"), 500),
			b:    card(2, models.PartyTypeCustomer, 1, 1, "2025-04-01", dayPtr("2025-06-30"), 550),
			want: false,
		},
		{
			name: "touching boundary day overlaps",
			a:    card(1, models.PartyTypeCustomer, 1, 1, "2025-01-01", dayPtr("2025-03-31"), 500),
			b:    card(2, models.PartyTypeCustomer, 1, 1, "2025-03-31", dayPtr("2025-06-30"), 550),
			want: true,
		},
		{
			name: "contained window",
			a:    card(1, models.PartyTypeCustomer, 1, 1, "2025-01-01", dayPtr("2025-12-31"), 500),
			b:    card(2, models.PartyTypeCustomer, 1, 1, "2025-03-01", dayPtr("2025-03-31"), 550),
			want: true,
		},
		{
			name: "open-ended catches later window",
			a:    card(1, models.PartyTypeCustomer, 1, 1, "2025-01-01", nil, 500),
			b:    card(2, models.PartyTypeCustomer, 1, 1, "2026-05-01", dayPtr("2026-06-30"), 550),
			want: true,
		},
		{
			name: "open-ended starts after closed window ends",
			a:    card(1, models.PartyTypeCustomer, 1, 1, "2025-07-01", nil, 500),
			b:    card(2, models.PartyTypeCustomer, 1, 1, "2025-01-01", dayPtr("2025-06-30"), 550),
			want: false,
		},
		{
			name: "two open-ended windows always overlap",
			a:    card(1, models.PartyTypeCustomer, 1, 1, "2025-01-01", nil, 500),
			b:    card(2, models.PartyTypeCustomer, 1, 1, "2027-01-01", nil, 550),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestFindConflict(t *testing.T) {
	existing := []models.RateCard{
		card(1, models.PartyTypeCustomer, 1, 1, "2025-01-01", dayPtr("2025-06-30"), 500),
		card(2, models.PartyTypeCustomer, 2, 1, "2025-01-01", nil, 480),
		card(3, models.PartyTypeQuarry, 1, 1, "2025-01-01", nil, 300),
	}

	t.Run("different party does not conflict", func(t *testing.T) {
		cand := card(0, models.PartyTypeCustomer, 9, 1, "2025-02-01", nil, 510)
		assert.Nil(t, FindConflict(cand, existing))
	})

	t.Run("same party and material conflicts", func(t *testing.T) {
		cand := card(0, models.PartyTypeCustomer, 1, 1, "2025-06-01", nil, 520)
		got := FindConflict(cand, existing)
		if assert.NotNil(t, got) {
			assert.Equal(t, uint(1), got.ID)
		}
	})

	t.Run("same party id across types does not conflict", func(t *testing.T) {
		cand := card(0, models.PartyTypeQuarry, 2, 1, "2025-02-01", nil, 310)
		assert.Nil(t, FindConflict(cand, existing))
	})

	t.Run("update skips itself", func(t *testing.T) {
		cand := card(1, models.PartyTypeCustomer, 1, 1, "2025-01-01", dayPtr("2025-05-31"), 505)
		assert.Nil(t, FindConflict(cand, []models.RateCard{existing[0]}))
	})
}

func TestRateFor(t *testing.T) {
	cards := []models.RateCard{
		card(1, models.PartyTypeCustomer, 1, 1, "2025-01-01", dayPtr("2025-06-30"), 500),
		card(2, models.PartyTypeCustomer, 1, 1, "2025-07-01", nil, 550),
	}

	rate, ok := RateFor(cards, models.PartyTypeCustomer, 1, 1, day("2025-03-15"))
	assert.True(t, ok)
	assert.Equal(t, 500.0, rate)

	rate, ok = RateFor(cards, models.PartyTypeCustomer, 1, 1, day("2025-12-01"))
	assert.True(t, ok)
	assert.Equal(t, 550.0, rate)

	_, ok = RateFor(cards, models.PartyTypeCustomer, 1, 1, day("2024-12-31"))
	assert.False(t, ok)

	_, ok = RateFor(cards, models.PartyTypeQuarry, 1, 1, day("2025-03-15"))
	assert.False(t, ok)
}
