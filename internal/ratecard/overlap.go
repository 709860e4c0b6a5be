package ratecard

import (
	"time"

	"trucklog-backend/internal/models"
)

// Overlaps reports whether two effective windows intersect. A nil
// EffectiveTo is an open-ended window.
func Overlaps(a, b models.RateCard) bool {
	// a starts after b ends
	if b.EffectiveTo != nil && a.EffectiveFrom.After(*b.EffectiveTo) {
		return false
	}
	// b starts after a ends
	if a.EffectiveTo != nil && b.EffectiveFrom.After(*a.EffectiveTo) {
		return false
	}
	return true
}

// FindConflict returns the first existing card for the same party and
// material whose window overlaps the candidate, skipping the candidate
// itself (relevant on update).
func FindConflict(candidate models.RateCard, existing []models.RateCard) *models.RateCard {
	for i := range existing {
		other := existing[i]
		if other.ID == candidate.ID {
			continue
		}
		if other.PartyType != candidate.PartyType || other.PartyID != candidate.PartyID || other.MaterialID != candidate.MaterialID {
			continue
		}
		if Overlaps(candidate, other) {
			return &other
		}
	}
	return nil
}

// RateFor picks the card in effect for the given party, material and date.
// Returns false when no window covers the date.
func RateFor(cards []models.RateCard, partyType models.PartyType, partyID, materialID uint, date time.Time) (float64, bool) {
	for i := range cards {
		card := cards[i]
		if card.PartyType != partyType || card.PartyID != partyID || card.MaterialID != materialID {
			continue
		}
		if date.Before(card.EffectiveFrom) {
			continue
		}
		if card.EffectiveTo != nil && date.After(*card.EffectiveTo) {
			continue
		}
		return card.RatePerTon, true
	}
	return 0, false
}
