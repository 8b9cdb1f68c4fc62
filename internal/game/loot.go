package game

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/olivergarza/soccer-rpg/internal/domain"
)

// extraLegendaryChance converts the pity counter into a bonus legendary
// probability. Below the threshold there is no bonus; above it the bonus
// grows quadratically with the overflow and is capped.
func extraLegendaryChance(pity int) float64 {
	if pity <= PityThreshold {
		return 0
	}
	factor := math.Pow(float64(pity-PityThreshold)/10.0+1.0, 2)
	return math.Min(PityMaxExtraChance, factor*PityStepChance)
}

// rollRarity selects a rarity tier for one chest roll.
// Both tiers are tested against the same raw roll: the legendary check
// short-circuits first, so the rare band spans [legendary chance, 0.40)
// and shrinks as the pity bonus grows.
func (s *service) rollRarity(pity int) domain.Rarity {
	roll := s.rnd()
	switch {
	case roll < BaseLegendaryChance+extraLegendaryChance(pity):
		return domain.RarityLegendary
	case roll < RareChance:
		return domain.RarityRare
	default:
		return domain.RarityCommon
	}
}

// generateItem produces a randomized item of the given rarity for a player
func (s *service) generateItem(playerID string, rarity domain.Rarity) domain.Item {
	slot := domain.ItemSlots[s.intn(len(domain.ItemSlots))]
	mult := rarity.PowerMultiplier()
	return domain.Item{
		ID:       uuid.NewString(),
		Name:     fmt.Sprintf("%s %s", slot, rarity),
		Slot:     slot,
		Power:    (2 + s.intn(4)) * mult,
		Value:    (20 + s.intn(20)) * mult,
		Rarity:   rarity,
		Equipped: false,
		PlayerID: playerID,
	}
}
