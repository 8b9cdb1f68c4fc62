package game

import (
	"context"
	"fmt"

	"github.com/olivergarza/soccer-rpg/internal/domain"
	"github.com/olivergarza/soccer-rpg/internal/logger"
	"github.com/olivergarza/soccer-rpg/internal/metrics"
)

// OpenChest rolls a rarity tier with the pity-adjusted selector, generates
// an item of that tier and adds it to the player's collection. A legendary
// drop resets the pity counter; anything else increments it.
func (s *service) OpenChest(ctx context.Context, playerID string) (*Result, error) {
	log := logger.FromContext(ctx)

	var result *Result
	err := s.locks.WithLock(playerID, func() error {
		player, err := s.loadOrCreate(ctx, playerID)
		if err != nil {
			return err
		}

		rarity := s.rollRarity(player.LegendaryPity)
		item := s.generateItem(playerID, rarity)

		if rarity == domain.RarityLegendary {
			player.LegendaryPity = 0
		} else {
			player.LegendaryPity++
		}

		if err := s.repo.InsertItem(ctx, &item); err != nil {
			return fmt.Errorf("failed to persist chest item: %w", err)
		}
		player.Items = append(player.Items, item)

		if err := s.repo.UpdatePlayer(ctx, *player); err != nil {
			return fmt.Errorf("failed to persist chest open: %w", err)
		}

		metrics.ChestsOpened.WithLabelValues(string(rarity)).Inc()
		log.Info("Chest opened", "player_id", playerID, "rarity", rarity, "item", item.Name, "pity", player.LegendaryPity)

		result = &Result{
			Message:        chestMessage(rarity, item),
			Outcome:        string(rarity),
			Player:         player,
			EffectivePower: player.EffectivePower(),
			Item:           &item,
		}
		return nil
	})
	return result, err
}

func chestMessage(rarity domain.Rarity, item domain.Item) string {
	switch rarity {
	case domain.RarityLegendary:
		return fmt.Sprintf("LEGENDARY! The chest held %s (+%d power).", item.Name, item.Power)
	case domain.RarityRare:
		return fmt.Sprintf("Nice find! The chest held %s (+%d power).", item.Name, item.Power)
	default:
		return fmt.Sprintf("The chest held %s (+%d power).", item.Name, item.Power)
	}
}
