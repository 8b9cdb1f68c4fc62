package game

import (
	"context"
	"fmt"

	"github.com/olivergarza/soccer-rpg/internal/domain"
	"github.com/olivergarza/soccer-rpg/internal/logger"
	"github.com/olivergarza/soccer-rpg/internal/metrics"
)

// SellItem trades an owned item for its sale value. Equipped items may be
// sold; they are simply removed with no automatic re-equip.
func (s *service) SellItem(ctx context.Context, playerID, itemID string) (*Result, error) {
	log := logger.FromContext(ctx)

	var result *Result
	err := s.locks.WithLock(playerID, func() error {
		player, err := s.loadOrCreate(ctx, playerID)
		if err != nil {
			return err
		}

		target := player.ItemByID(itemID)
		if target == nil {
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
		}
		sold := *target

		if err := s.repo.DeleteItem(ctx, sold.ID); err != nil {
			return fmt.Errorf("failed to delete sold item: %w", err)
		}

		player.Gold += sold.Value
		remaining := player.Items[:0]
		for _, item := range player.Items {
			if item.ID != sold.ID {
				remaining = append(remaining, item)
			}
		}
		player.Items = remaining

		if err := s.repo.UpdatePlayer(ctx, *player); err != nil {
			return fmt.Errorf("failed to persist sale: %w", err)
		}

		metrics.ItemsSold.Inc()
		log.Info("Item sold", "player_id", playerID, "item", sold.Name, "gold_gained", sold.Value)

		result = &Result{
			Message:        fmt.Sprintf("You sold %s for %d gold.", sold.Name, sold.Value),
			Player:         player,
			EffectivePower: player.EffectivePower(),
			GoldGained:     sold.Value,
		}
		return nil
	})
	return result, err
}
