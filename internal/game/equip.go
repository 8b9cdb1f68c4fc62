package game

import (
	"context"
	"fmt"

	"github.com/olivergarza/soccer-rpg/internal/domain"
	"github.com/olivergarza/soccer-rpg/internal/logger"
)

// SetEquipped equips or unequips an owned item. Equipping forces every
// other item in the same slot off first, so at most one item per slot is
// ever equipped. All touched items are persisted as one batch.
func (s *service) SetEquipped(ctx context.Context, playerID, itemID string, equip bool) (*Result, error) {
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

		changed := make([]domain.Item, 0, 2)
		if equip {
			for i := range player.Items {
				sibling := &player.Items[i]
				if sibling.ID != target.ID && sibling.Slot == target.Slot && sibling.Equipped {
					sibling.Equipped = false
					changed = append(changed, *sibling)
				}
			}
		}
		target.Equipped = equip
		changed = append(changed, *target)

		if err := s.repo.UpdateItems(ctx, changed); err != nil {
			return fmt.Errorf("failed to persist equipment change: %w", err)
		}

		verb := "unequipped"
		if equip {
			verb = "equipped"
		}
		log.Info("Equipment changed", "player_id", playerID, "item", target.Name, "equipped", equip)

		result = &Result{
			Message:        fmt.Sprintf("You %s %s.", verb, target.Name),
			Player:         player,
			EffectivePower: player.EffectivePower(),
		}
		return nil
	})
	return result, err
}
