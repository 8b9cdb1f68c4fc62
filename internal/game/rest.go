package game

import (
	"context"
	"fmt"

	"github.com/olivergarza/soccer-rpg/internal/domain"
	"github.com/olivergarza/soccer-rpg/internal/logger"
)

// Rest restores energy to the full cap. The restored delta is reported so
// callers can show how much was actually recovered.
func (s *service) Rest(ctx context.Context, playerID string) (*Result, error) {
	log := logger.FromContext(ctx)

	var result *Result
	err := s.locks.WithLock(playerID, func() error {
		player, err := s.loadOrCreate(ctx, playerID)
		if err != nil {
			return err
		}

		restored := domain.EnergyMax - player.Energy
		player.Energy = domain.EnergyMax
		player.ClampEnergy()

		if err := s.repo.UpdatePlayer(ctx, *player); err != nil {
			return fmt.Errorf("failed to persist rest: %w", err)
		}

		log.Info("Player rested", "player_id", playerID, "energy_restored", restored)

		result = &Result{
			Message:        "You feel rested and ready to go.",
			Player:         player,
			EffectivePower: player.EffectivePower(),
			EnergyRestored: restored,
		}
		return nil
	})
	return result, err
}
