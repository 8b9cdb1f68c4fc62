package game

import (
	"context"
	"fmt"

	"github.com/olivergarza/soccer-rpg/internal/logger"
	"github.com/olivergarza/soccer-rpg/internal/metrics"
)

// Train spends energy for experience and a chance-based power gain.
// Rolling strictly above the critical threshold grants the critical bonus.
func (s *service) Train(ctx context.Context, playerID string) (*Result, error) {
	log := logger.FromContext(ctx)

	var result *Result
	err := s.locks.WithLock(playerID, func() error {
		player, err := s.loadOrCreate(ctx, playerID)
		if err != nil {
			return err
		}

		if player.Energy < TrainEnergyCost {
			result = &Result{
				Message:        "You are exhausted! Rest before training again.",
				Outcome:        OutcomeTooTired,
				Player:         player,
				EffectivePower: player.EffectivePower(),
			}
			return nil
		}

		player.Energy -= TrainEnergyCost
		player.Experience += TrainExperienceGain
		player.TrainingsToday++

		outcome := OutcomeNormal
		message := "Training session complete. +1 power."
		if s.rnd() > TrainCriticalChance {
			player.BasePower += TrainCriticalGain
			outcome = OutcomeCritical
			message = "EPIC training! You pushed past your limits. +3 power."
		} else {
			player.BasePower += TrainNormalGain
		}

		if err := s.repo.UpdatePlayer(ctx, *player); err != nil {
			return fmt.Errorf("failed to persist training: %w", err)
		}

		metrics.TrainingsTotal.WithLabelValues(outcome).Inc()
		log.Info("Training completed", "player_id", playerID, "outcome", outcome, "base_power", player.BasePower)

		result = &Result{
			Message:        message,
			Outcome:        outcome,
			Player:         player,
			EffectivePower: player.EffectivePower(),
		}
		return nil
	})
	return result, err
}
