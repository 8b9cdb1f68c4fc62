package game

import (
	"context"
	"fmt"

	"github.com/olivergarza/soccer-rpg/internal/logger"
	"github.com/olivergarza/soccer-rpg/internal/metrics"
)

// ClaimMission pays out the daily training mission. It succeeds at most
// once per calendar day and only after enough training sessions today.
func (s *service) ClaimMission(ctx context.Context, playerID string) (*Result, error) {
	log := logger.FromContext(ctx)

	var result *Result
	err := s.locks.WithLock(playerID, func() error {
		player, err := s.loadOrCreate(ctx, playerID)
		if err != nil {
			return err
		}

		if player.TrainingsToday < MissionTrainingsRequired {
			result = &Result{
				Message: fmt.Sprintf("Mission not complete: train %d times today (%d done).",
					MissionTrainingsRequired, player.TrainingsToday),
				Outcome:        OutcomeNotReady,
				Player:         player,
				EffectivePower: player.EffectivePower(),
			}
			return nil
		}

		today := s.today()
		if player.LastMissionClaimDate == today {
			result = &Result{
				Message:        "You already claimed today's mission reward.",
				Outcome:        OutcomeAlreadyClaimed,
				Player:         player,
				EffectivePower: player.EffectivePower(),
			}
			return nil
		}

		player.Gold += MissionReward
		player.LastMissionClaimDate = today

		if err := s.repo.UpdatePlayer(ctx, *player); err != nil {
			return fmt.Errorf("failed to persist mission claim: %w", err)
		}

		metrics.MissionsClaimed.Inc()
		log.Info("Daily mission claimed", "player_id", playerID, "reward", MissionReward)

		result = &Result{
			Message:        fmt.Sprintf("Daily mission complete! +%d gold.", MissionReward),
			Outcome:        OutcomeClaimed,
			Player:         player,
			EffectivePower: player.EffectivePower(),
			Reward:         MissionReward,
		}
		return nil
	})
	return result, err
}
