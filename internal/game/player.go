package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/olivergarza/soccer-rpg/internal/domain"
	"github.com/olivergarza/soccer-rpg/internal/logger"
)

// loadOrCreate fetches the player, creating a starter account when none
// exists, and applies the lazy daily reset. It must run before any
// operation reads daily-sensitive fields.
func (s *service) loadOrCreate(ctx context.Context, playerID string) (*domain.Player, error) {
	log := logger.FromContext(ctx)

	player, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	if player == nil {
		player = s.newStarterPlayer(playerID)
		if err := s.repo.CreatePlayer(ctx, player); err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}
		log.Info("Created starter player", "player_id", playerID, "name", player.Name)
		return player, nil
	}

	today := s.today()
	if player.LastResetDate != today {
		player.TrainingsToday = 0
		player.LastMissionClaimDate = ""
		player.LastResetDate = today
		if err := s.repo.UpdatePlayer(ctx, *player); err != nil {
			return nil, fmt.Errorf("failed to persist daily reset: %w", err)
		}
		log.Info("Applied daily reset", "player_id", playerID, "date", today)
	}

	return player, nil
}

// newStarterPlayer builds a fresh account with two equipped common items
func (s *service) newStarterPlayer(playerID string) *domain.Player {
	return &domain.Player{
		ID:            playerID,
		Name:          s.playerName,
		BasePower:     StarterBasePower,
		Energy:        domain.EnergyMax,
		Experience:    0,
		Level:         1,
		Gold:          StarterGold,
		LastResetDate: s.today(),
		Items: []domain.Item{
			{
				ID:       uuid.NewString(),
				Name:     "worn boots",
				Slot:     domain.SlotBoots,
				Power:    2,
				Value:    5,
				Rarity:   domain.RarityCommon,
				Equipped: true,
				PlayerID: playerID,
			},
			{
				ID:       uuid.NewString(),
				Name:     "training shirt",
				Slot:     domain.SlotShirt,
				Power:    1,
				Value:    5,
				Rarity:   domain.RarityCommon,
				Equipped: true,
				PlayerID: playerID,
			},
		},
	}
}

// GetProfile returns the player's current state, creating the account on
// first access.
func (s *service) GetProfile(ctx context.Context, playerID string) (*Result, error) {
	var result *Result
	err := s.locks.WithLock(playerID, func() error {
		player, err := s.loadOrCreate(ctx, playerID)
		if err != nil {
			return err
		}
		result = &Result{
			Message:        fmt.Sprintf("Welcome back, %s.", player.Name),
			Player:         player,
			EffectivePower: player.EffectivePower(),
		}
		return nil
	})
	return result, err
}
