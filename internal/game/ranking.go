package game

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/olivergarza/soccer-rpg/internal/domain"
	"github.com/olivergarza/soccer-rpg/internal/logger"
)

const rankingCacheKey = "ranking"

// Ranking derives effective power for every known player and returns a
// total order, strongest first. Ties keep creation order (stable sort).
// Snapshots are cached briefly; ranking reads tolerate slightly stale data.
func (s *service) Ranking(ctx context.Context) ([]domain.RankingEntry, error) {
	if cached, ok := s.rankCache.Get(rankingCacheKey); ok {
		return cached, nil
	}

	entries, err := s.computeRanking(ctx)
	if err != nil {
		return nil, err
	}

	s.rankCache.Add(rankingCacheKey, entries)
	return entries, nil
}

func (s *service) computeRanking(ctx context.Context) ([]domain.RankingEntry, error) {
	players, err := s.repo.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	entries := make([]domain.RankingEntry, 0, len(players))
	for i := range players {
		entries = append(entries, domain.RankingEntry{
			PlayerID:       players[i].ID,
			Name:           players[i].Name,
			EffectivePower: players[i].EffectivePower(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].EffectivePower > entries[j].EffectivePower
	})
	return entries, nil
}

// GenerateBots seeds the ladder with rival accounts. Seeding is skipped
// when more than one player already exists, so repeated calls never add
// duplicate bots.
func (s *service) GenerateBots(ctx context.Context) (*Result, error) {
	log := logger.FromContext(ctx)

	count, err := s.repo.CountPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count players: %w", err)
	}

	if count > 1 {
		entries, err := s.computeRanking(ctx)
		if err != nil {
			return nil, err
		}
		return &Result{
			Message: "The league already has rivals.",
			Ranking: entries,
		}, nil
	}

	for i := 1; i <= BotCount; i++ {
		botID := fmt.Sprintf("bot-%d", i)
		bot := &domain.Player{
			ID:            botID,
			Name:          fmt.Sprintf("Bot_%d", i),
			BasePower:     BotBasePower + BotPowerPerIndex*i,
			Energy:        domain.EnergyMax,
			Level:         1,
			Gold:          BotGold,
			LastResetDate: s.today(),
			Items: []domain.Item{
				{
					ID:       uuid.NewString(),
					Name:     fmt.Sprintf("basic %s", domain.ItemSlots[i%len(domain.ItemSlots)]),
					Slot:     domain.ItemSlots[i%len(domain.ItemSlots)],
					Power:    2 + i,
					Value:    10,
					Rarity:   domain.RarityCommon,
					Equipped: true,
					PlayerID: botID,
				},
			},
		}
		if err := s.repo.CreatePlayer(ctx, bot); err != nil {
			return nil, fmt.Errorf("failed to create bot %d: %w", i, err)
		}
	}

	s.rankCache.Purge()
	log.Info("Seeded bot rivals", "count", BotCount)

	entries, err := s.computeRanking(ctx)
	if err != nil {
		return nil, err
	}
	return &Result{
		Message: fmt.Sprintf("%d rivals joined the league.", BotCount),
		Ranking: entries,
	}, nil
}
