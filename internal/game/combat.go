package game

import (
	"context"
	"fmt"

	"github.com/olivergarza/soccer-rpg/internal/domain"
	"github.com/olivergarza/soccer-rpg/internal/logger"
	"github.com/olivergarza/soccer-rpg/internal/metrics"
)

// PlayLeague runs a scripted league match against a rival scaled near the
// player's own strength. Defeat still pays a small consolation.
func (s *service) PlayLeague(ctx context.Context, playerID string) (*Result, error) {
	log := logger.FromContext(ctx)

	var result *Result
	err := s.locks.WithLock(playerID, func() error {
		player, err := s.loadOrCreate(ctx, playerID)
		if err != nil {
			return err
		}

		if player.Energy < LeagueEnergyCost {
			result = &Result{
				Message:        "Too tired for a league match. Rest first.",
				Outcome:        OutcomeTooTired,
				Player:         player,
				EffectivePower: player.EffectivePower(),
			}
			return nil
		}

		player.Energy -= LeagueEnergyCost
		power := player.EffectivePower()
		rival := power + LeagueRivalOffset + s.intn(LeagueRivalSpread)
		if rival < 1 {
			rival = 1
		}

		battleLog := []string{
			fmt.Sprintf("You take the field with %d power.", power),
			fmt.Sprintf("The rival squad lines up with %d power.", rival),
		}

		var outcome, message string
		var reward int
		if power >= rival {
			outcome = OutcomeVictory
			reward = LeagueVictoryGold
			player.Gold += LeagueVictoryGold
			player.Experience += LeagueVictoryXP
			message = fmt.Sprintf("Victory! You won the match and earned %d gold.", LeagueVictoryGold)
			battleLog = append(battleLog, "Full time: you dominated the pitch.")
		} else {
			outcome = OutcomeDefeat
			reward = LeagueDefeatGold
			player.Gold += LeagueDefeatGold
			player.Experience += LeagueDefeatXP
			message = fmt.Sprintf("Defeat. You still collected %d gold in ticket sales.", LeagueDefeatGold)
			battleLog = append(battleLog, "Full time: the rivals outplayed you.")
		}

		if err := s.repo.UpdatePlayer(ctx, *player); err != nil {
			return fmt.Errorf("failed to persist league match: %w", err)
		}

		metrics.BattlesFought.WithLabelValues("league", outcome).Inc()
		log.Info("League match played", "player_id", playerID, "outcome", outcome, "rival_power", rival)

		result = &Result{
			Message:        message,
			Outcome:        outcome,
			Player:         player,
			EffectivePower: player.EffectivePower(),
			Reward:         reward,
			RivalPower:     rival,
			BattleLog:      battleLog,
		}
		return nil
	})
	return result, err
}

// RaidDungeon runs a scripted boss encounter. Bosses skew stronger than
// the player; a victory pays a large reward plus one loot drop generated
// through the same pity-adjusted selector as chests.
func (s *service) RaidDungeon(ctx context.Context, playerID string) (*Result, error) {
	log := logger.FromContext(ctx)

	var result *Result
	err := s.locks.WithLock(playerID, func() error {
		player, err := s.loadOrCreate(ctx, playerID)
		if err != nil {
			return err
		}

		if player.Energy < DungeonEnergyCost {
			result = &Result{
				Message:        "The dungeon would finish you in this state. Rest first.",
				Outcome:        OutcomeTooTired,
				Player:         player,
				EffectivePower: player.EffectivePower(),
			}
			return nil
		}

		player.Energy -= DungeonEnergyCost
		power := player.EffectivePower()
		boss := power + DungeonBossOffset + s.intn(DungeonBossSpread)
		if boss < 1 {
			boss = 1
		}

		battleLog := []string{
			fmt.Sprintf("You descend into the dungeon with %d power.", power),
			fmt.Sprintf("The boss emerges with %d power.", boss),
		}

		var loot *domain.Item
		var outcome, message string
		var reward int
		if power >= boss {
			outcome = OutcomeVictory
			reward = DungeonVictoryGold
			player.Gold += DungeonVictoryGold
			player.Experience += DungeonVictoryXP

			rarity := s.rollRarity(player.LegendaryPity)
			item := s.generateItem(playerID, rarity)
			if rarity == domain.RarityLegendary {
				player.LegendaryPity = 0
			} else {
				player.LegendaryPity++
			}
			if err := s.repo.InsertItem(ctx, &item); err != nil {
				return fmt.Errorf("failed to persist dungeon loot: %w", err)
			}
			player.Items = append(player.Items, item)
			loot = &item

			message = fmt.Sprintf("The boss falls! +%d gold and loot: %s.", DungeonVictoryGold, item.Name)
			battleLog = append(battleLog,
				"The boss collapses in a heap of gold.",
				fmt.Sprintf("Loot: %s (%s).", item.Name, item.Rarity))
		} else {
			outcome = OutcomeDefeat
			player.Experience += DungeonDefeatXP
			message = "The boss drove you out. You barely escaped."
			battleLog = append(battleLog, "You retreat, bruised but wiser.")
		}

		if err := s.repo.UpdatePlayer(ctx, *player); err != nil {
			return fmt.Errorf("failed to persist dungeon raid: %w", err)
		}

		metrics.BattlesFought.WithLabelValues("dungeon", outcome).Inc()
		log.Info("Dungeon raided", "player_id", playerID, "outcome", outcome, "boss_power", boss)

		result = &Result{
			Message:        message,
			Outcome:        outcome,
			Player:         player,
			EffectivePower: player.EffectivePower(),
			Reward:         reward,
			RivalPower:     boss,
			BattleLog:      battleLog,
			Item:           loot,
		}
		return nil
	})
	return result, err
}
