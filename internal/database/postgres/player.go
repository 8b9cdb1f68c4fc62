package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/olivergarza/soccer-rpg/internal/domain"
)

// PlayerRepository implements the player repository for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

const playerColumns = `player_id, player_name, base_power, energy, experience, level, gold,
	legendary_pity, trainings_today, last_reset_date, last_mission_claim_date`

func scanPlayer(row pgx.Row, p *domain.Player) error {
	return row.Scan(
		&p.ID, &p.Name, &p.BasePower, &p.Energy, &p.Experience, &p.Level, &p.Gold,
		&p.LegendaryPity, &p.TrainingsToday, &p.LastResetDate, &p.LastMissionClaimDate,
	)
}

// GetPlayer returns the player with items, or (nil, nil) when absent
func (r *PlayerRepository) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	query := fmt.Sprintf(`SELECT %s FROM players WHERE player_id = $1`, playerColumns)

	var player domain.Player
	err := scanPlayer(r.db.QueryRow(ctx, query, playerID), &player)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	items, err := r.getItems(ctx, playerID)
	if err != nil {
		return nil, err
	}
	player.Items = items
	return &player, nil
}

// CreatePlayer persists a new player together with any starter items
func (r *PlayerRepository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO players (player_id, player_name, base_power, energy, experience, level, gold,
			legendary_pity, trainings_today, last_reset_date, last_mission_claim_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = tx.Exec(ctx, query,
		player.ID, player.Name, player.BasePower, player.Energy, player.Experience,
		player.Level, player.Gold, player.LegendaryPity, player.TrainingsToday,
		player.LastResetDate, player.LastMissionClaimDate,
	)
	if err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}

	for i := range player.Items {
		if err := insertItemTx(ctx, tx, &player.Items[i]); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// UpdatePlayer persists the player's scalar progression fields
func (r *PlayerRepository) UpdatePlayer(ctx context.Context, player domain.Player) error {
	query := `
		UPDATE players
		SET player_name = $2, base_power = $3, energy = $4, experience = $5, level = $6,
			gold = $7, legendary_pity = $8, trainings_today = $9, last_reset_date = $10,
			last_mission_claim_date = $11, updated_at = NOW()
		WHERE player_id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		player.ID, player.Name, player.BasePower, player.Energy, player.Experience,
		player.Level, player.Gold, player.LegendaryPity, player.TrainingsToday,
		player.LastResetDate, player.LastMissionClaimDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// ListPlayers returns every known player with items, in creation order
func (r *PlayerRepository) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	query := fmt.Sprintf(`SELECT %s FROM players ORDER BY created_at, player_id`, playerColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	var players []domain.Player
	index := make(map[string]int)
	for rows.Next() {
		var p domain.Player
		if err := scanPlayer(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		index[p.ID] = len(players)
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate players: %w", err)
	}

	// One pass over all items instead of a query per player
	itemRows, err := r.db.Query(ctx, `
		SELECT item_id, player_id, item_name, slot, power, value, rarity, equipped
		FROM items
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item domain.Item
		if err := itemRows.Scan(&item.ID, &item.PlayerID, &item.Name, &item.Slot,
			&item.Power, &item.Value, &item.Rarity, &item.Equipped); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		if i, ok := index[item.PlayerID]; ok {
			players[i].Items = append(players[i].Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return players, nil
}

// CountPlayers returns the number of player records
func (r *PlayerRepository) CountPlayers(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM players`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}
	return count, nil
}

func (r *PlayerRepository) getItems(ctx context.Context, playerID string) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT item_id, player_id, item_name, slot, power, value, rarity, equipped
		FROM items
		WHERE player_id = $1
		ORDER BY item_id
	`, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.PlayerID, &item.Name, &item.Slot,
			&item.Power, &item.Value, &item.Rarity, &item.Equipped); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}
