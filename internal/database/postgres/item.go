package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/olivergarza/soccer-rpg/internal/domain"
)

func insertItemTx(ctx context.Context, tx pgx.Tx, item *domain.Item) error {
	query := `
		INSERT INTO items (item_id, player_id, item_name, slot, power, value, rarity, equipped)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := tx.Exec(ctx, query,
		item.ID, item.PlayerID, item.Name, item.Slot,
		item.Power, item.Value, item.Rarity, item.Equipped,
	)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// InsertItem persists a newly generated item
func (r *PlayerRepository) InsertItem(ctx context.Context, item *domain.Item) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := insertItemTx(ctx, tx, item); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// UpdateItems persists a batch of item flag changes in one transaction,
// so slot-exclusivity updates land atomically.
func (r *PlayerRepository) UpdateItems(ctx context.Context, items []domain.Item) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, item := range items {
		tag, err := tx.Exec(ctx, `
			UPDATE items
			SET item_name = $2, slot = $3, power = $4, value = $5, rarity = $6, equipped = $7
			WHERE item_id = $1
		`, item.ID, item.Name, item.Slot, item.Power, item.Value, item.Rarity, item.Equipped)
		if err != nil {
			return fmt.Errorf("failed to update item: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, item.ID)
		}
	}

	return tx.Commit(ctx)
}

// DeleteItem removes an item permanently
func (r *PlayerRepository) DeleteItem(ctx context.Context, itemID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE item_id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	return nil
}
