package repository

import (
	"context"

	"github.com/olivergarza/soccer-rpg/internal/domain"
)

// Player defines the interface for player and item persistence.
// Implementations must populate Player.Items on every read.
type Player interface {
	// GetPlayer returns the player with items, or (nil, nil) when absent
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	// CreatePlayer persists a new player together with any starter items
	CreatePlayer(ctx context.Context, player *domain.Player) error
	// UpdatePlayer persists the player's scalar progression fields
	UpdatePlayer(ctx context.Context, player domain.Player) error
	// ListPlayers returns every known player with items, in creation order
	ListPlayers(ctx context.Context) ([]domain.Player, error)
	CountPlayers(ctx context.Context) (int, error)

	InsertItem(ctx context.Context, item *domain.Item) error
	// UpdateItems persists a batch of item flag changes atomically
	UpdateItems(ctx context.Context, items []domain.Item) error
	DeleteItem(ctx context.Context, itemID string) error
}
