package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/olivergarza/soccer-rpg/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of the player
// repository used by service tests. It preserves creation order for
// deterministic ranking assertions.
type FakeRepository struct {
	mu      sync.Mutex
	players map[string]*domain.Player
	order   []string
	items   map[string]*domain.Item

	// FailNext makes the next write call fail, for storage-fault tests
	FailNext bool
}

// NewFakeRepository creates an empty fake repository
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		players: make(map[string]*domain.Player),
		items:   make(map[string]*domain.Item),
	}
}

func (f *FakeRepository) failIfRequested() error {
	if f.FailNext {
		f.FailNext = false
		return fmt.Errorf("storage unavailable")
	}
	return nil
}

func (f *FakeRepository) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	player, ok := f.players[playerID]
	if !ok {
		return nil, nil
	}
	return f.snapshot(player), nil
}

func (f *FakeRepository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.failIfRequested(); err != nil {
		return err
	}

	stored := *player
	stored.Items = append([]domain.Item(nil), player.Items...)
	f.players[player.ID] = &stored
	f.order = append(f.order, player.ID)
	for i := range stored.Items {
		item := stored.Items[i]
		f.items[item.ID] = &item
	}
	return nil
}

func (f *FakeRepository) UpdatePlayer(ctx context.Context, player domain.Player) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.failIfRequested(); err != nil {
		return err
	}

	stored, ok := f.players[player.ID]
	if !ok {
		return domain.ErrPlayerNotFound
	}
	items := stored.Items
	*stored = player
	stored.Items = items
	return nil
}

func (f *FakeRepository) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	players := make([]domain.Player, 0, len(f.order))
	for _, id := range f.order {
		players = append(players, *f.snapshot(f.players[id]))
	}
	return players, nil
}

func (f *FakeRepository) CountPlayers(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.players), nil
}

func (f *FakeRepository) InsertItem(ctx context.Context, item *domain.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.failIfRequested(); err != nil {
		return err
	}

	stored := *item
	f.items[item.ID] = &stored
	return nil
}

func (f *FakeRepository) UpdateItems(ctx context.Context, items []domain.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.failIfRequested(); err != nil {
		return err
	}

	for _, item := range items {
		if _, ok := f.items[item.ID]; !ok {
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, item.ID)
		}
		stored := item
		f.items[item.ID] = &stored
	}
	return nil
}

func (f *FakeRepository) DeleteItem(ctx context.Context, itemID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.failIfRequested(); err != nil {
		return err
	}

	if _, ok := f.items[itemID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	delete(f.items, itemID)
	return nil
}

// StoredItem returns the persisted item state, or nil when absent.
// Test helper for asserting on what actually reached the store.
func (f *FakeRepository) StoredItem(itemID string) *domain.Item {
	f.mu.Lock()
	defer f.mu.Unlock()

	item, ok := f.items[itemID]
	if !ok {
		return nil
	}
	clone := *item
	return &clone
}

// snapshot returns a copy of the player with items assembled from the
// item store, mirroring how the SQL implementation joins them.
func (f *FakeRepository) snapshot(player *domain.Player) *domain.Player {
	copied := *player
	copied.Items = nil
	for _, item := range f.items {
		if item.PlayerID == player.ID {
			copied.Items = append(copied.Items, *item)
		}
	}
	return &copied
}
