package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivergarza/soccer-rpg/internal/domain"
)

func TestSellItem_ChestDrop(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)
	svc.rnd = func() float64 { return 0.99 } // common drop, value 20

	chest, err := svc.OpenChest(context.Background(), "local")
	require.NoError(t, err)

	result, err := svc.SellItem(context.Background(), "local", chest.Item.ID)
	require.NoError(t, err)

	assert.Equal(t, 20, result.GoldGained)
	assert.Equal(t, 70, result.Player.Gold) // starter 50 + sale
	assert.Len(t, result.Player.Items, 2)
	assert.Nil(t, repo.StoredItem(chest.Item.ID))
}

func TestSellItem_EquippedItemIsRemoved(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)

	profile, err := svc.GetProfile(context.Background(), "local")
	require.NoError(t, err)
	boots := itemInSlot(t, profile.Player, domain.SlotBoots)
	require.True(t, boots.Equipped)

	result, err := svc.SellItem(context.Background(), "local", boots.ID)
	require.NoError(t, err)

	// no automatic re-equip: the slot is simply empty afterwards
	assert.Equal(t, 11, result.EffectivePower)
	assert.Equal(t, 55, result.Player.Gold)
	assert.Len(t, result.Player.Items, 1)
	assert.Nil(t, repo.StoredItem(boots.ID))
}

func TestSellItem_UnknownItem(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)

	result, err := svc.SellItem(context.Background(), "local", "no-such-item")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Nil(t, result)

	player, err := repo.GetPlayer(context.Background(), "local")
	require.NoError(t, err)
	assert.Equal(t, StarterGold, player.Gold)
}
