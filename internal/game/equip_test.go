package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivergarza/soccer-rpg/internal/domain"
)

func itemInSlot(t *testing.T, player *domain.Player, slot string) *domain.Item {
	t.Helper()
	for i := range player.Items {
		if player.Items[i].Slot == slot {
			return &player.Items[i]
		}
	}
	t.Fatalf("no item in slot %s", slot)
	return nil
}

func TestSetEquipped_ReplacesSameSlot(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)
	svc.rnd = func() float64 { return 0.25 } // rare drop, boots with intn=0

	chest, err := svc.OpenChest(context.Background(), "local")
	require.NoError(t, err)
	require.Equal(t, domain.SlotBoots, chest.Item.Slot)
	require.Equal(t, 4, chest.Item.Power)

	result, err := svc.SetEquipped(context.Background(), "local", chest.Item.ID, true)
	require.NoError(t, err)

	// rare boots replace the starter pair: base 10 + shirt 1 + boots 4
	assert.Equal(t, 15, result.EffectivePower)

	equipped := 0
	for _, item := range result.Player.Items {
		if item.Slot == domain.SlotBoots && item.Equipped {
			equipped++
			assert.Equal(t, chest.Item.ID, item.ID)
		}
	}
	assert.Equal(t, 1, equipped)

	stored := repo.StoredItem(chest.Item.ID)
	require.NotNil(t, stored)
	assert.True(t, stored.Equipped)
}

func TestSetEquipped_Unequip(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)

	profile, err := svc.GetProfile(context.Background(), "local")
	require.NoError(t, err)
	shirt := itemInSlot(t, profile.Player, domain.SlotShirt)

	result, err := svc.SetEquipped(context.Background(), "local", shirt.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 12, result.EffectivePower)

	stored := repo.StoredItem(shirt.ID)
	require.NotNil(t, stored)
	assert.False(t, stored.Equipped)
}

func TestSetEquipped_UnknownItem(t *testing.T) {
	svc := newTestService(NewFakeRepository())

	result, err := svc.SetEquipped(context.Background(), "local", "no-such-item", true)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Nil(t, result)
}

func TestSetEquipped_OtherPlayersItem(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)

	chest, err := svc.OpenChest(context.Background(), "rival")
	require.NoError(t, err)

	_, err = svc.SetEquipped(context.Background(), "local", chest.Item.ID, true)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}
