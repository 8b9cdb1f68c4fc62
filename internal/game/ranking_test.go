package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRanking_OrdersByEffectivePower(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)

	_, err := svc.GetProfile(context.Background(), "local")
	require.NoError(t, err)

	result, err := svc.GenerateBots(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Ranking, 6)

	// bot power climbs with the index: base 8+3i plus an equipped 2+i item
	assert.Equal(t, "Bot_5", result.Ranking[0].Name)
	assert.Equal(t, 30, result.Ranking[0].EffectivePower)
	assert.Equal(t, "Bot_1", result.Ranking[4].Name)
	assert.Equal(t, 14, result.Ranking[4].EffectivePower)
	assert.Equal(t, "local", result.Ranking[5].PlayerID)
	assert.Equal(t, 13, result.Ranking[5].EffectivePower)

	for i := 1; i < len(result.Ranking); i++ {
		assert.GreaterOrEqual(t,
			result.Ranking[i-1].EffectivePower, result.Ranking[i].EffectivePower)
	}
}

func TestRanking_TiesKeepCreationOrder(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)

	_, err := svc.GetProfile(context.Background(), "first")
	require.NoError(t, err)
	_, err = svc.GetProfile(context.Background(), "second")
	require.NoError(t, err)

	entries, err := svc.Ranking(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].PlayerID)
	assert.Equal(t, "second", entries[1].PlayerID)
}

func TestGenerateBots_SkipsWhenLeaguePopulated(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)

	_, err := svc.GetProfile(context.Background(), "local")
	require.NoError(t, err)

	first, err := svc.GenerateBots(context.Background())
	require.NoError(t, err)
	require.Len(t, first.Ranking, 6)

	second, err := svc.GenerateBots(context.Background())
	require.NoError(t, err)
	assert.Len(t, second.Ranking, 6)
	assert.Equal(t, "The league already has rivals.", second.Message)

	count, err := repo.CountPlayers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestGenerateBots_InvalidatesRankingSnapshot(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)

	_, err := svc.GetProfile(context.Background(), "local")
	require.NoError(t, err)

	entries, err := svc.Ranking(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	_, err = svc.GenerateBots(context.Background())
	require.NoError(t, err)

	entries, err = svc.Ranking(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 6)
}
