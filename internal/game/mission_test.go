package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainTimes(t *testing.T, svc *service, playerID string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := svc.Train(context.Background(), playerID)
		require.NoError(t, err)
	}
}

func TestClaimMission_NotEnoughTraining(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)
	trainTimes(t, svc, "local", 4)

	result, err := svc.ClaimMission(context.Background(), "local")
	require.NoError(t, err)

	assert.Equal(t, OutcomeNotReady, result.Outcome)
	assert.Zero(t, result.Reward)
	assert.Equal(t, StarterGold, result.Player.Gold)
	assert.Empty(t, result.Player.LastMissionClaimDate)
}

func TestClaimMission_Success(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)
	trainTimes(t, svc, "local", 5)

	result, err := svc.ClaimMission(context.Background(), "local")
	require.NoError(t, err)

	assert.Equal(t, OutcomeClaimed, result.Outcome)
	assert.Equal(t, MissionReward, result.Reward)
	assert.Equal(t, StarterGold+MissionReward, result.Player.Gold)
	assert.Equal(t, testDay.Format(dateLayout), result.Player.LastMissionClaimDate)
}

func TestClaimMission_OncePerDay(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)
	trainTimes(t, svc, "local", 5)

	_, err := svc.ClaimMission(context.Background(), "local")
	require.NoError(t, err)

	result, err := svc.ClaimMission(context.Background(), "local")
	require.NoError(t, err)

	assert.Equal(t, OutcomeAlreadyClaimed, result.Outcome)
	assert.Zero(t, result.Reward)
	assert.Equal(t, StarterGold+MissionReward, result.Player.Gold)
}

func TestClaimMission_ResetNextDay(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)
	trainTimes(t, svc, "local", 5)

	_, err := svc.ClaimMission(context.Background(), "local")
	require.NoError(t, err)

	// next day the counter and the claim marker reset together, so the
	// mission is locked again until the player trains
	svc.now = func() time.Time { return testDay.Add(24 * time.Hour) }

	result, err := svc.ClaimMission(context.Background(), "local")
	require.NoError(t, err)
	assert.Equal(t, OutcomeNotReady, result.Outcome)

	trainTimes(t, svc, "local", 5)
	result, err = svc.ClaimMission(context.Background(), "local")
	require.NoError(t, err)
	assert.Equal(t, OutcomeClaimed, result.Outcome)
}