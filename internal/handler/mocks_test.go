package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/olivergarza/soccer-rpg/internal/domain"
	"github.com/olivergarza/soccer-rpg/internal/game"
)

// MockGameService
type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) GetProfile(ctx context.Context, playerID string) (*game.Result, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.Result), args.Error(1)
}

func (m *MockGameService) Train(ctx context.Context, playerID string) (*game.Result, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.Result), args.Error(1)
}

func (m *MockGameService) Rest(ctx context.Context, playerID string) (*game.Result, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.Result), args.Error(1)
}

func (m *MockGameService) OpenChest(ctx context.Context, playerID string) (*game.Result, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.Result), args.Error(1)
}

func (m *MockGameService) SetEquipped(ctx context.Context, playerID, itemID string, equip bool) (*game.Result, error) {
	args := m.Called(ctx, playerID, itemID, equip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.Result), args.Error(1)
}

func (m *MockGameService) SellItem(ctx context.Context, playerID, itemID string) (*game.Result, error) {
	args := m.Called(ctx, playerID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.Result), args.Error(1)
}

func (m *MockGameService) ClaimMission(ctx context.Context, playerID string) (*game.Result, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.Result), args.Error(1)
}

func (m *MockGameService) PlayLeague(ctx context.Context, playerID string) (*game.Result, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.Result), args.Error(1)
}

func (m *MockGameService) RaidDungeon(ctx context.Context, playerID string) (*game.Result, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.Result), args.Error(1)
}

func (m *MockGameService) Ranking(ctx context.Context) ([]domain.RankingEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RankingEntry), args.Error(1)
}

func (m *MockGameService) GenerateBots(ctx context.Context) (*game.Result, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.Result), args.Error(1)
}
