package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/olivergarza/soccer-rpg/internal/concurrency"
	"github.com/olivergarza/soccer-rpg/internal/domain"
	"github.com/olivergarza/soccer-rpg/internal/repository"
)

// Result is the uniform envelope returned by every player operation.
// Soft failures (low energy, already claimed) are Results with an outcome
// tag, never errors.
type Result struct {
	Message        string                `json:"message"`
	Outcome        string                `json:"outcome,omitempty"`
	Player         *domain.Player        `json:"player,omitempty"`
	EffectivePower int                   `json:"effective_power,omitempty"`
	Item           *domain.Item          `json:"item,omitempty"`
	GoldGained     int                   `json:"gold_gained,omitempty"`
	Reward         int                   `json:"reward,omitempty"`
	EnergyRestored int                   `json:"energy_restored,omitempty"`
	RivalPower     int                   `json:"rival_power,omitempty"`
	BattleLog      []string              `json:"battle_log,omitempty"`
	Ranking        []domain.RankingEntry `json:"ranking,omitempty"`
}

// Service defines the progression engine interface
type Service interface {
	GetProfile(ctx context.Context, playerID string) (*Result, error)
	Train(ctx context.Context, playerID string) (*Result, error)
	Rest(ctx context.Context, playerID string) (*Result, error)
	OpenChest(ctx context.Context, playerID string) (*Result, error)
	SetEquipped(ctx context.Context, playerID, itemID string, equip bool) (*Result, error)
	SellItem(ctx context.Context, playerID, itemID string) (*Result, error)
	ClaimMission(ctx context.Context, playerID string) (*Result, error)
	PlayLeague(ctx context.Context, playerID string) (*Result, error)
	RaidDungeon(ctx context.Context, playerID string) (*Result, error)
	Ranking(ctx context.Context) ([]domain.RankingEntry, error)
	GenerateBots(ctx context.Context) (*Result, error)
}

type service struct {
	repo       repository.Player
	locks      *concurrency.LockManager
	rankCache  *expirable.LRU[string, []domain.RankingEntry]
	playerName string
	rnd        func() float64  // uniform [0,1), swapped out in tests
	intn       func(n int) int // uniform [0,n)
	now        func() time.Time
}

// NewService creates a new game service.
// playerName is the display name given to accounts created on first access.
func NewService(repo repository.Player, locks *concurrency.LockManager, playerName string) Service {
	return &service{
		repo:       repo,
		locks:      locks,
		rankCache:  expirable.NewLRU[string, []domain.RankingEntry](1, nil, rankingCacheTTL),
		playerName: playerName,
		rnd:        rand.Float64, //nolint:gosec // Game logic randomness, not security critical
		intn:       rand.Intn,    //nolint:gosec // Game logic randomness, not security critical
		now:        time.Now,
	}
}

// today returns the current UTC calendar date in ISO format
func (s *service) today() string {
	return s.now().UTC().Format(dateLayout)
}
