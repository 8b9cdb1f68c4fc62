package game

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/olivergarza/soccer-rpg/internal/concurrency"
	"github.com/olivergarza/soccer-rpg/internal/domain"
)

// testDay is the frozen clock used by service tests
var testDay = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

// newTestService builds a service with a frozen clock and boring dice:
// rnd always returns 0.5 and intn always returns 0. Tests override the
// random sources per case.
func newTestService(repo *FakeRepository) *service {
	return &service{
		repo:       repo,
		locks:      concurrency.NewLockManager(),
		rankCache:  expirable.NewLRU[string, []domain.RankingEntry](1, nil, time.Millisecond),
		playerName: "Tester",
		rnd:        func() float64 { return 0.5 },
		intn:       func(n int) int { return 0 },
		now:        func() time.Time { return testDay },
	}
}

// rollSequence returns an rnd func yielding the given values in order,
// repeating the last one afterwards.
func rollSequence(values ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}
