package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/olivergarza/soccer-rpg/internal/concurrency"
	"github.com/olivergarza/soccer-rpg/internal/logger"
	"github.com/olivergarza/soccer-rpg/internal/repository"
)

const dateLayout = "2006-01-02"

// DailyResetWorker sweeps every stored account shortly after UTC midnight
// and clears its daily counters. The game service applies the same reset
// lazily on load; the sweep covers accounts that nothing loads, so ranking
// reads never see stale daily state on idle or bot rows.
type DailyResetWorker struct {
	repo  repository.Player
	locks *concurrency.LockManager

	mu       sync.Mutex
	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup

	now func() time.Time
}

// NewDailyResetWorker creates a new DailyResetWorker
func NewDailyResetWorker(repo repository.Player, locks *concurrency.LockManager) *DailyResetWorker {
	return &DailyResetWorker{
		repo:     repo,
		locks:    locks,
		shutdown: make(chan struct{}),
		now:      time.Now,
	}
}

// Start schedules the first sweep
func (w *DailyResetWorker) Start() {
	w.scheduleNext()
}

func (w *DailyResetWorker) scheduleNext() {
	duration := w.untilNextReset()
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}
		w.executeSweep()
		w.scheduleNext()
	})
	w.mu.Unlock()

	log.Info("Scheduled daily reset sweep", "next_reset_at", w.now().UTC().Add(duration))
}

// untilNextReset returns the time remaining until the next UTC midnight
func (w *DailyResetWorker) untilNextReset() time.Duration {
	now := w.now().UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
	return next.Sub(now)
}

// executeSweep runs the sweep in a tracked goroutine
func (w *DailyResetWorker) executeSweep() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx := context.Background()
		log := logger.FromContext(ctx)

		resets, err := w.Sweep(ctx)
		if err != nil {
			log.Error("Daily reset sweep failed", "error", err, "resets_applied", resets)
			return
		}
		log.Info("Daily reset sweep completed", "resets_applied", resets)
	}()
}

// Sweep applies the daily reset to every account whose counters belong to
// a previous day and reports how many accounts were reset. Each account is
// reloaded and updated under its own lock so the sweep never races a
// concurrent game operation.
func (w *DailyResetWorker) Sweep(ctx context.Context) (int, error) {
	players, err := w.repo.ListPlayers(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list players for sweep: %w", err)
	}

	today := w.now().UTC().Format(dateLayout)
	resets := 0
	for i := range players {
		playerID := players[i].ID
		err := w.locks.WithLock(playerID, func() error {
			player, err := w.repo.GetPlayer(ctx, playerID)
			if err != nil || player == nil {
				return err
			}
			if player.LastResetDate == today {
				return nil
			}
			player.TrainingsToday = 0
			player.LastMissionClaimDate = ""
			player.LastResetDate = today
			if err := w.repo.UpdatePlayer(ctx, *player); err != nil {
				return err
			}
			resets++
			return nil
		})
		if err != nil {
			return resets, fmt.Errorf("failed to reset player %s: %w", playerID, err)
		}
	}
	return resets, nil
}

// Shutdown cancels the pending timer and waits for an in-flight sweep
func (w *DailyResetWorker) Shutdown(ctx context.Context) error {
	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
