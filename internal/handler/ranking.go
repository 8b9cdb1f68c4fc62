package handler

import (
	"net/http"

	"github.com/olivergarza/soccer-rpg/internal/domain"
	"github.com/olivergarza/soccer-rpg/internal/game"
	"github.com/olivergarza/soccer-rpg/internal/logger"
)

// RankingResponse wraps the ordered leaderboard
type RankingResponse struct {
	Ranking []domain.RankingEntry `json:"ranking"`
}

// HandleGetRanking returns the derived-strength leaderboard
// @Summary Get ranking
// @Description Returns every player ordered by effective power, strongest first
// @Tags ranking
// @Produce json
// @Success 200 {object} RankingResponse
// @Failure 500 {object} ErrorResponse
// @Router /ranking [get]
func HandleGetRanking(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		entries, err := svc.Ranking(r.Context())
		if err != nil {
			log.Error("Failed to get ranking", "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, RankingResponse{Ranking: entries})
	}
}

// HandleSeedBots seeds the ladder with bot rivals
// @Summary Seed bots
// @Description Creates rival bot accounts once, then returns the current ranking
// @Tags ranking
// @Produce json
// @Success 200 {object} game.Result
// @Failure 500 {object} ErrorResponse
// @Router /ranking/bots [post]
func HandleSeedBots(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		result, err := svc.GenerateBots(r.Context())
		if err != nil {
			log.Error("Failed to seed bots", "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
