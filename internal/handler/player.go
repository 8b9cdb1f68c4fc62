package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/olivergarza/soccer-rpg/internal/game"
	"github.com/olivergarza/soccer-rpg/internal/logger"
)

// DefaultPlayerID is the implicit single local account used when a
// request does not name one.
const DefaultPlayerID = "local"

// PlayerRequest is the shared body for player operations; every field is
// optional and the account defaults to the local one.
type PlayerRequest struct {
	PlayerID string `json:"player_id" validate:"omitempty,max=100,excludesall=\x00\n\r\t"`
}

// resolvePlayerID extracts the account id from the JSON body (POST) or
// the query string (GET), falling back to the default account.
func resolvePlayerID(r *http.Request) (string, error) {
	if id := r.URL.Query().Get("player_id"); id != "" {
		return id, nil
	}
	if r.Body == nil || r.Method == http.MethodGet {
		return DefaultPlayerID, nil
	}

	var req PlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultPlayerID, nil
		}
		return "", err
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		return "", err
	}
	if req.PlayerID == "" {
		return DefaultPlayerID, nil
	}
	return req.PlayerID, nil
}

// playerAction wires one no-payload game operation into an HTTP handler
func playerAction(op func(r *http.Request, playerID string) (*game.Result, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, err := resolvePlayerID(r)
		if err != nil {
			log.Warn("Invalid player request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		result, err := op(r, playerID)
		if err != nil {
			log.Error("Player operation failed", "error", err, "player_id", playerID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleGetProfile returns the player's current state
// @Summary Get profile
// @Description Returns the player's progression state, creating the account on first access
// @Tags player
// @Produce json
// @Success 200 {object} game.Result
// @Failure 500 {object} ErrorResponse
// @Router /player [get]
func HandleGetProfile(svc game.Service) http.HandlerFunc {
	return playerAction(func(r *http.Request, playerID string) (*game.Result, error) {
		return svc.GetProfile(r.Context(), playerID)
	})
}

// HandleTrain runs one training session
// @Summary Train
// @Description Spends energy for experience and a chance-based power gain
// @Tags player
// @Accept json
// @Produce json
// @Success 200 {object} game.Result
// @Failure 500 {object} ErrorResponse
// @Router /player/train [post]
func HandleTrain(svc game.Service) http.HandlerFunc {
	return playerAction(func(r *http.Request, playerID string) (*game.Result, error) {
		return svc.Train(r.Context(), playerID)
	})
}

// HandleRest restores the player's energy
// @Summary Rest
// @Description Restores energy to the cap
// @Tags player
// @Accept json
// @Produce json
// @Success 200 {object} game.Result
// @Failure 500 {object} ErrorResponse
// @Router /player/rest [post]
func HandleRest(svc game.Service) http.HandlerFunc {
	return playerAction(func(r *http.Request, playerID string) (*game.Result, error) {
		return svc.Rest(r.Context(), playerID)
	})
}

// HandleOpenChest opens one loot chest
// @Summary Open chest
// @Description Rolls rarity with the pity-adjusted selector and generates an item
// @Tags player
// @Accept json
// @Produce json
// @Success 200 {object} game.Result
// @Failure 500 {object} ErrorResponse
// @Router /player/chest [post]
func HandleOpenChest(svc game.Service) http.HandlerFunc {
	return playerAction(func(r *http.Request, playerID string) (*game.Result, error) {
		return svc.OpenChest(r.Context(), playerID)
	})
}

// HandleClaimMission claims the daily training mission
// @Summary Claim mission
// @Description Pays the daily reward once enough trainings were done today
// @Tags player
// @Accept json
// @Produce json
// @Success 200 {object} game.Result
// @Failure 500 {object} ErrorResponse
// @Router /player/mission [post]
func HandleClaimMission(svc game.Service) http.HandlerFunc {
	return playerAction(func(r *http.Request, playerID string) (*game.Result, error) {
		return svc.ClaimMission(r.Context(), playerID)
	})
}

// HandlePlayLeague plays a league match
// @Summary Play league match
// @Description Runs a scripted encounter against a rival near the player's strength
// @Tags combat
// @Accept json
// @Produce json
// @Success 200 {object} game.Result
// @Failure 500 {object} ErrorResponse
// @Router /player/league [post]
func HandlePlayLeague(svc game.Service) http.HandlerFunc {
	return playerAction(func(r *http.Request, playerID string) (*game.Result, error) {
		return svc.PlayLeague(r.Context(), playerID)
	})
}

// HandleRaidDungeon raids the dungeon boss
// @Summary Raid dungeon
// @Description Runs a scripted boss encounter with loot on victory
// @Tags combat
// @Accept json
// @Produce json
// @Success 200 {object} game.Result
// @Failure 500 {object} ErrorResponse
// @Router /player/dungeon [post]
func HandleRaidDungeon(svc game.Service) http.HandlerFunc {
	return playerAction(func(r *http.Request, playerID string) (*game.Result, error) {
		return svc.RaidDungeon(r.Context(), playerID)
	})
}
