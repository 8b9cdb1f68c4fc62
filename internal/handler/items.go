package handler

import (
	"encoding/json"
	"net/http"

	"github.com/olivergarza/soccer-rpg/internal/game"
	"github.com/olivergarza/soccer-rpg/internal/logger"
)

// EquipItemRequest represents a request to equip or unequip an item
type EquipItemRequest struct {
	PlayerID string `json:"player_id" validate:"omitempty,max=100,excludesall=\x00\n\r\t"`
	ItemID   string `json:"item_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Equip    bool   `json:"equip"`
}

// SellItemRequest represents a request to sell an item
type SellItemRequest struct {
	PlayerID string `json:"player_id" validate:"omitempty,max=100,excludesall=\x00\n\r\t"`
	ItemID   string `json:"item_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

// HandleEquipItem equips or unequips an item
// @Summary Equip item
// @Description Sets the equipped flag, forcing off other items in the same slot
// @Tags items
// @Accept json
// @Produce json
// @Param request body EquipItemRequest true "Item and desired state"
// @Success 200 {object} game.Result
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /items/equip [post]
func HandleEquipItem(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req EquipItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode equip request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid equip request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if req.PlayerID == "" {
			req.PlayerID = DefaultPlayerID
		}

		result, err := svc.SetEquipped(r.Context(), req.PlayerID, req.ItemID, req.Equip)
		if err != nil {
			log.Error("Failed to change equipment", "error", err, "item_id", req.ItemID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleSellItem sells an item for gold
// @Summary Sell item
// @Description Trades an owned item for its sale value
// @Tags items
// @Accept json
// @Produce json
// @Param request body SellItemRequest true "Item to sell"
// @Success 200 {object} game.Result
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /items/sell [post]
func HandleSellItem(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SellItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode sell request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid sell request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if req.PlayerID == "" {
			req.PlayerID = DefaultPlayerID
		}

		result, err := svc.SellItem(r.Context(), req.PlayerID, req.ItemID)
		if err != nil {
			log.Error("Failed to sell item", "error", err, "item_id", req.ItemID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
