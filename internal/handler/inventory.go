package handler

import (
	"net/http"

	"github.com/osse101/CaseOpener_Go/internal/domain"
	"github.com/osse101/CaseOpener_Go/internal/game"
	"github.com/osse101/CaseOpener_Go/internal/logger"
)

// AddInventoryItemRequest is the body of POST /inventory
type AddInventoryItemRequest struct {
	UserID       string  `json:"user_id" validate:"required,uuid"`
	ItemID       string  `json:"item_id" validate:"required,max=64,excludesall=\x00\n\r\t"`
	ItemName     string  `json:"item_name" validate:"required,max=128"`
	ItemType     string  `json:"item_type" validate:"required,oneof=weapon glove sticker knife"`
	Rarity       string  `json:"rarity" validate:"required,oneof=consumer industrial restricted classified covert knife"`
	Condition    string  `json:"condition" validate:"required,oneof=factory_new minimal_wear field_tested well_worn battle_scarred"`
	StatTrak     bool    `json:"stattrak"`
	Kills        int     `json:"kills" validate:"gte=0"`
	BaseValue    float64 `json:"base_value" validate:"gte=0"`
	CurrentValue float64 `json:"current_value" validate:"gte=0"`
	CaseSource   string  `json:"case_source" validate:"max=128"`
	Image        string  `json:"image,omitempty" validate:"max=512"`
}

func (req AddInventoryItemRequest) toDomain() domain.InventoryItem {
	return domain.InventoryItem{
		UserID:       req.UserID,
		ItemID:       req.ItemID,
		ItemName:     req.ItemName,
		ItemType:     domain.ItemType(req.ItemType),
		Rarity:       domain.RarityTier(req.Rarity),
		Condition:    domain.WearConditionName(req.Condition),
		StatTrak:     req.StatTrak,
		Kills:        req.Kills,
		BaseValue:    req.BaseValue,
		CurrentValue: req.CurrentValue,
		CaseSource:   req.CaseSource,
		Image:        req.Image,
	}
}

// ClearInventoryResponse reports how many entries were removed
type ClearInventoryResponse struct {
	Removed int `json:"removed"`
}

// HandleGetInventory lists a player's items, oldest first
// @Summary Get inventory
// @Tags inventory
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {array} domain.InventoryItem
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /inventory/{userID} [get]
func HandleGetInventory(svc game.Service) http.HandlerFunc {
	return handleUserAction("Get inventory", svc.GetInventory)
}

// HandleAddInventoryItem adds an entry to a player's inventory
// @Summary Add inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body AddInventoryItemRequest true "Item details"
// @Success 201 {object} domain.InventoryItem
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /inventory [post]
func HandleAddInventoryItem(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddInventoryItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add inventory item"); err != nil {
			return
		}

		item, err := svc.AddInventoryItem(r.Context(), req.toDomain())
		if err != nil {
			respondServiceError(w, r, "Add inventory item", err)
			return
		}

		respondJSON(w, http.StatusCreated, item)
	}
}

// HandleRemoveInventoryItem removes one entry from a player's inventory
// @Summary Remove inventory item
// @Tags inventory
// @Produce json
// @Param userID path string true "User ID"
// @Param itemID path string true "Inventory entry ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /inventory/{userID}/{itemID} [delete]
func HandleRemoveInventoryItem(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetPathParam(r, w, ParamUserID)
		if !ok {
			return
		}
		itemID, ok := GetPathParam(r, w, ParamItemID)
		if !ok {
			return
		}

		if err := svc.RemoveInventoryItem(r.Context(), userID, itemID); err != nil {
			respondServiceError(w, r, "Remove inventory item", err)
			return
		}

		logger.FromContext(r.Context()).Info("Inventory item removed", "user_id", userID, "item_id", itemID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemRemovedSuccess})
	}
}

// HandleClearInventory removes every entry from a player's inventory
// @Summary Clear inventory
// @Tags inventory
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} ClearInventoryResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /inventory/{userID} [delete]
func HandleClearInventory(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetPathParam(r, w, ParamUserID)
		if !ok {
			return
		}

		removed, err := svc.ClearInventory(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Clear inventory", err)
			return
		}

		respondJSON(w, http.StatusOK, ClearInventoryResponse{Removed: removed})
	}
}
