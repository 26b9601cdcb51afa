package handler

import (
	"context"
	"net/http"

	"github.com/osse101/CaseOpener_Go/internal/domain"
	"github.com/osse101/CaseOpener_Go/internal/game"
)

// CaseRequest names the case to open or purchase
type CaseRequest struct {
	CaseID string `json:"case_id" validate:"required,max=64,excludesall=\x00\n\r\t"`
}

// ItemRequest names one inventory entry or market listing
type ItemRequest struct {
	ItemID string `json:"item_id" validate:"required,uuid"`
}

// TradeUpRequest lists the inventory entries to consume
type TradeUpRequest struct {
	ItemIDs []string `json:"item_ids" validate:"required,dive,required"`
}

// MarketResponse maps inventory entry ids to their current market price
type MarketResponse struct {
	Prices map[string]float64 `json:"prices"`
}

// HandleOpenCase opens a case and adds the drop to the inventory
// @Summary Open case
// @Description Pays the case price, rolls a drop and stores it
// @Tags game
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body CaseRequest true "Case"
// @Success 200 {object} game.OpenResult
// @Failure 400 {object} ErrorResponse "Not enough money"
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse "Cooldown"
// @Security ApiKeyAuth
// @Router /game/{userID}/open [post]
func HandleOpenCase(svc game.Service) http.HandlerFunc {
	return handleUserRequest("Open case", http.StatusOK,
		func(ctx context.Context, userID string, req CaseRequest) (*game.OpenResult, error) {
			return svc.OpenCase(ctx, userID, req.CaseID)
		})
}

// HandlePurchaseCase charges the case price without opening it
// @Summary Purchase case
// @Tags game
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body CaseRequest true "Case"
// @Success 200 {object} domain.GameState
// @Failure 400 {object} ErrorResponse "Not enough money"
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /game/{userID}/purchase [post]
func HandlePurchaseCase(svc game.Service) http.HandlerFunc {
	return handleUserRequest("Purchase case", http.StatusOK,
		func(ctx context.Context, userID string, req CaseRequest) (*domain.GameState, error) {
			return svc.PurchaseCase(ctx, userID, req.CaseID)
		})
}

// HandleSellItem sells one inventory entry
// @Summary Sell item
// @Tags game
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body ItemRequest true "Inventory entry"
// @Success 200 {object} game.SellResult
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /game/{userID}/sell [post]
func HandleSellItem(svc game.Service) http.HandlerFunc {
	return handleUserRequest("Sell item", http.StatusOK,
		func(ctx context.Context, userID string, req ItemRequest) (*game.SellResult, error) {
			return svc.SellItem(ctx, userID, req.ItemID)
		})
}

// HandleSellAll sells the whole inventory
// @Summary Sell all items
// @Tags game
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} game.SellResult
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /game/{userID}/sell-all [post]
func HandleSellAll(svc game.Service) http.HandlerFunc {
	return handleUserAction("Sell all", svc.SellAll)
}

// HandleTradeUp exchanges ten items of one rarity for one of the next tier
// @Summary Trade-up contract
// @Tags game
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body TradeUpRequest true "Ten inventory entries"
// @Success 200 {object} game.TradeUpResult
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Invalid contract"
// @Security ApiKeyAuth
// @Router /game/{userID}/trade-up [post]
func HandleTradeUp(svc game.Service) http.HandlerFunc {
	return handleUserRequest("Trade up", http.StatusOK,
		func(ctx context.Context, userID string, req TradeUpRequest) (*game.TradeUpResult, error) {
			return svc.TradeUp(ctx, userID, req.ItemIDs)
		})
}

// HandleGetMarket returns market prices for the player's inventory
// @Summary Market prices
// @Tags game
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} MarketResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /game/{userID}/market [get]
func HandleGetMarket(svc game.Service) http.HandlerFunc {
	return handleUserAction("Get market", func(ctx context.Context, userID string) (MarketResponse, error) {
		prices, err := svc.MarketPrices(ctx, userID)
		if err != nil {
			return MarketResponse{}, err
		}
		return MarketResponse{Prices: prices}, nil
	})
}

// HandleBuyMarketItem buys a copy of a market listing
// @Summary Buy market item
// @Tags game
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body ItemRequest true "Listing"
// @Success 200 {object} game.BuyResult
// @Failure 400 {object} ErrorResponse "Not enough money"
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /game/{userID}/market/buy [post]
func HandleBuyMarketItem(svc game.Service) http.HandlerFunc {
	return handleUserRequest("Buy market item", http.StatusOK,
		func(ctx context.Context, userID string, req ItemRequest) (*game.BuyResult, error) {
			return svc.BuyMarketItem(ctx, userID, req.ItemID)
		})
}
