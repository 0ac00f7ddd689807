package handlers

import (
	"fmt"
	"net/http"

	"idle_garden/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

type PlantRequest struct {
	SeedID    int64 `json:"seed_id" binding:"required"`
	SlotIndex *int  `json:"slot_index" binding:"required,min=0,max=4"`
}

// Plant handles POST /game/plant.
func (h *Handler) Plant(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		respondErr(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req PlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.GameService.Plant(c.Request.Context(), userID, req.SeedID, *req.SlotIndex)
	if err != nil {
		respondServiceErr(c, "plant", err)
		return
	}

	middleware.GameActions.WithLabelValues("plant", "ok").Inc()
	respondMsg(c, http.StatusCreated, "Tree planted successfully", gin.H{
		"planted_tree": result.Tree,
		"seed":         result.Seed,
		"user": gin.H{
			"gold":        result.Gold,
			"total_slots": result.TotalSlots,
		},
	})
}

type ClickRequest struct {
	PlantedTreeID int64 `json:"planted_tree_id" binding:"required"`
	Clicks        int   `json:"clicks" binding:"required,min=1,max=1000"`
	TimeReduction int64 `json:"time_reduction" binding:"required,min=1,max=10000"`
}

// Click handles POST /game/click.
func (h *Handler) Click(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		respondErr(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req ClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.GameService.Click(c.Request.Context(), userID, req.PlantedTreeID, req.Clicks, req.TimeReduction)
	if err != nil {
		respondServiceErr(c, "click", err)
		return
	}

	middleware.GameActions.WithLabelValues("click", "ok").Inc()
	respondMsg(c, http.StatusOK,
		fmt.Sprintf("Watered tree %d times (%ds reduced)", result.ClicksProcessed, result.TimeReduced),
		result)
}

type SellRequest struct {
	PlantedTreeID int64 `json:"planted_tree_id" binding:"required"`
}

// Sell handles POST /game/sell.
func (h *Handler) Sell(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		respondErr(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req SellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.GameService.Sell(c.Request.Context(), userID, req.PlantedTreeID)
	if err != nil {
		respondServiceErr(c, "sell", err)
		return
	}

	middleware.GameActions.WithLabelValues("sell", "ok").Inc()
	respondMsg(c, http.StatusOK,
		fmt.Sprintf("Sold %s (%s) for %dg", result.SeedName, result.Quality, result.SoldPrice),
		gin.H{
			"sold_price": result.SoldPrice,
			"quality":    result.Quality,
			"seed_name":  result.SeedName,
			"user": gin.H{
				"gold":             result.Gold,
				"total_earnings":   result.TotalEarnings,
				"total_trees_sold": result.TotalTreesSold,
			},
		})
}
