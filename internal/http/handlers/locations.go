package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"idle_garden/internal/game"
	"idle_garden/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// ListLocations handles GET /locations.
func (h *Handler) ListLocations(c *gin.Context) {
	repo := repository.NewLocationRepository(h.DB)
	locations, err := repo.GetAll(c.Request.Context())
	if err != nil {
		respondErr(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": locations, "count": len(locations)})
}

// AvailableLocations handles GET /locations/available?gold=.
func (h *Handler) AvailableLocations(c *gin.Context) {
	gold, _ := strconv.ParseInt(c.Query("gold"), 10, 64)

	repo := repository.NewLocationRepository(h.DB)
	locations, err := repo.GetAll(c.Request.Context())
	if err != nil {
		respondErr(c, http.StatusInternalServerError, "internal error")
		return
	}

	available := game.FilterLocations(locations, gold)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": available, "count": len(available)})
}

// GetLocation handles GET /locations/:locationId.
func (h *Handler) GetLocation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("locationId"), 10, 64)
	if err != nil {
		respondErr(c, http.StatusNotFound, "location not found")
		return
	}

	repo := repository.NewLocationRepository(h.DB)
	loc, err := repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			respondErr(c, http.StatusNotFound, "location not found")
			return
		}
		respondErr(c, http.StatusInternalServerError, "internal error")
		return
	}
	respondOK(c, http.StatusOK, loc)
}

type LocationActionRequest struct {
	LocationID int64 `json:"location_id" binding:"required"`
}

// BuyLocation handles POST /locations/buy.
func (h *Handler) BuyLocation(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		respondErr(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req LocationActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.LocationService.Buy(c.Request.Context(), userID, req.LocationID)
	if err != nil {
		respondServiceErr(c, "buy_location", err)
		return
	}
	respondMsg(c, http.StatusOK, "Location unlocked", result)
}

// SelectLocation handles POST /locations/select.
func (h *Handler) SelectLocation(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		respondErr(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req LocationActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	loc, err := h.LocationService.Select(c.Request.Context(), userID, req.LocationID)
	if err != nil {
		respondServiceErr(c, "select_location", err)
		return
	}
	respondMsg(c, http.StatusOK, "Location selected", loc)
}
