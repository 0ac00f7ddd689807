package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"idle_garden/internal/game"
	"idle_garden/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// ListSeeds handles GET /seeds.
func (h *Handler) ListSeeds(c *gin.Context) {
	repo := repository.NewSeedRepository(h.DB)
	seeds, err := repo.GetAll(c.Request.Context())
	if err != nil {
		respondErr(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": seeds, "count": len(seeds)})
}

// AvailableSeeds handles GET /seeds/available?gold=&totalTreesSold=.
func (h *Handler) AvailableSeeds(c *gin.Context) {
	gold, _ := strconv.ParseInt(c.Query("gold"), 10, 64)
	treesSold, _ := strconv.ParseInt(c.Query("totalTreesSold"), 10, 64)

	repo := repository.NewSeedRepository(h.DB)
	seeds, err := repo.GetAll(c.Request.Context())
	if err != nil {
		respondErr(c, http.StatusInternalServerError, "internal error")
		return
	}

	available := game.FilterSeeds(seeds, gold, treesSold, time.Now())
	c.JSON(http.StatusOK, gin.H{"success": true, "data": available, "count": len(available)})
}

// GetSeed handles GET /seeds/:seedId.
func (h *Handler) GetSeed(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("seedId"), 10, 64)
	if err != nil {
		respondErr(c, http.StatusNotFound, "seed not found")
		return
	}

	repo := repository.NewSeedRepository(h.DB)
	seed, err := repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			respondErr(c, http.StatusNotFound, "seed not found")
			return
		}
		respondErr(c, http.StatusInternalServerError, "internal error")
		return
	}
	respondOK(c, http.StatusOK, seed)
}
