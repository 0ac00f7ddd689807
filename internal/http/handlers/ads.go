package handlers

import (
	"net/http"

	"idle_garden/internal/domain"
	"idle_garden/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// AdStatus handles GET /ads/status.
func (h *Handler) AdStatus(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		respondErr(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	status, err := h.AdsService.Status(c.Request.Context(), userID)
	if err != nil {
		respondServiceErr(c, "ad_status", err)
		return
	}
	respondOK(c, http.StatusOK, status)
}

type ClaimAdRequest struct {
	BoostType domain.BoostType `json:"boost_type" binding:"required,oneof=time sell"`
}

// ClaimAdReward handles POST /ads/reward.
func (h *Handler) ClaimAdReward(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		respondErr(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req ClaimAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.AdsService.Claim(c.Request.Context(), userID, req.BoostType)
	if err != nil {
		respondServiceErr(c, "ad_claim", err)
		return
	}

	middleware.GameActions.WithLabelValues("ad_claim", "ok").Inc()
	msg := "Sell multiplier boost activated!"
	if req.BoostType == domain.BoostTime {
		msg = "Time reduction boost activated!"
	}
	respondMsg(c, http.StatusOK, msg, result)
}
