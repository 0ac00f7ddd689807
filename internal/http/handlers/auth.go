package handlers

import (
	"fmt"
	"net/http"

	"idle_garden/internal/domain"
	"idle_garden/internal/service"

	"github.com/gin-gonic/gin"
)

type GoogleAuthRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// GoogleAuth verifies a Google ID token, creates the account on first
// login, and returns a session token.
func (h *Handler) GoogleAuth(c *gin.Context) {
	var req GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "bad request")
		return
	}

	ctx := c.Request.Context()

	var gu *service.GoogleUser
	if h.Cfg.DevMode {
		// DEV MODE: the token body is treated as a fake google id
		gu = &service.GoogleUser{
			GoogleID: req.IDToken,
			Email:    fmt.Sprintf("%s@dev.local", req.IDToken),
			Name:     "Dev User",
		}
	} else {
		verified, err := service.VerifyGoogleIDToken(ctx, req.IDToken, h.Cfg.GoogleClientID)
		if err != nil {
			respondErr(c, http.StatusUnauthorized, "invalid google id token")
			return
		}
		gu = verified
	}

	user, err := h.UserService.LoginWithGoogle(ctx, gu)
	if err != nil {
		respondServiceErr(c, "auth", err)
		return
	}

	token, err := service.GenerateJWT(user.ID, user.GoogleID, user.Email)
	if err != nil {
		respondErr(c, http.StatusInternalServerError, "token generation failed")
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"access_token": token,
		"user":         authUserSummary(user),
	})
}

// Profile returns the identity encoded in the verified session token.
func (h *Handler) AuthProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		respondErr(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	respondOK(c, http.StatusOK, gin.H{
		"user_id":   userID,
		"google_id": c.GetString("google_id"),
		"email":     c.GetString("email"),
	})
}

// AuthStatus reports that the auth service is up.
func (h *Handler) AuthStatus(c *gin.Context) {
	respondOK(c, http.StatusOK, gin.H{
		"service":  "auth",
		"status":   "ok",
		"dev_mode": h.Cfg.DevMode,
	})
}

func authUserSummary(u *domain.User) gin.H {
	return gin.H{
		"id":               u.ID,
		"email":            u.Email,
		"name":             u.Name,
		"gold":             u.Gold,
		"total_earnings":   u.TotalEarnings,
		"total_trees_sold": u.TotalTreesSold,
	}
}
