package handlers

import (
	"net/http"
	"strconv"

	"idle_garden/internal/repository"

	"github.com/gin-gonic/gin"
)

type CreateUserRequest struct {
	GoogleID string `json:"google_id" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
}

// CreateUser registers an account directly (public, used by the login
// flow). Duplicate google_id or email yields 409.
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	user, err := h.UserService.Register(c.Request.Context(), req.GoogleID, req.Email, req.Name)
	if err != nil {
		respondServiceErr(c, "register", err)
		return
	}

	respondMsg(c, http.StatusCreated, "User created successfully", user)
}

// pathUserID parses :userId and enforces self-access: callers may only
// touch their own account.
func pathUserID(c *gin.Context) (int64, bool) {
	callerID, ok := getUserID(c)
	if !ok {
		respondErr(c, http.StatusUnauthorized, "unauthorized")
		return 0, false
	}

	id, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		respondErr(c, http.StatusNotFound, "user not found")
		return 0, false
	}
	if id != callerID {
		respondErr(c, http.StatusForbidden, "you can only access your own data")
		return 0, false
	}
	return id, true
}

func (h *Handler) GetUser(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	user, err := h.UserService.Get(c.Request.Context(), userID)
	if err != nil {
		respondServiceErr(c, "get_user", err)
		return
	}
	respondOK(c, http.StatusOK, user)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	var patch repository.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if patch.PremiumSlots != nil && (*patch.PremiumSlots < 0 || *patch.PremiumSlots > 4) {
		respondErr(c, http.StatusBadRequest, "premium_slots must be between 0 and 4")
		return
	}

	user, err := h.UserService.Update(c.Request.Context(), userID, patch)
	if err != nil {
		respondServiceErr(c, "update_user", err)
		return
	}
	respondMsg(c, http.StatusOK, "User updated successfully", user)
}

// GetGameState returns the aggregate state: user, trees with lazily
// computed time-left, slot stats.
func (h *Handler) GetGameState(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	state, err := h.UserService.State(c.Request.Context(), userID)
	if err != nil {
		respondServiceErr(c, "state", err)
		return
	}
	respondOK(c, http.StatusOK, state)
}

func (h *Handler) TouchLogin(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	if err := h.UserService.TouchLastLogin(c.Request.Context(), userID); err != nil {
		respondServiceErr(c, "login", err)
		return
	}
	respondMsg(c, http.StatusOK, "Last login updated", nil)
}
