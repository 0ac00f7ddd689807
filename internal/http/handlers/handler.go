package handlers

import (
	"errors"
	"net/http"

	"idle_garden/internal/http/middleware"
	"idle_garden/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HandlerConfig holds configuration shared by the handlers.
type HandlerConfig struct {
	GoogleClientID string
	DevMode        bool
}

type Handler struct {
	DB              *pgxpool.Pool
	Cfg             HandlerConfig
	UserService     *service.UserService
	GameService     *service.GameService
	AdsService      *service.AdsService
	LocationService *service.LocationService
}

func NewHandler(db *pgxpool.Pool, cfg HandlerConfig) *Handler {
	return &Handler{
		DB:              db,
		Cfg:             cfg,
		UserService:     service.NewUserService(db),
		GameService:     service.NewGameService(db),
		AdsService:      service.NewAdsService(db),
		LocationService: service.NewLocationService(db),
	}
}

// getUserID extracts the authenticated user id set by the JWT middleware.
func getUserID(c *gin.Context) (int64, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	switch v := uidVal.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}

// Every data endpoint answers with the {success, data, message} envelope.

func respondOK(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondMsg(c *gin.Context, status int, msg string, data any) {
	c.JSON(status, gin.H{"success": true, "message": msg, "data": data})
}

func respondErr(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "message": msg})
}

// respondServiceErr maps service sentinels onto HTTP statuses and records
// the outcome metric for the given action.
func respondServiceErr(c *gin.Context, action string, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"

	var notReady *service.TreeNotReadyError
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrSeedNotFound),
		errors.Is(err, service.ErrTreeNotFound),
		errors.Is(err, service.ErrLocationNotFound):
		status = http.StatusNotFound
		msg = err.Error()
	case errors.Is(err, service.ErrNotTreeOwner):
		status = http.StatusForbidden
		msg = err.Error()
	case errors.Is(err, service.ErrUserAlreadyExists),
		errors.Is(err, service.ErrSlotOccupied),
		errors.Is(err, service.ErrLocationAlreadyUnlocked):
		status = http.StatusConflict
		msg = err.Error()
	case errors.As(err, &notReady):
		middleware.GameActions.WithLabelValues(action, "rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   notReady.Error(),
			"time_left": notReady.TimeLeft,
		})
		return
	case errors.Is(err, service.ErrInsufficientFunds),
		errors.Is(err, service.ErrInvalidSlot),
		errors.Is(err, service.ErrTreeAlreadyReady),
		errors.Is(err, service.ErrReductionTooHigh),
		errors.Is(err, service.ErrDailyAdLimit),
		errors.Is(err, service.ErrLocationNotUnlocked):
		status = http.StatusBadRequest
		msg = err.Error()
	}

	outcome := "rejected"
	if status == http.StatusInternalServerError {
		outcome = "error"
	}
	middleware.GameActions.WithLabelValues(action, outcome).Inc()
	respondErr(c, status, msg)
}
