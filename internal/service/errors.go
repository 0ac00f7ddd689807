package service

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrSeedNotFound     = errors.New("seed not found")
	ErrTreeNotFound     = errors.New("planted tree not found")
	ErrLocationNotFound = errors.New("location not found")

	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidSlot       = errors.New("invalid slot")
	ErrSlotOccupied      = errors.New("slot is already occupied")
	ErrNotTreeOwner      = errors.New("this tree does not belong to you")
	ErrTreeAlreadyReady  = errors.New("tree is already ready to harvest")
	ErrReductionTooHigh  = errors.New("time reduction too high for click count")
	ErrDailyAdLimit      = errors.New("daily ad limit of 2 reached, try again tomorrow")

	ErrUserAlreadyExists       = errors.New("user with this Google ID or email already exists")
	ErrLocationAlreadyUnlocked = errors.New("location already unlocked")
	ErrLocationNotUnlocked     = errors.New("location is not unlocked")
)

// TreeNotReadyError is returned by Sell when the tree is still growing; it
// carries the remaining seconds for the client.
type TreeNotReadyError struct {
	TimeLeft int64
}

func (e *TreeNotReadyError) Error() string {
	return fmt.Sprintf("tree is not ready yet, wait %d more seconds", e.TimeLeft)
}
