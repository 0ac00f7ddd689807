package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"idle_garden/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doServiceErr(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	respondServiceErr(c, "test", err)
	return w
}

func TestRespondServiceErrStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"tree not found", service.ErrTreeNotFound, http.StatusNotFound},
		{"seed not found", service.ErrSeedNotFound, http.StatusNotFound},
		{"user not found", service.ErrUserNotFound, http.StatusNotFound},
		{"location not found", service.ErrLocationNotFound, http.StatusNotFound},
		{"not owner", service.ErrNotTreeOwner, http.StatusForbidden},
		{"user exists", service.ErrUserAlreadyExists, http.StatusConflict},
		{"slot occupied", service.ErrSlotOccupied, http.StatusConflict},
		{"location unlocked", service.ErrLocationAlreadyUnlocked, http.StatusConflict},
		{"insufficient funds", service.ErrInsufficientFunds, http.StatusBadRequest},
		{"invalid slot", service.ErrInvalidSlot, http.StatusBadRequest},
		{"already ready", service.ErrTreeAlreadyReady, http.StatusBadRequest},
		{"reduction too high", service.ErrReductionTooHigh, http.StatusBadRequest},
		{"ad limit", service.ErrDailyAdLimit, http.StatusBadRequest},
		{"location locked", service.ErrLocationNotUnlocked, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doServiceErr(t, tc.err)
			assert.Equal(t, tc.want, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestRespondServiceErrTreeNotReady(t *testing.T) {
	w := doServiceErr(t, &service.TreeNotReadyError{TimeLeft: 42})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(42), body["time_left"])
}

func TestRespondServiceErrHidesInternalDetails(t *testing.T) {
	w := doServiceErr(t, errors.New("pq: connection refused"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "internal error", body["message"])
}

func TestGetUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := getUserID(c)
	assert.False(t, ok, "no user_id set")

	c.Set("user_id", int64(7))
	id, ok := getUserID(c)
	require.True(t, ok)
	assert.Equal(t, int64(7), id)
}
