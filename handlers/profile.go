package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/aleembhd/pocket-pals-budget/models"
	"github.com/aleembhd/pocket-pals-budget/services"
	"github.com/aleembhd/pocket-pals-budget/utils"
)

// celebrationDuration matches how long the SPA shows confetti before it is
// dismissed.
const celebrationDuration = 5 * time.Second

type ProfileHandler struct {
	Profile *services.ProfileService
	Hub     *EventHub
	Log     *logrus.Logger
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.Profile.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile, "complete": profile.Complete()})
}

// UpdateProfile saves the profile. Completing it for the first time awards
// the Profile Master badge and kicks off the celebration events.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	completedNow, err := h.Profile.Save(c.Request.Context(), profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}

	h.Log.WithFields(logrus.Fields{
		"email":    utils.MaskEmail(profile.Email),
		"phone":    utils.MaskPhone(profile.Phone),
		"complete": profile.Complete(),
	}).Info("profile saved")

	if completedNow {
		// With an empty ledger and zero budget the only rule that holds is
		// Profile Master, which is exactly the badge being awarded.
		badges := services.ComputeBadges(nil, decimal.Zero, true, time.Now())
		if len(badges) == 1 {
			h.Hub.Broadcast(Event{Type: EventBadgeAwarded, Payload: badges[0]})
		}
		h.Hub.BroadcastLater(celebrationDuration, Event{Type: EventCelebrationEnd})
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile, "complete": profile.Complete(), "completedNow": completedNow})
}
