package handlers

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/sirupsen/logrus"

	"github.com/aleembhd/pocket-pals-budget/utils"
)

// Event types pushed over the websocket stream.
const (
	EventBudgetAlert    = "budget_alert"
	EventBadgeAwarded   = "badge_awarded"
	EventCelebrationEnd = "celebration_end"
	EventGoalCompleted  = "goal_completed"
	EventWeeklyTip      = "weekly_tip"
	EventDataReset      = "data_reset"
)

// Event is one message on the stream.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// EventHub pushes derived-state events (threshold alerts, badge awards, goal
// completions, weekly tips) to connected SPA clients. Delayed pushes go
// through the scheduler so they die with the process instead of firing into
// the void.
type EventHub struct {
	m     *melody.Melody
	log   *logrus.Logger
	sched *utils.Scheduler
}

func NewEventHub(log *logrus.Logger, sched *utils.Scheduler) *EventHub {
	m := melody.New()
	m.Config.MaxMessageSize = 1024
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleDisconnect(func(s *melody.Session) {
		log.Debug("event stream client disconnected")
	})
	m.HandleError(func(s *melody.Session, err error) {
		log.WithError(err).Warn("event stream error")
	})

	return &EventHub{m: m, log: log, sched: sched}
}

// HandleWS upgrades the request to a websocket session.
func (h *EventHub) HandleWS(c *gin.Context) {
	if err := h.m.HandleRequest(c.Writer, c.Request); err != nil {
		h.log.WithError(err).Warn("failed to upgrade websocket")
	}
}

// Broadcast sends an event to every connected client.
func (h *EventHub) Broadcast(evt Event) {
	msg, err := json.Marshal(evt)
	if err != nil {
		h.log.WithError(err).Warn("failed to encode event")
		return
	}
	if err := h.m.Broadcast(msg); err != nil {
		h.log.WithError(err).Warn("failed to broadcast event")
	}
}

// BroadcastLater schedules a one-shot delayed broadcast. The returned cancel
// func drops it; a broadcast scheduled before shutdown is silently dropped.
func (h *EventHub) BroadcastLater(delay time.Duration, evt Event) (cancel func()) {
	return h.sched.After(delay, func() {
		h.Broadcast(evt)
	})
}

// Close shuts the hub down, closing every open session.
func (h *EventHub) Close() error {
	return h.m.Close()
}
