package handlers

import (
	"encoding/json"
	"net/http"

	slackcmd "github.com/diegoclair/league-timekeeper-bot/internal/slack"
	"github.com/slack-go/slack/slackevents"
)

// HandleEvents receives Events API callbacks. Channel messages that match
// an advance trigger phrase advance the week of that channel.
func (h *SlackHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifyRequest(w, r)
	if !ok {
		return
	}

	// Slack redelivers events it considers unacknowledged. The first
	// delivery already acted on the trigger.
	if r.Header.Get("X-Slack-Retry-Num") != "" {
		w.WriteHeader(http.StatusOK)
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(challenge.Challenge))
		return

	case slackevents.CallbackEvent:
		if msg, ok := event.InnerEvent.Data.(*slackevents.MessageEvent); ok {
			h.handleMessage(r, msg)
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (h *SlackHandler) handleMessage(r *http.Request, msg *slackevents.MessageEvent) {
	// ignore our own announcements and edits/joins
	if msg.BotID != "" || msg.SubType != "" || msg.Channel == "" {
		return
	}
	if !slackcmd.IsAdvanceTrigger(msg.Text) {
		return
	}

	adv, err := h.timekeeper.AdvanceNow(r.Context(), msg.Channel)
	if err != nil {
		h.logger.Error().Err(err).Str("channel_id", msg.Channel).Str("user_id", msg.User).Msg("chat advance trigger failed")
		return
	}
	if adv == nil {
		return
	}

	h.logger.Info().
		Str("channel_id", msg.Channel).
		Str("user_id", msg.User).
		Int("season", adv.ToSeason).
		Int("week", adv.ToWeek).
		Msg("week advanced from chat trigger")
}
