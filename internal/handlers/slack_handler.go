package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/diegoclair/league-timekeeper-bot/internal/domain/contract"
	"github.com/diegoclair/league-timekeeper-bot/internal/domain/service"
	"github.com/diegoclair/league-timekeeper-bot/internal/notifier"
	slackcmd "github.com/diegoclair/league-timekeeper-bot/internal/slack"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	timekeeper    contract.TimekeeperService
	signingSecret string
	logger        zerolog.Logger
}

func New(timekeeper contract.TimekeeperService, signingSecret string, logger zerolog.Logger) *SlackHandler {
	return &SlackHandler{
		timekeeper:    timekeeper,
		signingSecret: signingSecret,
		logger:        logger.With().Str("component", "slack_handler").Logger(),
	}
}

// verifyRequest checks the Slack signature and returns the request body
func (h *SlackHandler) verifyRequest(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	return body, true
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.verifyRequest(w, r); !ok {
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error()+". Use `/timekeeper help` to see available commands")
		return
	}

	// Handle command
	response := h.handleCommand(r.Context(), cmd, &s)

	writeJSON(w, http.StatusOK, response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdStart:
		return h.handleStart(ctx, cmd, slashCmd)
	case slackcmd.CmdStop:
		return h.handleStop(ctx, slashCmd)
	case slackcmd.CmdStatus:
		return h.handleStatus(ctx, slashCmd)
	case slackcmd.CmdAdvance:
		return h.handleAdvance(ctx, slashCmd)
	case slackcmd.CmdSet:
		return h.handleSet(ctx, cmd, slashCmd)
	case slackcmd.CmdHistory:
		return h.handleHistory(ctx, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Command not recognized")
	}
}

func (h *SlackHandler) handleStart(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	duration, err := cmd.Duration()
	if errors.Is(err, slackcmd.ErrHoursOutOfRange) {
		return h.createErrorResponse(fmt.Sprintf("The countdown must be between 0 and %.0f hours", slackcmd.MaxHours))
	}
	if err != nil {
		return h.createErrorResponse("Please provide the countdown length in hours: `/timekeeper start 48`")
	}

	st, err := h.timekeeper.Start(ctx, slashCmd.ChannelID, duration)
	if err != nil {
		return h.serviceError("Error starting countdown", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text: fmt.Sprintf("⏳ <@%s> started the advance countdown: *%s* until Season %d, %s advances (deadline <!date^%d^{date_short_pretty} {time}|%s>).",
			slashCmd.UserID,
			notifier.FormatRemaining(st.Remaining),
			st.Season,
			service.WeekLabel(st.Week),
			st.Deadline.Unix(),
			st.Deadline.UTC().Format(time.RFC1123)),
	}
}

func (h *SlackHandler) handleStop(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	if err := h.timekeeper.Stop(ctx, slashCmd.ChannelID); err != nil {
		return h.serviceError("Error stopping countdown", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("🛑 <@%s> stopped the advance countdown.", slashCmd.UserID),
	}
}

func (h *SlackHandler) handleStatus(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	st, err := h.timekeeper.Status(ctx, slashCmd.ChannelID)
	if err != nil {
		return h.serviceError("Error checking status", err)
	}

	var text strings.Builder
	text.WriteString("*Timekeeper status*\n")
	text.WriteString(fmt.Sprintf("• Current: Season %d, %s\n", st.Season, service.WeekLabel(st.Week)))
	if st.Active {
		text.WriteString(fmt.Sprintf("• Time left: *%s*\n", notifier.FormatRemaining(st.Remaining)))
		text.WriteString(fmt.Sprintf("• Deadline: <!date^%d^{date_short_pretty} {time}|%s>",
			st.Deadline.Unix(), st.Deadline.UTC().Format(time.RFC1123)))
	} else {
		text.WriteString("• No countdown running. Use `/timekeeper start <hours>` to start one.")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleAdvance(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	adv, err := h.timekeeper.AdvanceNow(ctx, slashCmd.ChannelID)
	if err != nil {
		return h.serviceError("Error advancing week", err)
	}
	if adv == nil {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "The week was just advanced by someone else, nothing to do.",
		}
	}

	// the channel announcement comes from the notifier
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("✅ Advanced from Season %d, %s to Season %d, %s.",
			adv.FromSeason, service.WeekLabel(adv.FromWeek),
			adv.ToSeason, service.WeekLabel(adv.ToWeek)),
	}
}

func (h *SlackHandler) handleSet(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	season, week, err := cmd.SeasonWeek()
	if err != nil {
		return h.createErrorResponse("Use: `/timekeeper set <season> <week>` (week 0-14)")
	}

	st, err := h.timekeeper.SetSeasonWeek(ctx, slashCmd.ChannelID, season, week)
	if err != nil {
		return h.serviceError("Error setting week", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("📅 League set to Season %d, %s.", st.Season, service.WeekLabel(st.Week)),
	}
}

func (h *SlackHandler) handleHistory(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	history, err := h.timekeeper.History(ctx, slashCmd.ChannelID, 0)
	if err != nil {
		return h.serviceError("Error loading history", err)
	}

	if len(history) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No advancements recorded yet.",
		}
	}

	var text strings.Builder
	text.WriteString("*Recent advancements:*\n")
	for _, adv := range history {
		text.WriteString(fmt.Sprintf("• %s: Season %d, %s → Season %d, %s (%s)\n",
			adv.AdvancedAt.UTC().Format("Jan 02 15:04 MST"),
			adv.FromSeason, service.WeekLabel(adv.FromWeek),
			adv.ToSeason, service.WeekLabel(adv.ToWeek),
			adv.Source))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// serviceError maps domain errors to user facing messages; anything else is logged
func (h *SlackHandler) serviceError(prefix string, err error) *slack.Msg {
	switch {
	case errors.Is(err, service.ErrInvalidDuration):
		return h.createErrorResponse(fmt.Sprintf("The countdown must be between 0 and %.0f hours", slackcmd.MaxHours))
	case errors.Is(err, service.ErrInvalidWeek):
		return h.createErrorResponse("Week must be between 0 and 14")
	case errors.Is(err, service.ErrInvalidSeason):
		return h.createErrorResponse("Season must not be negative")
	case errors.Is(err, service.ErrManagerClosed):
		return h.createErrorResponse("The timekeeper is restarting, please try again in a moment")
	}

	h.logger.Error().Err(err).Msg(prefix)
	return h.createErrorResponse(fmt.Sprintf("%s: %v", prefix, err))
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, h.createErrorResponse(message))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
