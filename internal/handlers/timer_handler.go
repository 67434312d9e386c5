package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/diegoclair/league-timekeeper-bot/internal/domain/contract"
	"github.com/diegoclair/league-timekeeper-bot/internal/domain/entity"
	"github.com/diegoclair/league-timekeeper-bot/internal/domain/service"
	"github.com/diegoclair/league-timekeeper-bot/pkg/models"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
)

// TimerHandler serves read-only JSON views of channel timers
type TimerHandler struct {
	timekeeper contract.TimekeeperService
	token      string
}

func NewTimerHandler(timekeeper contract.TimekeeperService, token string) *TimerHandler {
	return &TimerHandler{timekeeper: timekeeper, token: token}
}

// Routes mounts the timer routes behind bearer token auth. Without a
// token configured they are not mounted at all.
func (h *TimerHandler) Routes(r chi.Router) {
	if h.token == "" {
		return
	}

	r.Group(func(r chi.Router) {
		r.Use(h.requireToken)
		r.Get("/timers/{channelID}", h.handleStatus)
		r.Get("/timers/{channelID}/history", h.handleHistory)
	})
}

func (h *TimerHandler) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) != 1 {
			writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *TimerHandler) handleStatus(w http.ResponseWriter, r *http.Request) {
	st, err := h.timekeeper.Peek(r.Context(), chi.URLParam(r, "channelID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTimerStatus(st))
}

func (h *TimerHandler) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	history, err := h.timekeeper.History(r.Context(), chi.URLParam(r, "channelID"), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]models.Advancement, 0, len(history))
	for _, adv := range history {
		out = append(out, models.Advancement{
			ID:         adv.ID,
			FromSeason: adv.FromSeason,
			FromWeek:   adv.FromWeek,
			ToSeason:   adv.ToSeason,
			ToWeek:     adv.ToWeek,
			Source:     string(adv.Source),
			AdvancedAt: adv.AdvancedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func toTimerStatus(st entity.Status) models.TimerStatus {
	out := models.TimerStatus{
		ChannelID:        st.ChannelID,
		Season:           st.Season,
		Week:             st.Week,
		WeekLabel:        service.WeekLabel(st.Week),
		IsActive:         st.Active,
		RemainingSeconds: int64(st.Remaining.Seconds()),
	}
	if st.Active {
		deadline := st.Deadline.UTC()
		out.Deadline = &deadline
	}
	return out
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrEmptyChannel):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrTimerNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrManagerClosed):
		status = http.StatusServiceUnavailable
	default:
		hlog.FromRequest(r).Error().Err(err).Msg("timer request failed")
	}
	writeJSON(w, status, models.ErrorResponse{Error: err.Error()})
}
