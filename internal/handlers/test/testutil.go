package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/league-timekeeper-bot/internal/handlers"
	"github.com/diegoclair/league-timekeeper-bot/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	SigningSecret = "test-signing-secret"
	APIToken      = "test-api-token"
)

type ServiceMocks struct {
	TimekeeperServiceMock *mocks.MockTimekeeperService
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, router http.Handler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		TimekeeperServiceMock: mocks.NewMockTimekeeperService(ctrl),
	}

	logger := zerolog.Nop()
	slackHandler := handlers.New(m.TimekeeperServiceMock, SigningSecret, logger)
	timerHandler := handlers.NewTimerHandler(m.TimekeeperServiceMock, APIToken)
	router = handlers.NewRouter(logger, slackHandler, timerHandler)

	return
}

// CreateTimerRequest creates an authenticated request for the JSON timer routes
func CreateTimerRequest(path string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+APIToken)
	return req
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, text, channelID, userID string) *http.Request {
	t.Helper()

	// Create form data matching Slack's slash command format
	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {"T123456789"},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {"league"},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {"/timekeeper"},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)

	// Set content type
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	signRequest(req, body)

	return req
}

// CreateEventRequest creates a properly signed Events API request
func CreateEventRequest(t *testing.T, payload string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, "/slack/events", strings.NewReader(payload))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	signRequest(req, payload)

	return req
}

// MessageEventPayload builds an event_callback body for a channel message
func MessageEventPayload(channelID, userID, text, botID string) string {
	return fmt.Sprintf(`{
		"token": "test-token",
		"team_id": "T123456789",
		"api_app_id": "A123456789",
		"type": "event_callback",
		"event_id": "Ev123456",
		"event_time": 1700000000,
		"event": {
			"type": "message",
			"channel": %q,
			"user": %q,
			"text": %q,
			"bot_id": %q,
			"ts": "1700000000.000100",
			"channel_type": "channel"
		}
	}`, channelID, userID, text, botID)
}

func signRequest(req *http.Request, body string) {
	// Generate Slack signature
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", generateSlackSignature(SigningSecret, timestamp, body))
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
