package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/league-timekeeper-bot/internal/domain"
	"github.com/diegoclair/league-timekeeper-bot/internal/domain/contract"
	"github.com/slack-go/slack"
	"golang.org/x/time/rate"
)

// Slack posts announcements to the Slack channel that owns the timer
type Slack struct {
	client  contract.SlackClient
	limiter *rate.Limiter
}

func NewSlack(client contract.SlackClient, ratePerSec int) *Slack {
	return &Slack{
		client:  client,
		limiter: newLimiter(ratePerSec),
	}
}

func (s *Slack) SendReminder(ctx context.Context, channelID string, threshold domain.Threshold, remaining time.Duration) error {
	return s.post(ctx, channelID, reminderText(threshold, remaining))
}

func (s *Slack) SendAdvancement(ctx context.Context, channelID string, season, week int) error {
	return s.post(ctx, channelID, advancementText(season, week))
}

func (s *Slack) post(ctx context.Context, channelID, text string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	_, _, err := s.client.PostMessageContext(ctx, channelID, slack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("failed to post slack message: %w", err)
	}
	return nil
}

// newLimiter builds a token bucket whose burst equals its rate
func newLimiter(ratePerSec int) *rate.Limiter {
	if ratePerSec <= 0 {
		ratePerSec = 1
	}
	return rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec)
}
