package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/league-timekeeper-bot/internal/domain"
	"golang.org/x/time/rate"
)

// discordSession is the part of *discordgo.Session used to deliver messages
type discordSession interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Discord mirrors announcements to Discord channels. Timers are keyed by
// Slack channel, so each one is routed through channels; timers without
// a mapping are skipped.
type Discord struct {
	session  discordSession
	channels map[string]string
	limiter  *rate.Limiter
}

func NewDiscord(session discordSession, channels map[string]string, ratePerSec int) *Discord {
	return &Discord{
		session:  session,
		channels: channels,
		limiter:  newLimiter(ratePerSec),
	}
}

// NewDiscordSession opens a bot session for the given token
func NewDiscordSession(token string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	return session, nil
}

func (d *Discord) SendReminder(ctx context.Context, channelID string, threshold domain.Threshold, remaining time.Duration) error {
	return d.send(ctx, channelID, reminderText(threshold, remaining))
}

func (d *Discord) SendAdvancement(ctx context.Context, channelID string, season, week int) error {
	return d.send(ctx, channelID, advancementText(season, week))
}

func (d *Discord) send(ctx context.Context, channelID, text string) error {
	target, ok := d.channels[channelID]
	if !ok {
		return nil
	}

	if err := d.limiter.Wait(ctx); err != nil {
		return err
	}

	_, err := d.session.ChannelMessageSend(target, text, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send discord message: %w", err)
	}
	return nil
}
