package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/league-timekeeper-bot/internal/domain"
	"github.com/diegoclair/league-timekeeper-bot/mocks"
	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testChannel = "C123456789"

var threshold1h = domain.Threshold{Label: "1h", Before: time.Hour}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: 30 * time.Second, want: "less than a minute"},
		{in: 45 * time.Minute, want: "45m"},
		{in: 59*time.Minute + 50*time.Second, want: "1h 0m"},
		{in: 5*time.Hour + 3*time.Minute, want: "5h 3m"},
		{in: 50*time.Hour + 30*time.Minute, want: "2d 2h 30m"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRemaining(tt.in))
		})
	}
}

func TestAdvancementText(t *testing.T) {
	assert.Contains(t, advancementText(3, 7), "Season 3, Week 7")
	assert.Contains(t, reminderText(threshold1h, 55*time.Minute), "1h left")
}

func TestSlack(t *testing.T) {
	type args struct {
		advancement bool
	}
	tests := []struct {
		name      string
		args      args
		buildMock func(client *mocks.MockSlackClient)
		wantErr   bool
	}{
		{
			name: "Should post reminder to the timer channel",
			buildMock: func(client *mocks.MockSlackClient) {
				client.EXPECT().
					PostMessageContext(gomock.Any(), testChannel, gomock.Any()).
					Return(testChannel, "1234.5678", nil).Times(1)
			},
		},
		{
			name: "Should post advancement to the timer channel",
			args: args{advancement: true},
			buildMock: func(client *mocks.MockSlackClient) {
				client.EXPECT().
					PostMessageContext(gomock.Any(), testChannel, gomock.Any()).
					Return(testChannel, "1234.5678", nil).Times(1)
			},
		},
		{
			name: "Should return error when slack fails",
			buildMock: func(client *mocks.MockSlackClient) {
				client.EXPECT().
					PostMessageContext(gomock.Any(), testChannel, gomock.Any()).
					Return("", "", errors.New("channel_not_found")).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockSlackClient(ctrl)
			tt.buildMock(client)

			n := NewSlack(client, 10)

			var err error
			if tt.args.advancement {
				err = n.SendAdvancement(context.Background(), testChannel, 1, 2)
			} else {
				err = n.SendReminder(context.Background(), testChannel, threshold1h, time.Hour)
			}

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSlack_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no call expected: the limiter gives up first
	n := NewSlack(mocks.NewMockSlackClient(ctrl), 1)
	n.limiter.Allow()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, n.SendAdvancement(ctx, testChannel, 1, 2))
}

type fakeDiscord struct {
	mu   sync.Mutex
	sent map[string][]string
	err  error
}

func (f *fakeDiscord) ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if f.sent == nil {
		f.sent = map[string][]string{}
	}
	f.sent[channelID] = append(f.sent[channelID], content)
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

func TestDiscord(t *testing.T) {
	session := &fakeDiscord{}
	n := NewDiscord(session, map[string]string{testChannel: "998877"}, 10)
	ctx := context.Background()

	require.NoError(t, n.SendAdvancement(ctx, testChannel, 2, 0))
	require.NoError(t, n.SendReminder(ctx, "C-UNMAPPED", threshold1h, time.Hour))

	require.Len(t, session.sent["998877"], 1)
	assert.Contains(t, session.sent["998877"][0], "Season 2, Week 0")
	assert.Len(t, session.sent, 1, "unmapped channels are skipped")

	session.err = errors.New("missing access")
	assert.Error(t, n.SendReminder(ctx, testChannel, threshold1h, time.Hour))
}

type fakeToken struct {
	done chan struct{}
	err  error
}

func newFakeToken(err error, complete bool) *fakeToken {
	tok := &fakeToken{done: make(chan struct{}), err: err}
	if complete {
		close(tok.done)
	}
	return tok
}

func (t *fakeToken) Wait() bool                     { <-t.done; return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{}          { return t.done }
func (t *fakeToken) Error() error                   { return t.err }

type published struct {
	topic   string
	qos     byte
	payload []byte
}

type fakeMQTT struct {
	token    paho.Token
	messages []published
}

func (f *fakeMQTT) Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token {
	f.messages = append(f.messages, published{topic: topic, qos: qos, payload: payload.([]byte)})
	return f.token
}

func (f *fakeMQTT) Disconnect(quiesce uint) {}

func TestMQTT(t *testing.T) {
	client := &fakeMQTT{token: newFakeToken(nil, true)}
	n := newMQTT(client, "league/timekeeper")
	ctx := context.Background()

	require.NoError(t, n.SendReminder(ctx, testChannel, threshold1h, 59*time.Minute))
	require.NoError(t, n.SendAdvancement(ctx, testChannel, 4, 0))
	require.Len(t, client.messages, 2)

	assert.Equal(t, "league/timekeeper/"+testChannel, client.messages[0].topic)
	assert.Equal(t, byte(1), client.messages[0].qos)

	var reminder Event
	require.NoError(t, json.Unmarshal(client.messages[0].payload, &reminder))
	assert.Equal(t, eventReminder, reminder.Event)
	assert.Equal(t, "1h", reminder.Threshold)
	assert.Equal(t, int64(59*60), reminder.RemainingSeconds)

	var advanced Event
	require.NoError(t, json.Unmarshal(client.messages[1].payload, &advanced))
	assert.Equal(t, eventAdvanced, advanced.Event)
	require.NotNil(t, advanced.Season)
	assert.Equal(t, 4, *advanced.Season)
	require.NotNil(t, advanced.Week)
	assert.Equal(t, 0, *advanced.Week)
}

func TestMQTT_SeasonZeroIsPublished(t *testing.T) {
	client := &fakeMQTT{token: newFakeToken(nil, true)}
	n := newMQTT(client, "league/timekeeper")

	require.NoError(t, n.SendAdvancement(context.Background(), testChannel, 0, 0))
	require.Len(t, client.messages, 1)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(client.messages[0].payload, &raw))
	assert.Equal(t, float64(0), raw["season"])
	assert.Equal(t, float64(0), raw["week"])
}

func TestMQTT_Errors(t *testing.T) {
	n := newMQTT(&fakeMQTT{token: newFakeToken(errors.New("not connected"), true)}, "league")
	assert.Error(t, n.SendAdvancement(context.Background(), testChannel, 1, 1))

	// a publish that never completes is bounded by the context
	n = newMQTT(&fakeMQTT{token: newFakeToken(nil, false)}, "league")
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, n.SendAdvancement(ctx, testChannel, 1, 1), context.DeadlineExceeded)
}

func TestMulti(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := mocks.NewMockNotifier(ctrl)
	second := mocks.NewMockNotifier(ctrl)

	first.EXPECT().SendAdvancement(gomock.Any(), testChannel, 1, 3).Return(assert.AnError).Times(1)
	second.EXPECT().SendAdvancement(gomock.Any(), testChannel, 1, 3).Return(nil).Times(1)

	first.EXPECT().SendReminder(gomock.Any(), testChannel, threshold1h, time.Hour).Return(nil).Times(1)
	second.EXPECT().SendReminder(gomock.Any(), testChannel, threshold1h, time.Hour).Return(nil).Times(1)

	m := Multi{first, second}

	err := m.SendAdvancement(context.Background(), testChannel, 1, 3)
	assert.ErrorIs(t, err, assert.AnError)

	assert.NoError(t, m.SendReminder(context.Background(), testChannel, threshold1h, time.Hour))
}

func TestMulti_WithRetryResendsOnlyToFailingSink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	healthy := mocks.NewMockNotifier(ctrl)
	failing := mocks.NewMockNotifier(ctrl)

	healthy.EXPECT().SendAdvancement(gomock.Any(), testChannel, 2, 5).Return(nil).Times(1)
	failing.EXPECT().SendAdvancement(gomock.Any(), testChannel, 2, 5).Return(assert.AnError).Times(3)

	healthy.EXPECT().SendReminder(gomock.Any(), testChannel, threshold1h, time.Hour).Return(nil).Times(1)
	gomock.InOrder(
		failing.EXPECT().SendReminder(gomock.Any(), testChannel, threshold1h, time.Hour).Return(assert.AnError).Times(1),
		failing.EXPECT().SendReminder(gomock.Any(), testChannel, threshold1h, time.Hour).Return(nil).Times(1),
	)

	m := Multi{healthy, failing}.WithRetry(zerolog.Nop())
	require.Len(t, m, 2)
	for _, n := range m {
		n.(*Retry).backoff = time.Millisecond
	}

	err := m.SendAdvancement(context.Background(), testChannel, 2, 5)
	assert.ErrorIs(t, err, assert.AnError)

	assert.NoError(t, m.SendReminder(context.Background(), testChannel, threshold1h, time.Hour))
}

func TestRetry(t *testing.T) {
	tests := []struct {
		name      string
		buildMock func(n *mocks.MockNotifier)
		wantErr   bool
	}{
		{
			name: "Should succeed on first attempt",
			buildMock: func(n *mocks.MockNotifier) {
				n.EXPECT().SendAdvancement(gomock.Any(), testChannel, 1, 2).Return(nil).Times(1)
			},
		},
		{
			name: "Should succeed after transient failures",
			buildMock: func(n *mocks.MockNotifier) {
				gomock.InOrder(
					n.EXPECT().SendAdvancement(gomock.Any(), testChannel, 1, 2).Return(assert.AnError).Times(2),
					n.EXPECT().SendAdvancement(gomock.Any(), testChannel, 1, 2).Return(nil).Times(1),
				)
			},
		},
		{
			name: "Should give up after three attempts",
			buildMock: func(n *mocks.MockNotifier) {
				n.EXPECT().SendAdvancement(gomock.Any(), testChannel, 1, 2).Return(assert.AnError).Times(3)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			next := mocks.NewMockNotifier(ctrl)
			tt.buildMock(next)

			r := NewRetry(next, zerolog.Nop())
			r.backoff = time.Millisecond

			err := r.SendAdvancement(context.Background(), testChannel, 1, 2)
			if tt.wantErr {
				assert.ErrorIs(t, err, assert.AnError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRetry_StopsWhenContextEnds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	next := mocks.NewMockNotifier(ctrl)
	next.EXPECT().SendReminder(gomock.Any(), testChannel, threshold1h, time.Hour).Return(assert.AnError).Times(1)

	r := NewRetry(next, zerolog.Nop())
	r.backoff = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := r.SendReminder(ctx, testChannel, threshold1h, time.Hour)
	assert.ErrorIs(t, err, assert.AnError)
}
