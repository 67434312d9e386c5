package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/league-timekeeper-bot/internal/domain"
	"github.com/diegoclair/league-timekeeper-bot/internal/domain/contract"
	"github.com/diegoclair/league-timekeeper-bot/internal/domain/entity"
	"github.com/diegoclair/league-timekeeper-bot/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager     *mocks.MockDataManager
	mockTimerRepo       *mocks.MockTimerRepo
	mockAdvancementRepo *mocks.MockAdvancementRepo
	mockNotifier        *mocks.MockNotifier
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	timerRepo := mocks.NewMockTimerRepo(ctrl)
	dm.EXPECT().Timer().Return(timerRepo).AnyTimes()

	advancementRepo := mocks.NewMockAdvancementRepo(ctrl)
	dm.EXPECT().Advancement().Return(advancementRepo).AnyTimes()

	m = allMocks{
		mockDataManager:     dm,
		mockTimerRepo:       timerRepo,
		mockAdvancementRepo: advancementRepo,
		mockNotifier:        mocks.NewMockNotifier(ctrl),
	}

	// validate service creation
	keeper := newTimekeeper(dm, m.mockNotifier, zerolog.Nop(), Options{})
	require.NotNil(t, keeper)

	return
}

// memoryStore is an in-memory DataManager for tests that need real timing
type memoryStore struct {
	mu           sync.Mutex
	states       map[string]*entity.TimerState
	advancements []*entity.Advancement
	saveErr      error
	activeErr    error
	gets         int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{states: make(map[string]*entity.TimerState)}
}

func (s *memoryStore) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	return fn(s)
}

func (s *memoryStore) Timer() contract.TimerRepo             { return memoryTimers{s} }
func (s *memoryStore) Advancement() contract.AdvancementRepo { return memoryAdvancements{s} }

func (s *memoryStore) setSaveErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

func (s *memoryStore) setActiveErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeErr = err
}

func (s *memoryStore) put(state *entity.TimerState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[state.ChannelID] = state.Clone()
}

func (s *memoryStore) get(channelID string) *entity.TimerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[channelID].Clone()
}

func (s *memoryStore) advancementCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.advancements)
}

type memoryTimers struct{ s *memoryStore }

func (r memoryTimers) Get(ctx context.Context, channelID string) (*entity.TimerState, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.gets++
	return r.s.states[channelID].Clone(), nil
}

func (r memoryTimers) Save(ctx context.Context, state *entity.TimerState) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.saveErr != nil {
		return r.s.saveErr
	}
	r.s.states[state.ChannelID] = state.Clone()
	return nil
}

func (r memoryTimers) GetActive(ctx context.Context) ([]*entity.TimerState, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.activeErr != nil {
		return nil, r.s.activeErr
	}
	var active []*entity.TimerState
	for _, st := range r.s.states {
		if st.Active() {
			active = append(active, st.Clone())
		}
	}
	return active, nil
}

type memoryAdvancements struct{ s *memoryStore }

func (r memoryAdvancements) Create(ctx context.Context, adv *entity.Advancement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.saveErr != nil {
		return r.s.saveErr
	}
	cp := *adv
	r.s.advancements = append(r.s.advancements, &cp)
	return nil
}

func (r memoryAdvancements) ListByChannel(ctx context.Context, channelID string, limit int) ([]*entity.Advancement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Advancement
	for i := len(r.s.advancements) - 1; i >= 0 && len(out) < limit; i-- {
		if r.s.advancements[i].ChannelID == channelID {
			out = append(out, r.s.advancements[i])
		}
	}
	return out, nil
}

// recordingNotifier captures announcements in the order they were sent
type recordingNotifier struct {
	mu           sync.Mutex
	reminders    []string
	advancements []entity.WeekRef
	advanced     chan entity.WeekRef
	reminded     chan string
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{
		advanced: make(chan entity.WeekRef, 16),
		reminded: make(chan string, 16),
	}
}

func (n *recordingNotifier) SendReminder(ctx context.Context, channelID string, threshold domain.Threshold, remaining time.Duration) error {
	n.mu.Lock()
	n.reminders = append(n.reminders, threshold.Label)
	n.mu.Unlock()
	n.reminded <- threshold.Label
	return nil
}

func (n *recordingNotifier) SendAdvancement(ctx context.Context, channelID string, season, week int) error {
	ref := entity.WeekRef{Season: season, Week: week}
	n.mu.Lock()
	n.advancements = append(n.advancements, ref)
	n.mu.Unlock()
	n.advanced <- ref
	return nil
}

func (n *recordingNotifier) reminderLabels() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.reminders...)
}

func (n *recordingNotifier) advancementRefs() []entity.WeekRef {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]entity.WeekRef(nil), n.advancements...)
}

func newTestTimekeeper(t *testing.T, store *memoryStore, notifier *recordingNotifier, opts Options) *Timekeeper {
	t.Helper()

	if opts.RetryBackoff == 0 {
		opts.RetryBackoff = 10 * time.Millisecond
	}
	keeper := newTimekeeper(store, notifier, zerolog.Nop(), opts)
	t.Cleanup(func() {
		_ = keeper.Shutdown(context.Background())
	})
	return keeper
}
