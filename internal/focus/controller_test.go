package focus

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"focusflow/internal/models"
	"focusflow/internal/timer"
	"focusflow/internal/todo"
)

// fakeScheduler hands out tickers that fire only when the test says so.
type fakeScheduler struct {
	tickers []*fakeTicker
}

type fakeTicker struct {
	interval time.Duration
	fn       func()
	stopped  bool
}

func (s *fakeScheduler) Every(interval time.Duration, fn func()) timer.Ticker {
	t := &fakeTicker{interval: interval, fn: fn}
	s.tickers = append(s.tickers, t)
	return t
}

func (t *fakeTicker) Stop() { t.stopped = true }

// fire runs the callback of the most recent live ticker, n times.
func (s *fakeScheduler) fire(n int) {
	for i := 0; i < n; i++ {
		t := s.active()
		if t == nil {
			return
		}
		t.fn()
	}
}

func (s *fakeScheduler) active() *fakeTicker {
	for i := len(s.tickers) - 1; i >= 0; i-- {
		if !s.tickers[i].stopped {
			return s.tickers[i]
		}
	}
	return nil
}

type recordingNotifier struct {
	got []models.CompletedSession
}

func (r *recordingNotifier) SessionComplete(s models.CompletedSession) {
	r.got = append(r.got, s)
}

func newTestController(opts ...Option) (*Controller, *fakeScheduler, *recordingNotifier) {
	sched := &fakeScheduler{}
	notes := &recordingNotifier{}
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	opts = append([]Option{WithNotifier(notes), WithClock(func() time.Time { return base })}, opts...)
	return NewController(zerolog.Nop(), sched, opts...), sched, notes
}

func TestDefaultSession(t *testing.T) {
	c, _, _ := newTestController()
	s := c.Snapshot().Session
	if s.DurationMinutes != 25 || s.RemainingSeconds != 1500 || s.IsRunning {
		t.Errorf("unexpected default session %+v", s)
	}
}

func TestStartAcquiresTickerAndPauseReleases(t *testing.T) {
	c, sched, _ := newTestController()

	c.ToggleRunning()
	if !c.Snapshot().Session.IsRunning {
		t.Fatal("expected running")
	}
	if len(sched.tickers) != 1 || sched.tickers[0].interval != time.Second {
		t.Fatalf("expected one 1s ticker, got %+v", sched.tickers)
	}

	c.ToggleRunning()
	if c.Snapshot().Session.IsRunning {
		t.Fatal("expected paused")
	}
	if !sched.tickers[0].stopped {
		t.Error("pause should stop the ticker")
	}
}

func TestStartTwiceKeepsOneTicker(t *testing.T) {
	c, sched, _ := newTestController()
	c.Start()
	c.Start()
	if len(sched.tickers) != 1 {
		t.Errorf("tickers = %d, want 1", len(sched.tickers))
	}
}

func TestStaleTickIsDropped(t *testing.T) {
	c, sched, _ := newTestController()
	c.Start()
	stale := sched.tickers[0]
	c.Pause()

	stale.fn()
	if got := c.Snapshot().Session.RemainingSeconds; got != 1500 {
		t.Errorf("stale tick changed remaining to %d", got)
	}

	c.Start()
	stale.fn()
	if got := c.Snapshot().Session.RemainingSeconds; got != 1500 {
		t.Errorf("stale tick from old ticker changed remaining to %d", got)
	}
	sched.fire(1)
	if got := c.Snapshot().Session.RemainingSeconds; got != 1499 {
		t.Errorf("live tick: remaining = %d, want 1499", got)
	}
}

func TestFullSessionCompletes(t *testing.T) {
	c, sched, notes := newTestController(WithDuration(25))
	c.Start()
	sched.fire(1500)

	s := c.Snapshot()
	if s.Session.IsRunning {
		t.Error("session should stop at zero")
	}
	if s.Session.RemainingSeconds != 1500 {
		t.Errorf("remaining = %d, want 1500", s.Session.RemainingSeconds)
	}
	if len(notes.got) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notes.got))
	}
	if notes.got[0].DurationMinutes != 25 {
		t.Errorf("completed duration = %d", notes.got[0].DurationMinutes)
	}
	if sched.active() != nil {
		t.Error("ticker should be released on completion")
	}
	if s.Stats.Sessions.CompletedSessions != 1 || s.Stats.Sessions.FocusSeconds != 1500 {
		t.Errorf("session stats = %+v", s.Stats.Sessions)
	}
}

func TestFocusTimeCountsTicksNotDuration(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       int64
	}{
		{"raised before last tick", 1, 120, 60},
		{"lowered mid session", 5, 1, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, sched, notes := newTestController(WithDuration(tt.start))
			c.Start()
			sched.fire(tt.start*60 - 1)
			c.SetDuration(tt.end)
			sched.fire(1)

			s := c.Snapshot()
			if s.Session.IsRunning {
				t.Fatal("session should complete on the last tick")
			}
			if s.Session.RemainingSeconds != tt.end*60 {
				t.Errorf("remaining = %d, want %d", s.Session.RemainingSeconds, tt.end*60)
			}
			if got := s.Stats.Sessions.FocusSeconds; got != tt.want {
				t.Errorf("focus seconds = %d, want %d", got, tt.want)
			}
			if len(notes.got) != 1 || int64(notes.got[0].FocusSeconds) != tt.want {
				t.Errorf("notifications = %+v", notes.got)
			}
		})
	}
}

func TestResetDiscardsElapsedFocusTime(t *testing.T) {
	c, sched, _ := newTestController(WithDuration(1))
	c.Start()
	sched.fire(30)
	c.Reset()
	c.Start()
	sched.fire(60)

	if got := c.Snapshot().Stats.Sessions.FocusSeconds; got != 60 {
		t.Errorf("focus seconds = %d, want 60", got)
	}
}

func TestResetStopsAndRewinds(t *testing.T) {
	c, sched, _ := newTestController(WithDuration(2))
	c.Start()
	sched.fire(30)
	c.Reset()

	s := c.Snapshot().Session
	if s.IsRunning || s.RemainingSeconds != 120 {
		t.Errorf("after reset: %+v", s)
	}
	if sched.active() != nil {
		t.Error("reset should release the ticker")
	}
}

func TestSetDurationInput(t *testing.T) {
	c, _, _ := newTestController()
	if err := c.SetDurationInput("45"); err != nil {
		t.Fatal(err)
	}
	if got := c.Snapshot().Session.RemainingSeconds; got != 2700 {
		t.Errorf("remaining = %d, want 2700", got)
	}
	if err := c.SetDurationInput("soon"); err == nil {
		t.Error("expected error for non-numeric duration")
	}
	if got := c.Snapshot().Session.DurationMinutes; got != 45 {
		t.Errorf("duration changed to %d on bad input", got)
	}
}

func TestChangeListeners(t *testing.T) {
	c, sched, _ := newTestController()
	calls := 0
	c.OnChange(func() { calls++ })

	c.AddTask("", "")
	if calls != 0 {
		t.Errorf("blank add notified listeners")
	}
	c.AddTask("a", "")
	c.Start()
	sched.fire(2)
	if calls != 4 {
		t.Errorf("calls = %d, want 4", calls)
	}
}

func TestTaskOperations(t *testing.T) {
	c, _, _ := newTestController()
	a, _ := c.AddTask("Write report", "25")
	b, _ := c.AddTask("Review", "")

	if err := c.ToggleComplete(b.ID); err != nil {
		t.Fatal(err)
	}
	if err := c.BeginEdit(a.ID); err != nil {
		t.Fatal(err)
	}
	if err := c.UpdateDraft("Write summary", "15"); err != nil {
		t.Fatal(err)
	}
	if err := c.SaveEdit(a.ID); err != nil {
		t.Fatal(err)
	}

	s := c.Snapshot()
	if s.Editing != nil {
		t.Error("edit buffer should be empty after save")
	}
	if s.Tasks[0].Text != "Write summary" || *s.Tasks[0].EstimatedTime != 15 {
		t.Errorf("unexpected task %+v", s.Tasks[0])
	}
	if !s.Tasks[1].Completed {
		t.Error("second task should be completed")
	}
	if s.Stats.Tasks.CompletedTasks != 1 || s.Stats.Tasks.TotalTasks != 2 {
		t.Errorf("task stats = %+v", s.Stats.Tasks)
	}

	if err := c.RemoveTask(a.ID); err != nil {
		t.Fatal(err)
	}
	if err := c.RemoveTask(a.ID); !errors.Is(err, todo.ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
	if len(c.Snapshot().Tasks) != 1 {
		t.Error("expected one task left")
	}
}

func TestSaveEditBlankDraftKeepsText(t *testing.T) {
	c, _, _ := newTestController()
	task, _ := c.AddTask("write report", "20")
	if err := c.BeginEdit(task.ID); err != nil {
		t.Fatal(err)
	}
	if err := c.UpdateDraft("   ", "45"); err != nil {
		t.Fatal(err)
	}
	if err := c.SaveEdit(task.ID); err != nil {
		t.Fatal(err)
	}

	got := c.Snapshot().Tasks[0]
	if got.Text != "write report" {
		t.Errorf("text = %q, want previous text kept", got.Text)
	}
	if got.EstimatedTime == nil || *got.EstimatedTime != 45 {
		t.Errorf("estimate = %v, want 45", got.EstimatedTime)
	}
}

func TestCancelEditKeepsTask(t *testing.T) {
	c, _, _ := newTestController()
	a, _ := c.AddTask("keep", "5")
	_ = c.BeginEdit(a.ID)
	_ = c.UpdateDraft("other", "")
	c.CancelEdit()

	s := c.Snapshot()
	if s.Editing != nil || !s.Tasks[0].Equal(a) {
		t.Errorf("cancel changed state: %+v", s)
	}
}

func TestCloseReleasesTickerAndBlocksStart(t *testing.T) {
	c, sched, _ := newTestController()
	c.Start()
	c.Close()
	if sched.active() != nil {
		t.Error("close should stop the ticker")
	}
	c.Start()
	if c.Snapshot().Session.IsRunning {
		t.Error("start after close should be ignored")
	}
	c.Close()
}

func TestMultiNotifier(t *testing.T) {
	var order []string
	m := MultiNotifier{
		NotifierFunc(func(models.CompletedSession) { order = append(order, "a") }),
		nil,
		NotifierFunc(func(models.CompletedSession) { order = append(order, "b") }),
	}
	m.SessionComplete(models.CompletedSession{})
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("order = %v", order)
	}
}
