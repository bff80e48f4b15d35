// Package focus wires the session timer and the task list into a single
// controller. The controller is the only place state changes; views read
// Snapshots and call its operations.
//
// A Controller is not safe for concurrent use. Every call, including the
// ticks posted by its Scheduler, must happen on the UI goroutine.
package focus

import (
	"time"

	"github.com/rs/zerolog"

	"focusflow/internal/models"
	"focusflow/internal/timer"
	"focusflow/internal/todo"
)

const tickInterval = time.Second

// Snapshot is an immutable copy of everything a view renders.
type Snapshot struct {
	Session models.Session
	Tasks   []models.Task
	Editing *todo.EditBuffer
	Stats   models.Stats
}

// Clock returns the wall time used to stamp completed sessions.
type Clock func() time.Time

type Controller struct {
	logger    zerolog.Logger
	session   *timer.Session
	tasks     *todo.List
	scheduler timer.Scheduler
	notifier  Notifier
	now       Clock

	ticker    timer.Ticker
	tickGen   uint64
	startedAt time.Time
	elapsed   int
	sessions  models.SessionStats
	listeners []func()
	closed    bool
}

type Option func(*Controller)

func WithNotifier(n Notifier) Option {
	return func(c *Controller) { c.notifier = n }
}

func WithClock(now Clock) Option {
	return func(c *Controller) { c.now = now }
}

func WithDuration(minutes int) Option {
	return func(c *Controller) { c.session.SetDuration(minutes) }
}

func WithTaskList(l *todo.List) Option {
	return func(c *Controller) { c.tasks = l }
}

func NewController(logger zerolog.Logger, scheduler timer.Scheduler, opts ...Option) *Controller {
	c := &Controller{
		logger:    logger,
		session:   timer.NewSession(models.DefaultDurationMinutes),
		tasks:     todo.NewList(),
		scheduler: scheduler,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnChange registers fn to run after every state change.
func (c *Controller) OnChange(fn func()) {
	c.listeners = append(c.listeners, fn)
}

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Session: c.session.State(),
		Tasks:   c.tasks.Tasks(),
		Editing: c.tasks.Editing(),
		Stats: models.Stats{
			Tasks:    c.tasks.Stats(),
			Sessions: c.sessions,
		},
	}
}

// SetDuration clamps minutes to 1..120.
func (c *Controller) SetDuration(minutes int) {
	c.session.SetDuration(minutes)
	c.logger.Debug().
		Int("duration_minutes", c.session.DurationMinutes()).
		Bool("running", c.session.IsRunning()).
		Msg("set session duration")
	c.changed()
}

// SetDurationInput applies the raw duration field. Non-numeric input keeps
// the current duration.
func (c *Controller) SetDurationInput(input string) error {
	minutes, err := timer.ParseDuration(input)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Msg("ignored duration input")
		return err
	}
	c.SetDuration(minutes)
	return nil
}

// ToggleRunning is the Start/Pause button.
func (c *Controller) ToggleRunning() {
	if c.session.IsRunning() {
		c.Pause()
		return
	}
	c.Start()
}

func (c *Controller) Start() {
	if c.closed || c.session.IsRunning() {
		return
	}
	c.session.Start()
	if c.startedAt.IsZero() {
		c.startedAt = c.now()
	}
	c.acquireTicker()
	c.logger.Info().
		Int("remaining_seconds", c.session.RemainingSeconds()).
		Msg("started session")
	c.changed()
}

func (c *Controller) Pause() {
	if !c.session.IsRunning() {
		return
	}
	c.session.Pause()
	c.releaseTicker()
	c.logger.Info().
		Int("remaining_seconds", c.session.RemainingSeconds()).
		Msg("paused session")
	c.changed()
}

func (c *Controller) Reset() {
	c.session.Reset()
	c.releaseTicker()
	c.startedAt = time.Time{}
	c.elapsed = 0
	c.logger.Info().
		Int("duration_minutes", c.session.DurationMinutes()).
		Msg("reset session")
	c.changed()
}

// Tick advances a running session by one second.
func (c *Controller) Tick() {
	if c.session.IsRunning() {
		c.elapsed++
	}
	if !c.session.Tick() {
		if c.session.IsRunning() {
			c.changed()
		}
		return
	}
	c.complete()
}

func (c *Controller) complete() {
	c.releaseTicker()

	done := models.CompletedSession{
		DurationMinutes: c.session.DurationMinutes(),
		FocusSeconds:    c.elapsed,
		StartedAt:       c.startedAt,
		FinishedAt:      c.now(),
	}
	c.startedAt = time.Time{}
	c.elapsed = 0
	c.sessions.CompletedSessions++
	c.sessions.FocusSeconds += int64(done.FocusSeconds)

	c.logger.Info().
		Int("duration_minutes", done.DurationMinutes).
		Int("focus_seconds", done.FocusSeconds).
		Int("completed_sessions", c.sessions.CompletedSessions).
		Msg("session complete")

	if c.notifier != nil {
		c.notifier.SessionComplete(done)
	}
	c.changed()
}

// AddTask appends a task. Blank text is ignored.
func (c *Controller) AddTask(text, estimate string) (models.Task, bool) {
	task, ok := c.tasks.Add(text, estimate)
	if !ok {
		c.logger.Debug().Msg("ignored blank task")
		return task, false
	}
	c.logger.Debug().
		Str("task_id", task.ID).
		Bool("has_estimate", task.HasEstimate()).
		Msg("added task")
	c.changed()
	return task, true
}

func (c *Controller) RemoveTask(id string) error {
	if err := c.tasks.Remove(id); err != nil {
		c.logger.Warn().
			Err(err).
			Str("task_id", id).
			Msg("failed to remove task")
		return err
	}
	c.logger.Debug().
		Str("task_id", id).
		Msg("removed task")
	c.changed()
	return nil
}

func (c *Controller) ToggleComplete(id string) error {
	task, err := c.tasks.ToggleComplete(id)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("task_id", id).
			Msg("failed to toggle task")
		return err
	}
	c.logger.Debug().
		Str("task_id", id).
		Bool("completed", task.Completed).
		Msg("toggled task")
	c.changed()
	return nil
}

func (c *Controller) BeginEdit(id string) error {
	if err := c.tasks.BeginEdit(id); err != nil {
		c.logger.Warn().
			Err(err).
			Str("task_id", id).
			Msg("failed to begin edit")
		return err
	}
	c.logger.Debug().
		Str("task_id", id).
		Msg("began edit")
	c.changed()
	return nil
}

// UpdateDraft mirrors the edit inputs into the buffer. It does not notify
// listeners: the inputs already show the draft.
func (c *Controller) UpdateDraft(text, estimate string) error {
	return c.tasks.SetDraft(text, estimate)
}

// SaveEdit commits the edit draft. Unlike a verbatim commit, a blank draft
// text keeps the task's previous text so no task is ever left blank.
func (c *Controller) SaveEdit(id string) error {
	task, err := c.tasks.SaveEdit(id)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("task_id", id).
			Msg("failed to save edit")
		c.changed()
		return err
	}
	c.logger.Debug().
		Str("task_id", task.ID).
		Msg("saved edit")
	c.changed()
	return nil
}

func (c *Controller) CancelEdit() {
	if c.tasks.Editing() == nil {
		return
	}
	c.tasks.CancelEdit()
	c.logger.Debug().Msg("cancelled edit")
	c.changed()
}

// Close releases the ticker. Later Start calls are ignored.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.session.Pause()
	c.releaseTicker()
	c.logger.Debug().Msg("closed controller")
}

func (c *Controller) acquireTicker() {
	if c.ticker != nil || c.scheduler == nil {
		return
	}
	c.tickGen++
	gen := c.tickGen
	c.ticker = c.scheduler.Every(tickInterval, func() {
		// Ticks posted before the ticker was released are stale.
		if gen != c.tickGen || c.ticker == nil {
			return
		}
		c.Tick()
	})
}

func (c *Controller) releaseTicker() {
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	c.ticker = nil
	c.tickGen++
}

func (c *Controller) changed() {
	for _, fn := range c.listeners {
		fn()
	}
}
