package timer

import (
	"sync"
	"time"
)

// Ticker is a running periodic callback. Stop may be called any number of
// times; once it returns no new callbacks are posted.
type Ticker interface {
	Stop()
}

// Scheduler starts periodic callbacks.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Ticker
}

// IntervalScheduler drives callbacks from a time.Ticker goroutine. Each
// tick is handed to post, which must run fn on the UI thread.
type IntervalScheduler struct {
	post func(func())
}

func NewIntervalScheduler(post func(func())) *IntervalScheduler {
	if post == nil {
		post = func(fn func()) { fn() }
	}
	return &IntervalScheduler{post: post}
}

func (s *IntervalScheduler) Every(interval time.Duration, fn func()) Ticker {
	t := &intervalTicker{done: make(chan struct{})}
	t.wg.Add(1)

	go func() {
		defer t.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-t.done:
				return
			case <-ticker.C:
				select {
				case <-t.done:
					return
				default:
				}
				s.post(fn)
			}
		}
	}()
	return t
}

type intervalTicker struct {
	once sync.Once
	done chan struct{}
	wg   sync.WaitGroup
}

func (t *intervalTicker) Stop() {
	t.once.Do(func() {
		close(t.done)
	})
}

// Wait blocks until the ticker goroutine has exited.
func (t *intervalTicker) Wait() {
	t.wg.Wait()
}
