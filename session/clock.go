package session

import "time"

// Clock abstracts frame pacing so tests (and embedders with their own
// schedulers) can substitute the sleep.
type Clock interface {
	Sleep(d time.Duration)
}

// realClock sleeps on the wall clock.
type realClock struct{}

func (realClock) Sleep(d time.Duration) { time.Sleep(d) }
