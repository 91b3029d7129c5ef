package selection

import "time"

// Timer is a pending scheduled call that can be stopped.
type Timer interface {
	Stop() bool
}

// Scheduler runs a function once after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type wallClock struct{}

// AfterFunc schedules f on its own goroutine after d.
func (wallClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// WallClock returns the scheduler backed by time.AfterFunc.
func WallClock() Scheduler {
	return wallClock{}
}
