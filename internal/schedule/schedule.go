// Package schedule keeps at most one outstanding delayed task per owner.
//
// A Slot hands out Tasks; the UI layer turns a Task into a timer and feeds it
// back through Fire when it elapses. Arming a new task or cancelling the slot
// invalidates whatever was pending, so a late callback cannot act on a round
// that has moved on.
package schedule

import (
	"sync/atomic"
	"time"
)

// Kind labels what a task is for.
type Kind int

// Task kinds.
const (
	KindNone Kind = iota
	KindTick
	KindFeedback
	KindRefresh
)

// Task is a handle to one armed delay.
type Task struct {
	ID    uint64
	Kind  Kind
	Delay time.Duration
}

// Valid reports whether t refers to an armed task.
func (t Task) Valid() bool { return t.ID != 0 }

// ids are unique across slots so a task never matches a slot it was not armed on.
var nextID atomic.Uint64

// Slot holds the single pending task of an owner.
type Slot struct {
	pending Task
}

// Arm cancels any pending task and returns a new one.
func (s *Slot) Arm(kind Kind, delay time.Duration) Task {
	s.pending = Task{ID: nextID.Add(1), Kind: kind, Delay: delay}
	return s.pending
}

// Cancel drops the pending task, if any.
func (s *Slot) Cancel() {
	s.pending = Task{}
}

// Pending returns the outstanding task.
func (s *Slot) Pending() (Task, bool) {
	return s.pending, s.pending.Valid()
}

// Fire consumes t if it is the pending task. Stale or cancelled tasks
// return false.
func (s *Slot) Fire(t Task) bool {
	if !t.Valid() || t.ID != s.pending.ID {
		return false
	}
	s.pending = Task{}
	return true
}
