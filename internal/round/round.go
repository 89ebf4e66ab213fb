// Package round drives the lifecycle of maths rounds: load a puzzle, accept
// input against a countdown, check, show feedback, move on.
package round

import (
	"fmt"
	"time"

	"github.com/verte-zerg/drills/internal/bank"
	"github.com/verte-zerg/drills/internal/model"
	"github.com/verte-zerg/drills/internal/schedule"
	"github.com/verte-zerg/drills/internal/slots"
	"github.com/verte-zerg/drills/internal/validate"
)

// TickInterval is the countdown resolution.
const TickInterval = time.Second

// DefaultFeedbackDelay is used when the config leaves the delay unset.
const DefaultFeedbackDelay = 1500 * time.Millisecond

// State is a phase of the round lifecycle.
type State int

// Round states.
const (
	StateLoading State = iota
	StateActive
	StateChecking
	StateCorrect
	StateIncorrect
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateActive:
		return "active"
	case StateChecking:
		return "checking"
	case StateCorrect:
		return "correct"
	case StateIncorrect:
		return "incorrect"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Recorder receives the result of every finished round.
type Recorder interface {
	RecordMaths(correct bool, streak int)
}

// Controller is the maths round state machine. It is not safe for
// concurrent use; all events arrive on the UI loop.
type Controller struct {
	cfg    model.MathsConfig
	picker *bank.Picker
	pool   []model.Equation
	used   map[string]struct{}
	rec    Recorder

	timer schedule.Slot
	state State

	eq        model.Equation
	board     *slots.Board
	remaining int
	timedOut  bool

	score  int
	streak int
}

// New builds a controller over the equations matching cfg's filters.
func New(equations []model.Equation, picker *bank.Picker, cfg model.MathsConfig, rec Recorder) (*Controller, error) {
	pool := bank.FilterEquations(equations, cfg.Difficulty, cfg.Category)
	if len(pool) == 0 {
		return nil, fmt.Errorf("no equations match difficulty %q and category %q", cfg.Difficulty, cfg.Category)
	}
	if cfg.FeedbackDelay <= 0 {
		cfg.FeedbackDelay = DefaultFeedbackDelay
	}
	return &Controller{
		cfg:    cfg,
		picker: picker,
		pool:   pool,
		used:   map[string]struct{}{},
		rec:    rec,
		state:  StateLoading,
	}, nil
}

// Start loads the next puzzle and arms the countdown.
func (c *Controller) Start() schedule.Task {
	c.timer.Cancel()
	c.state = StateLoading
	eq, _ := bank.Pick(c.picker, c.pool, bank.EquationID, c.used)
	c.eq = eq
	c.board = slots.New(eq.Options, len(eq.Answers))
	return c.arm()
}

func (c *Controller) arm() schedule.Task {
	c.board.Initialize(len(c.eq.Answers), 0)
	c.remaining = c.eq.TimeLimit
	c.timedOut = false
	c.state = StateActive
	return c.timer.Arm(schedule.KindTick, TickInterval)
}

// Stop cancels any pending tick or feedback delay.
func (c *Controller) Stop() {
	c.timer.Cancel()
}

// Fire handles an elapsed task and returns the next one to schedule, which
// may be invalid. Stale tasks are ignored.
func (c *Controller) Fire(t schedule.Task) schedule.Task {
	if !c.timer.Fire(t) {
		return schedule.Task{}
	}
	switch t.Kind {
	case schedule.KindTick:
		if c.state != StateActive {
			return schedule.Task{}
		}
		c.remaining--
		if c.remaining <= 0 {
			c.remaining = 0
			c.timedOut = true
			return c.finish(false)
		}
		return c.timer.Arm(schedule.KindTick, TickInterval)
	case schedule.KindFeedback:
		return c.advance()
	default:
		return schedule.Task{}
	}
}

// Check evaluates a fully filled board. ok is false when the round is not
// active or a slot is still empty.
func (c *Controller) Check() (next schedule.Task, ok bool) {
	if c.state != StateActive || !c.board.IsComplete() {
		return schedule.Task{}, false
	}
	return c.finish(validate.Equation(c.eq, c.board.Values())), true
}

func (c *Controller) finish(correct bool) schedule.Task {
	c.timer.Cancel()
	c.state = StateChecking
	if correct {
		c.score++
		c.streak++
		c.used[c.eq.ID] = struct{}{}
		c.state = StateCorrect
	} else {
		c.streak = 0
		c.state = StateIncorrect
	}
	if c.rec != nil {
		c.rec.RecordMaths(correct, c.streak)
	}
	return c.timer.Arm(schedule.KindFeedback, c.cfg.FeedbackDelay)
}

func (c *Controller) advance() schedule.Task {
	if c.state == StateIncorrect && c.cfg.RetryIncorrect {
		return c.arm()
	}
	return c.Start()
}

// Assign places v in the active slot.
func (c *Controller) Assign(v int) bool {
	return c.state == StateActive && c.board.Assign(v)
}

// Undo clears the last filled slot.
func (c *Controller) Undo() bool {
	return c.state == StateActive && c.board.Undo()
}

// SetActive moves the slot cursor.
func (c *Controller) SetActive(i int) bool {
	return c.state == StateActive && c.board.SetActive(i)
}

// Move shifts the slot cursor by delta.
func (c *Controller) Move(delta int) bool {
	return c.state == StateActive && c.board.Move(delta)
}

// State returns the current phase.
func (c *Controller) State() State { return c.state }

// Equation returns the current puzzle.
func (c *Controller) Equation() model.Equation { return c.eq }

// Board returns the slot board of the current puzzle.
func (c *Controller) Board() *slots.Board { return c.board }

// Remaining returns the seconds left on the countdown.
func (c *Controller) Remaining() int { return c.remaining }

// TimedOut reports whether the last finished round ran out of time.
func (c *Controller) TimedOut() bool { return c.timedOut }

// Score returns the number of correct rounds.
func (c *Controller) Score() int { return c.score }

// Streak returns the current run of correct rounds.
func (c *Controller) Streak() int { return c.streak }

// Used reports whether the puzzle id has been solved this session.
func (c *Controller) Used(id string) bool {
	_, ok := c.used[id]
	return ok
}
