package round

import (
	"testing"
	"time"

	"github.com/verte-zerg/drills/internal/bank"
	"github.com/verte-zerg/drills/internal/model"
	"github.com/verte-zerg/drills/internal/schedule"
)

var addEasy = model.Equation{
	ID:         "add-easy-1",
	Category:   model.Addition,
	Difficulty: model.Easy,
	Template:   "_ + _ = 11",
	Answers:    []int{4, 7},
	Options:    []int{1, 2, 4, 6, 7, 8},
	Title:      "Single Digit Addition",
	TimeLimit:  3,
}

var subEasy = model.Equation{
	ID:         "sub-easy-1",
	Category:   model.Subtraction,
	Difficulty: model.Easy,
	Template:   "_ - _ = 5",
	Answers:    []int{12, 7},
	Options:    []int{3, 7, 9, 12, 15, 18},
	Title:      "Simple Subtraction",
	TimeLimit:  30,
}

type recorder struct {
	results []bool
	streaks []int
}

func (r *recorder) RecordMaths(correct bool, streak int) {
	r.results = append(r.results, correct)
	r.streaks = append(r.streaks, streak)
}

func newController(t *testing.T, eqs []model.Equation, cfg model.MathsConfig) (*Controller, *recorder) {
	t.Helper()
	rec := &recorder{}
	c, err := New(eqs, bank.NewPickerWithSeed(7), cfg, rec)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return c, rec
}

func TestCorrectAnswerScores(t *testing.T) {
	c, rec := newController(t, []model.Equation{addEasy}, model.MathsConfig{})
	tick := c.Start()
	if c.State() != StateActive || tick.Kind != schedule.KindTick {
		t.Fatalf("expected active round with tick armed, got %s", c.State())
	}
	if c.Remaining() != addEasy.TimeLimit {
		t.Fatalf("expected countdown at time limit, got %d", c.Remaining())
	}
	c.Assign(4)
	c.Assign(7)
	feedback, ok := c.Check()
	if !ok {
		t.Fatalf("expected check on full board")
	}
	if c.State() != StateCorrect {
		t.Fatalf("expected correct, got %s", c.State())
	}
	if feedback.Kind != schedule.KindFeedback || feedback.Delay != DefaultFeedbackDelay {
		t.Fatalf("expected feedback delay task, got %+v", feedback)
	}
	if c.Score() != 1 || c.Streak() != 1 || !c.Used(addEasy.ID) {
		t.Fatalf("unexpected score=%d streak=%d used=%v", c.Score(), c.Streak(), c.Used(addEasy.ID))
	}
	if len(rec.results) != 1 || !rec.results[0] {
		t.Fatalf("expected one recorded correct round, got %v", rec.results)
	}
	if next := c.Fire(tick); next.Valid() {
		t.Fatalf("expected countdown tick to be stale after check")
	}
	next := c.Fire(feedback)
	if c.State() != StateActive || next.Kind != schedule.KindTick {
		t.Fatalf("expected next round to start, got %s", c.State())
	}
	if len(c.Board().Values()) != 0 {
		t.Fatalf("expected empty board for next round")
	}
}

func TestReversedSubtractionIsIncorrect(t *testing.T) {
	c, _ := newController(t, []model.Equation{subEasy}, model.MathsConfig{RetryIncorrect: true})
	c.Start()
	c.Assign(7)
	c.Assign(12)
	if _, ok := c.Check(); !ok {
		t.Fatalf("expected check on full board")
	}
	if c.State() != StateIncorrect {
		t.Fatalf("expected incorrect, got %s", c.State())
	}
	if c.Streak() != 0 || c.Used(subEasy.ID) {
		t.Fatalf("expected streak reset and puzzle not recorded")
	}
}

func TestCheckRequiresFullBoard(t *testing.T) {
	c, _ := newController(t, []model.Equation{addEasy}, model.MathsConfig{})
	c.Start()
	c.Assign(4)
	if _, ok := c.Check(); ok {
		t.Fatalf("expected check to be refused with an empty slot")
	}
	if c.State() != StateActive {
		t.Fatalf("expected round to stay active")
	}
}

func TestTimeoutIsIncorrectAndRetries(t *testing.T) {
	c, rec := newController(t, []model.Equation{addEasy}, model.MathsConfig{RetryIncorrect: true, FeedbackDelay: 10 * time.Millisecond})
	task := c.Start()
	c.Assign(4)
	for i := 0; i < addEasy.TimeLimit; i++ {
		if task.Kind != schedule.KindTick {
			t.Fatalf("expected tick at step %d, got %+v", i, task)
		}
		task = c.Fire(task)
	}
	if c.State() != StateIncorrect || !c.TimedOut() {
		t.Fatalf("expected timeout to be incorrect, got %s", c.State())
	}
	if c.Remaining() != 0 {
		t.Fatalf("expected countdown at zero, got %d", c.Remaining())
	}
	if task.Kind != schedule.KindFeedback || task.Delay != 10*time.Millisecond {
		t.Fatalf("expected configured feedback delay, got %+v", task)
	}
	if len(rec.results) != 1 || rec.results[0] {
		t.Fatalf("expected recorded incorrect round, got %v", rec.results)
	}
	c.Fire(task)
	if c.State() != StateActive || c.Equation().ID != addEasy.ID {
		t.Fatalf("expected same puzzle re-armed")
	}
	if len(c.Board().Values()) != 0 || c.Remaining() != addEasy.TimeLimit {
		t.Fatalf("expected cleared board and full countdown on retry")
	}
}

func TestIncorrectAdvancesWithoutRetry(t *testing.T) {
	c, _ := newController(t, []model.Equation{addEasy, subEasy}, model.MathsConfig{})
	c.Start()
	// The two smallest options never solve either puzzle.
	opts := c.Equation().Options
	c.Assign(opts[0])
	c.Assign(opts[1])
	feedback, _ := c.Check()
	if c.State() != StateIncorrect {
		t.Fatalf("expected incorrect, got %s", c.State())
	}
	c.Fire(feedback)
	if c.State() != StateActive || c.Score() != 0 {
		t.Fatalf("expected a fresh active round, got %s", c.State())
	}
	if c.Remaining() != c.Equation().TimeLimit {
		t.Fatalf("expected countdown reset for the next puzzle")
	}
}

func TestInputIgnoredOutsideActive(t *testing.T) {
	c, _ := newController(t, []model.Equation{addEasy}, model.MathsConfig{})
	c.Start()
	c.Assign(4)
	c.Assign(7)
	c.Check()
	if c.Undo() || c.Assign(1) || c.Move(-1) || c.SetActive(0) {
		t.Fatalf("expected input to be ignored during feedback")
	}
}

func TestStopCancelsPendingTask(t *testing.T) {
	c, _ := newController(t, []model.Equation{addEasy}, model.MathsConfig{})
	tick := c.Start()
	c.Stop()
	if next := c.Fire(tick); next.Valid() {
		t.Fatalf("expected stopped controller to ignore tick")
	}
	if c.Remaining() != addEasy.TimeLimit {
		t.Fatalf("expected countdown untouched, got %d", c.Remaining())
	}
}

func TestNewRejectsEmptyPool(t *testing.T) {
	if _, err := New([]model.Equation{addEasy}, bank.NewPicker(), model.MathsConfig{Difficulty: model.Hard}, nil); err == nil {
		t.Fatalf("expected error for empty filtered pool")
	}
}
