package slots

import (
	"reflect"
	"testing"
)

func snapshot(b *Board) (vals []int, filled []bool, usage map[int]int, active int) {
	usage = map[int]int{}
	for k, v := range b.usage {
		usage[k] = v
	}
	return append([]int(nil), b.values...), append([]bool(nil), b.filled...), usage, b.active
}

func TestAssignAdvancesToNextEmpty(t *testing.T) {
	b := New([]int{1, 2, 4, 6, 7, 8}, 2)
	if !b.Assign(4) {
		t.Fatalf("expected assign to succeed")
	}
	if b.Active() != 1 {
		t.Fatalf("expected cursor on slot 1, got %d", b.Active())
	}
	if !b.Assign(7) {
		t.Fatalf("expected assign to succeed")
	}
	if b.Active() != 1 {
		t.Fatalf("expected cursor to stay on last slot, got %d", b.Active())
	}
	if !b.IsComplete() {
		t.Fatalf("expected complete board")
	}
	if got := b.Values(); !reflect.DeepEqual(got, []int{4, 7}) {
		t.Fatalf("unexpected values %v", got)
	}
}

func TestAssignExhaustedIsNoop(t *testing.T) {
	b := New([]int{3, 5}, 2)
	b.Assign(5)
	vals, filled, usage, active := snapshot(b)
	if b.Assign(5) {
		t.Fatalf("expected exhausted value to be rejected")
	}
	v2, f2, u2, a2 := snapshot(b)
	if !reflect.DeepEqual(vals, v2) || !reflect.DeepEqual(filled, f2) || !reflect.DeepEqual(usage, u2) || active != a2 {
		t.Fatalf("expected board unchanged after rejected assign")
	}
	if b.InUse(5) != 1 {
		t.Fatalf("expected usage of 5 to stay at 1, got %d", b.InUse(5))
	}
	if b.Assign(9) {
		t.Fatalf("expected value outside options to be rejected")
	}
}

func TestDuplicateOptionsCountByMultiplicity(t *testing.T) {
	b := New([]int{12, 12, 8}, 2)
	if !b.Assign(12) || !b.Assign(12) {
		t.Fatalf("expected both instances of 12 to be placeable")
	}
	if b.Available(12) {
		t.Fatalf("expected 12 exhausted")
	}
	b.SetActive(0)
	if !b.Undo() {
		t.Fatalf("expected undo to succeed")
	}
	if b.Active() != 1 {
		t.Fatalf("expected undo to clear the highest filled slot, cursor at %d", b.Active())
	}
	if b.Remaining(12) != 1 {
		t.Fatalf("expected one 12 remaining, got %d", b.Remaining(12))
	}
}

func TestUndoRestoresEmptyBoard(t *testing.T) {
	b := New([]int{1, 2, 3}, 3)
	b.Assign(1)
	b.Assign(2)
	b.Assign(3)
	for i := 0; i < 3; i++ {
		if !b.Undo() {
			t.Fatalf("undo %d failed", i)
		}
	}
	if b.Undo() {
		t.Fatalf("expected undo on empty board to be a no-op")
	}
	if len(b.Values()) != 0 || len(b.usage) != 0 {
		t.Fatalf("expected empty board and usage, got %v %v", b.Values(), b.usage)
	}
	if b.Active() != 0 {
		t.Fatalf("expected cursor at 0, got %d", b.Active())
	}
}

func TestUndoIgnoresCursor(t *testing.T) {
	b := New([]int{1, 2, 3}, 3)
	b.SetActive(2)
	b.Assign(3)
	b.SetActive(0)
	b.Assign(1)
	if b.Active() != 1 {
		t.Fatalf("expected cursor on next empty slot 1, got %d", b.Active())
	}
	b.Undo()
	if _, ok := b.Slot(2); ok {
		t.Fatalf("expected slot 2 cleared by undo")
	}
	if v, ok := b.Slot(0); !ok || v != 1 {
		t.Fatalf("expected slot 0 untouched")
	}
	if b.Active() != 2 {
		t.Fatalf("expected cursor moved to cleared slot, got %d", b.Active())
	}
}

func TestSetActiveOutOfRange(t *testing.T) {
	b := New([]int{1, 2}, 2)
	if b.SetActive(-1) || b.SetActive(2) {
		t.Fatalf("expected out of range cursor moves to fail")
	}
	if b.Active() != 0 {
		t.Fatalf("expected cursor unchanged")
	}
	if b.Move(-1) {
		t.Fatalf("expected move before first slot to fail")
	}
	if !b.Move(1) || b.Active() != 1 {
		t.Fatalf("expected move to slot 1")
	}
}

func TestAssignOverwritesFilledSlot(t *testing.T) {
	b := New([]int{1, 2, 3}, 2)
	b.Assign(1)
	b.Assign(2)
	b.SetActive(0)
	if !b.Assign(3) {
		t.Fatalf("expected overwrite to succeed")
	}
	if b.InUse(1) != 0 || b.InUse(3) != 1 {
		t.Fatalf("expected usage to move from 1 to 3, got 1:%d 3:%d", b.InUse(1), b.InUse(3))
	}
	if got := b.Values(); !reflect.DeepEqual(got, []int{3, 2}) {
		t.Fatalf("unexpected values %v", got)
	}
}
