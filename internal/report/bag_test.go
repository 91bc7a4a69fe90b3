package report

import (
	"math"
	"testing"

	"unifix/internal/chardiff"
)

func issueAt(line, pos int) Issue {
	return Issue{
		Line:       line,
		Original:   "x",
		Normalized: "y",
		Changes:    []chardiff.Change{{Pos: pos, Original: 'x', Normalized: 'y'}},
	}
}

func TestBagRespectsCap(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(issueAt(1, 0)) || !bag.Add(issueAt(2, 0)) {
		t.Fatal("adds below the cap must succeed")
	}
	if bag.Add(issueAt(3, 0)) {
		t.Fatal("add beyond the cap must be rejected")
	}
	if bag.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", bag.Len())
	}
}

func TestBagCapClampsToUint16(t *testing.T) {
	bag := NewBag(math.MaxUint16 + 10)
	if bag.Cap() != math.MaxUint16 {
		t.Fatalf("oversized limit must clamp to %d, got %d", math.MaxUint16, bag.Cap())
	}

	bag = NewBag(0)
	if bag.Add(issueAt(1, 0)) {
		t.Fatal("zero-cap bag must reject every add")
	}
}

func TestBagHasIssues(t *testing.T) {
	bag := NewBag(4)
	if bag.HasIssues() {
		t.Fatal("empty bag must not report issues")
	}
	bag.Add(issueAt(7, 1))
	if !bag.HasIssues() {
		t.Fatal("bag with one item must report issues")
	}
}

func TestBagSortOrdersByLineThenPosition(t *testing.T) {
	bag := NewBag(8)
	bag.Add(issueAt(9, 0))
	bag.Add(issueAt(2, 5))
	bag.Add(issueAt(2, 1))
	bag.Sort()

	items := bag.Items()
	if items[0].Line != 2 || items[0].Changes[0].Pos != 1 {
		t.Errorf("expected line 2 pos 1 first, got line %d pos %d", items[0].Line, items[0].Changes[0].Pos)
	}
	if items[1].Line != 2 || items[1].Changes[0].Pos != 5 {
		t.Errorf("expected line 2 pos 5 second, got line %d", items[1].Line)
	}
	if items[2].Line != 9 {
		t.Errorf("expected line 9 last, got %d", items[2].Line)
	}
}

func TestBagMergeGrowsCap(t *testing.T) {
	a := NewBag(1)
	a.Add(issueAt(1, 0))
	b := NewBag(2)
	b.Add(issueAt(2, 0))
	b.Add(issueAt(3, 0))

	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("expected 3 items after merge, got %d", a.Len())
	}
	a.Merge(nil) // no-op
	if a.Len() != 3 {
		t.Fatalf("merge with nil must not change the bag, got %d", a.Len())
	}
}
