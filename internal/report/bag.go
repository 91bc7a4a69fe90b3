package report

import (
	"math"
	"sort"

	"fortio.org/safecast"
)

// Bag collects the issues found in a single file, up to a cap.
type Bag struct {
	items []Issue
	max   uint16
}

// capUint16 зажимает запрошенный лимит в диапазон uint16.
func capUint16(n int) uint16 {
	capped, err := safecast.Conv[uint16](n)
	if err != nil {
		return math.MaxUint16
	}
	return capped
}

func NewBag(max int) *Bag {
	if max < 0 {
		max = 0
	}
	capped := capUint16(max)
	return &Bag{
		items: make([]Issue, 0, capped),
		max:   capped,
	}
}

// Add добавляет issue, учитывая лимит.
// Возвращает false, если лимит достигнут и issue не добавлен.
func (b *Bag) Add(issue Issue) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, issue)
	return true
}

func (b *Bag) Cap() uint16 {
	return b.max
}

func (b *Bag) Len() int {
	return len(b.items)
}

// HasIssues reports whether at least one line needed normalization.
func (b *Bag) HasIssues() bool {
	return len(b.items) > 0
}

// Items возвращает read-only slice issues.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
func (b *Bag) Items() []Issue {
	return b.items
}

// Merge объединяет issues из другого Bag.
// Увеличивает max, если нужно вместить все элементы.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	newTotal := len(b.items) + len(other.items)
	if newTotal > int(b.max) {
		b.max = capUint16(newTotal)
	}
	b.items = append(b.items, other.items...)
}

// Sort сортирует issues по номеру строки, затем по позиции первого отличия,
// для стабильного порядка вывода.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		ii, ij := b.items[i], b.items[j]
		if ii.Line != ij.Line {
			return ii.Line < ij.Line
		}
		if len(ii.Changes) > 0 && len(ij.Changes) > 0 {
			return ii.Changes[0].Pos < ij.Changes[0].Pos
		}
		return len(ii.Changes) > len(ij.Changes)
	})
}
