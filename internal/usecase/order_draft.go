package usecase

import (
	"mecanica_workorders/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// OrderDraft is the ordered list of services attached to an unsaved order.
// It never holds two lines with the same id.
type OrderDraft struct {
	lines []entities.ServiceLine
}

func NewOrderDraft(lines []entities.ServiceLine) *OrderDraft {
	d := &OrderDraft{}
	for _, l := range lines {
		d.Append(l)
	}
	return d
}

func (d *OrderDraft) Contains(id string) bool {
	for _, l := range d.lines {
		if l.ID == id {
			return true
		}
	}
	return false
}

// Append adds l at the end unless a line with the same id is present.
// It reports whether the draft changed.
func (d *OrderDraft) Append(l entities.ServiceLine) bool {
	if l.ID == "" || d.Contains(l.ID) {
		return false
	}
	d.lines = append(d.lines, l)
	return true
}

// Remove drops the first line with the given id.
func (d *OrderDraft) Remove(id string) bool {
	for i, l := range d.lines {
		if l.ID == id {
			d.lines = append(d.lines[:i:i], d.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Lines returns a copy of the current lines in insertion order.
func (d *OrderDraft) Lines() []entities.ServiceLine {
	out := make([]entities.ServiceLine, len(d.lines))
	copy(out, d.lines)
	return out
}

func (d *OrderDraft) Len() int {
	return len(d.lines)
}

// Total is recomputed from the lines on every call.
func (d *OrderDraft) Total() decimal.Decimal {
	return entities.SumPrices(d.lines)
}
