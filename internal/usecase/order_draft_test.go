package usecase

import (
	"testing"

	"mecanica_workorders/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestOrderDraft(t *testing.T) {
	d := NewOrderDraft([]entities.ServiceLine{oilChange, oilChange, {ID: "", Price: decimal.NewFromInt(1)}})
	if d.Len() != 1 {
		t.Fatalf("expected duplicates and empty ids to be dropped, got %d lines", d.Len())
	}

	if !d.Append(tireRotation) || d.Append(tireRotation) {
		t.Fatalf("expected first append to change the draft and the second not to")
	}
	if !d.Total().Equal(decimal.RequireFromString("70")) {
		t.Fatalf("expected total 70, got %s", d.Total())
	}

	lines := d.Lines()
	lines[0].ID = "mutated"
	if !d.Contains("1") {
		t.Fatalf("Lines must return a copy")
	}

	if d.Remove("404") {
		t.Fatalf("removing an absent id must not change the draft")
	}
	if !d.Remove("1") || d.Contains("1") {
		t.Fatalf("expected id 1 to be removed")
	}
	if !d.Total().Equal(decimal.RequireFromString("20")) {
		t.Fatalf("expected total 20, got %s", d.Total())
	}

	empty := NewOrderDraft(nil)
	if !empty.Total().IsZero() {
		t.Fatalf("empty draft total must be zero")
	}
}
