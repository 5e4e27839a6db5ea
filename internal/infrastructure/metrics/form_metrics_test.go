package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestFormMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewFormMetrics(reg)

	m.FormSubmitted("new", true)
	m.FormSubmitted("new", true)
	m.FormSubmitted("finish", false)
	m.FormRejected("edit")
	m.WorkOrderDeleted()

	if got := testutil.ToFloat64(m.submitted.WithLabelValues("new", "true")); got != 2 {
		t.Fatalf("expected 2 submissions, got %v", got)
	}
	if got := testutil.ToFloat64(m.submitted.WithLabelValues("finish", "false")); got != 1 {
		t.Fatalf("expected 1 submission, got %v", got)
	}
	if got := testutil.ToFloat64(m.rejected.WithLabelValues("edit")); got != 1 {
		t.Fatalf("expected 1 rejection, got %v", got)
	}
	if got := testutil.ToFloat64(m.deleted); got != 1 {
		t.Fatalf("expected 1 deletion, got %v", got)
	}
}
