package charts

import (
	"testing"

	"dashboard/quality"
)

func TestSummary(t *testing.T) {
	m := quality.Metrics{Completeness: 95.5, Consistency: 100, OverallIntegrity: 97.3}

	got := Summary(m)
	want := "Overall Integrity: 97.3% (Completeness: 95.5%, Consistency: 100%)"
	if got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestValidityPie(t *testing.T) {
	spec := ValidityPie(quality.Metrics{ValidRecords: 9, InvalidRecords: 1})

	if len(spec.Values) != 2 || spec.Values[0] != 9 || spec.Values[1] != 1 {
		t.Errorf("Expected two slices [9 1], got %v", spec.Values)
	}
	if spec.Labels[0] != "Valid" || spec.Labels[1] != "Invalid" {
		t.Errorf("Unexpected labels: %v", spec.Labels)
	}
	if spec.Annotation != "Valid: 9, Invalid: 1" {
		t.Errorf("Unexpected annotation: %q", spec.Annotation)
	}
}

func TestMetricsBar(t *testing.T) {
	spec := MetricsBar(quality.Metrics{Completeness: 75, Consistency: 50})

	if len(spec.Values) != 2 || spec.Values[0] != 75 || spec.Values[1] != 50 {
		t.Errorf("Expected two bars [75 50], got %v", spec.Values)
	}
	if spec.YLabel != "Percentage" {
		t.Errorf("Unexpected y label: %q", spec.YLabel)
	}
}
