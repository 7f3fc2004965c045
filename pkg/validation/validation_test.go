package validation

import (
	"strings"
	"testing"
)

func TestNewReport(t *testing.T) {
	r := NewReport()
	if !r.Valid {
		t.Error("new report should be valid")
	}
	if r.Summary != "0 errors, 0 warnings, 0 info" {
		t.Errorf("summary = %q", r.Summary)
	}
	if r.Err() != nil {
		t.Errorf("Err() = %v, want nil", r.Err())
	}
}

func TestAddSetsSeverity(t *testing.T) {
	tests := []struct {
		name  string
		add   func(*Report, Result)
		sev   Severity
		valid bool
		group func(*Report) []Result
	}{
		{"error", (*Report).AddError, SeverityError, false, func(r *Report) []Result { return r.Errors }},
		{"warning", (*Report).AddWarning, SeverityWarning, true, func(r *Report) []Result { return r.Warnings }},
		{"info", (*Report).AddInfo, SeverityInfo, true, func(r *Report) []Result { return r.Info }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReport()
			tt.add(r, Result{Level: LevelBounds, Message: "m", Path: "max_slots.coin"})

			got := tt.group(r)
			if len(got) != 1 {
				t.Fatalf("got %d results, want 1", len(got))
			}
			if got[0].Severity != tt.sev {
				t.Errorf("severity = %s, want %s", got[0].Severity, tt.sev)
			}
			if r.Valid != tt.valid {
				t.Errorf("valid = %v, want %v", r.Valid, tt.valid)
			}
		})
	}
}

func TestHasPathIgnoresInfo(t *testing.T) {
	r := NewReport()
	r.AddWarning(Result{Level: LevelTables, Path: "coin_tables.Duck Salon[7]"})
	r.AddInfo(Result{Level: LevelKinds, Path: "assets"})

	if !r.HasPath("coin_tables.Duck Salon[7]") {
		t.Error("warning path not found")
	}
	if r.HasPath("assets") {
		t.Error("info paths should not match")
	}
}

func TestMerge(t *testing.T) {
	a := NewReport()
	a.AddWarning(Result{Level: LevelBounds, Message: "w1"})

	b := NewReport()
	b.AddError(Result{Level: LevelTables, Message: "e1"})
	b.AddWarning(Result{Level: LevelTables, Message: "w2"})
	b.AddInfo(Result{Level: LevelTables, Message: "i1"})

	a.Merge(b)
	if a.Valid {
		t.Error("merged report should be invalid")
	}
	if a.Summary != "1 errors, 2 warnings, 1 info" {
		t.Errorf("summary = %q", a.Summary)
	}
	if a.Errors[0].Severity != SeverityError {
		t.Errorf("merged error severity = %s", a.Errors[0].Severity)
	}
}

func TestErrJoinsMessages(t *testing.T) {
	r := NewReport()
	r.AddError(Result{Path: "max_slots.coin", Message: "must be greater than 0"})
	r.AddError(Result{Path: "instances.Bakery", Message: "must be at least 1"})

	err := r.Err()
	if err == nil {
		t.Fatal("Err() = nil for an invalid report")
	}
	for _, want := range []string{"max_slots.coin: must be greater than 0", "instances.Bakery: must be at least 1"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Err() = %q, missing %q", err, want)
		}
	}
}
