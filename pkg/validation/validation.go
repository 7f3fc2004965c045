// Package validation reports structural problems in a cost catalog.
package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Level names the group of checks that produced a result.
type Level string

const (
	LevelBounds Level = "bounds"
	LevelKinds  Level = "kinds"
	LevelTables Level = "tables"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Result is one finding. Path uses the catalog's YAML keys, for example
// "coin_tables.Duck Salon[3]".
type Result struct {
	Level       Level    `json:"level"`
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
	Path        string   `json:"path"`
	ActualValue any      `json:"actual_value,omitempty"`
	Expected    string   `json:"expected,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Report collects findings by severity. Any error makes it invalid.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []Result `json:"errors"`
	Warnings []Result `json:"warnings"`
	Info     []Result `json:"info"`
	Summary  string   `json:"summary"`
}

func NewReport() *Report {
	r := &Report{Valid: true, Errors: []Result{}, Warnings: []Result{}, Info: []Result{}}
	r.summarize()
	return r
}

// AddError records an error and marks the report invalid.
func (r *Report) AddError(res Result) { r.add(SeverityError, res) }

// AddWarning records a warning.
func (r *Report) AddWarning(res Result) { r.add(SeverityWarning, res) }

// AddInfo records an informational note.
func (r *Report) AddInfo(res Result) { r.add(SeverityInfo, res) }

func (r *Report) add(sev Severity, res Result) {
	res.Severity = sev
	switch sev {
	case SeverityError:
		r.Errors = append(r.Errors, res)
		r.Valid = false
	case SeverityWarning:
		r.Warnings = append(r.Warnings, res)
	default:
		r.Info = append(r.Info, res)
	}
	r.summarize()
}

// Merge appends every finding of other.
func (r *Report) Merge(other *Report) {
	for _, group := range [][]Result{other.Errors, other.Warnings, other.Info} {
		for _, res := range group {
			r.add(res.Severity, res)
		}
	}
}

// HasPath reports whether an error or warning points at path.
func (r *Report) HasPath(path string) bool {
	for _, group := range [][]Result{r.Errors, r.Warnings} {
		for _, res := range group {
			if res.Path == path {
				return true
			}
		}
	}
	return false
}

// Err joins the error messages, or returns nil for a valid report.
func (r *Report) Err() error {
	if r.Valid {
		return nil
	}
	errs := make([]error, 0, len(r.Errors))
	for _, res := range r.Errors {
		errs = append(errs, fmt.Errorf("%s: %s", res.Path, res.Message))
	}
	return errors.Join(errs...)
}

func (r *Report) summarize() {
	counts := []struct {
		n    int
		noun string
	}{{len(r.Errors), "errors"}, {len(r.Warnings), "warnings"}, {len(r.Info), "info"}}
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = fmt.Sprintf("%d %s", c.n, c.noun)
	}
	r.Summary = strings.Join(parts, ", ")
}
