package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/ChicagoDave/haydaycalc/pkg/catalog"
	"github.com/ChicagoDave/haydaycalc/pkg/planner"
	"github.com/ChicagoDave/haydaycalc/pkg/validation"
)

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			printResult(w, e)
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		for _, e := range r.Warnings {
			printResult(w, e)
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printResult(w io.Writer, res validation.Result) {
	fmt.Fprintf(w, "  [%s] %s\n", res.Level, res.Message)
	if res.Path != "" {
		fmt.Fprintf(w, "    -> %s = %v\n", res.Path, res.ActualValue)
	}
	if res.Expected != "" {
		fmt.Fprintf(w, "    expected: %s\n", res.Expected)
	}
	for _, s := range res.Suggestions {
		fmt.Fprintf(w, "    * %s\n", s)
	}
}

func printKinds(w io.Writer, kinds []catalog.Kind) {
	fmt.Fprintf(w, "%-24s %-8s %9s %6s %6s\n", "Kind", "Currency", "Instances", "Start", "Max")
	fmt.Fprintf(w, "%-24s %-8s %9s %6s %6s\n",
		"------------------------", "--------", "---------", "------", "------")
	for _, k := range kinds {
		fmt.Fprintf(w, "%-24s %-8s %9d %6d %6d\n", k.Name, k.Currency, k.Instances, k.MinSlots, k.MaxSlots)
	}
}

func printCost(w io.Writer, k catalog.Kind, current, target, cost int) {
	fmt.Fprintf(w, "%s %d -> %d: %s %s\n", k.Name, current, target, formatAmount(cost), unit(k.Currency))
}

func printPlan(w io.Writer, plan planner.Plan, all bool) {
	buildings := plan.Upgrading()
	if all {
		buildings = plan.Buildings
	}

	fmt.Fprintf(w, "%-24s %-24s %14s\n", "Building", "Range", "Cost")
	fmt.Fprintf(w, "%-24s %-24s %14s\n",
		"------------------------", "------------------------", "--------------")
	for _, b := range buildings {
		fmt.Fprintf(w, "%-24s %-24s %14s\n", b.Name, formatRanges(b.Instances), formatCost(b.Cost, b.Currency))
	}
	if len(buildings) == 0 {
		fmt.Fprintln(w, "(nothing left to unlock)")
	}

	fmt.Fprintln(w)
	if plan.Reduction > 0 {
		fmt.Fprintf(w, "Target reduction: %d\n", plan.Reduction)
	}
	printTotals(w, plan.Totals)
}

func printTotals(w io.Writer, t planner.Totals) {
	fmt.Fprintln(w, "Total Required")
	fmt.Fprintln(w, "--------------")
	fmt.Fprintf(w, "  Diamonds: %s\n", formatAmount(t.Diamonds))
	fmt.Fprintf(w, "  Coins:    %s\n", formatAmount(t.Coins))
}

func formatRanges(ranges []planner.Range) string {
	s := ""
	for i, r := range ranges {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d->%d", r.Current, r.Target)
	}
	return s
}

func formatCost(v int, c catalog.Currency) string {
	if v == 0 {
		return "no cost"
	}
	return formatAmount(v) + " " + abbrev(c)
}

func formatAmount(v int) string {
	return humanize.Comma(int64(v))
}

func unit(c catalog.Currency) string {
	if c == catalog.Coin {
		return "coins"
	}
	return "diamonds"
}

func abbrev(c catalog.Currency) string {
	if c == catalog.Coin {
		return "c"
	}
	return "d"
}
