package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/ColorDuel_Go/internal/combat"
)

// titleCaser is shared; the CLI formats from a single goroutine.
var titleCaser = cases.Title(language.English)

// displayName renders an outcome label for players: "glazed_hit" -> "Glazed Hit".
func displayName(label string) string {
	return titleCaser.String(strings.ReplaceAll(label, "_", " "))
}

func phaseTitle(phase combat.Phase) string {
	return titleCaser.String(string(phase))
}

func printOutcome(w io.Writer, phase combat.Phase, outcome string) {
	fmt.Fprintf(w, "%s Outcome: %s\n", phaseTitle(phase), displayName(outcome))
}

// printTally prints outcome counts sorted by descending count, then label.
func printTally(w io.Writer, phase combat.Phase, counts map[string]int, rounds int) {
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return labels[i] < labels[j]
	})

	fmt.Fprintf(w, "%s outcomes over %d rounds:\n", phaseTitle(phase), rounds)
	for _, label := range labels {
		n := counts[label]
		fmt.Fprintf(w, "  %-14s %7d  %6.2f%%\n", displayName(label), n, 100*float64(n)/float64(rounds))
	}
}

func printTable(w io.Writer, title string, table combat.Table) {
	fmt.Fprintf(w, "%s (total %g)\n", title, table.Total())
	for _, e := range table {
		fmt.Fprintf(w, "  %-14s %g\n", e.Label, e.Weight)
	}
}

// printTables lists every registered attack and defense table.
func printTables(w io.Writer) {
	for _, enemy := range combat.Colors() {
		if t, ok := combat.AttackTable(enemy); ok {
			printTable(w, "attack vs "+enemy, t)
		}
	}
	for _, enemy := range combat.Colors() {
		if t, ok := combat.DefenseTable(combat.ColorRed, enemy); ok {
			printTable(w, "defense red vs "+enemy, t)
		}
	}
}
