package combat

import (
	"fmt"
	"slices"
)

// Entry is one labelled weight in an outcome table.
type Entry struct {
	Label  string
	Weight float64
}

// Table is an ordered outcome distribution. Order decides tie-breaks in Sample.
type Table []Entry

// Total returns the sum of all weights.
func (t Table) Total() float64 {
	total := 0.0
	for _, e := range t {
		total += e.Weight
	}
	return total
}

// Labels returns the outcome labels in table order.
func (t Table) Labels() []string {
	labels := make([]string, 0, len(t))
	for _, e := range t {
		labels = append(labels, e.Label)
	}
	return labels
}

// Has reports whether label is one of the table's outcomes.
func (t Table) Has(label string) bool {
	return slices.ContainsFunc(t, func(e Entry) bool { return e.Label == label })
}

// Validate checks that the table is usable by the sampler.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: table is empty", ErrInvalidTable)
	}
	for i, e := range t {
		if e.Label == "" {
			return fmt.Errorf("%w: entry %d has no label", ErrInvalidTable, i)
		}
		if e.Weight < 0 {
			return fmt.Errorf("%w: entry %q has negative weight %v", ErrInvalidTable, e.Label, e.Weight)
		}
	}
	return nil
}

// ============================================================================
// Registry
// ============================================================================

var attackTables = map[string]Table{
	ColorBlue: {
		{OutcomeSuccessful, 50},
		{OutcomeGlazed, 20},
		{OutcomeMiss, 15},
		{OutcomeCritical, 15},
	},
	ColorGreen: {
		{OutcomeMiss, 50},
		{OutcomeGlazed, 20},
		{OutcomeHit, 15},
		{OutcomeCritical, 15},
	},
	ColorRed: {
		{OutcomeHit, 25},
		{OutcomeMiss, 25},
		{OutcomeGlazed, 25},
		{OutcomeCritical, 25},
	},
}

type colorPair struct {
	player string
	enemy  string
}

// Only a red player has defense tables.
// red/red sums to 99, so a draw above 99 lands on OutcomeDefault.
var defenseTables = map[colorPair]Table{
	{ColorRed, ColorBlue}: {
		{OutcomeBlock, 50},
		{OutcomeGlazedHit, 30},
		{OutcomeCompleteHit, 20},
	},
	{ColorRed, ColorGreen}: {
		{OutcomeCompleteHit, 50},
		{OutcomeGlazedHit, 30},
		{OutcomeBlock, 20},
	},
	{ColorRed, ColorRed}: {
		{OutcomeBlock, 33},
		{OutcomeGlazedHit, 33},
		{OutcomeCompleteHit, 33},
	},
}

func init() {
	for color, t := range attackTables {
		if err := t.Validate(); err != nil {
			panic(fmt.Sprintf("attack table %s: %v", color, err))
		}
	}
	for pair, t := range defenseTables {
		if err := t.Validate(); err != nil {
			panic(fmt.Sprintf("defense table %s/%s: %v", pair.player, pair.enemy, err))
		}
	}
}

// AttackTable returns a copy of the attack table for enemyColor.
func AttackTable(enemyColor string) (Table, bool) {
	t, ok := attackTables[enemyColor]
	if !ok {
		return nil, false
	}
	return slices.Clone(t), true
}

// DefenseTable returns a copy of the defense table for the color pair.
func DefenseTable(playerColor, enemyColor string) (Table, bool) {
	t, ok := defenseTables[colorPair{playerColor, enemyColor}]
	if !ok {
		return nil, false
	}
	return slices.Clone(t), true
}

// Colors returns the enemy colors with registered tables, in display order.
func Colors() []string {
	return []string{ColorBlue, ColorGreen, ColorRed}
}
