package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisteredTables(t *testing.T) {
	tests := []struct {
		name   string
		lookup func() (Table, bool)
		want   Table
	}{
		{"attack blue", func() (Table, bool) { return AttackTable(ColorBlue) },
			Table{{OutcomeSuccessful, 50}, {OutcomeGlazed, 20}, {OutcomeMiss, 15}, {OutcomeCritical, 15}}},
		{"attack green", func() (Table, bool) { return AttackTable(ColorGreen) },
			Table{{OutcomeMiss, 50}, {OutcomeGlazed, 20}, {OutcomeHit, 15}, {OutcomeCritical, 15}}},
		{"attack red", func() (Table, bool) { return AttackTable(ColorRed) },
			Table{{OutcomeHit, 25}, {OutcomeMiss, 25}, {OutcomeGlazed, 25}, {OutcomeCritical, 25}}},
		{"defense red/blue", func() (Table, bool) { return DefenseTable(ColorRed, ColorBlue) },
			Table{{OutcomeBlock, 50}, {OutcomeGlazedHit, 30}, {OutcomeCompleteHit, 20}}},
		{"defense red/green", func() (Table, bool) { return DefenseTable(ColorRed, ColorGreen) },
			Table{{OutcomeCompleteHit, 50}, {OutcomeGlazedHit, 30}, {OutcomeBlock, 20}}},
		{"defense red/red", func() (Table, bool) { return DefenseTable(ColorRed, ColorRed) },
			Table{{OutcomeBlock, 33}, {OutcomeGlazedHit, 33}, {OutcomeCompleteHit, 33}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.lookup()
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, got.Validate())
		})
	}
}

func TestTableLookup_Unknown(t *testing.T) {
	_, ok := AttackTable("purple")
	assert.False(t, ok)

	_, ok = DefenseTable(ColorBlue, ColorRed)
	assert.False(t, ok, "Only a red player has defense tables")
}

func TestTableLookup_ReturnsCopy(t *testing.T) {
	table, _ := AttackTable(ColorBlue)
	table[0].Weight = 0
	table[0].Label = "tampered"

	fresh, _ := AttackTable(ColorBlue)
	assert.Equal(t, OutcomeSuccessful, fresh[0].Label)
	assert.Equal(t, 50.0, fresh[0].Weight)
}

func TestTable_Validate(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		wantErr bool
	}{
		{"valid", Table{{"a", 60}, {"b", 40}}, false},
		{"zero weight allowed", Table{{"a", 0}, {"b", 100}}, false},
		{"empty", Table{}, true},
		{"missing label", Table{{"", 10}}, true},
		{"negative weight", Table{{"a", -1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTable)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTable_Helpers(t *testing.T) {
	table := Table{{"x", 10}, {"y", 15.5}}

	assert.InDelta(t, 25.5, table.Total(), 0.0001)
	assert.Equal(t, []string{"x", "y"}, table.Labels())
	assert.True(t, table.Has("y"))
	assert.False(t, table.Has("z"))
}
