package goals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		input   string
		want    Type
		wantErr bool
	}{
		{input: "", want: Minimum},
		{input: "minimum", want: Minimum},
		{input: "MIN", want: Minimum},
		{input: "maximum", want: Maximum},
		{input: " max ", want: Maximum},
		{input: "approximate", want: Approximate},
		{input: "about", want: Approximate},
		{input: "exactly", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		goal      Goal
		words     int
		met       bool
		status    string
		remaining int
	}{
		{name: "no goal", goal: Goal{}, words: 120, met: false, status: StatusNone},
		{name: "minimum under", goal: Goal{Type: Minimum, Target: 1000}, words: 800, met: false, status: StatusUnder, remaining: 200},
		{name: "minimum exact", goal: Goal{Type: Minimum, Target: 1000}, words: 1000, met: true, status: StatusMet},
		{name: "minimum exceeded", goal: Goal{Type: Minimum, Target: 1000}, words: 1500, met: true, status: StatusMet},
		{name: "untyped goal is a minimum", goal: Goal{Target: 10}, words: 11, met: true, status: StatusMet},
		{name: "maximum under", goal: Goal{Type: Maximum, Target: 500}, words: 300, met: true, status: StatusMet},
		{name: "maximum over", goal: Goal{Type: Maximum, Target: 500}, words: 520, met: false, status: StatusOver, remaining: -20},
		{name: "approximate inside low edge", goal: Goal{Type: Approximate, Target: 1000}, words: 950, met: true, status: StatusMet, remaining: 50},
		{name: "approximate inside high edge", goal: Goal{Type: Approximate, Target: 1000}, words: 1050, met: true, status: StatusMet, remaining: -50},
		{name: "approximate too short", goal: Goal{Type: Approximate, Target: 1000}, words: 949, met: false, status: StatusUnder, remaining: 51},
		{name: "approximate too long", goal: Goal{Type: Approximate, Target: 1000}, words: 1051, met: false, status: StatusOver, remaining: -51},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Evaluate(tt.goal, tt.words)
			assert.Equal(t, tt.met, p.Met)
			assert.Equal(t, tt.status, p.Status)
			assert.Equal(t, tt.remaining, p.Remaining)
			assert.GreaterOrEqual(t, p.Percent, 0.0)
			assert.LessOrEqual(t, p.Percent, 1.0)
		})
	}
}

func TestEvaluatePercent(t *testing.T) {
	p := Evaluate(Goal{Type: Minimum, Target: 200}, 50)
	assert.InDelta(t, 0.25, p.Percent, 1e-9)
	assert.InDelta(t, 0.25, p.Ratio, 1e-9)

	p = Evaluate(Goal{Type: Minimum, Target: 200}, 400)
	assert.InDelta(t, 1.0, p.Percent, 1e-9)
	assert.InDelta(t, 2.0, p.Ratio, 1e-9)
}

func TestGoalValid(t *testing.T) {
	assert.NoError(t, Goal{Type: Approximate, Target: 100}.Valid())
	assert.NoError(t, Goal{}.Valid())
	assert.Error(t, Goal{Type: Minimum, Target: -1}.Valid())
	assert.Error(t, Goal{Type: "roughly", Target: 100}.Valid())
}

func TestProgressString(t *testing.T) {
	assert.Equal(t, "12 words (no goal)", Evaluate(Goal{}, 12).String())
	assert.Equal(t, "800/1000 words (80%, under minimum)", Evaluate(Goal{Type: Minimum, Target: 1000}, 800).String())
}
