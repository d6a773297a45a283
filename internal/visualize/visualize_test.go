package visualize

import (
	"testing"

	"github.com/goccy/go-graphviz/cgraph"
	"github.com/stretchr/testify/assert"

	"github.com/rgonzalez/regexfa/internal/automaton"
)

// fakeAutomaton is a minimal automaton.Automaton stand-in so the
// state-classification rules can be tested without a real graphviz
// instance behind them.
type fakeAutomaton struct {
	start automaton.Handle
	final automaton.Set
	trap  automaton.Handle
}

func (f *fakeAutomaton) TypeName() string             { return "fake" }
func (f *fakeAutomaton) StartHandle() automaton.Handle { return f.start }
func (f *fakeAutomaton) IsFinal(h automaton.Handle) bool {
	return f.final.Has(h)
}
func (f *fakeAutomaton) IsTrap(h automaton.Handle) bool        { return h == f.trap }
func (f *fakeAutomaton) DisplayName(h automaton.Handle) string { return "" }
func (f *fakeAutomaton) OutEdges(h automaton.Handle) []automaton.Edge { return nil }

func TestStateColor(t *testing.T) {
	a := &fakeAutomaton{start: 1, final: automaton.NewSet(2), trap: 3}

	assert.Equal(t, initialStateColor, stateColor(a, 1))
	assert.Equal(t, finalStateColor, stateColor(a, 2))
	assert.Equal(t, trapStateColor, stateColor(a, 3))
	assert.Equal(t, middleStateColor, stateColor(a, 4))
}

func TestStateColorInitialTakesPrecedenceOverFinal(t *testing.T) {
	a := &fakeAutomaton{start: 1, final: automaton.NewSet(1), trap: 3}
	assert.Equal(t, initialStateColor, stateColor(a, 1))
}

func TestStateShape(t *testing.T) {
	a := &fakeAutomaton{start: 1, final: automaton.NewSet(2), trap: 3}

	assert.Equal(t, cgraph.CircleShape, stateShape(a, 1))
	assert.Equal(t, cgraph.DoubleCircleShape, stateShape(a, 2))
	assert.Equal(t, cgraph.CircleShape, stateShape(a, 4))
}
