// Package visualize renders an Automaton as a sequence of graph images,
// one per BFS wave outward from its start state that has outgoing
// edges, so a reader can watch
// the automaton unfold hop by hop instead of staring at the whole graph
// at once.
//
// Grounded on original_source/fa.py's Fa.draw: an invisible entry edge
// into the start node, a worklist of undrawn states processed one wave
// at a time, per-destination edge-label aggregation
// (state_transactions_reverse), and a "<type>_step_<n>" filename per
// wave. The Python original binds to Graphviz via the `graphviz`
// package; the closest real Go equivalent in the examined ecosystem is
// github.com/goccy/go-graphviz (no example repo's go.mod carries a
// graph-rendering library, so this is grounded on the teacher's own
// upstream dependency rather than a pack repo — see DESIGN.md).
package visualize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/rgonzalez/regexfa/internal/automataerrors"
	"github.com/rgonzalez/regexfa/internal/automaton"
)

const (
	initialStateColor = "lightblue"
	finalStateColor   = "palegreen"
	middleStateColor  = "white"
	trapStateColor    = "lightgray"
)

// Draw renders a into directory, creating it if necessary, and returns
// the paths of every PNG written. Each image adds the edges leaving one
// wave of states (the first wave is the start state alone) and the
// states those edges reach. A wave whose states have no outgoing edges
// adds no image, and there is no image of the start state by itself.
// Rendering failures
// (directory creation, graphviz library errors) are wrapped with
// automataerrors.ErrRenderFailure.
func Draw(a automaton.Automaton, directory string) ([]string, error) {
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return nil, automataerrors.RenderFailure(directory, err)
	}

	gv := graphviz.New()
	defer gv.Close()

	graph, err := gv.Graph(graphviz.Directed, graphviz.Name(a.TypeName()))
	if err != nil {
		return nil, automataerrors.RenderFailure(directory, err)
	}
	defer graph.Close()
	graph.SetRankDir(cgraph.LRRank)

	nodes := map[automaton.Handle]*cgraph.Node{}

	entry, err := graph.CreateNode("")
	if err != nil {
		return nil, automataerrors.RenderFailure(directory, err)
	}
	entry.SetShape(cgraph.NoneShape)

	start, err := declareNode(graph, a, a.StartHandle(), nodes)
	if err != nil {
		return nil, automataerrors.RenderFailure(directory, err)
	}
	if _, err := graph.CreateEdge("", entry, start); err != nil {
		return nil, automataerrors.RenderFailure(directory, err)
	}

	var images []string
	step := 1
	wave := []automaton.Handle{a.StartHandle()}
	drawn := map[automaton.Handle]bool{a.StartHandle(): true}

	for len(wave) > 0 {
		var next []automaton.Handle
		changed := false

		for _, h := range wave {
			source := nodes[h]
			for _, edge := range a.OutEdges(h) {
				target, ok := nodes[edge.Target]
				if !ok {
					target, err = declareNode(graph, a, edge.Target, nodes)
					if err != nil {
						return nil, automataerrors.RenderFailure(directory, err)
					}
				}
				if !drawn[edge.Target] {
					drawn[edge.Target] = true
					next = append(next, edge.Target)
				}

				edgeName := fmt.Sprintf("%d->%d:%s", h, edge.Target, edge.Symbol)
				e, err := graph.CreateEdge(edgeName, source, target)
				if err != nil {
					return nil, automataerrors.RenderFailure(directory, err)
				}
				e.SetLabel(edge.Symbol)
				changed = true
			}
		}

		if changed {
			label := fmt.Sprintf("%s_step_%d", a.TypeName(), step)
			graph.SetLabel(label)
			graph.SetFontSize(30)

			path := filepath.Join(directory, label+".png")
			if err := gv.RenderFilename(graph, graphviz.PNG, path); err != nil {
				return nil, automataerrors.RenderFailure(directory, err)
			}
			images = append(images, path)
			step++
		}

		wave = next
	}

	return images, nil
}

func declareNode(graph *cgraph.Graph, a automaton.Automaton, h automaton.Handle, nodes map[automaton.Handle]*cgraph.Node) (*cgraph.Node, error) {
	node, err := graph.CreateNode(fmt.Sprintf("%d", h))
	if err != nil {
		return nil, err
	}
	node.SetStyle(cgraph.FilledNodeStyle)
	node.SetShape(stateShape(a, h))
	node.SetFillColor(stateColor(a, h))
	node.SetLabel(a.DisplayName(h))
	nodes[h] = node
	return node, nil
}

// stateColor and stateShape are split out from declareNode so the
// state-classification rules can be exercised without a real graphviz
// instance backing them.

func stateColor(a automaton.Automaton, h automaton.Handle) string {
	switch {
	case h == a.StartHandle():
		return initialStateColor
	case a.IsTrap(h):
		return trapStateColor
	case a.IsFinal(h):
		return finalStateColor
	default:
		return middleStateColor
	}
}

func stateShape(a automaton.Automaton, h automaton.Handle) cgraph.Shape {
	if a.IsFinal(h) {
		return cgraph.DoubleCircleShape
	}
	return cgraph.CircleShape
}
