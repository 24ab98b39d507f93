// Package render implements the textual fact format: one block per
// node, each listing its facts in the fixed order access → invalidate
// → clear → introduce_subset, followed by a goto line and a closing
// brace. It also offers a JSON encoding of the same grouped structure
// for consumers that would rather not re-derive the grouping.
package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ecstatic-morse/polonius.next/mir/cfgnode"
	"github.com/ecstatic-morse/polonius.next/mir/facts"
)

// Node is the rendered representation of one CFG node's facts, in
// display order.
type Node struct {
	Label      cfgnode.Node
	Text       string
	FactLines  []string
	Successors []cfgnode.Node
}

// Group indexes f by node, in the node label's sorted order, and fills
// in a "(pass)" node_text default and an empty successor list for any
// node that appears only as a CFG endpoint. Groups always sort by the
// string form of their label: in default-naming mode this is a
// lexicographic, not numeric, sort of "block[idx]" strings.
func Group(f *facts.Facts) []Node {
	byNode := make(map[cfgnode.Node]*Node)
	order := func(n cfgnode.Node) *Node {
		g, ok := byNode[n]
		if !ok {
			g = &Node{Label: n, Text: "(pass)"}
			byNode[n] = g
		}
		return g
	}

	for _, e := range f.CFGEdge {
		order(e.From)
		order(e.To)
	}

	for _, nt := range f.NodeText {
		order(nt.Node).Text = nt.Text
	}

	for _, a := range f.AccessOrigin {
		g := order(a.Node)
		g.FactLines = append(g.FactLines, fmt.Sprintf("access_origin(%s)", a.Origin))
	}
	for _, inv := range f.InvalidateOrigin {
		g := order(inv.Node)
		g.FactLines = append(g.FactLines, fmt.Sprintf("invalidate_origin(%s)", inv.Origin))
	}
	for _, c := range f.ClearOrigin {
		g := order(c.Node)
		g.FactLines = append(g.FactLines, fmt.Sprintf("clear_origin(%s)", c.Origin))
	}
	for _, s := range f.IntroduceSubset {
		g := order(s.Node)
		g.FactLines = append(g.FactLines, fmt.Sprintf("introduce_subset(%s, %s)", s.Origin1, s.Origin2))
	}
	for _, e := range f.CFGEdge {
		g := order(e.From)
		g.Successors = append(g.Successors, e.To)
	}

	nodes := make([]*Node, 0, len(byNode))
	for _, g := range byNode {
		nodes = append(nodes, g)
	}
	sort.Slice(nodes, func(i, j int) bool { return string(nodes[i].Label) < string(nodes[j].Label) })

	out := make([]Node, len(nodes))
	for i, g := range nodes {
		out[i] = *g
	}
	return out
}

// Text renders f in the textual fact format.
func Text(f *facts.Facts) string {
	var b strings.Builder
	for i, n := range Group(f) {
		if i != 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s {\n", n.Label, strconv.Quote(n.Text))
		for _, line := range n.FactLines {
			b.WriteByte('\t')
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteString("\tgoto")
		for _, succ := range n.Successors {
			b.WriteByte(' ')
			b.WriteString(string(succ))
		}
		b.WriteString("\n}\n")
	}
	return b.String()
}
