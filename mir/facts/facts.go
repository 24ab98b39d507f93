// Package facts defines the Facts accumulator: the five origin/CFG
// relations and the display-only node_text relation that the emitter
// produces. All relations are append-only multisets — duplicates are
// expected and emission order is observable, since the renderer and any
// downstream consumer rely on it.
package facts

import (
	"github.com/ecstatic-morse/polonius.next/mir/ast"
	"github.com/ecstatic-morse/polonius.next/mir/cfgnode"
)

// AccessOrigin records access_origin(Origin, Node).
type AccessOrigin struct {
	Origin ast.Name
	Node   cfgnode.Node
}

// ClearOrigin records clear_origin(Origin, Node).
type ClearOrigin struct {
	Origin ast.Name
	Node   cfgnode.Node
}

// InvalidateOrigin records invalidate_origin(Origin, Node).
type InvalidateOrigin struct {
	Origin ast.Name
	Node   cfgnode.Node
}

// IntroduceSubset records introduce_subset(Origin1, Origin2, Node):
// Origin1 flows into (is a subset of) Origin2 at Node.
type IntroduceSubset struct {
	Origin1 ast.Name
	Origin2 ast.Name
	Node    cfgnode.Node
}

// CFGEdge records cfg_edge(From, To).
type CFGEdge struct {
	From cfgnode.Node
	To   cfgnode.Node
}

// NodeText records node_text(Text, Node): a display-only fact carrying
// the original source slice for the statement at Node.
type NodeText struct {
	Text string
	Node cfgnode.Node
}

// Facts is the full output record: five origin/CFG relations plus
// node_text, each an append-only multiset in emission order. The zero
// value is ready to accumulate into.
type Facts struct {
	AccessOrigin     []AccessOrigin
	ClearOrigin      []ClearOrigin
	InvalidateOrigin []InvalidateOrigin
	IntroduceSubset  []IntroduceSubset
	CFGEdge          []CFGEdge
	NodeText         []NodeText
}

// AddAccessOrigin appends an access_origin fact.
func (f *Facts) AddAccessOrigin(origin ast.Name, node cfgnode.Node) {
	f.AccessOrigin = append(f.AccessOrigin, AccessOrigin{origin, node})
}

// AddClearOrigin appends a clear_origin fact.
func (f *Facts) AddClearOrigin(origin ast.Name, node cfgnode.Node) {
	f.ClearOrigin = append(f.ClearOrigin, ClearOrigin{origin, node})
}

// AddInvalidateOrigin appends an invalidate_origin fact.
func (f *Facts) AddInvalidateOrigin(origin ast.Name, node cfgnode.Node) {
	f.InvalidateOrigin = append(f.InvalidateOrigin, InvalidateOrigin{origin, node})
}

// AddIntroduceSubset appends an introduce_subset fact: origin1 ⊆ origin2.
func (f *Facts) AddIntroduceSubset(origin1, origin2 ast.Name, node cfgnode.Node) {
	f.IntroduceSubset = append(f.IntroduceSubset, IntroduceSubset{origin1, origin2, node})
}

// AddCFGEdge appends a cfg_edge fact.
func (f *Facts) AddCFGEdge(from, to cfgnode.Node) {
	f.CFGEdge = append(f.CFGEdge, CFGEdge{from, to})
}

// AddNodeText appends a node_text fact.
func (f *Facts) AddNodeText(text string, node cfgnode.Node) {
	f.NodeText = append(f.NodeText, NodeText{text, node})
}
