// Package cfgnode assigns stable, externally visible labels ("nodes") to
// CFG locations: by default "block[stmt_index]", or, in simple mode, a
// single letter obtained by linearising statement indices across blocks
// (counting empty blocks as occupying one slot).
package cfgnode

import (
	"fmt"
	"os"

	"github.com/ecstatic-morse/polonius.next/mir/ast"
)

// EnvForcesSimpleNames reports whether the SIMPLE_NODES environment
// variable is set, regardless of its value.
func EnvForcesSimpleNames() bool {
	_, ok := os.LookupEnv("SIMPLE_NODES")
	return ok
}

// Node is an externally visible CFG location label.
type Node string

// Namer assigns Node labels to (block, statement-index) locations for a
// fixed Program, in either the default or the single-letter scheme.
type Namer struct {
	program      *ast.Program
	simpleNames  bool
	blockStartAt map[ast.Name]int
}

// New returns a Namer for prog. simpleNames selects the single-letter
// scheme. New does not read the SIMPLE_NODES environment variable
// itself; emit.New ORs EnvForcesSimpleNames into the flag it passes.
func New(prog *ast.Program, simpleNames bool) *Namer {
	n := &Namer{program: prog, simpleNames: simpleNames}
	if simpleNames {
		n.blockStartAt = make(map[ast.Name]int, len(prog.BasicBlocks))
		acc := 0
		for _, bb := range prog.BasicBlocks {
			n.blockStartAt[bb.Name] = acc
			acc += max(len(bb.Statements), 1)
		}
	}
	return n
}

// At returns the node label for the statement at statementIdx within the
// block named block.
func (n *Namer) At(block ast.Name, statementIdx int) Node {
	if n.simpleNames {
		letterIdx := n.blockStartAt[block] + statementIdx
		return Node(rune('a' + letterIdx))
	}
	return Node(fmt.Sprintf("%s[%d]", block, statementIdx))
}
