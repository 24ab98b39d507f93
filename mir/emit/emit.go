// Package emit implements the fact emitter core: given a program and its
// precomputed loan index, it walks every basic block and statement and
// appends access_origin, clear_origin, invalidate_origin,
// introduce_subset, cfg_edge, and node_text facts to a facts.Facts
// accumulator.
//
// The emitter reads the program and loan index only; it never mutates
// either, and the accumulator it writes to is exclusively owned for the
// duration of one Emit call.
package emit

import (
	"fmt"

	"github.com/ecstatic-morse/polonius.next/mir/ast"
	"github.com/ecstatic-morse/polonius.next/mir/cfgnode"
	"github.com/ecstatic-morse/polonius.next/mir/facts"
	"github.com/ecstatic-morse/polonius.next/mir/loans"
	"github.com/ecstatic-morse/polonius.next/mir/resolve"
)

// Emitter derives facts for one Program.
type Emitter struct {
	program  *ast.Program
	resolver *resolve.Resolver
	loans    *loans.Index
	names    *cfgnode.Namer
}

// New builds an Emitter for prog, constructing the loan index in the
// process. simpleNodeNames selects the single-letter node naming
// scheme; it is OR'd with the SIMPLE_NODES environment variable.
func New(prog *ast.Program, simpleNodeNames bool) *Emitter {
	useSimple := simpleNodeNames || cfgnode.EnvForcesSimpleNames()
	return &Emitter{
		program:  prog,
		resolver: resolve.New(prog),
		loans:    loans.Build(prog),
		names:    cfgnode.New(prog, useSimple),
	}
}

// Emit appends every fact derived from the program into f.
func (e *Emitter) Emit(f *facts.Facts) {
	for _, bb := range e.program.BasicBlocks {
		e.emitBlock(bb, f)
	}
}

func (e *Emitter) emitBlock(bb *ast.BasicBlock, f *facts.Facts) {
	e.emitCFGEdges(bb, f)

	for idx, s := range bb.Statements {
		node := e.names.At(bb.Name, idx)

		span := s.Span()
		f.AddNodeText(e.program.Text(span), node)

		switch s := s.(type) {
		case ast.Assign:
			e.emitAssign(node, s, f)
		case ast.ExprStmt:
			e.emitExpr(node, s.Expr, f)
		default:
			panic(fmt.Sprintf("emit: unhandled statement %T", s))
		}
	}
}

func (e *Emitter) emitAssign(node cfgnode.Node, s ast.Assign, f *facts.Facts) {
	lhsTy := e.resolver.Ty(s.Place)
	lhsOrigins := e.resolver.Origins(s.Place)

	// Assignments clear all origins in the LHS type: the assignment
	// overwrites the value, re-issuing every origin position inside it.
	for _, origin := range lhsOrigins {
		f.AddClearOrigin(origin, node)
	}

	if !ast.IsRef(lhsTy) {
		// Writing to a non-reference value invalidates any loan of that
		// value. Only complete places are indexed, see mir/loans.
		for _, loan := range e.loans.Loans(s.Place) {
			f.AddInvalidateOrigin(loan.Origin, node)
		}
	}

	e.emitExpr(node, s.Expr, f)
	e.emitSubsets(node, lhsTy, s.Expr, f)
}

func (e *Emitter) emitExpr(node cfgnode.Node, expr ast.Expr, f *facts.Facts) {
	switch expr := expr.(type) {
	case ast.Access:
		e.emitAccess(node, expr, f)

	case ast.Call:
		for _, arg := range expr.Arguments {
			e.emitExpr(node, arg, f)
		}
		// NOTE: no subset is introduced between call arguments and the
		// call's result; function signatures are not resolved here.

	case ast.Number:
		// no facts

	default:
		panic(fmt.Sprintf("emit: unhandled expression %T", expr))
	}
}

func (e *Emitter) emitAccess(node cfgnode.Node, access ast.Access, f *facts.Facts) {
	switch kind := access.Kind.(type) {
	case ast.Borrow:
		// Borrowing re-issues its origin; the borrowed place's own
		// origins are not accessed here. Borrows through fields aren't
		// tracked for invalidation either, so a shared borrow's referent
		// is not itself modelled as a read.
		f.AddClearOrigin(kind.Origin, node)

	case ast.BorrowMut:
		f.AddClearOrigin(kind.Origin, node)

		// A mutable borrow is a write to the place: it accesses the
		// place's origins and invalidates every loan the static index
		// records for it, including this borrow's own loan and loans
		// issued later in the program.
		for _, origin := range e.resolver.Origins(access.Place) {
			f.AddAccessOrigin(origin, node)
		}
		for _, loan := range e.loans.Loans(access.Place) {
			f.AddInvalidateOrigin(loan.Origin, node)
		}

	case ast.Copy, ast.Move:
		// Reads access all the origins in their type.
		for _, origin := range e.resolver.Origins(access.Place) {
			f.AddAccessOrigin(origin, node)
		}

	default:
		panic(fmt.Sprintf("emit: unhandled access kind %T", kind))
	}
}

func (e *Emitter) emitCFGEdges(bb *ast.BasicBlock, f *facts.Facts) {
	n := len(bb.Statements)

	for i := 1; i < n; i++ {
		f.AddCFGEdge(e.names.At(bb.Name, i-1), e.names.At(bb.Name, i))
	}

	last := n - 1
	if n == 0 {
		last = 0
	}
	for _, succ := range bb.Successors {
		f.AddCFGEdge(e.names.At(bb.Name, last), e.names.At(succ, 0))
	}
}
