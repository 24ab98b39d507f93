package emit

import (
	"testing"

	"github.com/ecstatic-morse/polonius.next/mir/ast"
	"github.com/ecstatic-morse/polonius.next/mir/facts"
)

func newEmitter(prog *ast.Program) *Emitter {
	return New(prog, false)
}

func TestEmitSubsets_SharedRefToSharedRefCopy(t *testing.T) {
	prog := &ast.Program{
		Variables: []*ast.VariableDecl{
			{Name: "x", Ty: ast.Ref{Origin: "'x", Ty: ast.I32{}}},
			{Name: "r", Ty: ast.Ref{Origin: "'r", Ty: ast.I32{}}},
		},
	}
	e := newEmitter(prog)
	f := &facts.Facts{}
	e.emitSubsets("n", ast.Ref{Origin: "'r", Ty: ast.I32{}},
		ast.Access{Kind: ast.Copy{}, Place: ast.Place{Base: "x"}}, f)

	if len(f.IntroduceSubset) != 1 || f.IntroduceSubset[0].Origin1 != "'x" || f.IntroduceSubset[0].Origin2 != "'r" {
		t.Errorf("IntroduceSubset = %v, want one ['x -> 'r]", f.IntroduceSubset)
	}
}

func TestEmitSubsets_PanicsOnSharedRefFromUniqueRef(t *testing.T) {
	prog := &ast.Program{
		Variables: []*ast.VariableDecl{
			{Name: "x", Ty: ast.RefMut{Origin: "'x", Ty: ast.I32{}}},
		},
	}
	e := newEmitter(prog)
	f := &facts.Facts{}

	defer func() {
		if recover() == nil {
			t.Error("expected a panic relating a shared-ref LHS to a unique-ref RHS place")
		}
	}()
	e.emitSubsets("n", ast.Ref{Origin: "'r", Ty: ast.I32{}},
		ast.Access{Kind: ast.Copy{}, Place: ast.Place{Base: "x"}}, f)
}

func TestEmitSubsets_StructMoveIsCovariantNoOpWithoutOrigins(t *testing.T) {
	prog := &ast.Program{
		Variables: []*ast.VariableDecl{
			{Name: "s", Ty: ast.Struct{Name: "T"}},
		},
	}
	e := newEmitter(prog)
	f := &facts.Facts{}
	e.emitSubsets("n", ast.Struct{Name: "T"}, ast.Access{Kind: ast.Move{}, Place: ast.Place{Base: "s"}}, f)

	if len(f.IntroduceSubset) != 0 {
		t.Errorf("IntroduceSubset = %v, want none for an origin-free struct move", f.IntroduceSubset)
	}
}

func TestEmitSubsets_CallRHSNeverPanics(t *testing.T) {
	prog := &ast.Program{}
	e := newEmitter(prog)
	f := &facts.Facts{}
	// Any LHS shape paired with a Call RHS must be a no-op: no
	// signature-driven subset introduction is performed.
	e.emitSubsets("n", ast.Ref{Origin: "'r", Ty: ast.I32{}}, ast.Call{Callee: "f"}, f)
	if len(f.IntroduceSubset) != 0 {
		t.Errorf("IntroduceSubset = %v, want none for a call RHS", f.IntroduceSubset)
	}
}

func TestEmitSubsets_MutRefInvariantRecursion(t *testing.T) {
	// A unique-ref LHS assigned from a mutable borrow: the borrow's origin
	// flows into the LHS origin, and the Invariant recursion into the i32
	// pointee adds no further subsets.
	prog := &ast.Program{
		Variables: []*ast.VariableDecl{
			{Name: "x", Ty: ast.RefMut{Origin: "'x", Ty: ast.I32{}}},
		},
	}
	e := newEmitter(prog)
	f := &facts.Facts{}
	e.emitSubsets("n", ast.RefMut{Origin: "'r", Ty: ast.I32{}},
		ast.Access{Kind: ast.BorrowMut{Origin: "'b"}, Place: ast.Place{Base: "x"}}, f)

	if len(f.IntroduceSubset) != 1 || f.IntroduceSubset[0].Origin1 != "'b" || f.IntroduceSubset[0].Origin2 != "'r" {
		t.Errorf("IntroduceSubset = %v, want one ['b -> 'r] from the borrow", f.IntroduceSubset)
	}
}

func TestAssertNoOriginsPresent_PanicsOnUnhandledOriginBearingLHS(t *testing.T) {
	e := newEmitter(&ast.Program{})
	defer func() {
		if recover() == nil {
			t.Error("expected a panic: LHS carries an origin the switch above didn't consume")
		}
	}()
	e.assertNoOriginsPresent(ast.Ref{Origin: "'r", Ty: ast.I32{}}, ast.Number{Value: 1})
}
