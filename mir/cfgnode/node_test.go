package cfgnode

import (
	"testing"

	"github.com/ecstatic-morse/polonius.next/mir/ast"
)

func TestAt_DefaultNaming(t *testing.T) {
	p := &ast.Program{BasicBlocks: []*ast.BasicBlock{{Name: "bb0"}}}
	n := New(p, false)
	if got, want := n.At("bb0", 2), Node("bb0[2]"); got != want {
		t.Errorf("At(bb0, 2) = %q, want %q", got, want)
	}
}

func TestAt_SimpleNaming(t *testing.T) {
	p := &ast.Program{
		BasicBlocks: []*ast.BasicBlock{
			{Name: "bb0", Statements: []ast.Statement{ast.NewExprStmt(ast.Number{}, ast.Span{}), ast.NewExprStmt(ast.Number{}, ast.Span{})}},
			{Name: "bb1", Statements: []ast.Statement{ast.NewExprStmt(ast.Number{}, ast.Span{})}},
		},
	}
	n := New(p, true)

	if got, want := n.At("bb0", 0), Node("a"); got != want {
		t.Errorf("At(bb0, 0) = %q, want %q", got, want)
	}
	if got, want := n.At("bb0", 1), Node("b"); got != want {
		t.Errorf("At(bb0, 1) = %q, want %q", got, want)
	}
	if got, want := n.At("bb1", 0), Node("c"); got != want {
		t.Errorf("At(bb1, 0) = %q, want %q", got, want)
	}
}

func TestAt_SimpleNaming_EmptyBlockOccupiesOneSlot(t *testing.T) {
	p := &ast.Program{
		BasicBlocks: []*ast.BasicBlock{
			{Name: "empty"},
			{Name: "next", Statements: []ast.Statement{ast.NewExprStmt(ast.Number{}, ast.Span{})}},
		},
	}
	n := New(p, true)
	if got, want := n.At("next", 0), Node("b"); got != want {
		t.Errorf("At(next, 0) = %q, want %q (empty block still occupies slot 'a')", got, want)
	}
}

func TestEnvForcesSimpleNames(t *testing.T) {
	t.Setenv("SIMPLE_NODES", "")
	if !EnvForcesSimpleNames() {
		t.Error("EnvForcesSimpleNames() = false with SIMPLE_NODES set (even empty), want true")
	}
}
