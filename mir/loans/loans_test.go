package loans

import (
	"testing"

	"github.com/ecstatic-morse/polonius.next/mir/ast"
)

func TestBuild_RecordsCompleteBorrow(t *testing.T) {
	p := &ast.Program{
		BasicBlocks: []*ast.BasicBlock{
			{
				Name: "bb0",
				Statements: []ast.Statement{
					ast.NewAssign(
						ast.Place{Base: "r"},
						ast.Access{Kind: ast.Borrow{Origin: "'a"}, Place: ast.Place{Base: "x"}},
						ast.Span{},
					),
				},
			},
		},
	}
	idx := Build(p)

	loans := idx.Loans(ast.Place{Base: "x"})
	if len(loans) != 1 || loans[0].Origin != "'a" {
		t.Errorf("Loans(x) = %v, want one loan of 'a", loans)
	}
}

func TestBuild_IgnoresFieldBorrows(t *testing.T) {
	p := &ast.Program{
		BasicBlocks: []*ast.BasicBlock{
			{
				Name: "bb0",
				Statements: []ast.Statement{
					ast.NewAssign(
						ast.Place{Base: "r"},
						ast.Access{Kind: ast.Borrow{Origin: "'a"}, Place: ast.Place{Base: "x", Fields: []ast.Name{"f"}}},
						ast.Span{},
					),
				},
			},
		},
	}
	idx := Build(p)

	if loans := idx.Loans(ast.Place{Base: "x", Fields: []ast.Name{"f"}}); loans != nil {
		t.Errorf("Loans(x.f) = %v, want nil (field borrows are not indexed)", loans)
	}
}

func TestBuild_IgnoresCopyAndMove(t *testing.T) {
	p := &ast.Program{
		BasicBlocks: []*ast.BasicBlock{
			{
				Name: "bb0",
				Statements: []ast.Statement{
					ast.NewAssign(ast.Place{Base: "r"}, ast.Access{Kind: ast.Copy{}, Place: ast.Place{Base: "x"}}, ast.Span{}),
				},
			},
		},
	}
	idx := Build(p)
	if loans := idx.Loans(ast.Place{Base: "x"}); loans != nil {
		t.Errorf("Loans(x) = %v, want nil for a copy", loans)
	}
}

func TestBuild_MultipleBorrowsPreserveOrder(t *testing.T) {
	p := &ast.Program{
		BasicBlocks: []*ast.BasicBlock{
			{
				Name: "bb0",
				Statements: []ast.Statement{
					ast.NewExprStmt(ast.Access{Kind: ast.Borrow{Origin: "'a"}, Place: ast.Place{Base: "x"}}, ast.Span{}),
					ast.NewExprStmt(ast.Access{Kind: ast.BorrowMut{Origin: "'b"}, Place: ast.Place{Base: "x"}}, ast.Span{}),
				},
			},
		},
	}
	idx := Build(p)
	loans := idx.Loans(ast.Place{Base: "x"})
	if len(loans) != 2 || loans[0].Origin != "'a" || loans[1].Origin != "'b" {
		t.Errorf("Loans(x) = %v, want ['a, 'b] in issuance order", loans)
	}
}
