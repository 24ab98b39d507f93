package resolve

import (
	"testing"

	"github.com/ecstatic-morse/polonius.next/mir/ast"
)

func prog(variables []*ast.VariableDecl, structs []*ast.StructDecl) *ast.Program {
	return &ast.Program{Variables: variables, StructDecls: structs}
}

func TestTy_BasePlace(t *testing.T) {
	p := prog([]*ast.VariableDecl{{Name: "x", Ty: ast.I32{}}}, nil)
	r := New(p)
	got := r.Ty(ast.Place{Base: "x"})
	if _, ok := got.(ast.I32); !ok {
		t.Errorf("Ty(x) = %#v, want I32", got)
	}
}

func TestTy_FieldAccess(t *testing.T) {
	pair := &ast.StructDecl{
		Name: "Pair",
		FieldDecls: []*ast.VariableDecl{
			{Name: "first", Ty: ast.I32{}},
			{Name: "second", Ty: ast.Ref{Origin: "'a", Ty: ast.I32{}}},
		},
	}
	p := prog([]*ast.VariableDecl{{Name: "x", Ty: ast.Struct{Name: "Pair"}}}, []*ast.StructDecl{pair})
	r := New(p)

	got := r.Ty(ast.Place{Base: "x", Fields: []ast.Name{"second"}})
	ref, ok := got.(ast.Ref)
	if !ok || ref.Origin != "'a" {
		t.Errorf("Ty(x.second) = %#v, want Ref{'a, I32}", got)
	}
}

func TestTy_GenericFieldSubstitution(t *testing.T) {
	box := &ast.StructDecl{
		Name:         "Box",
		GenericDecls: []ast.GenericDecl{ast.TyGeneric{Name: "T"}},
		FieldDecls: []*ast.VariableDecl{
			{Name: "val", Ty: ast.Struct{Name: "T"}},
		},
	}
	p := prog([]*ast.VariableDecl{{
		Name: "b",
		Ty: ast.Struct{
			Name:       "Box",
			Parameters: []ast.Parameter{ast.TyParam{Ty: ast.Ref{Origin: "'a", Ty: ast.I32{}}}},
		},
	}}, []*ast.StructDecl{box})
	r := New(p)

	got := r.Ty(ast.Place{Base: "b", Fields: []ast.Name{"val"}})
	ref, ok := got.(ast.Ref)
	if !ok || ref.Origin != "'a" {
		t.Errorf("Ty(b.val) = %#v, want Ref{'a, I32} via generic substitution", got)
	}
}

func TestTy_NonTransitiveSubstitution(t *testing.T) {
	// Box<T> { val: Inner<T> } — Inner's own generic parameter is not
	// substituted, since only a direct field-type-equals-generic-name
	// match is rewritten (documented open-question behaviour).
	inner := &ast.StructDecl{
		Name:         "Inner",
		GenericDecls: []ast.GenericDecl{ast.TyGeneric{Name: "U"}},
	}
	box := &ast.StructDecl{
		Name:         "Box",
		GenericDecls: []ast.GenericDecl{ast.TyGeneric{Name: "T"}},
		FieldDecls: []*ast.VariableDecl{
			{Name: "val", Ty: ast.Struct{Name: "Inner", Parameters: []ast.Parameter{ast.TyParam{Ty: ast.Struct{Name: "T"}}}}},
		},
	}
	p := prog([]*ast.VariableDecl{{
		Name: "b",
		Ty: ast.Struct{
			Name:       "Box",
			Parameters: []ast.Parameter{ast.TyParam{Ty: ast.I32{}}},
		},
	}}, []*ast.StructDecl{box, inner})
	r := New(p)

	got := r.Ty(ast.Place{Base: "b", Fields: []ast.Name{"val"}})
	s, ok := got.(ast.Struct)
	if !ok || s.Name != "Inner" {
		t.Fatalf("Ty(b.val) = %#v, want Struct Inner", got)
	}
	tp, ok := s.Parameters[0].(ast.TyParam)
	if !ok {
		t.Fatalf("Inner's parameter is not a TyParam: %#v", s.Parameters[0])
	}
	if _, ok := tp.Ty.(ast.Struct); !ok || tp.Ty.(ast.Struct).Name != "T" {
		t.Errorf("Inner's parameter = %#v, want unsubstituted reference to T", tp.Ty)
	}
}

func TestWalk_PanicsOnUndeclaredVariable(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for undeclared variable")
		}
	}()
	r := New(prog(nil, nil))
	r.Ty(ast.Place{Base: "nope"})
}

func TestWalk_PanicsOnFieldOfNonStruct(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for field access on non-struct")
		}
	}()
	p := prog([]*ast.VariableDecl{{Name: "x", Ty: ast.I32{}}}, nil)
	r := New(p)
	r.Ty(ast.Place{Base: "x", Fields: []ast.Name{"field"}})
}
