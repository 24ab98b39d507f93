// Package resolve implements the place resolver: given a place, it walks
// the program to determine the type of the value it denotes, following
// the field path through struct declarations and substituting generic
// type parameters with the concrete arguments supplied at each step.
//
// This is the Go analogue of go/types' field-selection resolution
// (types.LookupFieldOrMethod), specialised to this project's much
// smaller type grammar and panicking instead of returning an error,
// since malformed input is a programmer error here: the resolver is
// assumed to run only on well-typed programs.
package resolve

import (
	"fmt"

	"github.com/ecstatic-morse/polonius.next/mir/ast"
)

// Resolver resolves places against a fixed Program.
type Resolver struct {
	Program *ast.Program
}

// New returns a Resolver over prog.
func New(prog *ast.Program) *Resolver {
	return &Resolver{Program: prog}
}

// Ty returns the type of place, without origin collection.
func (r *Resolver) Ty(place ast.Place) ast.Ty {
	return r.Walk(place, func(ast.Ty) {})
}

// Origins returns, in tree pre-order, every origin in the type of place
// (see ast.CollectOrigins for the traversal's documented quirk).
func (r *Resolver) Origins(place ast.Place) []ast.Name {
	return ast.CollectOrigins(r.Ty(place))
}

// Walk resolves the type of place, invoking visit on every type
// encountered along the walk: the base variable's declared type, then
// the declared (possibly substituted) type at each field step, ending
// with the type denoted by the full place. Ty and Origins pass a no-op
// visit; Origins collects origins from the returned final type only,
// not from the intermediate types.
//
// Walk panics if place's base is not a declared variable, if a
// non-empty field path is used on a non-struct type, if a referenced
// struct or field is undeclared, or if a generic type substitution is
// missing or malformed — all structural invariant violations.
func (r *Resolver) Walk(place ast.Place, visit func(ast.Ty)) ast.Ty {
	base := place.VarName()

	v := r.Program.FindVariable(base)
	if v == nil {
		panic(fmt.Sprintf("resolve: no variable declaration for %q", place.Base))
	}

	if len(place.Fields) == 0 {
		visit(v.Ty)
		return v.Ty
	}

	structTy, ok := v.Ty.(ast.Struct)
	if !ok {
		panic(fmt.Sprintf("resolve: place %v has fields but base %q has non-struct type %s", place.Fields, base, ast.String(v.Ty)))
	}
	ty := ast.Ty(structTy)

	for _, fieldName := range place.Fields {
		visit(ty)

		decl, ok := ty.(ast.Struct)
		if !ok {
			panic(fmt.Sprintf("resolve: type %s must be a struct to access field %q", ast.String(ty), fieldName))
		}

		structDecl := r.Program.FindStruct(decl.Name)
		if structDecl == nil {
			panic(fmt.Sprintf("resolve: can't find struct %q at field %q", decl.Name, fieldName))
		}

		field := structDecl.FindField(fieldName)
		if field == nil {
			panic(fmt.Sprintf("resolve: can't find field %q in struct %q", fieldName, decl.Name))
		}

		ty = r.substituteField(structDecl, decl.Parameters, field.Ty)
	}

	visit(ty)
	return ty
}

// substituteField resolves a field's declared type against the concrete
// parameters supplied at the enclosing struct reference. If the field's
// declared type directly names one of the struct's own type-kinded
// generic parameters, it is substituted with the matching concrete
// argument; any other shape (including a generic struct field whose own
// parameters are themselves generic) is used as declared, unsubstituted.
// Nested substitution is intentionally not performed transitively: see
// DESIGN.md's open-question entry for mir/resolve.
func (r *Resolver) substituteField(decl *ast.StructDecl, actualParams []ast.Parameter, fieldTy ast.Ty) ast.Ty {
	fieldStruct, ok := fieldTy.(ast.Struct)
	if !ok {
		return fieldTy
	}

	idx := decl.GenericIndex(fieldStruct.Name)
	if idx < 0 {
		return fieldTy
	}

	if idx >= len(actualParams) {
		panic(fmt.Sprintf("resolve: struct %q has %d generic parameters but was referenced with %d", decl.Name, len(decl.GenericDecls), len(actualParams)))
	}

	subst, ok := actualParams[idx].(ast.TyParam)
	if !ok {
		panic(fmt.Sprintf("resolve: parameter at index %d of struct %q reference must be a type parameter", idx, decl.Name))
	}
	return subst.Ty
}
