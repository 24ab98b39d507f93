package ast

import "strings"

// Span is a byte-offset range into the program's source text, used only
// for diagnostics and for node_text extraction.
type Span struct {
	Start, End int
}

// Place is a syntactic l-value: a base variable, optionally dereferenced,
// followed by a (possibly empty) field path. An empty Fields list denotes
// a "complete place".
type Place struct {
	Base   Name
	Fields []Name
}

// DerefBase reports whether the place's base is a dereference (`*x`),
// returning the dereferenced variable's name.
func (p Place) DerefBase() (Name, bool) {
	if strings.HasPrefix(string(p.Base), "*") {
		return Name(string(p.Base)[1:]), true
	}
	return "", false
}

// VarName returns the name of the variable this place's base refers to,
// stripping any leading deref marker.
func (p Place) VarName() Name {
	if base, ok := p.DerefBase(); ok {
		return base
	}
	return p.Base
}

// AccessKind is the mode of a place access: a shared borrow, a unique
// borrow, a copy, or a move.
type AccessKind interface {
	accessKindNode()
}

// Borrow is `&'Origin place`.
type Borrow struct{ Origin Name }

// BorrowMut is `&'Origin mut place`.
type BorrowMut struct{ Origin Name }

// Copy is `copy place`.
type Copy struct{}

// Move is `move place`.
type Move struct{}

func (Borrow) accessKindNode()    {}
func (BorrowMut) accessKindNode() {}
func (Copy) accessKindNode()      {}
func (Move) accessKindNode()      {}

// Expr is an expression: a number literal, a place access, or a call.
type Expr interface {
	exprNode()
}

// Number is an integer literal.
type Number struct {
	Value int64
}

// Access is a place access under a given AccessKind.
type Access struct {
	Kind  AccessKind
	Place Place
}

// Call is a function call; only its argument expressions are modelled,
// since function signatures are never resolved.
type Call struct {
	Callee    Name
	Arguments []Expr
}

func (Number) exprNode() {}
func (Access) exprNode() {}
func (Call) exprNode()   {}

// Statement is a single statement within a basic block: an assignment or
// a bare expression. Every statement carries the source span of its
// original text, trailing separator excluded, for node_text emission.
type Statement interface {
	stmtNode()
	Span() Span
}

// Assign is `place = expr;`.
type Assign struct {
	Place Place
	Expr  Expr
	span  Span
}

// ExprStmt is a bare `expr;`.
type ExprStmt struct {
	Expr Expr
	span Span
}

func (s Assign) stmtNode()    {}
func (s Assign) Span() Span   { return s.span }
func (s ExprStmt) stmtNode()  {}
func (s ExprStmt) Span() Span { return s.span }

// NewAssign constructs an Assign statement with its source span.
func NewAssign(place Place, expr Expr, span Span) Assign {
	return Assign{Place: place, Expr: expr, span: span}
}

// NewExprStmt constructs an ExprStmt statement with its source span.
func NewExprStmt(expr Expr, span Span) ExprStmt {
	return ExprStmt{Expr: expr, span: span}
}

// BasicBlock is a labelled sequence of statements terminated by a goto
// naming zero or more successor blocks (zero for a terminal block).
type BasicBlock struct {
	Name       Name
	Statements []Statement
	Successors []Name
}

// GenericDecl is one entry in a struct's or function's generic parameter
// list: either a lifetime-like origin name or a type name.
type GenericDecl interface {
	genericDeclNode()
}

// OriginGeneric declares an origin-kinded generic parameter, e.g. 'me.
type OriginGeneric struct{ Name Name }

// TyGeneric declares a type-kinded generic parameter, e.g. T.
type TyGeneric struct{ Name Name }

func (OriginGeneric) genericDeclNode() {}
func (TyGeneric) genericDeclNode()     {}

// VariableDecl declares a local (`let name: Ty;`) or a struct field.
type VariableDecl struct {
	Name Name
	Ty   Ty
}

// StructDecl declares a struct with its generic parameter list and
// fields. Doc is the struct's attached `///` doc comment, if any, with
// the comment markers stripped; empty when absent.
type StructDecl struct {
	Name         Name
	GenericDecls []GenericDecl
	FieldDecls   []*VariableDecl
	Doc          string
}

// FnPrototype declares a function signature (`fn Name<...>(args) -> Ret;`).
// Only argument evaluation is modelled elsewhere; the signature itself
// is otherwise inert. Doc is the function's attached `///` doc
// comment, if any.
type FnPrototype struct {
	Name         Name
	GenericDecls []GenericDecl
	ArgTys       []Ty
	RetTy        Ty
	Doc          string
}

// Program is the full parsed input: struct declarations, function
// prototypes, variable declarations, and basic blocks. Variable, struct,
// and block names are assumed unique within their namespace; mir/parser
// does not check this, and the Find* lookups return the first match.
type Program struct {
	StructDecls  []*StructDecl
	FnPrototypes []*FnPrototype
	Variables    []*VariableDecl
	BasicBlocks  []*BasicBlock

	// Source is the original source text the program was parsed from,
	// used to slice node_text spans. Path is the originating file path,
	// or "" for in-memory/string input.
	Source string
	Path   string
}

// FindVariable returns the variable declaration named name, or nil.
func (p *Program) FindVariable(name Name) *VariableDecl {
	for _, v := range p.Variables {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// FindStruct returns the struct declaration named name, or nil.
func (p *Program) FindStruct(name Name) *StructDecl {
	for _, s := range p.StructDecls {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// FindField returns the field declaration named name inside s, or nil.
func (s *StructDecl) FindField(name Name) *VariableDecl {
	for _, f := range s.FieldDecls {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// GenericIndex returns the position of the type-kinded generic parameter
// named name within s's generic declaration list, or -1 if absent (or if
// present but origin-kinded).
func (s *StructDecl) GenericIndex(name Name) int {
	for i, g := range s.GenericDecls {
		if tg, ok := g.(TyGeneric); ok && tg.Name == name {
			return i
		}
	}
	return -1
}

// Text returns the source slice covered by span, i.e. the statement's
// original text with its trailing separator character removed.
func (p *Program) Text(span Span) string {
	return p.Source[span.Start:span.End]
}
