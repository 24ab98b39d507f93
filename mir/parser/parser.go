// Package parser turns the surface syntax into a mir/ast.Program:
// struct declarations, function prototypes, variable declarations, and
// labelled basic blocks of statements.
//
// It is a hand-written recursive-descent parser over a hand-written
// lexer, in the style of go/parser and go/scanner rather than a
// generated or combinator-based one: the surface grammar here is small
// enough that go/parser and go/ast's own preference for a direct
// recursive-descent implementation over a parser-generator dependency
// applies just as well.
//
// Parse errors are reported as a *SyntaxError carrying a byte offset
// and an "expected ..." message. Internally the parser uses
// panic/recover to unwind to the top on the first syntax error (the
// same technique text/template's parser uses) rather than threading an
// error return through every helper; Parse is the only place that
// recovers, and it only recovers a parsePanic, letting any other panic
// (a genuine bug) propagate.
package parser

import (
	"strconv"

	"github.com/ecstatic-morse/polonius.next/mir/ast"
)

type parser struct {
	lex *lexer
	tok token
}

// Parse parses src as a polonius.next program. path is used only to
// annotate error messages; pass "" for in-memory/string input.
func Parse(src, path string) (prog *ast.Program, err error) {
	p := &parser{lex: newLexer(src)}
	p.advance()

	defer func() {
		if r := recover(); r != nil {
			pp, ok := r.(parsePanic)
			if !ok {
				panic(r)
			}
			err = wrap(path, pp.err)
		}
	}()

	prog = p.parseProgram()
	prog.Source = src
	prog.Path = path
	return prog, nil
}

func (p *parser) advance() {
	p.tok = p.lex.next()
}

func (p *parser) at(kind tokenKind, text string) bool {
	return p.tok.kind == kind && p.tok.text == text
}

func (p *parser) atIdent(keyword string) bool {
	return p.tok.kind == tokIdent && p.tok.text == keyword
}

func (p *parser) expectIdent() string {
	if p.tok.kind != tokIdent {
		p.errorf("identifier")
	}
	s := p.tok.text
	p.advance()
	return s
}

func (p *parser) expectLifetime() ast.Name {
	if p.tok.kind != tokLifetime {
		p.errorf("origin name (e.g. 'a)")
	}
	s := p.tok.text
	p.advance()
	return ast.Name(s)
}

func (p *parser) expectPunct(text string) {
	if !p.at(tokPunct, text) {
		p.errorf("%q", text)
	}
	p.advance()
}

func (p *parser) parseProgram() *ast.Program {
	prog := &ast.Program{}

	for p.tok.kind != tokEOF {
		doc := p.lex.takeDoc()

		switch {
		case p.atIdent("struct"):
			prog.StructDecls = append(prog.StructDecls, p.parseStructDecl(doc))
		case p.atIdent("fn"):
			prog.FnPrototypes = append(prog.FnPrototypes, p.parseFnPrototype(doc))
		case p.atIdent("let"):
			prog.Variables = append(prog.Variables, p.parseLet())
		case p.tok.kind == tokIdent:
			prog.BasicBlocks = append(prog.BasicBlocks, p.parseBasicBlock())
		default:
			p.errorf("declaration ('struct', 'fn', 'let') or a basic block label")
		}
	}

	return prog
}

func (p *parser) parseGenericDecls() []ast.GenericDecl {
	if !p.at(tokPunct, "<") {
		return nil
	}
	p.advance()

	var decls []ast.GenericDecl
	for !p.at(tokPunct, ">") {
		if p.tok.kind == tokLifetime {
			decls = append(decls, ast.OriginGeneric{Name: ast.Name(p.tok.text)})
			p.advance()
		} else {
			decls = append(decls, ast.TyGeneric{Name: ast.Name(p.expectIdent())})
		}
		if p.at(tokPunct, ",") {
			p.advance()
		} else {
			break
		}
	}
	p.expectPunct(">")
	return decls
}

func (p *parser) parseParameters() []ast.Parameter {
	if !p.at(tokPunct, "<") {
		return nil
	}
	p.advance()

	var params []ast.Parameter
	for !p.at(tokPunct, ">") {
		if p.tok.kind == tokLifetime {
			params = append(params, ast.OriginParam{Name: ast.Name(p.tok.text)})
			p.advance()
		} else {
			params = append(params, ast.TyParam{Ty: p.parseTy()})
		}
		if p.at(tokPunct, ",") {
			p.advance()
		} else {
			break
		}
	}
	p.expectPunct(">")
	return params
}

func (p *parser) parseTy() ast.Ty {
	switch {
	case p.at(tokPunct, "&"):
		p.advance()
		origin := p.expectLifetime()
		mut := false
		if p.atIdent("mut") {
			mut = true
			p.advance()
		}
		inner := p.parseTy()
		if mut {
			return ast.RefMut{Origin: origin, Ty: inner}
		}
		return ast.Ref{Origin: origin, Ty: inner}

	case p.at(tokPunct, "("):
		p.advance()
		p.expectPunct(")")
		return ast.Unit{}

	case p.tok.kind == tokIdent:
		name := p.tok.text
		p.advance()
		if name == "i32" {
			return ast.I32{}
		}
		return ast.Struct{Name: ast.Name(name), Parameters: p.parseParameters()}

	default:
		p.errorf("a type")
		panic("unreachable")
	}
}

func (p *parser) parseStructDecl(doc string) *ast.StructDecl {
	p.advance() // 'struct'
	name := p.expectIdent()
	generics := p.parseGenericDecls()
	p.expectPunct("{")

	var fields []*ast.VariableDecl
	for !p.at(tokPunct, "}") {
		fname := p.expectIdent()
		p.expectPunct(":")
		fty := p.parseTy()
		fields = append(fields, &ast.VariableDecl{Name: ast.Name(fname), Ty: fty})
		if p.at(tokPunct, ",") {
			p.advance()
		} else {
			break
		}
	}
	p.expectPunct("}")

	return &ast.StructDecl{Name: ast.Name(name), GenericDecls: generics, FieldDecls: fields, Doc: doc}
}

func (p *parser) parseFnPrototype(doc string) *ast.FnPrototype {
	p.advance() // 'fn'
	name := p.expectIdent()
	generics := p.parseGenericDecls()
	p.expectPunct("(")

	var argTys []ast.Ty
	for !p.at(tokPunct, ")") {
		p.expectIdent() // argument name, not retained: only argument evaluation is modelled
		p.expectPunct(":")
		argTys = append(argTys, p.parseTy())
		if p.at(tokPunct, ",") {
			p.advance()
		} else {
			break
		}
	}
	p.expectPunct(")")
	p.expectPunct("->")
	retTy := p.parseTy()
	p.expectPunct(";")

	return &ast.FnPrototype{Name: ast.Name(name), GenericDecls: generics, ArgTys: argTys, RetTy: retTy, Doc: doc}
}

func (p *parser) parseLet() *ast.VariableDecl {
	p.advance() // 'let'
	name := p.expectIdent()
	p.expectPunct(":")
	ty := p.parseTy()
	p.expectPunct(";")
	return &ast.VariableDecl{Name: ast.Name(name), Ty: ty}
}

func (p *parser) parseBasicBlock() *ast.BasicBlock {
	name := p.expectIdent()
	p.expectPunct(":")
	p.expectPunct("{")

	var stmts []ast.Statement
	var succs []ast.Name

	for !p.at(tokPunct, "}") {
		if p.atIdent("goto") {
			p.advance()
			for p.tok.kind == tokIdent {
				succs = append(succs, ast.Name(p.expectIdent()))
				if p.at(tokPunct, ",") {
					p.advance()
				} else {
					break
				}
			}
			p.expectPunct(";")
			break
		}
		stmts = append(stmts, p.parseStatement())
	}
	p.expectPunct("}")

	return &ast.BasicBlock{Name: ast.Name(name), Statements: stmts, Successors: succs}
}

// parseStatement parses `place = expr;` or `expr;`, recording the span
// of the statement's text with its trailing ';' excluded.
func (p *parser) parseStatement() ast.Statement {
	start := p.tok.pos

	if p.tok.kind == tokNumber || p.at(tokPunct, "&") || p.atIdent("copy") || p.atIdent("move") {
		expr := p.parseExpr()
		end := p.tok.pos
		p.expectPunct(";")
		return ast.NewExprStmt(expr, ast.Span{Start: start, End: end})
	}

	if !p.at(tokPunct, "*") && p.tok.kind != tokIdent {
		p.errorf("a statement")
	}

	base := p.parsePlaceBase()

	if p.at(tokPunct, "(") {
		args := p.parseCallArgs()
		expr := ast.Expr(ast.Call{Callee: base, Arguments: args})
		end := p.tok.pos
		p.expectPunct(";")
		return ast.NewExprStmt(expr, ast.Span{Start: start, End: end})
	}

	fields := p.parseFieldPath()
	place := ast.Place{Base: base, Fields: fields}
	p.expectPunct("=")
	rhs := p.parseExpr()
	end := p.tok.pos
	p.expectPunct(";")
	return ast.NewAssign(place, rhs, ast.Span{Start: start, End: end})
}

// parsePlaceBase parses `base` or `*base`, returning the raw base name
// (with its `*` prefix retained, matching ast.Place.Base's convention).
func (p *parser) parsePlaceBase() ast.Name {
	if p.at(tokPunct, "*") {
		p.advance()
		return ast.Name("*" + p.expectIdent())
	}
	return ast.Name(p.expectIdent())
}

func (p *parser) parseFieldPath() []ast.Name {
	var fields []ast.Name
	for p.at(tokPunct, ".") {
		p.advance()
		fields = append(fields, ast.Name(p.expectIdent()))
	}
	return fields
}

func (p *parser) parsePlace() ast.Place {
	base := p.parsePlaceBase()
	return ast.Place{Base: base, Fields: p.parseFieldPath()}
}

func (p *parser) parseExpr() ast.Expr {
	switch {
	case p.tok.kind == tokNumber:
		v, err := strconv.ParseInt(p.tok.text, 10, 64)
		if err != nil {
			p.errorf("a valid integer literal")
		}
		p.advance()
		return ast.Number{Value: v}

	case p.at(tokPunct, "&"):
		p.advance()
		origin := p.expectLifetime()
		mut := false
		if p.atIdent("mut") {
			mut = true
			p.advance()
		}
		place := p.parsePlace()
		if mut {
			return ast.Access{Kind: ast.BorrowMut{Origin: origin}, Place: place}
		}
		return ast.Access{Kind: ast.Borrow{Origin: origin}, Place: place}

	case p.atIdent("copy"):
		p.advance()
		return ast.Access{Kind: ast.Copy{}, Place: p.parsePlace()}

	case p.atIdent("move"):
		p.advance()
		return ast.Access{Kind: ast.Move{}, Place: p.parsePlace()}

	case p.tok.kind == tokIdent:
		name := ast.Name(p.tok.text)
		p.advance()
		if !p.at(tokPunct, "(") {
			p.errorf("'(' to start a call (bare places are not expressions)")
		}
		return ast.Call{Callee: name, Arguments: p.parseCallArgs()}

	default:
		p.errorf("an expression (number, '&', 'copy', 'move', or a call)")
		panic("unreachable")
	}
}

func (p *parser) parseCallArgs() []ast.Expr {
	p.expectPunct("(")
	var args []ast.Expr
	if !p.at(tokPunct, ")") {
		args = append(args, p.parseExpr())
		for p.at(tokPunct, ",") {
			p.advance()
			args = append(args, p.parseExpr())
		}
	}
	p.expectPunct(")")
	return args
}
