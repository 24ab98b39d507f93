// Package loans builds the loan index: a map from each complete place
// borrowed anywhere in the program to the ordered list of (origin,
// location) pairs at which a borrow of that place is issued.
package loans

import "github.com/ecstatic-morse/polonius.next/mir/ast"

// Location identifies a statement within the program by block and
// statement index.
type Location struct {
	BlockIndex     int
	StatementIndex int
}

// Loan records one borrow's issuing origin and the location it was
// issued at.
type Loan struct {
	Origin   ast.Name
	Location Location
}

// Index maps each complete (field-less) borrowed place to its ordered
// list of loans, keyed by the place's base variable name (the only
// places ever indexed are field-less, so the base name alone identifies
// one). Map iteration order is never relied upon: per-place loan order
// is the insertion order recorded in the slice, which is what the fact
// emitter consumes.
type Index struct {
	byPlace map[ast.Name][]Loan
}

// Build performs a single pass over every statement in the program,
// recording a loan for every borrow or mutable borrow of a complete
// place. Borrows of places with a non-empty field path are intentionally
// ignored for indexing (and therefore for invalidation too) — a
// documented gap, see DESIGN.md open question 2.
func Build(prog *ast.Program) *Index {
	idx := &Index{byPlace: make(map[ast.Name][]Loan)}

	for blockIdx, bb := range prog.BasicBlocks {
		for stmtIdx, s := range bb.Statements {
			var expr ast.Expr
			switch s := s.(type) {
			case ast.Assign:
				expr = s.Expr
			case ast.ExprStmt:
				expr = s.Expr
			default:
				continue
			}

			access, ok := expr.(ast.Access)
			if !ok {
				continue
			}
			if len(access.Place.Fields) != 0 {
				continue
			}

			var origin ast.Name
			switch kind := access.Kind.(type) {
			case ast.Borrow:
				origin = kind.Origin
			case ast.BorrowMut:
				origin = kind.Origin
			default:
				continue
			}

			idx.byPlace[access.Place.Base] = append(idx.byPlace[access.Place.Base], Loan{
				Origin:   origin,
				Location: Location{BlockIndex: blockIdx, StatementIndex: stmtIdx},
			})
		}
	}

	return idx
}

// Loans returns the recorded loans for place, in issuance order, or nil
// if place was never borrowed as a complete place. A place with a
// non-empty field path never has recorded loans, regardless of its
// base variable's own loans, matching Build's indexing rule.
func (idx *Index) Loans(place ast.Place) []Loan {
	if len(place.Fields) != 0 {
		return nil
	}
	return idx.byPlace[place.Base]
}
