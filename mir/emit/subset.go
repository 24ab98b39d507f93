package emit

import (
	"fmt"

	"github.com/ecstatic-morse/polonius.next/mir/ast"
	"github.com/ecstatic-morse/polonius.next/mir/cfgnode"
	"github.com/ecstatic-morse/polonius.next/mir/facts"
)

// emitSubsets relates an assignment's LHS type to its RHS expression,
// introducing subset (outlives) facts per the variance-driven relating
// rules below. Data flows RHS -> LHS.
func (e *Emitter) emitSubsets(node cfgnode.Node, lhsTy ast.Ty, rhsExpr ast.Expr, f *facts.Facts) {
	switch lhs := lhsTy.(type) {
	case ast.Ref:
		if access, ok := rhsExpr.(ast.Access); ok {
			switch kind := access.Kind.(type) {
			case ast.Borrow:
				f.AddIntroduceSubset(kind.Origin, lhs.Origin, node)
				rhsTy := e.resolver.Ty(access.Place)
				e.relateTys(node, lhs.Ty, rhsTy, Covariant, f)
				return

			case ast.Copy, ast.Move:
				rhsTy := e.resolver.Ty(access.Place)
				rhsRef, ok := rhsTy.(ast.Ref)
				if !ok {
					panic(fmt.Sprintf("emit: can't relate LHS shared ref %s and RHS %s", ast.String(lhsTy), ast.String(rhsTy)))
				}
				f.AddIntroduceSubset(rhsRef.Origin, lhs.Origin, node)
				e.relateTys(node, lhs.Ty, rhsRef.Ty, Covariant, f)
				return

			case ast.BorrowMut:
				// falls through to the sanity-check arm below
			}
		}

	case ast.RefMut:
		if access, ok := rhsExpr.(ast.Access); ok {
			switch kind := access.Kind.(type) {
			case ast.BorrowMut:
				f.AddIntroduceSubset(kind.Origin, lhs.Origin, node)
				rhsTy := e.resolver.Ty(access.Place)
				e.relateTys(node, lhs.Ty, rhsTy, Invariant, f)
				return

			case ast.Copy, ast.Move:
				rhsTy := e.resolver.Ty(access.Place)
				rhsRefMut, ok := rhsTy.(ast.RefMut)
				if !ok {
					panic(fmt.Sprintf("emit: can't relate LHS unique ref %s and RHS %s", ast.String(lhsTy), ast.String(rhsTy)))
				}
				f.AddIntroduceSubset(rhsRefMut.Origin, lhs.Origin, node)
				e.relateTys(node, lhs.Ty, rhsRefMut.Ty, Invariant, f)
				return

			case ast.Borrow:
				// falls through to the sanity-check arm below
			}
		}

	case ast.Struct:
		if access, ok := rhsExpr.(ast.Access); ok {
			switch access.Kind.(type) {
			case ast.Copy, ast.Move:
				rhsTy := e.resolver.Ty(access.Place)
				e.relateTys(node, lhsTy, rhsTy, Covariant, f)
				return
			}
		}
	}

	if _, ok := rhsExpr.(ast.Call); ok {
		// TODO: when function signatures are resolved, relate call
		// argument origins to the LHS per the signature's variance.
		return
	}

	e.assertNoOriginsPresent(lhsTy, rhsExpr)
}

// relateTys recursively relates the generic parameters of two
// structurally-assumed-identical struct types according to variance.
func (e *Emitter) relateTys(node cfgnode.Node, lhsTy, rhsTy ast.Ty, variance Variance, f *facts.Facts) {
	lhsStruct, ok := lhsTy.(ast.Struct)
	if !ok {
		return
	}
	rhsStruct, ok := rhsTy.(ast.Struct)
	if !ok {
		return
	}

	n := len(lhsStruct.Parameters)
	if len(rhsStruct.Parameters) < n {
		n = len(rhsStruct.Parameters)
	}

	for i := 0; i < n; i++ {
		lhsParam, rhsParam := lhsStruct.Parameters[i], rhsStruct.Parameters[i]

		lhsTyParam, lok := lhsParam.(ast.TyParam)
		rhsTyParam, rok := rhsParam.(ast.TyParam)
		if !lok || !rok {
			panic(fmt.Sprintf("emit: unsupported parameter pair at index %d relating %s and %s (origin-parameter relating is not yet supported)", i, ast.String(lhsTy), ast.String(rhsTy)))
		}

		switch lhsInner := lhsTyParam.Ty.(type) {
		case ast.Ref:
			rhsInner, ok := rhsTyParam.Ty.(ast.Ref)
			if !ok {
				e.relateTys(node, lhsTyParam.Ty, rhsTyParam.Ty, variance, f)
				continue
			}
			e.relateRefPair(node, lhsInner.Origin, rhsInner.Origin, lhsInner.Ty, rhsInner.Ty, variance, false, f)

		case ast.RefMut:
			rhsInner, ok := rhsTyParam.Ty.(ast.RefMut)
			if !ok {
				e.relateTys(node, lhsTyParam.Ty, rhsTyParam.Ty, variance, f)
				continue
			}
			e.relateRefPair(node, lhsInner.Origin, rhsInner.Origin, lhsInner.Ty, rhsInner.Ty, variance, true, f)

		default:
			e.relateTys(node, lhsTyParam.Ty, rhsTyParam.Ty, variance, f)
		}
	}
}

// relateRefPair emits the subset fact(s) between a matching Ref/Ref or
// RefMut/RefMut parameter pair per variance, then recurses into their
// element types. Unique references force invariance on the recursion,
// regardless of the variance they were related under.
func (e *Emitter) relateRefPair(node cfgnode.Node, targetOrigin, sourceOrigin ast.Name, targetTy, sourceTy ast.Ty, variance Variance, unique bool, f *facts.Facts) {
	if variance == Covariant || variance == Invariant {
		f.AddIntroduceSubset(sourceOrigin, targetOrigin, node)
	}
	if variance == Contravariant || variance == Invariant {
		f.AddIntroduceSubset(targetOrigin, sourceOrigin, node)
	}

	if unique {
		variance = Invariant
	}
	e.relateTys(node, targetTy, sourceTy, variance, f)
}

// assertNoOriginsPresent is the final sanity check: it panics loudly
// if either the LHS type or the RHS expression carries an origin that
// should have demanded a subset fact, rather than silently dropping
// it. Any new origin-bearing assignment shape must be added to
// emitSubsets rather than relying on this check to pass.
func (e *Emitter) assertNoOriginsPresent(lhsTy ast.Ty, rhsExpr ast.Expr) {
	if ast.HasOrigins(lhsTy) {
		panic(fmt.Sprintf("emit: LHS %s has unprocessed origins, RHS: %#v", ast.String(lhsTy), rhsExpr))
	}

	if access, ok := rhsExpr.(ast.Access); ok {
		switch kind := access.Kind.(type) {
		case ast.Borrow, ast.BorrowMut:
			panic(fmt.Sprintf("emit: RHS %#v has unprocessed origins, LHS: %s", kind, ast.String(lhsTy)))

		case ast.Copy, ast.Move:
			rhsTy := e.resolver.Ty(access.Place)
			if ast.HasOrigins(rhsTy) {
				panic(fmt.Sprintf("emit: RHS %s has unprocessed origins, LHS: %s", ast.String(rhsTy), ast.String(lhsTy)))
			}
		}
	}
}
