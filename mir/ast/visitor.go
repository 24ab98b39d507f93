package ast

// VisitOrigins walks t in pre-order, calling visit for every origin
// reachable through Ref/RefMut origins and Struct origin parameters.
// visit returns true to keep visiting, false to stop early; VisitOrigins
// returns true iff visit ever returned false (i.e. the walk was stopped).
//
// NOTE: for a Struct type, the walk over its parameter list returns as
// soon as it reaches the first type parameter (Parameter.(TyParam)),
// recursing into that one nested type and then stopping — later
// parameters in the list are never visited, even though it continues
// past earlier origin parameters. This under-reports origins for
// structs with parameter shapes like <T, 'a> (type before origin). It
// is a faithful port of the existing prototype's traversal and is
// preserved rather than silently corrected; see open question 1 in
// DESIGN.md.
func VisitOrigins(t Ty, visit func(Name) bool) (stopped bool) {
	switch t := t.(type) {
	case Ref:
		if !visit(t.Origin) {
			return true
		}
		return VisitOrigins(t.Ty, visit)

	case RefMut:
		if !visit(t.Origin) {
			return true
		}
		return VisitOrigins(t.Ty, visit)

	case Struct:
		for _, p := range t.Parameters {
			switch p := p.(type) {
			case OriginParam:
				if !visit(p.Name) {
					return true
				}
			case TyParam:
				return VisitOrigins(p.Ty, visit)
			}
		}
		return false

	default: // I32, Unit
		return false
	}
}

// HasOrigins reports whether t contains any origin, recursively.
func HasOrigins(t Ty) bool {
	return VisitOrigins(t, func(Name) bool { return false })
}

// CollectOrigins returns every origin reachable from t, in the tree
// pre-order defined by VisitOrigins (including that function's
// early-termination quirk for structs).
func CollectOrigins(t Ty) []Name {
	var origins []Name
	VisitOrigins(t, func(n Name) bool {
		origins = append(origins, n)
		return true
	})
	return origins
}
