// Package typemap provides a type-indexed heterogeneous store: at most
// one value per distinct Go type, keyed on the type itself rather than
// on a name. It is the mechanism unrelated middleware use to attach and
// retrieve request-scoped data without the framework core knowing
// their concrete types.
//
// Operations are package-level generic functions because Go does not
// allow generic methods:
//
//	type authUser struct{ ID string }
//
//	typemap.Set(m, authUser{ID: "u_123"})
//	user, ok := typemap.Get[authUser](m)
//	typemap.Remove[authUser](m)
//
// Two structurally identical but distinct types never collide. A Map
// is owned by a single request and is not safe for concurrent use.
package typemap
