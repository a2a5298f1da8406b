// Package domain holds the entities, the error taxonomy, and the pure list
// semantics (filtering, sorting, pagination) shared by every layer above.
//
// The error taxonomy is a closed set of four kinds, each with a stable
// dotted code and a transport status:
//
//	Unauthorized  AUTH.UNAUTHORIZED   401
//	NotFound      RESOURCE.NOT_FOUND  404
//	Validation    INPUT.VALIDATION    422
//	SystemFault   SYS.UNKNOWN         500
//
// Errors are raised where detected, propagated unchanged, and translated
// into the wire envelope exactly once at the HTTP boundary.
package domain
