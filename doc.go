// Package prefixid generates, validates, and parses prefixed human-readable
// identifiers such as "user_a1b2c3d4". Prefixed identifiers make entity types
// visible at a glance in logs, URLs, and support tickets, replacing opaque
// UUIDs or integers in user-facing contexts.
//
// The core is the Registry: an immutable mapping between entity types and
// their textual prefixes and unique-part lengths, validated once at
// construction. A registry is generic over any comparable key type, so entity
// types can be plain strings, custom string types, or unforgeable opaque
// tokens. Once built, a registry is a read-only value safe for concurrent use
// without locking.
//
// Identifiers have the fixed wire format:
//
//	<prefix>_<unique-part>
//
// where the prefix is declared per type and the unique part is an ASCII
// alphanumeric string of a fixed per-type length, produced by a pluggable
// Generator. Matching is case-sensitive throughout; "User_x" and "user_x"
// carry different prefixes.
//
// # Usage
//
// Import the package:
//
//	import "github.com/dmitrymomot/prefixid"
//
// Declare the identifier types once, typically at startup:
//
//	ids, err := prefixid.Build([]prefixid.Def[string]{
//		{Type: "user", Prefix: "user"},                 // default length
//		{Type: "post", Prefix: "post", Length: 12},
//		{Type: "team", Prefix: "tm"},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	id, err := ids.Create("user")   // "user_x7Gq2RbK"
//	ids.IsValid(id)                 // true
//	typ, ok := ids.TypeOf(id)       // "user", true
//
// Discovery operations never fail: TypeOf and IsValid answer "is this one of
// ours" for arbitrary input without forcing callers to handle errors, while
// Create and Prefix return typed errors for unknown types. FindAll scans free
// text for every embedded identifier:
//
//	ids.FindAll("user_x7Gq2RbK commented on post_a1B2c3D4e5F6")
//
// # Generators
//
// The unique part comes from a Generator, the package's sole external
// collaborator. The default draws from crypto/rand; NewNanoIDGenerator and
// NewUUIDGenerator adapt popular ID libraries to the same contract. Generator
// output is untrusted and re-validated on every Create call, so a misbehaving
// generator surfaces as a typed error rather than a malformed identifier.
//
// Construction and operation failures are reported through sentinel errors
// (ErrDuplicatePrefix, ErrUnknownType, ...) that callers match with errors.Is.
package prefixid
