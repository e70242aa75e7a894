package prefixid

import "strings"

// Separator divides the prefix from the unique part. It is strictly reserved:
// Build rejects prefixes containing it, and it falls outside the alphanumeric
// charset required of generator output, so a validated registry can never
// produce an identifier with a stray separator.
const Separator = "_"

// ID is a prefixed identifier of the form <prefix>_<unique-part>. It is a
// plain string value with no identity beyond its content: any string of the
// right shape is a usable input to any registry's operations, regardless of
// which registry produced it.
type ID string

// String returns the identifier as a plain string.
func (id ID) String() string { return string(id) }

// Prefix returns the part before the first separator, or "" when the
// identifier contains no separator. It does not consult any registry; use
// Registry.TypeOf to resolve the prefix to a type.
func (id ID) Prefix() string {
	before, _, ok := strings.Cut(string(id), Separator)
	if !ok {
		return ""
	}
	return before
}

// UniquePart returns the part after the first separator, or "" when the
// identifier contains no separator.
func (id ID) UniquePart() string {
	_, after, ok := strings.Cut(string(id), Separator)
	if !ok {
		return ""
	}
	return after
}

// isAlphanumeric reports whether s consists solely of ASCII alphanumeric
// bytes. Multi-byte runes fail byte-wise, which is the intended outcome:
// identifiers are ASCII by contract.
func isAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			continue
		}
		return false
	}
	return true
}
