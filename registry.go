package prefixid

import (
	"fmt"
	"regexp"
	"strings"
)

// Def declares one identifier type: the registry key, its textual prefix, and
// the length of the generated unique part. A zero Length means "use the
// registry's default length". Definitions are supplied as a slice so that
// validation errors and FindAll pattern arms follow declaration order.
type Def[K comparable] struct {
	Type   K
	Prefix string
	Length int
}

// Registry maps identifier types to prefixes and unique-part lengths. It is
// immutable after Build and safe for concurrent use without locking; the only
// effectful operation is the generator invocation inside Create, which
// touches no registry state.
type Registry[K comparable] struct {
	prefixes  map[K]string
	lengths   map[K]int
	types     map[string]K
	keys      []K
	pattern   *regexp.Regexp
	generator Generator
}

// Build constructs a Registry from defs, validating every definition in the
// order given: the prefix must be non-empty and free of the separator, the
// resolved length must be positive, and no prefix or type may repeat. The
// first violation aborts construction with the corresponding sentinel error
// wrapped with the offending definition's details.
func Build[K comparable](defs []Def[K], opts ...Option) (*Registry[K], error) {
	if len(defs) == 0 {
		return nil, ErrEmptyDefinitions
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.defaultLength < 1 {
		return nil, fmt.Errorf("%w: default length %d is not positive", ErrInvalidLength, cfg.defaultLength)
	}

	r := &Registry[K]{
		prefixes:  make(map[K]string, len(defs)),
		lengths:   make(map[K]int, len(defs)),
		types:     make(map[string]K, len(defs)),
		keys:      make([]K, 0, len(defs)),
		generator: cfg.generator,
	}

	for _, def := range defs {
		length := def.Length
		if length == 0 {
			length = cfg.defaultLength
		}

		if def.Prefix == "" {
			return nil, fmt.Errorf("%w: type %v has an empty prefix", ErrInvalidPrefix, def.Type)
		}
		if strings.Contains(def.Prefix, Separator) {
			return nil, fmt.Errorf("%w: prefix %q contains the reserved separator %q", ErrInvalidPrefix, def.Prefix, Separator)
		}
		if length < 1 {
			return nil, fmt.Errorf("%w: type %v declares length %d, must be positive", ErrInvalidLength, def.Type, length)
		}
		if _, exists := r.prefixes[def.Type]; exists {
			return nil, fmt.Errorf("%w: type %v is defined twice", ErrDuplicateType, def.Type)
		}
		if prev, exists := r.types[def.Prefix]; exists {
			return nil, fmt.Errorf("%w: prefix %q is claimed by both %v and %v", ErrDuplicatePrefix, def.Prefix, prev, def.Type)
		}

		r.prefixes[def.Type] = def.Prefix
		r.lengths[def.Type] = length
		r.types[def.Prefix] = def.Type
		r.keys = append(r.keys, def.Type)
	}

	r.pattern = compilePattern(r)
	return r, nil
}

// MustBuild is like Build but panics on error. Intended for package-level
// registries built from static definitions.
func MustBuild[K comparable](defs []Def[K], opts ...Option) *Registry[K] {
	r, err := Build(defs, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// compilePattern builds the extraction regexp with one alternation arm per
// (prefix, length) pair, in declaration order. Because prefixes are distinct
// and separator-free, at most one arm can match at any position, so the exact
// per-pair arms make FindAll precise: no length-range approximation and no
// post-filtering of matches.
func compilePattern[K comparable](r *Registry[K]) *regexp.Regexp {
	arms := make([]string, 0, len(r.keys))
	for _, typ := range r.keys {
		arms = append(arms, fmt.Sprintf(`%s%s[A-Za-z0-9]{%d}`,
			regexp.QuoteMeta(r.prefixes[typ]), Separator, r.lengths[typ]))
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(arms, "|") + `)\b`)
}

// Create generates a new identifier for typ using the registry's generator.
// The generator output is untrusted and validated on every call: Create fails
// rather than returning an identifier that IsValid would reject.
func (r *Registry[K]) Create(typ K) (ID, error) {
	prefix, ok := r.prefixes[typ]
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrUnknownType, typ)
	}
	length := r.lengths[typ]

	unique, err := r.generator(length)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneratorFailed, err)
	}
	if len(unique) != length {
		return "", fmt.Errorf("%w: got %d characters, want %d", ErrGeneratorWrongLength, len(unique), length)
	}
	if !isAlphanumeric(unique) {
		return "", fmt.Errorf("%w: %q", ErrGeneratorInvalidCharacters, unique)
	}

	return ID(prefix + Separator + unique), nil
}

// TypeOf reports which registered type an identifier belongs to, looking at
// the prefix alone. It is the lenient counterpart of IsValid: the unique part
// is not checked, so TypeOf can claim an identifier whose remainder is
// malformed. The zero K and false are returned for empty input, input without
// a separator, or an unrecognized prefix.
func (r *Registry[K]) TypeOf(id ID) (K, bool) {
	var zero K
	prefix, _, ok := strings.Cut(string(id), Separator)
	if !ok {
		return zero, false
	}
	typ, ok := r.types[prefix]
	if !ok {
		return zero, false
	}
	return typ, true
}

// Prefix returns the prefix declared for typ, or ErrUnknownType if typ was
// not part of the registry's definitions.
func (r *Registry[K]) Prefix(typ K) (string, error) {
	prefix, ok := r.prefixes[typ]
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrUnknownType, typ)
	}
	return prefix, nil
}

// Length returns the unique-part length resolved for typ, or ErrUnknownType
// if typ was not part of the registry's definitions.
func (r *Registry[K]) Length(typ K) (int, error) {
	length, ok := r.lengths[typ]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownType, typ)
	}
	return length, nil
}

// Types returns the registered type keys in declaration order. The slice is a
// copy; mutating it does not affect the registry.
func (r *Registry[K]) Types() []K {
	keys := make([]K, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// IsValid reports whether id is a well-formed identifier for one of the
// registered types: a known prefix followed by a unique part of exactly the
// declared length consisting solely of ASCII alphanumeric characters. The
// split happens at the first separator, so a stray separator later in the
// string lands in the unique part and fails the character check.
func (r *Registry[K]) IsValid(id ID) bool {
	prefix, unique, ok := strings.Cut(string(id), Separator)
	if !ok {
		return false
	}
	typ, ok := r.types[prefix]
	if !ok {
		return false
	}
	return len(unique) == r.lengths[typ] && isAlphanumeric(unique)
}

// IsType returns a reusable predicate reporting whether an identifier belongs
// to typ, equivalent to checking TypeOf(id) == typ. The predicate is lenient
// like TypeOf; combine with IsValid when the unique part matters.
func (r *Registry[K]) IsType(typ K) func(ID) bool {
	return func(id ID) bool {
		got, ok := r.TypeOf(id)
		return ok && got == typ
	}
}

// FindAll extracts every identifier embedded in text, left to right. Matches
// are word-bounded and exact per (prefix, length) pair; repeated occurrences
// are returned each time they appear. Returns nil when text contains no
// identifiers.
func (r *Registry[K]) FindAll(text string) []ID {
	matches := r.pattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	ids := make([]ID, len(matches))
	for i, m := range matches {
		ids[i] = ID(m)
	}
	return ids
}
