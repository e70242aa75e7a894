package prefixid

import "errors"

var (
	// Registry construction errors
	ErrEmptyDefinitions = errors.New("no identifier type definitions provided")
	ErrInvalidPrefix    = errors.New("invalid prefix")
	ErrInvalidLength    = errors.New("invalid length")
	ErrDuplicatePrefix  = errors.New("duplicate prefix")
	ErrDuplicateType    = errors.New("duplicate type")

	// ErrUnknownType indicates a type that was not part of the registry's definitions.
	ErrUnknownType = errors.New("unknown identifier type")

	// Generator misbehavior, detected by Create on every invocation
	ErrGeneratorFailed            = errors.New("generator failed")
	ErrGeneratorWrongLength       = errors.New("generator returned wrong length")
	ErrGeneratorInvalidCharacters = errors.New("generator returned invalid characters")
)
