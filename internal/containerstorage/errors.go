package containerstorage

import "errors"

// Kind classifies an argument validation failure.
type Kind int

// Argument error kinds.
const (
	// KindMutuallyExclusive means flags were combined that are only valid in isolation.
	KindMutuallyExclusive Kind = iota + 1
	// KindInvalidValue means a value failed a format or existence check.
	KindInvalidValue
	// KindArgumentUsage means a well-formed value conflicts with another supplied value.
	KindArgumentUsage
)

func (k Kind) String() string {
	switch k {
	case KindMutuallyExclusive:
		return "MutuallyExclusiveArgumentError"
	case KindInvalidValue:
		return "InvalidArgumentValueError"
	case KindArgumentUsage:
		return "ArgumentUsageError"
	default:
		return "UnknownError"
	}
}

// Sentinel errors for matching with errors.Is.
var (
	ErrMutuallyExclusive = &ArgumentError{Kind: KindMutuallyExclusive}
	ErrInvalidValue      = &ArgumentError{Kind: KindInvalidValue}
	ErrArgumentUsage     = &ArgumentError{Kind: KindArgumentUsage}
)

// ArgumentError is returned for every rejected argument combination.
// Message is meant to be printed to the user unchanged.
type ArgumentError struct {
	Kind    Kind
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

// Is reports whether target is an ArgumentError of the same kind.
func (e *ArgumentError) Is(target error) bool {
	var t *ArgumentError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func mutuallyExclusive(msg string) error {
	return &ArgumentError{Kind: KindMutuallyExclusive, Message: msg}
}

func invalidValue(msg string) error {
	return &ArgumentError{Kind: KindInvalidValue, Message: msg}
}

func argumentUsage(msg string) error {
	return &ArgumentError{Kind: KindArgumentUsage, Message: msg}
}

// KindOf returns the kind of the first ArgumentError in err's chain,
// or zero if there is none.
func KindOf(err error) Kind {
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		return argErr.Kind
	}
	return 0
}

// IsArgumentError checks if err carries any argument validation failure.
func IsArgumentError(err error) bool {
	return KindOf(err) != 0
}

// IsMutuallyExclusive checks if err is a conflicting-flags failure.
func IsMutuallyExclusive(err error) bool {
	return KindOf(err) == KindMutuallyExclusive
}

// IsInvalidValue checks if err is a bad-value failure.
func IsInvalidValue(err error) bool {
	return KindOf(err) == KindInvalidValue
}

// IsArgumentUsage checks if err is an incompatible-usage failure.
func IsArgumentUsage(err error) bool {
	return KindOf(err) == KindArgumentUsage
}
