package pagination

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidConfiguration indicates a missing or non-positive per-page size
// while pagination is enabled. It can be compared with errors.Is().
const ErrInvalidConfiguration = constError("invalid configuration")
