package digitbin

import "errors"

// Sentinel errors returned by the public surface. Callers should compare
// with errors.Is, since every call site wraps these with extra context via
// fmt.Errorf("...: %w", ...).
var (
	// ErrInvalidPrecision is returned by New when P is outside [1,18].
	ErrInvalidPrecision = errors.New("digitbin: precision out of range [1,18]")

	// ErrInvalidWeight is returned by Add when the weight is not a finite
	// value in [0,1].
	ErrInvalidWeight = errors.New("digitbin: weight must be finite and in [0,1]")

	// ErrDuplicateID is returned by Add when the id is already present.
	ErrDuplicateID = errors.New("digitbin: id already present")

	// ErrNotFound is returned by Remove when the id is not present.
	ErrNotFound = errors.New("digitbin: id not found")
)

// errOutOfRange signals a broken internal invariant (a rank or digit
// computed outside its valid domain). It never escapes the package;
// callers see a panic instead.
type errOutOfRange struct {
	op  string
	got int
}

func (e *errOutOfRange) Error() string {
	return "digitbin: out of range in " + e.op
}

func panicOutOfRange(op string, got int) {
	panic(&errOutOfRange{op: op, got: got})
}
