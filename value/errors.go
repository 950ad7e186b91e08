package value

import "errors"

// Sentinel errors returned by every package in this module. There are
// exactly two failure kinds:
//
//   - ErrInvalidArgument: a precondition on the inputs failed (nil output,
//     out-of-range id, non-positive capacity, buffer too small, ...).
//   - ErrOperationFailed: the call is well-formed but state prevents it
//     (full/empty container, pool exhausted, missing edge, cycle found).
//
// Use errors.Is to branch on either sentinel; call sites are free to wrap
// them with additional context via fmt.Errorf("%w: ...").
var (
	ErrInvalidArgument = errors.New("value: invalid argument")
	ErrOperationFailed = errors.New("value: operation failed")
)
