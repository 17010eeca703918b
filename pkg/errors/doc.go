// Package errors provides the structured error type used across benchsweep.
//
// Every failure surfaced by the axis, value, benchmark and registry packages
// is a *StructuredError carrying an ErrorCode, so callers can branch on the
// kind of failure without parsing messages:
//
//	_, err := reg.Get("copy")
//	if errors.IsCode(err, errors.ErrCodeNotFound) {
//	    // handle unknown benchmark
//	}
//
// Context carries the values needed to act on the failure, for example the
// offending input and the valid range of a power-of-two axis:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeOutOfRange,
//	    "input value exceeds valid range for power-of-two mode",
//	    map[string]any{
//	        "input":       int64(64),
//	        "valid_range": "[0, 63]",
//	    },
//	)
package errors
