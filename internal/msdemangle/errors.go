package msdemangle

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per parse failure kind (spec.md §7).
var (
	ErrBadNumber          = errors.New("msdemangle: bad number")
	ErrUnterminatedString = errors.New("msdemangle: unterminated string")
	ErrBadBackRef         = errors.New("msdemangle: back-reference index out of range")
	ErrUnknownFuncClass   = errors.New("msdemangle: unknown function class")
	ErrUnknownCallingConv = errors.New("msdemangle: unknown calling convention")
	ErrUnknownPrimitive   = errors.New("msdemangle: unknown primitive type")
	ErrInvalidArrayDim    = errors.New("msdemangle: invalid array dimension")
	ErrUnknownStorageCls  = errors.New("msdemangle: unknown storage class")
)

// ParseError carries the position at which the first parse error was
// recorded, alongside the remaining unparsed input for diagnosis.
type ParseError struct {
	Offset int    // byte offset into the original input
	Remain string // input remaining at the point of failure
	Err    error  // one of the sentinels above
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("msdemangle: at offset %d: %v: %q", e.Offset, e.Err, e.Remain)
}

func (e *ParseError) Unwrap() error { return e.Err }
