package advanced

import (
	"fmt"

	"github.com/pkg/errors"
)

// Bad geometry is never an error here; it is reported through Status. The one
// thing we refuse to absorb is a caller handing us vertex IDs that don't exist.
// That is a bookkeeping bug on their side, so the vertex ID form panics with an
// *IndexOutOfRangeError, and the public API recovers it into a plain error.

// IndexOutOfRangeError reports a vertex ID outside the vertex buffer.
type IndexOutOfRangeError struct {
	// Corner is the position of the bad ID in the polygon.
	Corner int
	// Index is the bad ID itself.
	Index int
	// Len is the length of the vertex buffer.
	Len int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("corner %d: vertex index %d out of range [0, %d)", e.Corner, e.Index, e.Len)
}

// IsIndexOutOfRange reports whether err is, or wraps, an *IndexOutOfRangeError.
func IsIndexOutOfRange(err error) bool {
	var target *IndexOutOfRangeError
	return errors.As(err, &target)
}

func throwIndexOutOfRange(corner, index, length int) {
	panic(errors.WithStack(&IndexOutOfRangeError{Corner: corner, Index: index, Len: length}))
}

// HandleTriangulatePanicRecover turns a recovered contract violation back into
// an error. Call it with the result of recover() in a deferred function. Any
// other panic is re-raised.
func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if err, ok := r.(error); ok && IsIndexOutOfRange(err) {
			return err
		}
		panic(r)
	}
	return nil
}
