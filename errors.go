package farmstore

import "fmt"

// ErrIndexOutOfRange indicates a record index outside the collection bounds.
type ErrIndexOutOfRange struct {
	Index int
	Count int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("record index %d out of range (count %d)", e.Index, e.Count)
}
