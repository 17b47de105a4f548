package pipeline

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound is returned when the source image does not exist.
// Nothing is read or written in that case.
var ErrSourceNotFound = errors.New("source not found")

// Kind classifies processing failures.
type Kind int

const (
	KindRead Kind = iota + 1
	KindDecode
	KindEncode
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindRead:
		return "read"
	case KindDecode:
		return "decode"
	case KindEncode:
		return "encode"
	case KindWrite:
		return "write"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a processing failure. Path names the file the failed step was
// working on: the source for read and decode, the destination otherwise.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
