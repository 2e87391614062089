package util

import (
	"errors"
	"fmt"
)

// ErrInvalidPoolSize is returned when a buffer manager is constructed
// with a non-positive frame count.
var ErrInvalidPoolSize = errors.New("pool size must be positive")

const (
	// PoolExhausted: victim selection scanned the bounded limit without
	// finding an evictable frame; every frame is pinned.
	PoolExhausted ErrorKind = iota

	// NotPinned: unpin requested on a resident page whose pin count is
	// already zero.
	NotPinned

	// StillPinned: flush or shutdown found a frame with a nonzero pin
	// count.
	StillPinned

	// InconsistentState: a frame claims association with a file while
	// marked invalid.
	InconsistentState
)

func (k ErrorKind) String() string {
	switch k {
	case PoolExhausted:
		return "pool exhausted"
	case NotPinned:
		return "page not pinned"
	case StillPinned:
		return "page still pinned"
	case InconsistentState:
		return "inconsistent buffer state"
	default:
		return "unknown buffer error"
	}
}

func NewBufferError(kind ErrorKind, file string, pageNum int64, frame int) *BufferError {
	return &BufferError{
		Kind:    kind,
		File:    file,
		PageNum: pageNum,
		Frame:   frame,
	}
}

func (e *BufferError) Error() string {
	if e.File == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: file %s, page %d, frame %d", e.Kind, e.File, e.PageNum, e.Frame)
}

// IsKind reports whether err is a BufferError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var bufErr *BufferError
	if errors.As(err, &bufErr) {
		return bufErr.Kind == kind
	}
	return false
}

type ErrorKind int

type BufferError struct {
	Kind    ErrorKind
	File    string
	PageNum int64
	Frame   int
}
