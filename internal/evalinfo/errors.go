package evalinfo

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed matches FileErrors for optional files that could not be parsed.
	ErrMalformed = errors.New("malformed file")
	// ErrUnreadable matches FileErrors for optional files that could not be read.
	ErrUnreadable = errors.New("unreadable file")
)

type FileErrorKind string

const (
	KindMalformed  FileErrorKind = "malformed"
	KindUnreadable FileErrorKind = "unreadable"
)

// FileError describes a problem with an optional auxiliary file. The
// summarizer recovers from it by leaving the affected field at its default.
type FileError struct {
	Path string
	Kind FileErrorKind
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

func (e *FileError) Is(target error) bool {
	switch target {
	case ErrMalformed:
		return e.Kind == KindMalformed
	case ErrUnreadable:
		return e.Kind == KindUnreadable
	}
	return false
}

func malformed(path string, err error) error {
	return &FileError{Path: path, Kind: KindMalformed, Err: err}
}

func unreadable(path string, err error) error {
	return &FileError{Path: path, Kind: KindUnreadable, Err: err}
}
