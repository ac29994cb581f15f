package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrBusy         = errors.New("server is busy, try again later")
	ErrShuttingDown = errors.New("server is shutting down")
)

// MissingInputError reports an absent, empty or duplicated file part.
type MissingInputError struct {
	Field  string
	Reason string
}

func (e *MissingInputError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return "Video or audio file missing"
}

// TranscodeError wraps a failed remux invocation.
type TranscodeError struct {
	Err error
}

func (e *TranscodeError) Error() string {
	return fmt.Sprintf("replace audio: %v", e.Err)
}

func (e *TranscodeError) Unwrap() error { return e.Err }

// ThumbnailError wraps a failed thumbnail invocation. The combined video
// written before it stays on disk.
type ThumbnailError struct {
	Err error
}

func (e *ThumbnailError) Error() string {
	return fmt.Sprintf("create thumbnail: %v", e.Err)
}

func (e *ThumbnailError) Unwrap() error { return e.Err }

// StorageError wraps a Storage Area failure (directory creation, file write).
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// RedactDir strips the Storage Area location from a message so that client
// facing errors only name files, never where they live.
func RedactDir(msg, dir string) string {
	if dir == "" {
		return msg
	}
	msg = strings.ReplaceAll(msg, dir+string(filepath.Separator), "")
	return strings.ReplaceAll(msg, dir, "")
}
