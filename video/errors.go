package video

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("video does not exist")
	ErrAlreadyFlagged = errors.New("video is already flagged")
	ErrNotFlagged     = errors.New("video is not flagged")
)

// FlaggedError is returned when an operation is refused because the video is flagged.
type FlaggedError struct {
	Reason string
}

func (e *FlaggedError) Error() string {
	return fmt.Sprintf("video is currently flagged (reason: %s)", e.Reason)
}
