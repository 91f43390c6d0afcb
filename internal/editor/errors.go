package editor

import (
	"errors"
	"fmt"
)

// ErrUntimedLines is matched by errors.Is for an *UntimedError.
var ErrUntimedLines = errors.New("some lines have no timestamp")

// ErrNoLines is returned when saving a session without any line. Saving an
// empty lyric would delete the track's saved lyrics; ResetRemote does that.
var ErrNoLines = errors.New("no lyrics lines to save")

// UntimedError lists the lines that still have no timestamp.
type UntimedError struct {
	Indices []int
}

func (e *UntimedError) Error() string {
	if len(e.Indices) == 1 {
		return fmt.Sprintf("line %d has no timestamp", e.Indices[0]+1)
	}
	return fmt.Sprintf("%d lines have no timestamp, first is line %d", len(e.Indices), e.Indices[0]+1)
}

// Is reports whether target is ErrUntimedLines.
func (e *UntimedError) Is(target error) bool {
	return target == ErrUntimedLines
}
