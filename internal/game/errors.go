package game

import "errors"

var (
	// ErrConfiguration is a missing binding, such as a note without a lane
	// or a sound without a sample. The component skips the unit of work.
	ErrConfiguration = errors.New("configuration error")

	// ErrData is a malformed chart entry. The entry is dropped.
	ErrData = errors.New("data error")

	// ErrInconsistent is a request that does not match the current state,
	// such as judging a lane with no zone. It is a no-op.
	ErrInconsistent = errors.New("runtime inconsistency")
)
