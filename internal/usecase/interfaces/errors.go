package interfaces

import "errors"

// Storage-level conditions repositories report back to use cases. Reads
// signal "not found" with zero-value entities instead; these cover write
// conditions that need distinct handling.
var (
	// ErrDuplicateID: a create hit an existing primary key.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrRevisionConflict: a conditional save lost the race; reload and retry.
	ErrRevisionConflict = errors.New("revision conflict")
)
