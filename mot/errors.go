package mot

import "github.com/pkg/errors"

// Invalid input
var (
	// ErrEmptyCostMatrix is returned when a cost matrix has zero rows or zero columns.
	// Callers must handle "no agents and/or no tasks" before matching.
	ErrEmptyCostMatrix = errors.New("cost matrix is empty")
	// ErrNotTwoDimensional is returned when rows of a cost matrix differ in length.
	ErrNotTwoDimensional = errors.New("cost matrix must be two-dimensional")
	// ErrNonFiniteCost is returned when a cost matrix contains NaN or infinite values.
	ErrNonFiniteCost = errors.New("cost matrix contains non-finite value")
	// ErrSizeMismatch is returned when external identifiers do not match matrix dimensions.
	ErrSizeMismatch = errors.New("identifier list length does not match cost matrix dimension")
	// ErrInvalidThreshold is returned for negative or NaN distance thresholds.
	ErrInvalidThreshold = errors.New("distance threshold must be a non-negative number")
	// ErrInvalidTrack is returned when a nil track is handed to a container.
	ErrInvalidTrack = errors.New("argument is not a track")
	// ErrDuplicateTrackID is returned when a track id has already been used in a container.
	ErrDuplicateTrackID = errors.New("track id already used")
	// ErrTimestampOrder is returned when frames are fed out of order.
	ErrTimestampOrder = errors.New("timestamp is earlier than previous frame")
)

// Lookup failure
var (
	// ErrTrackNotFound is returned when no track satisfies a lookup.
	ErrTrackNotFound = errors.New("track not found")
	// ErrPositionOutOfRange is returned when a positional access falls outside the active set.
	ErrPositionOutOfRange = errors.New("position out of range")
)

// Use-before-ready
var (
	// ErrNotFitted is returned when results are queried before a successful Match
	// or when the stored result is internally inconsistent.
	ErrNotFitted = errors.New("assigner is not fitted")
)
