package mot

import (
	"iter"

	"github.com/pkg/errors"
)

// TrackContainer owns a collection of tracks partitioned into active and lost sets.
//
// A track id belongs to exactly one of the two sets and never repeats: ids are reserved on
// Add and stay reserved until Reset, even if the track is removed by position.
type TrackContainer struct {
	active []*Track
	lost   []*Track
	// Every id ever added since the last Reset
	usedIDs map[int]struct{}
	// Timestamps of frames with at least one detection
	timestamps []float64
	// Timestamps of frames with zero detections
	noObjTimestamps []float64
}

// NewTrackContainer creates empty container
func NewTrackContainer() *TrackContainer {
	return &TrackContainer{
		active:          make([]*Track, 0),
		lost:            make([]*Track, 0),
		usedIDs:         make(map[int]struct{}),
		timestamps:      make([]float64, 0),
		noObjTimestamps: make([]float64, 0),
	}
}

// Add inserts track into the active set
func (container *TrackContainer) Add(track *Track) error {
	if track == nil {
		return ErrInvalidTrack
	}
	if _, ok := container.usedIDs[track.GetID()]; ok {
		return errors.Wrapf(ErrDuplicateTrackID, "id %d", track.GetID())
	}
	container.usedIDs[track.GetID()] = struct{}{}
	container.active = append(container.active, track)
	return nil
}

// SetLost moves the active track whose current corresponding detection index equals
// corresIdx into the lost set and returns its id.
func (container *TrackContainer) SetLost(corresIdx int) (int, error) {
	for i, track := range container.active {
		if track.GetCorresIdx() != corresIdx {
			continue
		}
		container.active = append(container.active[:i], container.active[i+1:]...)
		container.lost = append(container.lost, track)
		return track.GetID(), nil
	}
	return 0, errors.Wrapf(ErrTrackNotFound, "no active track with corresponding index %d", corresIdx)
}

// SetAllTracksLost moves every active track into the lost set and returns their ids.
// Returns empty slice when nothing is active.
func (container *TrackContainer) SetAllTracksLost() []int {
	ids := make([]int, len(container.active))
	for i, track := range container.active {
		ids[i] = track.GetID()
	}
	container.lost = append(container.lost, container.active...)
	container.active = make([]*Track, 0)
	return ids
}

// Remove deletes active track at given position without moving it to the lost set.
// Intended for corrective edits; its id stays reserved.
func (container *TrackContainer) Remove(position int) (*Track, error) {
	if position < 0 || position >= len(container.active) {
		return nil, errors.Wrapf(ErrPositionOutOfRange, "position %d, active tracks %d", position, len(container.active))
	}
	track := container.active[position]
	container.active = append(container.active[:position], container.active[position+1:]...)
	return track, nil
}

// PopLeft removes the oldest active track
func (container *TrackContainer) PopLeft() (*Track, error) {
	return container.Remove(0)
}

// RemoveByID deletes track with given id from whichever set holds it
func (container *TrackContainer) RemoveByID(id int) (*Track, error) {
	for i, track := range container.active {
		if track.GetID() == id {
			container.active = append(container.active[:i], container.active[i+1:]...)
			return track, nil
		}
	}
	for i, track := range container.lost {
		if track.GetID() == id {
			container.lost = append(container.lost[:i], container.lost[i+1:]...)
			return track, nil
		}
	}
	return nil, errors.Wrapf(ErrTrackNotFound, "id %d", id)
}

// GetTrack looks track up by id in both sets
func (container *TrackContainer) GetTrack(id int) (*Track, error) {
	for _, track := range container.active {
		if track.GetID() == id {
			return track, nil
		}
	}
	for _, track := range container.lost {
		if track.GetID() == id {
			return track, nil
		}
	}
	return nil, errors.Wrapf(ErrTrackNotFound, "id %d", id)
}

// IsActive reports whether track with given id is in the active set
func (container *TrackContainer) IsActive(id int) bool {
	for _, track := range container.active {
		if track.GetID() == id {
			return true
		}
	}
	return false
}

// Reset clears both sets, reserved ids and timestamp logs
func (container *TrackContainer) Reset() {
	container.active = make([]*Track, 0)
	container.lost = make([]*Track, 0)
	container.usedIDs = make(map[int]struct{})
	container.timestamps = make([]float64, 0)
	container.noObjTimestamps = make([]float64, 0)
}

// AppendTimestamp logs a frame with at least one detection
func (container *TrackContainer) AppendTimestamp(timestamp float64) {
	container.timestamps = append(container.timestamps, timestamp)
}

// AppendNoObjTimestamp logs a frame with zero detections
func (container *TrackContainer) AppendNoObjTimestamp(timestamp float64) {
	container.noObjTimestamps = append(container.noObjTimestamps, timestamp)
}

// At returns active track at given position
func (container *TrackContainer) At(position int) (*Track, error) {
	if position < 0 || position >= len(container.active) {
		return nil, errors.Wrapf(ErrPositionOutOfRange, "position %d, active tracks %d", position, len(container.active))
	}
	return container.active[position], nil
}

// Tracks iterates over a snapshot of the active set. Mutating the container while
// iterating does not affect the sequence.
func (container *TrackContainer) Tracks() iter.Seq2[int, *Track] {
	snapshot := container.ActiveTracks()
	return func(yield func(int, *Track) bool) {
		for i, track := range snapshot {
			if !yield(i, track) {
				return
			}
		}
	}
}

// ActiveTracks returns copy of the active set
func (container *TrackContainer) ActiveTracks() []*Track {
	tracks := make([]*Track, len(container.active))
	copy(tracks, container.active)
	return tracks
}

// LostTracks returns copy of the lost set
func (container *TrackContainer) LostTracks() []*Track {
	tracks := make([]*Track, len(container.lost))
	copy(tracks, container.lost)
	return tracks
}

// AllTracks returns active tracks followed by lost tracks
func (container *TrackContainer) AllTracks() []*Track {
	tracks := make([]*Track, 0, len(container.active)+len(container.lost))
	tracks = append(tracks, container.active...)
	tracks = append(tracks, container.lost...)
	return tracks
}

// NumCurTrackedObjs returns number of active tracks
func (container *TrackContainer) NumCurTrackedObjs() int {
	return len(container.active)
}

// NumCurLostObjs returns number of lost tracks
func (container *TrackContainer) NumCurLostObjs() int {
	return len(container.lost)
}

// NumAllTracks returns number of active and lost tracks
func (container *TrackContainer) NumAllTracks() int {
	return len(container.active) + len(container.lost)
}

// Timestamps returns copy of the log of frames with detections
func (container *TrackContainer) Timestamps() []float64 {
	return copyFloats(container.timestamps)
}

// NoObjTimestamps returns copy of the log of frames without detections
func (container *TrackContainer) NoObjTimestamps() []float64 {
	return copyFloats(container.noObjTimestamps)
}

// NumNoObjTimestamps returns number of frames without detections
func (container *TrackContainer) NumNoObjTimestamps() int {
	return len(container.noObjTimestamps)
}
