package mot

// Observation is one frame's record of a track. Immutable once appended.
type Observation struct {
	Timestamp float64
	Box       Rectangle
	// Match cost at this frame
	Cost float64
	// Index of the detection within this frame's detection list
	CorresIdx int
}

// Track is an identity-bearing time series of observations (one object's trajectory).
// Observations are append-only; a track is never deleted, only retired into the lost set
// of a TrackContainer.
type Track struct {
	id           int
	label        string
	observations []Observation
}

// NewTrack creates a new track with exactly one observation
func NewTrack(timestamp float64, id int, label string, box Rectangle, cost float64, corresIdx int) *Track {
	track := Track{
		id:           id,
		label:        label,
		observations: make([]Observation, 0, 16),
	}
	track.observations = append(track.observations, Observation{
		Timestamp: timestamp,
		Box:       box,
		Cost:      cost,
		CorresIdx: corresIdx,
	})
	return &track
}

// Update appends an observation for a frame in which the track remained matched
func (track *Track) Update(timestamp, cost float64, box Rectangle, corresIdx int) {
	track.observations = append(track.observations, Observation{
		Timestamp: timestamp,
		Box:       box,
		Cost:      cost,
		CorresIdx: corresIdx,
	})
}

// GetID returns track's identifier
func (track *Track) GetID() int {
	return track.id
}

// GetLabel returns track's class label
func (track *Track) GetLabel() string {
	return track.label
}

// GetCreationTimestamp returns timestamp of the first observation
func (track *Track) GetCreationTimestamp() float64 {
	return track.observations[0].Timestamp
}

// GetCurrentTimestamp returns timestamp of the last observation
func (track *Track) GetCurrentTimestamp() float64 {
	return track.GetLastObservation().Timestamp
}

// GetCorresIdx returns detection index of the last observation
func (track *Track) GetCorresIdx() int {
	return track.GetLastObservation().CorresIdx
}

// GetNumObservations returns number of successful observations
func (track *Track) GetNumObservations() int {
	return len(track.observations)
}

// GetLastObservation returns the most recent observation
func (track *Track) GetLastObservation() Observation {
	return track.observations[len(track.observations)-1]
}

// GetLastBox returns box of the most recent observation
func (track *Track) GetLastBox() Rectangle {
	return track.GetLastObservation().Box
}

// GetObservations returns copy of track's history
func (track *Track) GetObservations() []Observation {
	observations := make([]Observation, len(track.observations))
	copy(observations, track.observations)
	return observations
}

// GetBoxes returns boxes of every observation in order
func (track *Track) GetBoxes() []Rectangle {
	boxes := make([]Rectangle, len(track.observations))
	for i, observation := range track.observations {
		boxes[i] = observation.Box
	}
	return boxes
}
