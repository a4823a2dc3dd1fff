package mot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTrack(t *testing.T) {
	box := NewRect(10, 20, 30, 40)
	track := NewTrack(0.5, 3, "car", box, 0.0, 2)

	assert.Equal(t, 3, track.GetID())
	assert.Equal(t, "car", track.GetLabel())
	assert.Equal(t, 1, track.GetNumObservations())
	assert.Equal(t, 0.5, track.GetCreationTimestamp())
	assert.Equal(t, 0.5, track.GetCurrentTimestamp())
	assert.Equal(t, 2, track.GetCorresIdx())
	assert.Equal(t, box, track.GetLastBox())
}

func TestTrackUpdate(t *testing.T) {
	track := NewTrack(1.0, 0, "", NewRect(0, 0, 10, 10), 0.0, 0)
	track.Update(2.0, 1.5, NewRect(1, 1, 10, 10), 3)
	track.Update(3.0, 0.7, NewRect(2, 2, 10, 10), 1)

	assert.Equal(t, 3, track.GetNumObservations())
	assert.Equal(t, 1.0, track.GetCreationTimestamp())
	assert.Equal(t, 3.0, track.GetCurrentTimestamp())
	assert.Equal(t, 1, track.GetCorresIdx())
	assert.Equal(t, Observation{Timestamp: 3.0, Box: NewRect(2, 2, 10, 10), Cost: 0.7, CorresIdx: 1}, track.GetLastObservation())
	assert.Equal(t, []Rectangle{NewRect(0, 0, 10, 10), NewRect(1, 1, 10, 10), NewRect(2, 2, 10, 10)}, track.GetBoxes())
}

func TestTrackObservationsAreCopied(t *testing.T) {
	track := NewTrack(1.0, 0, "", NewRect(0, 0, 10, 10), 0.0, 0)
	observations := track.GetObservations()
	observations[0].CorresIdx = 99
	assert.Equal(t, 0, track.GetCorresIdx())
}
