package mot

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Detection is a single observation in a frame
type Detection struct {
	Box   Rectangle
	Label string
}

// TrackMatch is a track extended by a detection in the current frame
type TrackMatch struct {
	TrackID   int
	Detection int
	Cost      float64
}

// FrameReport summarizes lifecycle transitions applied for one frame
type FrameReport struct {
	Timestamp float64
	Matched   []TrackMatch
	// Ids of tracks moved to the lost set
	Lost []int
	// Ids of tracks created from unmatched detections
	Born []int
	// Number of optimal pairs split by distance threshold
	Splits int
	// Number of active tracks after the frame
	NumActive    int
	Status       AssignmentStatus
	NoDetections bool
}

// FrameObserver receives every frame report produced by Sequencer
type FrameObserver interface {
	ObserveFrame(report FrameReport)
}

// SequencerOption configures Sequencer
type SequencerOption func(*Sequencer)

// WithPrediction enables Kalman prediction of track boxes before computing costs.
// dt is the time step between frames.
func WithPrediction(dt float64) SequencerOption {
	return func(seq *Sequencer) {
		seq.usePrediction = true
		seq.dt = dt
	}
}

// WithObserver attaches observer notified after every frame
func WithObserver(observer FrameObserver) SequencerOption {
	return func(seq *Sequencer) {
		seq.observer = observer
	}
}

// Sequencer is the frame-by-frame orchestration loop: it builds cost matrix between active
// tracks and new detections, runs Assigner and applies the result to TrackContainer.
//
// Frames must be fed in timestamp order. Sequencer is not safe for concurrent use.
type Sequencer struct {
	assigner  *Assigner
	container *TrackContainer
	costFunc  CostFunc

	usePrediction bool
	dt            float64
	predictors    map[int]*Predictor

	observer FrameObserver

	nextID        int
	started       bool
	lastTimestamp float64
	sessionID     uuid.UUID
}

// NewDefaultSequencer creates Sequencer with default Assigner and center distance costs
func NewDefaultSequencer() *Sequencer {
	return NewSequencer(NewDefaultAssigner(), CenterDistance)
}

// NewSequencer creates a new instance of Sequencer with specified parameters
func NewSequencer(assigner *Assigner, costFunc CostFunc, options ...SequencerOption) *Sequencer {
	seq := &Sequencer{
		assigner:   assigner,
		container:  NewTrackContainer(),
		costFunc:   costFunc,
		dt:         1.0,
		predictors: make(map[int]*Predictor),
		sessionID:  uuid.New(),
	}
	for _, option := range options {
		option(seq)
	}
	return seq
}

// Container returns underlying track container. Read accessors only: mutating it
// between frames breaks the corresponding-index bookkeeping.
func (seq *Sequencer) Container() *TrackContainer {
	return seq.container
}

// Assigner returns underlying assigner
func (seq *Sequencer) Assigner() *Assigner {
	return seq.assigner
}

// SessionID identifies the current run; it changes on Reset
func (seq *Sequencer) SessionID() uuid.UUID {
	return seq.sessionID
}

// Step processes one frame of detections.
//
// Timestamp order and the assignment are checked before anything is recorded: when Step
// returns ErrTimestampOrder or an assignment error the container and the last accepted
// timestamp are left as they were (enabled predictors have still advanced one step).
// Only a failing Kalman correction of an already matched track can leave the frame
// partially applied.
func (seq *Sequencer) Step(timestamp float64, detections []Detection) (FrameReport, error) {
	if seq.started && timestamp < seq.lastTimestamp {
		return FrameReport{}, errors.Wrapf(ErrTimestampOrder, "got %v after %v", timestamp, seq.lastTimestamp)
	}

	report := FrameReport{
		Timestamp: timestamp,
		Matched:   make([]TrackMatch, 0),
		Lost:      make([]int, 0),
		Born:      make([]int, 0),
		Status:    StatusUninitialized,
	}

	if len(detections) == 0 {
		seq.advance(timestamp)
		seq.container.AppendNoObjTimestamp(timestamp)
		report.NoDetections = true
		report.Lost = seq.container.SetAllTracksLost()
		for _, id := range report.Lost {
			delete(seq.predictors, id)
		}
		seq.finishFrame(&report)
		return report, nil
	}

	active := seq.container.ActiveTracks()
	if len(active) == 0 {
		seq.advance(timestamp)
		seq.container.AppendTimestamp(timestamp)
		for j := range detections {
			id, err := seq.register(timestamp, j, detections[j])
			if err != nil {
				return report, err
			}
			report.Born = append(report.Born, id)
		}
		report.Status = StatusHasNewborn
		seq.finishFrame(&report)
		return report, nil
	}

	agentBoxes := make([]Rectangle, len(active))
	for i, track := range active {
		agentBoxes[i] = track.GetLastBox()
		if predictor, ok := seq.predictors[track.GetID()]; ok {
			agentBoxes[i] = predictor.Predict()
		}
	}
	taskBoxes := make([]Rectangle, len(detections))
	for j := range detections {
		taskBoxes[j] = detections[j].Box
	}

	cost := BuildCostMatrix(agentBoxes, taskBoxes, seq.costFunc)
	result, err := seq.assigner.Match(cost, nil, nil)
	if err != nil {
		opsf("session %s: frame %v: assignment failed: %v", seq.sessionID, timestamp, err)
		return report, errors.Wrapf(err, "frame %v", timestamp)
	}
	seq.advance(timestamp)
	seq.container.AppendTimestamp(timestamp)
	report.Status = result.Status
	report.Splits = len(result.Unassigned) - max(0, len(active)-len(detections))

	// Retire first: SetLost looks tracks up by the previous frame's detection index,
	// which matched tracks are about to overwrite.
	for _, agent := range result.Unassigned {
		id, err := seq.container.SetLost(active[agent].GetCorresIdx())
		if err != nil {
			opsf("session %s: frame %v: can't retire track %d: %v", seq.sessionID, timestamp, active[agent].GetID(), err)
			return report, errors.Wrapf(err, "frame %v", timestamp)
		}
		delete(seq.predictors, id)
		report.Lost = append(report.Lost, id)
	}

	for _, pair := range result.Pairs() {
		track := active[pair.Agent]
		detection := detections[pair.Task]
		track.Update(timestamp, pair.Cost, detection.Box, pair.Task)
		if predictor, ok := seq.predictors[track.GetID()]; ok {
			if err := predictor.Correct(detection.Box); err != nil {
				return report, errors.Wrapf(err, "Can't update predictor of track %d", track.GetID())
			}
		}
		tracef("session %s: frame %v: track %d <- detection %d (cost %.4f)", seq.sessionID, timestamp, track.GetID(), pair.Task, pair.Cost)
		report.Matched = append(report.Matched, TrackMatch{
			TrackID:   track.GetID(),
			Detection: pair.Task,
			Cost:      pair.Cost,
		})
	}

	for _, task := range result.Newborn {
		id, err := seq.register(timestamp, task, detections[task])
		if err != nil {
			return report, err
		}
		report.Born = append(report.Born, id)
	}

	seq.finishFrame(&report)
	return report, nil
}

// advance records timestamp as the latest accepted one
func (seq *Sequencer) advance(timestamp float64) {
	seq.started = true
	seq.lastTimestamp = timestamp
}

// Finish retires every active track at sequence end and returns their ids
func (seq *Sequencer) Finish() []int {
	ids := seq.container.SetAllTracksLost()
	seq.predictors = make(map[int]*Predictor)
	diagf("session %s: finished, retired %d tracks, %d tracks total", seq.sessionID, len(ids), seq.container.NumAllTracks())
	return ids
}

// Reset prepares Sequencer for an independent run. Configuration is kept.
func (seq *Sequencer) Reset() {
	seq.container.Reset()
	seq.assigner.ResetState()
	seq.predictors = make(map[int]*Predictor)
	seq.nextID = 0
	seq.started = false
	seq.lastTimestamp = 0
	seq.sessionID = uuid.New()
}

// register creates newborn track from detection with index corresIdx
func (seq *Sequencer) register(timestamp float64, corresIdx int, detection Detection) (int, error) {
	id := seq.nextID
	track := NewTrack(timestamp, id, detection.Label, detection.Box, 0.0, corresIdx)
	if err := seq.container.Add(track); err != nil {
		return 0, errors.Wrapf(err, "Can't register track for detection %d", corresIdx)
	}
	seq.nextID++
	if seq.usePrediction {
		seq.predictors[id] = NewPredictor(detection.Box, seq.dt)
	}
	return id, nil
}

func (seq *Sequencer) finishFrame(report *FrameReport) {
	report.NumActive = seq.container.NumCurTrackedObjs()
	diagf("session %s: frame %v: status=%s matched=%d lost=%d born=%d active=%d",
		seq.sessionID, report.Timestamp, report.Status, len(report.Matched), len(report.Lost), len(report.Born), report.NumActive)
	if seq.observer != nil {
		seq.observer.ObserveFrame(*report)
	}
}
