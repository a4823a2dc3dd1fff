// Package mot implements track assignment and lifecycle for multi-object tracking evaluation.
//
// Assigner associates agents (existing tracks, cost matrix rows) with tasks (new detections,
// cost matrix columns) by optimal bipartite matching and classifies the outcome into matched
// pairs, lost agents and newborn tasks. An optional distance threshold splits matched pairs
// whose cost is too high into a lost agent plus a newborn task.
//
// Track is an append-only series of observations. TrackContainer keeps tracks in two
// disjoint sets, active and lost, and logs frame timestamps.
//
// Sequencer glues both together frame by frame:
//
//	seq := mot.NewDefaultSequencer()
//	for _, frame := range frames {
//		report, err := seq.Step(frame.Timestamp, frame.Detections)
//		...
//	}
//	seq.Finish()
//	tracks := seq.Container().AllTracks()
package mot
