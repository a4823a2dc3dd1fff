package mot

import (
	kalman_filter "github.com/LdDl/kalman-filter"
	"github.com/pkg/errors"
)

// Predictor estimates the next box of a track using 2D Kalman filter over its center.
// Box size is carried over from the last correction.
type Predictor struct {
	lastBox      Rectangle
	predictedBox Rectangle
	tracker      *kalman_filter.Kalman2D
}

// NewPredictor creates predictor seeded with the initial box and time step dt
func NewPredictor(initial Rectangle, dt float64) *Predictor {
	center := initial.Center()

	/* Kalman filter props */
	ux := 1.0
	uy := 1.0
	stdDevA := 2.0
	stdDevMx := 0.1
	stdDevMy := 0.1
	kf := kalman_filter.NewKalman2D(dt, ux, uy, stdDevA, stdDevMx, stdDevMy, kalman_filter.WithState2D(center.X, center.Y))
	return &Predictor{
		lastBox:      initial,
		predictedBox: initial,
		tracker:      kf,
	}
}

// Predict executes Kalman filter's first step and returns predicted box
func (predictor *Predictor) Predict() Rectangle {
	predictor.tracker.Predict()
	stateX, stateY := predictor.tracker.GetState()
	predictor.predictedBox = predictor.lastBox.MoveCenterTo(Point{X: stateX, Y: stateY})
	return predictor.predictedBox
}

// PredictedBox returns result of the last Predict call (initial box before any)
func (predictor *Predictor) PredictedBox() Rectangle {
	return predictor.predictedBox
}

// Correct executes Kalman filter's second step with the observed box
func (predictor *Predictor) Correct(observed Rectangle) error {
	center := observed.Center()
	err := predictor.tracker.Update(center.X, center.Y)
	if err != nil {
		return errors.Wrap(err, "Can't update object tracker")
	}
	predictor.lastBox = observed
	return nil
}
