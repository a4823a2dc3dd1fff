package mot

import (
	"math"
	"testing"
)

func TestPredictorKeepsBoxSize(t *testing.T) {
	initial := NewRect(0, 0, 20, 40)
	predictor := NewPredictor(initial, 1.0)
	if predictor.PredictedBox() != initial {
		t.Errorf("Predicted box before any prediction must be the initial one: %v", predictor.PredictedBox())
	}

	for i := 1; i <= 5; i++ {
		predicted := predictor.Predict()
		if predicted.Width != 20 || predicted.Height != 40 {
			t.Fatalf("Box size changed: %v", predicted)
		}
		if predictor.PredictedBox() != predicted {
			t.Fatalf("PredictedBox must return the last prediction")
		}
		observed := NewRect(5*float64(i), 0, 20, 40)
		if err := predictor.Correct(observed); err != nil {
			t.Fatal(err)
		}
	}

	// Moving right: next prediction must be ahead of the start and close to the last box
	predicted := predictor.Predict()
	if predicted.X <= 0 {
		t.Errorf("Prediction must follow the motion: %v", predicted)
	}
	if math.Abs(predicted.Center().X-(25+10)) > 15 {
		t.Errorf("Prediction is too far from the last box: %v", predicted)
	}
}
