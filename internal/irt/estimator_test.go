package irt

import (
	"math"
	"testing"

	"assessment-service/internal/models"
)

func TestEstimateAbilityEmptyHistory(t *testing.T) {
	est := EstimateAbility(0.7, nil)
	if !est.Converged {
		t.Error("Expected empty history to converge immediately")
	}
	if est.Theta != 0.7 {
		t.Errorf("Expected prior theta back unchanged, got %v", est.Theta)
	}
}

func TestEstimateAbilityDirection(t *testing.T) {
	item := testItem("q1", 1.0, 0.0, 0)

	correct := EstimateAbility(0, []Response{{Item: item, Correct: true}})
	if correct.Theta <= 0 {
		t.Errorf("Correct response should raise theta, got %v", correct.Theta)
	}

	incorrect := EstimateAbility(0, []Response{{Item: item, Correct: false}})
	if incorrect.Theta >= 0 {
		t.Errorf("Incorrect response should lower theta, got %v", incorrect.Theta)
	}
}

func TestEstimateAbilityMixedHistoryConverges(t *testing.T) {
	// A mixed history has an interior MLE; the iteration must find it
	// within the cap.
	history := []Response{
		{Item: testItem("q1", 1.0, -1.0, 0), Correct: true},
		{Item: testItem("q2", 1.0, 0.0, 0), Correct: true},
		{Item: testItem("q3", 1.2, 0.5, 0), Correct: false},
		{Item: testItem("q4", 0.8, 1.0, 0), Correct: true},
		{Item: testItem("q5", 1.5, 1.5, 0), Correct: false},
	}

	est := EstimateAbility(0, history)
	if !est.Converged {
		t.Fatalf("Expected convergence on mixed history, final theta %v", est.Theta)
	}
	if est.Theta <= ThetaMin || est.Theta >= ThetaMax {
		t.Errorf("Interior MLE expected, got boundary value %v", est.Theta)
	}

	// At the MLE the score function is (near) zero.
	score := 0.0
	for _, r := range history {
		a := r.Item.Discrimination
		u := 0.0
		if r.Correct {
			u = 1.0
		}
		p := Probability(est.Theta, r.Item)
		score += a * (u - p)
	}
	if math.Abs(score) > 0.05 {
		t.Errorf("Score function at estimate should be near zero, got %v", score)
	}
}

func TestEstimateAbilityAllCorrectClamps(t *testing.T) {
	// An all-correct history drives the unconstrained MLE to infinity;
	// the clamp must hold it at the upper bound without NaN or Inf.
	history := []Response{
		{Item: testItem("q1", 1.0, 0.0, 0), Correct: true},
		{Item: testItem("q2", 1.0, 1.0, 0), Correct: true},
		{Item: testItem("q3", 1.0, 2.0, 0), Correct: true},
	}

	est := EstimateAbility(0, history)
	if math.IsNaN(est.Theta) || math.IsInf(est.Theta, 0) {
		t.Fatalf("Estimate must stay finite, got %v", est.Theta)
	}
	if est.Theta != ThetaMax {
		t.Errorf("Expected clamp at %v for all-correct history, got %v", ThetaMax, est.Theta)
	}
}

func TestEstimateAbilityAllIncorrectClamps(t *testing.T) {
	history := []Response{
		{Item: testItem("q1", 1.0, 0.0, 0), Correct: false},
		{Item: testItem("q2", 1.0, -1.0, 0), Correct: false},
		{Item: testItem("q3", 1.0, -2.0, 0), Correct: false},
	}

	est := EstimateAbility(0, history)
	if math.IsNaN(est.Theta) || math.IsInf(est.Theta, 0) {
		t.Fatalf("Estimate must stay finite, got %v", est.Theta)
	}
	if est.Theta != ThetaMin {
		t.Errorf("Expected clamp at %v for all-incorrect history, got %v", ThetaMin, est.Theta)
	}
}

func TestEstimateAbilityOutOfRangePrior(t *testing.T) {
	item := testItem("q1", 1.0, 0.0, 0)
	est := EstimateAbility(10.0, []Response{{Item: item, Correct: false}})
	if est.Theta < ThetaMin || est.Theta > ThetaMax {
		t.Errorf("Prior outside the range must be clamped, got %v", est.Theta)
	}
}

func TestEstimateAbilityWithGuessing(t *testing.T) {
	// 3PL items must not break the update; the estimate stays finite and
	// moves the right way.
	history := []Response{
		{Item: testItem("q1", 1.2, 0.0, 0.25), Correct: true},
		{Item: testItem("q2", 1.0, 0.5, 0.2), Correct: true},
		{Item: testItem("q3", 1.4, 1.0, 0.25), Correct: false},
	}

	est := EstimateAbility(0, history)
	if math.IsNaN(est.Theta) || math.IsInf(est.Theta, 0) {
		t.Fatalf("Estimate must stay finite with guessing, got %v", est.Theta)
	}
}

func TestStandardErrorNoItems(t *testing.T) {
	if se := StandardError(0, nil); !math.IsInf(se, 1) {
		t.Errorf("Expected +Inf standard error with no items, got %v", se)
	}
}

func TestStandardErrorDecreasesWithItems(t *testing.T) {
	items := []*models.Item{
		testItem("q1", 1.5, 0.0, 0),
		testItem("q2", 1.5, 0.2, 0),
		testItem("q3", 1.5, -0.2, 0),
	}

	prev := math.Inf(1)
	for i := 1; i <= len(items); i++ {
		se := StandardError(0, items[:i])
		if se >= prev {
			t.Errorf("Standard error should shrink as items accumulate: %v >= %v after %d items",
				se, prev, i)
		}
		prev = se
	}

	// Single item at theta with a=1.5: info = 2.25 * 0.25, SE = 1/sqrt(0.5625).
	se1 := StandardError(0, items[:1])
	expected := 1 / math.Sqrt(1.5*1.5*0.25)
	if math.Abs(se1-expected) > 0.001 {
		t.Errorf("Expected SE %v for one item, got %v", expected, se1)
	}
}
