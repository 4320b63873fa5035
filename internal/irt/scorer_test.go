package irt

import (
	"math"
	"testing"

	"assessment-service/internal/models"
)

func testItem(id string, a, b, c float64) *models.Item {
	return &models.Item{
		ID:             id,
		Category:       models.CategoryWordKnowledge,
		Type:           models.ItemTypeMultipleChoice,
		CorrectOption:  "A",
		Discrimination: a,
		Difficulty:     b,
		Guessing:       c,
	}
}

func TestProbabilityAtDifficulty(t *testing.T) {
	// At theta == b the 2PL probability is exactly 0.5.
	item := testItem("q1", 1.2, 0.7, 0)
	p := Probability(0.7, item)
	if math.Abs(p-0.5) > 1e-9 {
		t.Errorf("Expected probability 0.5 at theta == difficulty, got %v", p)
	}
}

func TestProbabilityGuessingFloor(t *testing.T) {
	// With guessing c, probability at theta == b is c + (1-c)/2.
	item := testItem("q1", 1.0, 0.0, 0.25)
	p := Probability(0.0, item)
	expected := 0.25 + 0.75/2
	if math.Abs(p-expected) > 1e-9 {
		t.Errorf("Expected probability %v, got %v", expected, p)
	}
}

func TestProbabilityMonotonicInTheta(t *testing.T) {
	items := []*models.Item{
		testItem("q1", 0.5, -2.0, 0),
		testItem("q2", 1.0, 0.0, 0),
		testItem("q3", 2.5, 1.5, 0.2),
	}

	for _, item := range items {
		prev := math.Inf(-1)
		for theta := -4.0; theta <= 4.0; theta += 0.25 {
			p := Probability(theta, item)
			if p <= prev {
				t.Errorf("Item %s: probability not strictly increasing at theta %v (%v <= %v)",
					item.ID, theta, p, prev)
			}
			prev = p
		}
	}
}

func TestProbabilityBounds(t *testing.T) {
	testCases := []struct {
		name  string
		item  *models.Item
		theta float64
	}{
		{"very low theta 2PL", testItem("q1", 1.0, 0.0, 0), -4.0},
		{"very high theta 2PL", testItem("q1", 1.0, 0.0, 0), 4.0},
		{"low theta with guessing", testItem("q2", 2.0, 1.0, 0.25), -4.0},
		{"high discrimination", testItem("q3", 2.5, -3.0, 0.1), 3.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := Probability(tc.theta, tc.item)
			c := tc.item.Guessing
			if p <= c || p >= 1 {
				t.Errorf("Probability %v out of (%v, 1) for finite theta", p, c)
			}
		})
	}
}

func TestInformationPeaksNearDifficulty(t *testing.T) {
	// For a 2PL item, information is maximal at theta == b.
	item := testItem("q1", 1.5, 0.5, 0)
	atB := Information(0.5, item)

	for _, theta := range []float64{-2.0, -0.5, 0.0, 1.0, 2.0, 3.0} {
		if info := Information(theta, item); info >= atB {
			t.Errorf("Information at theta %v (%v) should be below peak at difficulty (%v)",
				theta, info, atB)
		}
	}
}

func TestInformationReducesToTwoPL(t *testing.T) {
	// With c = 0 information must equal a^2 * P * Q.
	item := testItem("q1", 1.3, -0.4, 0)
	theta := 0.8
	p := Probability(theta, item)
	expected := 1.3 * 1.3 * p * (1 - p)
	if got := Information(theta, item); math.Abs(got-expected) > 1e-9 {
		t.Errorf("Expected information %v, got %v", expected, got)
	}
}

func TestExpectedScore(t *testing.T) {
	items := []*models.Item{
		testItem("q1", 1.0, 0.0, 0),
		testItem("q2", 1.0, 0.0, 0),
	}
	// At theta 0 both items sit at 50%.
	if score := ExpectedScore(0, items); math.Abs(score-50) > 1e-9 {
		t.Errorf("Expected 50%% expected score, got %v", score)
	}
	if score := ExpectedScore(0, nil); score != 0 {
		t.Errorf("Expected 0 for empty item list, got %v", score)
	}
}

func TestReliabilityInRange(t *testing.T) {
	items := []*models.Item{
		testItem("q1", 1.5, 0.0, 0),
		testItem("q2", 1.5, 0.5, 0),
		testItem("q3", 1.5, -0.5, 0),
	}
	r := Reliability(0, items)
	if r <= 0 || r >= 1 {
		t.Errorf("Reliability %v out of (0, 1)", r)
	}
}

func TestRawScoreToTheta(t *testing.T) {
	testCases := []struct {
		name     string
		correct  int
		total    int
		expected float64
	}{
		{"half correct", 5, 10, 0},
		{"no items", 0, 0, InitialTheta},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RawScoreToTheta(tc.correct, tc.total); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Expected theta %v, got %v", tc.expected, got)
			}
		})
	}

	// Perfect and zero scores stay finite and inside the clamp.
	for _, tc := range []struct{ correct, total int }{{10, 10}, {0, 10}} {
		theta := RawScoreToTheta(tc.correct, tc.total)
		if math.IsNaN(theta) || math.IsInf(theta, 0) || theta < ThetaMin || theta > ThetaMax {
			t.Errorf("RawScoreToTheta(%d, %d) = %v, want finite value in [%v, %v]",
				tc.correct, tc.total, theta, ThetaMin, ThetaMax)
		}
	}
}
