package irt

import (
	"math"

	"assessment-service/internal/models"
)

// Estimation constants. The theta clamp is mandatory: an all-correct or
// all-incorrect history makes the unconstrained MLE diverge.
const (
	InitialTheta  = 0.0
	ThetaMin      = -4.0
	ThetaMax      = 4.0
	Tolerance     = 0.001
	MaxIterations = 20
)

// Response pairs an administered item with the observed correctness.
type Response struct {
	Item    *models.Item
	Correct bool
}

// Estimate is the outcome of an ability update. Converged is false when
// the iteration cap was hit before the tolerance was met; the theta it
// carries is still the best available estimate, not an error.
type Estimate struct {
	Theta     float64
	Converged bool
}

// EstimateAbility computes a maximum-likelihood ability estimate from the
// full response history, starting from the prior theta. It iterates
// Newton-Raphson on the 3PL log-likelihood with the expected (Fisher)
// information as the curvature, which keeps the step direction correct
// even where the observed second derivative changes sign. The estimate is
// clamped to [ThetaMin, ThetaMax] every iteration.
func EstimateAbility(startTheta float64, history []Response) Estimate {
	theta := clampTheta(startTheta)
	if len(history) == 0 {
		return Estimate{Theta: theta, Converged: true}
	}

	for iter := 0; iter < MaxIterations; iter++ {
		score := 0.0 // L'(theta)
		info := 0.0  // expected -L''(theta)

		for _, r := range history {
			a := r.Item.Discrimination
			c := r.Item.Guessing
			u := 0.0
			if r.Correct {
				u = 1.0
			}

			p := Probability(theta, r.Item)

			// dP/dtheta = a * (P - c) * (1 - P) / (1 - c)
			score += a * (u - p) * (p - c) / ((1 - c) * p)
			info += Information(theta, r.Item)
		}

		if info <= 0 {
			break
		}

		next := clampTheta(theta + score/info)
		if math.Abs(next-theta) < Tolerance {
			return Estimate{Theta: round4(next), Converged: true}
		}
		theta = next
	}

	return Estimate{Theta: round4(theta), Converged: false}
}

// StandardError returns the standard error of measurement at theta,
// 1 / sqrt(total information). It is +Inf until at least one item with
// positive information has been administered.
func StandardError(theta float64, items []*models.Item) float64 {
	info := TotalInformation(theta, items)
	if info <= 0 {
		return math.Inf(1)
	}
	return round4(1 / math.Sqrt(info))
}

func clampTheta(theta float64) float64 {
	return math.Max(ThetaMin, math.Min(ThetaMax, theta))
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
