package irt

import (
	"math"

	"assessment-service/internal/models"
)

// Probability returns the probability of a correct response under the
// 3-parameter logistic model:
//
//	P(theta) = c + (1 - c) / (1 + e^(-a(theta - b)))
//
// With c = 0 this reduces to the 2PL model. For finite theta the result
// lies strictly in (c, 1), and it is strictly increasing in theta as long
// as a > 0 (enforced by Item.Validate at bank load).
func Probability(theta float64, it *models.Item) float64 {
	exponent := -it.Discrimination * (theta - it.Difficulty)
	return it.Guessing + (1-it.Guessing)/(1+math.Exp(exponent))
}

// Information returns the Fisher information the item provides at theta:
//
//	I(theta) = a^2 * (Q/P) * ((P - c) / (1 - c))^2
//
// which reduces to a^2 * P * Q for c = 0. The selector ranks candidate
// items by this value to pick the one that most reduces uncertainty at
// the current ability estimate.
func Information(theta float64, it *models.Item) float64 {
	p := Probability(theta, it)
	q := 1 - p
	adj := (p - it.Guessing) / (1 - it.Guessing)
	a := it.Discrimination
	return a * a * (q / p) * adj * adj
}

// TotalInformation sums item information over administered items.
func TotalInformation(theta float64, items []*models.Item) float64 {
	total := 0.0
	for _, it := range items {
		total += Information(theta, it)
	}
	return total
}

// ExpectedScore returns the expected percentage score (0-100) an examinee
// at theta would obtain over the given items.
func ExpectedScore(theta float64, items []*models.Item) float64 {
	if len(items) == 0 {
		return 0
	}
	total := 0.0
	for _, it := range items {
		total += Probability(theta, it)
	}
	return total / float64(len(items)) * 100
}

// Reliability returns the test reliability coefficient at theta,
// information / (1 + information), in [0, 1).
func Reliability(theta float64, items []*models.Item) float64 {
	info := TotalInformation(theta, items)
	return info / (1 + info)
}

// RawScoreToTheta gives a rough initial theta from a raw proportion
// correct via the logit transform, with the proportion pinned away from
// 0 and 1 so the logit stays finite.
func RawScoreToTheta(correct, total int) float64 {
	if total == 0 {
		return InitialTheta
	}
	p := float64(correct) / float64(total)
	if p > 0.99 {
		p = 0.99
	} else if p < 0.01 {
		p = 0.01
	}
	return clampTheta(math.Log(p / (1 - p)))
}
