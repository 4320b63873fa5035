package irt

import "math"

// Ability classifications. This four-band scheme is the single canonical
// one for the whole service; callers must not layer their own thresholds
// on top of it.
const (
	ClassBelowBasic = "Below Basic"
	ClassBasic      = "Basic"
	ClassProficient = "Proficient"
	ClassAdvanced   = "Advanced"
)

// Classification thresholds. Each boundary is inclusive on the upper
// side: theta = -1.0 classifies as Basic, theta = 0.5 as Proficient.
const (
	thresholdBasic      = -1.0
	thresholdProficient = 0.5
	thresholdAdvanced   = 1.5
)

// Classify maps a final theta to its ability classification.
func Classify(theta float64) string {
	switch {
	case theta < thresholdBasic:
		return ClassBelowBasic
	case theta < thresholdProficient:
		return ClassBasic
	case theta < thresholdAdvanced:
		return ClassProficient
	default:
		return ClassAdvanced
	}
}

// ClassificationFeedback returns the examinee-facing message for a
// classification.
func ClassificationFeedback(classification string) string {
	switch classification {
	case ClassAdvanced:
		return "Excellent work! You've demonstrated advanced literacy skills."
	case ClassProficient:
		return "Great job! You have proficient literacy skills."
	case ClassBasic:
		return "Good effort! Keep practicing to improve your skills."
	case ClassBelowBasic:
		return "You're making progress! Let's work on building your foundation."
	default:
		return "Assessment complete! Keep learning and practicing."
	}
}

// GrowthDescription describes the change between two ability estimates.
func GrowthDescription(initialTheta, finalTheta float64) string {
	change := finalTheta - initialTheta
	switch {
	case math.Abs(change) < 0.1:
		return "No significant change"
	case change > 0.5:
		return "Significant improvement!"
	case change > 0.2:
		return "Good progress!"
	case change > 0:
		return "Slight improvement"
	case change > -0.2:
		return "Slight decline"
	default:
		return "Needs more practice"
	}
}
