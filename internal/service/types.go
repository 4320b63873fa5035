package service

import (
	"errors"

	"assessment-service/internal/models"
)

// ErrSessionNotFound is returned when the caller passes an unknown
// session id; the session must be re-created.
var ErrSessionNotFound = errors.New("session not found")

// ErrItemNotFound is returned when a submitted item id is not in the
// calibrated pool.
var ErrItemNotFound = errors.New("item not found")

// NextItemResult is the GetNextItem response payload. When the assessment
// is complete, Item is nil and the summary fields are populated.
type NextItemResult struct {
	SessionID          string       `json:"session_id"`
	Item               *models.Item `json:"item,omitempty"`
	AssessmentComplete bool         `json:"assessment_complete"`
	CurrentTheta       float64      `json:"current_theta"`
	ItemsCompleted     int          `json:"items_completed"`
	ItemsRemaining     int          `json:"items_remaining"`
	ProgressPercentage float64      `json:"progress_percentage"`
	Message            string       `json:"message,omitempty"`

	// Populated only when AssessmentComplete is true.
	FinalTheta     *float64                        `json:"final_theta,omitempty"`
	SEM            *float64                        `json:"sem,omitempty"`
	Classification string                          `json:"classification,omitempty"`
	TotalItems     int                             `json:"total_items,omitempty"`
	CorrectAnswers int                             `json:"correct_answers,omitempty"`
	Accuracy       float64                         `json:"accuracy,omitempty"`
	Breakdown      map[string]models.CategoryScore `json:"category_breakdown,omitempty"`
}

// ResponseFeedback is the examinee-facing feedback attached to a
// submitted response.
type ResponseFeedback struct {
	Message             string  `json:"message"`
	ExpectedProbability float64 `json:"expected_probability"`
	NewThetaEstimate    float64 `json:"new_theta_estimate"`
}

// SubmitResponseResult is the SubmitResponse response payload.
type SubmitResponseResult struct {
	SessionID          string           `json:"session_id"`
	IsCorrect          bool             `json:"is_correct"`
	NewTheta           float64          `json:"new_theta"`
	PreviousTheta      float64          `json:"previous_theta"`
	ThetaChange        float64          `json:"theta_change"`
	Classification     string           `json:"classification"`
	StandardError      float64          `json:"standard_error"`
	Feedback           ResponseFeedback `json:"feedback"`
	TotalResponses     int              `json:"total_responses"`
	AssessmentComplete bool             `json:"assessment_complete"`
}

// SubmitResponseInput carries one submitted answer. PronunciationScore is
// the 0-100 score from the external speech scorer, consumed only for
// pronunciation items.
type SubmitResponseInput struct {
	ItemID             string  `json:"item_id"`
	SelectedOption     string  `json:"selected_option"`
	PronunciationScore float64 `json:"pronunciation_score"`
	TimeSpentSeconds   int     `json:"time_spent_seconds"`
}
