package models

import "time"

// Session states. A session transitions to complete only via the stopping
// rule, never mid-computation.
const (
	SessionAwaitingFirstItem = "awaiting_first_item"
	SessionInProgress        = "in_progress"
	SessionComplete          = "complete"
)

// Completion reasons recorded when a session finalizes.
const (
	CompletionMaxItems      = "max_items_reached"
	CompletionTargetSEM     = "target_precision_reached"
	CompletionPoolExhausted = "item_pool_exhausted"
)

// RecordedResponse is one entry of a session's response history, in
// administration order.
type RecordedResponse struct {
	ItemID  string `bson:"item_id" json:"item_id"`
	Correct bool   `bson:"correct" json:"correct"`
}

// AssessmentSession is one adaptive assessment attempt. Theta is only ever
// updated by the ability estimator after a response is recorded; the
// response history is append-only and an item id appears at most once.
type AssessmentSession struct {
	ID                string             `bson:"_id,omitempty" json:"id"`
	ExamineeID        string             `bson:"examinee_id" json:"examinee_id"`
	StartTheta        float64            `bson:"start_theta" json:"start_theta"`
	CurrentTheta      float64            `bson:"current_theta" json:"current_theta"`
	StandardError     float64            `bson:"standard_error" json:"standard_error"`
	ItemsAdministered []string           `bson:"items_administered" json:"items_administered"`
	Responses         []RecordedResponse `bson:"responses" json:"responses"`
	Status            string             `bson:"status" json:"status"`
	CompletionReason  string             `bson:"completion_reason,omitempty" json:"completion_reason,omitempty"`
	FinalTheta        float64            `bson:"final_theta,omitempty" json:"final_theta,omitempty"`
	Classification    string             `bson:"classification,omitempty" json:"classification,omitempty"`
	StartTime         time.Time          `bson:"start_time" json:"start_time"`
	EndTime           time.Time          `bson:"end_time,omitempty" json:"end_time,omitempty"`
}

// HasAdministered reports whether the item was already administered in
// this session.
func (s *AssessmentSession) HasAdministered(itemID string) bool {
	for _, id := range s.ItemsAdministered {
		if id == itemID {
			return true
		}
	}
	return false
}

// CorrectCount returns the number of correct responses so far.
func (s *AssessmentSession) CorrectCount() int {
	correct := 0
	for _, r := range s.Responses {
		if r.Correct {
			correct++
		}
	}
	return correct
}

// Accuracy returns the fraction of administered items answered correctly,
// or 0 before any response.
func (s *AssessmentSession) Accuracy() float64 {
	if len(s.Responses) == 0 {
		return 0
	}
	return float64(s.CorrectCount()) / float64(len(s.Responses))
}
