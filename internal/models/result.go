package models

import "time"

// CategoryScore is the per-category breakdown of a finished assessment:
// fraction correct within that category among administered items.
type CategoryScore struct {
	Administered int     `bson:"administered" json:"administered"`
	Correct      int     `bson:"correct" json:"correct"`
	Score        float64 `bson:"score" json:"score"`
}

// AssessmentResult is the finalized summary of a completed session.
type AssessmentResult struct {
	ID                string                   `bson:"_id,omitempty" json:"id"`
	SessionID         string                   `bson:"session_id" json:"session_id"`
	ExamineeID        string                   `bson:"examinee_id" json:"examinee_id"`
	FinalTheta        float64                  `bson:"final_theta" json:"final_theta"`
	StandardError     float64                  `bson:"standard_error" json:"standard_error"`
	Classification    string                   `bson:"classification" json:"classification"`
	Accuracy          float64                  `bson:"accuracy" json:"accuracy"`
	Reliability       float64                  `bson:"reliability" json:"reliability"`
	ItemsAdministered int                      `bson:"items_administered" json:"items_administered"`
	CorrectAnswers    int                      `bson:"correct_answers" json:"correct_answers"`
	CategoryBreakdown map[string]CategoryScore `bson:"category_breakdown" json:"category_breakdown"`
	CompletionReason  string                   `bson:"completion_reason" json:"completion_reason"`
	Feedback          string                   `bson:"feedback" json:"feedback"`
	CreatedAt         time.Time                `bson:"created_at" json:"created_at"`
}
