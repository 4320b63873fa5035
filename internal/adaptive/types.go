package adaptive

import "assessment-service/internal/models"

// Config holds the stopping-rule and scoring parameters for adaptive
// assessments.
type Config struct {
	// MaxItems is the hard cap on test length.
	MaxItems int `json:"max_items"`
	// MinItems is the exposure floor: the precision rule never stops a
	// session before this many responses, so nobody is classified off a
	// handful of items.
	MinItems int `json:"min_items"`
	// TargetSEM is the standard-error threshold for the precision
	// stopping rule.
	TargetSEM float64 `json:"target_sem"`
	// PronunciationPassScore is the 0-100 external pronunciation score at
	// or above which a pronunciation item counts as correct.
	PronunciationPassScore float64 `json:"pronunciation_pass_score"`
}

// DefaultConfig returns the production stopping-rule parameters.
func DefaultConfig() *Config {
	return &Config{
		MaxItems:               20,
		MinItems:               5,
		TargetSEM:              0.3,
		PronunciationPassScore: 70,
	}
}

// NextItemDecision is the outcome of asking for the next item: either an
// item to administer, or completion with the final summary.
type NextItemDecision struct {
	Item     *models.Item `json:"item,omitempty"`
	Complete bool         `json:"complete"`
	Summary  *Summary     `json:"summary,omitempty"`
}

// ResponseOutcome reports the effect of one recorded response.
type ResponseOutcome struct {
	PreviousTheta    float64  `json:"previous_theta"`
	NewTheta         float64  `json:"new_theta"`
	ThetaChange      float64  `json:"theta_change"`
	StandardError    float64  `json:"standard_error"`
	Classification   string   `json:"classification"`
	Correct          bool     `json:"correct"`
	Converged        bool     `json:"converged"`
	TotalResponses   int      `json:"total_responses"`
	Complete         bool     `json:"complete"`
	CompletionReason string   `json:"completion_reason,omitempty"`
	Summary          *Summary `json:"summary,omitempty"`
}

// Summary is the finalized outcome of a completed session.
type Summary struct {
	FinalTheta        float64                         `json:"final_theta"`
	StandardError     float64                         `json:"standard_error"`
	Classification    string                          `json:"classification"`
	Feedback          string                          `json:"feedback"`
	Accuracy          float64                         `json:"accuracy"`
	Reliability       float64                         `json:"reliability"`
	ItemsAdministered int                             `json:"items_administered"`
	CorrectAnswers    int                             `json:"correct_answers"`
	CategoryBreakdown map[string]models.CategoryScore `json:"category_breakdown"`
	CompletionReason  string                          `json:"completion_reason"`
}
