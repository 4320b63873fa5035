// Package adaptive implements the session controller of the assessment
// engine: it drives the select-item / record-response / re-estimate loop
// and decides when a session is finished.
package adaptive

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"assessment-service/internal/bank"
	"assessment-service/internal/irt"
	"assessment-service/internal/models"
	"assessment-service/internal/selection"
)

var (
	// ErrSessionComplete is returned when a response is submitted against
	// a session that has already finalized.
	ErrSessionComplete = errors.New("session already complete")
	// ErrDuplicateResponse is returned when a response is submitted for
	// an item already administered in the session.
	ErrDuplicateResponse = errors.New("item already administered in this session")
	// ErrUnknownItem is returned when the submitted item id is not in the
	// calibrated pool.
	ErrUnknownItem = errors.New("item not found in pool")
)

// Engine runs the adaptive loop for sessions over a shared read-only item
// bank. The engine itself is stateless apart from its configuration; all
// per-examinee state lives in the session value, so concurrent sessions
// are isolated by construction.
type Engine struct {
	config   *Config
	bank     *bank.Bank
	selector *selection.MaxInfoSelector
}

// NewEngine creates an engine over a calibrated bank. A nil config uses
// the defaults.
func NewEngine(config *Config, b *bank.Bank) *Engine {
	if config == nil {
		config = DefaultConfig()
	}
	return &Engine{
		config:   config,
		bank:     b,
		selector: selection.NewMaxInfoSelector(),
	}
}

// Config returns the engine's stopping-rule configuration.
func (e *Engine) Config() *Config {
	return e.config
}

// NextItem returns the item to administer next, or the final summary once
// the session is complete. Selection is a pure read: calling NextItem
// twice without an intervening response returns the same item, because
// max-information selection with the lowest-id tie-break is deterministic
// given theta and the administered set.
//
// An exhausted pool on a session that still has responses finalizes the
// session in the returned decision; the caller persists the state change.
func (e *Engine) NextItem(session *models.AssessmentSession) (*NextItemDecision, error) {
	if session.Status == models.SessionComplete {
		return &NextItemDecision{Complete: true, Summary: e.Summarize(session)}, nil
	}

	item, err := e.selector.SelectNext(e.bank, session.CurrentTheta, session.ItemsAdministered, "")
	if errors.Is(err, selection.ErrExhaustedPool) {
		e.finalize(session, models.CompletionPoolExhausted)
		return &NextItemDecision{Complete: true, Summary: e.Summarize(session)}, nil
	}
	if err != nil {
		return nil, err
	}
	return &NextItemDecision{Item: item}, nil
}

// RecordResponse appends a response to the session history, re-estimates
// theta and its standard error from the full history, and evaluates the
// stopping rule. Theta is never touched outside this path.
func (e *Engine) RecordResponse(session *models.AssessmentSession, itemID string, correct bool) (*ResponseOutcome, error) {
	if session.Status == models.SessionComplete {
		return nil, ErrSessionComplete
	}
	if session.HasAdministered(itemID) {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateResponse, itemID)
	}
	if _, ok := e.bank.Get(itemID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownItem, itemID)
	}

	session.ItemsAdministered = append(session.ItemsAdministered, itemID)
	session.Responses = append(session.Responses, models.RecordedResponse{ItemID: itemID, Correct: correct})
	session.Status = models.SessionInProgress

	previousTheta := session.CurrentTheta
	history := e.history(session)

	estimate := irt.EstimateAbility(previousTheta, history)
	if !estimate.Converged {
		// Best clamped estimate is still used; logged for calibration
		// review, never surfaced to the examinee.
		log.Printf("estimator hit iteration cap for session %s after %d responses", session.ID, len(history))
	}
	session.CurrentTheta = estimate.Theta
	session.StandardError = irt.StandardError(estimate.Theta, administeredItems(history))

	outcome := &ResponseOutcome{
		PreviousTheta:  previousTheta,
		NewTheta:       session.CurrentTheta,
		ThetaChange:    round4(session.CurrentTheta - previousTheta),
		StandardError:  session.StandardError,
		Classification: irt.Classify(session.CurrentTheta),
		Correct:        correct,
		Converged:      estimate.Converged,
		TotalResponses: len(session.Responses),
	}

	if reason, stop := e.shouldStop(session); stop {
		e.finalize(session, reason)
		outcome.Complete = true
		outcome.CompletionReason = reason
		outcome.Summary = e.Summarize(session)
	}
	return outcome, nil
}

// shouldStop evaluates the stopping rule after a recorded response.
func (e *Engine) shouldStop(session *models.AssessmentSession) (string, bool) {
	administered := len(session.ItemsAdministered)
	if administered >= e.config.MaxItems {
		return models.CompletionMaxItems, true
	}
	if administered >= e.config.MinItems && session.StandardError <= e.config.TargetSEM {
		return models.CompletionTargetSEM, true
	}
	if _, err := e.selector.SelectNext(e.bank, session.CurrentTheta, session.ItemsAdministered, ""); errors.Is(err, selection.ErrExhaustedPool) {
		return models.CompletionPoolExhausted, true
	}
	return "", false
}

func (e *Engine) finalize(session *models.AssessmentSession, reason string) {
	session.Status = models.SessionComplete
	session.CompletionReason = reason
	session.FinalTheta = session.CurrentTheta
	session.Classification = irt.Classify(session.FinalTheta)
	session.EndTime = time.Now()
}

// Summarize builds the final summary for a completed session.
func (e *Engine) Summarize(session *models.AssessmentSession) *Summary {
	history := e.history(session)
	items := administeredItems(history)

	return &Summary{
		FinalTheta:        session.FinalTheta,
		StandardError:     session.StandardError,
		Classification:    session.Classification,
		Feedback:          irt.ClassificationFeedback(session.Classification),
		Accuracy:          session.Accuracy(),
		Reliability:       irt.Reliability(session.FinalTheta, items),
		ItemsAdministered: len(session.ItemsAdministered),
		CorrectAnswers:    session.CorrectCount(),
		CategoryBreakdown: e.categoryBreakdown(history),
		CompletionReason:  session.CompletionReason,
	}
}

func (e *Engine) categoryBreakdown(history []irt.Response) map[string]models.CategoryScore {
	breakdown := make(map[string]models.CategoryScore)
	for _, r := range history {
		score := breakdown[r.Item.Category]
		score.Administered++
		if r.Correct {
			score.Correct++
		}
		breakdown[r.Item.Category] = score
	}
	for cat, score := range breakdown {
		score.Score = float64(score.Correct) / float64(score.Administered)
		breakdown[cat] = score
	}
	return breakdown
}

// history resolves the session's response history against the bank.
// Responses to items that have since left the pool are skipped.
func (e *Engine) history(session *models.AssessmentSession) []irt.Response {
	history := make([]irt.Response, 0, len(session.Responses))
	for _, r := range session.Responses {
		if item, ok := e.bank.Get(r.ItemID); ok {
			history = append(history, irt.Response{Item: item, Correct: r.Correct})
		}
	}
	return history
}

func administeredItems(history []irt.Response) []*models.Item {
	items := make([]*models.Item, len(history))
	for i, r := range history {
		items[i] = r.Item
	}
	return items
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
