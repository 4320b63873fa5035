package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"assessment-service/internal/adaptive"
	"assessment-service/internal/irt"
	"assessment-service/internal/models"
	"assessment-service/internal/repository"
	"assessment-service/internal/selection"

	"go.mongodb.org/mongo-driver/mongo"
)

// SessionService orchestrates assessment sessions: it owns persistence,
// per-session serialization and the adaptive engine. The engine itself is
// pure; everything stateful funnels through here.
type SessionService struct {
	Repo         *repository.SessionRepository
	ResponseRepo *repository.ResponseRepository
	ResultRepo   *repository.ResultRepository
	ExamineeRepo *repository.ExamineeRepository
	poolManager  *selection.PoolManager
	config       *adaptive.Config

	// One mutex per live session id. Concurrent calls against the same
	// session are a caller error; the lock turns them into serialized
	// calls instead of corrupted state.
	sessionLocks sync.Map
}

func NewSessionService(
	repo *repository.SessionRepository,
	responseRepo *repository.ResponseRepository,
	resultRepo *repository.ResultRepository,
	examineeRepo *repository.ExamineeRepository,
	poolManager *selection.PoolManager,
	config *adaptive.Config,
) *SessionService {
	if config == nil {
		config = adaptive.DefaultConfig()
	}
	return &SessionService{
		Repo:         repo,
		ResponseRepo: responseRepo,
		ResultRepo:   resultRepo,
		ExamineeRepo: examineeRepo,
		poolManager:  poolManager,
		config:       config,
	}
}

func (s *SessionService) lock(sessionID string) func() {
	mu, _ := s.sessionLocks.LoadOrStore(sessionID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

// CreateSession starts a new assessment for an examinee. The starting
// theta is carried over from the examinee's last known ability, or 0.0
// for a first-time examinee.
func (s *SessionService) CreateSession(ctx context.Context, examineeID, fullName string) (*models.AssessmentSession, error) {
	examinee, err := s.ExamineeRepo.FindByID(ctx, examineeID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up examinee: %w", err)
	}
	if examinee == nil {
		examinee = &models.Examinee{
			ID:             examineeID,
			FullName:       fullName,
			CurrentAbility: irt.InitialTheta,
			CreatedAt:      time.Now(),
		}
		if err := s.ExamineeRepo.Create(ctx, examinee); err != nil {
			return nil, fmt.Errorf("failed to create examinee profile: %w", err)
		}
	}

	session := &models.AssessmentSession{
		ExamineeID:        examineeID,
		StartTheta:        examinee.CurrentAbility,
		CurrentTheta:      examinee.CurrentAbility,
		// Zero until the first response; the measurement SE is undefined
		// with no items and +Inf does not survive JSON. The stopping rule
		// never reads this field before MinItems responses re-estimate it.
		StandardError:     0,
		ItemsAdministered: []string{},
		Responses:         []models.RecordedResponse{},
		Status:            models.SessionAwaitingFirstItem,
		StartTime:         time.Now(),
	}
	if err := s.Repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// GetSession retrieves session state.
func (s *SessionService) GetSession(ctx context.Context, id string) (*models.AssessmentSession, error) {
	session, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// NextItem returns the item to administer next, or the final summary when
// the session is complete. Selection is read-only: re-querying without an
// intervening response returns the same item.
func (s *SessionService) NextItem(ctx context.Context, sessionID string) (*NextItemResult, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	engine, err := s.engine(ctx)
	if err != nil {
		return nil, err
	}

	wasComplete := session.Status == models.SessionComplete
	decision, err := engine.NextItem(session)
	if err != nil {
		return nil, err
	}

	// An exhausted pool finalizes the session inside the engine; persist
	// that transition and write the result exactly once.
	if decision.Complete && !wasComplete {
		if err := s.Repo.Save(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to save session: %w", err)
		}
		if err := s.recordResult(ctx, session, decision.Summary); err != nil {
			return nil, err
		}
	}

	return s.nextItemResult(session, decision), nil
}

// SubmitResponse records one answer, re-estimates ability and applies the
// stopping rule. The service is the sole authority for correctness: the
// submitted option is scored against the item key (or, for pronunciation
// items, the external score against the pass threshold) and any
// client-side verdict is ignored.
func (s *SessionService) SubmitResponse(ctx context.Context, sessionID string, input *SubmitResponseInput) (*SubmitResponseResult, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	engine, err := s.engine(ctx)
	if err != nil {
		return nil, err
	}

	b, err := s.poolManager.Bank(ctx)
	if err != nil {
		return nil, err
	}
	item, ok := b.Get(input.ItemID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, input.ItemID)
	}

	correct := s.scoreResponse(item, input)
	expectedP := irt.Probability(session.CurrentTheta, item)

	outcome, err := engine.RecordResponse(session, input.ItemID, correct)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	record := &models.ItemResponse{
		SessionID:        sessionID,
		ExamineeID:       session.ExamineeID,
		ItemID:           input.ItemID,
		SelectedOption:   input.SelectedOption,
		Correct:          correct,
		ThetaBefore:      outcome.PreviousTheta,
		ThetaAfter:       outcome.NewTheta,
		TimeSpentSeconds: input.TimeSpentSeconds,
		Sequence:         outcome.TotalResponses,
		AnsweredAt:       time.Now(),
	}
	if err := s.ResponseRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record response: %w", err)
	}

	if outcome.Complete {
		if err := s.recordResult(ctx, session, outcome.Summary); err != nil {
			return nil, err
		}
	}

	return &SubmitResponseResult{
		SessionID:      sessionID,
		IsCorrect:      correct,
		NewTheta:       outcome.NewTheta,
		PreviousTheta:  outcome.PreviousTheta,
		ThetaChange:    outcome.ThetaChange,
		Classification: outcome.Classification,
		StandardError:  outcome.StandardError,
		Feedback: ResponseFeedback{
			Message:             feedbackMessage(correct),
			ExpectedProbability: expectedP,
			NewThetaEstimate:    outcome.NewTheta,
		},
		TotalResponses:     outcome.TotalResponses,
		AssessmentComplete: outcome.Complete,
	}, nil
}

// GetResult returns the finalized result for a completed session.
func (s *SessionService) GetResult(ctx context.Context, sessionID string) (*models.AssessmentResult, error) {
	result, err := s.ResultRepo.FindBySession(ctx, sessionID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return result, nil
}

// PoolInfo exposes pool diagnostics.
func (s *SessionService) PoolInfo(ctx context.Context) (*selection.PoolInfo, error) {
	return s.poolManager.Info(ctx)
}

func (s *SessionService) engine(ctx context.Context) (*adaptive.Engine, error) {
	b, err := s.poolManager.Bank(ctx)
	if err != nil {
		return nil, err
	}
	return adaptive.NewEngine(s.config, b), nil
}

// scoreResponse applies the correctness rule for the item type. The
// external speech scorer returns 0-100; at or above the pass threshold a
// pronunciation item counts as correct.
func (s *SessionService) scoreResponse(item *models.Item, input *SubmitResponseInput) bool {
	if item.Type == models.ItemTypePronunciation {
		return input.PronunciationScore >= s.config.PronunciationPassScore
	}
	return item.IsCorrectAnswer(input.SelectedOption)
}

func (s *SessionService) recordResult(ctx context.Context, session *models.AssessmentSession, summary *adaptive.Summary) error {
	result := &models.AssessmentResult{
		SessionID:         session.ID,
		ExamineeID:        session.ExamineeID,
		FinalTheta:        summary.FinalTheta,
		StandardError:     summary.StandardError,
		Classification:    summary.Classification,
		Accuracy:          summary.Accuracy,
		Reliability:       summary.Reliability,
		ItemsAdministered: summary.ItemsAdministered,
		CorrectAnswers:    summary.CorrectAnswers,
		CategoryBreakdown: summary.CategoryBreakdown,
		CompletionReason:  summary.CompletionReason,
		Feedback:          summary.Feedback,
		CreatedAt:         time.Now(),
	}
	if err := s.ResultRepo.Create(ctx, result); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	if err := s.ExamineeRepo.UpdateAbility(ctx, session.ExamineeID, summary.FinalTheta); err != nil {
		return fmt.Errorf("failed to update examinee ability: %w", err)
	}
	return nil
}

func (s *SessionService) nextItemResult(session *models.AssessmentSession, decision *adaptive.NextItemDecision) *NextItemResult {
	res := &NextItemResult{
		SessionID:          session.ID,
		CurrentTheta:       session.CurrentTheta,
		ItemsCompleted:     len(session.ItemsAdministered),
		ItemsRemaining:     s.config.MaxItems - len(session.ItemsAdministered),
		ProgressPercentage: float64(len(session.ItemsAdministered)) / float64(s.config.MaxItems) * 100,
	}
	if decision.Complete {
		summary := decision.Summary
		res.AssessmentComplete = true
		res.ItemsRemaining = 0
		res.ProgressPercentage = 100
		res.Message = summary.Feedback
		res.FinalTheta = &summary.FinalTheta
		res.SEM = &summary.StandardError
		res.Classification = summary.Classification
		res.TotalItems = summary.ItemsAdministered
		res.CorrectAnswers = summary.CorrectAnswers
		res.Accuracy = summary.Accuracy
		res.Breakdown = summary.CategoryBreakdown
		return res
	}
	res.Item = decision.Item
	return res
}

func feedbackMessage(correct bool) string {
	if correct {
		return "Correct! Well done."
	}
	return "Not quite, keep going!"
}
