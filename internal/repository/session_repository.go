package repository

import (
	"context"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SessionRepository struct {
	Col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{Col: db.Collection("sessions")}
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*models.AssessmentSession, error) {
	var session models.AssessmentSession
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) Create(ctx context.Context, session *models.AssessmentSession) error {
	// Sessions are keyed by ObjectID hex kept as a plain string so the
	// id round-trips through the JSON API unchanged.
	if session.ID == "" {
		session.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, session)
	return err
}

// Save persists the session state after an engine step.
func (r *SessionRepository) Save(ctx context.Context, session *models.AssessmentSession) error {
	update := bson.M{
		"current_theta":      session.CurrentTheta,
		"standard_error":     session.StandardError,
		"items_administered": session.ItemsAdministered,
		"responses":          session.Responses,
		"status":             session.Status,
		"completion_reason":  session.CompletionReason,
		"final_theta":        session.FinalTheta,
		"classification":     session.Classification,
		"end_time":           session.EndTime,
	}
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": session.ID}, bson.M{"$set": update})
	return err
}

func (r *SessionRepository) FindByExaminee(ctx context.Context, examineeID string) ([]models.AssessmentSession, error) {
	cur, err := r.Col.Find(ctx, bson.M{"examinee_id": examineeID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var sessions []models.AssessmentSession
	for cur.Next(ctx) {
		var s models.AssessmentSession
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}
