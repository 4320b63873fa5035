package repository

import (
	"context"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ResultRepository struct {
	Col *mongo.Collection
}

func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{Col: db.Collection("results")}
}

func (r *ResultRepository) Create(ctx context.Context, result *models.AssessmentResult) error {
	if result.ID == "" {
		result.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, result)
	return err
}

func (r *ResultRepository) FindBySession(ctx context.Context, sessionID string) (*models.AssessmentResult, error) {
	var result models.AssessmentResult
	err := r.Col.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *ResultRepository) FindByExaminee(ctx context.Context, examineeID string) ([]models.AssessmentResult, error) {
	cur, err := r.Col.Find(ctx, bson.M{"examinee_id": examineeID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var results []models.AssessmentResult
	for cur.Next(ctx) {
		var res models.AssessmentResult
		if err := cur.Decode(&res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
