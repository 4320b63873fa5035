package repository

import (
	"context"
	"time"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ExamineeRepository struct {
	Col *mongo.Collection
}

func NewExamineeRepository(db *mongo.Database) *ExamineeRepository {
	return &ExamineeRepository{Col: db.Collection("examinees")}
}

func (r *ExamineeRepository) FindByID(ctx context.Context, id string) (*models.Examinee, error) {
	var examinee models.Examinee
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&examinee)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &examinee, nil
}

func (r *ExamineeRepository) Create(ctx context.Context, examinee *models.Examinee) error {
	_, err := r.Col.InsertOne(ctx, examinee)
	return err
}

// UpdateAbility writes back the ability estimate after a completed
// assessment so the next session starts from it.
func (r *ExamineeRepository) UpdateAbility(ctx context.Context, id string, theta float64) error {
	update := bson.M{
		"$set": bson.M{
			"current_ability":  theta,
			"last_assessed_at": time.Now(),
		},
		"$inc": bson.M{"assessments_taken": 1},
	}
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}
