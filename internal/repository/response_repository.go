package repository

import (
	"context"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ResponseRepository struct {
	Col *mongo.Collection
}

func NewResponseRepository(db *mongo.Database) *ResponseRepository {
	return &ResponseRepository{Col: db.Collection("responses")}
}

func (r *ResponseRepository) Create(ctx context.Context, response *models.ItemResponse) error {
	if response.ID == "" {
		response.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, response)
	return err
}

func (r *ResponseRepository) FindBySession(ctx context.Context, sessionID string) ([]models.ItemResponse, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sequence", Value: 1}})
	cur, err := r.Col.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var responses []models.ItemResponse
	for cur.Next(ctx) {
		var resp models.ItemResponse
		if err := cur.Decode(&resp); err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
