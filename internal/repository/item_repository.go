package repository

import (
	"context"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ItemRepository struct {
	Col *mongo.Collection
}

func NewItemRepository(db *mongo.Database) *ItemRepository {
	return &ItemRepository{Col: db.Collection("items")}
}

func (r *ItemRepository) FindAll(ctx context.Context) ([]models.Item, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var items []models.Item
	for cur.Next(ctx) {
		var it models.Item
		if err := cur.Decode(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id string) (*models.Item, error) {
	var item models.Item
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) FindByCategory(ctx context.Context, category string) ([]models.Item, error) {
	cur, err := r.Col.Find(ctx, bson.M{"category": category})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var items []models.Item
	for cur.Next(ctx) {
		var it models.Item
		if err := cur.Decode(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (r *ItemRepository) Create(ctx context.Context, item *models.Item) error {
	_, err := r.Col.InsertOne(ctx, item)
	return err
}

func (r *ItemRepository) CreateMany(ctx context.Context, items []models.Item) (int, error) {
	docs := make([]interface{}, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	res, err := r.Col.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}
