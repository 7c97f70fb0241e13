package repo

import (
	"context"
	"errors"
	"fmt"

	"sporelia/models"
	"sporelia/plantid"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository persists plants in a MongoDB collection. Documents are
// keyed by the human-readable plant ID (stored as _id).
type MongoRepository struct {
	plants *mongo.Collection
}

// NewMongoRepository wires the repository to the "plants" collection of
// the given database.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{plants: db.Collection("plants")}
}

// EnsureIndexes creates the indexes the repository queries rely on.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.plants.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "plantType", Value: 1}}},
		{Keys: bson.D{{Key: "parentPlantId", Value: 1}}},
	})
	return err
}

func (r *MongoRepository) FindAll(ctx context.Context) ([]models.Plant, error) {
	cur, err := r.plants.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, repoErr("findAll", err)
	}
	defer cur.Close(ctx)

	var out []models.Plant
	if err := cur.All(ctx, &out); err != nil {
		return nil, repoErr("findAll", err)
	}
	return out, nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*models.Plant, error) {
	var p models.Plant
	err := r.plants.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, repoErr("findById", err)
	}
	return &p, nil
}

func (r *MongoRepository) FindByField(ctx context.Context, field, value string) ([]models.Plant, error) {
	if !queryableFields[field] {
		return nil, repoErr("findByField", fmt.Errorf("field %q is not queryable", field))
	}
	cur, err := r.plants.Find(ctx, bson.M{field: value}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, repoErr("findByField", err)
	}
	defer cur.Close(ctx)

	var out []models.Plant
	if err := cur.All(ctx, &out); err != nil {
		return nil, repoErr("findByField", err)
	}
	return out, nil
}

func (r *MongoRepository) Save(ctx context.Context, plant models.Plant) (models.Plant, error) {
	plant = normalize(plant)
	if plant.ID == "" {
		known, err := r.FindAll(ctx)
		if err != nil {
			return models.Plant{}, err
		}
		plant.ID = plantid.NextRootID(known, plant.PlantType)
	}
	_, err := r.plants.ReplaceOne(ctx, bson.M{"_id": plant.ID}, plant, options.Replace().SetUpsert(true))
	if err != nil {
		return models.Plant{}, repoErr("save", err)
	}
	return plant, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.plants.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, repoErr("delete", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.plants.DeleteMany(ctx, bson.M{}); err != nil {
		return repoErr("deleteAll", err)
	}
	return nil
}
