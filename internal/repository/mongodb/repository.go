package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/feedlot/internal/domain/models"
)

// FormulationStore persists named blends.
type FormulationStore interface {
	SaveFormulation(ctx context.Context, f models.Formulation) (string, error)
	ListFormulations(ctx context.Context, ownerID string) ([]models.Formulation, error)
	DeleteFormulation(ctx context.Context, id string) error
}

// AnimalStore persists animals together with their episode history.
type AnimalStore interface {
	SaveAnimal(ctx context.Context, animal models.Animal) error
	GetAnimal(ctx context.Context, tagID string) (models.Animal, error)
	ListAnimalsWithActiveEpisodes(ctx context.Context) ([]models.Animal, error)
}

// MongoDBRepository implements FormulationStore and AnimalStore on MongoDB.
type MongoDBRepository struct {
	client           *mongo.Client
	dbName           string
	formulationsColl string
	animalsColl      string
}

// NewMongoDBRepository connects to MongoDB and verifies the connection.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:           client,
		dbName:           dbName,
		formulationsColl: "formulations",
		animalsColl:      "animals",
	}, nil
}

// SaveFormulation inserts the formulation and returns its generated id.
func (r *MongoDBRepository) SaveFormulation(ctx context.Context, f models.Formulation) (string, error) {
	now := time.Now().UTC()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	f.UpdatedAt = now
	f.ID = ""

	collection := r.client.Database(r.dbName).Collection(r.formulationsColl)
	res, err := collection.InsertOne(ctx, f)
	if err != nil {
		return "", fmt.Errorf("failed to insert formulation: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// ListFormulations returns the formulations owned by the given account.
func (r *MongoDBRepository) ListFormulations(ctx context.Context, ownerID string) ([]models.Formulation, error) {
	collection := r.client.Database(r.dbName).Collection(r.formulationsColl)
	cursor, err := collection.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list formulations: %w", err)
	}
	defer cursor.Close(ctx)

	var formulations []models.Formulation
	if err := cursor.All(ctx, &formulations); err != nil {
		return nil, fmt.Errorf("failed to decode formulations: %w", err)
	}
	return formulations, nil
}

// DeleteFormulation removes one formulation by id.
func (r *MongoDBRepository) DeleteFormulation(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.NewNotFoundError("formulation", id)
	}

	collection := r.client.Database(r.dbName).Collection(r.formulationsColl)
	res, err := collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete formulation: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.NewNotFoundError("formulation", id)
	}
	return nil
}

// SaveAnimal upserts the animal document keyed by its tag id.
func (r *MongoDBRepository) SaveAnimal(ctx context.Context, animal models.Animal) error {
	collection := r.client.Database(r.dbName).Collection(r.animalsColl)
	opts := options.Replace().SetUpsert(true)
	if _, err := collection.ReplaceOne(ctx, bson.M{"tagId": animal.TagID}, animal, opts); err != nil {
		return fmt.Errorf("failed to save animal %s: %w", animal.TagID, err)
	}
	return nil
}

// GetAnimal loads one animal by tag id.
func (r *MongoDBRepository) GetAnimal(ctx context.Context, tagID string) (models.Animal, error) {
	collection := r.client.Database(r.dbName).Collection(r.animalsColl)

	var animal models.Animal
	err := collection.FindOne(ctx, bson.M{"tagId": tagID}).Decode(&animal)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Animal{}, models.NewNotFoundError("animal", tagID)
	}
	if err != nil {
		return models.Animal{}, fmt.Errorf("failed to load animal %s: %w", tagID, err)
	}
	return animal, nil
}

// ListAnimalsWithActiveEpisodes returns the animals that currently have an
// active fattening episode.
func (r *MongoDBRepository) ListAnimalsWithActiveEpisodes(ctx context.Context) ([]models.Animal, error) {
	collection := r.client.Database(r.dbName).Collection(r.animalsColl)
	cursor, err := collection.Find(ctx, bson.M{"episodes.isActive": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list animals with active episodes: %w", err)
	}
	defer cursor.Close(ctx)

	var animals []models.Animal
	if err := cursor.All(ctx, &animals); err != nil {
		return nil, fmt.Errorf("failed to decode animals: %w", err)
	}
	return animals, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
