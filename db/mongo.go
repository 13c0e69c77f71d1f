// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/danielhkuo/feature-votes/models"
)

// Collection names
const (
	FeaturesCollection = "features"
	VotesCollection    = "votes"
)

const upsertAttempts = 3

type featureDoc struct {
	ID   bson.ObjectID `bson:"_id,omitempty"`
	Name string        `bson:"name"`
}

type voteDoc struct {
	ID       bson.ObjectID `bson:"_id,omitempty"`
	Feature  bson.ObjectID `bson:"feature"`
	YesCount int64         `bson:"yesCount"`
	NoCount  int64         `bson:"noCount"`
}

// voteWithFeatureDoc is a votes document after $lookup on features
type voteWithFeatureDoc struct {
	ID       bson.ObjectID `bson:"_id"`
	Feature  *featureDoc   `bson:"feature,omitempty"`
	YesCount int64         `bson:"yesCount"`
	NoCount  int64         `bson:"noCount"`
}

func (d featureDoc) model() models.Feature {
	return models.Feature{ID: d.ID.Hex(), Name: d.Name}
}

// MongoStore implements Store on a MongoDB database
type MongoStore struct {
	client   *mongo.Client
	features *mongo.Collection
	votes    *mongo.Collection
}

func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	mdb := client.Database(database)
	return &MongoStore{
		client:   client,
		features: mdb.Collection(FeaturesCollection),
		votes:    mdb.Collection(VotesCollection),
	}
}

// OpenMongo connects to uri, verifies the connection and ensures indexes
func OpenMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	s := NewMongoStore(client, database)
	if err := s.EnsureIndexes(ctx); err != nil {
		client.Disconnect(ctx)
		return nil, err
	}

	return s, nil
}

// EnsureIndexes creates the unique indexes on features.name and votes.feature.
// Safe to call multiple times.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.features.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create features index: %w", err)
	}

	_, err = s.votes.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "feature", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create votes index: %w", err)
	}

	return nil
}

func (s *MongoStore) CreateFeature(ctx context.Context, name string) (models.Feature, error) {
	doc := featureDoc{ID: bson.NewObjectID(), Name: name}

	_, err := s.features.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Feature{}, ErrDuplicate
		}
		return models.Feature{}, fmt.Errorf("failed to insert feature: %w", err)
	}

	return doc.model(), nil
}

func (s *MongoStore) ListFeatures(ctx context.Context) ([]models.Feature, error) {
	cursor, err := s.features.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query features: %w", err)
	}

	var docs []featureDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode features: %w", err)
	}

	features := make([]models.Feature, 0, len(docs))
	for _, d := range docs {
		features = append(features, d.model())
	}

	return features, nil
}

func (s *MongoStore) GetFeature(ctx context.Context, id string) (models.Feature, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return models.Feature{}, ErrNotFound
	}

	var doc featureDoc
	err = s.features.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Feature{}, ErrNotFound
	}
	if err != nil {
		return models.Feature{}, fmt.Errorf("failed to query feature: %w", err)
	}

	return doc.model(), nil
}

func (s *MongoStore) IncrementVote(ctx context.Context, featureID, choice string) (models.Vote, error) {
	oid, err := bson.ObjectIDFromHex(featureID)
	if err != nil {
		return models.Vote{}, ErrNotFound
	}

	filter, update := voteIncrement(oid, choice)
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc voteDoc
	err = retryDuplicateKey(ctx, func() error {
		return s.votes.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	})
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to upsert vote: %w", err)
	}

	return models.Vote{
		ID:       doc.ID.Hex(),
		Feature:  doc.Feature.Hex(),
		YesCount: doc.YesCount,
		NoCount:  doc.NoCount,
	}, nil
}

// voteIncrement builds the filter and $inc update for one vote on a tally.
// $inc by zero still sets the other counter on insert.
func voteIncrement(feature bson.ObjectID, choice string) (bson.D, bson.D) {
	var yes, no int64
	if choice == models.VoteYes {
		yes = 1
	} else {
		no = 1
	}

	filter := bson.D{{Key: "feature", Value: feature}}
	update := bson.D{{Key: "$inc", Value: bson.D{
		{Key: "yesCount", Value: yes},
		{Key: "noCount", Value: no},
	}}}
	return filter, update
}

// retryDuplicateKey runs op up to upsertAttempts times while it fails with a
// duplicate key error. Two upserts racing on a missing tally can both try to
// insert; the loser succeeds as an update on the next attempt.
func retryDuplicateKey(ctx context.Context, op func() error) error {
	return retry.Do(
		op,
		retry.Attempts(upsertAttempts),
		retry.LastErrorOnly(true),
		retry.Delay(10*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(mongo.IsDuplicateKeyError),
		retry.Context(ctx),
	)
}

func (s *MongoStore) ListVotes(ctx context.Context) ([]models.VoteWithFeature, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: FeaturesCollection},
			{Key: "localField", Value: "feature"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "feature"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$feature"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cursor, err := s.votes.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate votes: %w", err)
	}

	var docs []voteWithFeatureDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode votes: %w", err)
	}

	votes := make([]models.VoteWithFeature, 0, len(docs))
	for _, d := range docs {
		v := models.VoteWithFeature{
			ID:       d.ID.Hex(),
			YesCount: d.YesCount,
			NoCount:  d.NoCount,
		}
		if d.Feature != nil {
			f := d.Feature.model()
			v.Feature = &f
		}
		votes = append(votes, v)
	}

	return votes, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
