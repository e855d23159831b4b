package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/convin-ai/csm-backend/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	UsersCollection         = "users"
	CustomersCollection     = "customers"
	ActivitiesCollection    = "activities"
	RisksCollection         = "risks"
	OpportunitiesCollection = "opportunities"
	TasksCollection         = "tasks"
	ReportsCollection       = "datalabs_reports"
	AuditLogsCollection     = "audit_logs"
)

// listLimit caps result sets, matching the store's read contract.
const listLimit = 1000

// ErrNotFound is returned when a looked-up document does not exist.
var ErrNotFound = errors.New("document not found")

// Store is the persistence boundary: keyed insert/find/update/delete by
// collection name and equality filter, with sort, count and field sums.
// Handlers receive a Store at construction instead of reaching for a
// package-level database handle.
type Store interface {
	Insert(ctx context.Context, collection string, doc interface{}) error
	FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) error
	FindAll(ctx context.Context, collection string, filter bson.M, sort bson.D, out interface{}) error
	UpdateOne(ctx context.Context, collection string, filter bson.M, set interface{}) error
	DeleteOne(ctx context.Context, collection string, filter bson.M) error
	Count(ctx context.Context, collection string, filter bson.M) (int64, error)
	SumField(ctx context.Context, collection string, filter bson.M, field string) (float64, error)
}

// MongoStore implements Store on a MongoDB database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(uri, dbName string) (*MongoStore, error) {
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	utils.Logger.Info().Str("database", dbName).Msg("connected to MongoDB")

	return &MongoStore{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) {
	if err := s.client.Disconnect(ctx); err != nil {
		utils.Logger.Error().Err(err).Msg("MongoDB disconnect failed")
		return
	}
	utils.Logger.Info().Msg("disconnected from MongoDB")
}

// InitializeCollections creates any missing collections.
func (s *MongoStore) InitializeCollections(ctx context.Context) error {
	collections := []string{
		UsersCollection,
		CustomersCollection,
		ActivitiesCollection,
		RisksCollection,
		OpportunitiesCollection,
		TasksCollection,
		ReportsCollection,
		AuditLogsCollection,
	}

	existing, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}

	have := make(map[string]bool, len(existing))
	for _, name := range existing {
		have[name] = true
	}

	for _, name := range collections {
		if have[name] {
			continue
		}
		if err := s.db.CreateCollection(ctx, name); err != nil {
			return fmt.Errorf("create collection %s: %w", name, err)
		}
		utils.Logger.Info().Str("collection", name).Msg("collection created")
	}

	return nil
}

func (s *MongoStore) Insert(ctx context.Context, collection string, doc interface{}) error {
	return withRetry(func() error {
		_, err := s.db.Collection(collection).InsertOne(ctx, doc)
		return err
	})
}

func (s *MongoStore) FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

func (s *MongoStore) FindAll(ctx context.Context, collection string, filter bson.M, sort bson.D, out interface{}) error {
	findOptions := options.Find().SetLimit(listLimit)
	if len(sort) > 0 {
		findOptions.SetSort(sort)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter, findOptions)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, out)
}

func (s *MongoStore) UpdateOne(ctx context.Context, collection string, filter bson.M, set interface{}) error {
	return withRetry(func() error {
		result, err := s.db.Collection(collection).UpdateOne(ctx, filter, bson.M{"$set": set})
		if err != nil {
			return err
		}
		if result.MatchedCount == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *MongoStore) DeleteOne(ctx context.Context, collection string, filter bson.M) error {
	result, err := s.db.Collection(collection).DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMany removes every document matching the filter. Used by the seed
// command, not part of the Store contract.
func (s *MongoStore) DeleteMany(ctx context.Context, collection string, filter bson.M) error {
	_, err := s.db.Collection(collection).DeleteMany(ctx, filter)
	return err
}

func (s *MongoStore) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	return s.db.Collection(collection).CountDocuments(ctx, filter)
}

func (s *MongoStore) SumField(ctx context.Context, collection string, filter bson.M, field string) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$" + field}}}},
	}

	cursor, err := s.db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}

	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

const writeRetries = 3

// withRetry retries transient write failures with a short backoff.
func withRetry(operation func() error) error {
	var lastErr error
	for i := 0; i < writeRetries; i++ {
		lastErr = operation()
		if lastErr == nil || !isRetryableError(lastErr) {
			return lastErr
		}
		utils.Logger.Error().Err(lastErr).Msgf("store operation failed, retry (%d/%d)", i+1, writeRetries)
		time.Sleep(time.Duration(500*(i+1)) * time.Millisecond)
	}
	return lastErr
}

// isRetryableError reports whether err is worth retrying.
func isRetryableError(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return false
	}

	retryableCodes := map[int]bool{
		6:     true, // HostUnreachable
		7:     true, // HostNotFound
		89:    true, // NetworkTimeout
		91:    true, // ShutdownInProgress
		189:   true, // PrimarySteppedDown
		10107: true, // NotMaster
		13436: true, // NotMasterNoSlaveOk
		11600: true, // InterruptedAtShutdown
		11602: true, // InterruptedDueToReplStateChange
		10058: true, // ConnectionReset
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return retryableCodes[int(cmdErr.Code)]
	}

	return isNetworkError(err)
}

func isNetworkError(err error) bool {
	errMsg := strings.ToLower(err.Error())
	networkErrors := []string{
		"connection refused",
		"connection reset",
		"connection closed",
		"no reachable servers",
		"timeout",
		"context deadline exceeded",
		"server selection error",
	}

	for _, ne := range networkErrors {
		if strings.Contains(errMsg, ne) {
			return true
		}
	}

	return false
}
