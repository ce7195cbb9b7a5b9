package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"freedaiy-backend/internal/config"
)

// Store là interface cho document store adapter
// Handlers và services chỉ phụ thuộc interface này (constructor injection),
// tests thay bằng MemoryStore.
type Store interface {
	// Insert appends one document to the named collection and returns the
	// store-generated identifier as text.
	Insert(ctx context.Context, collection string, doc interface{}) (string, error)
	// Query returns documents matching an equality filter, in store order,
	// already normalized (ids and timestamps as text). An empty result is not
	// an error. A limit <= 0 means no limit, mirroring the driver.
	Query(ctx context.Context, collection string, filter map[string]interface{}, limit int64) ([]map[string]interface{}, error)
	// ListCollectionNames is a connectivity probe for diagnostics only.
	ListCollectionNames(ctx context.Context, max int) ([]string, error)
	Connected() bool
	Disconnect(ctx context.Context) error
}

// MongoStore là wrapper quản lý MongoDB client và lifecycle
// Khi config thiếu hoặc connect thất bại, store ở disabled mode:
// Insert/Query fail ngay với STORE_UNAVAILABLE, không retry, không hang.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	cfg    config.MongoConfig
}

// NewMongoStore tạo store chưa kết nối. Gọi Connect để mở connection.
func NewMongoStore(cfg config.MongoConfig) *MongoStore {
	return &MongoStore{cfg: cfg}
}

// Connect opens the client and verifies it with a ping. A missing URI or
// database name is reported once and leaves the store disabled.
func (s *MongoStore) Connect(ctx context.Context) error {
	if !s.cfg.HasURI() || !s.cfg.HasDatabase() {
		return ErrStoreUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.cfg.URI))
	if err != nil {
		return NewStoreUnavailable(err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		// Free the half-open client, stay disabled.
		_ = client.Disconnect(context.Background())
		return NewStoreUnavailable(err)
	}

	s.client = client
	s.db = client.Database(s.cfg.Database)

	log.Info().Str("database", s.cfg.Database).Msg("Connected to document store")
	return nil
}

// Connected reports whether the store left disabled mode at startup.
func (s *MongoStore) Connected() bool {
	return s.db != nil
}

func (s *MongoStore) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	if s.db == nil {
		return "", ErrStoreUnavailable
	}

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", NewStoreUnavailable(err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return stringify(res.InsertedID), nil
}

func (s *MongoStore) Query(ctx context.Context, collection string, filter map[string]interface{}, limit int64) ([]map[string]interface{}, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}

	mongoFilter := bson.M{}
	for k, v := range filter {
		mongoFilter[k] = v
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.db.Collection(collection).Find(ctx, mongoFilter, opts)
	if err != nil {
		return nil, NewStoreQueryError(err)
	}
	defer cur.Close(ctx)

	docs := []map[string]interface{}{}
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, NewStoreQueryError(err)
		}
		docs = append(docs, NormalizeDocument(raw))
	}
	if err := cur.Err(); err != nil {
		return nil, NewStoreQueryError(err)
	}

	return docs, nil
}

func (s *MongoStore) ListCollectionNames(ctx context.Context, max int) ([]string, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}

	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, NewStoreQueryError(err)
	}
	if max > 0 && len(names) > max {
		names = names[:max]
	}
	return names, nil
}

func (s *MongoStore) Disconnect(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
