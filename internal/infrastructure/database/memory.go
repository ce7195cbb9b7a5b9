package database

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-memory Store used by unit tests. Collections keep
// insertion order; filters are plain equality matches like the real adapter.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]bson.M)}
}

func (m *MemoryStore) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	raw, err := toBSON(doc)
	if err != nil {
		return "", NewStoreQueryError(err)
	}

	id := primitive.NewObjectID()
	raw["_id"] = id

	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = append(m.collections[collection], raw)
	return id.Hex(), nil
}

func (m *MemoryStore) Query(ctx context.Context, collection string, filter map[string]interface{}, limit int64) ([]map[string]interface{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := []map[string]interface{}{}
	for _, raw := range m.collections[collection] {
		if !matches(raw, filter) {
			continue
		}
		docs = append(docs, NormalizeDocument(raw))
		if limit > 0 && int64(len(docs)) == limit {
			break
		}
	}
	return docs, nil
}

func (m *MemoryStore) ListCollectionNames(ctx context.Context, max int) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		if max > 0 && len(names) == max {
			break
		}
		names = append(names, name)
	}
	return names, nil
}

func (m *MemoryStore) Connected() bool { return true }

func (m *MemoryStore) Disconnect(ctx context.Context) error { return nil }

// Count returns how many documents a collection holds. Test helper.
func (m *MemoryStore) Count(collection string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.collections[collection])
}

// toBSON flattens any insertable value into a bson.M through the codec the
// real driver would use, so bson struct tags behave identically.
func toBSON(doc interface{}) (bson.M, error) {
	data, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var raw bson.M
	if err := bson.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func matches(doc bson.M, filter map[string]interface{}) bool {
	for k, want := range filter {
		if doc[k] != want {
			return false
		}
	}
	return true
}
